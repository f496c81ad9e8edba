package planner

import (
	"fmt"
	"time"
)

// Role tags a trigger as the advance warning or the session start.
type Role string

const (
	RolePreSession Role = "pre-session"
	RoleStart      Role = "start"
)

const (
	minutesPerDay  = 24 * 60
	minutesPerWeek = 7 * minutesPerDay
)

// NotificationTrigger is a weekly recurring point in time.
type NotificationTrigger struct {
	Weekday time.Weekday
	Hour    int
	Minute  int
	Role    Role
}

func (t NotificationTrigger) String() string {
	return fmt.Sprintf("%s %02d:%02d %s", t.Weekday.String()[:3], t.Hour, t.Minute, t.Role)
}

// TimeOfDay returns the trigger's wall-clock time.
func (t NotificationTrigger) TimeOfDay() TimeOfDay {
	return TimeOfDay{Hour: t.Hour, Minute: t.Minute}
}

// minuteOfWeek counts minutes from Sunday 00:00.
func (t NotificationTrigger) minuteOfWeek() int {
	return int(t.Weekday)*minutesPerDay + t.Hour*60 + t.Minute
}

// fromMinuteOfWeek wraps m into the week and splits it back into fields.
func fromMinuteOfWeek(m int, role Role) NotificationTrigger {
	m %= minutesPerWeek
	if m < 0 {
		m += minutesPerWeek
	}
	return NotificationTrigger{
		Weekday: time.Weekday(m / minutesPerDay),
		Hour:    (m % minutesPerDay) / 60,
		Minute:  m % 60,
		Role:    role,
	}
}

// Before returns a copy of t moved d earlier, borrowing from the hour
// and weekday as needed. Sunday rolls back to Saturday.
func (t NotificationTrigger) Before(d time.Duration, role Role) NotificationTrigger {
	return fromMinuteOfWeek(t.minuteOfWeek()-int(d/time.Minute), role)
}
