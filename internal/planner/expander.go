package planner

import (
	"fmt"
	"time"
)

// DefaultLeadTime is how long before a session the advance reminder fires.
const DefaultLeadTime = 5 * time.Minute

// Config tunes schedule expansion.
type Config struct {
	// LeadTime separates the pre-session trigger from the start trigger.
	// Whole minutes in [0, 24h).
	LeadTime time.Duration

	// SkipPastThisWeek drops weekdays whose occurrence this week has
	// already passed. Triggers recur weekly, so this only changes what
	// fires during the current week. Off by default.
	SkipPastThisWeek bool
}

// DefaultConfig returns the standard expansion settings.
func DefaultConfig() Config {
	return Config{LeadTime: DefaultLeadTime}
}

// Expander turns a study schedule into reminder triggers.
type Expander struct {
	cfg Config
}

// NewExpander validates cfg and returns an Expander.
func NewExpander(cfg Config) (*Expander, error) {
	if cfg.LeadTime < 0 || cfg.LeadTime >= 24*time.Hour {
		return nil, fmt.Errorf("lead time %s out of range [0, 24h)", cfg.LeadTime)
	}
	if cfg.LeadTime%time.Minute != 0 {
		return nil, fmt.Errorf("lead time %s is not a whole number of minutes", cfg.LeadTime)
	}
	return &Expander{cfg: cfg}, nil
}

// Config returns the expander's settings.
func (e *Expander) Config() Config {
	return e.cfg
}

// Expand returns a pre-session and a start trigger for every selected
// weekday, ordered Monday first. It returns nil when reminders are off
// or no day is selected; clearing earlier registrations is the caller's job.
func (e *Expander) Expand(s StudySchedule, now time.Time) []NotificationTrigger {
	if !s.Reminders || len(s.Days) == 0 {
		return nil
	}

	var out []NotificationTrigger
	for _, day := range s.SortedDays() {
		if e.cfg.SkipPastThisWeek && !IsUpcomingThisWeek(day, s.Time, now) {
			continue
		}
		start := NotificationTrigger{
			Weekday: day,
			Hour:    s.Time.Hour,
			Minute:  s.Time.Minute,
			Role:    RoleStart,
		}
		out = append(out, start.Before(e.cfg.LeadTime, RolePreSession), start)
	}
	return out
}

// IsUpcomingThisWeek reports whether day at t is still ahead of now in
// the current Sunday-first week. Sunday is therefore never ahead of a
// later weekday. Display order stays Monday first.
func IsUpcomingThisWeek(day time.Weekday, t TimeOfDay, now time.Time) bool {
	if today := now.Weekday(); day != today {
		return day > today
	}
	return t.After(TimeOfDay{Hour: now.Hour(), Minute: now.Minute()})
}
