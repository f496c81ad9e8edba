package planner

import (
	"testing"
	"time"
)

// 2026-10-14 is a Wednesday.
var wednesdayNoon = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func mustExpander(t *testing.T, cfg Config) *Expander {
	t.Helper()
	e, err := NewExpander(cfg)
	if err != nil {
		t.Fatalf("NewExpander: %v", err)
	}
	return e
}

func trig(d time.Weekday, h, m int, r Role) NotificationTrigger {
	return NotificationTrigger{Weekday: d, Hour: h, Minute: m, Role: r}
}

func TestExpand_RemindersDisabled(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{
		Days:      []time.Weekday{time.Monday, time.Friday},
		Time:      TimeOfDay{Hour: 9},
		Reminders: false,
	}
	if got := e.Expand(s, wednesdayNoon); len(got) != 0 {
		t.Errorf("got %d triggers, want 0", len(got))
	}
}

func TestExpand_NoDays(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{Time: TimeOfDay{Hour: 9}, Reminders: true}
	if got := e.Expand(s, wednesdayNoon); len(got) != 0 {
		t.Errorf("got %d triggers, want 0", len(got))
	}
}

func TestExpand_MondayWednesdayNine(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{
		Days:      []time.Weekday{time.Wednesday, time.Monday},
		Time:      TimeOfDay{Hour: 9, Minute: 0},
		Reminders: true,
	}

	got := e.Expand(s, wednesdayNoon)
	want := []NotificationTrigger{
		trig(time.Monday, 8, 55, RolePreSession),
		trig(time.Monday, 9, 0, RoleStart),
		trig(time.Wednesday, 8, 55, RolePreSession),
		trig(time.Wednesday, 9, 0, RoleStart),
	}
	if len(got) != len(want) {
		t.Fatalf("got %d triggers %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trigger[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestExpand_BorrowsAcrossMidnight(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{
		Days:      []time.Weekday{time.Thursday},
		Time:      TimeOfDay{Hour: 0, Minute: 2},
		Reminders: true,
	}

	got := e.Expand(s, wednesdayNoon)
	if len(got) != 2 {
		t.Fatalf("got %d triggers, want 2", len(got))
	}
	if want := trig(time.Wednesday, 23, 57, RolePreSession); got[0] != want {
		t.Errorf("pre-session = %v, want %v", got[0], want)
	}
	if want := trig(time.Thursday, 0, 2, RoleStart); got[1] != want {
		t.Errorf("start = %v, want %v", got[1], want)
	}
	for _, tr := range got {
		if tr.Minute < 0 || tr.Hour < 0 {
			t.Errorf("negative field in %v", tr)
		}
	}
}

func TestExpand_SundayWrapsToSaturday(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{Days: []time.Weekday{time.Sunday}, Time: TimeOfDay{Minute: 1}, Reminders: true}

	got := e.Expand(s, wednesdayNoon)
	if want := trig(time.Saturday, 23, 56, RolePreSession); got[0] != want {
		t.Errorf("pre-session = %v, want %v", got[0], want)
	}
}

func TestExpand_BorrowsHourOnly(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{Days: []time.Weekday{time.Friday}, Time: TimeOfDay{Hour: 14, Minute: 3}, Reminders: true}

	got := e.Expand(s, wednesdayNoon)
	if want := trig(time.Friday, 13, 58, RolePreSession); got[0] != want {
		t.Errorf("pre-session = %v, want %v", got[0], want)
	}
}

func TestExpand_CustomLeadTime(t *testing.T) {
	e := mustExpander(t, Config{LeadTime: 90 * time.Minute})
	s := StudySchedule{Days: []time.Weekday{time.Tuesday}, Time: TimeOfDay{Hour: 1, Minute: 0}, Reminders: true}

	got := e.Expand(s, wednesdayNoon)
	if want := trig(time.Monday, 23, 30, RolePreSession); got[0] != want {
		t.Errorf("pre-session = %v, want %v", got[0], want)
	}
}

func TestExpand_DuplicateDaysCollapse(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{
		Days:      []time.Weekday{time.Monday, time.Monday},
		Time:      TimeOfDay{Hour: 9},
		Reminders: true,
	}
	if got := e.Expand(s, wednesdayNoon); len(got) != 2 {
		t.Errorf("got %d triggers, want 2", len(got))
	}
}

func TestExpand_TwoTriggersPerDayByDefault(t *testing.T) {
	e := mustExpander(t, DefaultConfig())
	s := StudySchedule{Days: WeekOrder(), Time: TimeOfDay{Hour: 7, Minute: 30}, Reminders: true}

	got := e.Expand(s, wednesdayNoon)
	if len(got) != 14 {
		t.Fatalf("got %d triggers, want 14", len(got))
	}
	for i := 0; i < len(got); i += 2 {
		pre, start := got[i], got[i+1]
		if pre.Role != RolePreSession || start.Role != RoleStart {
			t.Errorf("pair %d roles = %s/%s", i/2, pre.Role, start.Role)
		}
		if start.Before(5*time.Minute, RolePreSession) != pre {
			t.Errorf("pair %d: pre-session %v is not 5m before %v", i/2, pre, start)
		}
	}
}

func TestExpand_SkipPastThisWeek(t *testing.T) {
	e := mustExpander(t, Config{LeadTime: DefaultLeadTime, SkipPastThisWeek: true})
	s := StudySchedule{
		Days:      []time.Weekday{time.Monday, time.Wednesday, time.Friday},
		Time:      TimeOfDay{Hour: 9},
		Reminders: true,
	}

	// Monday is behind us and Wednesday 09:00 already passed at noon.
	got := e.Expand(s, wednesdayNoon)
	if len(got) != 2 {
		t.Fatalf("got %v, want only Friday triggers", got)
	}
	if got[1].Weekday != time.Friday {
		t.Errorf("weekday = %s, want Friday", got[1].Weekday)
	}
}

func TestNewExpander_RejectsBadLeadTime(t *testing.T) {
	for _, lead := range []time.Duration{-time.Minute, 24 * time.Hour, 90 * time.Second} {
		if _, err := NewExpander(Config{LeadTime: lead}); err == nil {
			t.Errorf("NewExpander(%s) succeeded, want error", lead)
		}
	}
}

func TestIsUpcomingThisWeek(t *testing.T) {
	tests := []struct {
		day  time.Weekday
		at   TimeOfDay
		want bool
	}{
		{time.Tuesday, TimeOfDay{Hour: 23}, false},
		{time.Wednesday, TimeOfDay{Hour: 11, Minute: 59}, false},
		{time.Wednesday, TimeOfDay{Hour: 12, Minute: 0}, false},
		{time.Wednesday, TimeOfDay{Hour: 12, Minute: 1}, true},
		{time.Thursday, TimeOfDay{}, true},
		{time.Saturday, TimeOfDay{Hour: 23, Minute: 59}, true},
		{time.Sunday, TimeOfDay{Hour: 9}, false}, // weeks start on Sunday
		{time.Monday, TimeOfDay{Hour: 23, Minute: 59}, false},
	}
	for _, tt := range tests {
		if got := IsUpcomingThisWeek(tt.day, tt.at, wednesdayNoon); got != tt.want {
			t.Errorf("IsUpcomingThisWeek(%s %s) = %v, want %v", tt.day, tt.at, got, tt.want)
		}
	}
}

func TestIsUpcomingThisWeek_SundayIsToday(t *testing.T) {
	sundayMorning := time.Date(2026, 10, 18, 8, 0, 0, 0, time.UTC)
	tests := []struct {
		day  time.Weekday
		at   TimeOfDay
		want bool
	}{
		{time.Sunday, TimeOfDay{Hour: 9}, true},
		{time.Sunday, TimeOfDay{Hour: 7, Minute: 30}, false},
		{time.Monday, TimeOfDay{}, true},
		{time.Saturday, TimeOfDay{Hour: 10}, true},
	}
	for _, tt := range tests {
		if got := IsUpcomingThisWeek(tt.day, tt.at, sundayMorning); got != tt.want {
			t.Errorf("IsUpcomingThisWeek(%s %s) = %v, want %v", tt.day, tt.at, got, tt.want)
		}
	}
}

func TestExpand_SkipPastThisWeekDropsSunday(t *testing.T) {
	e := mustExpander(t, Config{LeadTime: DefaultLeadTime, SkipPastThisWeek: true})
	s := StudySchedule{
		Days:      []time.Weekday{time.Sunday, time.Saturday},
		Time:      TimeOfDay{Hour: 9},
		Reminders: true,
	}

	got := e.Expand(s, wednesdayNoon)
	want := []NotificationTrigger{
		trig(time.Saturday, 8, 55, RolePreSession),
		trig(time.Saturday, 9, 0, RoleStart),
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("trigger %d = %v, want %v", i, got[i], want[i])
		}
	}
}
