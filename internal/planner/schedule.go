package planner

import (
	"encoding/json"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int `validate:"min=0,max=23"`
	Minute int `validate:"min=0,max=59"`
}

// ParseTimeOfDay accepts "H:MM" or "HH:MM" in 24-hour form.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	hh, mm, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("time %q: want HH:MM", s)
	}
	if !digits(hh, 1, 2) {
		return TimeOfDay{}, fmt.Errorf("time %q: bad hour", s)
	}
	if !digits(mm, 2, 2) {
		return TimeOfDay{}, fmt.Errorf("time %q: bad minute", s)
	}
	h, _ := strconv.Atoi(hh)
	m, _ := strconv.Atoi(mm)
	t := TimeOfDay{Hour: h, Minute: m}
	if err := validate.Struct(t); err != nil {
		return TimeOfDay{}, fmt.Errorf("time %q: out of range", s)
	}
	return t, nil
}

// digits reports whether s is between lo and hi ASCII digits long.
func digits(s string, lo, hi int) bool {
	if len(s) < lo || len(s) > hi {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// After reports whether t is strictly later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool {
	return t.Hour*60+t.Minute > u.Hour*60+u.Minute
}

func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *TimeOfDay) UnmarshalText(b []byte) error {
	parsed, err := ParseTimeOfDay(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseWeekday accepts full or three-letter English day names.
func ParseWeekday(s string) (time.Weekday, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for d := time.Sunday; d <= time.Saturday; d++ {
		name := strings.ToLower(d.String())
		if s == name || (len(s) >= 3 && strings.HasPrefix(name, s)) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", s)
}

// WeekOrder returns the weekdays Monday first.
func WeekOrder() []time.Weekday {
	return []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
		time.Friday, time.Saturday, time.Sunday,
	}
}

// weekIndex places d in a Monday-first week (Monday=0, Sunday=6).
func weekIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// StudySchedule is the user's weekly study plan.
type StudySchedule struct {
	Days      []time.Weekday `validate:"dive,min=0,max=6"`
	Time      TimeOfDay
	Reminders bool
}

// Validate checks field ranges.
func (s StudySchedule) Validate() error {
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("invalid study schedule: %w", err)
	}
	return nil
}

// SortedDays returns the distinct selected days, Monday first.
func (s StudySchedule) SortedDays() []time.Weekday {
	days := slices.Clone(s.Days)
	slices.SortFunc(days, func(a, b time.Weekday) int {
		return weekIndex(a) - weekIndex(b)
	})
	return slices.Compact(days)
}

// HasDay reports whether d is selected.
func (s StudySchedule) HasDay(d time.Weekday) bool {
	return slices.Contains(s.Days, d)
}

// ToggleDay selects d if absent and removes it otherwise.
func (s *StudySchedule) ToggleDay(d time.Weekday) {
	if i := slices.Index(s.Days, d); i >= 0 {
		s.Days = slices.Delete(s.Days, i, i+1)
		return
	}
	s.Days = append(s.Days, d)
}

type scheduleJSON struct {
	Days      []string  `json:"days"`
	Time      TimeOfDay `json:"time"`
	Reminders bool      `json:"reminders"`
}

// MarshalJSON stores days by name so the profile blob stays readable.
func (s StudySchedule) MarshalJSON() ([]byte, error) {
	out := scheduleJSON{Time: s.Time, Reminders: s.Reminders, Days: []string{}}
	for _, d := range s.SortedDays() {
		out.Days = append(out.Days, d.String())
	}
	return json.Marshal(out)
}

func (s *StudySchedule) UnmarshalJSON(b []byte) error {
	var in scheduleJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}
	days := make([]time.Weekday, 0, len(in.Days))
	for _, name := range in.Days {
		d, err := ParseWeekday(name)
		if err != nil {
			return err
		}
		days = append(days, d)
	}
	*s = StudySchedule{Days: days, Time: in.Time, Reminders: in.Reminders}
	return nil
}
