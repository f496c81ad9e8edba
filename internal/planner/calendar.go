package planner

import "time"

// Session is one concrete occurrence of the weekly plan.
type Session struct {
	Start time.Time
}

// Upcoming lists the study sessions that start in [from, from+days),
// in from's location.
func Upcoming(s StudySchedule, from time.Time, days int) []Session {
	if len(s.Days) == 0 || days <= 0 {
		return nil
	}

	y, m, d := from.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, from.Location())
	end := midnight.AddDate(0, 0, days)

	var out []Session
	for day := midnight; day.Before(end); day = day.AddDate(0, 0, 1) {
		if !s.HasDay(day.Weekday()) {
			continue
		}
		start := time.Date(day.Year(), day.Month(), day.Day(), s.Time.Hour, s.Time.Minute, 0, 0, from.Location())
		if start.Before(from) {
			continue
		}
		out = append(out, Session{Start: start})
	}
	return out
}
