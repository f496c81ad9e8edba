// Package progress summarizes test and interview history for the
// dashboards.
package progress

import (
	"cmp"
	"slices"
	"time"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
)

// Rating buckets a 0-100 score.
type Rating int

const (
	NeedsImprovement Rating = iota
	Good
	Excellent
)

func (r Rating) String() string {
	switch r {
	case Excellent:
		return "Excellent"
	case Good:
		return "Good"
	default:
		return "Needs Improvement"
	}
}

// Band rates a score: 85 and up is excellent, 70 and up is good.
func Band(score int) Rating {
	switch {
	case score >= 85:
		return Excellent
	case score >= 70:
		return Good
	default:
		return NeedsImprovement
	}
}

// TestSummary aggregates a test history.
type TestSummary struct {
	Count   int
	Average float64
	Latest  profile.TestScore
	Best    profile.TestScore
	// Trend is the latest score minus the mean of the earlier ones.
	// Zero with fewer than two tests.
	Trend float64
}

// SortedTests returns scores oldest first. Equal dates keep input order.
func SortedTests(scores []profile.TestScore) []profile.TestScore {
	out := slices.Clone(scores)
	slices.SortStableFunc(out, func(a, b profile.TestScore) int {
		return a.Date.Compare(b.Date)
	})
	return out
}

// SummarizeTests computes the dashboard numbers for scores.
func SummarizeTests(scores []profile.TestScore) TestSummary {
	if len(scores) == 0 {
		return TestSummary{}
	}
	sorted := SortedTests(scores)

	var sum int
	best := sorted[0]
	for _, s := range sorted {
		sum += s.Score
		if s.Score > best.Score {
			best = s
		}
	}

	out := TestSummary{
		Count:   len(sorted),
		Average: float64(sum) / float64(len(sorted)),
		Latest:  sorted[len(sorted)-1],
		Best:    best,
	}
	if n := len(sorted); n > 1 {
		earlier := float64(sum-out.Latest.Score) / float64(n-1)
		out.Trend = float64(out.Latest.Score) - earlier
	}
	return out
}

// ScoreRange is an inclusive score interval used to filter interviews.
type ScoreRange struct {
	Label    string
	Min, Max int
}

// Contains reports whether score falls in r.
func (r ScoreRange) Contains(score int) bool {
	return score >= r.Min && score <= r.Max
}

var (
	RangeAll              = ScoreRange{"All", 0, 100}
	RangeExcellent        = ScoreRange{"Excellent", 85, 100}
	RangeGood             = ScoreRange{"Good", 70, 84}
	RangeNeedsImprovement = ScoreRange{"Needs Improvement", 0, 69}
)

// Ranges lists the interview filters in menu order.
func Ranges() []ScoreRange {
	return []ScoreRange{RangeAll, RangeExcellent, RangeGood, RangeNeedsImprovement}
}

// InterviewFilter selects interviews by domain and score range.
// An empty Domain matches every domain.
type InterviewFilter struct {
	Domain domain.Key
	Range  ScoreRange
}

// Match reports whether r passes the filter.
func (f InterviewFilter) Match(r profile.InterviewResult) bool {
	if f.Domain != "" && f.Domain != r.Domain {
		return false
	}
	return f.Range.Contains(r.Score)
}

// Apply returns the matching interviews newest first.
func (f InterviewFilter) Apply(results []profile.InterviewResult) []profile.InterviewResult {
	var out []profile.InterviewResult
	for _, r := range results {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	slices.SortStableFunc(out, func(a, b profile.InterviewResult) int {
		return b.Date.Compare(a.Date)
	})
	return out
}

// DomainAverage is the mean interview score for one domain.
type DomainAverage struct {
	Domain  domain.Key
	Count   int
	Average float64
}

// InterviewAverages groups results per domain, in declaration order.
func InterviewAverages(results []profile.InterviewResult) []DomainAverage {
	sums := map[domain.Key]int{}
	counts := map[domain.Key]int{}
	for _, r := range results {
		sums[r.Domain] += r.Score
		counts[r.Domain]++
	}
	var out []DomainAverage
	for _, k := range domain.All() {
		if counts[k] == 0 {
			continue
		}
		out = append(out, DomainAverage{
			Domain:  k,
			Count:   counts[k],
			Average: float64(sums[k]) / float64(counts[k]),
		})
	}
	return out
}

// CalendarDay is one day on the study calendar.
type CalendarDay struct {
	Date     time.Time
	Sessions []planner.Session
}

// Calendar lays out days starting at from's date, attaching the
// scheduled sessions that have not started yet.
func Calendar(s planner.StudySchedule, from time.Time, days int) []CalendarDay {
	if days <= 0 {
		return nil
	}
	y, m, d := from.Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, from.Location())

	out := make([]CalendarDay, days)
	for i := range out {
		out[i].Date = start.AddDate(0, 0, i)
	}
	for _, sess := range planner.Upcoming(s, from, days) {
		idx, _ := slices.BinarySearchFunc(out, sess.Start, func(cd CalendarDay, t time.Time) int {
			return cmp.Compare(dayKey(cd.Date), dayKey(t))
		})
		if idx < len(out) {
			out[idx].Sessions = append(out[idx].Sessions, sess)
		}
	}
	return out
}

func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}
