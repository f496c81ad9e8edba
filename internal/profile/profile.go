// Package profile holds the learner's persisted state: chosen domain,
// study schedule, test and interview history, and roadmap progress.
package profile

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
)

var (
	// ErrInvalidScore is returned for scores outside 0-100.
	ErrInvalidScore = errors.New("score must be between 0 and 100")

	// ErrNoDomain is returned when an operation needs a chosen domain.
	ErrNoDomain = errors.New("no domain selected")

	// ErrNotOnRoadmap is returned when completing an item that is not part
	// of the current domain's roadmap.
	ErrNotOnRoadmap = errors.New("item is not on the current roadmap")
)

// TestScore is one recorded skill test.
type TestScore struct {
	ID    string    `json:"id"`
	Score int       `json:"score"`
	Topic string    `json:"topic"`
	Date  time.Time `json:"date"`
}

// InterviewResult is one graded mock interview.
type InterviewResult struct {
	ID       string     `json:"id"`
	Score    int        `json:"score"`
	Feedback string     `json:"feedback"`
	Domain   domain.Key `json:"domain"`
	Date     time.Time  `json:"date"`
}

// Profile is the single user-profile document.
type Profile struct {
	Domain           domain.Key             `json:"domain,omitempty"`
	Schedule         *planner.StudySchedule `json:"studySchedule,omitempty"`
	TestScores       []TestScore            `json:"testScores"`
	Interviews       []InterviewResult      `json:"interviewResults"`
	CompletedRoadmap []string               `json:"completedRoadmapItems"`
}

// Repo loads and persists the profile.
type Repo interface {
	// Load returns the stored profile, or a zero profile if none exists.
	Load(ctx context.Context) (*Profile, error)

	// Update applies fn to the stored profile and saves the result
	// atomically. Nothing is written if fn returns an error.
	Update(ctx context.Context, fn func(*Profile) error) error

	// Reset removes the stored profile.
	Reset(ctx context.Context) error
}

// SetDomain records the chosen domain. Changing domain clears roadmap
// progress, since the items belong to the old roadmap.
func (p *Profile) SetDomain(k domain.Key) error {
	if !k.Valid() {
		return fmt.Errorf("set domain %q: %w", k, domain.ErrUnknown)
	}
	if p.Domain != k {
		p.CompletedRoadmap = nil
	}
	p.Domain = k
	return nil
}

// AddTestScore appends a test result and returns it.
func (p *Profile) AddTestScore(score int, topic string, at time.Time) (TestScore, error) {
	if score < 0 || score > 100 {
		return TestScore{}, fmt.Errorf("add test score %d: %w", score, ErrInvalidScore)
	}
	ts := TestScore{ID: uuid.NewString(), Score: score, Topic: topic, Date: at}
	p.TestScores = append(p.TestScores, ts)
	return ts, nil
}

// AddInterviewResult appends a graded interview and returns it.
func (p *Profile) AddInterviewResult(score int, feedback string, k domain.Key, at time.Time) (InterviewResult, error) {
	if score < 0 || score > 100 {
		return InterviewResult{}, fmt.Errorf("add interview result %d: %w", score, ErrInvalidScore)
	}
	if !k.Valid() {
		return InterviewResult{}, fmt.Errorf("add interview result: %w", domain.ErrUnknown)
	}
	r := InterviewResult{ID: uuid.NewString(), Score: score, Feedback: feedback, Domain: k, Date: at}
	p.Interviews = append(p.Interviews, r)
	return r, nil
}

// CompleteRoadmapItem marks item as done. Completing an item twice is
// a no-op.
func (p *Profile) CompleteRoadmapItem(item string) error {
	if p.Domain == "" {
		return ErrNoDomain
	}
	if !domain.OnRoadmap(p.Domain, item) {
		return fmt.Errorf("%q: %w", item, ErrNotOnRoadmap)
	}
	if !slices.Contains(p.CompletedRoadmap, item) {
		p.CompletedRoadmap = append(p.CompletedRoadmap, item)
	}
	return nil
}

// IsCompleted reports whether item has been marked done.
func (p *Profile) IsCompleted(item string) bool {
	return slices.Contains(p.CompletedRoadmap, item)
}

// RoadmapProgress returns completed and total items for the current domain.
func (p *Profile) RoadmapProgress() (done, total int) {
	if p.Domain == "" {
		return 0, 0
	}
	items := domain.Roadmap(p.Domain)
	for _, it := range items {
		if p.IsCompleted(it) {
			done++
		}
	}
	return done, len(items)
}

// SetStudySchedule validates and stores s.
func (p *Profile) SetStudySchedule(s planner.StudySchedule) error {
	if err := s.Validate(); err != nil {
		return err
	}
	p.Schedule = &s
	return nil
}

// ClearStudySchedule removes the stored schedule.
func (p *Profile) ClearStudySchedule() {
	p.Schedule = nil
}
