// Package study applies user actions to the profile and keeps the
// registered reminders in step with it.
package study

import (
	"context"
	"fmt"
	"time"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/notify"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
)

// Service coordinates profile writes with reminder registration.
type Service struct {
	Profile   profile.Repo
	Reminders notify.Registrar
	Expander  *planner.Expander
	Now       func() time.Time
}

// NewService wires a Service that reads the wall clock.
func NewService(repo profile.Repo, reminders notify.Registrar, exp *planner.Expander) *Service {
	return &Service{Profile: repo, Reminders: reminders, Expander: exp, Now: time.Now}
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

// Load returns the current profile.
func (s *Service) Load(ctx context.Context) (*profile.Profile, error) {
	return s.Profile.Load(ctx)
}

// update runs fn in a profile transaction and, when resync is set,
// re-registers reminders from the committed profile.
func (s *Service) update(ctx context.Context, resync bool, fn func(*profile.Profile) error) (*profile.Profile, []planner.NotificationTrigger, error) {
	var saved profile.Profile
	err := s.Profile.Update(ctx, func(p *profile.Profile) error {
		if err := fn(p); err != nil {
			return err
		}
		saved = *p
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if !resync {
		return &saved, nil, nil
	}
	triggers, err := notify.Reschedule(ctx, s.Reminders, s.Expander, &saved, s.now())
	if err != nil {
		return &saved, nil, fmt.Errorf("sync reminders: %w", err)
	}
	return &saved, triggers, nil
}

// AdoptTrack makes k the user's track. Reminder text names the track,
// so reminders are re-registered too.
func (s *Service) AdoptTrack(ctx context.Context, k domain.Key) error {
	_, _, err := s.update(ctx, true, func(p *profile.Profile) error {
		return p.SetDomain(k)
	})
	if err != nil {
		return fmt.Errorf("adopt track: %w", err)
	}
	return nil
}

// SaveSchedule stores sched and returns the triggers now registered.
func (s *Service) SaveSchedule(ctx context.Context, sched planner.StudySchedule) ([]planner.NotificationTrigger, error) {
	_, triggers, err := s.update(ctx, true, func(p *profile.Profile) error {
		return p.SetStudySchedule(sched)
	})
	if err != nil {
		return nil, fmt.Errorf("save schedule: %w", err)
	}
	return triggers, nil
}

// ClearSchedule removes the schedule and every registered reminder.
func (s *Service) ClearSchedule(ctx context.Context) error {
	_, _, err := s.update(ctx, true, func(p *profile.Profile) error {
		p.ClearStudySchedule()
		return nil
	})
	if err != nil {
		return fmt.Errorf("clear schedule: %w", err)
	}
	return nil
}

// CompleteItem marks a roadmap item of the current track as done.
func (s *Service) CompleteItem(ctx context.Context, item string) error {
	_, _, err := s.update(ctx, false, func(p *profile.Profile) error {
		return p.CompleteRoadmapItem(item)
	})
	if err != nil {
		return fmt.Errorf("complete %q: %w", item, err)
	}
	return nil
}

// RecordTest appends a skill test score dated now.
func (s *Service) RecordTest(ctx context.Context, score int, topic string) (profile.TestScore, error) {
	var rec profile.TestScore
	_, _, err := s.update(ctx, false, func(p *profile.Profile) error {
		var err error
		rec, err = p.AddTestScore(score, topic, s.now())
		return err
	})
	if err != nil {
		return profile.TestScore{}, fmt.Errorf("record test: %w", err)
	}
	return rec, nil
}
