// Package screentest builds in-memory services for screen tests.
package screentest

import (
	"context"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pathwise/pathwise/internal/notify"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/study"
)

// Now is the fixed clock used by screen tests: Wednesday 14 Oct 2026, noon UTC.
var Now = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

// Registrar collects registered notifications.
type Registrar struct {
	Registered []notify.Notification
}

func (r *Registrar) CancelAll(context.Context) error {
	r.Registered = nil
	return nil
}

func (r *Registrar) Register(_ context.Context, n notify.Notification) error {
	r.Registered = append(r.Registered, n)
	return nil
}

// Services returns services over an in-memory profile, the built-in
// bank and a seeded random source.
func Services(t *testing.T) (*screen.Services, *Registrar) {
	t.Helper()
	exp, err := planner.NewExpander(planner.DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	bank, err := quiz.DefaultBank()
	if err != nil {
		t.Fatal(err)
	}
	reg := &Registrar{}
	svc := study.NewService(profile.NewMemoryRepo(), reg, exp)
	svc.Now = func() time.Time { return Now }
	return &screen.Services{
		Study:         svc,
		Bank:          bank,
		QuestionCount: quiz.DefaultQuestionCount,
		Rand:          quiz.NewSeededRand(7),
	}, reg
}

// Msgs runs cmd and returns its messages, expanding batches. Nil
// commands inside a batch are dropped.
func Msgs(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, Msgs(c)...)
	}
	return out
}
