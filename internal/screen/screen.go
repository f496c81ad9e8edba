package screen

import (
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/pathwise/pathwise/internal/interview"
	"github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/study"
	"github.com/pathwise/pathwise/internal/ui/layout"
)

// Screen defines the interface for all application screens.
type Screen interface {
	// Init returns an initial command when the screen is first created.
	Init() tea.Cmd

	// Update handles messages and returns updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHintProvider is an optional interface that screens can implement
// to provide custom footer key hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// Services bundles the collaborators screens read and write through.
type Services struct {
	Study *study.Service
	Bank  *quiz.Bank
	// Evaluator is nil when no LLM provider is configured.
	Evaluator     *interview.Evaluator
	QuestionCount int
	Rand          quiz.Rand
}

// Now reads the study clock.
func (s *Services) Now() time.Time {
	if s.Study != nil && s.Study.Now != nil {
		return s.Study.Now()
	}
	return time.Now()
}
