package quiz

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	qz "github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/screens/result"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

// resultSavedMsg is sent once the matched track has been stored.
type resultSavedMsg struct {
	Result qz.ScoreResult
	Err    error
}

// QuizScreen walks the user through one sampled quiz.
type QuizScreen struct {
	svc     *screen.Services
	session *qz.Session
	choice  components.Choice
	saving  bool
	errMsg  string
}

var _ screen.Screen = (*QuizScreen)(nil)
var _ screen.KeyHintProvider = (*QuizScreen)(nil)

// New samples a quiz from the configured bank.
func New(svc *screen.Services) *QuizScreen {
	s := &QuizScreen{svc: svc}
	session, err := qz.NewSession(svc.Bank.Questions, svc.QuestionCount, svc.Rand)
	if err != nil {
		s.errMsg = err.Error()
		return s
	}
	s.session = session
	s.loadQuestion()
	return s
}

func (s *QuizScreen) Init() tea.Cmd {
	return nil
}

func (s *QuizScreen) Title() string {
	return "Career Quiz"
}

func (s *QuizScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "1-9", Description: "Answer"},
		{Key: "Enter", Description: "Confirm"},
		{Key: "Esc", Description: "Abandon"},
	}
}

func (s *QuizScreen) loadQuestion() {
	q, ok := s.session.Current()
	if !ok {
		return
	}
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = o.Text
	}
	s.choice = components.NewChoice(q.Question, labels)
}

func (s *QuizScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case resultSavedMsg:
		s.saving = false
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, router.Replace(result.New(msg.Result))

	case tea.KeyPressMsg:
		if s.session == nil || s.saving || s.session.Done() {
			return s, nil
		}
		s.choice = s.choice.Update(msg)
		if !s.choice.Confirmed() {
			return s, nil
		}
		if err := s.session.Answer(s.choice.Chosen); err != nil {
			s.errMsg = err.Error()
			return s, nil
		}
		if !s.session.Done() {
			s.loadQuestion()
			return s, nil
		}
		return s, s.finish()
	}
	return s, nil
}

// finish resolves the quiz and stores the primary track.
func (s *QuizScreen) finish() tea.Cmd {
	res, err := s.session.Result()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	s.saving = true
	study := s.svc.Study
	return func() tea.Msg {
		if res.HasPreference() {
			if err := study.AdoptTrack(context.Background(), res.Primary.Info.Key); err != nil {
				return resultSavedMsg{Err: err}
			}
		}
		return resultSavedMsg{Result: res}
	}
}

func (s *QuizScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if s.session == nil {
		return components.Center(theme.Failed.Render("Cannot start the quiz: "+s.errMsg), width, height)
	}

	var b strings.Builder
	step := min(s.session.Index()+1, s.session.Total())
	bar := components.NewProgressBar(
		fmt.Sprintf("Question %d of %d", step, s.session.Total()),
		components.Ratio(s.session.Index(), s.session.Total()),
		false, components.InnerWidth(cw),
	)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	if s.saving {
		b.WriteString(theme.Hint.Render("Matching you with a track..."))
	} else {
		b.WriteString(lipgloss.NewStyle().Width(components.InnerWidth(cw)).Render(s.choice.View()))
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Failed.Render(s.errMsg))
	}

	return components.Center(components.Panel(b.String(), cw), width, height)
}
