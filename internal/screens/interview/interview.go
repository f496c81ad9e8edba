package interview

import (
	"context"
	"strings"

	"charm.land/bubbles/v2/textarea"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/domain"
	iv "github.com/pathwise/pathwise/internal/interview"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type phase int

const (
	phaseLoading phase = iota
	phaseAnswering
	phaseGrading
	phaseGraded
)

type trackLoadedMsg struct {
	Track domain.Key
	Err   error
}

// gradedMsg carries the evaluation once it has been stored.
type gradedMsg struct {
	Evaluation *iv.Evaluation
	Err        error
}

// InterviewScreen runs a practice interview question graded by the LLM.
type InterviewScreen struct {
	svc      *screen.Services
	track    domain.Key
	question string
	answer   textarea.Model
	phase    phase
	result   *iv.Evaluation
	errMsg   string
}

var _ screen.Screen = (*InterviewScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewScreen)(nil)

// New creates an InterviewScreen. svc.Evaluator must be set.
func New(svc *screen.Services) *InterviewScreen {
	ta := textarea.New()
	ta.Placeholder = "Type your answer..."
	ta.ShowLineNumbers = false
	ta.CharLimit = 4000
	ta.SetHeight(6)
	return &InterviewScreen{svc: svc, answer: ta}
}

func (s *InterviewScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		if err != nil {
			return trackLoadedMsg{Err: err}
		}
		return trackLoadedMsg{Track: p.Domain}
	}
}

func (s *InterviewScreen) Title() string {
	return "Mock Interview"
}

func (s *InterviewScreen) KeyHints() []layout.KeyHint {
	if s.phase == phaseGraded {
		return []layout.KeyHint{
			{Key: "n", Description: "Next question"},
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "Ctrl+S", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *InterviewScreen) nextQuestion() tea.Cmd {
	s.question = iv.PickQuestion(s.track, s.svc.Rand)
	s.answer.Reset()
	s.result = nil
	s.errMsg = ""
	s.phase = phaseAnswering
	return s.answer.Focus()
}

func (s *InterviewScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case trackLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.track = msg.Track
		if !s.track.Valid() || s.svc.Evaluator == nil {
			return s, nil
		}
		return s, s.nextQuestion()

	case gradedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			s.phase = phaseAnswering
			return s, s.answer.Focus()
		}
		s.result = msg.Evaluation
		s.phase = phaseGraded
		return s, nil

	case tea.KeyPressMsg:
		switch s.phase {
		case phaseAnswering:
			if msg.String() == "ctrl+s" {
				return s, s.submit()
			}
		case phaseGraded:
			if msg.String() == "n" {
				return s, s.nextQuestion()
			}
			return s, nil
		default:
			return s, nil
		}
	}

	if s.phase != phaseAnswering {
		return s, nil
	}
	var cmd tea.Cmd
	s.answer, cmd = s.answer.Update(msg)
	return s, cmd
}

func (s *InterviewScreen) submit() tea.Cmd {
	answer := strings.TrimSpace(s.answer.Value())
	if answer == "" {
		s.errMsg = "Write an answer before submitting."
		return nil
	}
	s.errMsg = ""
	s.phase = phaseGrading
	s.answer.Blur()

	eval := s.svc.Evaluator
	repo := s.svc.Study.Profile
	track, question, at := s.track, s.question, s.svc.Now()
	return func() tea.Msg {
		ctx := context.Background()
		ev, err := eval.Evaluate(ctx, track, question, answer)
		if err != nil {
			return gradedMsg{Err: err}
		}
		if _, err := iv.Record(ctx, repo, track, ev, at); err != nil {
			return gradedMsg{Err: err}
		}
		return gradedMsg{Evaluation: ev}
	}
}

func (s *InterviewScreen) View(width, height int) string {
	switch {
	case s.svc.Evaluator == nil:
		return components.Center(theme.Hint.Render("Mock interviews need an LLM provider. Set PATHWISE_LLM_PROVIDER and an API key."), width, height)
	case s.phase == phaseLoading && s.errMsg != "":
		return components.Center(theme.Failed.Render(s.errMsg), width, height)
	case s.phase == phaseLoading && s.track == "":
		return components.Center(theme.Hint.Render("Take the career quiz first so we know which track to interview you for."), width, height)
	case s.phase == phaseLoading:
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}

	cw := components.ContentWidth(width)
	inner := components.InnerWidth(cw)
	info := domain.MustLookup(s.track)

	var b strings.Builder
	b.WriteString(theme.Hint.Render(info.Icon + " " + info.Name + " interview"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(inner).Foreground(theme.Text).Bold(true).Render(s.question))
	b.WriteString("\n\n")

	switch s.phase {
	case phaseAnswering:
		s.answer.SetWidth(inner)
		b.WriteString(s.answer.View())
	case phaseGrading:
		b.WriteString(theme.Hint.Render("Grading your answer..."))
	case phaseGraded:
		b.WriteString(renderEvaluation(s.result, inner))
	}

	if s.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().Width(inner).Render(theme.Failed.Render(s.errMsg)))
	}
	return components.Center(components.AccentPanel(b.String(), cw, theme.Hex(info.Color)), width, height)
}

func renderEvaluation(ev *iv.Evaluation, width int) string {
	var b strings.Builder
	b.WriteString("Score " + components.Score(ev.Score))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().Width(width).Foreground(theme.Text).Render(ev.Feedback))
	b.WriteString("\n")
	if len(ev.Strengths) > 0 {
		b.WriteString("\n" + components.Heading("Strengths", theme.Success) + "\n")
		for _, st := range ev.Strengths {
			b.WriteString(lipgloss.NewStyle().Width(width).Render("  + "+st) + "\n")
		}
	}
	if len(ev.Improvements) > 0 {
		b.WriteString("\n" + components.Heading("Work on", theme.Warning) + "\n")
		for _, im := range ev.Improvements {
			b.WriteString(lipgloss.NewStyle().Width(width).Render("  - "+im) + "\n")
		}
	}
	return b.String()
}
