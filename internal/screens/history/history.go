package history

import (
	"context"
	"fmt"
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/progress"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type historyLoadedMsg struct {
	Tests []profile.TestScore
	Err   error
}

// HistoryScreen lists recorded skill tests, newest first.
type HistoryScreen struct {
	svc      *screen.Services
	tests    []profile.TestScore
	selected int
	loaded   bool
	errMsg   string
}

var _ screen.Screen = (*HistoryScreen)(nil)
var _ screen.KeyHintProvider = (*HistoryScreen)(nil)

// New creates a new HistoryScreen.
func New(svc *screen.Services) *HistoryScreen {
	return &HistoryScreen{svc: svc}
}

func (s *HistoryScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		tests := progress.SortedTests(p.TestScores)
		slices.Reverse(tests)
		return historyLoadedMsg{Tests: tests}
	}
}

func (s *HistoryScreen) Title() string {
	return "Test History"
}

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Scroll"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.tests = msg.Tests
		}
		s.loaded = true
		return s, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.tests)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *HistoryScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Center(theme.Failed.Render("Error: "+s.errMsg), width, height)
	}
	if !s.loaded {
		return components.Center(theme.Hint.Render("Loading history..."), width, height)
	}
	if len(s.tests) == 0 {
		return components.Center(theme.Hint.Render("No tests yet. Record one with `pathwise score add`."), width, height)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\n", components.Heading(fmt.Sprintf("%d tests", len(s.tests)), theme.Primary))

	start, end := components.Window(s.selected, len(s.tests), height-8)
	for i := start; i < end; i++ {
		ts := s.tests[i]
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		topic := ts.Topic
		if topic == "" {
			topic = "General"
		}
		line := style.Render(fmt.Sprintf("%s%s  %-24s", prefix, ts.Date.Format("Jan 02, 2006"), topic))
		b.WriteString(line + " " + components.Score(ts.Score) + "  " + theme.Hint.Render(progress.Band(ts.Score).String()))
		b.WriteString("\n")
	}

	return components.Center(components.Panel(b.String(), cw), width, height)
}
