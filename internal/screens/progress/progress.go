package progress

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	prog "github.com/pathwise/pathwise/internal/progress"
	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/screens/calendar"
	"github.com/pathwise/pathwise/internal/screens/history"
	"github.com/pathwise/pathwise/internal/screens/interviews"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type progressLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

// ProgressScreen summarizes tests, interviews and the week ahead.
type ProgressScreen struct {
	svc     *screen.Services
	profile *profile.Profile
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*ProgressScreen)(nil)

// New creates a ProgressScreen.
func New(svc *screen.Services) *ProgressScreen {
	return &ProgressScreen{
		svc: svc,
		menu: components.NewMenu([]components.MenuItem{
			{Label: "Test History", Action: func() tea.Cmd { return router.Push(history.New(svc)) }},
			{Label: "Interview Results", Action: func() tea.Cmd { return router.Push(interviews.New(svc)) }},
			{Label: "Study Calendar", Action: func() tea.Cmd { return router.Push(calendar.New(svc)) }},
		}),
	}
}

func (s *ProgressScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		return progressLoadedMsg{Profile: p, Err: err}
	}
}

func (s *ProgressScreen) Title() string {
	return "Progress"
}

func (s *ProgressScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case progressLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.profile = msg.Profile
		return s, nil
	}
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *ProgressScreen) View(width, height int) string {
	if s.profile == nil {
		if s.errMsg != "" {
			return components.Center(theme.Failed.Render(s.errMsg), width, height)
		}
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}
	cw := components.ContentWidth(width)
	half := cw/2 + 2

	tests := components.Panel(renderTests(prog.SummarizeTests(s.profile.TestScores)), half)
	interviews := components.Panel(renderInterviews(prog.InterviewAverages(s.profile.Interviews)), half)
	top := lipgloss.JoinHorizontal(lipgloss.Top, tests, " ", interviews)

	week := components.Panel(s.renderWeek(), cw+3)
	content := lipgloss.JoinVertical(lipgloss.Left, top, week, "", s.menu.View())
	return components.Center(content, width, height)
}

func renderTests(sum prog.TestSummary) string {
	var b strings.Builder
	b.WriteString(components.Heading("Skill tests", theme.Primary))
	b.WriteString("\n\n")
	if sum.Count == 0 {
		b.WriteString(theme.Hint.Render("No tests recorded yet."))
		return b.String()
	}
	fmt.Fprintf(&b, "Taken    %d\n", sum.Count)
	fmt.Fprintf(&b, "Average  %.0f\n", sum.Average)
	fmt.Fprintf(&b, "Latest   %s %s\n", components.Score(sum.Latest.Score), prog.Band(sum.Latest.Score))
	fmt.Fprintf(&b, "Best     %s\n", components.Score(sum.Best.Score))
	fmt.Fprintf(&b, "Trend    %s", trend(sum.Trend))
	return b.String()
}

func trend(t float64) string {
	switch {
	case t > 0:
		return theme.Done.Render(fmt.Sprintf("▲ %.0f", t))
	case t < 0:
		return theme.Failed.Render(fmt.Sprintf("▼ %.0f", -t))
	default:
		return theme.Hint.Render("steady")
	}
}

func renderInterviews(avgs []prog.DomainAverage) string {
	var b strings.Builder
	b.WriteString(components.Heading("Mock interviews", theme.Secondary))
	b.WriteString("\n\n")
	if len(avgs) == 0 {
		b.WriteString(theme.Hint.Render("No interviews yet."))
		return b.String()
	}
	for _, a := range avgs {
		info := domain.MustLookup(a.Domain)
		fmt.Fprintf(&b, "%s %s  %s (%d)\n", info.Icon, short(info.Name, 14), components.Score(int(a.Average+0.5)), a.Count)
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (s *ProgressScreen) renderWeek() string {
	var b strings.Builder
	b.WriteString(components.Heading("Next 7 days", theme.Accent))
	b.WriteString("\n")
	if s.profile.Schedule == nil {
		b.WriteString(theme.Hint.Render("No study plan. Set one up in the planner."))
		return b.String()
	}
	sessions := planner.Upcoming(*s.profile.Schedule, s.svc.Now(), 7)
	if len(sessions) == 0 {
		b.WriteString(theme.Hint.Render("Nothing scheduled this week."))
		return b.String()
	}
	parts := make([]string, len(sessions))
	for i, sess := range sessions {
		parts[i] = sess.Start.Format("Mon 15:04")
	}
	b.WriteString(theme.Body.Render(strings.Join(parts, " · ")))
	return b.String()
}

func short(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s + strings.Repeat(" ", n-len(r))
	}
	return string(r[:n-1]) + "…"
}
