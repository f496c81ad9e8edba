package calendar

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/progress"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

// Days is how far ahead the calendar looks.
const Days = 28

type calendarLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

// CalendarScreen shows the next four weeks of study sessions.
type CalendarScreen struct {
	svc    *screen.Services
	now    time.Time
	days   []progress.CalendarDay
	sched  *planner.StudySchedule
	loaded bool
	errMsg string
}

var _ screen.Screen = (*CalendarScreen)(nil)

// New creates a CalendarScreen.
func New(svc *screen.Services) *CalendarScreen {
	return &CalendarScreen{svc: svc}
}

func (s *CalendarScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		return calendarLoadedMsg{Profile: p, Err: err}
	}
}

func (s *CalendarScreen) Title() string {
	return "Study Calendar"
}

func (s *CalendarScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(calendarLoadedMsg); ok {
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.now = s.svc.Now()
		s.sched = msg.Profile.Schedule
		if s.sched != nil {
			s.days = progress.Calendar(*s.sched, s.now, Days)
		}
	}
	return s, nil
}

func (s *CalendarScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Center(theme.Failed.Render("Error: "+s.errMsg), width, height)
	}
	if !s.loaded {
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if s.sched == nil {
		return components.Center(theme.Hint.Render("No study plan yet. Set one up in the planner."), width, height)
	}

	var b strings.Builder
	b.WriteString(components.Heading(s.now.Format("January 2006"), theme.Primary))
	b.WriteString("\n\n")
	b.WriteString(renderGrid(s.days))
	b.WriteString("\n")
	b.WriteString(s.renderNext())

	return components.Center(components.Panel(b.String(), components.ContentWidth(width)), width, height)
}

// renderGrid lays days out in Monday-first week rows.
func renderGrid(days []progress.CalendarDay) string {
	if len(days) == 0 {
		return ""
	}
	var b strings.Builder
	for _, d := range planner.WeekOrder() {
		b.WriteString(theme.Hint.Render(fmt.Sprintf("%-5s", d.String()[:3])))
	}
	b.WriteString("\n")

	col := (int(days[0].Date.Weekday()) + 6) % 7
	b.WriteString(strings.Repeat(" ", col*5))
	for i, d := range days {
		cell := fmt.Sprintf("%2d", d.Date.Day())
		style := lipgloss.NewStyle().Foreground(theme.TextDim)
		switch {
		case len(d.Sessions) > 0:
			style = lipgloss.NewStyle().Foreground(theme.BgDark).Background(theme.Secondary).Bold(true)
		case i == 0:
			style = lipgloss.NewStyle().Foreground(theme.Text).Underline(true)
		}
		b.WriteString(style.Render(cell) + "   ")
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}
	return b.String()
}

func (s *CalendarScreen) renderNext() string {
	var next []planner.Session
	for _, d := range s.days {
		next = append(next, d.Sessions...)
	}
	if len(next) == 0 {
		return theme.Hint.Render("No sessions in the next four weeks.")
	}
	first := next[0].Start
	line := fmt.Sprintf("Next session: %s (%s)", first.Format("Mon Jan 2, 15:04"), until(first.Sub(s.now)))
	return theme.Body.Render(line) + "\n" + theme.Hint.Render(fmt.Sprintf("%d sessions planned", len(next)))
}

// until renders a coarse "in ..." duration.
func until(d time.Duration) string {
	switch {
	case d < time.Hour:
		return fmt.Sprintf("in %d min", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("in %d h", int(d.Hours()))
	default:
		return fmt.Sprintf("in %d days", int(d.Hours()/24))
	}
}
