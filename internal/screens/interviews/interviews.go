package interviews

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/progress"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type interviewsLoadedMsg struct {
	Results []profile.InterviewResult
	Err     error
}

// InterviewsScreen lists graded mock interviews with range and track filters.
type InterviewsScreen struct {
	svc      *screen.Services
	all      []profile.InterviewResult
	shown    []profile.InterviewResult
	rangeIdx int
	// domainIdx 0 is every track, then domain.All() in order.
	domainIdx int
	selected  int
	expanded  bool
	loaded    bool
	errMsg    string
}

var _ screen.Screen = (*InterviewsScreen)(nil)
var _ screen.KeyHintProvider = (*InterviewsScreen)(nil)

// New creates an InterviewsScreen.
func New(svc *screen.Services) *InterviewsScreen {
	return &InterviewsScreen{svc: svc}
}

func (s *InterviewsScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		if err != nil {
			return interviewsLoadedMsg{Err: err}
		}
		return interviewsLoadedMsg{Results: p.Interviews}
	}
}

func (s *InterviewsScreen) Title() string {
	return "Interview Results"
}

func (s *InterviewsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Score range"},
		{Key: "d", Description: "Track"},
		{Key: "Enter", Description: "Feedback"},
		{Key: "Esc", Description: "Back"},
	}
}

// Filter returns the active filter.
func (s *InterviewsScreen) Filter() progress.InterviewFilter {
	f := progress.InterviewFilter{Range: progress.Ranges()[s.rangeIdx]}
	if s.domainIdx > 0 {
		f.Domain = domain.All()[s.domainIdx-1]
	}
	return f
}

func (s *InterviewsScreen) refilter() {
	s.shown = s.Filter().Apply(s.all)
	s.selected = 0
	s.expanded = false
}

func (s *InterviewsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case interviewsLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.all = msg.Results
		s.refilter()
		return s, nil

	case tea.KeyPressMsg:
		n := len(progress.Ranges())
		switch msg.String() {
		case "right", "l", "tab":
			s.rangeIdx = (s.rangeIdx + 1) % n
			s.refilter()
		case "left", "h", "shift+tab":
			s.rangeIdx = (s.rangeIdx + n - 1) % n
			s.refilter()
		case "d":
			s.domainIdx = (s.domainIdx + 1) % (len(domain.All()) + 1)
			s.refilter()
		case "up", "k":
			if s.selected > 0 {
				s.selected--
				s.expanded = false
			}
		case "down", "j":
			if s.selected < len(s.shown)-1 {
				s.selected++
				s.expanded = false
			}
		case "enter":
			s.expanded = !s.expanded
		}
	}
	return s, nil
}

func (s *InterviewsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return components.Center(theme.Failed.Render("Error: "+s.errMsg), width, height)
	}
	if !s.loaded {
		return components.Center(theme.Hint.Render("Loading interviews..."), width, height)
	}

	cw := components.ContentWidth(width)
	var b strings.Builder
	b.WriteString(s.renderFilterBar())
	b.WriteString("\n\n")

	if len(s.shown) == 0 {
		b.WriteString(theme.Hint.Render("No interviews match this filter."))
		return components.Center(components.Panel(b.String(), cw), width, height)
	}

	rows := height - 10
	if s.expanded {
		rows -= 4
	}
	start, end := components.Window(s.selected, len(s.shown), rows)
	for i := start; i < end; i++ {
		r := s.shown[i]
		info := domain.MustLookup(r.Domain)
		prefix := "  "
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			prefix = "> "
			style = style.Foreground(theme.Primary).Bold(true)
		}
		line := style.Render(fmt.Sprintf("%s%s  %s %-22s", prefix, r.Date.Format("Jan 02"), info.Icon, info.Name))
		b.WriteString(line + " " + components.Score(r.Score))
		b.WriteString("\n")
		if i == s.selected && s.expanded {
			b.WriteString(lipgloss.NewStyle().
				Width(components.InnerWidth(cw)).
				PaddingLeft(4).
				Foreground(theme.TextDim).
				Render(r.Feedback))
			b.WriteString("\n")
		}
	}

	return components.Center(components.Panel(b.String(), cw), width, height)
}

func (s *InterviewsScreen) renderFilterBar() string {
	var parts []string
	for i, r := range progress.Ranges() {
		if i == s.rangeIdx {
			parts = append(parts, theme.Selected.Render("["+r.Label+"]"))
		} else {
			parts = append(parts, theme.Hint.Render(r.Label))
		}
	}
	track := "All tracks"
	if f := s.Filter(); f.Domain != "" {
		track = f.Domain.DisplayName()
	}
	return strings.Join(parts, " ") + "\n" + theme.Body.Render("Track: ") + theme.Selected.Render(track) +
		theme.Hint.Render(fmt.Sprintf("   %d of %d", len(s.shown), len(s.all)))
}
