package roadmap

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

type roadmapLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

type itemCompletedMsg struct {
	Err error
}

// RoadmapScreen lists the learning milestones for the user's track.
type RoadmapScreen struct {
	svc      *screen.Services
	profile  *profile.Profile
	items    []string
	selected int
	errMsg   string
}

var _ screen.Screen = (*RoadmapScreen)(nil)
var _ screen.KeyHintProvider = (*RoadmapScreen)(nil)

// New creates a RoadmapScreen.
func New(svc *screen.Services) *RoadmapScreen {
	return &RoadmapScreen{svc: svc}
}

func (s *RoadmapScreen) Init() tea.Cmd {
	study := s.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		return roadmapLoadedMsg{Profile: p, Err: err}
	}
}

func (s *RoadmapScreen) Title() string {
	return "Roadmap"
}

func (s *RoadmapScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Space", Description: "Mark done"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *RoadmapScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case roadmapLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.profile = msg.Profile
		s.items = domain.Roadmap(msg.Profile.Domain)
		s.selected = min(s.selected, max(len(s.items)-1, 0))
		return s, nil

	case itemCompletedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		return s, s.Init()

	case tea.KeyPressMsg:
		switch msg.String() {
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.items)-1 {
				s.selected++
			}
		case "space", "enter":
			return s, s.complete()
		}
	}
	return s, nil
}

func (s *RoadmapScreen) complete() tea.Cmd {
	if s.profile == nil || len(s.items) == 0 {
		return nil
	}
	item := s.items[s.selected]
	if s.profile.IsCompleted(item) {
		return nil
	}
	study := s.svc.Study
	return func() tea.Msg {
		return itemCompletedMsg{Err: study.CompleteItem(context.Background(), item)}
	}
}

func (s *RoadmapScreen) View(width, height int) string {
	if s.profile == nil {
		if s.errMsg != "" {
			return components.Center(theme.Failed.Render(s.errMsg), width, height)
		}
		return components.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if !s.profile.Domain.Valid() {
		return components.Center(theme.Hint.Render("Take the career quiz to unlock your roadmap."), width, height)
	}

	cw := components.ContentWidth(width)
	info := domain.MustLookup(s.profile.Domain)
	accent := theme.Hex(info.Color)

	var b strings.Builder
	b.WriteString(components.Heading(info.Icon+"  "+info.Name+" roadmap", accent))
	b.WriteString("\n\n")

	done, total := s.profile.RoadmapProgress()
	bar := components.NewProgressBar(fmt.Sprintf("%d/%d done", done, total), components.Ratio(done, total), true, components.InnerWidth(cw))
	bar.Fill = accent
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	for i, item := range s.items {
		cb := components.Checkbox{
			Label:   fmt.Sprintf("%d. %s", i+1, item),
			Checked: s.profile.IsCompleted(item),
			Focused: i == s.selected,
		}
		b.WriteString(cb.View())
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n" + theme.Failed.Render(s.errMsg))
	}
	return components.Center(components.AccentPanel(b.String(), cw, accent), width, height)
}
