package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/domain"
	"github.com/pathwise/pathwise/internal/planner"
	"github.com/pathwise/pathwise/internal/profile"
	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/screens/interview"
	plannerscreen "github.com/pathwise/pathwise/internal/screens/planner"
	progressscreen "github.com/pathwise/pathwise/internal/screens/progress"
	quizscreen "github.com/pathwise/pathwise/internal/screens/quiz"
	"github.com/pathwise/pathwise/internal/screens/roadmap"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

// Menu positions.
const (
	itemQuiz = iota
	itemPlanner
	itemRoadmap
	itemProgress
	itemInterview
	itemQuit
)

type homeLoadedMsg struct {
	Profile *profile.Profile
	Err     error
}

// HomeScreen is the main menu. It reloads the profile whenever it
// becomes active so the track card stays current.
type HomeScreen struct {
	svc     *screen.Services
	profile *profile.Profile
	menu    components.Menu
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen.
func New(svc *screen.Services) *HomeScreen {
	h := &HomeScreen{svc: svc}
	h.menu = components.NewMenu(h.items(nil))
	return h
}

func (h *HomeScreen) items(p *profile.Profile) []components.MenuItem {
	svc := h.svc
	hasTrack := p != nil && p.Domain.Valid()

	quizHint := "find your track"
	if hasTrack {
		quizHint = "retake"
	}
	interviewHint := ""
	switch {
	case svc.Evaluator == nil:
		interviewHint = "needs an LLM provider"
	case !hasTrack:
		interviewHint = "take the quiz first"
	}
	roadmapHint := ""
	if !hasTrack {
		roadmapHint = "take the quiz first"
	}

	return []components.MenuItem{
		itemQuiz: {Label: "Take the Quiz", Hint: quizHint, Action: func() tea.Cmd {
			return router.Push(quizscreen.New(svc))
		}},
		itemPlanner: {Label: "Study Planner", Action: func() tea.Cmd {
			return router.Push(plannerscreen.New(svc))
		}},
		itemRoadmap: {Label: "Roadmap", Hint: roadmapHint, Disabled: !hasTrack, Action: func() tea.Cmd {
			return router.Push(roadmap.New(svc))
		}},
		itemProgress: {Label: "Progress", Action: func() tea.Cmd {
			return router.Push(progressscreen.New(svc))
		}},
		itemInterview: {Label: "Mock Interview", Hint: interviewHint, Disabled: svc.Evaluator == nil || !hasTrack, Action: func() tea.Cmd {
			return router.Push(interview.New(svc))
		}},
		itemQuit: {Label: "Quit", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	study := h.svc.Study
	return func() tea.Msg {
		p, err := study.Load(context.Background())
		return homeLoadedMsg{Profile: p, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if msg, ok := msg.(homeLoadedMsg); ok {
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			return h, nil
		}
		h.profile = msg.Profile
		selected := h.menu.Selected
		h.menu = components.NewMenu(h.items(msg.Profile))
		if !h.menu.Items[selected].Disabled {
			h.menu.Selected = selected
		}
		return h, nil
	}
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	var sections []string
	card := h.renderTrackCard(components.InnerWidth(cw))
	if height >= 24 {
		card = lipgloss.JoinHorizontal(lipgloss.Center, RenderGuide(h.guide()), "   ", card)
	}
	sections = append(sections, components.Panel(card, cw))
	if h.errMsg != "" {
		sections = append(sections, theme.Failed.Render(h.errMsg))
	}
	sections = append(sections, h.menu.View())
	return components.Center(strings.Join(sections, "\n"), width, height)
}

func (h *HomeScreen) guide() GuideVariant {
	if h.profile == nil || !h.profile.Domain.Valid() {
		return GuideLost
	}
	if done, total := h.profile.RoadmapProgress(); total > 0 && done == total {
		return GuideArrived
	}
	return GuideOnTrack
}

func (h *HomeScreen) renderTrackCard(width int) string {
	p := h.profile
	if p == nil || !p.Domain.Valid() {
		return theme.Title.Render("Welcome!") + "\n" +
			theme.Hint.Render("Take the quiz to discover your tech track.")
	}

	info := domain.MustLookup(p.Domain)
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(theme.Hex(info.Color)).Render(info.Icon + " " + info.Name))
	b.WriteString("\n")

	done, total := p.RoadmapProgress()
	bar := components.ProgressBar{
		Percent: components.Ratio(done, total),
		Width:   min(width-20, 24),
		Fill:    theme.Hex(info.Color),
	}
	fmt.Fprintf(&b, "Roadmap  %s %d/%d\n", bar.View(), done, total)

	next := "no plan yet"
	if p.Schedule != nil {
		if sessions := planner.Upcoming(*p.Schedule, h.svc.Now(), 7); len(sessions) > 0 {
			next = sessions[0].Start.Format("Mon 15:04")
		} else {
			next = "none this week"
		}
	}
	b.WriteString("Next     " + theme.Body.Render(next))
	return b.String()
}

func (h *HomeScreen) Title() string {
	return "Home"
}
