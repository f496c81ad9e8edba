package result

import (
	"fmt"
	"sort"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/domain"
	qz "github.com/pathwise/pathwise/internal/quiz"
	"github.com/pathwise/pathwise/internal/router"
	"github.com/pathwise/pathwise/internal/screen"
	"github.com/pathwise/pathwise/internal/ui/components"
	"github.com/pathwise/pathwise/internal/ui/layout"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

// ResultScreen shows the matched track and the per-domain tally.
type ResultScreen struct {
	result qz.ScoreResult
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)

// New creates a ResultScreen for res.
func New(res qz.ScoreResult) *ResultScreen {
	return &ResultScreen{result: res}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Your Match"
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Continue"},
		{Key: "Esc", Description: "Home"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return s, router.Pop()
	}
	return s, nil
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	res := s.result

	var b strings.Builder
	primary := res.Primary.Info
	if !res.HasPreference() {
		b.WriteString(components.Heading(primary.Icon+"  "+primary.Name, theme.Accent))
		b.WriteString("\n\n")
		b.WriteString(theme.Body.Render(primary.Description))
		return components.Center(components.Panel(b.String(), cw), width, height)
	}

	accent := theme.Hex(primary.Color)
	b.WriteString(theme.Hint.Render("Your best match"))
	b.WriteString("\n")
	b.WriteString(components.Heading(primary.Icon+"  "+primary.Name, accent))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Width(components.InnerWidth(cw)).Foreground(theme.Text).Render(primary.Description))
	b.WriteString("\n\n")
	for _, trait := range primary.Traits {
		b.WriteString(theme.Body.Render("  • " + trait))
		b.WriteString("\n")
	}

	if res.Secondary != nil {
		sec := res.Secondary.Info
		b.WriteString("\n")
		b.WriteString(theme.Hint.Render("Also worth a look: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Hex(sec.Color)).Bold(true).Render(sec.Icon + " " + sec.Name))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(renderTally(res.Scores, components.InnerWidth(cw)))

	return components.Center(components.AccentPanel(b.String(), cw, accent), width, height)
}

// renderTally draws one bar per scored domain, highest first.
func renderTally(t qz.Tally, width int) string {
	keys := make([]domain.Key, 0, len(t))
	total := 0
	for _, k := range domain.All() {
		if n := t.Score(k); n > 0 {
			keys = append(keys, k)
			total += n
		}
	}
	sort.SliceStable(keys, func(i, j int) bool { return t.Score(keys[i]) > t.Score(keys[j]) })

	var b strings.Builder
	for _, k := range keys {
		info := domain.MustLookup(k)
		bar := components.NewProgressBar(fmt.Sprintf("%-18s %2d", info.Name, t.Score(k)), components.Ratio(t.Score(k), total), false, width)
		bar.Fill = theme.Hex(info.Color)
		b.WriteString(bar.View())
		b.WriteString("\n")
	}
	return b.String()
}
