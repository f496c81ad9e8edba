package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/pathwise/pathwise/internal/ui/theme"
)

// Choice is a single-answer option list. Options are picked with the
// arrow keys and Enter, or directly by their number.
type Choice struct {
	Prompt   string
	Options  []string
	Selected int
	// Chosen is -1 until an option is confirmed.
	Chosen int
}

// NewChoice creates an option list with nothing chosen yet.
func NewChoice(prompt string, options []string) Choice {
	return Choice{
		Prompt:  prompt,
		Options: options,
		Chosen:  -1,
	}
}

// Confirmed reports whether an option has been picked.
func (c Choice) Confirmed() bool {
	return c.Chosen >= 0
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) Choice {
	if c.Confirmed() {
		return c
	}
	kmsg, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return c
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter":
		c.Chosen = c.Selected
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if n := int(key[0] - '1'); n < len(c.Options) {
				c.Selected = n
				c.Chosen = n
			}
		}
	}
	return c
}

// View renders the prompt and its options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(theme.Body.Bold(true).Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)
		if i == c.Selected {
			b.WriteString(theme.Selected.Render(line))
		} else {
			b.WriteString(theme.Unselected.Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}
