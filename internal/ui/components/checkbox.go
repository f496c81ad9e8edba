package components

import "github.com/pathwise/pathwise/internal/ui/theme"

// Checkbox renders a labelled on/off toggle.
type Checkbox struct {
	Label   string
	Checked bool
	Focused bool
}

// View renders the checkbox on one line.
func (c Checkbox) View() string {
	mark := "[ ]"
	if c.Checked {
		mark = "[x]"
	}
	line := mark + " " + c.Label
	switch {
	case c.Focused:
		return theme.Selected.Render("▸ " + line)
	case c.Checked:
		return theme.Done.Render("  " + line)
	default:
		return theme.Unselected.Render("  " + line)
	}
}
