package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/ui/theme"
)

// ContentWidth returns the uniform inner width used for stacked panels
// so they visually align.
func ContentWidth(frameWidth int) int {
	w := frameWidth - 6
	if w > 64 {
		w = 64
	}
	if w < 20 {
		w = 20
	}
	return w
}

// InnerWidth is the usable text width inside a Panel of width cw.
func InnerWidth(cw int) int {
	return max(cw-8, 10)
}

// Panel wraps content in a rounded card of width cw.
func Panel(content string, cw int) string {
	return theme.Card.
		Width(cw).
		Render(content)
}

// AccentPanel is a Panel with a colored border.
func AccentPanel(content string, cw int, c color.Color) string {
	return theme.Card.
		Width(cw).
		BorderForeground(c).
		Render(content)
}

// Heading renders a bold section heading.
func Heading(s string, c color.Color) string {
	return lipgloss.NewStyle().Foreground(c).Bold(true).Render(s)
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Window returns the [start, end) slice of n rows that keeps selected
// visible when only rows fit.
func Window(selected, n, rows int) (start, end int) {
	if rows <= 0 || n <= rows {
		return 0, n
	}
	start = max(0, selected-rows/2)
	start = min(start, n-rows)
	return start, start + rows
}
