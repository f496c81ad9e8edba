package components

import (
	"fmt"
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/progress"
	"github.com/pathwise/pathwise/internal/ui/theme"
)

// RatingColor maps a score band to its palette color.
func RatingColor(r progress.Rating) color.Color {
	switch r {
	case progress.Excellent:
		return theme.Success
	case progress.Good:
		return theme.Warning
	default:
		return theme.Error
	}
}

// Score renders a 0-100 score colored by its band.
func Score(score int) string {
	return lipgloss.NewStyle().
		Foreground(RatingColor(progress.Band(score))).
		Bold(true).
		Render(fmt.Sprintf("%3d", score))
}
