package home

import (
	"charm.land/lipgloss/v2"

	"github.com/pathwise/pathwise/internal/ui/theme"
)

// GuideVariant selects which signpost art to display.
type GuideVariant int

const (
	GuideLost      GuideVariant = iota // no track chosen
	GuideOnTrack                       // track chosen, roadmap in progress
	GuideArrived                       // roadmap complete
)

const guideLost = `  ┌───┐
  │ ? │
  └─┬─┘
    │
 ───┴───`

const guideOnTrack = `  ┌────▶
  │ go
  ├────▶
  │
 ─┴───`

const guideArrived = `   ★
  ┌┴┐
  │✓│
  └┬┘
 ──┴──`

// RenderGuide returns the signpost art for the variant.
func RenderGuide(v GuideVariant) string {
	art := guideLost
	fg := theme.TextDim

	switch v {
	case GuideOnTrack:
		art = guideOnTrack
		fg = theme.Primary
	case GuideArrived:
		art = guideArrived
		fg = theme.Accent
	}

	return lipgloss.NewStyle().Foreground(fg).Render(art)
}
