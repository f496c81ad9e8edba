package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/stretchr/testify/assert"
)

func TestRenderHeader_Track(t *testing.T) {
	assert.Contains(t, RenderHeader("Home", "", 90), "no track yet")
	h := RenderHeader("Home", "Data Science", 90)
	assert.Contains(t, h, "◆ Data Science")
	assert.Contains(t, h, "Pathwise")
}

func TestRenderFooter_DropsOverflow(t *testing.T) {
	hints := []KeyHint{
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: strings.Repeat("x", 200)},
	}
	f := RenderFooter(hints, 80)
	assert.Contains(t, f, "Select")
	assert.NotContains(t, f, "Esc")
	assert.Equal(t, 80, lipgloss.Width(f))
}

func TestRenderFrame_FillsHeight(t *testing.T) {
	frame := RenderFrame("head", "body", "foot", 80, 24)
	assert.Equal(t, 24, lipgloss.Height(frame))
}

func TestIsTooSmall(t *testing.T) {
	assert.True(t, IsTooSmall(79, 30))
	assert.True(t, IsTooSmall(100, 23))
	assert.False(t, IsTooSmall(MinWidth, MinHeight))
}
