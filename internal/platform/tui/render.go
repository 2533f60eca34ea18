package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pressure-zone/internal/core"
)

// palette maps core.Color to ANSI 256 color codes.
var palette = map[core.Color]string{
	core.ColorWhite:       "7",
	core.ColorBrightWhite: "15",
	core.ColorGray:        "245",
	core.ColorDim:         "238",
	core.ColorSteel:       "67",
	core.ColorCyan:        "14",
	core.ColorYellow:      "220",
	core.ColorRed:         "196",
}

// flashBackgrounds are the overlay backgrounds from faintest to brightest.
var flashBackgrounds = []string{"236", "242", "250"}

// styleSets holds one style map per flash level; index 0 is no flash.
var styleSets = buildStyleSets()

func buildStyleSets() []map[core.Color]lipgloss.Style {
	sets := make([]map[core.Color]lipgloss.Style, len(flashBackgrounds)+1)
	for i := range sets {
		styles := make(map[core.Color]lipgloss.Style, len(palette)+1)
		base := lipgloss.NewStyle()
		if i > 0 {
			base = base.Background(lipgloss.Color(flashBackgrounds[i-1]))
		}
		styles[core.ColorDefault] = base
		for c, code := range palette {
			styles[c] = base.Foreground(lipgloss.Color(code))
		}
		sets[i] = styles
	}
	return sets
}

// flashLevel buckets a flash opacity in [0, 0.35] into a style set index.
func flashLevel(intensity float64) int {
	switch {
	case intensity <= 0:
		return 0
	case intensity < 0.12:
		return 1
	case intensity < 0.24:
		return 2
	default:
		return 3
	}
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	return RenderScreenFlash(s, 0)
}

// RenderScreenFlash renders s with the death flash overlay at the given
// opacity.
func RenderScreenFlash(s *core.Screen, flash float64) string {
	styles := styleSets[flashLevel(flash)]

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := styles[startColor]
			if !ok {
				style = styles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
