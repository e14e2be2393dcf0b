package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/florian-runner/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorGreen:      lipgloss.NewStyle().Foreground(lipgloss.Color("#16a34a")),
	core.ColorWhite:      lipgloss.NewStyle().Foreground(lipgloss.Color("#f8fafc")),
	core.ColorBlack:      lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")),
	core.ColorSlate:      lipgloss.NewStyle().Foreground(lipgloss.Color("#334155")),
	core.ColorSlateLight: lipgloss.NewStyle().Foreground(lipgloss.Color("#64748b")),
	core.ColorGray:       lipgloss.NewStyle().Foreground(lipgloss.Color("#6b7280")),
	core.ColorGrayDark:   lipgloss.NewStyle().Foreground(lipgloss.Color("#374151")),
	core.ColorNavy:       lipgloss.NewStyle().Foreground(lipgloss.Color("#1e3a8a")),
	core.ColorSilver:     lipgloss.NewStyle().Foreground(lipgloss.Color("#cbd5e1")),
	core.ColorDimWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("#f8fafc")).Faint(true),
	core.ColorDimBlack:   lipgloss.NewStyle().Foreground(lipgloss.Color("#111827")).Faint(true),
}

// styleFor returns the style for a colour, falling back to the default.
func styleFor(c core.Color) lipgloss.Style {
	if style, ok := colorStyles[c]; ok {
		return style
	}
	return colorStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
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

			sb.WriteString(styleFor(startColor).Render(run.String()))
		}
	}
	return sb.String()
}
