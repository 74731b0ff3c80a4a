package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

// styleKey identifies one foreground/background combination.
type styleKey struct {
	fg, bg core.RGB
}

// styleCache holds lipgloss styles per colour pair so a frame builds each
// style once.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(fg, bg core.RGB) lipgloss.Style {
	k := styleKey{fg: fg, bg: bg}
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg.Hex())).
		Background(lipgloss.Color(bg.Hex()))
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colours to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		// Group consecutive cells with the same colours for efficiency
		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
