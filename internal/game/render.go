package game

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

// CyborgSymbol is how the player is drawn.
const CyborgSymbol = '@'

// RenderOptions controls how a scene maps onto the screen.
type RenderOptions struct {
	CellWidth  int      // Terminal columns per tile
	Background core.RGB // Play field colour
}

// DefaultRenderOptions returns two-column tiles on the standard background.
func DefaultRenderOptions() RenderOptions {
	return RenderOptions{CellWidth: 2, Background: core.ColorBackground}
}

// BoardSize returns the screen size the play field needs.
func BoardSize(grid core.Grid, cellWidth int) (w, h int) {
	return grid.Width() * max(cellWidth, 1), grid.Height()
}

// Render draws scene into dst.
func Render(scene Scene, dst *core.Screen, opts RenderOptions) {
	if opts.CellWidth <= 0 {
		opts.CellWidth = 1
	}

	if !scene.OnBoard() {
		dst.SetPen(core.ColorWhite, core.ColorBlack)
		dst.Clear()
		drawTextBlock(dst, scene.Screen)
		if scene.Footer != "" {
			dst.DrawTextCentered(dst.Height()-1, scene.Footer)
		}
		return
	}

	boardW, boardH := BoardSize(scene.Grid, opts.CellWidth)
	if dst.Width() < boardW || dst.Height() < boardH {
		dst.SetPen(core.ColorWhite, core.ColorBlack)
		dst.Clear()
		renderOverlay(dst, []string{"Window too small", "Resize to continue"})
		return
	}

	origin := core.CenteredRect(dst.Width(), dst.Height(), boardW, boardH)

	dst.SetPen(core.ColorWhite, core.ColorBlack)
	dst.Clear()
	dst.SetPen(core.ColorWhite, opts.Background)
	dst.DrawRect(origin, ' ')

	for _, item := range scene.Items {
		x, y := cellOrigin(origin, item.Coord, opts.CellWidth)
		dst.SetCell(x, y, core.Cell{Rune: item.Symbol, Fg: item.Color, Bg: opts.Background})
	}
	x, y := cellOrigin(origin, scene.Actor, opts.CellWidth)
	dst.SetCell(x, y, core.Cell{Rune: CyborgSymbol, Fg: core.ColorWhite, Bg: opts.Background})

	if scene.Mode == ModeMessage && len(scene.Message) > 0 {
		dst.SetPen(core.ColorWhite, core.ColorBlack)
		renderOverlay(dst, scene.Message)
	}
}

// cellOrigin returns the screen position of the first column of a tile.
func cellOrigin(board core.Rect, c core.Coord, cellWidth int) (int, int) {
	return board.X + c.X*cellWidth, board.Y + c.Y
}

// drawTextBlock centers lines as one block, each line centered within it.
func drawTextBlock(dst *core.Screen, lines []string) {
	blockW := 0
	for _, line := range lines {
		blockW = max(blockW, ansi.StringWidth(line))
	}
	// Keep the top-left corner on screen when the block does not fit.
	cx, cy := dst.Bounds().Center()
	blockX := core.Clamp(cx-blockW/2, 0, max(dst.Width()-blockW, 0))
	blockY := core.Clamp(cy-len(lines)/2, 0, max(dst.Height()-len(lines), 0))

	for i, line := range lines {
		x := blockX + (blockW-ansi.StringWidth(line))/2
		dst.DrawText(x, blockY+i, line)
	}
}

// wrapLines word-wraps every line to at most width columns.
func wrapLines(lines []string, width int) []string {
	var out []string
	for _, line := range lines {
		if ansi.StringWidth(line) <= width {
			out = append(out, line)
			continue
		}
		out = append(out, strings.Split(ansi.Wordwrap(line, width, ""), "\n")...)
	}
	return out
}

// renderOverlay draws a boxed, centered message in the current pen.
func renderOverlay(dst *core.Screen, lines []string) {
	const pad = 2 // Border plus one space on each side

	lines = wrapLines(lines, max(dst.Width()-2*pad, 1))
	textW := 0
	for _, line := range lines {
		textW = max(textW, ansi.StringWidth(line))
	}

	box := core.CenteredRect(dst.Width(), dst.Height(), textW+2*pad, len(lines)+2)
	box.X = core.Clamp(box.X, 0, max(dst.Width()-box.W, 0))
	box.Y = core.Clamp(box.Y, 0, max(dst.Height()-box.H, 0))
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	for i, line := range lines {
		x := box.X + pad + (textW-ansi.StringWidth(line))/2
		dst.DrawText(x, box.Y+1+i, line)
	}
}
