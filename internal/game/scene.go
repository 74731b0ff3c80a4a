package game

import (
	"fmt"

	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/world"
)

// Scene is everything the renderer needs for one frame.
type Scene struct {
	Mode    Mode
	Grid    core.Grid
	Actor   core.Coord
	Items   []world.Item
	Message []string // Description shown over the board in ModeMessage
	Screen  []string // Fixed text for splash, instructions, win and credits
	Footer  string
}

// OnBoard reports whether the scene draws the play field.
func (sc Scene) OnBoard() bool {
	return sc.Mode == ModePlay || sc.Mode == ModeMessage
}

// Scene captures the current frame.
func (s *Session) Scene() Scene {
	mode := s.ctrl.Mode()
	sc := Scene{
		Mode:   mode,
		Grid:   s.board.Grid,
		Actor:  s.board.Actor.Pos,
		Items:  s.board.Registry.Items(),
		Screen: screenText(mode),
	}
	if mode == ModeMessage {
		sc.Message = s.message
	}
	if mode == ModeWin {
		sc.Footer = fmt.Sprintf("Moves: %d  Items examined: %d", s.stats.Moves, s.stats.Examined)
	}
	return sc
}
