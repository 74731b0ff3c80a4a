package world

import "github.com/vovakirdan/cyborg-feline/internal/core"

// Actor is the cyborg: its position, the directions currently held and the
// last item it bumped into.
type Actor struct {
	Pos   core.Coord
	Up    bool
	Down  bool
	Left  bool
	Right bool

	// LastCollision is the item the actor most recently tried to move into.
	// Nil after any successful move.
	LastCollision *Item
}

// NewActor places an actor at pos with no intents held.
func NewActor(pos core.Coord) *Actor {
	return &Actor{Pos: pos}
}

// SetIntent records whether the direction named by k is held.
// Non-directional keys are ignored.
func (a *Actor) SetIntent(k core.Key, held bool) {
	switch k {
	case core.KeyUp:
		a.Up = held
	case core.KeyDown:
		a.Down = held
	case core.KeyLeft:
		a.Left = held
	case core.KeyRight:
		a.Right = held
	}
}

// ClearIntents releases all four directions.
func (a *Actor) ClearIntents() {
	a.Up, a.Down, a.Left, a.Right = false, false, false, false
}

// HasIntent reports whether any direction is held.
func (a *Actor) HasIntent() bool {
	return a.Up || a.Down || a.Left || a.Right
}
