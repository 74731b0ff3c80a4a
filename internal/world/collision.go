package world

import "github.com/vovakirdan/cyborg-feline/internal/core"

// MoveOutcome describes the result of an AttemptMove call.
type MoveOutcome uint8

const (
	NoMove             MoveOutcome = iota // nothing held, or every delta left the board
	Moved                                 // position updated
	CollidedWithTarget                    // bumped the feline
	CollidedWithDecoy                     // bumped a treasure
)

// String returns a human-readable name for the outcome.
func (o MoveOutcome) String() string {
	switch o {
	case NoMove:
		return "NoMove"
	case Moved:
		return "Moved"
	case CollidedWithTarget:
		return "CollidedWithTarget"
	case CollidedWithDecoy:
		return "CollidedWithDecoy"
	default:
		return "Unknown"
	}
}

// Collided reports whether the outcome is a collision of either kind.
func (o MoveOutcome) Collided() bool {
	return o == CollidedWithTarget || o == CollidedWithDecoy
}

// Destination returns where the actor's held intents lead. Deltas are
// applied per direction in the order down, up, left, right, and a delta that
// would leave the grid is skipped. Both axes may change in one call.
func Destination(actor *Actor, grid core.Grid) core.Coord {
	dest := actor.Pos
	step := func(held bool, dx, dy int) {
		if !held {
			return
		}
		if next := dest.Add(dx, dy); grid.InBounds(next) {
			dest = next
		}
	}
	step(actor.Down, 0, 1)
	step(actor.Up, 0, -1)
	step(actor.Left, -1, 0)
	step(actor.Right, 1, 0)
	return dest
}

// AttemptMove moves actor according to its held intents unless the
// destination holds an item. On collision the actor stays put, its intents
// are cleared and LastCollision names the item.
func AttemptMove(actor *Actor, grid core.Grid, reg *Registry) MoveOutcome {
	dest := Destination(actor, grid)
	if dest == actor.Pos {
		return NoMove
	}

	item, hit := reg.ItemAt(dest)
	if !hit {
		actor.Pos = dest
		actor.LastCollision = nil
		return Moved
	}

	actor.ClearIntents()
	actor.LastCollision = &item
	if item.Target {
		return CollidedWithTarget
	}
	return CollidedWithDecoy
}
