// Package world implements the board model of the game: random placement of
// items, the treasure description pool, the item registry, the cyborg actor
// and movement resolution against collisions.
package world

import "errors"

var (
	// ErrPlacementExhausted is returned when more distinct cells are
	// requested than the grid holds.
	ErrPlacementExhausted = errors.New("world: placement exhausted")

	// ErrInvalidCount is returned for negative placement or decoy counts.
	ErrInvalidCount = errors.New("world: invalid count")

	// ErrEmptyPool is returned when drawing from a text bank that was loaded
	// with no entries.
	ErrEmptyPool = errors.New("world: text pool is empty")

	// ErrExhaustedPool is returned when every loaded entry has been drawn.
	ErrExhaustedPool = errors.New("world: text pool exhausted")
)
