package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

// RandomCoord returns a uniformly random in-bounds coordinate.
func RandomCoord(rng *rand.Rand, grid core.Grid) core.Coord {
	return core.C(rng.Intn(grid.Width()), rng.Intn(grid.Height()))
}

// PlaceDistinct returns count distinct coordinates of grid, in the order they
// were accepted. Each draw is uniform over the whole grid and rejected if the
// cell is already taken, so every free cell is equally likely at every step.
func PlaceDistinct(rng *rand.Rand, grid core.Grid, count int) ([]core.Coord, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCount, count)
	}
	if count > grid.Size() {
		return nil, fmt.Errorf("%w: %d cells requested, grid %dx%d has %d",
			ErrPlacementExhausted, count, grid.Width(), grid.Height(), grid.Size())
	}

	taken := make(map[core.Coord]struct{}, count)
	result := make([]core.Coord, 0, count)
	for len(result) < count {
		c := RandomCoord(rng, grid)
		if _, dup := taken[c]; dup {
			continue
		}
		taken[c] = struct{}{}
		result = append(result, c)
	}
	return result, nil
}

// FreeCoord returns a uniformly random cell that is not occupied in reg.
// It fails with ErrPlacementExhausted when every cell is occupied.
func FreeCoord(rng *rand.Rand, grid core.Grid, reg *Registry) (core.Coord, error) {
	if reg.Len() >= grid.Size() {
		return core.Coord{}, fmt.Errorf("%w: no free cell for the actor", ErrPlacementExhausted)
	}
	for {
		c := RandomCoord(rng, grid)
		if !reg.Occupied(c) {
			return c, nil
		}
	}
}
