package world

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

func mustGrid(t *testing.T, w, h int) core.Grid {
	t.Helper()
	g, err := core.NewGrid(w, h)
	require.NoError(t, err)
	return g
}

func TestPlaceDistinct(t *testing.T) {
	grid := mustGrid(t, 6, 4)

	for _, count := range []int{0, 1, 5, 23, 24} {
		rng := rand.New(rand.NewSource(int64(count) + 1))
		coords, err := PlaceDistinct(rng, grid, count)
		require.NoError(t, err, "count %d", count)
		require.Len(t, coords, count)

		seen := make(map[core.Coord]bool, count)
		for _, c := range coords {
			assert.True(t, grid.InBounds(c), "coord %v out of bounds", c)
			assert.False(t, seen[c], "coord %v returned twice", c)
			seen[c] = true
		}
	}
}

func TestPlaceDistinctFillsWholeGrid(t *testing.T) {
	grid := mustGrid(t, 3, 3)
	coords, err := PlaceDistinct(rand.New(rand.NewSource(7)), grid, grid.Size())
	require.NoError(t, err)

	got := make(map[core.Coord]bool)
	for _, c := range coords {
		got[c] = true
	}
	for c := range grid.Cells() {
		assert.True(t, got[c], "cell %v never placed", c)
	}
}

func TestPlaceDistinctExhausted(t *testing.T) {
	grid := mustGrid(t, 2, 2)
	coords, err := PlaceDistinct(rand.New(rand.NewSource(1)), grid, 5)
	require.ErrorIs(t, err, ErrPlacementExhausted)
	assert.Nil(t, coords)
}

func TestPlaceDistinctNegativeCount(t *testing.T) {
	_, err := PlaceDistinct(rand.New(rand.NewSource(1)), mustGrid(t, 2, 2), -1)
	require.ErrorIs(t, err, ErrInvalidCount)
}

func TestPlaceDistinctDeterministicForSeed(t *testing.T) {
	grid := core.DefaultGrid()
	a, err := PlaceDistinct(rand.New(rand.NewSource(42)), grid, 19)
	require.NoError(t, err)
	b, err := PlaceDistinct(rand.New(rand.NewSource(42)), grid, 19)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestPlaceDistinctUniform(t *testing.T) {
	// With one cell taken by the first draw, the second must be spread over
	// the remaining cells. Loose bounds keep this stable across seeds.
	grid := mustGrid(t, 2, 2)
	rng := rand.New(rand.NewSource(99))
	counts := make(map[core.Coord]int)
	const rounds = 4000
	for range rounds {
		coords, err := PlaceDistinct(rng, grid, 2)
		require.NoError(t, err)
		counts[coords[1]]++
	}
	for c := range grid.Cells() {
		assert.InDelta(t, rounds/4, counts[c], rounds/10, "cell %v", c)
	}
}

func TestFreeCoord(t *testing.T) {
	grid := mustGrid(t, 2, 1)
	reg, err := NewRegistry([]Item{{Coord: core.C(0, 0), Target: true}})
	require.NoError(t, err)

	c, err := FreeCoord(rand.New(rand.NewSource(3)), grid, reg)
	require.NoError(t, err)
	assert.Equal(t, core.C(1, 0), c)

	full, err := NewRegistry([]Item{{Coord: core.C(0, 0), Target: true}, {Coord: core.C(1, 0)}})
	require.NoError(t, err)
	_, err = FreeCoord(rand.New(rand.NewSource(3)), grid, full)
	require.ErrorIs(t, err, ErrPlacementExhausted)
}
