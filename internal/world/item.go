package world

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

// TargetDescription is shown when the cyborg bumps into the feline.
const TargetDescription = "It is the feline! You are reunited!"

// DefaultSymbols is the alphabet item symbols are drawn from.
const DefaultSymbols = "`-=[]\\;,./~_+{}|:<>?!#$%^&*()1234567890zxcvbnmasdfghjklqwertyuiopZXCVBNMASDFGHJKLQWERTYUIOP"

// DefaultColorLevels are the per-channel intensities item colours use.
var DefaultColorLevels = []uint8{102, 153, 204, 255}

// Item is something placed on the board: the feline or a decoy treasure.
type Item struct {
	Coord       core.Coord
	Target      bool
	Description []string
	Symbol      rune
	Color       core.RGB
}

// Appearance controls how item symbols and colours are chosen.
type Appearance struct {
	Symbols string
	Levels  []uint8
}

// DefaultAppearance returns the standard symbol alphabet and palette.
func DefaultAppearance() Appearance {
	return Appearance{Symbols: DefaultSymbols, Levels: DefaultColorLevels}
}

// randomSymbol picks a symbol uniformly from the alphabet.
func (a Appearance) randomSymbol(rng *rand.Rand) rune {
	symbols := []rune(a.Symbols)
	if len(symbols) == 0 {
		return '?'
	}
	return symbols[rng.Intn(len(symbols))]
}

// randomColor picks each channel independently from the palette levels.
func (a Appearance) randomColor(rng *rand.Rand) core.RGB {
	levels := a.Levels
	if len(levels) == 0 {
		levels = DefaultColorLevels
	}
	return core.RGB{
		R: levels[rng.Intn(len(levels))],
		G: levels[rng.Intn(len(levels))],
		B: levels[rng.Intn(len(levels))],
	}
}

// Registry is the set of items placed for one world. Lookups by coordinate
// are O(1).
type Registry struct {
	items    []Item
	occupied map[core.Coord]int
}

// NewRegistry builds a registry from items. It fails if two items share a
// coordinate or if more than one item is a target. Populate always yields
// exactly one target; an empty registry is allowed for hand-built boards.
func NewRegistry(items []Item) (*Registry, error) {
	r := &Registry{
		items:    make([]Item, 0, len(items)),
		occupied: make(map[core.Coord]int, len(items)),
	}
	targets := 0
	for _, it := range items {
		if _, dup := r.occupied[it.Coord]; dup {
			return nil, fmt.Errorf("world: two items at %v", it.Coord)
		}
		if it.Target {
			targets++
		}
		r.occupied[it.Coord] = len(r.items)
		r.items = append(r.items, it)
	}
	if targets > 1 {
		return nil, fmt.Errorf("world: registry allows one target, got %d", targets)
	}
	return r, nil
}

// Populate places one target and decoyCount decoys on grid. Decoy
// descriptions are drawn from bank, one draw per decoy.
func Populate(rng *rand.Rand, grid core.Grid, decoyCount int, bank *TextBank, look Appearance) (*Registry, error) {
	if decoyCount < 0 {
		return nil, fmt.Errorf("%w: %d decoys", ErrInvalidCount, decoyCount)
	}

	coords, err := PlaceDistinct(rng, grid, 1+decoyCount)
	if err != nil {
		return nil, fmt.Errorf("world: placing items: %w", err)
	}

	items := make([]Item, 0, len(coords))
	for i, c := range coords {
		it := Item{
			Coord:  c,
			Color:  look.randomColor(rng),
			Symbol: look.randomSymbol(rng),
		}
		if i == 0 {
			it.Target = true
			it.Description = []string{TargetDescription}
		} else {
			desc, err := bank.Draw()
			if err != nil {
				return nil, fmt.Errorf("world: describing decoy %d: %w", i, err)
			}
			it.Description = desc
		}
		items = append(items, it)
	}

	return NewRegistry(items)
}

// ItemAt returns the item at c, if any.
func (r *Registry) ItemAt(c core.Coord) (Item, bool) {
	i, ok := r.occupied[c]
	if !ok {
		return Item{}, false
	}
	return r.items[i], true
}

// Occupied reports whether an item sits at c.
func (r *Registry) Occupied(c core.Coord) bool {
	_, ok := r.occupied[c]
	return ok
}

// Items returns a copy of the items in placement order.
func (r *Registry) Items() []Item {
	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out
}

// Target returns the feline.
func (r *Registry) Target() Item {
	for _, it := range r.items {
		if it.Target {
			return it
		}
	}
	return Item{}
}

// Len returns the number of placed items.
func (r *Registry) Len() int {
	return len(r.items)
}
