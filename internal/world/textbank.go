package world

import "math/rand"

// TextBank is a pool of treasure descriptions sampled without replacement.
// Each description is an ordered list of lines.
type TextBank struct {
	rng     *rand.Rand
	entries [][]string
	loaded  int
}

// NewTextBank creates an empty bank drawing with rng.
func NewTextBank(rng *rand.Rand) *TextBank {
	return &TextBank{rng: rng}
}

// Load replaces the pool with entries. The outer slice is copied so the
// caller's pool is never consumed.
func (b *TextBank) Load(entries [][]string) {
	b.entries = make([][]string, len(entries))
	copy(b.entries, entries)
	b.loaded = len(entries)
}

// Len returns the number of entries that can still be drawn.
func (b *TextBank) Len() int {
	return len(b.entries)
}

// Draw removes a uniformly chosen entry from the pool and returns it.
func (b *TextBank) Draw() ([]string, error) {
	if b.loaded == 0 {
		return nil, ErrEmptyPool
	}
	if len(b.entries) == 0 {
		return nil, ErrExhaustedPool
	}

	i := b.rng.Intn(len(b.entries))
	entry := b.entries[i]

	last := len(b.entries) - 1
	b.entries[i] = b.entries[last]
	b.entries[last] = nil
	b.entries = b.entries[:last]

	return entry, nil
}
