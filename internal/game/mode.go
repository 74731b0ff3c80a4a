// Package game drives a Cyborg Locates Feline session: the mode state
// machine, per-frame input dispatch, world regeneration and the scene the
// renderer draws.
package game

// Mode is the high-level state of a session.
type Mode string

const (
	ModeSplash       Mode = "splash"
	ModeInstructions Mode = "instructions"
	ModePlay         Mode = "play"
	ModeMessage      Mode = "message"
	ModeWin          Mode = "win"
	ModeCredits      Mode = "credits"
)

// Modes lists every mode in the closed set.
var Modes = []Mode{ModeSplash, ModeInstructions, ModePlay, ModeMessage, ModeWin, ModeCredits}

// String returns the mode name.
func (m Mode) String() string {
	return string(m)
}

// Valid reports whether m belongs to the closed set of modes.
func (m Mode) Valid() bool {
	switch m {
	case ModeSplash, ModeInstructions, ModePlay, ModeMessage, ModeWin, ModeCredits:
		return true
	}
	return false
}

// ParseMode looks up a mode by name.
func ParseMode(name string) (Mode, bool) {
	m := Mode(name)
	return m, m.Valid()
}

// Controller holds the current mode and rejects values outside the closed set.
type Controller struct {
	mode Mode
}

// NewController starts in initial, or in ModeSplash if initial is unknown.
func NewController(initial Mode) *Controller {
	if !initial.Valid() {
		initial = ModeSplash
	}
	return &Controller{mode: initial}
}

// Mode returns the current mode.
func (c *Controller) Mode() Mode {
	return c.mode
}

// ChangeMode switches to m. Unknown modes are ignored and reported as false.
func (c *Controller) ChangeMode(m Mode) bool {
	if !m.Valid() {
		return false
	}
	c.mode = m
	return true
}

// ChangeModeNamed is ChangeMode for a mode given by name.
func (c *Controller) ChangeModeNamed(name string) bool {
	m, ok := ParseMode(name)
	if !ok {
		return false
	}
	return c.ChangeMode(m)
}
