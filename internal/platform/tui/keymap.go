package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/cyborg-feline/internal/core"
)

// KeyMap defines the key bindings shown in the help footer.
type KeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Screenshot, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "right"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to game keys.
// This centralizes key bindings and makes them testable.
type KeyMapper struct {
	keys KeyMap
}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{keys: DefaultKeyMap()}
}

// Keys returns the bindings for help rendering.
func (km *KeyMapper) Keys() KeyMap {
	return km.keys
}

// IsScreenshot reports whether msg asks for a screenshot.
func (km *KeyMapper) IsScreenshot(msg tea.KeyMsg) bool {
	return key.Matches(msg, km.keys.Screenshot)
}

// MapKey translates a key message to a game key.
// Returns the key (KeyNone for messages that carry nothing) and whether it's
// the quit signal.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (k core.Key, isQuit bool) {
	switch {
	case key.Matches(msg, km.keys.Quit):
		return core.KeyNone, true
	case key.Matches(msg, km.keys.Up):
		return core.KeyUp, false
	case key.Matches(msg, km.keys.Down):
		return core.KeyDown, false
	case key.Matches(msg, km.keys.Left):
		return core.KeyLeft, false
	case key.Matches(msg, km.keys.Right):
		return core.KeyRight, false
	}

	// Printable keys are named by their character, everything else
	// (enter, esc, space, tab) by Bubble Tea's key name.
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 {
		return core.KeyRune(msg.Runes[0]), false
	}
	return core.Key(msg.String()), false
}

// MapKeyToEvent converts a key message into a game event.
// The second result is false when the message carries no key.
func (km *KeyMapper) MapKeyToEvent(msg tea.KeyMsg) (core.Event, bool) {
	k, isQuit := km.MapKey(msg)
	if isQuit {
		return core.QuitEvent(), true
	}
	if k == core.KeyNone {
		return core.Event{}, false
	}
	return core.KeyDownEvent(k), true
}
