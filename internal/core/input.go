package core

import "strings"

// Key identifies a physical key by name, independent of the terminal library.
// Letter keys use their lowercase character ("i", "c", "q").
type Key string

// Named keys the game inspects.
const (
	KeyNone  Key = ""
	KeyUp    Key = "up"
	KeyDown  Key = "down"
	KeyLeft  Key = "left"
	KeyRight Key = "right"
)

// KeyRune returns the Key for a printable character. Letters are folded to
// lowercase so that "I" and "i" name the same key.
func KeyRune(r rune) Key {
	return Key(strings.ToLower(string(r)))
}

// IsDirection reports whether k is one of the four arrow keys.
func (k Key) IsDirection() bool {
	switch k {
	case KeyUp, KeyDown, KeyLeft, KeyRight:
		return true
	}
	return false
}

// EventKind classifies an input event.
type EventKind int

const (
	EventKeyDown EventKind = iota // A key was pressed
	EventKeyUp                    // A key was released
	EventQuit                     // The user asked to close the game
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventKeyDown:
		return "KeyDown"
	case EventKeyUp:
		return "KeyUp"
	case EventQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Event is one discrete input event delivered to the game during a frame.
// Repeat marks a key-down produced by terminal auto-repeat of a key that was
// never seen released.
type Event struct {
	Kind   EventKind
	Key    Key
	Repeat bool
}

// KeyDownEvent is a convenience constructor for a key press.
func KeyDownEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k}
}

// KeyRepeatEvent is a key press that repeats a key still being held.
func KeyRepeatEvent(k Key) Event {
	return Event{Kind: EventKeyDown, Key: k, Repeat: true}
}

// KeyUpEvent is a convenience constructor for a key release.
func KeyUpEvent(k Key) Event {
	return Event{Kind: EventKeyUp, Key: k}
}

// QuitEvent is the quit signal.
func QuitEvent() Event {
	return Event{Kind: EventQuit}
}
