package core

import (
	"fmt"
	"strconv"
)

// RGB is a 24-bit display colour.
type RGB struct {
	R, G, B uint8
}

// Predefined colours used by the game screens.
var (
	ColorBlack      = RGB{0, 0, 0}
	ColorWhite      = RGB{255, 255, 255}
	ColorBackground = RGB{51, 51, 51}
)

// Hex returns the colour in #rrggbb notation.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses a #rrggbb colour string.
func ParseHex(s string) (RGB, error) {
	if len(s) != 7 || s[0] != '#' {
		return RGB{}, fmt.Errorf("core: invalid colour %q", s)
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("core: invalid colour %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}
