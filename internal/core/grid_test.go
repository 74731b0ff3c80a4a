package core

import (
	"errors"
	"testing"
)

func TestNewGrid(t *testing.T) {
	g, err := NewGrid(5, 3)
	if err != nil {
		t.Fatalf("NewGrid(5, 3) failed: %v", err)
	}
	if g.Width() != 5 || g.Height() != 3 || g.Size() != 15 {
		t.Errorf("grid = %dx%d (%d cells), expected 5x3 (15 cells)", g.Width(), g.Height(), g.Size())
	}

	for _, dims := range [][2]int{{0, 3}, {3, 0}, {-1, 4}} {
		if _, err := NewGrid(dims[0], dims[1]); !errors.Is(err, ErrInvalidGrid) {
			t.Errorf("NewGrid(%d, %d) error = %v, expected ErrInvalidGrid", dims[0], dims[1], err)
		}
	}
}

func TestDefaultGrid(t *testing.T) {
	g := DefaultGrid()
	if g.Width() != 40 || g.Height() != 40 {
		t.Errorf("DefaultGrid() = %dx%d, expected 40x40", g.Width(), g.Height())
	}
}

func TestGridInBounds(t *testing.T) {
	g, _ := NewGrid(5, 5)

	tests := []struct {
		name     string
		c        Coord
		expected bool
	}{
		{"origin", C(0, 0), true},
		{"far corner", C(4, 4), true},
		{"x too large", C(5, 0), false},
		{"y too large", C(0, 5), false},
		{"negative x", C(-1, 2), false},
		{"negative y", C(2, -1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := g.InBounds(tc.c); got != tc.expected {
				t.Errorf("InBounds(%v) = %v, expected %v", tc.c, got, tc.expected)
			}
		})
	}
}

func TestGridCells(t *testing.T) {
	g, _ := NewGrid(3, 2)

	var first []Coord
	for c := range g.Cells() {
		first = append(first, c)
	}

	expected := []Coord{C(0, 0), C(1, 0), C(2, 0), C(0, 1), C(1, 1), C(2, 1)}
	if len(first) != len(expected) {
		t.Fatalf("Cells() yielded %d coords, expected %d", len(first), len(expected))
	}
	for i := range expected {
		if first[i] != expected[i] {
			t.Errorf("Cells()[%d] = %v, expected %v (row-major)", i, first[i], expected[i])
		}
	}

	// Restartable: a second pass yields the same sequence
	i := 0
	for c := range g.Cells() {
		if c != first[i] {
			t.Errorf("second pass [%d] = %v, expected %v", i, c, first[i])
		}
		i++
	}

	// Early break stops the iteration
	count := 0
	for range g.Cells() {
		count++
		if count == 2 {
			break
		}
	}
	if count != 2 {
		t.Errorf("break after 2 cells, counted %d", count)
	}
}

func TestCoordAdd(t *testing.T) {
	if got := C(2, 3).Add(-1, 1); got != C(1, 4) {
		t.Errorf("Add = %v, expected (1,4)", got)
	}
	if C(2, 3).String() != "(2,3)" {
		t.Errorf("String() = %q", C(2, 3).String())
	}
}

func TestRGBHex(t *testing.T) {
	c := RGB{102, 153, 255}
	if c.Hex() != "#6699ff" {
		t.Errorf("Hex() = %q, expected #6699ff", c.Hex())
	}

	parsed, err := ParseHex("#333333")
	if err != nil {
		t.Fatalf("ParseHex failed: %v", err)
	}
	if parsed != ColorBackground {
		t.Errorf("ParseHex(#333333) = %v, expected %v", parsed, ColorBackground)
	}

	for _, bad := range []string{"", "333333", "#12345", "#gggggg"} {
		if _, err := ParseHex(bad); err == nil {
			t.Errorf("ParseHex(%q) should fail", bad)
		}
	}
}

func TestKeyRune(t *testing.T) {
	if KeyRune('I') != KeyRune('i') {
		t.Error("KeyRune should fold letter case")
	}
	if !KeyLeft.IsDirection() || KeyRune('x').IsDirection() {
		t.Error("IsDirection mismatch")
	}
}
