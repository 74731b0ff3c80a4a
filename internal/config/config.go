// Package config provides YAML-based game configuration and treasure text
// loading for the game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/world"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// GameConfig contains all configuration for a game session.
type GameConfig struct {
	Grid    GridConfig    `yaml:"grid"`
	Items   ItemsConfig   `yaml:"items"`
	Display DisplayConfig `yaml:"display"`
	Text    TextConfig    `yaml:"text"`
}

// GridConfig defines the board size and how wide a tile is drawn.
type GridConfig struct {
	Width     int `yaml:"width"`
	Height    int `yaml:"height"`
	CellWidth int `yaml:"cell_width"` // Terminal columns per tile
}

// ItemsConfig defines how many treasures are placed and how they look.
type ItemsConfig struct {
	Decoys      int     `yaml:"decoys"`
	Symbols     string  `yaml:"symbols"`
	ColorLevels []uint8 `yaml:"color_levels"`
}

// DisplayConfig defines frame pacing and colours.
type DisplayConfig struct {
	FPS        int    `yaml:"fps"`
	Background string `yaml:"background"` // #rrggbb
	ShowHelp   bool   `yaml:"show_help"`
}

// TextConfig points at external text sources.
type TextConfig struct {
	Treasures string `yaml:"treasures"` // Path to a treasures file, empty for the search order
}

// Validate reports the first problem found in the configuration.
func (c GameConfig) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be positive, got %dx%d", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Grid.CellWidth <= 0:
		return fmt.Errorf("%w: cell_width must be positive", ErrInvalidConfig)
	case c.Items.Decoys < 0:
		return fmt.Errorf("%w: decoys must not be negative", ErrInvalidConfig)
	case c.Items.Decoys+2 > c.Grid.Width*c.Grid.Height:
		return fmt.Errorf("%w: %d decoys, the feline and the cyborg do not fit a %dx%d grid",
			ErrInvalidConfig, c.Items.Decoys, c.Grid.Width, c.Grid.Height)
	case c.Items.Symbols == "":
		return fmt.Errorf("%w: symbols must not be empty", ErrInvalidConfig)
	case len(c.Items.ColorLevels) == 0:
		return fmt.Errorf("%w: color_levels must not be empty", ErrInvalidConfig)
	case c.Display.FPS <= 0:
		return fmt.Errorf("%w: fps must be positive", ErrInvalidConfig)
	}
	if _, err := core.ParseHex(c.Display.Background); err != nil {
		return fmt.Errorf("%w: background: %w", ErrInvalidConfig, err)
	}
	return nil
}

// BoardGrid returns the configured board.
func (c GameConfig) BoardGrid() (core.Grid, error) {
	return core.NewGrid(c.Grid.Width, c.Grid.Height)
}

// Appearance returns the item symbol alphabet and palette.
func (c GameConfig) Appearance() world.Appearance {
	return world.Appearance{Symbols: c.Items.Symbols, Levels: c.Items.ColorLevels}
}

// BackgroundColor returns the play field colour, falling back to the default
// for unparsable values.
func (c GameConfig) BackgroundColor() core.RGB {
	bg, err := core.ParseHex(c.Display.Background)
	if err != nil {
		return core.ColorBackground
	}
	return bg
}

// RequiredTreasures is the size the treasure pool is padded up to. It covers
// every decoy with room to spare.
func (c GameConfig) RequiredTreasures() int {
	return c.Items.Decoys + 2
}
