package config

import (
	_ "embed"

	"github.com/vovakirdan/cyborg-feline/internal/world"
)

//go:embed defaults/clf.yaml
var defaultGameYAML []byte

//go:embed defaults/treasures.txt
var defaultTreasures []byte

// Placeholder is the description used to pad a short treasure pool.
const Placeholder = "This is not feline."

// DefaultGameConfig returns the default game configuration.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		Grid: GridConfig{
			Width:     40,
			Height:    40,
			CellWidth: 2,
		},
		Items: ItemsConfig{
			Decoys:      18,
			Symbols:     world.DefaultSymbols,
			ColorLevels: []uint8{102, 153, 204, 255},
		},
		Display: DisplayConfig{
			FPS:        15,
			Background: "#333333",
			ShowHelp:   true,
		},
	}
}
