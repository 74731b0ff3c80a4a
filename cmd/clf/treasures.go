package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyborg-feline/internal/config"
)

var (
	flagTreasureFile string
	flagShowEntries  bool
)

var treasuresCmd = &cobra.Command{
	Use:   "treasures",
	Short: "Show the treasure descriptions the game would use",
	Long: `Loads treasure descriptions the same way 'clf play' does and reports
where they came from. Use it to check a custom treasures file.

File format:
  Lines starting with # are comments.
  Blank lines separate descriptions; a description may span several lines.

Search order when --file is not given:
  ~/.clf/treasures.txt, ./treasures.txt, then the built-in list.`,
	Args: cobra.NoArgs,
	Run:  runTreasures,
}

func init() {
	treasuresCmd.Flags().StringVar(&flagTreasureFile, "file", "", "Treasures file to check")
	treasuresCmd.Flags().BoolVar(&flagShowEntries, "show", false, "Print every description")
}

func runTreasures(cmd *cobra.Command, args []string) {
	logger, closeLog, err := openLogger(os.Stderr)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	pool, source := config.LoadTreasures(flagTreasureFile, 0, logger)

	fmt.Printf("%d descriptions from %s\n", len(pool), source)
	if required := config.DefaultGameConfig().RequiredTreasures(); len(pool) < required {
		fmt.Printf("The default game needs %d; the rest will read %q.\n", required, config.Placeholder)
	}
	if !flagShowEntries {
		return
	}

	fmt.Println()
	for i, entry := range pool {
		fmt.Printf("%3d  %s\n", i+1, strings.Join(entry, "\n     "))
	}
}
