// clf is Cyborg Locates Feline, a grid exploration game for the terminal.
//
// Usage:
//
//	clf play                 - Play the game
//	clf treasures            - Show the treasure descriptions the game would use
//	clf config               - Print the effective configuration as YAML
//
// Global flags:
//
//	--fps <rate>          - Override the frame rate (default: from config, 15)
//	--seed <value>        - Set RNG seed for reproducible worlds
//	--log-file <path>     - Append logs to a file
//	--log-level <level>   - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "clf",
	Short: "Cyborg Locates Feline - find the feline among the clutter",
	Long: `Cyborg Locates Feline is a terminal game. You are a cyborg whose visual
sensors are on the fritz: bump into things to find out what they are, and
keep looking until you find feline.

Available commands:
  play       - Play the game
  treasures  - Show the treasure descriptions the game would use
  config     - Print the effective configuration

Examples:
  clf play
  clf play --skip-splash --seed 42
  clf treasures --file ./treasures.txt --show
  clf config > ~/.clf/configs/clf.yaml`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Frames per second (0 = from config)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(treasuresCmd)
	rootCmd.AddCommand(configCmd)
}

// openLogger builds the command logger. Logs go to --log-file when set,
// otherwise to fallback. The returned function closes the log file.
func openLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	w := fallback
	closeFn := func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("opening log file: %w", err)
		}
		w = f
		closeFn = func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "clf",
		Level:           level,
	})
	return logger, closeFn, nil
}
