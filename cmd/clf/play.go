package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/cyborg-feline/internal/config"
	"github.com/vovakirdan/cyborg-feline/internal/core"
	"github.com/vovakirdan/cyborg-feline/internal/game"
	"github.com/vovakirdan/cyborg-feline/internal/platform/tui"
)

var (
	flagConfig     string
	flagTreasures  string
	flagSkipSplash bool
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start a game of Cyborg Locates Feline.

Controls:
  Arrow keys - Move the cyborg; bump into things to examine them
  Any key    - Dismiss a description or leave a text screen
  I          - Instructions (on the title screen)
  C          - Credits (after finding feline)
  Q          - Quit (after finding feline)
  Ctrl+S     - Save a text screenshot to ~/.clf/screenshots
  Ctrl+C     - Quit

Examples:
  clf play
  clf play --skip-splash
  clf play --treasures ./my-treasures.txt
  clf play --config ./my-clf.yaml --log-file clf.log --log-level debug`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	playCmd.Flags().StringVar(&flagTreasures, "treasures", "", "Path to a treasures text file")
	playCmd.Flags().BoolVar(&flagSkipSplash, "skip-splash", false, "Start directly in play mode")
}

func runPlay(cmd *cobra.Command, args []string) {
	// The game owns the terminal, so logs are dropped unless --log-file is set.
	logger, closeLog, err := openLogger(io.Discard)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	gameCfg, source, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("config loaded", "source", source)

	if flagFPS > 0 {
		gameCfg.Display.FPS = flagFPS
	}
	treasurePath := flagTreasures
	if treasurePath == "" {
		treasurePath = gameCfg.Text.Treasures
	}

	pool, poolSource := config.LoadTreasures(treasurePath, gameCfg.RequiredTreasures(), logger)
	logger.Info("treasures loaded", "source", poolSource, "entries", len(pool))

	grid, err := gameCfg.BoardGrid()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	initial := game.ModeSplash
	if flagSkipSplash {
		initial = game.ModePlay
	}

	session, err := game.Start(initial, game.Options{
		Grid:       grid,
		Decoys:     gameCfg.Items.Decoys,
		Treasures:  pool,
		Appearance: gameCfg.Appearance(),
		Seed:       flagSeed,
		Logger:     logger,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	rc := core.DefaultConfig()
	rc.TickRate = gameCfg.Display.FPS

	// Get terminal size; Bubble Tea sends the real size on start as well
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	opts := tui.Options{
		Render: game.RenderOptions{
			CellWidth:  gameCfg.Grid.CellWidth,
			Background: gameCfg.BackgroundColor(),
		},
		ShowHelp: gameCfg.Display.ShowHelp,
		Logger:   logger,
	}

	if err := tui.Run(session, rc, opts); err != nil {
		logger.Error("game stopped", "error", err)
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		closeLog()
		os.Exit(1)
	}
	logger.Info("game over", "session", session.ID(), "moves", session.Stats().Moves)
}
