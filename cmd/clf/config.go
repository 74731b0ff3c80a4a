package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cyborg-feline/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration as YAML",
	Long: `Prints the configuration 'clf play' would use, after the search order
--config, ~/.clf/configs/clf.yaml, ./configs/clf.yaml and the built-in default.

Examples:
  clf config
  clf config --config ./my-clf.yaml`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
}

func runConfig(cmd *cobra.Command, args []string) {
	cfg, source, err := config.LoadGame(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if flagFPS > 0 {
		cfg.Display.FPS = flagFPS
	}

	data, err := config.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# source: %s\n", source)
	fmt.Print(string(data))
}
