// Package cmd implements morphctl's cobra command tree: a thin CLI wrapper
// around the morphwizard core (spec §6, "an implementer may wrap the core
// in a CLI"), styled on junjiewwang-perf-analysis's cmd/cli/cmd layout.
package cmd

import (
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"morphwizard/cmd/morphctl/internal/clilog"
	"morphwizard/cmd/morphctl/internal/config"
)

var (
	verbose    bool
	configPath string

	logger *clilog.Logger
	cfg    *config.Config
)

// rootCmd is the base "morphctl" command.
var rootCmd = &cobra.Command{
	Use:   "morphctl",
	Short: "Generate and export neuron morphologies",
	Long: `morphctl drives the morphwizard growth engine from the command line:
it resolves a GUI save file into index-based instructions, runs the
TREES-style growth algorithm, and exports the result as SWC or a NEURON
Python script.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := clilog.LevelInfo
		if verbose {
			level = clilog.LevelDebug
		}
		logger = clilog.New(level, os.Stdout)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 on
// error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a morphctl YAML config file")
}

// GetLogger returns the logger PersistentPreRunE configured.
func GetLogger() *clilog.Logger {
	return logger
}

// GetConfig returns the configuration PersistentPreRunE loaded.
func GetConfig() *config.Config {
	return cfg
}

// BinName returns the invoked executable's base name, used in dynamic
// Example strings.
func BinName() string {
	return filepath.Base(os.Args[0])
}

// decorateOutput reports whether f is a terminal (isatty.IsTerminal or
// isatty.IsCygwinTerminal), which gates the checkmark doneBanner prints
// (spec-adjacent CLI ergonomics, not part of the core; grounded on
// wizardbeard-protogonos's go-isatty usage).
func decorateOutput(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
