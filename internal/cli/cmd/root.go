// Package cmd provides Cobra CLI commands for dumbterm.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dumbterm/internal/cli"
	"github.com/bnema/dumbterm/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configFile string
	rootCmd    = &cobra.Command{
		Use:   "dumbterm",
		Short: "A split-pane tiling layout engine for the terminal",
		Long: `Dumbterm - a dumb terminal workspace that tiles like your favorite multiplexer.

Panes live in a tree of horizontal and vertical containers. Every split,
close, resize and focus move goes through the same layout engine, and the
resulting rectangles are drawn as pane frames in your terminal.

Features:
  - Split in four directions, close, maximize and equalize panes
  - Directional and cyclic focus navigation
  - Keyboard resize and mouse drag of pane borders
  - Layouts saved to SQLite and restored on demand
  - Live reload of keybindings from config.toml

Use 'dumbterm play' to open the interactive playground, or 'dumbterm preview'
to replay a list of hotkeys without a terminal UI.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(configFile)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			// Set build info from main.go
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file (default $XDG_CONFIG_HOME/dumbterm/config.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo records the build information and enables --version. It
// must be called before Execute.
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
	rootCmd.SetVersionTemplate("{{.Version}}\n")
}
