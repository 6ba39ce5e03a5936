// Package cmd provides Cobra CLI commands for corkboard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/corkboard/internal/cli"
	"github.com/bnema/corkboard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	rootCmd   = &cobra.Command{
		Use:   "corkboard [audio files...]",
		Short: "A terminal whiteboard of movable notes",
		Long: `Corkboard - a whiteboard for your terminal.

Pin sticky notes and audio notes on a pannable, zoomable board and move
them around with the mouse.

Features:
  - Drag notes by their header, resize them from the bottom-right corner
  - Sticky notes with editable text
  - Audio notes created from files on disk
  - Keyboard zoom and pan
  - Live config reload

Running 'corkboard' without a subcommand opens the board. Audio files
given as arguments are imported on startup.`,
		Args: cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToStderr: !ownsTerminal(cmd)})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
		RunE: runBoard,
	}
)

// ownsTerminal reports whether cmd runs the full-screen board, in which case
// logs must not reach stderr.
func ownsTerminal(cmd *cobra.Command) bool {
	return !cmd.HasParent() || cmd.Name() == "board"
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

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info.WithDefaults()
	rootCmd.Version = buildInfo.Short()
}
