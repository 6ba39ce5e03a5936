package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/corkboard/internal/cli/model"
	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/logging"
)

var boardNoWatch bool

var boardCmd = &cobra.Command{
	Use:   "board [audio files...]",
	Short: "Open the whiteboard",
	Long: `Open the whiteboard in full screen.

Audio files given as arguments become audio notes on startup. Files with
an unsupported extension are skipped.

Examples:
  corkboard board                       # Empty board
  corkboard board ~/music/*.mp3         # Board with audio notes`,
	RunE: runBoard,
}

func init() {
	rootCmd.AddCommand(boardCmd)
	for _, c := range []*cobra.Command{rootCmd, boardCmd} {
		c.Flags().BoolVar(&boardNoWatch, "no-watch", false, "do not reload the config file on change")
	}
}

func runBoard(_ *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	ctx := app.Ctx()
	log := logging.FromContext(ctx)

	board := app.NewBoard()
	status := ""
	if len(args) > 0 {
		notes, err := board.AddAudioNotes(ctx, args)
		if err != nil {
			log.Warn().Err(err).Msg("some audio files were skipped")
			status = fmt.Sprintf("imported %d of %d files", len(notes), len(args))
		}
	}

	var updates <-chan *config.Config
	if !boardNoWatch {
		var err error
		if updates, err = app.WatchConfig(); err != nil {
			log.Warn().Err(err).Msg("config hot reload disabled")
		}
	}

	m := model.NewBoardModel(ctx, app.Theme, model.BoardModelConfig{
		Board:         board,
		Themes:        app.Themes,
		Grid:          app.Grid(),
		PanStep:       app.Config.Canvas.PanStep,
		ConfigUpdates: updates,
		Status:        status,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run board: %w", err)
	}
	log.Debug().Int("notes", board.Len()).Msg("board closed")
	return nil
}
