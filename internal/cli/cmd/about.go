package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/corkboard/internal/cli/styles"
	"github.com/bnema/corkboard/internal/logging"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, build info, repository URL, and contributors.`,
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewAboutRenderer(app.Theme)
	fmt.Println(renderer.Render(app.BuildInfo.WithDefaults()))

	logging.FromContext(app.Ctx()).Debug().Str("version", app.BuildInfo.Short()).Msg("about shown")
	return nil
}
