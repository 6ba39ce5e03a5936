package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/bnema/corkboard/internal/infrastructure/config"
)

const dirPerm = 0o755

var (
	genDocsOutputDir string
	genDocsFormat    string
)

var genDocsCmd = &cobra.Command{
	Use:   "gen-docs",
	Short: "Generate man pages or markdown for the commands",
	Long: `Generate documentation from the command definitions.

Supported formats:
  man       Unix manual pages (groff format)
  markdown  Markdown files

Man pages go to $XDG_DATA_HOME/man/man1 by default, so 'man corkboard'
works right away. Run 'mandb' if it does not.

Examples:
  corkboard gen-docs                      # Install man pages
  corkboard gen-docs --format markdown    # Markdown into ./docs
  corkboard gen-docs --output ./man       # Man pages into ./man`,
	RunE: runGenDocs,
}

func init() {
	rootCmd.AddCommand(genDocsCmd)
	genDocsCmd.Flags().StringVarP(&genDocsOutputDir, "output", "o", "", "Output directory for generated docs")
	genDocsCmd.Flags().StringVarP(&genDocsFormat, "format", "f", "man", "Output format: man, markdown")
}

func runGenDocs(cmd *cobra.Command, _ []string) error {
	var (
		generate func(dir string) error
		ext      string
		fallback func() (string, error)
	)
	switch genDocsFormat {
	case "man":
		generate, ext, fallback = generateManPages, ".1", config.GetManDir
	case "markdown":
		generate, ext = generateMarkdown, ".md"
		fallback = func() (string, error) { return "./docs", nil }
	default:
		return fmt.Errorf("unsupported format %q (use: man, markdown)", genDocsFormat)
	}

	outputDir := genDocsOutputDir
	if outputDir == "" {
		dir, err := fallback()
		if err != nil {
			return fmt.Errorf("resolve output directory: %w", err)
		}
		outputDir = dir
	}
	if err := os.MkdirAll(outputDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	// No timestamp footer, for reproducible output.
	rootCmd.DisableAutoGenTag = true
	if err := generate(outputDir); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Generated %s docs in %s\n", genDocsFormat, outputDir)
	entries, err := os.ReadDir(outputDir)
	if err != nil {
		return nil
	}
	for _, e := range entries {
		if filepath.Ext(e.Name()) == ext {
			fmt.Fprintf(out, "  - %s\n", e.Name())
		}
	}
	return nil
}

func generateManPages(outputDir string) error {
	now := time.Now()
	header := &doc.GenManHeader{
		Title:   "CORKBOARD",
		Section: "1",
		Source:  "corkboard " + buildInfo.Version,
		Manual:  "Corkboard Manual",
		Date:    &now,
	}
	if err := doc.GenManTree(rootCmd, header, outputDir); err != nil {
		return fmt.Errorf("generate man pages: %w", err)
	}
	return nil
}

func generateMarkdown(outputDir string) error {
	if err := doc.GenMarkdownTree(rootCmd, outputDir); err != nil {
		return fmt.Errorf("generate markdown docs: %w", err)
	}
	return nil
}
