package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/bnema/corkboard/internal/cli/styles"
	"github.com/bnema/corkboard/internal/infrastructure/config"
)

var (
	configSchemaOutput string
	configShowFormat   string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where the config file lives, print the effective configuration, or write its JSON schema.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the config file location",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration as TOML",
	Long: `Print the configuration corkboard is using, after defaults and
CORKBOARD_* environment overrides are applied.

Formats: toml (the config file layout) and yaml.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Write the JSON schema of the config file",
	Long: `Write the JSON schema of config.toml. Editors with TOML schema support
use it for completion and validation.

By default the schema is written next to the config file.`,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configShowCmd.Flags().StringVarP(&configShowFormat, "format", "f", "toml", "Output format: toml, yaml")
	configSchemaCmd.Flags().StringVarP(&configSchemaOutput, "output", "o", "", "schema file path")
}

func runConfigPath(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	configFile, err := config.GetConfigFile()
	if err != nil {
		fmt.Println(renderer.RenderError(err))
		return nil
	}

	if _, statErr := os.Stat(configFile); os.IsNotExist(statErr) {
		fmt.Println(renderer.RenderNoConfigFile(configFile))
		return nil
	}
	fmt.Println(renderer.RenderConfigPath(configFile))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := encodeConfig(app.Config, configShowFormat)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

func encodeConfig(cfg *config.Config, format string) ([]byte, error) {
	switch format {
	case "toml":
		return config.EncodeOrdered(cfg)
	case "yaml":
		data, err := yaml.Marshal(cfg)
		if err != nil {
			return nil, fmt.Errorf("encode config as yaml: %w", err)
		}
		return data, nil
	default:
		return nil, fmt.Errorf("unsupported format %q (use: toml, yaml)", format)
	}
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := configSchemaOutput
	if path == "" {
		var err error
		if path, err = config.GetSchemaFile(); err != nil {
			fmt.Println(renderer.RenderError(err))
			return nil
		}
	}

	if err := config.GenerateSchemaFile(path); err != nil {
		fmt.Println(renderer.RenderError(err))
		return err
	}
	fmt.Println(renderer.RenderSchemaWritten(path))
	return nil
}
