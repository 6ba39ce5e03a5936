package config

import (
	"fmt"
	"maps"
	"regexp"
	"slices"
	"strings"
)

var hexColorPattern = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateAppearance(config)...)
	validationErrors = append(validationErrors, validateCanvas(config)...)
	validationErrors = append(validationErrors, validateNotes(config)...)
	validationErrors = append(validationErrors, validateImport(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	switch config.Logging.Level {
	case "trace", "debug", "info", "warn", "error":
	default:
		validationErrors = append(validationErrors,
			fmt.Sprintf("logging.level must be one of trace, debug, info, warn, error (got %q)", config.Logging.Level))
	}
	if config.Logging.MaxSizeMB < 0 {
		validationErrors = append(validationErrors, "logging.max_size_mb must be non-negative")
	}
	if config.Logging.MaxBackups < 0 {
		validationErrors = append(validationErrors, "logging.max_backups must be non-negative")
	}
	return validationErrors
}

func validateAppearance(config *Config) []string {
	var validationErrors []string
	colors := map[string]string{
		"appearance.palette.background":      config.Appearance.Palette.Background,
		"appearance.palette.surface":         config.Appearance.Palette.Surface,
		"appearance.palette.surface_variant": config.Appearance.Palette.SurfaceVariant,
		"appearance.palette.text":            config.Appearance.Palette.Text,
		"appearance.palette.muted":           config.Appearance.Palette.Muted,
		"appearance.palette.accent":          config.Appearance.Palette.Accent,
		"appearance.palette.border":          config.Appearance.Palette.Border,
		"appearance.sticky_color":            config.Appearance.StickyColor,
		"appearance.audio_color":             config.Appearance.AudioColor,
	}
	for _, key := range slices.Sorted(maps.Keys(colors)) {
		value := colors[key]
		if value != "" && !hexColorPattern.MatchString(value) {
			validationErrors = append(validationErrors, fmt.Sprintf("%s must be a hex color like #1a2b3c (got %q)", key, value))
		}
	}
	return validationErrors
}

func validateCanvas(config *Config) []string {
	var validationErrors []string
	c := config.Canvas
	if c.CellWidth <= 0 || c.CellHeight <= 0 {
		validationErrors = append(validationErrors, "canvas.cell_width and canvas.cell_height must be positive")
	}
	if c.MinZoom <= 0 {
		validationErrors = append(validationErrors, "canvas.min_zoom must be positive")
	}
	if c.MaxZoom < c.MinZoom {
		validationErrors = append(validationErrors, "canvas.max_zoom must be greater than or equal to canvas.min_zoom")
	}
	if c.DefaultZoom < c.MinZoom || c.DefaultZoom > c.MaxZoom {
		validationErrors = append(validationErrors, "canvas.default_zoom must be between canvas.min_zoom and canvas.max_zoom")
	}
	if c.ZoomStep <= 0 {
		validationErrors = append(validationErrors, "canvas.zoom_step must be positive")
	}
	if c.PanStep < 0 {
		validationErrors = append(validationErrors, "canvas.pan_step must be non-negative")
	}
	return validationErrors
}

func validateNotes(config *Config) []string {
	var validationErrors []string
	if config.Notes.Sticky.MinWidth <= 0 || config.Notes.Sticky.MinHeight <= 0 {
		validationErrors = append(validationErrors, "notes.sticky.min_width and min_height must be positive")
	}
	if config.Notes.Audio.MinWidth <= 0 || config.Notes.Audio.MinHeight <= 0 {
		validationErrors = append(validationErrors, "notes.audio.min_width and min_height must be positive")
	}
	if config.Notes.SpawnArea < 0 {
		validationErrors = append(validationErrors, "notes.spawn_area must be non-negative")
	}
	if config.Notes.ImportOffset < 0 {
		validationErrors = append(validationErrors, "notes.import_offset must be non-negative")
	}
	return validationErrors
}

func validateImport(config *Config) []string {
	if len(config.Import.AudioExtensions) == 0 {
		return []string{"import.audio_extensions must list at least one extension"}
	}
	for _, ext := range config.Import.AudioExtensions {
		if len(ext) < 2 || !strings.HasPrefix(ext, ".") {
			return []string{fmt.Sprintf("import.audio_extensions entry %q must look like .mp3", ext)}
		}
	}
	return nil
}
