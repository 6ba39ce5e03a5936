// Package theme turns the configured palette into lipgloss styles for the
// board and its notes.
package theme

import (
	"fmt"
	"maps"
	"regexp"
	"slices"

	"github.com/bnema/corkboard/internal/infrastructure/config"
)

// Palette holds semantic color tokens for theming.
type Palette struct {
	Background     string // Board background
	Surface        string // Toolbar and prompts
	SurfaceVariant string // Secondary surfaces
	Text           string // Primary text color
	Muted          string // Secondary/disabled text
	Accent         string // Active note border, play button
	Border         string // Border and divider lines
	Sticky         string // Text note paper
	Audio          string // Audio note card
	// Semantic status colors (not user-editable, derived defaults)
	Success     string
	Warning     string
	Destructive string
}

// DefaultDarkPalette returns the default dark theme palette.
func DefaultDarkPalette() Palette {
	return Palette{
		Background:     "#0a0a0b",
		Surface:        "#1a1a1b",
		SurfaceVariant: "#2d2d2d",
		Text:           "#ffffff",
		Muted:          "#909090",
		Accent:         "#4ade80",
		Border:         "#333333",
		Sticky:         "#fef9c3",
		Audio:          "#f5f5f5",
		Success:        "#4ade80",
		Warning:        "#fbbf24",
		Destructive:    "#ef4444",
	}
}

// PaletteFromConfig creates a Palette from config values, filling missing values with defaults.
func PaletteFromConfig(cfg *config.AppearanceConfig) Palette {
	defaults := DefaultDarkPalette()
	if cfg == nil {
		return defaults
	}

	return Palette{
		Background:     Coalesce(cfg.Palette.Background, defaults.Background),
		Surface:        Coalesce(cfg.Palette.Surface, defaults.Surface),
		SurfaceVariant: Coalesce(cfg.Palette.SurfaceVariant, defaults.SurfaceVariant),
		Text:           Coalesce(cfg.Palette.Text, defaults.Text),
		Muted:          Coalesce(cfg.Palette.Muted, defaults.Muted),
		Accent:         Coalesce(cfg.Palette.Accent, defaults.Accent),
		Border:         Coalesce(cfg.Palette.Border, defaults.Border),
		Sticky:         Coalesce(cfg.StickyColor, defaults.Sticky),
		Audio:          Coalesce(cfg.AudioColor, defaults.Audio),
		Success:        defaults.Success,
		Warning:        defaults.Warning,
		Destructive:    defaults.Destructive,
	}
}

// Coalesce returns the first non-empty string.
func Coalesce(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// hexColorRegex matches valid hex colors (#RGB, #RRGGBB).
var hexColorRegex = regexp.MustCompile(`^#([0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)

// ValidateHexColor checks if a string is a valid hex color.
func ValidateHexColor(color string) error {
	if color == "" {
		return nil // Empty is valid (will use default)
	}
	if !hexColorRegex.MatchString(color) {
		return fmt.Errorf("invalid hex color: %s", color)
	}
	return nil
}

// Validate checks all palette colors are valid hex values.
func (p Palette) Validate() error {
	colors := map[string]string{
		"background":      p.Background,
		"surface":         p.Surface,
		"surface_variant": p.SurfaceVariant,
		"text":            p.Text,
		"muted":           p.Muted,
		"accent":          p.Accent,
		"border":          p.Border,
		"sticky":          p.Sticky,
		"audio":           p.Audio,
	}

	for _, name := range slices.Sorted(maps.Keys(colors)) {
		if err := ValidateHexColor(colors[name]); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil
}
