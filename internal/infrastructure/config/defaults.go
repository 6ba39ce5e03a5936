package config

import "github.com/bnema/corkboard/internal/domain/entity"

// Default configuration constants
const (
	// Logging defaults
	defaultLogLevel   = "info"
	defaultLogFormat  = "console"
	defaultMaxSizeMB  = 10
	defaultMaxBackups = 3

	// Canvas defaults
	defaultCellWidth  = 8  // px
	defaultCellHeight = 16 // px
	defaultPanStep    = 32 // px

	// Notes defaults
	defaultNoteContent  = "New note"
	defaultSpawnArea    = 200 // px
	defaultImportOffset = 20  // px per imported file

	defaultPlaceholderCover = "https://images.unsplash.com/photo-1470225620780-dba8ba36b745?w=800&auto=format&fit=crop&q=60"
)

// getDefaultLogDir returns the default log directory, falls back to empty string on error
func getDefaultLogDir() string {
	logDir, err := GetLogDir()
	if err != nil {
		return ""
	}
	return logDir
}

// DefaultConfig returns the default configuration values for corkboard.
func DefaultConfig() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:         defaultLogLevel,
			Format:        defaultLogFormat,
			LogDir:        getDefaultLogDir(),
			EnableFileLog: true,
			MaxSizeMB:     defaultMaxSizeMB,
			MaxBackups:    defaultMaxBackups,
		},
		Appearance: AppearanceConfig{
			Palette: ColorPalette{
				Background:     "#0a0a0b",
				Surface:        "#1a1a1b",
				SurfaceVariant: "#2d2d2d",
				Text:           "#ffffff",
				Muted:          "#909090",
				Accent:         "#4ade80",
				Border:         "#333333",
			},
			StickyColor: "#fef9c3",
			AudioColor:  "#f5f5f5",
		},
		Canvas: CanvasConfig{
			CellWidth:   defaultCellWidth,
			CellHeight:  defaultCellHeight,
			DefaultZoom: entity.ZoomDefault,
			ZoomStep:    entity.ZoomStep,
			MinZoom:     entity.ZoomMin,
			MaxZoom:     entity.ZoomMax,
			PanStep:     defaultPanStep,
		},
		Notes: NotesConfig{
			Sticky:         SizeConfig{MinWidth: entity.DefaultMinWidth, MinHeight: entity.DefaultMinHeight},
			Audio:          SizeConfig{MinWidth: entity.AudioMinWidth, MinHeight: entity.AudioMinHeight},
			DefaultContent: defaultNoteContent,
			SpawnArea:      defaultSpawnArea,
			ImportOffset:   defaultImportOffset,
		},
		Import: ImportConfig{
			AudioExtensions:     []string{".mp3", ".flac", ".ogg", ".wav", ".m4a", ".opus", ".aac"},
			PlaceholderCoverURL: defaultPlaceholderCover,
		},
	}
}

// StickyConstraints converts the sticky note size config.
func (c *Config) StickyConstraints() entity.SizeConstraints {
	return entity.SizeConstraints{MinWidth: c.Notes.Sticky.MinWidth, MinHeight: c.Notes.Sticky.MinHeight}
}

// AudioConstraints converts the audio note size config.
func (c *Config) AudioConstraints() entity.SizeConstraints {
	return entity.SizeConstraints{MinWidth: c.Notes.Audio.MinWidth, MinHeight: c.Notes.Audio.MinHeight}
}

// ZoomRange converts the canvas zoom config.
func (c *Config) ZoomRange() entity.ZoomRange {
	return entity.ZoomRange{Min: c.Canvas.MinZoom, Max: c.Canvas.MaxZoom, Step: c.Canvas.ZoomStep}
}
