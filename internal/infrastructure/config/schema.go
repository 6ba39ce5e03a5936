package config

// Config represents the complete configuration for corkboard.
type Config struct {
	Logging    LoggingConfig    `mapstructure:"logging" yaml:"logging" toml:"logging" json:"logging"`
	Appearance AppearanceConfig `mapstructure:"appearance" yaml:"appearance" toml:"appearance" json:"appearance"`
	// Canvas controls the board geometry and zoom range.
	Canvas CanvasConfig `mapstructure:"canvas" yaml:"canvas" toml:"canvas" json:"canvas"`
	// Notes controls note sizes and placement.
	Notes NotesConfig `mapstructure:"notes" yaml:"notes" toml:"notes" json:"notes"`
	// Import controls the audio import flow.
	Import ImportConfig `mapstructure:"import" yaml:"import" toml:"import" json:"import"`
}

// LoggingConfig holds logging preferences.
type LoggingConfig struct {
	// Level is one of trace, debug, info, warn, error.
	Level string `mapstructure:"level" yaml:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error"`
	// Format is console or json.
	Format string `mapstructure:"format" yaml:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json"`
	// LogDir is where the board writes its log file while the terminal is in use.
	LogDir        string `mapstructure:"log_dir" yaml:"log_dir" toml:"log_dir" json:"log_dir"`
	EnableFileLog bool   `mapstructure:"enable_file_log" yaml:"enable_file_log" toml:"enable_file_log" json:"enable_file_log"`
	MaxSizeMB     int    `mapstructure:"max_size_mb" yaml:"max_size_mb" toml:"max_size_mb" json:"max_size_mb"`
	MaxBackups    int    `mapstructure:"max_backups" yaml:"max_backups" toml:"max_backups" json:"max_backups"`
}

// ColorPalette holds hex colors for the terminal theme.
type ColorPalette struct {
	Background     string `mapstructure:"background" yaml:"background" toml:"background" json:"background"`
	Surface        string `mapstructure:"surface" yaml:"surface" toml:"surface" json:"surface"`
	SurfaceVariant string `mapstructure:"surface_variant" yaml:"surface_variant" toml:"surface_variant" json:"surface_variant"`
	Text           string `mapstructure:"text" yaml:"text" toml:"text" json:"text"`
	Muted          string `mapstructure:"muted" yaml:"muted" toml:"muted" json:"muted"`
	Accent         string `mapstructure:"accent" yaml:"accent" toml:"accent" json:"accent"`
	Border         string `mapstructure:"border" yaml:"border" toml:"border" json:"border"`
}

// AppearanceConfig holds visual settings.
type AppearanceConfig struct {
	Palette ColorPalette `mapstructure:"palette" yaml:"palette" toml:"palette" json:"palette"`
	// StickyColor is the background of text notes.
	StickyColor string `mapstructure:"sticky_color" yaml:"sticky_color" toml:"sticky_color" json:"sticky_color"`
	// AudioColor is the background of audio notes.
	AudioColor string `mapstructure:"audio_color" yaml:"audio_color" toml:"audio_color" json:"audio_color"`
}

// CanvasConfig controls how terminal cells map to board pixels and the zoom range.
type CanvasConfig struct {
	// CellWidth and CellHeight are the size of one terminal cell in screen pixels.
	CellWidth  float64 `mapstructure:"cell_width" yaml:"cell_width" toml:"cell_width" json:"cell_width"`
	CellHeight float64 `mapstructure:"cell_height" yaml:"cell_height" toml:"cell_height" json:"cell_height"`
	// DefaultZoom is the zoom factor at startup (1.0 = 100%).
	DefaultZoom float64 `mapstructure:"default_zoom" yaml:"default_zoom" toml:"default_zoom" json:"default_zoom"`
	ZoomStep    float64 `mapstructure:"zoom_step" yaml:"zoom_step" toml:"zoom_step" json:"zoom_step"`
	MinZoom     float64 `mapstructure:"min_zoom" yaml:"min_zoom" toml:"min_zoom" json:"min_zoom"`
	MaxZoom     float64 `mapstructure:"max_zoom" yaml:"max_zoom" toml:"max_zoom" json:"max_zoom"`
	// PanStep is how far one arrow key moves the view, in screen pixels.
	PanStep float64 `mapstructure:"pan_step" yaml:"pan_step" toml:"pan_step" json:"pan_step"`
}

// SizeConfig is a minimum note size in screen pixels.
type SizeConfig struct {
	MinWidth  float64 `mapstructure:"min_width" yaml:"min_width" toml:"min_width" json:"min_width"`
	MinHeight float64 `mapstructure:"min_height" yaml:"min_height" toml:"min_height" json:"min_height"`
}

// NotesConfig controls note sizing and placement.
type NotesConfig struct {
	Sticky SizeConfig `mapstructure:"sticky" yaml:"sticky" toml:"sticky" json:"sticky"`
	Audio  SizeConfig `mapstructure:"audio" yaml:"audio" toml:"audio" json:"audio"`
	// DefaultContent is the text of a freshly created note.
	DefaultContent string `mapstructure:"default_content" yaml:"default_content" toml:"default_content" json:"default_content"`
	// SpawnArea is the side of the square new notes are randomly placed in.
	SpawnArea float64 `mapstructure:"spawn_area" yaml:"spawn_area" toml:"spawn_area" json:"spawn_area"`
	// ImportOffset staggers notes created from one import.
	ImportOffset float64 `mapstructure:"import_offset" yaml:"import_offset" toml:"import_offset" json:"import_offset"`
}

// ImportConfig controls which files become audio notes.
type ImportConfig struct {
	// AudioExtensions lists accepted file extensions, with leading dot.
	AudioExtensions     []string `mapstructure:"audio_extensions" yaml:"audio_extensions" toml:"audio_extensions" json:"audio_extensions"`
	PlaceholderCoverURL string   `mapstructure:"placeholder_cover_url" yaml:"placeholder_cover_url" toml:"placeholder_cover_url" json:"placeholder_cover_url"`
}
