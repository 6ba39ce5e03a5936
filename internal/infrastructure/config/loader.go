// Package config loads, validates and watches the corkboard TOML configuration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config         *Config
	viper          *viper.Viper
	configDir      string
	mu             sync.RWMutex
	callbacks      []func(*Config)
	watching       bool
	skipNextReload bool
}

// NewManager creates a new configuration manager rooted at the XDG config dir.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to determine config directory: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
	}
	return NewManagerAt(configDir)
}

// NewManagerAt creates a configuration manager reading config.toml from dir.
func NewManagerAt(configDir string) (*Manager, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)

	// CORKBOARD_CANVAS_CELL_WIDTH and friends map onto nested keys.
	v.SetEnvPrefix("CORKBOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.BindEnv("logging.level", "CORKBOARD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind CORKBOARD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "CORKBOARD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind CORKBOARD_LOG_FORMAT: %w", err)
	}

	return &Manager{
		viper:     v,
		configDir: configDir,
		callbacks: make([]func(*Config), 0),
	}, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is created with defaults.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to ensure config directory: %w", err)
	}

	m.setDefaults()

	if err := m.readConfigFile(); err != nil {
		return err
	}

	config, err := m.unmarshalConfig()
	if err != nil {
		return err
	}
	normalizeConfig(config)

	if err := validateConfig(config); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	m.config = config
	return nil
}

func (m *Manager) configFile() string {
	return filepath.Join(m.configDir, "config.toml")
}

func (m *Manager) readConfigFile() error {
	err := m.viper.ReadInConfig()
	if err == nil {
		return nil
	}

	var notFound viper.ConfigFileNotFoundError
	if !errors.As(err, &notFound) {
		return fmt.Errorf("failed to read config file at %s: %w\nCheck the file format (must be valid TOML) and permissions", m.configFile(), err)
	}

	if createErr := m.createDefaultConfig(); createErr != nil {
		return fmt.Errorf(
			"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
			m.configDir,
			createErr,
		)
	}
	if rereadErr := m.viper.ReadInConfig(); rereadErr != nil {
		return fmt.Errorf("failed to read newly created config file: %w", rereadErr)
	}
	return nil
}

func (m *Manager) unmarshalConfig() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf(
			"failed to parse config file at %s: %w\nCheck for syntax errors, invalid values, or type mismatches",
			m.viper.ConfigFileUsed(),
			err,
		)
	}
	return config, nil
}

// createDefaultConfig writes the defaults and their JSON schema.
func (m *Manager) createDefaultConfig() error {
	if err := WriteConfigOrdered(DefaultConfig(), m.configFile()); err != nil {
		return err
	}
	return GenerateSchemaFile(filepath.Join(m.configDir, "config.schema.json"))
}

func normalizeConfig(config *Config) {
	config.Logging.Level = strings.ToLower(strings.TrimSpace(config.Logging.Level))
	if config.Logging.Level == "" {
		config.Logging.Level = defaultLogLevel
	}

	switch strings.ToLower(config.Logging.Format) {
	case "json":
		config.Logging.Format = "json"
	default:
		config.Logging.Format = defaultLogFormat
	}

	for i, ext := range config.Import.AudioExtensions {
		ext = strings.ToLower(strings.TrimSpace(ext))
		if ext != "" && !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		config.Import.AudioExtensions[i] = ext
	}
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	configCopy.Import.AudioExtensions = append([]string(nil), m.config.Import.AudioExtensions...)
	return &configCopy
}

// Save validates cfg and writes it to the config file.
func (m *Manager) Save(cfg *Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if cfg == nil {
		return fmt.Errorf("config is nil")
	}
	if err := validateConfig(cfg); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	if err := WriteConfigOrdered(cfg, m.configFile()); err != nil {
		return err
	}

	if m.watching {
		// The watcher will see our own write; the in-memory copy is already right.
		m.skipNextReload = true
		saved := *cfg
		m.config = &saved
		return nil
	}
	return m.reload()
}

// GetConfigFile returns the path to the configuration file being used.
func (m *Manager) GetConfigFile() string {
	if used := m.viper.ConfigFileUsed(); used != "" {
		return used
	}
	return m.configFile()
}

func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.log_dir", defaults.Logging.LogDir)
	m.viper.SetDefault("logging.enable_file_log", defaults.Logging.EnableFileLog)
	m.viper.SetDefault("logging.max_size_mb", defaults.Logging.MaxSizeMB)
	m.viper.SetDefault("logging.max_backups", defaults.Logging.MaxBackups)

	m.setAppearanceDefaults(defaults)
	m.setCanvasDefaults(defaults)
	m.setNotesDefaults(defaults)

	m.viper.SetDefault("import.audio_extensions", defaults.Import.AudioExtensions)
	m.viper.SetDefault("import.placeholder_cover_url", defaults.Import.PlaceholderCoverURL)
}

func (m *Manager) setAppearanceDefaults(defaults *Config) {
	p := defaults.Appearance.Palette
	m.viper.SetDefault("appearance.palette.background", p.Background)
	m.viper.SetDefault("appearance.palette.surface", p.Surface)
	m.viper.SetDefault("appearance.palette.surface_variant", p.SurfaceVariant)
	m.viper.SetDefault("appearance.palette.text", p.Text)
	m.viper.SetDefault("appearance.palette.muted", p.Muted)
	m.viper.SetDefault("appearance.palette.accent", p.Accent)
	m.viper.SetDefault("appearance.palette.border", p.Border)
	m.viper.SetDefault("appearance.sticky_color", defaults.Appearance.StickyColor)
	m.viper.SetDefault("appearance.audio_color", defaults.Appearance.AudioColor)
}

func (m *Manager) setCanvasDefaults(defaults *Config) {
	m.viper.SetDefault("canvas.cell_width", defaults.Canvas.CellWidth)
	m.viper.SetDefault("canvas.cell_height", defaults.Canvas.CellHeight)
	m.viper.SetDefault("canvas.default_zoom", defaults.Canvas.DefaultZoom)
	m.viper.SetDefault("canvas.zoom_step", defaults.Canvas.ZoomStep)
	m.viper.SetDefault("canvas.min_zoom", defaults.Canvas.MinZoom)
	m.viper.SetDefault("canvas.max_zoom", defaults.Canvas.MaxZoom)
	m.viper.SetDefault("canvas.pan_step", defaults.Canvas.PanStep)
}

func (m *Manager) setNotesDefaults(defaults *Config) {
	m.viper.SetDefault("notes.sticky.min_width", defaults.Notes.Sticky.MinWidth)
	m.viper.SetDefault("notes.sticky.min_height", defaults.Notes.Sticky.MinHeight)
	m.viper.SetDefault("notes.audio.min_width", defaults.Notes.Audio.MinWidth)
	m.viper.SetDefault("notes.audio.min_height", defaults.Notes.Audio.MinHeight)
	m.viper.SetDefault("notes.default_content", defaults.Notes.DefaultContent)
	m.viper.SetDefault("notes.spawn_area", defaults.Notes.SpawnArea)
	m.viper.SetDefault("notes.import_offset", defaults.Notes.ImportOffset)
}
