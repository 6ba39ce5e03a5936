package theme

import (
	"context"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/corkboard/internal/infrastructure/config"
	"github.com/bnema/corkboard/internal/logging"
)

// Ink colors for text drawn on the light note papers.
const (
	paperInk      = "#1f2937"
	paperInkMuted = "#6b7280"
	coverShade    = "#e5e7eb"
	progressFill  = "#3b82f6"
)

// Theme is the set of lipgloss styles used to draw the board.
type Theme struct {
	Palette Palette

	Board lipgloss.Style

	StickyPaper lipgloss.Style
	StickyText  lipgloss.Style
	AudioPaper  lipgloss.Style
	Cover       lipgloss.Style
	PlayButton  lipgloss.Style
	CloseButton lipgloss.Style
	Handle      lipgloss.Style
	ActiveEdge  lipgloss.Style

	TrackTitle  lipgloss.Style
	TrackArtist lipgloss.Style
	TrackTime   lipgloss.Style
	ProgressOn  lipgloss.Style
	ProgressOff lipgloss.Style
}

// NewTheme builds all styles from a palette.
func NewTheme(p Palette) *Theme {
	t := &Theme{Palette: p}

	t.Board = lipgloss.NewStyle().
		Background(lipgloss.Color(p.Background))

	t.StickyPaper = lipgloss.NewStyle().
		Background(lipgloss.Color(p.Sticky)).
		Foreground(lipgloss.Color(paperInk))
	t.StickyText = t.StickyPaper

	t.AudioPaper = lipgloss.NewStyle().
		Background(lipgloss.Color(p.Audio)).
		Foreground(lipgloss.Color(paperInk))

	t.Cover = lipgloss.NewStyle().
		Background(lipgloss.Color(coverShade)).
		Foreground(lipgloss.Color(paperInkMuted))

	t.PlayButton = t.Cover.
		Foreground(lipgloss.Color(paperInk)).
		Bold(true)

	t.CloseButton = lipgloss.NewStyle().
		Foreground(lipgloss.Color(paperInkMuted)).
		Bold(true)

	t.Handle = lipgloss.NewStyle().
		Foreground(lipgloss.Color(paperInkMuted))

	t.ActiveEdge = lipgloss.NewStyle().
		Foreground(lipgloss.Color(p.Accent)).
		Bold(true)

	t.TrackTitle = t.AudioPaper.Bold(true)
	t.TrackArtist = t.AudioPaper.Foreground(lipgloss.Color(paperInkMuted))
	t.TrackTime = t.TrackArtist

	t.ProgressOn = lipgloss.NewStyle().
		Foreground(lipgloss.Color(progressFill))
	t.ProgressOff = lipgloss.NewStyle().
		Foreground(lipgloss.Color(coverShade))

	return t
}

// Manager owns the current theme and rebuilds it when the config changes.
type Manager struct {
	mu      sync.RWMutex
	palette Palette
	theme   *Theme
}

// NewManager creates a theme manager from configuration.
func NewManager(ctx context.Context, cfg *config.Config) *Manager {
	m := &Manager{}
	m.UpdateFromConfig(ctx, cfg)
	return m
}

// Current returns the active theme.
func (m *Manager) Current() *Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

// Palette returns the active palette.
func (m *Manager) Palette() Palette {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.palette
}

// UpdateFromConfig rebuilds the theme from new settings.
// An invalid palette keeps the previous theme.
func (m *Manager) UpdateFromConfig(ctx context.Context, cfg *config.Config) {
	log := logging.FromContext(ctx)

	var appearance *config.AppearanceConfig
	if cfg != nil {
		appearance = &cfg.Appearance
	}
	p := PaletteFromConfig(appearance)
	if err := p.Validate(); err != nil {
		log.Warn().Err(err).Msg("ignoring invalid palette")
		if m.Current() != nil {
			return
		}
		p = DefaultDarkPalette()
	}

	m.mu.Lock()
	m.palette = p
	m.theme = NewTheme(p)
	m.mu.Unlock()

	log.Debug().Str("sticky", p.Sticky).Str("audio", p.Audio).Str("accent", p.Accent).Msg("theme updated")
}
