package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig_NoteSizes(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 192.0, cfg.StickyConstraints().MinWidth)
	assert.Equal(t, 192.0, cfg.StickyConstraints().MinHeight)
	assert.Equal(t, 256.0, cfg.AudioConstraints().MinWidth)
	assert.Equal(t, 400.0, cfg.AudioConstraints().MinHeight)
	assert.Equal(t, "New note", cfg.Notes.DefaultContent)
}

func TestDefaultConfig_IsValid(t *testing.T) {
	require.NoError(t, validateConfig(DefaultConfig()))
}
