package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zerolog.Level{
		"trace":   zerolog.TraceLevel,
		"DEBUG":   zerolog.DebugLevel,
		" warn ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
		"":        zerolog.InfoLevel,
		"warning": zerolog.WarnLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestWithComponent_AddsField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: zerolog.DebugLevel, Format: "json"}, &buf)

	ctx := WithComponent(WithContext(context.Background(), logger), "board")
	ctx = WithNoteID(ctx, "n1")
	FromContext(ctx).Info().Msg("hello")

	assert.Contains(t, buf.String(), `"component":"board"`)
	assert.Contains(t, buf.String(), `"note_id":"n1"`)
}

func TestNewWithFile_WritesAndRotates(t *testing.T) {
	dir := t.TempDir()

	logger, cleanup, err := NewWithFile(
		Config{Level: zerolog.InfoLevel, Format: "json"},
		FileConfig{Enabled: true, Dir: dir, MaxSizeMB: 1, MaxBackups: 1},
	)
	require.NoError(t, err)
	logger.Info().Msg("first")
	cleanup()

	data, err := os.ReadFile(filepath.Join(dir, "corkboard.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "first")
}

func TestNewWithFile_DisabledIsNop(t *testing.T) {
	logger, cleanup, err := NewWithFile(DefaultConfig(), FileConfig{})
	defer cleanup()

	require.NoError(t, err)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestLogRotator_PrunesBackups(t *testing.T) {
	dir := t.TempDir()
	r, err := NewLogRotator(dir, "test.log", 1, 2)
	require.NoError(t, err)
	r.maxSize = 8

	for i := 0; i < 5; i++ {
		_, err := r.Write([]byte("0123456789"))
		require.NoError(t, err)
	}
	require.NoError(t, r.Close())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	// current file plus at most two backups
	assert.LessOrEqual(t, len(entries), 3)
}
