package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteConfigOrdered(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, WriteConfigOrdered(DefaultConfig(), configPath))

	content, err := os.ReadFile(configPath)
	require.NoError(t, err)

	var sections []string
	for _, line := range strings.Split(string(content), "\n") {
		if m := tomlSectionHeader.FindStringSubmatch(line); m != nil {
			sections = append(sections, m[1])
		}
	}

	require.NotEmpty(t, sections)
	for i := 1; i < len(sections); i++ {
		assert.LessOrEqual(t, sections[i-1], sections[i], "sections must be sorted")
	}
	assert.Contains(t, sections, "notes.sticky")
}

func TestWriteConfigOrdered_Nil(t *testing.T) {
	require.Error(t, WriteConfigOrdered(nil, filepath.Join(t.TempDir(), "x.toml")))
}

func TestSortTOMLSections(t *testing.T) {
	in := "top = 1\n\n[zeta]\na = 1\n\n[alpha]\nb = 2\n"

	out := sortTOMLSections(in)

	assert.Equal(t, "top = 1\n\n[alpha]\nb = 2\n\n[zeta]\na = 1\n", out)
}

func TestSchema_HasSections(t *testing.T) {
	schema := Schema()

	require.NotNil(t, schema.Properties)
	for _, key := range []string{"logging", "appearance", "canvas", "notes", "import"} {
		_, ok := schema.Properties.Get(key)
		assert.True(t, ok, key)
	}
}

func TestEncodeOrdered(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Canvas.MaxZoom = 3

	data, err := EncodeOrdered(cfg)
	require.NoError(t, err)

	out := string(data)
	assert.Contains(t, out, "[canvas]")
	assert.Contains(t, out, "max_zoom = 3.0")
	assert.Less(t, strings.Index(out, "[appearance]"), strings.Index(out, "[logging]"))

	_, err = EncodeOrdered(nil)
	assert.Error(t, err)
}
