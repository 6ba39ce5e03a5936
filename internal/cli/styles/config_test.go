package styles_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bnema/corkboard/internal/cli/styles"
	"github.com/bnema/corkboard/internal/domain/build"
	"github.com/bnema/corkboard/internal/infrastructure/config"
)

func TestConfigRenderer_RenderConfigPath(t *testing.T) {
	theme := styles.NewTheme(config.DefaultConfig())
	r := styles.NewConfigRenderer(theme)

	out := r.RenderConfigPath("/tmp/corkboard/config.toml")
	require.Contains(t, out, "Config")
	require.Contains(t, out, "config.toml")
}

func TestConfigRenderer_RenderError(t *testing.T) {
	theme := styles.NewTheme(nil)
	r := styles.NewConfigRenderer(theme)

	out := r.RenderError(errors.New("bad zoom"))
	require.Contains(t, out, "bad zoom")
}

func TestAboutRenderer_Render(t *testing.T) {
	r := styles.NewAboutRenderer(styles.NewTheme(nil))

	out := r.Render(build.Info{Version: "v0.2.0", Commit: "abc1234", BuildDate: "2026-01-02", GoVersion: "go1.25.3"})

	for _, want := range []string{"corkboard", "v0.2.0", "abc1234", "2026-01-02", "go1.25.3", build.RepoURL(), "bnema"} {
		require.Contains(t, out, want)
	}
}

func TestConfigRenderer_RenderSchemaWritten(t *testing.T) {
	r := styles.NewConfigRenderer(styles.NewTheme(nil))

	require.Contains(t, r.RenderSchemaWritten("/tmp/config.schema.json"), "config.schema.json")
	require.Contains(t, r.RenderNoConfigFile("/tmp/none.toml"), "created on first run")
}
