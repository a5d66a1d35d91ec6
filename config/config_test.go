package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("step_delay: 250ms\ntheme: dark\ncatalog: /tmp/tools.yaml\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 250*time.Millisecond, cfg.StepDelay)
	assert.Equal(t, ThemeDark, cfg.Theme)
	assert.Equal(t, "/tmp/tools.yaml", cfg.Catalog)
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestEnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))
	t.Setenv("DEVFLOW_THEME", "light")
	t.Setenv("DEVFLOW_STEP_DELAY", "2s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeLight, cfg.Theme)
	assert.Equal(t, 2*time.Second, cfg.StepDelay)
}

func TestLoadRejectsInvalid(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"theme.yaml": "theme: neon\n",
		"delay.yaml": "step_delay: 2h\n",
		"broken.yaml": "theme: [\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")
	want := Default()
	want.StepDelay = 500 * time.Millisecond
	want.Theme = ThemeLight
	want.LogFile = "/tmp/devflow.log"

	require.NoError(t, Write(path, want))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "step_delay: 500ms")

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadExtensionlessPath(t *testing.T) {
	dir := t.TempDir()

	cfg, err := Load(filepath.Join(dir, "nofile"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	path := filepath.Join(dir, "devflowrc")
	require.NoError(t, os.WriteFile(path, []byte("theme: dark\n"), 0o644))
	cfg, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, cfg.Theme)
}
