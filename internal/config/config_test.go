package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsFullyPopulated(t *testing.T) {
	cfg := Default()

	require.NotNil(t, cfg.Render.Preset)
	assert.Equal(t, "ascii", *cfg.Render.Preset)
	require.NotNil(t, cfg.Render.Arrangement)
	assert.Equal(t, "dynamic", *cfg.Render.Arrangement)
	assert.Nil(t, cfg.Render.Width, "width defaults to the terminal, not a number")
	require.NotNil(t, cfg.Log.Level)
	assert.Equal(t, "info", *cfg.Log.Level)
}

func TestMergeOverridesOnlySetFields(t *testing.T) {
	override := File{}
	override.Render.Preset = ptr("utf8")
	override.Render.Width = ptr(100)

	merged := Merge(Default(), override)

	assert.Equal(t, "utf8", *merged.Render.Preset)
	assert.Equal(t, 100, *merged.Render.Width)
	assert.Equal(t, "dynamic", *merged.Render.Arrangement, "unset fields keep defaults")
	assert.Equal(t, 1, *merged.Render.PaddingLeft)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := "render:\n  preset: utf8\n  round_corners: true\nlog:\n  level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "utf8", *cfg.Render.Preset)
	assert.True(t, *cfg.Render.RoundCorners)
	assert.Equal(t, "debug", *cfg.Log.Level)
	assert.Equal(t, "dynamic", *cfg.Render.Arrangement, "file silence keeps defaults")
}

func TestLoadExplicitFileMissing(t *testing.T) {
	_, err := Load("/does/not/exist/config.yaml")
	assert.Error(t, err)
}

func TestLoadExplicitFileInvalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("render: [broken"), 0o644))

	_, err := Load(path)
	assert.ErrorContains(t, err, "parsing config")
}

func TestLoadNoPathFallsBackToDefaults(t *testing.T) {
	// Point the user config dir at an empty temp dir so no real config
	// file leaks into the test.
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "ascii", *cfg.Render.Preset)
}
