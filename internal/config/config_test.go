package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	cfg.SetDefaults()
	require.NoError(t, cfg.Validate())
	assert.Len(t, cfg.Emoji.Palette, 12)
	assert.Equal(t, DefaultPostText, cfg.Editor.InitialText)
	assert.Equal(t, []string{"ctrl+b"}, cfg.Keys.Bold)
}

func TestLoadFromPath_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
[editor]
show_line_numbers = true
tab_width = 2

[keys]
bold = ["alt+b", "ctrl+b"]

[log]
level = "DEBUG"
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.True(t, cfg.Editor.ShowLineNumbers)
	assert.Equal(t, 2, cfg.Editor.TabWidth)
	assert.Equal(t, DefaultPostText, cfg.Editor.InitialText)
	assert.Equal(t, []string{"alt+b", "ctrl+b"}, cfg.Keys.Bold)
	assert.Equal(t, []string{"ctrl+t"}, cfg.Keys.Italic)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.NotEmpty(t, cfg.Log.File)
}

func TestLoadFromPath_UnknownKey(t *testing.T) {
	path := writeConfig(t, `
[editor]
tabwidth = 2
`)
	_, err := LoadFromPath(path)
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	assert.Contains(t, err.Error(), "editor.tabwidth")
}

func TestLoadFromPath_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[editor\n")
	_, err := LoadFromPath(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load TOML config")
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := Default()
	cfg.Editor.TabWidth = 40
	cfg.Emoji.Palette = []string{"🚀", " "}
	cfg.Keys.Italic = []string{"ctrl+b"}
	cfg.Log.Level = "loud"

	err := cfg.Validate()
	require.Error(t, err)

	var verrs ValidateErrors
	require.True(t, errors.As(err, &verrs))
	fields := make([]string, 0, len(verrs))
	for _, e := range verrs {
		fields = append(fields, e.Field)
	}
	assert.ElementsMatch(t, []string{"editor.tab_width", "emoji.palette[1]", "keys.italic", "log.level"}, fields)
}

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	t.Setenv("GLYPHPOST_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	t.Setenv("GLYPHPOST_LOG_LEVEL", "warn")
	t.Setenv("GLYPHPOST_LOG_FILE", "/tmp/gp-test.log")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "/tmp/gp-test.log", cfg.Log.File)
	assert.Len(t, cfg.Emoji.Palette, 12)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := writeConfig(t, "[log]\nlevel = \"error\"\n")
	t.Setenv("GLYPHPOST_CONFIG", path)
	t.Setenv("GLYPHPOST_LOG_LEVEL", "trace")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "trace", cfg.Log.Level)
}

func TestSave_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	cfg := Default()
	cfg.Preview.Author = "Jane Roe"
	cfg.SetDefaults()

	require.NoError(t, Save(cfg, path))

	t.Setenv("GLYPHPOST_LOG_LEVEL", "")
	t.Setenv("GLYPHPOST_LOG_FILE", "")
	loaded, err := LoadFromPath(path)
	require.NoError(t, err)
	assert.Equal(t, "Jane Roe", loaded.Preview.Author)
	assert.Equal(t, cfg.Emoji.Palette, loaded.Emoji.Palette)
}
