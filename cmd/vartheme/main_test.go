package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"

	"vartheme/internal/config"
	"vartheme/internal/db/mock"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPalettesListsCatalog(t *testing.T) {
	out, err := execute(t, "palettes")
	require.NoError(t, err)

	for _, name := range []string{"default", "ocean", "forest", "sunset", "rose"} {
		assert.Contains(t, out, name)
	}
	assert.Contains(t, out, "#A78BFA")

	out, err = execute(t, "palettes", "--mode", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "#7C3AED")
}

func TestShowPalette(t *testing.T) {
	out, err := execute(t, "show", "ocean", "-m", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "Ocean (light)")
	assert.Contains(t, out, "#0284C7")
	assert.Contains(t, out, "#F0F9FF")

	_, err = execute(t, "show", "neon")
	assert.ErrorContains(t, err, "unknown palette")

	_, err = execute(t, "show", "ocean", "--mode", "dim")
	assert.ErrorContains(t, err, "unknown mode")
}

func TestColorConversions(t *testing.T) {
	out, err := execute(t, "hsl", "200", "80", "50")
	require.NoError(t, err)
	assert.Equal(t, "#19A1E6\n", out)

	out, err = execute(t, "hex", "#19A1E6")
	require.NoError(t, err)
	assert.Equal(t, "hsl(200, 80%, 50%)\n", out)

	_, err = execute(t, "hex", "teal")
	assert.Error(t, err)

	_, err = execute(t, "hsl", "a", "b", "c")
	assert.ErrorContains(t, err, "invalid number")
}

func TestExportFormats(t *testing.T) {
	out, err := execute(t, "export")
	require.NoError(t, err)
	assert.Contains(t, out, `[data-theme="ocean"][data-mode="dark"] {`)
	assert.Contains(t, out, "--primary-glow: #38BDF844;")
	assert.NotContains(t, out, `data-mode="light"`)

	out, err = execute(t, "export", "--format", "json", "--all-modes")
	require.NoError(t, err)
	var fromJSON catalogExport
	require.NoError(t, json.Unmarshal([]byte(out), &fromJSON))
	assert.Len(t, fromJSON, 5)
	assert.Equal(t, "#16A34A", fromJSON["forest"]["light"].Primary)

	out, err = execute(t, "export", "-f", "yaml", "-p", "rose")
	require.NoError(t, err)
	var fromYAML catalogExport
	require.NoError(t, yaml.Unmarshal([]byte(out), &fromYAML))
	assert.Equal(t, "#FB7185", fromYAML["rose"]["dark"].Primary)

	out, err = execute(t, "export", "-f", "toml", "-p", "sunset", "-m", "light")
	require.NoError(t, err)
	var fromTOML catalogExport
	require.NoError(t, toml.Unmarshal([]byte(out), &fromTOML))
	assert.Equal(t, "#EA580C", fromTOML["sunset"]["light"].Primary)

	_, err = execute(t, "export", "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestExtractSuggestsColors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	require.NoError(t, os.WriteFile(path, []byte("Primary #7C3AED\nAccent #06B6D4\n"), 0o644))

	out, err := execute(t, "extract", path, "--preset", "ocean")
	require.NoError(t, err)
	assert.Contains(t, out, "Found 2 colors")
	assert.Contains(t, out, `primary: "#7C3AED"`)
	assert.Contains(t, out, `accent:  "#06B6D4"`)

	empty := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(empty, []byte("no colors"), 0o644))
	_, err = execute(t, "extract", empty)
	assert.Error(t, err)
}

func withMockDatabase(t *testing.T) {
	t.Helper()
	originalLoad := loadConfigFunc
	originalOpen := openDatabaseFunc
	t.Cleanup(func() {
		loadConfigFunc = originalLoad
		openDatabaseFunc = originalOpen
	})

	loadConfigFunc = func() (config.Config, error) {
		return config.Config{Database: config.DatabaseConfig{UseMock: true}}, nil
	}
	openDatabaseFunc = func(ctx context.Context, cfg config.DatabaseConfig) (*gorm.DB, error) {
		require.True(t, cfg.UseMock)
		return mock.New(ctx)
	}
}

func TestPrefsGetAndSet(t *testing.T) {
	withMockDatabase(t)

	out, err := execute(t, "prefs", "get", mock.DemoVisitorToken)
	require.NoError(t, err)
	assert.Equal(t, "ocean light\n", out)

	token := "00000000-0000-4000-8000-0000000000ff"
	out, err = execute(t, "prefs", "get", token)
	require.NoError(t, err)
	assert.Equal(t, "default dark\n", out)

	_, err = execute(t, "prefs", "set", token, "--theme", "forest", "--mode", "light")
	require.NoError(t, err)

	out, err = execute(t, "prefs", "get", token)
	require.NoError(t, err)
	assert.Equal(t, "forest light\n", strings.TrimLeft(out, " "))
}

func TestPrefsSetValidates(t *testing.T) {
	withMockDatabase(t)

	_, err := execute(t, "prefs", "set", mock.DemoVisitorToken)
	assert.ErrorContains(t, err, "nothing to set")

	_, err = execute(t, "prefs", "set", mock.DemoVisitorToken, "--theme", "custom")
	assert.ErrorContains(t, err, "unknown palette")

	_, err = execute(t, "prefs", "set", mock.DemoVisitorToken, "--mode", "dim")
	assert.ErrorContains(t, err, "unknown mode")
}
