package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaths(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	paths, err := DefaultPaths()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".catalogd"), paths.HomeDir)
	assert.Equal(t, filepath.Join(home, ".catalogd", "config.yaml"), paths.ConfigFile)
}

func TestGetConfigFile(t *testing.T) {
	t.Run("defaults to the home config", func(t *testing.T) {
		home := t.TempDir()
		t.Setenv("HOME", home)
		t.Setenv("CATALOGD_CONFIG", "")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(home, ".catalogd", "config.yaml"), path)
	})

	t.Run("environment takes precedence", func(t *testing.T) {
		t.Setenv("CATALOGD_CONFIG", "/etc/catalogd/config.yaml")

		path, err := GetConfigFile()
		require.NoError(t, err)
		assert.Equal(t, "/etc/catalogd/config.yaml", path)
	})
}

func TestEnsureHomeDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, EnsureHomeDir())

	info, err := os.Stat(filepath.Join(home, ".catalogd"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Second call is a no-op.
	assert.NoError(t, EnsureHomeDir())
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "bare tilde", input: "~", expected: home},
		{name: "tilde with path", input: "~/data/services.json", expected: filepath.Join(home, "data", "services.json")},
		{name: "absolute path unchanged", input: "/etc/catalogd/config.yaml", expected: "/etc/catalogd/config.yaml"},
		{name: "relative path unchanged", input: "data/services.json", expected: "data/services.json"},
		{name: "empty path unchanged", input: "", expected: ""},
		{name: "tilde username unsupported", input: "~other/config.yaml", expected: "~other/config.yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExpandPath(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}
