// Package cmd provides CLI command implementations.
package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/surfeosc/catalogd/internal/config"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
)

// runInit executes a fresh config init command with the given args.
func runInit(t *testing.T, args ...string) error {
	t.Helper()

	configInitForce = false
	t.Cleanup(func() { configInitForce = false })

	cmd := NewConfigInitCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	return cmd.Execute()
}

func TestNewConfigInitCmd(t *testing.T) {
	cmd := NewConfigInitCmd()

	assert.Equal(t, "init", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.NotNil(t, cmd.Flags().Lookup("force"))
}

func TestConfigInit_CreatesConfig(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	require.NoError(t, runInit(t))

	configFile := filepath.Join(home, ".catalogd", "config.yaml")
	assert.DirExists(t, filepath.Join(home, ".catalogd"))
	require.FileExists(t, configFile)

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfigTemplate, string(content))

	info, err := os.Stat(configFile)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestConfigInit_RefusesOverwrite(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".catalogd")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	configFile := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("listen: \":9999\"\n"), 0o600))

	err := runInit(t)
	require.Error(t, err)
	assert.ErrorIs(t, err, oerrors.ErrConfiguration)

	var detail *oerrors.DetailError
	require.ErrorAs(t, err, &detail)
	assert.Equal(t, configFile, detail.Location)
	assert.Contains(t, detail.Hint, "--force")

	// The existing file is untouched.
	content, readErr := os.ReadFile(configFile)
	require.NoError(t, readErr)
	assert.Equal(t, "listen: \":9999\"\n", string(content))
}

func TestConfigInit_Force(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	configDir := filepath.Join(home, ".catalogd")
	require.NoError(t, os.MkdirAll(configDir, 0o700))
	configFile := filepath.Join(configDir, "config.yaml")
	require.NoError(t, os.WriteFile(configFile, []byte("stale"), 0o600))

	require.NoError(t, runInit(t, "--force"))

	content, err := os.ReadFile(configFile)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfigTemplate, string(content))
}
