package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	assert.NotNil(t, loader)
	assert.NotNil(t, loader.v)
}

func TestLoaderLoad(t *testing.T) {
	t.Run("loads config from file", func(t *testing.T) {
		path := writeConfigFile(t, `
listen: "127.0.0.1:9000"
corsOrigin: "https://portal.example.org"
shutdownTimeout: "30s"
log:
  timestamps: true
catalogue:
  latest: v3
  versions:
    v1:
      schema: schema/v1.json
      fixtures:
        - data/v1/services.json
    v3:
      schema: schema/v3.json
      fixtures:
        - data/v3/services.json
        - data/v3/extra.json
`)

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
		assert.Equal(t, "https://portal.example.org", cfg.CORSOrigin)
		assert.Equal(t, "30s", cfg.ShutdownTimeout)
		require.NotNil(t, cfg.Log.Timestamps)
		assert.True(t, *cfg.Log.Timestamps)

		assert.Equal(t, "v3", cfg.Catalogue.Latest)
		require.Len(t, cfg.Catalogue.Versions, 2)
		assert.Equal(t, "schema/v1.json", cfg.Catalogue.Versions["v1"].Schema)
		assert.Equal(t,
			[]string{"data/v3/services.json", "data/v3/extra.json"},
			cfg.Catalogue.Versions["v3"].Fixtures,
		)
	})

	t.Run("missing file yields empty config", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Empty(t, cfg.Listen)
		assert.Empty(t, cfg.Catalogue.Versions)
	})

	t.Run("malformed yaml is an error", func(t *testing.T) {
		path := writeConfigFile(t, "listen: [unclosed")

		_, err := NewLoader().Load(path)
		assert.Error(t, err)
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		path := writeConfigFile(t, `listen: ":8080"`)
		t.Setenv("CATALOGD_LISTEN", ":9999")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9999", cfg.Listen)
	})

	t.Run("environment applies without a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")
		t.Setenv("CATALOGD_CORS_ORIGIN", "https://env.example.org")
		t.Setenv("CATALOGD_CATALOGUE_LATEST", "v1")

		cfg, err := NewLoader().Load(path)
		require.NoError(t, err)

		assert.Equal(t, "https://env.example.org", cfg.CORSOrigin)
		assert.Equal(t, "v1", cfg.Catalogue.Latest)
	})
}

func TestLoadWithDefaults(t *testing.T) {
	path := writeConfigFile(t, `
catalogue:
  versions:
    v1:
      schema: schema/v1.json
      fixtures: [data/v1/services.json]
`)

	cfg, err := NewLoader().LoadWithDefaults(path)
	require.NoError(t, err)

	assert.Equal(t, DefaultListen, cfg.Listen)
	assert.Equal(t, DefaultCORSOrigin, cfg.CORSOrigin)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
	assert.Len(t, cfg.Catalogue.Versions, 1)
}

func TestConfigFileExists(t *testing.T) {
	t.Run("existing file", func(t *testing.T) {
		path := writeConfigFile(t, `listen: ":8080"`)

		exists, err := ConfigFileExists(path)
		require.NoError(t, err)
		assert.True(t, exists)
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "absent.yaml")

		exists, err := ConfigFileExists(path)
		require.NoError(t, err)
		assert.False(t, exists)
	})
}
