// Package config provides configuration loading and management.
package config

import (
	"sort"
	"time"
)

// Built-in defaults applied when neither flag, environment, nor config file
// sets a value.
const (
	DefaultListen          = ":8080"
	DefaultCORSOrigin      = "*"
	DefaultShutdownTimeout = "10s"
)

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: false. Override with --timestamps flag.
	Timestamps *bool `json:"timestamps,omitempty"`
}

// VersionConfig names the data sources for one catalogue version.
type VersionConfig struct {
	// Schema is the path to the version's JSON Schema document.
	Schema string `json:"schema"`

	// Fixtures are the fixture files loaded in order into the version's
	// dataset.
	Fixtures []string `json:"fixtures"`
}

// CatalogueConfig describes the catalogue content to load at startup.
type CatalogueConfig struct {
	// Latest pins the version the "latest" alias resolves to.
	// Default: the highest configured version.
	Latest string `json:"latest,omitempty"`

	// Versions maps version tokens (v1, v3, ...) to their data sources.
	Versions map[string]VersionConfig `json:"versions,omitempty"`
}

// Config represents the catalogd configuration.
// Loaded from ~/.catalogd/config.yaml, validated against the embedded CUE
// schema.
type Config struct {
	// Listen is the address the HTTP server binds.
	// Env: CATALOGD_LISTEN, Default: ":8080"
	Listen string `json:"listen,omitempty"`

	// CORSOrigin is the value served as Access-Control-Allow-Origin.
	// Env: CATALOGD_CORS_ORIGIN, Default: "*"
	CORSOrigin string `json:"corsOrigin,omitempty"`

	// ShutdownTimeout bounds graceful shutdown of the HTTP server.
	// Env: CATALOGD_SHUTDOWN_TIMEOUT, Default: "10s"
	ShutdownTimeout string `json:"shutdownTimeout,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `json:"log,omitempty"`

	// Catalogue describes the catalogue content to load.
	Catalogue CatalogueConfig `json:"catalogue,omitempty"`
}

// DefaultConfig returns a Config with all default values populated, pointing
// at the fixture set shipped in the repository.
// Used by `catalogd config init` to generate the initial config file.
func DefaultConfig() *Config {
	return &Config{
		Listen:          DefaultListen,
		CORSOrigin:      DefaultCORSOrigin,
		ShutdownTimeout: DefaultShutdownTimeout,
		Catalogue: CatalogueConfig{
			Latest: "v3",
			Versions: map[string]VersionConfig{
				"v1": {
					Schema:   "schema/eosc_service_catalogue.schema_v1.json",
					Fixtures: []string{"data/v1/services.json"},
				},
				"v3": {
					Schema:   "schema/eosc_service_catalogue.schema_v3.json",
					Fixtures: []string{"data/v3/services.json"},
				},
			},
		},
	}
}

// WithDefaults returns a copy of the config with empty fields replaced by
// built-in defaults. The catalogue block is left as authored; a missing
// catalogue is a validation concern, not something defaults paper over.
func (c *Config) WithDefaults() *Config {
	out := *c

	if out.Listen == "" {
		out.Listen = DefaultListen
	}
	if out.CORSOrigin == "" {
		out.CORSOrigin = DefaultCORSOrigin
	}
	if out.ShutdownTimeout == "" {
		out.ShutdownTimeout = DefaultShutdownTimeout
	}

	return &out
}

// ShutdownDuration parses ShutdownTimeout, falling back to the default when
// unset or unparseable. Validation flags bad values before anything trusts
// this.
func (c *Config) ShutdownDuration() time.Duration {
	d, err := time.ParseDuration(c.ShutdownTimeout)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultShutdownTimeout)
	}
	return d
}

// VersionTokens returns the configured version tokens in lexical order, which
// keeps iteration deterministic for loading and reporting.
func (c *CatalogueConfig) VersionTokens() []string {
	tokens := make([]string, 0, len(c.Versions))
	for token := range c.Versions {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}
