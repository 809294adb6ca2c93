// Package config provides configuration loading and management.
package config

import (
	"os"

	"github.com/surfeosc/catalogd/internal/output"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// ResolvedValue describes one configuration value after precedence has been
// applied, for verbose logging.
type ResolvedValue struct {
	Key      string
	Value    string
	Source   ConfigSource
	Shadowed map[ConfigSource]string
}

// ResolveListenOptions contains options for listen address resolution.
type ResolveListenOptions struct {
	// FlagValue is the --listen flag value (empty if not set).
	FlagValue string
	// ConfigValue is the listen value from config file (empty if not set).
	ConfigValue string
}

// ResolveListenResult contains the resolved listen address and its source.
type ResolveListenResult struct {
	// Listen is the resolved listen address.
	Listen string
	// Source indicates where the address came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveListen resolves the server listen address using precedence:
// (1) --listen flag, (2) CATALOGD_LISTEN env, (3) config.listen, (4) default.
func ResolveListen(opts ResolveListenOptions) ResolveListenResult {
	result := ResolveListenResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("CATALOGD_LISTEN")

	// Resolve using precedence: flag > env > config > default
	if opts.FlagValue != "" {
		result.Listen = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	} else if envValue != "" {
		result.Listen = envValue
		result.Source = SourceEnv
		if opts.ConfigValue != "" {
			result.Shadowed[SourceConfig] = opts.ConfigValue
		}
	} else if opts.ConfigValue != "" {
		result.Listen = opts.ConfigValue
		result.Source = SourceConfig
	} else {
		result.Listen = DefaultListen
		result.Source = SourceDefault
	}

	return result
}

// ResolveConfigPathOptions contains options for config path resolution.
type ResolveConfigPathOptions struct {
	// FlagValue is the --config flag value (empty if not set).
	FlagValue string
}

// ResolveConfigPathResult contains the resolved config path and its source.
type ResolveConfigPathResult struct {
	// ConfigPath is the resolved config file path.
	ConfigPath string
	// Source indicates where the config path came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) CATALOGD_CONFIG env, (3) ~/.catalogd/config.yaml.
func ResolveConfigPath(opts ResolveConfigPathOptions) (ResolveConfigPathResult, error) {
	result := ResolveConfigPathResult{
		Shadowed: make(map[ConfigSource]string),
	}

	envValue := os.Getenv("CATALOGD_CONFIG")

	// Get default path
	paths, err := DefaultPaths()
	if err != nil {
		return result, err
	}
	defaultPath := paths.ConfigFile

	// Resolve using precedence: flag > env > default
	if opts.FlagValue != "" {
		result.ConfigPath = opts.FlagValue
		result.Source = SourceFlag
		if envValue != "" {
			result.Shadowed[SourceEnv] = envValue
		}
		result.Shadowed[SourceDefault] = defaultPath
	} else if envValue != "" {
		result.ConfigPath = envValue
		result.Source = SourceEnv
		result.Shadowed[SourceDefault] = defaultPath
	} else {
		result.ConfigPath = defaultPath
		result.Source = SourceDefault
	}

	return result, nil
}

// LogResolvedValues logs configuration resolution at DEBUG level when verbose.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for source, shadowed := range v.Shadowed {
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
