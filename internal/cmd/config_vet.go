// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/config"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
	"github.com/surfeosc/catalogd/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the catalogd configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is syntactically valid YAML
  3. Config satisfies the embedded schema (types, required fields)
  4. Cross-field constraints hold (latest names a configured version,
     every version has a schema and at least one fixture file)

The config path is resolved using precedence:
  --config flag > CATALOGD_CONFIG env > ~/.catalogd/config.yaml

Examples:
  # Validate default configuration
  catalogd config vet

  # Validate custom config path
  catalogd config vet --config /path/to/config.yaml`,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	// Resolve config path using precedence
	pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
		FlagValue: GetConfigPath(),
	})
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}

	configPath := pathResult.ConfigPath

	output.Debug("validating config",
		"path", configPath,
		"source", pathResult.Source,
	)

	// Check 1: Config file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &oerrors.DetailError{
			Type:     "not found",
			Message:  "configuration file not found",
			Location: configPath,
			Hint:     "Run 'catalogd config init' to create default configuration",
			Cause:    oerrors.ErrNotFound,
		}
	}

	// Checks 2-4: Load, then validate structurally and semantically
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(configPath); err != nil {
		return err
	}

	output.Println("Configuration is valid: " + configPath)
	return nil
}
