// Package cmd provides CLI command implementations.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/config"
	oerrors "github.com/surfeosc/catalogd/internal/errors"
	"github.com/surfeosc/catalogd/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the catalogd configuration.

Creates ~/.catalogd/config.yaml with a commented starter configuration
pointing at the bundled v1 and v3 schemas and fixtures. Edit the
catalogue section to serve your own data.

Examples:
  # Initialize configuration
  catalogd config init

  # Overwrite existing configuration
  catalogd config init --force`,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	paths, err := config.DefaultPaths()
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}

	if _, err := os.Stat(paths.ConfigFile); err == nil && !configInitForce {
		return &oerrors.DetailError{
			Type:     "configuration failed",
			Message:  "configuration already exists",
			Location: paths.ConfigFile,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrConfiguration,
		}
	}

	// Create the home directory with secure permissions (0700)
	if err := os.MkdirAll(paths.HomeDir, 0o700); err != nil {
		return oerrors.NewConfigurationError(
			"could not create ~/.catalogd directory", paths.HomeDir, "")
	}

	// Write config.yaml with secure permissions (0600)
	if err := os.WriteFile(paths.ConfigFile, []byte(config.DefaultConfigTemplate), 0o600); err != nil {
		return oerrors.NewConfigurationError(
			"could not write config.yaml", paths.ConfigFile, "")
	}

	output.Println("Configuration initialized at " + paths.HomeDir)
	output.Println("")
	output.Println("Created files:")
	output.Println("  " + paths.ConfigFile)
	output.Println("")
	output.Println("Validate with: catalogd config vet")

	return nil
}
