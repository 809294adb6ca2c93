// Package cmd provides CLI command implementations.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/config"
	"github.com/surfeosc/catalogd/internal/output"
)

var (
	// Global flags
	configFlag     string
	verboseFlag    bool
	timestampsFlag bool

	// Loaded configuration (set during PersistentPreRunE)
	loadedConfig *config.Config
	configErr    error
)

// NewRootCmd creates the root command for the catalogd CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "catalogd",
		Short: "Versioned service catalogue daemon",
		Long: `catalogd loads versioned service-catalogue fixtures, validates every record
against the version's JSON Schema, and serves the result over a read-only
HTTP API.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	// Add global flags
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: CATALOGD_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", false, "Show timestamps in log output")

	// Add subcommands
	rootCmd.AddCommand(NewServeCmd())
	rootCmd.AddCommand(NewLsCmd())
	rootCmd.AddCommand(NewVetCmd())
	rootCmd.AddCommand(NewVersionsCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals loads configuration and sets up logging. Load failures
// are kept for the commands that need configuration; commands that do not
// (version, config init) still work.
func initializeGlobals(cmd *cobra.Command) error {
	loadedConfig, configErr = config.NewLoader().LoadWithDefaults(configFlag)

	// Resolve timestamps: flag (if explicitly set) > config > default (false)
	timestamps := timestampsFlag
	if !cmd.Flags().Changed("timestamps") && loadedConfig != nil && loadedConfig.Log.Timestamps != nil {
		timestamps = *loadedConfig.Log.Timestamps
	}

	output.SetupLogging(verboseFlag, timestamps)

	if configErr != nil {
		output.Debug("config load error", "error", configErr)
	}

	if verboseFlag {
		pathResult, err := config.ResolveConfigPath(config.ResolveConfigPathOptions{
			FlagValue: configFlag,
		})
		if err == nil {
			output.Debug("initializing CLI",
				"config", pathResult.ConfigPath,
				"config_source", pathResult.Source,
			)
		}
	}

	return nil
}

// GetConfig returns the configuration loaded during startup.
func GetConfig() *config.Config {
	return loadedConfig
}

// GetConfigPath returns the raw --config flag value.
func GetConfigPath() string {
	return configFlag
}
