package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/surfeosc/catalogd/internal/config"
	"github.com/surfeosc/catalogd/internal/server"
)

// Serve command flags.
var serveListenFlag string

// NewServeCmd creates the serve command.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the catalogue and serve the HTTP API",
		Long: `Load every configured catalogue version and serve the read-only HTTP API.

Startup is fail-fast: the configuration must validate, every fixture record
must pass its version's JSON Schema, and bundle keys must be unique. A
catalogue that starts serving is known to be fully valid.

The listen address is resolved using precedence:
  --listen flag > CATALOGD_LISTEN env > config listen > :8080

Examples:
  # Serve with the default configuration
  catalogd serve

  # Serve on another port
  catalogd serve --listen :9090`,
		Args: cobra.NoArgs,
		RunE: runServe,
	}

	cmd.Flags().StringVar(&serveListenFlag, "listen", "",
		"Listen address (env: CATALOGD_LISTEN)")

	return cmd
}

// runServe executes the serve command.
func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := requireConfig()
	if err != nil {
		return err
	}

	cat, err := buildCatalog(cfg)
	if err != nil {
		return err
	}

	listen := config.ResolveListen(config.ResolveListenOptions{
		FlagValue:   serveListenFlag,
		ConfigValue: cfg.Listen,
	})
	if verboseFlag {
		config.LogResolvedValues([]config.ResolvedValue{{
			Key:      "listen",
			Value:    listen.Listen,
			Source:   listen.Source,
			Shadowed: listen.Shadowed,
		}})
	}

	srv := server.New(cat, server.Options{
		CORSOrigin: cfg.CORSOrigin,
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return srv.Run(ctx, listen.Listen, cfg.ShutdownDuration())
}
