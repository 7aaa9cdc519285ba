// Package main is the entry point for the Pokemon gateway.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/preston-bernstein/pokemon-gateway/internal/config"
	"github.com/preston-bernstein/pokemon-gateway/internal/logging"
)

const appVersion = "dev"

func main() {
	if os.Getenv("SKIP_SERVER_RUN") == "1" {
		return
	}

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliOptions are the flag overrides shared by every command.
type cliOptions struct {
	port     string
	provider string
}

func newRootCmd() *cobra.Command {
	opts := &cliOptions{}

	rootCmd := &cobra.Command{
		Use:           "pokemon-gateway",
		Short:         "Pokemon API gateway",
		Long:          `Pokemon API gateway fetches entities from PokeAPI and serves them in a stable, simplified schema.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd, opts)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.port, "port", "", "HTTP listen port (overrides PORT)")
	rootCmd.PersistentFlags().StringVar(&opts.provider, "provider", "", "entity provider: pokeapi or fixture (overrides PROVIDER)")

	rootCmd.AddCommand(newServeCmd(opts))
	rootCmd.AddCommand(newFetchCmd(opts))
	return rootCmd
}

// loadConfig reads the environment and applies any flag overrides.
func loadConfig(opts *cliOptions) config.Config {
	cfg := config.Load()
	if opts.port != "" {
		cfg.Port = opts.port
	}
	if opts.provider != "" {
		cfg.Provider = opts.provider
	}
	return cfg
}

func newLogger(out io.Writer) *slog.Logger {
	return logging.NewLogger(logging.Config{
		Level:   os.Getenv("LOG_LEVEL"),
		Format:  os.Getenv("LOG_FORMAT"),
		Service: "pokemon-gateway",
		Version: appVersion,
		Output:  out,
	})
}
