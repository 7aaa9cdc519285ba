package main

import (
	"context"
	"fmt"
	"time"

	"github.com/bytedance/sonic"
	"github.com/spf13/cobra"

	"github.com/preston-bernstein/pokemon-gateway/internal/server"
)

func newFetchCmd(opts *cliOptions) *cobra.Command {
	var timeout time.Duration

	cmd := &cobra.Command{
		Use:   "fetch <identifier>",
		Short: "Fetch one entity and print its normalized JSON",
		Long:  `Run the fetch and transform pipeline once for a name or numeric id, without starting the HTTP server.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cmd, opts, args[0], timeout)
		},
	}

	cmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "overall deadline for the fetch")
	return cmd
}

func runFetch(cmd *cobra.Command, opts *cliOptions, identifier string, timeout time.Duration) error {
	cfg := loadConfig(opts)
	svc := server.NewEntityService(cfg, newLogger(cmd.ErrOrStderr()))

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	entity, err := svc.Entity(ctx, identifier)
	if err != nil {
		return fmt.Errorf("failed to fetch %q: %w", identifier, err)
	}

	out, err := sonic.ConfigStd.MarshalIndent(entity, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode entity: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
