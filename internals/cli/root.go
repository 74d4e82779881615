// Package cli wires the autismcare commands: serve, migrate and seed.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"autismcare_backend/internals/configs"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "autismcare",
		Short:         "Autism care records API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newMigrateCmd(), newSeedCmd())
	return root
}

// Execute runs the command line and exits non-zero on failure.
func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads the environment and builds the logger every command needs.
func bootstrap() (*configs.Config, *zap.Logger, error) {
	cfg, note := configs.LoadEnv()
	log, err := configs.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, nil, fmt.Errorf("build logger: %w", err)
	}
	log.Info(note)
	return cfg, log, nil
}
