package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"matchday/internal/config"
	"matchday/internal/lib/migrator"
)

// NewMigrateCmd creates the migrate subcommand.
func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations and exit",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			if err := migrator.RunMigrations(cfg.Storage, setupLogger(cfg.Env)); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}

			return nil
		},
	}
}
