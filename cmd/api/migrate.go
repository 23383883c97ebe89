package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pageza/nubereats/backend/config"
	"github.com/pageza/nubereats/backend/internal/database"
	"github.com/pageza/nubereats/backend/internal/logging"
)

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return err
			}
			log := logging.Must(cfg.Env)
			defer log.Sync() //nolint:errcheck

			db, err := database.Open(cfg, log)
			if err != nil {
				return err
			}
			if err := database.RunMigrations(db, log); err != nil {
				return err
			}
			log.Info("migrations applied", zap.String("driver", cfg.DBDriver))
			return nil
		},
	}
}
