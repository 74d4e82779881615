package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	database "autismcare_backend/internals/databases"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			db, err := database.ConnectDB(cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = database.Close(db) }()

			if err := database.Migrate(db); err != nil {
				return err
			}
			log.Info("migration finished", zap.Int("models", len(database.Models())))
			return nil
		},
	}
}
