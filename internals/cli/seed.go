package cli

import (
	"github.com/spf13/cobra"

	database "autismcare_backend/internals/databases"
	"autismcare_backend/internals/seeds"
)

func newSeedCmd() *cobra.Command {
	var (
		file    string
		migrate bool
	)
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load schools, therapists and users from a JSON file",
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

			if migrate {
				if err := database.Migrate(db); err != nil {
					return err
				}
			}
			_, err = seeds.RunFromFile(cmd.Context(), db, file, log)
			return err
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "internals/seeds/data_seed.json", "seed file path")
	cmd.Flags().BoolVar(&migrate, "migrate", false, "run migrations before seeding")
	return cmd
}
