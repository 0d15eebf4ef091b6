package main

import (
	"github.com/spf13/cobra"

	"github.com/yungbote/bacprep-backend/internal/app"
	"github.com/yungbote/bacprep-backend/internal/data/db"
)

func newMigrateCmd() *cobra.Command {
	var seed bool
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the schema, optionally seeding the subject catalog",
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := app.NewLogger()
			if err != nil {
				return err
			}
			defer log.Sync()

			svc, err := app.OpenDatabase(log, db.ConfigFromEnv())
			if err != nil {
				return err
			}
			defer svc.Close()
			log.Info("schema migrated", "driver", svc.Driver())

			if !seed {
				return nil
			}
			n, err := db.SeedSubjects(svc.DB())
			if err != nil {
				return err
			}
			log.Info("subject catalog seeded", "subjects", n)
			return nil
		},
	}
	cmd.Flags().BoolVar(&seed, "seed", false, "upsert the embedded subject catalog")
	return cmd
}
