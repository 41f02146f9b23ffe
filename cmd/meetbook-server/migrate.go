package main

import (
	"github.com/spf13/cobra"

	"meetbook/backend/internal/store/postgres"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending database migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup()
			if err != nil {
				return err
			}
			if cfg.StoreDriver == "memory" {
				return errMemoryStore
			}

			ctx := commandContext(cmd)
			db, err := openDatabase(ctx, cfg, log)
			if err != nil {
				return err
			}
			defer func() { _ = postgres.Close(db) }()

			return runMigrations(ctx, db, log)
		},
	}
}
