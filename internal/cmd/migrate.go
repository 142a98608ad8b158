package cmd

import (
	"fmt"

	"eshop-fixtures/internal/db"
	"eshop-fixtures/internal/migrate"
	"github.com/spf13/cobra"
)

func newMigrateCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply the embedded schema migrations to DB_DSN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			pool, err := db.Connect(ctx, a.cfg.DBConnString)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			defer pool.Close()

			if err := migrate.Apply(ctx, pool, a.log); err != nil {
				return fmt.Errorf("apply migrations: %w", err)
			}
			a.log.Info("migrations applied")
			return nil
		},
	}
}
