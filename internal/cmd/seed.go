package cmd

import (
	"fmt"
	"time"

	"eshop-fixtures/internal/db"
	"eshop-fixtures/internal/migrate"
	basketrepo "eshop-fixtures/internal/repository/basket"
	buyerrepo "eshop-fixtures/internal/repository/buyer"
	catalogrepo "eshop-fixtures/internal/repository/catalog"
	orderrepo "eshop-fixtures/internal/repository/order"
	"eshop-fixtures/internal/seed"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"
)

func newSeedCommand(a *app) *cobra.Command {
	var withMigrate bool
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Build the fixture bundle and persist it to DB_DSN",
		Long: `Persist every collection of the fixture bundle. Writes are upserts by id,
so seeding twice leaves the same rows behind.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			b, err := a.bundle()
			if err != nil {
				return err
			}

			pool, err := db.Connect(ctx, a.cfg.DBConnString)
			if err != nil {
				return fmt.Errorf("connect db: %w", err)
			}
			defer pool.Close()

			if withMigrate {
				if err := migrate.Apply(ctx, pool, a.log); err != nil {
					return fmt.Errorf("apply migrations: %w", err)
				}
			}

			start := time.Now()
			if err := seed.Apply(ctx, postgresStores(pool, a), b, a.log); err != nil {
				return fmt.Errorf("seed apply: %w", err)
			}
			a.log.Info("seed applied", append(b.Summary().KeysAndValues(), "took", time.Since(start).Truncate(time.Millisecond))...)
			return nil
		},
	}
	cmd.Flags().BoolVar(&withMigrate, "migrate", false, "apply migrations before seeding")
	return cmd
}

func postgresStores(pool *pgxpool.Pool, a *app) seed.Stores {
	return seed.Stores{
		Catalog: catalogrepo.NewPostgres(pool, a.log.Named("catalog")),
		Orders:  orderrepo.NewPostgres(pool, a.log.Named("orders")),
		Baskets: basketrepo.NewPostgres(pool, a.log.Named("baskets")),
		Buyers:  buyerrepo.NewPostgres(pool, a.log.Named("buyers")),
	}
}
