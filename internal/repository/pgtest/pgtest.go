// Package pgtest connects repository integration tests to the database named
// by TEST_DB_DSN. Tests are skipped when it is unset.
package pgtest

import (
	"context"
	"os"
	"testing"

	"eshop-fixtures/internal/db"
	"eshop-fixtures/internal/migrate"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Pool returns a migrated, emptied pool closed at test cleanup.
func Pool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DB_DSN")
	if dsn == "" {
		t.Skip("TEST_DB_DSN not set")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, dsn)
	if err != nil {
		t.Fatalf("connect db: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := migrate.Apply(ctx, pool, nil); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	if _, err := pool.Exec(ctx, `
TRUNCATE basket_items, baskets, order_items, orders, payment_methods, buyers, catalog_items, catalog_types, catalog_brands
`); err != nil {
		t.Fatalf("truncate tables: %v", err)
	}
	return pool
}
