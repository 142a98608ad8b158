package basket

import (
	"context"
	"errors"
	"fmt"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *logger.Logger
}

func NewPostgres(pool *pgxpool.Pool, log *logger.Logger) Repository {
	if log == nil {
		log = logger.Nop()
	}
	return &postgresRepo{pool: pool, logger: log}
}

// Save upserts the basket and replaces its lines in one transaction.
func (r *postgresRepo) Save(ctx context.Context, b *domain.Basket) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO baskets (id, buyer_id)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET buyer_id = EXCLUDED.buyer_id
`, b.ID(), b.BuyerID()); err != nil {
		r.logger.Error("basket repo: upsert basket", "id", b.ID(), "error", err)
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM basket_items WHERE basket_id = $1`, b.ID()); err != nil {
		return err
	}

	for _, item := range b.Items() {
		if _, err := tx.Exec(ctx, `
INSERT INTO basket_items (basket_id, id, catalog_item_id, unit_price, quantity)
VALUES ($1, $2, $3, $4::numeric, $5)
`, b.ID(), item.ID(), item.CatalogItemID(), item.UnitPrice().String(), item.Quantity()); err != nil {
			r.logger.Error("basket repo: insert line", "basket_id", b.ID(), "line_id", item.ID(), "error", err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) List(ctx context.Context) ([]*domain.Basket, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, buyer_id FROM baskets ORDER BY id`)
	if err != nil {
		r.logger.Error("basket repo: list", "error", err)
		return nil, err
	}
	baskets, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Basket, error) {
		var (
			id      int
			buyerID string
		)
		if err := row.Scan(&id, &buyerID); err != nil {
			return nil, err
		}
		return domain.NewBasket(id, buyerID), nil
	})
	if err != nil {
		return nil, err
	}

	for _, b := range baskets {
		if err := r.loadLines(ctx, b); err != nil {
			return nil, err
		}
	}
	return baskets, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Basket, error) {
	var buyerID string
	err := r.pool.QueryRow(ctx, `SELECT buyer_id FROM baskets WHERE id = $1`, id).Scan(&buyerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("basket repo: get", "id", id, "error", err)
		return nil, err
	}
	b := domain.NewBasket(id, buyerID)
	if err := r.loadLines(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

// loadLines replays stored lines through AddItem in line order, so the
// basket's own rules rebuild it.
func (r *postgresRepo) loadLines(ctx context.Context, b *domain.Basket) error {
	rows, err := r.pool.Query(ctx, `
SELECT catalog_item_id, unit_price::text, quantity
FROM basket_items
WHERE basket_id = $1
ORDER BY id
`, b.ID())
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			catalogItemID, quantity int
			price                   string
		)
		if err := rows.Scan(&catalogItemID, &price, &quantity); err != nil {
			return err
		}
		unitPrice, err := decimal.NewFromString(price)
		if err != nil {
			return fmt.Errorf("parse unit price in basket %d: %w", b.ID(), err)
		}
		b.AddItem(catalogItemID, unitPrice, quantity)
	}
	return rows.Err()
}
