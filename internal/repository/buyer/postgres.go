package buyer

import (
	"context"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/logger"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
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

// Save upserts the buyer and replaces its payment methods in one transaction.
// Payment methods are stored in list order, duplicates included.
func (r *postgresRepo) Save(ctx context.Context, b *domain.Buyer) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err := tx.Exec(ctx, `
INSERT INTO buyers (id, identity_guid)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET identity_guid = EXCLUDED.identity_guid
`, b.ID(), b.IdentityGUID()); err != nil {
		r.logger.Error("buyer repo: upsert buyer", "id", b.ID(), "error", err)
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM payment_methods WHERE buyer_id = $1`, b.ID()); err != nil {
		return err
	}

	for pos, pm := range b.PaymentMethods() {
		if _, err := tx.Exec(ctx, `
INSERT INTO payment_methods (buyer_id, position, id, alias, card_id, last4)
VALUES ($1, $2, $3, $4, $5, $6)
`, b.ID(), pos, pm.ID, pm.Alias, pm.CardID, pm.Last4); err != nil {
			r.logger.Error("buyer repo: insert payment method", "buyer_id", b.ID(), "payment_method_id", pm.ID, "error", err)
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *postgresRepo) List(ctx context.Context) ([]*domain.Buyer, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, identity_guid FROM buyers ORDER BY id`)
	if err != nil {
		r.logger.Error("buyer repo: list", "error", err)
		return nil, err
	}
	buyers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Buyer, error) {
		var (
			id       int
			identity string
		)
		if err := row.Scan(&id, &identity); err != nil {
			return nil, err
		}
		return domain.NewBuyer(id, identity), nil
	})
	if err != nil {
		return nil, err
	}

	byID := make(map[int]*domain.Buyer, len(buyers))
	for _, b := range buyers {
		byID[b.ID()] = b
	}

	pmRows, err := r.pool.Query(ctx, `SELECT id, buyer_id, alias, card_id, last4 FROM payment_methods ORDER BY buyer_id, position`)
	if err != nil {
		return nil, err
	}
	defer pmRows.Close()

	for pmRows.Next() {
		var (
			pm      domain.PaymentMethod
			buyerID int
		)
		if err := pmRows.Scan(&pm.ID, &buyerID, &pm.Alias, &pm.CardID, &pm.Last4); err != nil {
			return nil, err
		}
		if b, ok := byID[buyerID]; ok {
			b.AddPaymentMethod(pm)
		}
	}
	if err := pmRows.Err(); err != nil {
		return nil, err
	}
	return buyers, nil
}
