package order

import (
	"context"
	"errors"
	"fmt"
	"time"

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

// Save upserts the order header and replaces its lines in one transaction.
func (r *postgresRepo) Save(ctx context.Context, o *domain.Order) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	shipTo := o.ShipToAddress()
	if _, err := tx.Exec(ctx, `
INSERT INTO orders (id, buyer_id, order_date, ship_street, ship_city, ship_state, ship_country, ship_zip)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO UPDATE
SET buyer_id = EXCLUDED.buyer_id,
    order_date = EXCLUDED.order_date,
    ship_street = EXCLUDED.ship_street,
    ship_city = EXCLUDED.ship_city,
    ship_state = EXCLUDED.ship_state,
    ship_country = EXCLUDED.ship_country,
    ship_zip = EXCLUDED.ship_zip
`, o.ID(), o.BuyerID(), o.OrderDate(), shipTo.Street(), shipTo.City(), shipTo.State(), shipTo.Country(), shipTo.ZipCode()); err != nil {
		r.logger.Error("order repo: upsert order", "id", o.ID(), "error", err)
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, o.ID()); err != nil {
		return err
	}

	for _, item := range o.Items() {
		snap := item.ItemOrdered()
		if _, err := tx.Exec(ctx, `
INSERT INTO order_items (id, order_id, ordered_catalog_item_id, ordered_product_name, ordered_picture_uri, unit_price, units)
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)
`, item.ID(), o.ID(), snap.CatalogItemID(), snap.ProductName(), snap.PictureURI(), item.UnitPrice().String(), item.Units()); err != nil {
			r.logger.Error("order repo: insert line", "order_id", o.ID(), "line_id", item.ID(), "error", err)
			return err
		}
	}

	return tx.Commit(ctx)
}

const orderColumns = `id, buyer_id, order_date, ship_street, ship_city, ship_state, ship_country, ship_zip`

func (r *postgresRepo) List(ctx context.Context) ([]*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+orderColumns+` FROM orders ORDER BY id`)
	if err != nil {
		r.logger.Error("order repo: list", "error", err)
		return nil, err
	}
	headers, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (header, error) {
		return scanHeader(row)
	})
	if err != nil {
		return nil, err
	}

	result := make([]*domain.Order, 0, len(headers))
	for _, h := range headers {
		o, err := r.assemble(ctx, h)
		if err != nil {
			return nil, err
		}
		result = append(result, o)
	}
	return result, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id int) (*domain.Order, error) {
	h, err := scanHeader(r.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("order repo: get", "id", id, "error", err)
		return nil, err
	}
	return r.assemble(ctx, h)
}

type header struct {
	id        int
	buyerID   string
	orderDate time.Time
	shipTo    domain.Address
}

func scanHeader(row pgx.Row) (header, error) {
	var h header
	var street, city, state, country, zip string
	if err := row.Scan(&h.id, &h.buyerID, &h.orderDate, &street, &city, &state, &country, &zip); err != nil {
		return header{}, err
	}
	h.shipTo = domain.NewAddress(street, city, state, country, zip)
	return h, nil
}

func (r *postgresRepo) assemble(ctx context.Context, h header) (*domain.Order, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, ordered_catalog_item_id, ordered_product_name, ordered_picture_uri, unit_price::text, units
FROM order_items
WHERE order_id = $1
ORDER BY id
`, h.id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []domain.OrderItem
	for rows.Next() {
		var (
			id, catalogItemID, units int
			name, pictureURI, price  string
		)
		if err := rows.Scan(&id, &catalogItemID, &name, &pictureURI, &price, &units); err != nil {
			return nil, err
		}
		unitPrice, err := decimal.NewFromString(price)
		if err != nil {
			return nil, fmt.Errorf("parse unit price of order line %d: %w", id, err)
		}
		items = append(items, domain.NewOrderItem(id, domain.NewCatalogItemOrdered(catalogItemID, name, pictureURI), unitPrice, units))
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return domain.NewOrder(h.id, h.buyerID, h.shipTo, items, h.orderDate.UTC()), nil
}
