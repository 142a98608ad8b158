package catalog

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

func (r *postgresRepo) SaveBrand(ctx context.Context, b *domain.CatalogBrand) error {
	const q = `
INSERT INTO catalog_brands (id, brand)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET brand = EXCLUDED.brand
`
	if _, err := r.pool.Exec(ctx, q, b.ID(), b.Brand()); err != nil {
		r.logger.Error("catalog repo: save brand", "id", b.ID(), "error", err)
		return err
	}
	return nil
}

func (r *postgresRepo) SaveType(ctx context.Context, t *domain.CatalogType) error {
	const q = `
INSERT INTO catalog_types (id, type)
VALUES ($1, $2)
ON CONFLICT (id) DO UPDATE SET type = EXCLUDED.type
`
	if _, err := r.pool.Exec(ctx, q, t.ID(), t.Type()); err != nil {
		r.logger.Error("catalog repo: save type", "id", t.ID(), "error", err)
		return err
	}
	return nil
}

func (r *postgresRepo) SaveItem(ctx context.Context, item *domain.CatalogItem) error {
	const q = `
INSERT INTO catalog_items (id, name, description, price, picture_uri, catalog_type_id, catalog_brand_id)
VALUES ($1, $2, $3, $4::numeric, $5, $6, $7)
ON CONFLICT (id) DO UPDATE
SET name = EXCLUDED.name,
    description = EXCLUDED.description,
    price = EXCLUDED.price,
    picture_uri = EXCLUDED.picture_uri,
    catalog_type_id = EXCLUDED.catalog_type_id,
    catalog_brand_id = EXCLUDED.catalog_brand_id
`
	_, err := r.pool.Exec(ctx, q,
		item.ID(),
		item.Name(),
		item.Description(),
		item.Price().String(),
		item.PictureURI(),
		item.TypeID(),
		item.BrandID(),
	)
	if err != nil {
		r.logger.Error("catalog repo: save item", "id", item.ID(), "error", err)
		return err
	}
	return nil
}

func (r *postgresRepo) ListBrands(ctx context.Context) ([]*domain.CatalogBrand, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, brand FROM catalog_brands ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.CatalogBrand
	for rows.Next() {
		var (
			id    int
			brand string
		)
		if err := rows.Scan(&id, &brand); err != nil {
			return nil, err
		}
		result = append(result, domain.NewCatalogBrand(id, brand))
	}
	return result, rows.Err()
}

func (r *postgresRepo) ListTypes(ctx context.Context) ([]*domain.CatalogType, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, type FROM catalog_types ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*domain.CatalogType
	for rows.Next() {
		var (
			id       int
			typeName string
		)
		if err := rows.Scan(&id, &typeName); err != nil {
			return nil, err
		}
		result = append(result, domain.NewCatalogType(id, typeName))
	}
	return result, rows.Err()
}

const itemColumns = `id, name, description, price::text, picture_uri, catalog_type_id, catalog_brand_id`

func (r *postgresRepo) ListItems(ctx context.Context) ([]*domain.CatalogItem, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+itemColumns+` FROM catalog_items ORDER BY id`)
	if err != nil {
		r.logger.Error("catalog repo: list items", "error", err)
		return nil, err
	}
	defer rows.Close()

	var result []*domain.CatalogItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	r.logger.Debug("catalog repo: list items", "count", len(result))
	return result, nil
}

func (r *postgresRepo) GetItemByID(ctx context.Context, id int) (*domain.CatalogItem, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+itemColumns+` FROM catalog_items WHERE id = $1`, id)
	item, err := scanItem(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		r.logger.Error("catalog repo: get item", "id", id, "error", err)
		return nil, err
	}
	return item, nil
}

func scanItem(row pgx.Row) (*domain.CatalogItem, error) {
	var (
		id, typeID, brandID           int
		name, description, pictureURI string
		price                         string
	)
	if err := row.Scan(&id, &name, &description, &price, &pictureURI, &typeID, &brandID); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, fmt.Errorf("parse price of item %d: %w", id, err)
	}
	return domain.NewCatalogItem(id, typeID, brandID, description, name, p, pictureURI), nil
}
