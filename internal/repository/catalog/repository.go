package catalog

import (
	"context"

	"eshop-fixtures/internal/domain"
)

type Repository interface {
	SaveBrand(ctx context.Context, b *domain.CatalogBrand) error
	SaveType(ctx context.Context, t *domain.CatalogType) error
	SaveItem(ctx context.Context, item *domain.CatalogItem) error
	ListBrands(ctx context.Context) ([]*domain.CatalogBrand, error)
	ListTypes(ctx context.Context) ([]*domain.CatalogType, error)
	ListItems(ctx context.Context) ([]*domain.CatalogItem, error)
	GetItemByID(ctx context.Context, id int) (*domain.CatalogItem, error)
}
