package catalog

import (
	"context"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/repository/memstore"
)

type memoryRepo struct {
	brands *memstore.Store[*domain.CatalogBrand]
	types  *memstore.Store[*domain.CatalogType]
	items  *memstore.Store[*domain.CatalogItem]
}

// NewMemory serves the catalog from the given slices.
func NewMemory(brands []*domain.CatalogBrand, types []*domain.CatalogType, items []*domain.CatalogItem) Repository {
	return &memoryRepo{
		brands: memstore.New((*domain.CatalogBrand).ID, brands),
		types:  memstore.New((*domain.CatalogType).ID, types),
		items:  memstore.New((*domain.CatalogItem).ID, items),
	}
}

func (r *memoryRepo) SaveBrand(_ context.Context, b *domain.CatalogBrand) error {
	r.brands.Put(b)
	return nil
}

func (r *memoryRepo) SaveType(_ context.Context, t *domain.CatalogType) error {
	r.types.Put(t)
	return nil
}

func (r *memoryRepo) SaveItem(_ context.Context, item *domain.CatalogItem) error {
	r.items.Put(item)
	return nil
}

func (r *memoryRepo) ListBrands(_ context.Context) ([]*domain.CatalogBrand, error) {
	return r.brands.List(), nil
}

func (r *memoryRepo) ListTypes(_ context.Context) ([]*domain.CatalogType, error) {
	return r.types.List(), nil
}

func (r *memoryRepo) ListItems(_ context.Context) ([]*domain.CatalogItem, error) {
	return r.items.List(), nil
}

func (r *memoryRepo) GetItemByID(_ context.Context, id int) (*domain.CatalogItem, error) {
	item, ok := r.items.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return item, nil
}
