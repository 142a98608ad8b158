package basket

import (
	"context"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/repository/memstore"
)

type memoryRepo struct {
	baskets *memstore.Store[*domain.Basket]
}

func NewMemory(baskets []*domain.Basket) Repository {
	return &memoryRepo{baskets: memstore.New((*domain.Basket).ID, baskets)}
}

func (r *memoryRepo) Save(_ context.Context, b *domain.Basket) error {
	r.baskets.Put(b)
	return nil
}

func (r *memoryRepo) List(_ context.Context) ([]*domain.Basket, error) {
	return r.baskets.List(), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Basket, error) {
	b, ok := r.baskets.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return b, nil
}
