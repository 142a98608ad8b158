package buyer

import (
	"context"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/repository/memstore"
)

type memoryRepo struct {
	buyers *memstore.Store[*domain.Buyer]
}

func NewMemory(buyers []*domain.Buyer) Repository {
	return &memoryRepo{buyers: memstore.New((*domain.Buyer).ID, buyers)}
}

func (r *memoryRepo) Save(_ context.Context, b *domain.Buyer) error {
	r.buyers.Put(b)
	return nil
}

func (r *memoryRepo) List(_ context.Context) ([]*domain.Buyer, error) {
	return r.buyers.List(), nil
}
