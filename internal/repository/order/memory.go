package order

import (
	"context"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/repository/memstore"
)

type memoryRepo struct {
	orders *memstore.Store[*domain.Order]
}

func NewMemory(orders []*domain.Order) Repository {
	return &memoryRepo{orders: memstore.New((*domain.Order).ID, orders)}
}

func (r *memoryRepo) Save(_ context.Context, o *domain.Order) error {
	r.orders.Put(o)
	return nil
}

func (r *memoryRepo) List(_ context.Context) ([]*domain.Order, error) {
	return r.orders.List(), nil
}

func (r *memoryRepo) GetByID(_ context.Context, id int) (*domain.Order, error) {
	o, ok := r.orders.Get(id)
	if !ok {
		return nil, domain.ErrNotFound
	}
	return o, nil
}
