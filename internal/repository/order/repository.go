package order

import (
	"context"

	"eshop-fixtures/internal/domain"
)

type Repository interface {
	Save(ctx context.Context, o *domain.Order) error
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
}
