package basket

import (
	"context"

	"eshop-fixtures/internal/domain"
)

type Repository interface {
	Save(ctx context.Context, b *domain.Basket) error
	List(ctx context.Context) ([]*domain.Basket, error)
	GetByID(ctx context.Context, id int) (*domain.Basket, error)
}
