package buyer

import (
	"context"

	"eshop-fixtures/internal/domain"
)

type Repository interface {
	Save(ctx context.Context, b *domain.Buyer) error
	List(ctx context.Context) ([]*domain.Buyer, error)
}
