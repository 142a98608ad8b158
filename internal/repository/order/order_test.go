package order

import (
	"context"
	"testing"
	"time"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/fixture"
	"eshop-fixtures/internal/repository/pgtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var orderDate = time.Date(2024, 5, 1, 9, 30, 0, 0, time.UTC)

func bundle() fixture.Bundle {
	return fixture.Build(fixture.WithClock(func() time.Time { return orderDate }))
}

func TestMemory_ListAndGet(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(bundle().Orders)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)

	o, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "buyer2", o.BuyerID())

	_, err = repo.GetByID(ctx, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgres_SaveAndGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	b := bundle()
	for _, o := range b.Orders {
		require.NoError(t, repo.Save(ctx, o))
	}
	// saving twice replaces lines instead of duplicating them
	require.NoError(t, repo.Save(ctx, b.Orders[1]))

	got, err := repo.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "buyer2", got.BuyerID())
	assert.Equal(t, "Otherville", got.ShipToAddress().City())
	assert.True(t, got.OrderDate().Equal(orderDate))
	require.Len(t, got.Items(), 3)
	assert.Equal(t, "Product 3", got.Items()[0].ItemOrdered().ProductName())
	assert.True(t, got.Total().Equal(b.Orders[1].Total()))

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].ID())

	_, err = repo.GetByID(ctx, 42)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgres_TotalSurvivesSubCentPrices(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	o := domain.NewOrder(1, "buyer1", domain.NewAddress("1 St", "Town", "CA", "USA", "00000"), []domain.OrderItem{
		domain.NewOrderItem(1, domain.NewCatalogItemOrdered(1, "Lace", ""), decimal.RequireFromString("1.005"), 3),
	}, orderDate)
	require.NoError(t, repo.Save(ctx, o))

	got, err := repo.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "3.015", got.Total().String())
}
