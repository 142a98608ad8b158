package catalog

import (
	"context"
	"testing"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/fixture"
	"eshop-fixtures/internal/repository/pgtest"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemory_ListAndGet(t *testing.T) {
	ctx := context.Background()
	b := fixture.Build()
	repo := NewMemory(b.CatalogBrands, b.CatalogTypes, b.CatalogItems)

	brands, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	assert.Len(t, brands, 5)

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 20)
	assert.Equal(t, 1, items[0].ID())

	item, err := repo.GetItemByID(ctx, 7)
	require.NoError(t, err)
	assert.Equal(t, "Product 7", item.Name())

	_, err = repo.GetItemByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemory_SaveItemUpserts(t *testing.T) {
	ctx := context.Background()
	repo := NewMemory(nil, nil, nil)

	require.NoError(t, repo.SaveItem(ctx, domain.NewCatalogItem(1, 1, 1, "d", "first", decimal.NewFromInt(1), "")))
	require.NoError(t, repo.SaveItem(ctx, domain.NewCatalogItem(1, 1, 1, "d", "second", decimal.NewFromInt(2), "")))

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "second", items[0].Name())
}

func TestPostgres_SaveAndList(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	require.NoError(t, repo.SaveBrand(ctx, domain.NewCatalogBrand(1, "Nike")))
	require.NoError(t, repo.SaveType(ctx, domain.NewCatalogType(1, "Boots")))
	require.NoError(t, repo.SaveItem(ctx, domain.NewCatalogItem(1, 1, 1, "desc", "Product 1", decimal.RequireFromString("20.99"), "product_1.jpg")))

	brands, err := repo.ListBrands(ctx)
	require.NoError(t, err)
	require.Len(t, brands, 1)
	assert.Equal(t, "Nike", brands[0].Brand())

	types, err := repo.ListTypes(ctx)
	require.NoError(t, err)
	require.Len(t, types, 1)

	got, err := repo.GetItemByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Product 1", got.Name())
	assert.True(t, got.Price().Equal(decimal.RequireFromString("20.99")))
	assert.Equal(t, "product_1.jpg", got.PictureURI())

	_, err = repo.GetItemByID(ctx, 2)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPostgres_SaveItemUpdatesExisting(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	require.NoError(t, repo.SaveBrand(ctx, domain.NewCatalogBrand(1, "Nike")))
	require.NoError(t, repo.SaveType(ctx, domain.NewCatalogType(1, "Boots")))

	item := domain.NewCatalogItem(1, 1, 1, "desc", "Product 1", decimal.RequireFromString("20.99"), "")
	require.NoError(t, repo.SaveItem(ctx, item))

	item.UpdateDetails(domain.CatalogItemDetails{Name: "Renamed", Description: "new", Price: decimal.RequireFromString("30.50")})
	require.NoError(t, repo.SaveItem(ctx, item))

	items, err := repo.ListItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Renamed", items[0].Name())
	assert.Equal(t, "30.50", items[0].Price().StringFixed(2))
}

func TestPostgres_PriceKeepsEveryDecimal(t *testing.T) {
	ctx := context.Background()
	pool := pgtest.Pool(t)
	repo := NewPostgres(pool, nil)

	require.NoError(t, repo.SaveBrand(ctx, domain.NewCatalogBrand(1, "Nike")))
	require.NoError(t, repo.SaveType(ctx, domain.NewCatalogType(1, "Boots")))
	require.NoError(t, repo.SaveItem(ctx, domain.NewCatalogItem(1, 1, 1, "", "Lace", decimal.RequireFromString("1.005"), "")))

	got, err := repo.GetItemByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "1.005", got.Price().String())
}
