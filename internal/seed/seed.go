package seed

import (
	"context"
	"fmt"

	"eshop-fixtures/internal/fixture"
	"eshop-fixtures/internal/logger"
	basketrepo "eshop-fixtures/internal/repository/basket"
	buyerrepo "eshop-fixtures/internal/repository/buyer"
	catalogrepo "eshop-fixtures/internal/repository/catalog"
	orderrepo "eshop-fixtures/internal/repository/order"
)

// Stores are the repositories a bundle is written to.
type Stores struct {
	Catalog catalogrepo.Repository
	Orders  orderrepo.Repository
	Baskets basketrepo.Repository
	Buyers  buyerrepo.Repository
}

// Apply writes the bundle to the stores. Every write is an upsert by id, so
// applying the same bundle twice is safe. Loose basket items belong to no
// basket and are not stored; payment methods are stored with their buyer.
func Apply(ctx context.Context, s Stores, b fixture.Bundle, log *logger.Logger) error {
	if log == nil {
		log = logger.Nop()
	}

	for _, brand := range b.CatalogBrands {
		if err := s.Catalog.SaveBrand(ctx, brand); err != nil {
			return fmt.Errorf("save brand %d: %w", brand.ID(), err)
		}
	}
	for _, t := range b.CatalogTypes {
		if err := s.Catalog.SaveType(ctx, t); err != nil {
			return fmt.Errorf("save type %d: %w", t.ID(), err)
		}
	}
	for _, item := range b.CatalogItems {
		if err := s.Catalog.SaveItem(ctx, item); err != nil {
			return fmt.Errorf("save catalog item %d: %w", item.ID(), err)
		}
	}
	log.Debug("catalog seeded", "brands", len(b.CatalogBrands), "types", len(b.CatalogTypes), "items", len(b.CatalogItems))

	for _, buyer := range b.Buyers {
		if err := s.Buyers.Save(ctx, buyer); err != nil {
			return fmt.Errorf("save buyer %d: %w", buyer.ID(), err)
		}
	}
	for _, o := range b.Orders {
		if err := s.Orders.Save(ctx, o); err != nil {
			return fmt.Errorf("save order %d: %w", o.ID(), err)
		}
	}
	for _, basket := range b.Baskets {
		if err := s.Baskets.Save(ctx, basket); err != nil {
			return fmt.Errorf("save basket %d: %w", basket.ID(), err)
		}
	}

	log.Info("bundle seeded", b.Summary().KeysAndValues()...)
	return nil
}
