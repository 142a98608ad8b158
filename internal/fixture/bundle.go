package fixture

import "eshop-fixtures/internal/domain"

// Bundle is the fabricated object graph. Field order is the order the
// collections are rendered in.
type Bundle struct {
	CatalogItems   []*domain.CatalogItem  `json:"catalogItems"`
	CatalogBrands  []*domain.CatalogBrand `json:"catalogBrands"`
	CatalogTypes   []*domain.CatalogType  `json:"catalogTypes"`
	BasketItems    []domain.BasketItem    `json:"basketItems"`
	Orders         []*domain.Order        `json:"orders"`
	Buyers         []*domain.Buyer        `json:"buyers"`
	PaymentMethods []domain.PaymentMethod `json:"paymentMethods"`
	Baskets        []*domain.Basket       `json:"baskets"`
}

// Summary counts each collection of the bundle.
type Summary struct {
	CatalogItems   int
	CatalogBrands  int
	CatalogTypes   int
	BasketItems    int
	Orders         int
	Buyers         int
	PaymentMethods int
	Baskets        int
}

func (b Bundle) Summary() Summary {
	return Summary{
		CatalogItems:   len(b.CatalogItems),
		CatalogBrands:  len(b.CatalogBrands),
		CatalogTypes:   len(b.CatalogTypes),
		BasketItems:    len(b.BasketItems),
		Orders:         len(b.Orders),
		Buyers:         len(b.Buyers),
		PaymentMethods: len(b.PaymentMethods),
		Baskets:        len(b.Baskets),
	}
}

// KeysAndValues flattens the summary for structured loggers.
func (s Summary) KeysAndValues() []interface{} {
	return []interface{}{
		"catalog_items", s.CatalogItems,
		"catalog_brands", s.CatalogBrands,
		"catalog_types", s.CatalogTypes,
		"basket_items", s.BasketItems,
		"orders", s.Orders,
		"buyers", s.Buyers,
		"payment_methods", s.PaymentMethods,
		"baskets", s.Baskets,
	}
}
