package fixture

import (
	"fmt"
	"time"

	"eshop-fixtures/internal/domain"
	"github.com/shopspring/decimal"
)

const catalogItemCount = 20

var (
	basePrice = decimal.RequireFromString("20.99")
	priceStep = decimal.NewFromInt(5)
)

type addressSeed struct {
	Street  string
	City    string
	State   string
	Country string
	Zip     string
}

type lineSeed struct {
	ItemIndex int
	Quantity  int
}

type orderSeed struct {
	BuyerID string
	ShipTo  addressSeed
	Lines   []lineSeed
}

type paymentSeed struct {
	Alias  string
	CardID string
	Last4  string
}

var (
	brandNames = []string{"Nike", "Adidas", "Puma", "Reebok", "Under Armour"}
	typeNames  = []string{"Running Shoes", "Sneakers", "Sandals", "Boots", "Flip Flops"}

	looseBasketLines = []lineSeed{
		{ItemIndex: 0, Quantity: 2},
		{ItemIndex: 1, Quantity: 1},
		{ItemIndex: 2, Quantity: 3},
	}

	orderSeeds = []orderSeed{
		{
			BuyerID: "buyer1",
			ShipTo:  addressSeed{Street: "123 Main St", City: "Anytown", State: "CA", Country: "USA", Zip: "12345"},
			Lines:   []lineSeed{{ItemIndex: 0, Quantity: 2}, {ItemIndex: 1, Quantity: 1}},
		},
		{
			BuyerID: "buyer2",
			ShipTo:  addressSeed{Street: "456 Elm St", City: "Otherville", State: "NY", Country: "USA", Zip: "67890"},
			Lines:   []lineSeed{{ItemIndex: 2, Quantity: 3}, {ItemIndex: 3, Quantity: 1}, {ItemIndex: 4, Quantity: 2}},
		},
	}

	buyerIdentities = []string{"buyer1", "buyer2"}

	paymentSeeds = []paymentSeed{
		{Alias: "Visa", CardID: "CardId1", Last4: "1234"},
		{Alias: "MasterCard", CardID: "CardId2", Last4: "5678"},
		{Alias: "American Express", CardID: "CardId3", Last4: "9012"},
	}

	// buyer index -> payment method indexes
	paymentAssignments = [][]int{{0}, {1, 2}}
)

// Option tweaks Build.
type Option func(*options)

type options struct {
	clock func() time.Time
}

// WithClock fixes the instant stamped on orders.
func WithClock(clock func() time.Time) Option {
	return func(o *options) {
		o.clock = clock
	}
}

// Build fabricates the demo catalog, orders, buyers and baskets. Ids are
// 1-based per entity kind. Apart from the order date the result never varies.
func Build(opts ...Option) Bundle {
	o := options{clock: func() time.Time { return time.Now().UTC() }}
	for _, opt := range opts {
		opt(&o)
	}

	brands := make([]*domain.CatalogBrand, 0, len(brandNames))
	for i, name := range brandNames {
		brands = append(brands, domain.NewCatalogBrand(i+1, name))
	}

	types := make([]*domain.CatalogType, 0, len(typeNames))
	for i, name := range typeNames {
		types = append(types, domain.NewCatalogType(i+1, name))
	}

	items := make([]*domain.CatalogItem, 0, catalogItemCount)
	for i := 0; i < catalogItemCount; i++ {
		items = append(items, domain.NewCatalogItem(
			i+1,
			types[i%len(types)].ID(),
			brands[i%len(brands)].ID(),
			fmt.Sprintf("Description for Product %d", i+1),
			fmt.Sprintf("Product %d", i+1),
			basePrice.Add(priceStep.Mul(decimal.NewFromInt(int64(i)))),
			fmt.Sprintf("product_%d.jpg", i+1),
		))
	}

	ordered := make([]domain.CatalogItemOrdered, 0, len(items))
	for _, item := range items {
		ordered = append(ordered, item.Snapshot())
	}

	basketItems := make([]domain.BasketItem, 0, len(looseBasketLines))
	for i, line := range looseBasketLines {
		item := items[line.ItemIndex]
		basketItems = append(basketItems, domain.NewBasketItem(i+1, item.ID(), line.Quantity, item.Price()))
	}

	orders := make([]*domain.Order, 0, len(orderSeeds))
	orderItemID := 0
	for i, seed := range orderSeeds {
		lines := make([]domain.OrderItem, 0, len(seed.Lines))
		for _, line := range seed.Lines {
			orderItemID++
			lines = append(lines, domain.NewOrderItem(orderItemID, ordered[line.ItemIndex], items[line.ItemIndex].Price(), line.Quantity))
		}
		shipTo := domain.NewAddress(seed.ShipTo.Street, seed.ShipTo.City, seed.ShipTo.State, seed.ShipTo.Country, seed.ShipTo.Zip)
		orders = append(orders, domain.NewOrder(i+1, seed.BuyerID, shipTo, lines, o.clock()))
	}

	buyers := make([]*domain.Buyer, 0, len(buyerIdentities))
	for i, identity := range buyerIdentities {
		buyers = append(buyers, domain.NewBuyer(i+1, identity))
	}

	paymentMethods := make([]domain.PaymentMethod, 0, len(paymentSeeds))
	for i, p := range paymentSeeds {
		paymentMethods = append(paymentMethods, domain.PaymentMethod{ID: i + 1, Alias: p.Alias, CardID: p.CardID, Last4: p.Last4})
	}
	for buyerIdx, pmIdxs := range paymentAssignments {
		for _, pmIdx := range pmIdxs {
			buyers[buyerIdx].AddPaymentMethod(paymentMethods[pmIdx])
		}
	}

	// Baskets mirror the orders: same buyers, same lines.
	baskets := make([]*domain.Basket, 0, len(orderSeeds))
	for i, seed := range orderSeeds {
		basket := domain.NewBasket(i+1, seed.BuyerID)
		for _, line := range seed.Lines {
			item := items[line.ItemIndex]
			basket.AddItem(item.ID(), item.Price(), line.Quantity)
		}
		baskets = append(baskets, basket)
	}

	return Bundle{
		CatalogItems:   items,
		CatalogBrands:  brands,
		CatalogTypes:   types,
		BasketItems:    basketItems,
		Orders:         orders,
		Buyers:         buyers,
		PaymentMethods: paymentMethods,
		Baskets:        baskets,
	}
}
