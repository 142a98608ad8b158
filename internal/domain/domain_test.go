package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestBasketAddItemMergesSameCatalogItem(t *testing.T) {
	b := NewBasket(7, "buyer1")
	b.AddItem(3, price("10.00"), 2)
	b.AddItem(3, price("99.00"), 5)
	b.AddOne(3, price("1.00"))

	items := b.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].CatalogItemID())
	assert.Equal(t, 8, items[0].Quantity())
	assert.True(t, items[0].UnitPrice().Equal(price("10.00")), "first price wins")
	assert.Equal(t, 7, items[0].BasketID())
	assert.Equal(t, 1, items[0].ID())
}

func TestBasketAddItemDistinctLines(t *testing.T) {
	b := NewBasket(1, "buyer1")
	b.AddItem(1, price("20.99"), 2)
	b.AddItem(2, price("25.99"), 1)

	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].ID())
	assert.Equal(t, 2, items[1].ID())
	assert.Equal(t, 3, b.TotalItems())
}

func TestBasketItemsIsACopy(t *testing.T) {
	b := NewBasket(1, "buyer1")
	b.AddItem(1, price("1"), 2)

	items := b.Items()
	items[0].SetQuantity(0)

	assert.Equal(t, 2, b.Items()[0].Quantity())
}

func TestBasketRemoveEmptyItems(t *testing.T) {
	b := NewBasket(1, "buyer1")
	b.AddItem(1, price("1"), 2)
	b.AddItem(2, price("2"), 1)
	b.AddItem(3, price("3"), 4)

	b.SetQuantities(map[int]int{2: 0, 99: 5})
	b.RemoveEmptyItems()

	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, 1, items[0].CatalogItemID())
	assert.Equal(t, 2, items[0].Quantity())
	assert.Equal(t, 3, items[1].CatalogItemID())
	assert.Equal(t, 4, items[1].Quantity())
	assert.Equal(t, 6, b.TotalItems())
}

func TestBasketLineIDsStayUniqueAfterRemoval(t *testing.T) {
	b := NewBasket(1, "buyer1")
	b.AddItem(1, price("1"), 1)
	b.AddItem(2, price("1"), 0)
	b.RemoveEmptyItems()
	b.AddItem(3, price("1"), 1)
	b.AddItem(4, price("1"), 1)

	ids := []int{}
	for _, item := range b.Items() {
		ids = append(ids, item.ID())
	}
	assert.Equal(t, []int{1, 2, 3}, ids)
}

func TestBasketSetNewBuyerID(t *testing.T) {
	b := NewBasket(1, "anonymous")
	b.SetNewBuyerID("buyer2")
	assert.Equal(t, "buyer2", b.BuyerID())
}

func TestOrderTotal(t *testing.T) {
	o := NewOrder(1, "buyer1", NewAddress("1 St", "Town", "CA", "USA", "00000"), []OrderItem{
		NewOrderItem(1, NewCatalogItemOrdered(1, "A", "a.jpg"), price("20.99"), 2),
		NewOrderItem(2, NewCatalogItemOrdered(2, "B", "b.jpg"), price("25.99"), 1),
	}, time.Time{})

	assert.Equal(t, "67.97", o.Total().StringFixed(2))
}

func TestOrderTotalEmpty(t *testing.T) {
	o := NewOrder(1, "buyer1", Address{}, nil, time.Time{})
	assert.True(t, o.Total().IsZero())
}

func TestOrderItemsDetachedFromCaller(t *testing.T) {
	lines := []OrderItem{NewOrderItem(1, NewCatalogItemOrdered(1, "A", ""), price("1"), 1)}
	o := NewOrder(1, "buyer1", Address{}, lines, time.Time{})

	lines[0] = NewOrderItem(9, NewCatalogItemOrdered(9, "Z", ""), price("100"), 100)

	assert.Equal(t, 1, o.Items()[0].ID())
	assert.Equal(t, "1", o.Total().String())
}

func TestSnapshotSurvivesCatalogChange(t *testing.T) {
	item := NewCatalogItem(1, 1, 1, "desc", "Product 1", price("20.99"), "product_1.jpg")
	o := NewOrder(1, "buyer1", Address{}, []OrderItem{
		NewOrderItem(1, item.Snapshot(), item.Price(), 1),
	}, time.Time{})

	item.UpdateDetails(CatalogItemDetails{Name: "Renamed", Description: "new", Price: price("99.99")})

	line := o.Items()[0]
	assert.Equal(t, "Product 1", line.ItemOrdered().ProductName())
	assert.True(t, line.UnitPrice().Equal(price("20.99")))
	assert.Equal(t, "Renamed", item.Name())
	assert.Equal(t, "new", item.Description())
}

func TestCatalogItemUpdateBrandAndType(t *testing.T) {
	item := NewCatalogItem(1, 1, 1, "", "x", decimal.Zero, "")
	item.UpdateBrand(42)
	item.UpdateType(43)
	assert.Equal(t, 42, item.BrandID())
	assert.Equal(t, 43, item.TypeID())
}

func TestCatalogItemUpdatePictureURI(t *testing.T) {
	item := NewCatalogItem(1, 1, 1, "", "x", decimal.Zero, "old.jpg")

	item.UpdatePictureURI("", time.Now())
	assert.Equal(t, "", item.PictureURI())

	item.UpdatePictureURI("shoe.jpg", time.Time{})
	assert.Equal(t, "images/products/shoe.jpg?0", item.PictureURI())

	item.UpdatePictureURI("shoe.jpg", time.Unix(0, 0))
	assert.Equal(t, "images/products/shoe.jpg?621355968000000000", item.PictureURI())
}

func TestBuyerAddPaymentMethod(t *testing.T) {
	b := NewBuyer(1, "buyer1")
	pm := PaymentMethod{ID: 1, Alias: "Visa", CardID: "CardId1", Last4: "1234"}
	b.AddPaymentMethod(pm)
	b.AddPaymentMethod(pm)

	pms := b.PaymentMethods()
	require.Len(t, pms, 2)
	pms[0].Alias = "changed"
	assert.Equal(t, "Visa", b.PaymentMethods()[0].Alias)
}

func TestMarshalJSONExposesEncapsulatedState(t *testing.T) {
	b := NewBasket(2, "buyer2")
	b.AddItem(5, price("40.99"), 2)

	data, err := json.Marshal(b)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 2,
		"buyerId": "buyer2",
		"totalItems": 2,
		"items": [{"id": 1, "unitPrice": "40.99", "quantity": 2, "catalogItemId": 5, "basketId": 2}]
	}`, string(data))

	buyer := NewBuyer(1, "buyer1")
	data, err = json.Marshal(buyer)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 1, "identityGuid": "buyer1", "paymentMethods": []}`, string(data))
}

func TestMarshalJSONRendersEmptyCollections(t *testing.T) {
	data, err := json.Marshal(NewBasket(3, "buyer3"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"id": 3, "buyerId": "buyer3", "totalItems": 0, "items": []}`, string(data))

	order := NewOrder(4, "buyer3", Address{}, nil, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC))
	data, err = json.Marshal(order)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"orderItems":[]`)
}
