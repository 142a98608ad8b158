package domain

import (
	"encoding/json"
	"slices"

	"github.com/shopspring/decimal"
)

type BasketItem struct {
	id            int
	unitPrice     decimal.Decimal
	quantity      int
	catalogItemID int
	basketID      int
}

func NewBasketItem(id, catalogItemID, quantity int, unitPrice decimal.Decimal) BasketItem {
	item := BasketItem{id: id, catalogItemID: catalogItemID, unitPrice: unitPrice}
	item.SetQuantity(quantity)
	return item
}

func (i BasketItem) ID() int { return i.id }
func (i BasketItem) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i BasketItem) Quantity() int { return i.quantity }
func (i BasketItem) CatalogItemID() int { return i.catalogItemID }

// BasketID links the line back to its basket. Loose items carry 0.
func (i BasketItem) BasketID() int { return i.basketID }

func (i *BasketItem) AddQuantity(quantity int) {
	i.quantity += quantity
}

func (i *BasketItem) SetQuantity(quantity int) {
	i.quantity = quantity
}

func (i BasketItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID            int             `json:"id"`
		UnitPrice     decimal.Decimal `json:"unitPrice"`
		Quantity      int             `json:"quantity"`
		CatalogItemID int             `json:"catalogItemId"`
		BasketID      int             `json:"basketId"`
	}{i.id, i.unitPrice, i.quantity, i.catalogItemID, i.basketID})
}

// Basket holds at most one line per catalog item. Lines are only changed
// through the basket's own methods.
type Basket struct {
	id      int
	buyerID string
	items   []BasketItem
}

func NewBasket(id int, buyerID string) *Basket {
	return &Basket{id: id, buyerID: buyerID}
}

func (b *Basket) ID() int { return b.id }
func (b *Basket) BuyerID() string { return b.buyerID }
func (b *Basket) Items() []BasketItem { return slices.Clone(b.items) }

// AddItem appends a line for catalogItemID, or grows the existing line's
// quantity. An existing line keeps the price it was first added with.
func (b *Basket) AddItem(catalogItemID int, unitPrice decimal.Decimal, quantity int) {
	idx := slices.IndexFunc(b.items, func(i BasketItem) bool { return i.catalogItemID == catalogItemID })
	if idx < 0 {
		item := NewBasketItem(b.nextLineID(), catalogItemID, quantity, unitPrice)
		item.basketID = b.id
		b.items = append(b.items, item)
		return
	}
	b.items[idx].AddQuantity(quantity)
}

// AddOne adds a single unit of catalogItemID.
func (b *Basket) AddOne(catalogItemID int, unitPrice decimal.Decimal) {
	b.AddItem(catalogItemID, unitPrice, 1)
}

// SetQuantities overwrites quantities keyed by line id. Unknown ids are ignored.
func (b *Basket) SetQuantities(quantities map[int]int) {
	for i := range b.items {
		if q, ok := quantities[b.items[i].id]; ok {
			b.items[i].SetQuantity(q)
		}
	}
}

// RemoveEmptyItems drops every line whose quantity is exactly zero.
func (b *Basket) RemoveEmptyItems() {
	b.items = slices.DeleteFunc(b.items, func(i BasketItem) bool { return i.quantity == 0 })
}

func (b *Basket) SetNewBuyerID(buyerID string) {
	b.buyerID = buyerID
}

func (b *Basket) TotalItems() int {
	total := 0
	for _, item := range b.items {
		total += item.quantity
	}
	return total
}

func (b *Basket) nextLineID() int {
	next := 1
	for _, item := range b.items {
		if item.id >= next {
			next = item.id + 1
		}
	}
	return next
}

func (b *Basket) MarshalJSON() ([]byte, error) {
	items := b.items
	if items == nil {
		items = []BasketItem{}
	}
	return json.Marshal(struct {
		ID         int          `json:"id"`
		BuyerID    string       `json:"buyerId"`
		Items      []BasketItem `json:"items"`
		TotalItems int          `json:"totalItems"`
	}{b.id, b.buyerID, items, b.TotalItems()})
}
