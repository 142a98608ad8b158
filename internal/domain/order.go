package domain

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// Address is a ship-to value object.
type Address struct {
	street  string
	city    string
	state   string
	country string
	zipCode string
}

func NewAddress(street, city, state, country, zipCode string) Address {
	return Address{street: street, city: city, state: state, country: country, zipCode: zipCode}
}

func (a Address) Street() string { return a.street }
func (a Address) City() string { return a.city }
func (a Address) State() string { return a.state }
func (a Address) Country() string { return a.country }
func (a Address) ZipCode() string { return a.zipCode }

func (a Address) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Street  string `json:"street"`
		City    string `json:"city"`
		State   string `json:"state"`
		Country string `json:"country"`
		ZipCode string `json:"zipCode"`
	}{a.street, a.city, a.state, a.country, a.zipCode})
}

// CatalogItemOrdered is a snapshot of the catalog item taken when the order
// line was created. Later changes to the catalog item do not reach it.
type CatalogItemOrdered struct {
	catalogItemID int
	productName   string
	pictureURI    string
}

func NewCatalogItemOrdered(catalogItemID int, productName, pictureURI string) CatalogItemOrdered {
	return CatalogItemOrdered{catalogItemID: catalogItemID, productName: productName, pictureURI: pictureURI}
}

func (o CatalogItemOrdered) CatalogItemID() int { return o.catalogItemID }
func (o CatalogItemOrdered) ProductName() string { return o.productName }
func (o CatalogItemOrdered) PictureURI() string { return o.pictureURI }

func (o CatalogItemOrdered) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		CatalogItemID int    `json:"catalogItemId"`
		ProductName   string `json:"productName"`
		PictureURI    string `json:"pictureUri"`
	}{o.catalogItemID, o.productName, o.pictureURI})
}

type OrderItem struct {
	id          int
	itemOrdered CatalogItemOrdered
	unitPrice   decimal.Decimal
	units       int
}

func NewOrderItem(id int, itemOrdered CatalogItemOrdered, unitPrice decimal.Decimal, units int) OrderItem {
	return OrderItem{id: id, itemOrdered: itemOrdered, unitPrice: unitPrice, units: units}
}

func (i OrderItem) ID() int { return i.id }
func (i OrderItem) ItemOrdered() CatalogItemOrdered { return i.itemOrdered }
func (i OrderItem) UnitPrice() decimal.Decimal { return i.unitPrice }
func (i OrderItem) Units() int { return i.units }

func (i OrderItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID          int                `json:"id"`
		ItemOrdered CatalogItemOrdered `json:"itemOrdered"`
		UnitPrice   decimal.Decimal    `json:"unitPrice"`
		Units       int                `json:"units"`
	}{i.id, i.itemOrdered, i.unitPrice, i.units})
}

// Order owns its line items. The lines are fixed at construction and only
// readable afterwards.
type Order struct {
	id         int
	buyerID    string
	orderDate  time.Time
	shipTo     Address
	orderItems []OrderItem
}

func NewOrder(id int, buyerID string, shipTo Address, items []OrderItem, orderDate time.Time) *Order {
	return &Order{
		id:         id,
		buyerID:    buyerID,
		orderDate:  orderDate,
		shipTo:     shipTo,
		orderItems: slices.Clone(items),
	}
}

func (o *Order) ID() int { return o.id }
func (o *Order) BuyerID() string { return o.buyerID }
func (o *Order) OrderDate() time.Time { return o.orderDate }
func (o *Order) ShipToAddress() Address { return o.shipTo }
func (o *Order) Items() []OrderItem { return slices.Clone(o.orderItems) }

// Total sums unit price times units over every line.
func (o *Order) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range o.orderItems {
		total = total.Add(item.unitPrice.Mul(decimal.NewFromInt(int64(item.units))))
	}
	return total
}

func (o *Order) MarshalJSON() ([]byte, error) {
	items := o.orderItems
	if items == nil {
		items = []OrderItem{}
	}
	return json.Marshal(struct {
		ID            int         `json:"id"`
		BuyerID       string      `json:"buyerId"`
		OrderDate     time.Time   `json:"orderDate"`
		ShipToAddress Address     `json:"shipToAddress"`
		OrderItems    []OrderItem `json:"orderItems"`
	}{o.id, o.buyerID, o.orderDate, o.shipTo, items})
}
