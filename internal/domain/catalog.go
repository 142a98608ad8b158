package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// pictureBasePath prefixes every picture URI set through UpdatePictureURI.
const pictureBasePath = "images/products/"

// unixToTicks is the number of seconds between 0001-01-01 and the Unix epoch.
const unixToTicks = 62135596800

type CatalogBrand struct {
	id    int
	brand string
}

func NewCatalogBrand(id int, brand string) *CatalogBrand {
	return &CatalogBrand{id: id, brand: brand}
}

func (b *CatalogBrand) ID() int { return b.id }
func (b *CatalogBrand) Brand() string { return b.brand }

func (b *CatalogBrand) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID    int    `json:"id"`
		Brand string `json:"brand"`
	}{b.id, b.brand})
}

type CatalogType struct {
	id       int
	typeName string
}

func NewCatalogType(id int, typeName string) *CatalogType {
	return &CatalogType{id: id, typeName: typeName}
}

func (t *CatalogType) ID() int { return t.id }
func (t *CatalogType) Type() string { return t.typeName }

func (t *CatalogType) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID   int    `json:"id"`
		Type string `json:"type"`
	}{t.id, t.typeName})
}

// CatalogItemDetails groups the fields UpdateDetails replaces together.
type CatalogItemDetails struct {
	Name        string
	Description string
	Price       decimal.Decimal
}

// CatalogItem is a sellable product. Brand and type are referenced by id only;
// nothing here checks that those ids exist.
type CatalogItem struct {
	id          int
	name        string
	description string
	price       decimal.Decimal
	pictureURI  string
	typeID      int
	brandID     int
}

func NewCatalogItem(id, typeID, brandID int, description, name string, price decimal.Decimal, pictureURI string) *CatalogItem {
	return &CatalogItem{
		id:          id,
		name:        name,
		description: description,
		price:       price,
		pictureURI:  pictureURI,
		typeID:      typeID,
		brandID:     brandID,
	}
}

func (c *CatalogItem) ID() int { return c.id }
func (c *CatalogItem) Name() string { return c.name }
func (c *CatalogItem) Description() string { return c.description }
func (c *CatalogItem) Price() decimal.Decimal { return c.price }
func (c *CatalogItem) PictureURI() string { return c.pictureURI }
func (c *CatalogItem) TypeID() int { return c.typeID }
func (c *CatalogItem) BrandID() int { return c.brandID }

// UpdateDetails replaces name, description and price in one step.
func (c *CatalogItem) UpdateDetails(d CatalogItemDetails) {
	c.name = d.Name
	c.description = d.Description
	c.price = d.Price
}

func (c *CatalogItem) UpdateBrand(brandID int) {
	c.brandID = brandID
}

func (c *CatalogItem) UpdateType(typeID int) {
	c.typeID = typeID
}

// UpdatePictureURI points the item at images/products/<name> with a
// cache-busting token derived from at. An empty name clears the URI.
func (c *CatalogItem) UpdatePictureURI(pictureName string, at time.Time) {
	if pictureName == "" {
		c.pictureURI = ""
		return
	}
	c.pictureURI = fmt.Sprintf("%s%s?%d", pictureBasePath, pictureName, Ticks(at))
}

// Snapshot captures the fields an order line keeps about this item.
func (c *CatalogItem) Snapshot() CatalogItemOrdered {
	return NewCatalogItemOrdered(c.id, c.name, c.pictureURI)
}

func (c *CatalogItem) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		ID             int             `json:"id"`
		Name           string          `json:"name"`
		Description    string          `json:"description"`
		Price          decimal.Decimal `json:"price"`
		PictureURI     string          `json:"pictureUri"`
		CatalogTypeID  int             `json:"catalogTypeId"`
		CatalogBrandID int             `json:"catalogBrandId"`
	}{c.id, c.name, c.description, c.price, c.pictureURI, c.typeID, c.brandID})
}

// Ticks counts 100ns intervals since 0001-01-01 UTC. The zero time.Time maps to 0.
func Ticks(at time.Time) int64 {
	at = at.UTC()
	return (at.Unix()+unixToTicks)*10_000_000 + int64(at.Nanosecond()/100)
}
