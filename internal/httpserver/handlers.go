package httpserver

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"eshop-fixtures/internal/domain"
	"eshop-fixtures/internal/logger"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CatalogReader interface {
	ListBrands(ctx context.Context) ([]*domain.CatalogBrand, error)
	ListTypes(ctx context.Context) ([]*domain.CatalogType, error)
	ListItems(ctx context.Context) ([]*domain.CatalogItem, error)
	GetItemByID(ctx context.Context, id int) (*domain.CatalogItem, error)
}

type OrderReader interface {
	List(ctx context.Context) ([]*domain.Order, error)
	GetByID(ctx context.Context, id int) (*domain.Order, error)
}

type BasketReader interface {
	List(ctx context.Context) ([]*domain.Basket, error)
	GetByID(ctx context.Context, id int) (*domain.Basket, error)
}

type BuyerReader interface {
	List(ctx context.Context) ([]*domain.Buyer, error)
}

// Deps are the stores the API reads from.
type Deps struct {
	Catalog CatalogReader
	Orders  OrderReader
	Baskets BasketReader
	Buyers  BuyerReader
}

type handlers struct {
	deps   Deps
	logger *logger.Logger
}

func (h *handlers) listCatalogItems(c *gin.Context) {
	items, err := h.deps.Catalog.ListItems(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	typeID, hasType, ok := queryID(c, "typeId")
	if !ok {
		return
	}
	brandID, hasBrand, ok := queryID(c, "brandId")
	if !ok {
		return
	}
	if hasType {
		items = filter(items, func(i *domain.CatalogItem) bool { return i.TypeID() == typeID })
	}
	if hasBrand {
		items = filter(items, func(i *domain.CatalogItem) bool { return i.BrandID() == brandID })
	}
	respondPage(c, items)
}

func (h *handlers) getCatalogItem(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	item, err := h.deps.Catalog.GetItemByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *handlers) listCatalogBrands(c *gin.Context) {
	brands, err := h.deps.Catalog.ListBrands(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, brands)
}

func (h *handlers) listCatalogTypes(c *gin.Context) {
	types, err := h.deps.Catalog.ListTypes(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, types)
}

// orderResponse adds the computed total to the order document.
type orderResponse struct {
	*domain.Order
	Total decimal.Decimal `json:"total"`
}

func (r orderResponse) MarshalJSON() ([]byte, error) {
	return mergeJSON(r.Order, map[string]any{"total": r.Total})
}

func toOrderResponse(o *domain.Order) orderResponse {
	return orderResponse{Order: o, Total: o.Total()}
}

func (h *handlers) listOrders(c *gin.Context) {
	orders, err := h.deps.Orders.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if buyerID := c.Query("buyerId"); buyerID != "" {
		orders = filter(orders, func(o *domain.Order) bool { return o.BuyerID() == buyerID })
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, toOrderResponse(o))
	}
	respondPage(c, out)
}

func (h *handlers) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.deps.Orders.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, toOrderResponse(o))
}

func (h *handlers) listBaskets(c *gin.Context) {
	baskets, err := h.deps.Baskets.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	if buyerID := c.Query("buyerId"); buyerID != "" {
		baskets = filter(baskets, func(b *domain.Basket) bool { return b.BuyerID() == buyerID })
	}
	respondPage(c, baskets)
}

func (h *handlers) getBasket(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	b, err := h.deps.Baskets.GetByID(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *handlers) listBuyers(c *gin.Context) {
	buyers, err := h.deps.Buyers.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	respondPage(c, buyers)
}

func (h *handlers) fail(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, errorBody(http.StatusNotFound, "ResourceNotFound", "resource not found"))
		return
	}
	h.logger.Error("request failed", "path", c.FullPath(), "error", err)
	c.JSON(http.StatusInternalServerError, errorBody(http.StatusInternalServerError, "General", "internal error"))
}

func pathID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "InvalidInput", "id must be a positive integer"))
		return 0, false
	}
	return id, true
}

// queryID reads an optional id filter. present reports whether it was given;
// ok is false when a 400 has already been written.
func queryID(c *gin.Context, key string) (id int, present, ok bool) {
	raw := c.Query(key)
	if raw == "" {
		return 0, false, true
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		c.JSON(http.StatusBadRequest, errorBody(http.StatusBadRequest, "InvalidInput", key+" must be a positive integer"))
		return 0, false, false
	}
	return v, true, true
}

func filter[T any](in []T, keep func(T) bool) []T {
	out := make([]T, 0, len(in))
	for _, v := range in {
		if keep(v) {
			out = append(out, v)
		}
	}
	return out
}
