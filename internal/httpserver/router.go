package httpserver

import (
	"errors"
	"time"

	"eshop-fixtures/internal/logger"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// buildRouter wires routes for the API.
func buildRouter(opts Options, deps Deps) (*gin.Engine, error) {
	if deps.Catalog == nil || deps.Orders == nil || deps.Baskets == nil || deps.Buyers == nil {
		return nil, errors.New("httpserver: all read stores are required")
	}
	if opts.Logger == nil {
		opts.Logger = logger.Nop()
	}

	router := gin.New()

	metrics := newRequestMetrics()
	router.Use(gin.LoggerWithWriter(opts.Logger.Writer()), gin.Recovery(), metrics.middleware())
	if len(opts.CORSOrigins) > 0 {
		router.Use(cors.New(cors.Config{
			AllowOrigins: opts.CORSOrigins,
			AllowMethods: []string{"GET", "OPTIONS"},
			AllowHeaders: []string{"Origin", "Accept", "Content-Type"},
			MaxAge:       12 * time.Hour,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(opts.DB))
	router.GET("/metrics", gin.WrapH(metrics.handler()))

	h := &handlers{deps: deps, logger: opts.Logger}
	api := router.Group("/api")
	api.GET("/catalog/items", h.listCatalogItems)
	api.GET("/catalog/items/:id", h.getCatalogItem)
	api.GET("/catalog/brands", h.listCatalogBrands)
	api.GET("/catalog/types", h.listCatalogTypes)
	api.GET("/orders", h.listOrders)
	api.GET("/orders/:id", h.getOrder)
	api.GET("/baskets", h.listBaskets)
	api.GET("/baskets/:id", h.getBasket)
	api.GET("/buyers", h.listBuyers)

	return router, nil
}
