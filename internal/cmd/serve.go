package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"eshop-fixtures/internal/db"
	"eshop-fixtures/internal/fixture"
	"eshop-fixtures/internal/httpserver"
	basketrepo "eshop-fixtures/internal/repository/basket"
	buyerrepo "eshop-fixtures/internal/repository/buyer"
	catalogrepo "eshop-fixtures/internal/repository/catalog"
	orderrepo "eshop-fixtures/internal/repository/order"
	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

const (
	storeMemory   = "memory"
	storePostgres = "postgres"
)

func newServeCommand(a *app) *cobra.Command {
	var store string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the data set over a read-only HTTP API",
		Long: `Serve catalog, orders, baskets and buyers on HTTP_ADDR.

With --store memory (the default) the API reads a freshly built fixture
bundle. With --store postgres it reads whatever DB_DSN holds; run
"eshop seed --migrate" first.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opts := httpserver.Options{
				Addr:        a.cfg.HTTPAddr,
				Logger:      a.log,
				CORSOrigins: a.cfg.CORSOrigins,
			}

			var deps httpserver.Deps
			switch store {
			case storeMemory:
				b, err := a.bundle()
				if err != nil {
					return err
				}
				deps = memoryDeps(b)
			case storePostgres:
				pool, err := db.Connect(ctx, a.cfg.DBConnString)
				if err != nil {
					return fmt.Errorf("connect db: %w", err)
				}
				defer pool.Close()
				stores := postgresStores(pool, a)
				deps = httpserver.Deps{
					Catalog: stores.Catalog,
					Orders:  stores.Orders,
					Baskets: stores.Baskets,
					Buyers:  stores.Buyers,
				}
				opts.DB = pool
			default:
				return fmt.Errorf("unknown store %q (want %s or %s)", store, storeMemory, storePostgres)
			}

			gin.SetMode(gin.ReleaseMode)
			srv, err := httpserver.New(opts, deps)
			if err != nil {
				return fmt.Errorf("init server: %w", err)
			}
			return run(srv, a)
		},
	}
	cmd.Flags().StringVar(&store, "store", storeMemory, "where the API reads from: memory or postgres")
	return cmd
}

func memoryDeps(b fixture.Bundle) httpserver.Deps {
	return httpserver.Deps{
		Catalog: catalogrepo.NewMemory(b.CatalogBrands, b.CatalogTypes, b.CatalogItems),
		Orders:  orderrepo.NewMemory(b.Orders),
		Baskets: basketrepo.NewMemory(b.Baskets),
		Buyers:  buyerrepo.NewMemory(b.Buyers),
	}
}

func run(srv *httpserver.Server, a *app) error {
	serverErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(stopCh)

	var runErr error
	select {
	case sig := <-stopCh:
		a.log.Info("shutting down", "signal", sig.String())
	case err := <-serverErr:
		runErr = fmt.Errorf("server error: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		a.log.Error("graceful shutdown failed", "error", err)
		if runErr == nil {
			runErr = err
		}
	} else {
		a.log.Info("server stopped")
	}
	return runErr
}
