package main

import (
	"context"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/BruksfildServices01/autoshop-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/autoshop-scheduler/internal/db"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/infra/cache"
	infraRepo "github.com/BruksfildServices01/autoshop-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/logger"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/models"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/routes"
	"github.com/BruksfildServices01/autoshop-scheduler/internal/timezone"
)

func main() {

	cfg := config.Load()
	logger.Initialize(cfg.LogLevel, cfg.LogFormat)

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	timezone.SetShop(cfg.Timezone)

	stores, err := buildStores(cfg)
	if err != nil {
		logger.Error("failed to open store", "driver", cfg.StoreDriver, "error", err)
		os.Exit(1)
	}

	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, stores, cfg)

	logger.Info("server running",
		"addr", cfg.Addr(),
		"store", cfg.StoreDriver,
		"timezone", cfg.Timezone,
	)
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func buildStores(cfg *config.Config) (routes.Stores, error) {
	operator := models.Customer{
		FullName: cfg.OperatorName,
		Phone:    cfg.OperatorPhone,
	}
	if cfg.OperatorID != "" {
		operator.ID = uuid.MustParse(cfg.OperatorID)
	}

	db, err := dbpkg.NewDB(cfg)
	if err != nil {
		return routes.Stores{}, err
	}

	store := infraRepo.NewStore(db)
	if err := store.Seed(operator, catalog.DefaultOffers()); err != nil {
		return routes.Stores{}, err
	}

	stores := routes.Stores{
		Appointments: store.Appointments(),
		Catalog:      store.Catalog(),
		Vehicles:     store.Vehicles(),
		Customers:    store.Customers(),
		Reports:      store.Reports(),
		History:      store.History(),
	}

	stores.CatalogCache = catalog.NopCache{}
	if cfg.RedisURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		client, err := cache.Dial(ctx, cfg.RedisURL)
		if err != nil {
			logger.Warn("redis unavailable, catalog cache disabled", "error", err)
		} else {
			stores.CatalogCache = cache.NewCatalogRedisCache(client, cfg.CatalogCacheTTL)
		}
	}

	return stores, nil
}
