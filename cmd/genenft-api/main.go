package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dimitrije/genenft-api/internal/config"
	"github.com/dimitrije/genenft-api/internal/handlers"
	adminmw "github.com/dimitrije/genenft-api/internal/middleware"
	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/dimitrije/genenft-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	registry := services.NewRegistryService()
	txlog := services.NewTransactionService()
	marketplace := services.NewMarketplaceService(registry, txlog)
	stats := services.NewStatsService(marketplace, txlog)
	nftService := services.NewNFTService(registry, txlog)

	if cfg.SeedOnStart {
		if err := nftService.Seed(); err != nil {
			log.Fatalf("Failed to seed sample nfts: %v", err)
		}
		log.Printf("Seeded %d sample nfts", registry.Count())
	}

	hub := sse.NewHub()
	go hub.Run()

	nftHandler := handlers.NewNFTHandler(nftService, registry, hub)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplace, stats, hub)
	collectionHandler := handlers.NewCollectionHandler(nftService)
	eventsHandler := handlers.NewEventsHandler(hub)
	adminHandler := handlers.NewAdminHandler(registry, marketplace, txlog, nftService)

	app := drift.New()

	if cfg.IsProduction() {
		app.SetMode(drift.ReleaseMode)
	} else {
		app.SetMode(drift.DebugMode)
	}

	app.Use(middleware.Recovery())
	app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.CORSAllowOrigins,
		AllowMethods: []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       86400,
	}))
	app.Use(middleware.BodyParser())

	api := app.Group("/api")

	api.Get("/nfts", nftHandler.List)
	api.Get("/nft/:id", nftHandler.Get)
	api.Post("/nft/upload-xml", nftHandler.UploadXML)

	api.Get("/marketplace/listings", marketplaceHandler.Listings)
	api.Get("/marketplace/stats", marketplaceHandler.Stats)
	api.Post("/marketplace/list", marketplaceHandler.List)
	api.Post("/marketplace/buy", marketplaceHandler.Buy)
	api.Delete("/marketplace/cancel", marketplaceHandler.Cancel)
	api.Get("/marketplace/events", eventsHandler.Connect)

	api.Get("/collection/:wallet", collectionHandler.Get)

	admin := api.Group("/admin")
	admin.Use(adminmw.AdminKey(cfg.AdminAPIKey))
	admin.Post("/reset", adminHandler.Reset)

	api.Get("/health", func(c *drift.Context) {
		_ = c.JSON(200, map[string]string{"status": "ok"})
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Printf("Server starting on %s", addr)
		if err := app.Run(addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
}
