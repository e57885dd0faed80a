package testutil

import (
	"net/http"
	"testing"

	"github.com/dimitrije/genenft-api/internal/handlers"
	adminmw "github.com/dimitrije/genenft-api/internal/middleware"
	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/dimitrije/genenft-api/internal/sse"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/m1z23r/drift/pkg/middleware"
)

// TestAdminKey guards the admin routes in tests.
const TestAdminKey = "test-admin-key"

// AppServices exposes the wired services so tests can assert on state
// behind the HTTP surface.
type AppServices struct {
	Registry     *services.RegistryService
	Marketplace  *services.MarketplaceService
	Transactions *services.TransactionService
	NFTs         *services.NFTService
}

// BuildTestApp wires the full application the way cmd/genenft-api does
// and returns it with its backing services. No seeding is performed;
// tests that want the sample set call Seed themselves.
func BuildTestApp(t *testing.T) (http.Handler, *AppServices) {
	t.Helper()

	registry := services.NewRegistryService()
	txlog := services.NewTransactionService()
	marketplace := services.NewMarketplaceService(registry, txlog)
	stats := services.NewStatsService(marketplace, txlog)
	nftService := services.NewNFTService(registry, txlog)

	hub := sse.NewHub()
	go hub.Run()

	nftHandler := handlers.NewNFTHandler(nftService, registry, hub)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplace, stats, hub)
	collectionHandler := handlers.NewCollectionHandler(nftService)
	adminHandler := handlers.NewAdminHandler(registry, marketplace, txlog, nftService)

	app := drift.New()
	app.Use(middleware.Recovery())
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
	api.Get("/collection/:wallet", collectionHandler.Get)

	admin := api.Group("/admin")
	admin.Use(adminmw.AdminKey(TestAdminKey))
	admin.Post("/reset", adminHandler.Reset)

	return app, &AppServices{
		Registry:     registry,
		Marketplace:  marketplace,
		Transactions: txlog,
		NFTs:         nftService,
	}
}
