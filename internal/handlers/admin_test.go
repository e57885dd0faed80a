package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dimitrije/genenft-api/internal/middleware"
	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminTest(t *testing.T, adminKey string) (http.Handler, *services.RegistryService, *services.MarketplaceService, *services.NFTService) {
	t.Helper()

	registry := services.NewRegistryService()
	txlog := services.NewTransactionService()
	marketplace := services.NewMarketplaceService(registry, txlog)
	nftService := services.NewNFTService(registry, txlog)

	handler := NewAdminHandler(registry, marketplace, txlog, nftService)

	app := drift.New()
	admin := app.Group("/admin")
	admin.Use(middleware.AdminKey(adminKey))
	admin.Post("/reset", handler.Reset)

	return app, registry, marketplace, nftService
}

func TestAdminHandler_Reset(t *testing.T) {
	app, registry, marketplace, nftService := setupAdminTest(t, "secret")

	require.NoError(t, nftService.Seed())
	require.Equal(t, 5, registry.Count())

	// dirty the state: an extra mint plus a sale
	nft, err := nftService.Mint(services.MintParams{
		Name: "n", Description: "d", ExternalURL: "u", License: "l",
		WalletAddress: testWallet, XMLContent: []byte("<a/>"),
	})
	require.NoError(t, err)
	_, err = marketplace.List(nft.ID, 1.0, testWallet)
	require.NoError(t, err)
	_, err = marketplace.Buy(nft.ID, testBuyer, 1.0)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
	req.Header.Set("X-Admin-Key", "secret")
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 5, registry.Count())
	assert.Empty(t, marketplace.ActiveListings())
}

func TestAdminHandler_Reset_RequiresKey(t *testing.T) {
	app, registry, _, nftService := setupAdminTest(t, "secret")
	require.NoError(t, nftService.Seed())

	req := httptest.NewRequest(http.MethodPost, "/admin/reset", nil)
	rec := httptest.NewRecorder()
	app.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, 5, registry.Count())
}
