package handlers

import (
	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/m1z23r/drift/pkg/drift"
)

type AdminHandler struct {
	registry    *services.RegistryService
	marketplace *services.MarketplaceService
	txlog       *services.TransactionService
	nftService  *services.NFTService
}

func NewAdminHandler(
	registry *services.RegistryService,
	marketplace *services.MarketplaceService,
	txlog *services.TransactionService,
	nftService *services.NFTService,
) *AdminHandler {
	return &AdminHandler{
		registry:    registry,
		marketplace: marketplace,
		txlog:       txlog,
		nftService:  nftService,
	}
}

// Reset drops all marketplace state and reinstalls the sample
// collectibles, the same state a fresh process boots with.
func (h *AdminHandler) Reset(c *drift.Context) {
	h.marketplace.Reset()
	h.txlog.Reset()
	h.registry.Reset()

	if err := h.nftService.Seed(); err != nil {
		c.InternalServerError("failed to reseed sample nfts")
		return
	}

	_ = c.JSON(200, map[string]string{"message": "marketplace reset to seed state"})
}
