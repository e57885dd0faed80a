package handlers

import (
	"github.com/dimitrije/genenft-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type MarketplaceHandler struct {
	marketplace MarketplaceServiceInterface
	stats       StatsServiceInterface
	hub         HubInterface
}

func NewMarketplaceHandler(marketplace MarketplaceServiceInterface, stats StatsServiceInterface, hub HubInterface) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplace: marketplace,
		stats:       stats,
		hub:         hub,
	}
}

func (h *MarketplaceHandler) Listings(c *drift.Context) {
	_ = c.JSON(200, h.marketplace.ActiveListings())
}

func (h *MarketplaceHandler) Stats(c *drift.Context) {
	_ = c.JSON(200, h.stats.Snapshot())
}

func (h *MarketplaceHandler) List(c *drift.Context) {
	var req dto.ListNFTRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.NFTID == "" || req.SellerAddress == "" {
		c.BadRequest("nft_id and seller_address are required")
		return
	}

	listing, err := h.marketplace.List(req.NFTID, req.Price, req.SellerAddress)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.hub.BroadcastListed(listing.NFTID, listing.Price, listing.Seller)

	_ = c.JSON(200, dto.ListNFTResponse{
		Message: "NFT listed for sale",
		Listing: *listing,
	})
}

func (h *MarketplaceHandler) Buy(c *drift.Context) {
	var req dto.BuyNFTRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.NFTID == "" || req.BuyerAddress == "" {
		c.BadRequest("nft_id and buyer_address are required")
		return
	}

	tx, err := h.marketplace.Buy(req.NFTID, req.BuyerAddress, req.Price)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.hub.BroadcastSold(tx.NFTID, tx.Price, tx.Seller, tx.Buyer)

	_ = c.JSON(200, dto.BuyNFTResponse{
		Message:     "NFT purchased successfully",
		Transaction: *tx,
	})
}

func (h *MarketplaceHandler) Cancel(c *drift.Context) {
	var req dto.CancelListingRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}
	if req.NFTID == "" || req.SellerAddress == "" {
		c.BadRequest("nft_id and seller_address are required")
		return
	}

	listing, err := h.marketplace.Cancel(req.NFTID, req.SellerAddress)
	if err != nil {
		c.BadRequest(err.Error())
		return
	}

	h.hub.BroadcastCancelled(listing.NFTID, listing.Seller)

	_ = c.JSON(200, dto.CancelListingResponse{
		Message: "Listing cancelled",
		Listing: *listing,
	})
}
