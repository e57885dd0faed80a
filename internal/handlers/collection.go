package handlers

import (
	"github.com/m1z23r/drift/pkg/drift"
)

type CollectionHandler struct {
	nftService NFTServiceInterface
}

func NewCollectionHandler(nftService NFTServiceInterface) *CollectionHandler {
	return &CollectionHandler{nftService: nftService}
}

// Get returns one wallet's collection: owned NFTs, the listed subset,
// and the wallet's transaction history. An unknown wallet is not an
// error; it simply owns nothing.
func (h *CollectionHandler) Get(c *drift.Context) {
	wallet := c.Param("wallet")
	if wallet == "" {
		c.BadRequest("wallet address is required")
		return
	}

	_ = c.JSON(200, h.nftService.Collection(wallet))
}
