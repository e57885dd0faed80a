package handlers

import (
	"github.com/dimitrije/genenft-api/internal/models"
	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/dimitrije/genenft-api/internal/sse"
)

// NFTServiceInterface defines the methods used by handlers from NFTService
type NFTServiceInterface interface {
	Mint(p services.MintParams) (*models.NFT, error)
	Seed() error
	Collection(wallet string) models.UserCollection
}

// RegistryServiceInterface defines the methods used by handlers from RegistryService
type RegistryServiceInterface interface {
	GetByID(id string) (*models.NFT, error)
	GetAll() []models.NFT
}

// MarketplaceServiceInterface defines the methods used by handlers from MarketplaceService
type MarketplaceServiceInterface interface {
	List(nftID string, price float64, seller string) (*models.Listing, error)
	Buy(nftID, buyer string, price float64) (*models.Transaction, error)
	Cancel(nftID, requester string) (*models.Listing, error)
	ActiveListings() []models.Listing
}

// StatsServiceInterface defines the methods used by handlers from StatsService
type StatsServiceInterface interface {
	Snapshot() models.MarketplaceStats
}

// HubInterface defines the methods used by handlers from the SSE Hub
type HubInterface interface {
	Register(client *sse.Client)
	Unregister(client *sse.Client)
	BroadcastMinted(nftID, owner, rarity string)
	BroadcastListed(nftID string, price float64, seller string)
	BroadcastSold(nftID string, price float64, seller, buyer string)
	BroadcastCancelled(nftID, seller string)
}
