package models

import "time"

type ListingStatus string

const (
	ListingActive    ListingStatus = "Active"
	ListingSold      ListingStatus = "Sold"
	ListingCancelled ListingStatus = "Cancelled"
)

// Listing is a sale offer for one NFT. Sold and Cancelled are terminal;
// a re-listed NFT gets a fresh Listing record.
type Listing struct {
	NFTID    string        `json:"nft_id"`
	Price    float64       `json:"price"`
	Seller   string        `json:"seller"`
	ListedAt time.Time     `json:"listed_at"`
	Status   ListingStatus `json:"status"`
}

// Transaction records a completed sale. Immutable once appended.
// TransactionHash is a synthetic settlement reference, not a real
// chain transaction.
type Transaction struct {
	ID              string    `json:"id"`
	NFTID           string    `json:"nft_id"`
	Seller          string    `json:"seller"`
	Buyer           string    `json:"buyer"`
	Price           float64   `json:"price"`
	TransactionHash string    `json:"transaction_hash"`
	Timestamp       time.Time `json:"timestamp"`
}

type MarketplaceStats struct {
	TotalListings      int           `json:"total_listings"`
	TotalVolume        float64       `json:"total_volume"`
	RecentTransactions []Transaction `json:"recent_transactions"`
	FloorPrice         *float64      `json:"floor_price,omitempty"`
}

type UserCollection struct {
	WalletAddress      string        `json:"wallet_address"`
	OwnedNFTs          []NFT         `json:"owned_nfts"`
	ListedNFTs         []NFT         `json:"listed_nfts"`
	TransactionHistory []Transaction `json:"transaction_history"`
}
