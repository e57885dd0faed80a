package dto

import "github.com/dimitrije/genenft-api/internal/models"

type ListNFTRequest struct {
	NFTID         string  `json:"nft_id"`
	Price         float64 `json:"price"`
	SellerAddress string  `json:"seller_address"`
}

type ListNFTResponse struct {
	Message string         `json:"message"`
	Listing models.Listing `json:"listing"`
}

type BuyNFTRequest struct {
	NFTID        string  `json:"nft_id"`
	BuyerAddress string  `json:"buyer_address"`
	Price        float64 `json:"price"`
}

type BuyNFTResponse struct {
	Message     string             `json:"message"`
	Transaction models.Transaction `json:"transaction"`
}

type CancelListingRequest struct {
	NFTID         string `json:"nft_id"`
	SellerAddress string `json:"seller_address"`
}

type CancelListingResponse struct {
	Message string         `json:"message"`
	Listing models.Listing `json:"listing"`
}
