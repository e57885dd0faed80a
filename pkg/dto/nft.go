package dto

import "github.com/dimitrije/genenft-api/internal/models"

// XMLUploadRequest mirrors the multipart form fields of the upload
// endpoint. The XML payload itself arrives as the xml_file part.
type XMLUploadRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	ExternalURL   string `json:"external_url"`
	License       string `json:"license"`
	WalletAddress string `json:"wallet_address"`
}

type XMLUploadResponse struct {
	Message string     `json:"message"`
	NFT     models.NFT `json:"nft"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
