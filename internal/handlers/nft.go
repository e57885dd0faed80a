package handlers

import (
	"io"

	"github.com/dimitrije/genenft-api/internal/services"
	"github.com/dimitrije/genenft-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

// maxUploadBytes bounds the in-memory portion of multipart parsing.
const maxUploadBytes = 10 << 20

type NFTHandler struct {
	nftService NFTServiceInterface
	registry   RegistryServiceInterface
	hub        HubInterface
}

func NewNFTHandler(nftService NFTServiceInterface, registry RegistryServiceInterface, hub HubInterface) *NFTHandler {
	return &NFTHandler{
		nftService: nftService,
		registry:   registry,
		hub:        hub,
	}
}

func (h *NFTHandler) List(c *drift.Context) {
	_ = c.JSON(200, h.registry.GetAll())
}

func (h *NFTHandler) Get(c *drift.Context) {
	id := c.Param("id")
	if id == "" {
		c.BadRequest("nft id is required")
		return
	}

	nft, err := h.registry.GetByID(id)
	if err != nil {
		c.NotFound("nft not found")
		return
	}

	_ = c.JSON(200, nft)
}

func (h *NFTHandler) UploadXML(c *drift.Context) {
	if err := c.Request.ParseMultipartForm(maxUploadBytes); err != nil {
		c.BadRequest("invalid multipart form")
		return
	}

	req := dto.XMLUploadRequest{
		Name:          c.Request.FormValue("name"),
		Description:   c.Request.FormValue("description"),
		ExternalURL:   c.Request.FormValue("external_url"),
		License:       c.Request.FormValue("license"),
		WalletAddress: c.Request.FormValue("wallet_address"),
	}
	if req.Name == "" || req.Description == "" || req.ExternalURL == "" || req.License == "" || req.WalletAddress == "" {
		c.BadRequest("name, description, external_url, license and wallet_address are required")
		return
	}

	file, _, err := c.Request.FormFile("xml_file")
	if err != nil {
		c.BadRequest("xml_file is required")
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		c.BadRequest("failed to read xml_file")
		return
	}
	if len(content) == 0 {
		c.BadRequest("xml_file must not be empty")
		return
	}

	nft, err := h.nftService.Mint(services.MintParams{
		Name:          req.Name,
		Description:   req.Description,
		ExternalURL:   req.ExternalURL,
		License:       req.License,
		WalletAddress: req.WalletAddress,
		XMLContent:    content,
	})
	if err != nil {
		c.InternalServerError("failed to mint nft")
		return
	}

	h.hub.BroadcastMinted(nft.ID, nft.Owner, nft.Rarity)

	_ = c.JSON(201, dto.XMLUploadResponse{
		Message: "NFT minted successfully",
		NFT:     *nft,
	})
}
