package services

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"github.com/dimitrije/genenft-api/internal/artgen"
	"github.com/dimitrije/genenft-api/internal/models"
	"github.com/google/uuid"
)

// seedOwner holds every sample NFT installed at startup.
const seedOwner = "0x1234567890abcdef1234567890abcdef12345678"

// NFTService runs the mint pipeline: fingerprint the uploaded XML,
// derive rarity and art from the fingerprint, then register the
// resulting NFT.
type NFTService struct {
	registry *RegistryService
	txlog    *TransactionService
}

func NewNFTService(registry *RegistryService, txlog *TransactionService) *NFTService {
	return &NFTService{registry: registry, txlog: txlog}
}

// MintParams carries the validated upload fields. Validation (empty
// checks) happens at the handler before any state is touched.
type MintParams struct {
	Name          string
	Description   string
	ExternalURL   string
	License       string
	WalletAddress string
	XMLContent    []byte
}

func (s *NFTService) Mint(p MintParams) (*models.NFT, error) {
	fingerprint := artgen.Fingerprint(p.XMLContent)
	seed, err := hex.DecodeString(fingerprint)
	if err != nil {
		return nil, fmt.Errorf("decode fingerprint: %w", err)
	}
	rarity := artgen.Classify(fingerprint)
	now := time.Now().UTC()

	nft := &models.NFT{
		ID:       uuid.New().String(),
		TokenID:  fingerprint[:16],
		TokenURI: artgen.TokenURI(p.XMLContent),
		Metadata: models.NFTMetadata{
			Name:        p.Name,
			Description: p.Description,
			Image:       artgen.Synthesize(seed),
			ExternalURL: p.ExternalURL,
			License:     p.License,
			Provenance:  fmt.Sprintf("Minted from XML content with fingerprint %s at %s", fingerprint, now.Format(time.RFC3339)),
			Attributes: []models.Attribute{
				{TraitType: "XML Hash", Value: fingerprint},
				{TraitType: "Rarity", Value: rarity},
				{TraitType: "Content Size", Value: strconv.Itoa(len(p.XMLContent))},
			},
		},
		XMLContent: string(p.XMLContent),
		XMLHash:    fingerprint,
		Owner:      p.WalletAddress,
		Rarity:     rarity,
		CreatedAt:  now,
	}

	if err := s.registry.Create(nft); err != nil {
		return nil, err
	}
	return nft, nil
}

// Seed installs the sample collectibles by running real uploads
// through the mint pipeline, so seeded NFTs honor the same
// fingerprint/rarity/art invariants as user uploads.
func (s *NFTService) Seed() error {
	samples := []struct {
		name        string
		description string
		xml         string
	}{
		{"Golden Eagle", "Aquila chrysaetos genome sequence", `<genome species="Aquila chrysaetos"><chromosomes>66</chromosomes><sequence>ATGCGTACGTTAGC</sequence></genome>`},
		{"Blue Whale", "Balaenoptera musculus genome sequence", `<genome species="Balaenoptera musculus"><chromosomes>44</chromosomes><sequence>GGCATTACGATCGA</sequence></genome>`},
		{"Red Panda", "Ailurus fulgens genome sequence", `<genome species="Ailurus fulgens"><chromosomes>36</chromosomes><sequence>TTAGGCATCGTAGC</sequence></genome>`},
		{"Snow Leopard", "Panthera uncia genome sequence", `<genome species="Panthera uncia"><chromosomes>38</chromosomes><sequence>CATGGTACGATTGC</sequence></genome>`},
		{"Monarch Butterfly", "Danaus plexippus genome sequence", `<genome species="Danaus plexippus"><chromosomes>60</chromosomes><sequence>ACGTTAGCCATGGA</sequence></genome>`},
	}

	for _, sample := range samples {
		_, err := s.Mint(MintParams{
			Name:          sample.name,
			Description:   sample.description,
			ExternalURL:   "https://genenft.example/species",
			License:       "CC-BY-4.0",
			WalletAddress: seedOwner,
			XMLContent:    []byte(sample.xml),
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", sample.name, err)
		}
	}
	return nil
}

// Collection assembles one wallet's view: NFTs it owns, the subset it
// currently has listed, and its full trade history.
func (s *NFTService) Collection(wallet string) models.UserCollection {
	owned := make([]models.NFT, 0)
	listed := make([]models.NFT, 0)
	for _, nft := range s.registry.GetAll() {
		if nft.Owner != wallet {
			continue
		}
		owned = append(owned, nft)
		if nft.IsListed {
			listed = append(listed, nft)
		}
	}
	return models.UserCollection{
		WalletAddress:      wallet,
		OwnedNFTs:          owned,
		ListedNFTs:         listed,
		TransactionHistory: s.txlog.HistoryFor(wallet),
	}
}
