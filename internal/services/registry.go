package services

import (
	"errors"
	"sync"
	"time"

	"github.com/dimitrije/genenft-api/internal/models"
)

var (
	ErrNFTNotFound = errors.New("nft not found")
	ErrNFTExists   = errors.New("nft already exists")
)

// RegistryService owns the set of minted NFTs. All reads hand out
// copies so callers can never reach the internal map. Ownership and
// listing-state mutations are package-private: only the marketplace
// transitions may invoke them.
type RegistryService struct {
	mu   sync.RWMutex
	nfts map[string]*models.NFT
}

func NewRegistryService() *RegistryService {
	return &RegistryService{nfts: make(map[string]*models.NFT)}
}

func (s *RegistryService) Create(nft *models.NFT) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.nfts[nft.ID]; ok {
		return ErrNFTExists
	}
	clone := *nft
	s.nfts[nft.ID] = &clone
	return nil
}

func (s *RegistryService) GetByID(id string) (*models.NFT, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	nft, ok := s.nfts[id]
	if !ok {
		return nil, ErrNFTNotFound
	}
	clone := *nft
	return &clone, nil
}

// GetAll returns a snapshot of every NFT. Order is unspecified.
func (s *RegistryService) GetAll() []models.NFT {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.NFT, 0, len(s.nfts))
	for _, nft := range s.nfts {
		out = append(out, *nft)
	}
	return out
}

// Count reports how many NFTs are registered.
func (s *RegistryService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.nfts)
}

// Reset drops every NFT. Used by the admin reset flow before reseeding.
func (s *RegistryService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nfts = make(map[string]*models.NFT)
}

func (s *RegistryService) setOwner(id, owner string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	nft, ok := s.nfts[id]
	if !ok {
		return ErrNFTNotFound
	}
	nft.Owner = owner
	return nil
}

// setListingState sets or clears the listing fields together, so the
// price/is_listed/listing_date invariant can never be half-applied.
func (s *RegistryService) setListingState(id string, price *float64, listedAt *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	nft, ok := s.nfts[id]
	if !ok {
		return ErrNFTNotFound
	}
	if price != nil && listedAt != nil {
		p := *price
		t := *listedAt
		nft.Price = &p
		nft.ListingDate = &t
		nft.IsListed = true
	} else {
		nft.Price = nil
		nft.ListingDate = nil
		nft.IsListed = false
	}
	return nil
}
