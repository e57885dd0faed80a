package services

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/dimitrije/genenft-api/internal/models"
	"github.com/google/uuid"
)

var (
	ErrListingNotFound = errors.New("no active listing for this nft")
	ErrNotOwner        = errors.New("wallet does not own this nft")
	ErrAlreadyListed   = errors.New("nft is already listed for sale")
	ErrInvalidPrice    = errors.New("price must be greater than zero")
	ErrNotListed       = errors.New("nft is not listed for sale")
	ErrPriceMismatch   = errors.New("price does not match the listing price")
)

// MarketplaceService runs the listing state machine:
// Unlisted -> Active -> {Sold, Cancelled}. A single mutex serializes
// every multi-step transition end to end, so the precondition checks
// and the writes across the listing table and the registry are atomic
// with respect to concurrent operations.
type MarketplaceService struct {
	mu       sync.Mutex
	registry *RegistryService
	txlog    *TransactionService
	listings map[string]*models.Listing // latest listing per nft id
}

func NewMarketplaceService(registry *RegistryService, txlog *TransactionService) *MarketplaceService {
	return &MarketplaceService{
		registry: registry,
		txlog:    txlog,
		listings: make(map[string]*models.Listing),
	}
}

// List puts an NFT up for sale. The seller must own the NFT and no
// active listing may exist for it.
func (s *MarketplaceService) List(nftID string, price float64, seller string) (*models.Listing, error) {
	if price <= 0 {
		return nil, ErrInvalidPrice
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	nft, err := s.registry.GetByID(nftID)
	if err != nil {
		return nil, err
	}
	if nft.Owner != seller {
		return nil, ErrNotOwner
	}
	if existing, ok := s.listings[nftID]; ok && existing.Status == models.ListingActive {
		return nil, ErrAlreadyListed
	}

	now := time.Now().UTC()
	listing := &models.Listing{
		NFTID:    nftID,
		Price:    price,
		Seller:   seller,
		ListedAt: now,
		Status:   models.ListingActive,
	}
	s.listings[nftID] = listing
	if err := s.registry.setListingState(nftID, &price, &now); err != nil {
		delete(s.listings, nftID)
		return nil, err
	}

	clone := *listing
	return &clone, nil
}

// Buy settles an active listing at exactly the asking price: ownership
// moves to the buyer, the listing becomes Sold, the registry listing
// fields are cleared and a transaction is appended.
//
// The price check is intentionally exact: the asking price is echoed
// to clients verbatim, so a faithful buy request round-trips the same
// float64 bit pattern.
func (s *MarketplaceService) Buy(nftID, buyer string, price float64) (*models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[nftID]
	if !ok || listing.Status != models.ListingActive {
		return nil, ErrNotListed
	}
	if price != listing.Price {
		return nil, ErrPriceMismatch
	}

	if err := s.registry.setOwner(nftID, buyer); err != nil {
		return nil, err
	}
	if err := s.registry.setListingState(nftID, nil, nil); err != nil {
		return nil, err
	}
	listing.Status = models.ListingSold

	tx := models.Transaction{
		ID:              uuid.New().String(),
		NFTID:           nftID,
		Seller:          listing.Seller,
		Buyer:           buyer,
		Price:           price,
		TransactionHash: syntheticTxHash(),
		Timestamp:       time.Now().UTC(),
	}
	s.txlog.Append(tx)
	return &tx, nil
}

// Cancel withdraws an active listing. Only the listing's seller may
// cancel it.
func (s *MarketplaceService) Cancel(nftID, requester string) (*models.Listing, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	listing, ok := s.listings[nftID]
	if !ok || listing.Status != models.ListingActive {
		return nil, ErrListingNotFound
	}
	if listing.Seller != requester {
		return nil, ErrNotOwner
	}

	if err := s.registry.setListingState(nftID, nil, nil); err != nil {
		return nil, err
	}
	listing.Status = models.ListingCancelled

	clone := *listing
	return &clone, nil
}

// ActiveListings returns a snapshot of every active listing.
func (s *MarketplaceService) ActiveListings() []models.Listing {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.Listing, 0)
	for _, l := range s.listings {
		if l.Status == models.ListingActive {
			out = append(out, *l)
		}
	}
	return out
}

// Reset drops every listing. Used by the admin reset flow.
func (s *MarketplaceService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listings = make(map[string]*models.Listing)
}

// syntheticTxHash fabricates a settlement reference in the shape of a
// chain transaction hash. No chain is involved.
func syntheticTxHash() string {
	return "0x" + strings.ReplaceAll(uuid.New().String(), "-", "")
}
