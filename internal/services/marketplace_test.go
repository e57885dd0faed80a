package services

import (
	"strings"
	"sync"
	"testing"

	"github.com/dimitrije/genenft-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	walletSeller = "0x1111111111111111111111111111111111111111"
	walletBuyer  = "0x2222222222222222222222222222222222222222"
	walletOther  = "0x3333333333333333333333333333333333333333"
)

func setupMarketplace(t *testing.T) (*MarketplaceService, *RegistryService, *TransactionService, string) {
	t.Helper()
	registry := NewRegistryService()
	txlog := NewTransactionService()
	marketplace := NewMarketplaceService(registry, txlog)

	nft := sampleNFT(walletSeller)
	require.NoError(t, registry.Create(nft))
	return marketplace, registry, txlog, nft.ID
}

func TestMarketplaceService_List(t *testing.T) {
	marketplace, registry, _, nftID := setupMarketplace(t)

	listing, err := marketplace.List(nftID, 1.5, walletSeller)
	require.NoError(t, err)
	assert.Equal(t, models.ListingActive, listing.Status)
	assert.Equal(t, 1.5, listing.Price)
	assert.Equal(t, walletSeller, listing.Seller)

	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.True(t, nft.IsListed)
	require.NotNil(t, nft.Price)
	assert.Equal(t, 1.5, *nft.Price)
	require.NotNil(t, nft.ListingDate)
}

func TestMarketplaceService_List_InvalidPrice(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 0, walletSeller)
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = marketplace.List(nftID, -1, walletSeller)
	assert.ErrorIs(t, err, ErrInvalidPrice)
}

func TestMarketplaceService_List_NotOwner(t *testing.T) {
	marketplace, registry, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletOther)
	assert.ErrorIs(t, err, ErrNotOwner)

	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.False(t, nft.IsListed)
}

func TestMarketplaceService_List_UnknownNFT(t *testing.T) {
	marketplace, _, _, _ := setupMarketplace(t)

	_, err := marketplace.List("missing", 1.0, walletSeller)
	assert.ErrorIs(t, err, ErrNFTNotFound)
}

func TestMarketplaceService_List_AlreadyListed(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.5, walletSeller)
	require.NoError(t, err)

	_, err = marketplace.List(nftID, 2.0, walletSeller)
	assert.ErrorIs(t, err, ErrAlreadyListed)

	active := marketplace.ActiveListings()
	require.Len(t, active, 1)
	assert.Equal(t, 1.5, active[0].Price)
}

func TestMarketplaceService_Buy(t *testing.T) {
	marketplace, registry, txlog, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)

	tx, err := marketplace.Buy(nftID, walletBuyer, 1.0)
	require.NoError(t, err)
	assert.Equal(t, walletSeller, tx.Seller)
	assert.Equal(t, walletBuyer, tx.Buyer)
	assert.Equal(t, 1.0, tx.Price)
	assert.True(t, strings.HasPrefix(tx.TransactionHash, "0x"))
	assert.Len(t, tx.TransactionHash, 34)

	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.Equal(t, walletBuyer, nft.Owner)
	assert.False(t, nft.IsListed)
	assert.Nil(t, nft.Price)
	assert.Nil(t, nft.ListingDate)

	assert.Empty(t, marketplace.ActiveListings())
	assert.Equal(t, 1.0, txlog.TotalVolume())
}

func TestMarketplaceService_Buy_NotListed(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.Buy(nftID, walletBuyer, 1.0)
	assert.ErrorIs(t, err, ErrNotListed)
}

func TestMarketplaceService_Buy_PriceMismatch(t *testing.T) {
	marketplace, registry, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)

	_, err = marketplace.Buy(nftID, walletBuyer, 1.0000001)
	assert.ErrorIs(t, err, ErrPriceMismatch)

	// the failed buy must leave everything untouched
	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.Equal(t, walletSeller, nft.Owner)
	assert.True(t, nft.IsListed)
	require.Len(t, marketplace.ActiveListings(), 1)
}

func TestMarketplaceService_Buy_Twice(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)
	_, err = marketplace.Buy(nftID, walletBuyer, 1.0)
	require.NoError(t, err)

	_, err = marketplace.Buy(nftID, walletOther, 1.0)
	assert.ErrorIs(t, err, ErrNotListed)
}

func TestMarketplaceService_Cancel(t *testing.T) {
	marketplace, registry, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)

	listing, err := marketplace.Cancel(nftID, walletSeller)
	require.NoError(t, err)
	assert.Equal(t, models.ListingCancelled, listing.Status)

	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.False(t, nft.IsListed)
	assert.Equal(t, walletSeller, nft.Owner)
	assert.Empty(t, marketplace.ActiveListings())
}

func TestMarketplaceService_Cancel_NotOwner(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)

	_, err = marketplace.Cancel(nftID, walletBuyer)
	assert.ErrorIs(t, err, ErrNotOwner)

	// listing stays active
	require.Len(t, marketplace.ActiveListings(), 1)
}

func TestMarketplaceService_Cancel_NoListing(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.Cancel(nftID, walletSeller)
	assert.ErrorIs(t, err, ErrListingNotFound)
}

func TestMarketplaceService_RelistAfterSale(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)
	_, err = marketplace.Buy(nftID, walletBuyer, 1.0)
	require.NoError(t, err)

	// the new owner opens a fresh listing
	listing, err := marketplace.List(nftID, 2.5, walletBuyer)
	require.NoError(t, err)
	assert.Equal(t, models.ListingActive, listing.Status)
	assert.Equal(t, walletBuyer, listing.Seller)
}

func TestMarketplaceService_ConcurrentList_SingleWinner(t *testing.T) {
	marketplace, _, _, nftID := setupMarketplace(t)

	const attempts = 16
	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = marketplace.List(nftID, float64(i+1), walletSeller)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		} else {
			assert.ErrorIs(t, err, ErrAlreadyListed)
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Len(t, marketplace.ActiveListings(), 1)
}

func TestMarketplaceService_ConcurrentBuy_SingleWinner(t *testing.T) {
	marketplace, registry, txlog, nftID := setupMarketplace(t)

	_, err := marketplace.List(nftID, 1.0, walletSeller)
	require.NoError(t, err)

	buyers := []string{walletBuyer, walletOther}
	var wg sync.WaitGroup
	errs := make([]error, len(buyers))
	for i, buyer := range buyers {
		wg.Add(1)
		go func(i int, buyer string) {
			defer wg.Done()
			_, errs[i] = marketplace.Buy(nftID, buyer, 1.0)
		}(i, buyer)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, 1.0, txlog.TotalVolume())

	nft, err := registry.GetByID(nftID)
	require.NoError(t, err)
	assert.Contains(t, buyers, nft.Owner)
}
