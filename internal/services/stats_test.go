package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStats(t *testing.T) (*StatsService, *MarketplaceService, *RegistryService) {
	t.Helper()
	registry := NewRegistryService()
	txlog := NewTransactionService()
	marketplace := NewMarketplaceService(registry, txlog)
	return NewStatsService(marketplace, txlog), marketplace, registry
}

func TestStatsService_Empty(t *testing.T) {
	stats, _, _ := setupStats(t)

	snap := stats.Snapshot()
	assert.Equal(t, 0, snap.TotalListings)
	assert.Equal(t, 0.0, snap.TotalVolume)
	assert.Nil(t, snap.FloorPrice)
	assert.Empty(t, snap.RecentTransactions)
}

func TestStatsService_FloorPrice(t *testing.T) {
	stats, marketplace, registry := setupStats(t)

	for _, price := range []float64{3.0, 1.25, 2.5} {
		nft := sampleNFT(walletSeller)
		require.NoError(t, registry.Create(nft))
		_, err := marketplace.List(nft.ID, price, walletSeller)
		require.NoError(t, err)
	}

	snap := stats.Snapshot()
	assert.Equal(t, 3, snap.TotalListings)
	require.NotNil(t, snap.FloorPrice)
	assert.Equal(t, 1.25, *snap.FloorPrice)
}

func TestStatsService_VolumeTracksSales(t *testing.T) {
	stats, marketplace, registry := setupStats(t)

	nft := sampleNFT(walletSeller)
	require.NoError(t, registry.Create(nft))
	_, err := marketplace.List(nft.ID, 1.0, walletSeller)
	require.NoError(t, err)

	before := stats.Snapshot().TotalVolume

	_, err = marketplace.Buy(nft.ID, walletBuyer, 1.0)
	require.NoError(t, err)

	snap := stats.Snapshot()
	assert.Equal(t, before+1.0, snap.TotalVolume)
	assert.Equal(t, 0, snap.TotalListings)
	assert.Nil(t, snap.FloorPrice)
	require.Len(t, snap.RecentTransactions, 1)
	assert.Equal(t, walletBuyer, snap.RecentTransactions[0].Buyer)
}

func TestStatsService_RecentCappedAtTen(t *testing.T) {
	stats, marketplace, registry := setupStats(t)

	for i := 0; i < 12; i++ {
		nft := sampleNFT(walletSeller)
		require.NoError(t, registry.Create(nft))
		_, err := marketplace.List(nft.ID, 1.0, walletSeller)
		require.NoError(t, err)
		_, err = marketplace.Buy(nft.ID, walletBuyer, 1.0)
		require.NoError(t, err)
	}

	snap := stats.Snapshot()
	assert.Len(t, snap.RecentTransactions, 10)
	assert.Equal(t, 12.0, snap.TotalVolume)
}
