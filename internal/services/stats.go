package services

import "github.com/dimitrije/genenft-api/internal/models"

const recentTransactionCount = 10

// StatsService projects marketplace read-side views. Nothing is
// cached; every snapshot is recomputed from the ledger so it is always
// consistent with the state at call time.
type StatsService struct {
	marketplace *MarketplaceService
	txlog       *TransactionService
}

func NewStatsService(marketplace *MarketplaceService, txlog *TransactionService) *StatsService {
	return &StatsService{marketplace: marketplace, txlog: txlog}
}

func (s *StatsService) Snapshot() models.MarketplaceStats {
	active := s.marketplace.ActiveListings()

	stats := models.MarketplaceStats{
		TotalListings:      len(active),
		TotalVolume:        s.txlog.TotalVolume(),
		RecentTransactions: s.txlog.Recent(recentTransactionCount),
	}
	for _, l := range active {
		if stats.FloorPrice == nil || l.Price < *stats.FloorPrice {
			p := l.Price
			stats.FloorPrice = &p
		}
	}
	return stats
}
