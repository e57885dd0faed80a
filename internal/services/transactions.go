package services

import (
	"sort"
	"sync"

	"github.com/dimitrije/genenft-api/internal/models"
)

// TransactionService is the append-only log of completed sales.
// Entries are never mutated or removed.
type TransactionService struct {
	mu  sync.RWMutex
	txs []models.Transaction
}

func NewTransactionService() *TransactionService {
	return &TransactionService{}
}

func (s *TransactionService) Append(tx models.Transaction) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = append(s.txs, tx)
}

// HistoryFor returns every transaction where the wallet is buyer or
// seller, in insertion order.
func (s *TransactionService) HistoryFor(wallet string) []models.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Transaction, 0)
	for _, tx := range s.txs {
		if tx.Buyer == wallet || tx.Seller == wallet {
			out = append(out, tx)
		}
	}
	return out
}

// Recent returns the n most recently timestamped transactions, newest
// first. Equal timestamps keep their insertion order.
func (s *TransactionService) Recent(n int) []models.Transaction {
	s.mu.RLock()
	out := make([]models.Transaction, len(s.txs))
	copy(out, s.txs)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Timestamp.After(out[j].Timestamp)
	})
	if n < len(out) {
		out = out[:n]
	}
	return out
}

// TotalVolume sums the price of every transaction ever recorded.
func (s *TransactionService) TotalVolume() float64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	total := 0.0
	for _, tx := range s.txs {
		total += tx.Price
	}
	return total
}

// Reset drops the log. Used by the admin reset flow.
func (s *TransactionService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.txs = nil
}
