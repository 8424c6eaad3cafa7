package store

import (
	"context"
	"sync"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// MemoryStore is a non-durable store for tests and local development
type MemoryStore struct {
	mu       sync.RWMutex
	snapshot *models.Snapshot
	bets     []models.Bet
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// StoreSnapshot replaces the stored snapshot
func (s *MemoryStore) StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = snapshot
	return nil
}

// LoadSnapshot retrieves the stored snapshot, or nil if none exists yet
func (s *MemoryStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot, nil
}

// SaveBets replaces the stored bet sequence
func (s *MemoryStore) SaveBets(ctx context.Context, bets []models.Bet) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bets = make([]models.Bet, len(bets))
	copy(s.bets, bets)
	return nil
}

// LoadBets retrieves the stored bet sequence, empty if none exists yet
func (s *MemoryStore) LoadBets(ctx context.Context) ([]models.Bet, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bets := make([]models.Bet, len(s.bets))
	copy(bets, s.bets)
	return bets, nil
}
