package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"

	"github.com/redis/go-redis/v9"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// RedisStore keeps both blobs in Redis with no TTL: the snapshot lives until
// the next cycle replaces it, and bets live until the user deletes them.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore creates a Redis-backed store
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
	}
}

// StoreSnapshot replaces the stored snapshot and announces it on the
// publication channel. Publication is best-effort: the snapshot is durable
// once Set succeeds, and subscribers catch up on their next read.
func (s *RedisStore) StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	if err := s.client.Set(ctx, SnapshotKey, data, 0).Err(); err != nil {
		return err
	}

	if err := s.client.Publish(ctx, SnapshotChannel, data).Err(); err != nil {
		log.Printf("snapshot publish failed: %v", err)
	}
	return nil
}

// LoadSnapshot retrieves the stored snapshot, or nil if none exists yet
func (s *RedisStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	data, err := s.client.Get(ctx, SnapshotKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading snapshot: %w", err)
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal([]byte(data), &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}

	return &snapshot, nil
}

// SaveBets replaces the stored bet sequence
func (s *RedisStore) SaveBets(ctx context.Context, bets []models.Bet) error {
	data, err := json.Marshal(bets)
	if err != nil {
		return fmt.Errorf("marshaling bets: %w", err)
	}

	return s.client.Set(ctx, BetsKey, data, 0).Err()
}

// LoadBets retrieves the stored bet sequence, empty if none exists yet
func (s *RedisStore) LoadBets(ctx context.Context) ([]models.Bet, error) {
	data, err := s.client.Get(ctx, BetsKey).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading bets: %w", err)
	}

	var bets []models.Bet
	if err := json.Unmarshal([]byte(data), &bets); err != nil {
		return nil, fmt.Errorf("unmarshaling bets: %w", err)
	}

	return bets, nil
}
