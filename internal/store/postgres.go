package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// PostgresStore keeps each blob in a single row of a key-value table, upserted
// whole on every write. Same contract as Redis, different durability story.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore opens a Postgres-backed store and verifies connectivity
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// Init creates the backing table if it does not exist
func (s *PostgresStore) Init(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS kv_blobs (
			key        TEXT PRIMARY KEY,
			value      JSONB NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)
	`

	if _, err := s.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create kv_blobs: %w", err)
	}
	return nil
}

// Close releases the connection pool
func (s *PostgresStore) Close() error {
	return s.db.Close()
}

// StoreSnapshot replaces the stored snapshot
func (s *PostgresStore) StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error {
	data, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("marshaling snapshot: %w", err)
	}

	return s.upsert(ctx, SnapshotKey, data)
}

// LoadSnapshot retrieves the stored snapshot, or nil if none exists yet
func (s *PostgresStore) LoadSnapshot(ctx context.Context) (*models.Snapshot, error) {
	data, err := s.load(ctx, SnapshotKey)
	if err != nil || data == nil {
		return nil, err
	}

	var snapshot models.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("unmarshaling snapshot: %w", err)
	}

	return &snapshot, nil
}

// SaveBets replaces the stored bet sequence
func (s *PostgresStore) SaveBets(ctx context.Context, bets []models.Bet) error {
	data, err := json.Marshal(bets)
	if err != nil {
		return fmt.Errorf("marshaling bets: %w", err)
	}

	return s.upsert(ctx, BetsKey, data)
}

// LoadBets retrieves the stored bet sequence, empty if none exists yet
func (s *PostgresStore) LoadBets(ctx context.Context) ([]models.Bet, error) {
	data, err := s.load(ctx, BetsKey)
	if err != nil || data == nil {
		return nil, err
	}

	var bets []models.Bet
	if err := json.Unmarshal(data, &bets); err != nil {
		return nil, fmt.Errorf("unmarshaling bets: %w", err)
	}

	return bets, nil
}

func (s *PostgresStore) upsert(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO kv_blobs (key, value, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = now()
	`

	if _, err := s.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStore) load(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv_blobs WHERE key = $1`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select %s: %w", key, err)
	}

	return value, nil
}
