// Package store persists the pick snapshot and the bet ledger as whole JSON
// blobs at fixed keys. Writes unconditionally replace the prior value: last
// write wins, with no staleness check. If two poll cycles ever overlapped,
// the most recently stored snapshot would win even if its data were staler;
// the scheduled job is serialized externally, so no locking is done here.
package store

import (
	"context"

	"github.com/roci-emry/sports-betting/pkg/models"
)

// Fixed storage keys
const (
	SnapshotKey = "picks:snapshot"
	BetsKey     = "picks:bets"
)

// SnapshotChannel is the pub/sub channel each stored snapshot is announced
// on, so the API process can push snapshots written by the scheduled job to
// its connected clients
const SnapshotChannel = "picks:updates"

// SnapshotSource is the read side of snapshot storage. Loading before any
// snapshot was ever stored returns (nil, nil): "no data yet" is a valid
// state, not an error.
type SnapshotSource interface {
	LoadSnapshot(ctx context.Context) (*models.Snapshot, error)
}

// SnapshotStore persists the most recent poll-cycle snapshot
type SnapshotStore interface {
	SnapshotSource
	StoreSnapshot(ctx context.Context, snapshot *models.Snapshot) error
}

// BetStore persists the full bet sequence as one blob, rewritten on every
// mutation. Loading before any save returns an empty sequence.
type BetStore interface {
	LoadBets(ctx context.Context) ([]models.Bet, error)
	SaveBets(ctx context.Context, bets []models.Bet) error
}
