// Package ledger owns the logged-bet lifecycle: it is the sole writer of the
// bet store. Mutations are synchronous single-actor operations; the ledger
// serializes them with a mutex so the load-modify-save of the backing blob
// never interleaves.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/roci-emry/sports-betting/internal/store"
	"github.com/roci-emry/sports-betting/pkg/models"
	"github.com/roci-emry/sports-betting/pkg/oddsmath"
)

// ErrNotFound is returned when a bet ID has no entry
var ErrNotFound = errors.New("bet not found")

// ErrInvalidInput marks caller errors (missing or unusable fields) so the API
// layer can distinguish them from storage failures
var ErrInvalidInput = errors.New("invalid bet input")

// BetInput carries the fields for a new bet. Stake and odds are pointers so
// an absent field is distinguishable from a zero value: absence is a caller
// error, never silently coerced.
type BetInput struct {
	Date  string   `json:"date"`
	Sport string   `json:"sport"`
	Game  string   `json:"game"`
	Pick  string   `json:"pick"`
	Odds  *int     `json:"odds"`
	Stake *float64 `json:"betAmount"`
}

// Ledger records, settles and deletes bets against a BetStore
type Ledger struct {
	store store.BetStore

	mu     sync.Mutex
	lastID int64
}

// New creates a ledger over the given bet store
func New(betStore store.BetStore) *Ledger {
	return &Ledger{
		store: betStore,
	}
}

// Record validates the input and prepends a new pending bet to the ledger
func (l *Ledger) Record(ctx context.Context, input BetInput) (*models.Bet, error) {
	if input.Stake == nil || input.Odds == nil {
		return nil, fmt.Errorf("%w: stake and odds are required", ErrInvalidInput)
	}
	if *input.Stake <= 0 {
		return nil, fmt.Errorf("%w: stake must be positive", ErrInvalidInput)
	}
	if *input.Odds == 0 {
		return nil, fmt.Errorf("%w: odds cannot be zero", ErrInvalidInput)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := time.Now()

	date := input.Date
	if date == "" {
		date = now.Format("2006-01-02")
	}

	bet := models.Bet{
		ID:       l.nextID(now),
		Date:     date,
		Sport:    input.Sport,
		Game:     input.Game,
		Pick:     input.Pick,
		Odds:     *input.Odds,
		Stake:    *input.Stake,
		Result:   models.BetPending,
		Profit:   0,
		PlacedAt: now,
	}

	bets, err := l.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bets: %w", err)
	}

	// Newest first
	bets = append([]models.Bet{bet}, bets...)

	if err := l.store.SaveBets(ctx, bets); err != nil {
		return nil, fmt.Errorf("save bets: %w", err)
	}

	return &bet, nil
}

// Settle transitions a bet to win, loss or push and recomputes its realized
// profit. Re-settling is allowed: the latest result simply overwrites the
// prior one.
func (l *Ledger) Settle(ctx context.Context, id int64, result models.BetResult) (*models.Bet, error) {
	if !result.Settled() {
		return nil, fmt.Errorf("%w: invalid settlement result %q", ErrInvalidInput, result)
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	bets, err := l.store.LoadBets(ctx)
	if err != nil {
		return nil, fmt.Errorf("load bets: %w", err)
	}

	for i := range bets {
		if bets[i].ID != id {
			continue
		}

		bets[i].Result = result
		bets[i].Profit = RealizedProfit(bets[i].Stake, bets[i].Odds, result)

		if err := l.store.SaveBets(ctx, bets); err != nil {
			return nil, fmt.Errorf("save bets: %w", err)
		}

		settled := bets[i]
		return &settled, nil
	}

	return nil, ErrNotFound
}

// Delete removes a bet permanently; there is no soft-delete or undo
func (l *Ledger) Delete(ctx context.Context, id int64) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	bets, err := l.store.LoadBets(ctx)
	if err != nil {
		return fmt.Errorf("load bets: %w", err)
	}

	remaining := bets[:0]
	found := false
	for _, bet := range bets {
		if bet.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, bet)
	}

	if !found {
		return ErrNotFound
	}

	if err := l.store.SaveBets(ctx, remaining); err != nil {
		return fmt.Errorf("save bets: %w", err)
	}
	return nil
}

// List returns all logged bets, newest first
func (l *Ledger) List(ctx context.Context) ([]models.Bet, error) {
	return l.store.LoadBets(ctx)
}

// RealizedProfit computes the profit a settled bet realizes
func RealizedProfit(stake float64, odds int, result models.BetResult) float64 {
	switch result {
	case models.BetWin:
		return stake * oddsmath.WinReturn(odds)
	case models.BetLoss:
		return -stake
	default:
		// Push or pending
		return 0
	}
}

// nextID derives an ID from the creation time, bumping on same-millisecond
// collisions so IDs stay unique within a process
func (l *Ledger) nextID(now time.Time) int64 {
	id := now.UnixMilli()
	if id <= l.lastID {
		id = l.lastID + 1
	}
	l.lastID = id
	return id
}
