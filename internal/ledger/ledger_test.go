package ledger_test

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/roci-emry/sports-betting/internal/ledger"
	"github.com/roci-emry/sports-betting/internal/store"
	"github.com/roci-emry/sports-betting/pkg/models"
)

func intPtr(n int) *int { return &n }

func floatPtr(f float64) *float64 { return &f }

func newLedger() *ledger.Ledger {
	return ledger.New(store.NewMemoryStore())
}

func TestRecordDefaults(t *testing.T) {
	l := newLedger()

	bet, err := l.Record(context.Background(), ledger.BetInput{
		Sport: "NBA",
		Game:  "Miami Heat at Boston Celtics",
		Pick:  "Boston Celtics -180",
		Odds:  intPtr(-180),
		Stake: floatPtr(50),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if bet.ID == 0 {
		t.Error("bet ID not assigned")
	}
	if bet.Result != models.BetPending {
		t.Errorf("result = %s, want pending", bet.Result)
	}
	if bet.Profit != 0 {
		t.Errorf("profit = %f, want 0", bet.Profit)
	}
	if bet.Date == "" {
		t.Error("date not defaulted")
	}
}

func TestRecordValidation(t *testing.T) {
	tests := []struct {
		name  string
		input ledger.BetInput
	}{
		{"Missing stake", ledger.BetInput{Odds: intPtr(-110)}},
		{"Missing odds", ledger.BetInput{Stake: floatPtr(25)}},
		{"Missing both", ledger.BetInput{Pick: "Celtics -180"}},
		{"Zero stake", ledger.BetInput{Odds: intPtr(-110), Stake: floatPtr(0)}},
		{"Zero odds", ledger.BetInput{Odds: intPtr(0), Stake: floatPtr(25)}},
	}

	l := newLedger()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := l.Record(context.Background(), tt.input); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	// Nothing malformed may have been persisted
	bets, err := l.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(bets) != 0 {
		t.Errorf("rejected inputs created %d entries", len(bets))
	}
}

func TestRecordUniqueIDs(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	seen := make(map[int64]bool)
	for i := 0; i < 10; i++ {
		bet, err := l.Record(ctx, ledger.BetInput{Odds: intPtr(100), Stake: floatPtr(10)})
		if err != nil {
			t.Fatal(err)
		}
		if seen[bet.ID] {
			t.Fatalf("duplicate bet ID %d", bet.ID)
		}
		seen[bet.ID] = true
	}
}

func TestSettleProfit(t *testing.T) {
	tests := []struct {
		name   string
		odds   int
		stake  float64
		result models.BetResult
		want   float64
	}{
		{"Underdog win", 150, 50, models.BetWin, 75.00},
		{"Favorite win", -180, 50, models.BetWin, 27.78},
		{"Favorite loss", -180, 50, models.BetLoss, -50.00},
		{"Underdog loss", 150, 50, models.BetLoss, -50.00},
		{"Push", -110, 100, models.BetPush, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLedger()
			ctx := context.Background()

			bet, err := l.Record(ctx, ledger.BetInput{Odds: intPtr(tt.odds), Stake: floatPtr(tt.stake)})
			if err != nil {
				t.Fatal(err)
			}

			settled, err := l.Settle(ctx, bet.ID, tt.result)
			if err != nil {
				t.Fatalf("settle: %v", err)
			}

			if settled.Result != tt.result {
				t.Errorf("result = %s, want %s", settled.Result, tt.result)
			}
			if math.Abs(settled.Profit-tt.want) > 0.01 {
				t.Errorf("profit = %f, want %f", settled.Profit, tt.want)
			}
		})
	}
}

func TestSettleOverwrites(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	bet, err := l.Record(ctx, ledger.BetInput{Odds: intPtr(150), Stake: floatPtr(50)})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := l.Settle(ctx, bet.ID, models.BetWin); err != nil {
		t.Fatal(err)
	}

	// Correcting a mis-entered result: last write wins
	settled, err := l.Settle(ctx, bet.ID, models.BetLoss)
	if err != nil {
		t.Fatal(err)
	}
	if settled.Profit != -50 {
		t.Errorf("profit after re-settle = %f, want -50", settled.Profit)
	}
}

func TestSettleInvalid(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	bet, err := l.Record(ctx, ledger.BetInput{Odds: intPtr(150), Stake: floatPtr(50)})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := l.Settle(ctx, bet.ID, models.BetPending); err == nil {
		t.Error("settling to pending should be rejected")
	}
	if _, err := l.Settle(ctx, bet.ID, models.BetResult("void")); err == nil {
		t.Error("unknown result should be rejected")
	}
	if _, err := l.Settle(ctx, 999999, models.BetWin); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("unknown ID: err = %v, want ErrNotFound", err)
	}
}

func TestDelete(t *testing.T) {
	l := newLedger()
	ctx := context.Background()

	bet, err := l.Record(ctx, ledger.BetInput{Odds: intPtr(150), Stake: floatPtr(50)})
	if err != nil {
		t.Fatal(err)
	}

	if err := l.Delete(ctx, bet.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	bets, err := l.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(bets) != 0 {
		t.Errorf("ledger still holds %d bets after delete", len(bets))
	}

	if err := l.Delete(ctx, bet.ID); !errors.Is(err, ledger.ErrNotFound) {
		t.Errorf("second delete: err = %v, want ErrNotFound", err)
	}
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ledger.ComputeStats(nil)

	if stats.Count != 0 || stats.WinRatePct != 0 || stats.TotalProfit != 0 || stats.ROIPct != 0 {
		t.Errorf("empty ledger stats = %+v, want all zeros", stats)
	}
}

func TestComputeStatsPendingExcluded(t *testing.T) {
	bets := []models.Bet{
		{Result: models.BetPending, Stake: 500, Odds: 150},
	}

	stats := ledger.ComputeStats(bets)
	if stats.Count != 0 || stats.TotalStaked != 0 {
		t.Errorf("pending bets leaked into stats: %+v", stats)
	}
}

func TestComputeStats(t *testing.T) {
	bets := []models.Bet{
		{Result: models.BetWin, Stake: 50, Odds: 150, Profit: 75},
		{Result: models.BetLoss, Stake: 50, Odds: -180, Profit: -50},
		{Result: models.BetPush, Stake: 100, Odds: -110, Profit: 0},
		{Result: models.BetPending, Stake: 25, Odds: 120},
	}

	stats := ledger.ComputeStats(bets)

	if stats.Count != 3 {
		t.Errorf("count = %d, want 3", stats.Count)
	}
	if stats.Wins != 1 || stats.Losses != 1 || stats.Pushes != 1 {
		t.Errorf("w/l/p = %d/%d/%d, want 1/1/1", stats.Wins, stats.Losses, stats.Pushes)
	}

	// Pushes count as settled in the win-rate denominator
	if math.Abs(stats.WinRatePct-33.333) > 0.01 {
		t.Errorf("win rate = %f, want ~33.33", stats.WinRatePct)
	}
	if math.Abs(stats.TotalProfit-25) > 0.001 {
		t.Errorf("total profit = %f, want 25", stats.TotalProfit)
	}
	if math.Abs(stats.TotalStaked-200) > 0.001 {
		t.Errorf("total staked = %f, want 200", stats.TotalStaked)
	}
	if math.Abs(stats.ROIPct-12.5) > 0.001 {
		t.Errorf("ROI = %f, want 12.5", stats.ROIPct)
	}
}
