package models

import "time"

// BetResult is the settlement state of a logged bet
type BetResult string

const (
	BetPending BetResult = "pending"
	BetWin     BetResult = "win"
	BetLoss    BetResult = "loss"
	BetPush    BetResult = "push"
)

// Valid reports whether r is a recognized settlement result
func (r BetResult) Valid() bool {
	switch r {
	case BetPending, BetWin, BetLoss, BetPush:
		return true
	}
	return false
}

// Settled reports whether r represents a final outcome
func (r BetResult) Settled() bool {
	return r == BetWin || r == BetLoss || r == BetPush
}

// Bet is a user-logged wager. The ledger is the sole writer: bets are created
// by explicit user action, mutated only by settlement, and deleted explicitly.
type Bet struct {
	// ID is derived from the creation timestamp (Unix milliseconds)
	ID int64 `json:"id"`

	// Date is the bet date in YYYY-MM-DD form
	Date string `json:"date"`

	Sport string `json:"sport"`
	Game  string `json:"game"`
	Pick  string `json:"pick"`

	// Odds is the American price the bet was taken at
	Odds int `json:"odds"`

	// Stake is the wagered amount in the bettor's currency
	Stake float64 `json:"betAmount"`

	Result BetResult `json:"result"`

	// Profit is the realized profit: positive on a win, -Stake on a loss,
	// 0 while pending or on a push
	Profit float64 `json:"profit"`

	PlacedAt time.Time `json:"placedAt"`
}

// BetStats holds aggregate performance over settled bets only
type BetStats struct {
	Count       int     `json:"count"`
	Wins        int     `json:"wins"`
	Losses      int     `json:"losses"`
	Pushes      int     `json:"pushes"`
	WinRatePct  float64 `json:"winRatePct"`
	TotalProfit float64 `json:"totalProfit"`
	TotalStaked float64 `json:"totalStaked"`
	ROIPct      float64 `json:"roiPct"`
}
