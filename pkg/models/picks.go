package models

import "time"

// Confidence is a discrete EV-derived label driving suggested stake size
type Confidence string

const (
	ConfidenceLow    Confidence = "low"    // 1 unit
	ConfidenceMedium Confidence = "medium" // 2 units
	ConfidenceHigh   Confidence = "high"   // 3 units
)

// Pick represents a single recommended wager that survived the admission filter
type Pick struct {
	// Label is the participant plus the signed American price, e.g. "Celtics -145"
	Label string `json:"pick"`

	// Game is the matchup label, always "Away at Home"
	Game  string `json:"game"`
	Sport string `json:"sport"`

	// Odds is the book's American price for this side
	Odds int `json:"odds"`

	Units      int        `json:"units"`
	Confidence Confidence `json:"confidence"`

	// EV is the expected profit per unit staked at the estimated win probability
	EV float64 `json:"ev"`

	CommenceTime time.Time `json:"commenceTime"`

	// Analysis is templated text explaining the pick's EV band
	Analysis string `json:"analysis"`
}

// Snapshot is the result of one full poll cycle. Each cycle produces exactly
// one snapshot, which fully replaces the previous one wherever it is stored.
type Snapshot struct {
	CycleID string `json:"cycleId"`

	// Picks holds the top-ranked picks, sorted by descending EV
	Picks []Pick `json:"picks"`

	GeneratedAt time.Time `json:"timestamp"`

	// SportsChecked lists every sport polled this cycle, whether or not it
	// yielded picks
	SportsChecked []string `json:"sportsChecked"`

	// Errors holds one entry per sport whose fetch failed ("Name: reason")
	Errors []string `json:"errors"`

	// Month is the calendar month (1-12) the rotation was computed for
	Month int `json:"month"`
}
