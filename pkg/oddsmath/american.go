package oddsmath

import (
	"fmt"
	"math"
)

// ImpliedProbability converts an American odds line to the win probability it
// represents at zero book margin.
// +150 → 0.40
// -180 → 0.6429
//
// A zero line never comes from a real book; it falls into the favorite branch
// by convention and yields 0.5.
func ImpliedProbability(american int) float64 {
	if american > 0 {
		return 100.0 / (float64(american) + 100.0)
	}

	abs := math.Abs(float64(american))
	return abs / (abs + 100.0)
}

// WinReturn is the profit per unit staked, excluding the returned stake.
// +150 → 1.50
// -180 → 0.5556
func WinReturn(american int) float64 {
	if american > 0 {
		return float64(american) / 100.0
	}

	return 100.0 / math.Abs(float64(american))
}

// CalculateEV computes the mean profit per unit staked at the given true win
// probability and offered American price.
// EV = p * winReturn - (1 - p)
//
// Positive EV indicates a theoretically favorable wager.
func CalculateEV(trueProbability float64, american int) float64 {
	return trueProbability*WinReturn(american) - (1.0 - trueProbability)
}

// FormatAmerican renders an American odds line with its conventional sign
// 150 → "+150"
// -180 → "-180"
func FormatAmerican(american int) string {
	if american > 0 {
		return fmt.Sprintf("+%d", american)
	}
	return fmt.Sprintf("%d", american)
}
