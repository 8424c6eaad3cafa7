package analyzer

import (
	"fmt"
	"math"

	"github.com/roci-emry/sports-betting/internal/provider/oddsapi"
	"github.com/roci-emry/sports-betting/pkg/models"
	"github.com/roci-emry/sports-betting/pkg/oddsmath"
)

// Analyzer turns one game's moneyline into zero or more scored pick candidates
type Analyzer struct {
	config *Config
}

// New creates an analyzer with the given scoring configuration
func New(config *Config) *Analyzer {
	return &Analyzer{
		config: config,
	}
}

// AnalyzeGame scores both sides of the designated book's moneyline. A game
// with no data for that book or market yields no candidates; that is "no
// offer", not a failure.
func (a *Analyzer) AnalyzeGame(game *oddsapi.Game) []models.Pick {
	book := game.Bookmaker(a.config.BookKey)
	if book == nil {
		return nil
	}

	market := book.Market(oddsapi.MarketMoneyline)
	if market == nil {
		return nil
	}

	var picks []models.Pick

	for _, outcome := range market.Outcomes {
		implied := oddsmath.ImpliedProbability(outcome.Price)

		isHome := outcome.Name == game.HomeTeam
		isFavorite := outcome.Price < 0

		// Situational adjustment: home favorites close slightly better than
		// the market implies, road underdogs slightly worse. The magnitudes
		// are heuristic, not modeled.
		estimated := implied
		switch {
		case isHome && isFavorite:
			estimated = math.Min(a.config.EstimateCap, implied+a.config.HomeFavoriteBoost)
		case !isHome && !isFavorite:
			estimated = math.Max(a.config.EstimateFloor, implied-a.config.AwayUnderdogFade)
		}

		ev := oddsmath.CalculateEV(estimated, outcome.Price)

		// Admission filter: drop marginal EV and lines too far from even money
		if ev <= a.config.MinEV || abs(outcome.Price) >= a.config.MaxAbsOdds {
			continue
		}

		confidence, units := a.tier(ev)

		picks = append(picks, models.Pick{
			Label:        fmt.Sprintf("%s %s", outcome.Name, oddsmath.FormatAmerican(outcome.Price)),
			Game:         fmt.Sprintf("%s at %s", game.AwayTeam, game.HomeTeam),
			Sport:        game.SportTitle,
			Odds:         outcome.Price,
			Units:        units,
			Confidence:   confidence,
			EV:           ev,
			CommenceTime: game.CommenceTime,
			Analysis:     Narrative(outcome.Name, isHome, implied, estimated, ev, a.config),
		})
	}

	return picks
}

// tier maps an EV to its confidence tier and unit size
func (a *Analyzer) tier(ev float64) (models.Confidence, int) {
	switch {
	case ev > a.config.HighEVThreshold:
		return models.ConfidenceHigh, 3
	case ev > a.config.MediumEVThreshold:
		return models.ConfidenceMedium, 2
	default:
		return models.ConfidenceLow, 1
	}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
