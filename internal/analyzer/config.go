package analyzer

import (
	"os"
	"strconv"
)

// Config holds the pick-scoring heuristics. The defaults are the tuned values
// this model has always run with; none of them has a statistical derivation,
// so every one is overridable from the environment rather than baked into the
// math.
type Config struct {
	// BookKey is the single designated bookmaker whose moneyline is analyzed
	BookKey string

	// HomeFavoriteBoost is added to implied probability for home favorites
	HomeFavoriteBoost float64

	// AwayUnderdogFade is subtracted from implied probability for away underdogs
	AwayUnderdogFade float64

	// EstimateCap / EstimateFloor clamp the adjusted probability
	EstimateCap   float64
	EstimateFloor float64

	// MinEV is the admission threshold: candidates at or below it are dropped
	MinEV float64

	// MaxAbsOdds excludes long-shot and heavy-chalk lines from candidacy
	MaxAbsOdds int

	// HighEVThreshold / MediumEVThreshold split candidates into confidence tiers
	HighEVThreshold   float64
	MediumEVThreshold float64
}

// NewConfig creates analyzer configuration with defaults and environment overrides
func NewConfig() *Config {
	return &Config{
		BookKey:           getEnv("BOOK_KEY", "draftkings"),
		HomeFavoriteBoost: getEnvFloat("HOME_FAVORITE_BOOST", 0.025),
		AwayUnderdogFade:  getEnvFloat("AWAY_UNDERDOG_FADE", 0.015),
		EstimateCap:       getEnvFloat("ESTIMATE_CAP", 0.72),
		EstimateFloor:     getEnvFloat("ESTIMATE_FLOOR", 0.22),
		MinEV:             getEnvFloat("MIN_EV", -0.03),
		MaxAbsOdds:        getEnvInt("MAX_ABS_ODDS", 250),
		HighEVThreshold:   getEnvFloat("HIGH_EV_THRESHOLD", 0.04),
		MediumEVThreshold: getEnvFloat("MEDIUM_EV_THRESHOLD", 0.01),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseFloat(value, 64); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
