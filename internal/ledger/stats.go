package ledger

import "github.com/roci-emry/sports-betting/pkg/models"

// ComputeStats aggregates performance over settled bets only; pending bets
// contribute nothing. Win rate and ROI are defined as 0 when there is nothing
// to divide by.
func ComputeStats(bets []models.Bet) models.BetStats {
	var stats models.BetStats

	for _, bet := range bets {
		if !bet.Result.Settled() {
			continue
		}

		stats.Count++
		stats.TotalProfit += bet.Profit
		stats.TotalStaked += bet.Stake

		switch bet.Result {
		case models.BetWin:
			stats.Wins++
		case models.BetLoss:
			stats.Losses++
		case models.BetPush:
			stats.Pushes++
		}
	}

	if stats.Count > 0 {
		stats.WinRatePct = float64(stats.Wins) / float64(stats.Count) * 100.0
	}
	if stats.TotalStaked > 0 {
		stats.ROIPct = stats.TotalProfit / stats.TotalStaked * 100.0
	}

	return stats
}
