// Package performance computes scalar risk/return metrics from an equity
// trace and a trade log.
package performance

import (
	"math"

	"Backsight/internal/model"
)

// tradingDaysPerYear annualizes the Sharpe ratio.
const tradingDaysPerYear = 252

// Evaluate summarizes an equity trace. Flat equity yields Sharpe 0 and an
// empty trade log yields WinRate 0; neither is an error.
func Evaluate(equity []float64, trades []model.Trade) model.PerformanceSummary {
	if len(equity) == 0 {
		return model.PerformanceSummary{}
	}

	first, last := equity[0], equity[len(equity)-1]

	summary := model.PerformanceSummary{
		NetProfit:   last - first,
		SharpeRatio: sharpeRatio(dailyReturns(equity)),
		MaxDrawdown: maxDrawdown(equity),
		WinRate:     winRate(trades),
		TotalTrades: len(trades),
	}
	if first != 0 {
		summary.TotalReturn = (last - first) / first
	}
	return summary
}

// dailyReturns is the simple percentage change between consecutive equity
// points.
func dailyReturns(equity []float64) []float64 {
	if len(equity) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(equity)-1)
	for i := 1; i < len(equity); i++ {
		if equity[i-1] == 0 {
			returns = append(returns, 0)
			continue
		}
		returns = append(returns, (equity[i]-equity[i-1])/equity[i-1])
	}
	return returns
}

// sharpeRatio annualizes mean/stddev of daily returns using the sample
// standard deviation. Zero volatility maps to 0.
func sharpeRatio(returns []float64) float64 {
	if len(returns) < 2 {
		return 0
	}

	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= float64(len(returns))

	variance := 0.0
	for _, r := range returns {
		d := r - mean
		variance += d * d
	}
	variance /= float64(len(returns) - 1)

	std := math.Sqrt(variance)
	if std == 0 {
		return 0
	}
	return mean / std * math.Sqrt(tradingDaysPerYear)
}

// maxDrawdown is the largest fractional decline from the running equity
// peak, where the peak includes the current day.
func maxDrawdown(equity []float64) float64 {
	var peak, maxDD float64
	for _, e := range equity {
		if e > peak {
			peak = e
		}
		if peak > 0 {
			if dd := (peak - e) / peak; dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}

func winRate(trades []model.Trade) float64 {
	if len(trades) == 0 {
		return 0
	}
	wins := 0
	for _, t := range trades {
		if t.Won() {
			wins++
		}
	}
	return float64(wins) / float64(len(trades))
}
