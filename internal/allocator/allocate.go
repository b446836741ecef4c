// Package allocator splits total capital across symbols once every
// per-symbol backtest has finished.
package allocator

import "Backsight/internal/model"

// sharpeFloor keeps zero or negative Sharpe ratios from producing a zero or
// negative weight; every symbol always receives some capital.
const sharpeFloor = 0.01

// BySharpe weights each symbol by max(Sharpe, sharpeFloor) normalized over
// all symbols, so weights sum to 1 by construction.
func BySharpe(summaries map[string]model.PerformanceSummary, totalCapital float64) map[string]float64 {
	weights := make(map[string]float64, len(summaries))
	if len(summaries) == 0 {
		return weights
	}

	var sum float64
	for symbol, s := range summaries {
		w := s.SharpeRatio
		if w < sharpeFloor {
			w = sharpeFloor
		}
		weights[symbol] = w
		sum += w
	}

	for symbol, w := range weights {
		weights[symbol] = w / sum * totalCapital
	}
	return weights
}

// Equal splits capital evenly, ignoring performance.
func Equal(summaries map[string]model.PerformanceSummary, totalCapital float64) map[string]float64 {
	weights := make(map[string]float64, len(summaries))
	if len(summaries) == 0 {
		return weights
	}
	share := totalCapital / float64(len(summaries))
	for symbol := range summaries {
		weights[symbol] = share
	}
	return weights
}
