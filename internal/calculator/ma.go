package calculator

import "Backsight/internal/model"

// smaSeries computes the trailing simple moving average for every index of
// prices. The first window-1 entries are undefined because the lookback is
// not yet full.
func smaSeries(prices []float64, window int) []model.Value {
	out := make([]model.Value, len(prices))
	if window <= 0 {
		return out
	}

	sum := 0.0
	for i, p := range prices {
		sum += p
		if i >= window {
			sum -= prices[i-window]
		}
		if i >= window-1 {
			out[i] = model.ValueOf(sum / float64(window))
		}
	}
	return out
}
