package calculator

import "Backsight/internal/model"

// oscillatorSeries computes the RSI-style momentum oscillator for every
// index of prices, using plain averages of gains and losses over the
// trailing period (no Wilder smoothing). The first period entries are
// undefined: the value at index i needs period close-to-close changes,
// which requires index i-period to exist.
//
// A window with gains but no losses saturates at 100; a window with no
// changes at all scores a neutral 50.
func oscillatorSeries(prices []float64, period int) []model.Value {
	out := make([]model.Value, len(prices))
	if period <= 0 {
		return out
	}

	for i := period; i < len(prices); i++ {
		var gain, loss float64
		for j := i - period + 1; j <= i; j++ {
			change := prices[j] - prices[j-1]
			if change > 0 {
				gain += change
			} else {
				loss -= change
			}
		}
		avgGain := gain / float64(period)
		avgLoss := loss / float64(period)

		switch {
		case avgLoss == 0 && avgGain == 0:
			out[i] = model.ValueOf(50.0)
		case avgLoss == 0:
			out[i] = model.ValueOf(100.0)
		default:
			rs := avgGain / avgLoss
			out[i] = model.ValueOf(100.0 - 100.0/(1.0+rs))
		}
	}
	return out
}
