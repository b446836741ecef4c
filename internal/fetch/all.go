package fetch

import (
	"fmt"
	"time"

	"Backsight/internal/model"
)

// All fetches the daily history for every symbol. The first failing symbol
// aborts the whole batch; partial portfolios are worse than no run.
func All(f Fetcher, symbols []string, start, end time.Time) (map[string]model.PriceSeries, error) {
	out := make(map[string]model.PriceSeries, len(symbols))
	for _, symbol := range symbols {
		series, err := f.FetchDailyBars(symbol, start, end)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", symbol, err)
		}
		out[symbol] = series
	}
	return out, nil
}
