package fetch

import (
	"fmt"
	"time"

	"Backsight/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	BasePrice float64
	Drift     float64 // per-day fractional price change
	Bars      []model.Bar
}

func (m *MockFetcher) Name() string { return "mock" }

// FetchDailyBars returns the canned bars if set, otherwise generates one
// weekday bar per day drifting from BasePrice.
func (m *MockFetcher) FetchDailyBars(symbol string, start, end time.Time) (model.PriceSeries, error) {
	if m.Bars != nil {
		return model.PriceSeries{Symbol: symbol, Bars: m.Bars, FetchedAt: time.Now()}, nil
	}
	if !end.After(start) {
		return model.PriceSeries{}, fmt.Errorf("mock: empty range for %s: %w", symbol, ErrDataUnavailable)
	}

	var bars []model.Bar
	price := m.BasePrice
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			continue
		}
		bars = append(bars, model.Bar{
			Date:   d,
			Open:   price * 0.999,
			High:   price * 1.005,
			Low:    price * 0.995,
			Close:  price,
			Volume: 1_000_000,
		})
		price *= 1 + m.Drift
	}
	return model.PriceSeries{Symbol: symbol, Bars: bars, FetchedAt: time.Now()}, nil
}
