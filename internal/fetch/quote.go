package fetch

import (
	"fmt"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"

	"Backsight/internal/model"
)

// QuoteFetcher implements Fetcher on top of the finance-go chart client,
// as an alternative to the raw chart-API fetcher.
type QuoteFetcher struct{}

// NewQuoteFetcher creates a finance-go backed fetcher.
func NewQuoteFetcher() *QuoteFetcher { return &QuoteFetcher{} }

func (f *QuoteFetcher) Name() string { return "finance-go" }

// FetchDailyBars requests daily bars for [start, end] via finance-go.
func (f *QuoteFetcher) FetchDailyBars(symbol string, start, end time.Time) (model.PriceSeries, error) {
	iter := chart.Get(&chart.Params{
		Symbol:   symbol,
		Start:    datetime.New(&start),
		End:      datetime.New(&end),
		Interval: datetime.OneDay,
	})

	var bars []model.Bar
	for iter.Next() {
		b := iter.Bar()
		open, _ := b.Open.Float64()
		high, _ := b.High.Float64()
		low, _ := b.Low.Float64()
		closeP, _ := b.Close.Float64()
		if closeP == 0 {
			continue
		}
		bars = append(bars, model.Bar{
			Date:   time.Unix(int64(b.Timestamp), 0).UTC(),
			Open:   open,
			High:   high,
			Low:    low,
			Close:  closeP,
			Volume: float64(b.Volume),
		})
	}
	if err := iter.Err(); err != nil {
		return model.PriceSeries{}, fmt.Errorf("finance-go fetch %s: %w", symbol, err)
	}
	if len(bars) == 0 {
		return model.PriceSeries{}, fmt.Errorf("finance-go: no bars for %s: %w", symbol, ErrDataUnavailable)
	}

	return model.PriceSeries{
		Symbol:    symbol,
		Bars:      bars,
		FetchedAt: time.Now(),
	}, nil
}
