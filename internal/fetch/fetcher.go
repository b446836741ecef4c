// Package fetch retrieves daily price history from external data sources.
// All I/O lives here, before the core pipeline is ever invoked.
package fetch

import (
	"errors"
	"time"

	"Backsight/internal/model"
)

// ErrDataUnavailable means the symbol is unknown to the source or the date
// range yielded zero bars. The core propagates it unchanged and never
// retries.
var ErrDataUnavailable = errors.New("price data unavailable")

// Fetcher defines the interface for fetching daily price history.
type Fetcher interface {
	FetchDailyBars(symbol string, start, end time.Time) (model.PriceSeries, error)
	Name() string
}
