package backtest

import (
	"fmt"
	"runtime"
	"sort"
	"sync"

	"Backsight/internal/allocator"
	"Backsight/internal/model"
)

// Allocation pairs a symbol's backtest result with the capital assigned to
// it by the combiner.
type Allocation struct {
	Capital float64
	Result  *SymbolResult
}

// RunPortfolio backtests every symbol independently and then splits
// totalCapital across them, by Sharpe ratio unless equalWeight is set.
//
// Each per-symbol pipeline operates on its own series with no shared state,
// so the runs execute concurrently under a bounded worker pool. Allocation
// is the barrier: it starts only after every summary is in.
func RunPortfolio(perSymbol map[string]model.PriceSeries, totalCapital float64, p Params, equalWeight bool) (map[string]Allocation, error) {
	if len(perSymbol) == 0 {
		return nil, fmt.Errorf("%w: no symbols to backtest", ErrInvalidParameter)
	}
	if totalCapital <= 0 {
		return nil, fmt.Errorf("%w: total capital %.2f must be positive", ErrInvalidParameter, totalCapital)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(perSymbol))
	for symbol := range perSymbol {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		results  = make(map[string]*SymbolResult, len(symbols))
		firstErr error
	)
	sem := make(chan struct{}, runtime.NumCPU())

	for _, symbol := range symbols {
		wg.Add(1)
		go func(symbol string, series model.PriceSeries) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			res, err := RunSymbol(series, p)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("backtest %s: %w", symbol, err)
				}
				return
			}
			results[symbol] = res
		}(symbol, perSymbol[symbol])
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	summaries := make(map[string]model.PerformanceSummary, len(results))
	for symbol, res := range results {
		summaries[symbol] = res.Summary
	}

	var capital map[string]float64
	if equalWeight {
		capital = allocator.Equal(summaries, totalCapital)
	} else {
		capital = allocator.BySharpe(summaries, totalCapital)
	}

	out := make(map[string]Allocation, len(results))
	for symbol, res := range results {
		out[symbol] = Allocation{Capital: capital[symbol], Result: res}
	}
	return out, nil
}
