// Package backtest wires the pipeline stages together: indicators → signals
// → simulation → metrics for one symbol, and the allocation barrier across
// symbols.
package backtest

import (
	"fmt"

	"Backsight/internal/calculator"
	"Backsight/internal/model"
	"Backsight/internal/performance"
	"Backsight/internal/signal"
	"Backsight/internal/simulator"
)

// SymbolResult is the full output of one single-symbol run.
type SymbolResult struct {
	Symbol  string
	Signals []model.SignalRow
	Equity  []float64
	Trades  []model.Trade
	Summary model.PerformanceSummary

	// BuyHoldReturn is the benchmark return of simply holding the symbol
	// over the same window.
	BuyHoldReturn float64
}

// RunSymbol executes the whole pipeline for one symbol. Parameters are
// validated before any computation; a series shorter than the indicator
// lookbacks is rejected as ErrInsufficientHistory.
func RunSymbol(series model.PriceSeries, p Params) (*SymbolResult, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if series.Len() < p.minHistory() {
		return nil, fmt.Errorf("%w: %s has %d bars, need at least %d",
			ErrInsufficientHistory, series.Symbol, series.Len(), p.minHistory())
	}

	rows := calculator.Compute(series, p.FastWindow, p.SlowWindow, p.OscPeriod)
	signals := signal.Generate(rows, p.UseFilter)

	equity, trades, err := simulator.Run(series, signals, p.InitialCapital, p.StopLoss)
	if err != nil {
		return nil, fmt.Errorf("simulate %s: %w", series.Symbol, err)
	}

	res := &SymbolResult{
		Symbol:  series.Symbol,
		Signals: signals,
		Equity:  equity,
		Trades:  trades,
		Summary: performance.Evaluate(equity, trades),
	}
	if first := series.Bars[0].Close; first > 0 {
		res.BuyHoldReturn = series.Bars[series.Len()-1].Close/first - 1
	}
	return res, nil
}
