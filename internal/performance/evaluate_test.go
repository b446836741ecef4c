package performance

import (
	"math"
	"testing"

	"Backsight/internal/model"
)

func TestEvaluate_TotalReturnAndNetProfit(t *testing.T) {
	equity := []float64{10000, 10500, 11000, 12000}

	s := Evaluate(equity, nil)
	if got, want := s.TotalReturn, 0.2; math.Abs(got-want) > 1e-9 {
		t.Errorf("total return = %.6f, want %.6f", got, want)
	}
	if got, want := s.NetProfit, 2000.0; math.Abs(got-want) > 1e-9 {
		t.Errorf("net profit = %.2f, want %.2f", got, want)
	}
	if s.SharpeRatio <= 0 {
		t.Errorf("sharpe = %.4f for a rising curve, want positive", s.SharpeRatio)
	}
}

func TestEvaluate_FlatEquityHasZeroSharpe(t *testing.T) {
	equity := []float64{10000, 10000, 10000, 10000}

	s := Evaluate(equity, nil)
	if s.SharpeRatio != 0 {
		t.Errorf("sharpe = %.4f for flat equity, want 0", s.SharpeRatio)
	}
	if s.MaxDrawdown != 0 {
		t.Errorf("drawdown = %.4f for flat equity, want 0", s.MaxDrawdown)
	}
	if s.TotalReturn != 0 {
		t.Errorf("total return = %.4f for flat equity, want 0", s.TotalReturn)
	}
}

func TestEvaluate_MaxDrawdown(t *testing.T) {
	// Peak 120, trough 90: drawdown 25%. The later rally to 130 must not
	// shrink it.
	equity := []float64{100, 120, 90, 130}

	s := Evaluate(equity, nil)
	if got, want := s.MaxDrawdown, 0.25; math.Abs(got-want) > 1e-9 {
		t.Errorf("max drawdown = %.6f, want %.6f", got, want)
	}
}

func TestEvaluate_SharpeMatchesDirectComputation(t *testing.T) {
	equity := []float64{100, 102, 101, 104, 103}

	returns := []float64{0.02, -1.0 / 102, 3.0 / 101, -1.0 / 104}
	mean := 0.0
	for _, r := range returns {
		mean += r
	}
	mean /= 4
	variance := 0.0
	for _, r := range returns {
		variance += (r - mean) * (r - mean)
	}
	variance /= 3 // sample
	want := mean / math.Sqrt(variance) * math.Sqrt(252)

	s := Evaluate(equity, nil)
	if math.Abs(s.SharpeRatio-want) > 1e-9 {
		t.Errorf("sharpe = %.9f, want %.9f", s.SharpeRatio, want)
	}
}

func TestEvaluate_WinRate(t *testing.T) {
	trades := []model.Trade{
		{Profit: 50},
		{Profit: -20},
		{Profit: 10},
		{Profit: 0}, // break-even is not a win
	}

	s := Evaluate([]float64{100, 100}, trades)
	if got, want := s.WinRate, 0.5; math.Abs(got-want) > 1e-9 {
		t.Errorf("win rate = %.4f, want %.4f", got, want)
	}
	if s.TotalTrades != 4 {
		t.Errorf("total trades = %d, want 4", s.TotalTrades)
	}
}

func TestEvaluate_ZeroTradesHasZeroWinRate(t *testing.T) {
	s := Evaluate([]float64{100, 110}, nil)
	if s.WinRate != 0 {
		t.Errorf("win rate = %.4f with no trades, want 0", s.WinRate)
	}
}

func TestEvaluate_EmptyEquity(t *testing.T) {
	s := Evaluate(nil, nil)
	if s != (model.PerformanceSummary{}) {
		t.Errorf("empty equity trace should yield a zero summary, got %+v", s)
	}
}
