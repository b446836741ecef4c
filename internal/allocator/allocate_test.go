package allocator

import (
	"math"
	"testing"

	"Backsight/internal/model"
)

func summaries(sharpes map[string]float64) map[string]model.PerformanceSummary {
	out := make(map[string]model.PerformanceSummary, len(sharpes))
	for symbol, s := range sharpes {
		out[symbol] = model.PerformanceSummary{SharpeRatio: s}
	}
	return out
}

func TestBySharpe_WeightsSumToTotal(t *testing.T) {
	tests := []struct {
		name    string
		sharpes map[string]float64
	}{
		{"all positive", map[string]float64{"AAPL": 1.2, "MSFT": 0.8, "GOOG": 2.1}},
		{"mixed signs", map[string]float64{"AAPL": 1.5, "MSFT": -0.7, "GOOG": 0}},
		{"all negative", map[string]float64{"AAPL": -1.0, "MSFT": -2.5}},
		{"single symbol", map[string]float64{"AAPL": -3.0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			const total = 100000.0
			alloc := BySharpe(summaries(tt.sharpes), total)

			if len(alloc) != len(tt.sharpes) {
				t.Fatalf("allocated %d symbols, want %d", len(alloc), len(tt.sharpes))
			}
			sum := 0.0
			for symbol, capital := range alloc {
				if capital <= 0 {
					t.Errorf("%s allocated %.2f, want strictly positive", symbol, capital)
				}
				sum += capital
			}
			if math.Abs(sum-total) > 1e-6 {
				t.Errorf("allocations sum to %.6f, want %.6f", sum, total)
			}
		})
	}
}

func TestBySharpe_HigherSharpeGetsMoreCapital(t *testing.T) {
	alloc := BySharpe(summaries(map[string]float64{"GOOD": 2.0, "BAD": 0.5}), 10000)
	if alloc["GOOD"] <= alloc["BAD"] {
		t.Errorf("GOOD %.2f should exceed BAD %.2f", alloc["GOOD"], alloc["BAD"])
	}
}

func TestBySharpe_FloorAppliesBelowEpsilon(t *testing.T) {
	// Both symbols sit at/below the floor, so they split evenly.
	alloc := BySharpe(summaries(map[string]float64{"A": -2.0, "B": 0}), 10000)
	if math.Abs(alloc["A"]-alloc["B"]) > 1e-6 {
		t.Errorf("floored symbols should split evenly, got A=%.2f B=%.2f", alloc["A"], alloc["B"])
	}
}

func TestEqual_SplitsEvenly(t *testing.T) {
	alloc := Equal(summaries(map[string]float64{"A": 3.0, "B": -1.0, "C": 0.2}), 9000)
	for symbol, capital := range alloc {
		if math.Abs(capital-3000) > 1e-9 {
			t.Errorf("%s allocated %.2f, want 3000", symbol, capital)
		}
	}
}

func TestBySharpe_EmptyInput(t *testing.T) {
	if got := BySharpe(nil, 10000); len(got) != 0 {
		t.Errorf("empty input should yield empty allocation, got %v", got)
	}
}
