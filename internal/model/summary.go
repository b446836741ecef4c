package model

// PerformanceSummary holds the scalar metrics computed from an equity trace.
// Sharpe is 0 when volatility is zero and WinRate is 0 when no trades
// closed; both are defined sentinel values rather than errors.
type PerformanceSummary struct {
	TotalReturn float64 // fraction, (last - first) / first
	NetProfit   float64 // currency, last - first
	SharpeRatio float64 // annualized, sqrt(252) factor
	MaxDrawdown float64 // fraction of running peak, >= 0
	WinRate     float64 // fraction of closed trades with positive profit
	TotalTrades int
}
