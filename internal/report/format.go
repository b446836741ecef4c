// Package report renders backtest results as plain text for the CLI. It is
// presentation only; the core never depends on it.
package report

import (
	"fmt"
	"sort"
	"strings"

	"Backsight/internal/backtest"
)

// FormatSymbol formats a single-symbol backtest result.
func FormatSymbol(res *backtest.SymbolResult) string {
	var b strings.Builder

	s := res.Summary
	b.WriteString(fmt.Sprintf("--- Backtest Results: %s ---\n", res.Symbol))
	b.WriteString(fmt.Sprintf("Total Return:     %+.2f%%\n", s.TotalReturn*100))
	b.WriteString(fmt.Sprintf("Buy & Hold:       %+.2f%%\n", res.BuyHoldReturn*100))
	b.WriteString(fmt.Sprintf("Net Profit:       %+.2f\n", s.NetProfit))
	b.WriteString(fmt.Sprintf("Sharpe Ratio:     %.2f\n", s.SharpeRatio))
	b.WriteString(fmt.Sprintf("Maximum Drawdown: %.2f%%\n", s.MaxDrawdown*100))
	b.WriteString(fmt.Sprintf("Win Rate:         %.2f%%\n", s.WinRate*100))
	b.WriteString(fmt.Sprintf("Trades Closed:    %d\n", s.TotalTrades))

	if len(res.Trades) > 0 {
		b.WriteString("\nTrades:\n")
		for _, t := range res.Trades {
			b.WriteString(fmt.Sprintf("  %s %.2f -> %s %.2f  %-9s %+.2f\n",
				t.EntryDate.Format("2006-01-02"), t.EntryPrice,
				t.ExitDate.Format("2006-01-02"), t.ExitPrice,
				t.ExitReason, t.Profit))
		}
	}
	b.WriteString("--------------------------\n")
	return b.String()
}

// FormatPortfolio formats a portfolio allocation, highest capital first.
func FormatPortfolio(allocations map[string]backtest.Allocation, totalCapital float64) string {
	symbols := make([]string, 0, len(allocations))
	for symbol := range allocations {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool {
		return allocations[symbols[i]].Capital > allocations[symbols[j]].Capital
	})

	var b strings.Builder
	b.WriteString(fmt.Sprintf("--- Portfolio Allocation (%.2f total) ---\n", totalCapital))
	for _, symbol := range symbols {
		a := allocations[symbol]
		s := a.Result.Summary
		b.WriteString(fmt.Sprintf("%-8s %12.2f (%5.1f%%)  sharpe %.2f  return %+.2f%%  trades %d\n",
			symbol, a.Capital, a.Capital/totalCapital*100,
			s.SharpeRatio, s.TotalReturn*100, s.TotalTrades))
	}
	b.WriteString("-----------------------------------------\n")
	return b.String()
}
