// Package simulator replays a signal series against price history and
// tracks the resulting cash/position state day by day. The strategy is
// always either fully invested or fully in cash; partial sizing does not
// exist, and downstream metrics rely on that.
package simulator

import (
	"fmt"
	"time"

	"Backsight/internal/model"
)

// state is the mutable portfolio state, touched exactly once per day.
type state struct {
	cash       float64
	shares     float64
	entryPrice float64 // meaningful only while shares > 0
	entryDate  time.Time
}

// Run walks the series strictly in date order and returns the daily equity
// trace (one point per bar, trade or not) plus the realized trade log. A nil
// stopLoss disables the stop-loss override; otherwise a close below
// entry*(1-stopLoss) while holding forces an exit before the day's signal is
// even considered, and STOP_LOSS is the recorded reason when both would fire.
//
// The final day is never force-liquidated: equity marks any open position to
// market.
func Run(series model.PriceSeries, signals []model.SignalRow, initialCapital float64, stopLoss *float64) ([]float64, []model.Trade, error) {
	if len(signals) != len(series.Bars) {
		return nil, nil, fmt.Errorf("simulator: %d signal rows for %d bars", len(signals), len(series.Bars))
	}

	st := state{cash: initialCapital}
	equity := make([]float64, 0, len(series.Bars))
	var trades []model.Trade

	for i, bar := range series.Bars {
		close := bar.Close

		switch {
		case st.shares > 0 && stopLoss != nil && close < st.entryPrice*(1-*stopLoss):
			trades = append(trades, st.sell(bar.Date, close, model.ExitStopLoss))

		case signals[i].Target == model.PositionLong && st.shares == 0 && st.cash > 0:
			st.buy(bar.Date, close)

		case signals[i].Target == model.PositionFlat && st.shares > 0:
			trades = append(trades, st.sell(bar.Date, close, model.ExitSignal))
		}

		equity = append(equity, st.cash+st.shares*close)
	}

	return equity, trades, nil
}

func (st *state) buy(date time.Time, price float64) {
	st.shares = st.cash / price
	st.cash = 0
	st.entryPrice = price
	st.entryDate = date
}

func (st *state) sell(date time.Time, price float64, reason model.ExitReason) model.Trade {
	trade := model.Trade{
		EntryDate:  st.entryDate,
		EntryPrice: st.entryPrice,
		ExitDate:   date,
		ExitPrice:  price,
		Shares:     st.shares,
		ExitReason: reason,
		Profit:     st.shares * (price - st.entryPrice),
	}
	st.cash = st.shares * price
	st.shares = 0
	st.entryPrice = 0
	return trade
}
