// Package signal turns indicator series into a discrete LONG/FLAT target
// position per day: a fast/slow moving-average crossover, optionally gated
// by the momentum oscillator.
package signal

import "Backsight/internal/model"

// Oscillator veto thresholds.
const (
	overboughtLevel = 70.0
	oversoldLevel   = 30.0
)

// relation is the fast-vs-slow ordering on the most recent day where both
// moving averages were defined. The warm-up prefix counts as "equal", so
// the first defined day already above the slow average registers as a
// CROSS_UP rather than being swallowed.
type relation int

const (
	fastEqual relation = iota
	fastBelow
	fastAbove
)

// Generate produces one SignalRow per indicator row, in input order.
//
// A CROSS_UP (fast MA crossing above slow MA) targets LONG; a CROSS_DOWN
// targets FLAT. With useFilter set, a CROSS_UP into an overbought market
// (oscillator > 70) and a CROSS_DOWN in an oversold market (oscillator < 30)
// are vetoed and the prior target carries forward. Days with undefined
// moving averages produce no event, and day 0 starts FLAT.
func Generate(rows []model.IndicatorRow, useFilter bool) []model.SignalRow {
	out := make([]model.SignalRow, len(rows))

	target := model.PositionFlat
	prev := fastEqual
	for i, row := range rows {
		event := model.CrossNone

		if row.FastMA.Valid && row.SlowMA.Valid {
			cur := compare(row.FastMA.Float64, row.SlowMA.Float64)
			switch {
			case prev != fastAbove && cur == fastAbove:
				event = model.CrossUp
			case prev != fastBelow && cur == fastBelow:
				event = model.CrossDown
			}
			prev = cur
		}

		switch event {
		case model.CrossUp:
			if !(useFilter && row.Oscillator.Valid && row.Oscillator.Float64 > overboughtLevel) {
				target = model.PositionLong
			}
		case model.CrossDown:
			if !(useFilter && row.Oscillator.Valid && row.Oscillator.Float64 < oversoldLevel) {
				target = model.PositionFlat
			}
		}

		out[i] = model.SignalRow{
			Date:   row.Date,
			Event:  event,
			Target: target,
		}
	}
	return out
}

func compare(fast, slow float64) relation {
	switch {
	case fast > slow:
		return fastAbove
	case fast < slow:
		return fastBelow
	default:
		return fastEqual
	}
}
