// Package calculator derives per-day indicator series (moving averages and
// the momentum oscillator) from raw price history. It is a pure function of
// its input: no state is retained between calls, and days without enough
// history get undefined values rather than errors.
package calculator

import "Backsight/internal/model"

// Compute produces one IndicatorRow per input bar, in input order. Window
// parameters are assumed validated by the caller; a window larger than the
// series simply leaves every value undefined.
func Compute(series model.PriceSeries, fastWindow, slowWindow, oscPeriod int) []model.IndicatorRow {
	closes := series.Closes()

	fast := smaSeries(closes, fastWindow)
	slow := smaSeries(closes, slowWindow)
	osc := oscillatorSeries(closes, oscPeriod)

	rows := make([]model.IndicatorRow, len(series.Bars))
	for i, bar := range series.Bars {
		rows[i] = model.IndicatorRow{
			Date:       bar.Date,
			Close:      bar.Close,
			FastMA:     fast[i],
			SlowMA:     slow[i],
			Oscillator: osc[i],
		}
	}
	return rows
}
