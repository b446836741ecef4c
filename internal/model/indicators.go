package model

import "time"

// Value is a derived indicator value that may not be available yet.
// Moving averages and the oscillator are undefined until their lookback
// window is full; that is routine warm-up, not an error.
type Value struct {
	Float64 float64
	Valid   bool
}

// ValueOf wraps a defined float64.
func ValueOf(f float64) Value { return Value{Float64: f, Valid: true} }

// Undefined is the not-yet-available sentinel.
var Undefined = Value{}

// IndicatorRow holds the derived values for one trading day, aligned 1:1
// with the Bar of the same date.
type IndicatorRow struct {
	Date       time.Time
	Close      float64
	FastMA     Value
	SlowMA     Value
	Oscillator Value // 0-100 momentum score
}
