package model

import "time"

// ExitReason indicates why a position was closed.
type ExitReason string

const (
	ExitSignal   ExitReason = "SIGNAL"
	ExitStopLoss ExitReason = "STOP_LOSS"
)

// Trade is one completed round trip. Created when a position is closed and
// immutable afterwards.
type Trade struct {
	EntryDate  time.Time
	EntryPrice float64
	ExitDate   time.Time
	ExitPrice  float64
	Shares     float64
	ExitReason ExitReason
	Profit     float64 // realized, Shares * (ExitPrice - EntryPrice)
}

// Won reports whether the trade closed with a positive realized profit.
func (t Trade) Won() bool { return t.Profit > 0 }
