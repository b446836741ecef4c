package model

import "time"

// Position is the discrete target position for one day.
type Position string

const (
	PositionLong Position = "LONG"
	PositionFlat Position = "FLAT"
)

// CrossEvent is the raw moving-average crossover event, recorded before the
// oscillator filter is applied so that vetoed crossings stay auditable.
type CrossEvent string

const (
	CrossUp   CrossEvent = "CROSS_UP"
	CrossDown CrossEvent = "CROSS_DOWN"
	CrossNone CrossEvent = "NONE"
)

// SignalRow is the per-day output of the signal generator. Target changes
// only on a crossover event that survives filtering; otherwise it carries
// forward from the previous day. Day 0 starts FLAT.
type SignalRow struct {
	Date   time.Time
	Event  CrossEvent
	Target Position
}
