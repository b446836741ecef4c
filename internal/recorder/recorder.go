package recorder

import (
	"github.com/google/uuid"

	"Backsight/internal/model"
)

// RunRecord holds everything worth persisting about one single-symbol
// backtest run.
type RunRecord struct {
	RunID          string
	Symbol         string
	StartDate      string
	EndDate        string
	FastWindow     int
	SlowWindow     int
	OscPeriod      int
	UseFilter      bool
	StopLoss       float64 // 0 when disabled
	InitialCapital float64
	FinalEquity    float64
	Summary        model.PerformanceSummary
	Trades         []model.Trade
}

// AllocationRecord holds one symbol's share of a portfolio run.
type AllocationRecord struct {
	RunID   string // the portfolio run this allocation belongs to
	Symbol  string
	Capital float64
	Sharpe  float64
}

// Recorder persists backtest results for later analysis.
type Recorder interface {
	RecordRun(rec *RunRecord) error
	RecordAllocation(rec *AllocationRecord) error
	Close() error
}

// NewRunID returns a fresh identifier tying together the rows of one run.
func NewRunID() string {
	return uuid.New().String()
}
