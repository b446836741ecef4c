package backtest

import "errors"

var (
	// ErrInvalidParameter rejects bad run parameters before any
	// computation begins.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrInsufficientHistory means the price series is too short for the
	// requested indicator windows.
	ErrInsufficientHistory = errors.New("insufficient price history")
)
