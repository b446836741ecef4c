package backtest

import "fmt"

// Params configures a single-symbol backtest run.
type Params struct {
	FastWindow     int
	SlowWindow     int
	OscPeriod      int
	UseFilter      bool
	InitialCapital float64
	StopLoss       *float64 // fraction in (0,1); nil disables the stop-loss
}

// Validate fails fast on parameters that would make the run meaningless.
func (p Params) Validate() error {
	if p.FastWindow <= 0 {
		return fmt.Errorf("%w: fast window %d must be positive", ErrInvalidParameter, p.FastWindow)
	}
	if p.SlowWindow <= p.FastWindow {
		return fmt.Errorf("%w: slow window %d must exceed fast window %d", ErrInvalidParameter, p.SlowWindow, p.FastWindow)
	}
	if p.OscPeriod <= 0 {
		return fmt.Errorf("%w: oscillator period %d must be positive", ErrInvalidParameter, p.OscPeriod)
	}
	if p.InitialCapital <= 0 {
		return fmt.Errorf("%w: initial capital %.2f must be positive", ErrInvalidParameter, p.InitialCapital)
	}
	if p.StopLoss != nil && (*p.StopLoss <= 0 || *p.StopLoss >= 1) {
		return fmt.Errorf("%w: stop-loss fraction %.4f must be inside (0,1)", ErrInvalidParameter, *p.StopLoss)
	}
	return nil
}

// minHistory is the shortest series the indicator stages can work with:
// the slow moving average and the oscillator both need their full lookback
// plus one prior close.
func (p Params) minHistory() int {
	n := p.SlowWindow
	if p.OscPeriod > n {
		n = p.OscPeriod
	}
	return n + 1
}
