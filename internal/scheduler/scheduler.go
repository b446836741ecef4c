// Package scheduler re-runs the configured portfolio backtest on a cron
// schedule, with the end date sliding forward to the current day each run.
package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"Backsight/internal/backtest"
	"Backsight/internal/config"
	"Backsight/internal/fetch"
	"Backsight/internal/recorder"
	"Backsight/internal/report"
)

// Scheduler manages the periodic portfolio refresh task.
type Scheduler struct {
	Cron     *cron.Cron
	Fetcher  fetch.Fetcher
	Recorder recorder.Recorder
	Cfg      *config.Config
}

// NewScheduler creates a Scheduler.
func NewScheduler(f fetch.Fetcher, rec recorder.Recorder, cfg *config.Config) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Fetcher:  f,
		Recorder: rec,
		Cfg:      cfg,
	}
}

// Register adds the refresh task under the given cron expression.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Println("[INFO] running portfolio refresh")

	start, err := s.Cfg.Start()
	if err != nil {
		log.Printf("[ERROR] refresh start date: %v", err)
		return
	}
	end := time.Now()

	perSymbol, err := fetch.All(s.Fetcher, s.Cfg.Symbols, start, end)
	if err != nil {
		log.Printf("[ERROR] refresh fetch: %v", err)
		return
	}

	params := backtest.Params{
		FastWindow:     s.Cfg.Strategy.FastWindow,
		SlowWindow:     s.Cfg.Strategy.SlowWindow,
		OscPeriod:      s.Cfg.Strategy.OscPeriod,
		UseFilter:      s.Cfg.Strategy.UseFilter,
		InitialCapital: s.Cfg.Capital.Initial,
		StopLoss:       s.Cfg.StopLossPtr(),
	}

	allocations, err := backtest.RunPortfolio(perSymbol, s.Cfg.Capital.Total, params, s.Cfg.Allocation.EqualWeight)
	if err != nil {
		log.Printf("[ERROR] refresh backtest: %v", err)
		return
	}

	log.Printf("[INFO] portfolio refresh done:\n%s", report.FormatPortfolio(allocations, s.Cfg.Capital.Total))

	runID := recorder.NewRunID()
	endDate := end.Format("2006-01-02")
	for symbol, a := range allocations {
		res := a.Result
		if err := s.Recorder.RecordRun(&recorder.RunRecord{
			RunID:          runID,
			Symbol:         symbol,
			StartDate:      s.Cfg.StartDate,
			EndDate:        endDate,
			FastWindow:     params.FastWindow,
			SlowWindow:     params.SlowWindow,
			OscPeriod:      params.OscPeriod,
			UseFilter:      params.UseFilter,
			StopLoss:       s.Cfg.Strategy.StopLoss,
			InitialCapital: params.InitialCapital,
			FinalEquity:    res.Equity[len(res.Equity)-1],
			Summary:        res.Summary,
			Trades:         res.Trades,
		}); err != nil {
			log.Printf("[ERROR] record run %s: %v", symbol, err)
		}
		if err := s.Recorder.RecordAllocation(&recorder.AllocationRecord{
			RunID:   runID,
			Symbol:  symbol,
			Capital: a.Capital,
			Sharpe:  res.Summary.SharpeRatio,
		}); err != nil {
			log.Printf("[ERROR] record allocation %s: %v", symbol, err)
		}
	}
}
