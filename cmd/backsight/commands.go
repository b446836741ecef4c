package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"Backsight/internal/backtest"
	"Backsight/internal/config"
	"Backsight/internal/fetch"
	"Backsight/internal/recorder"
	"Backsight/internal/report"
	"Backsight/internal/scheduler"
)

func newRootCmd() *cobra.Command {
	var cfgPath string

	root := &cobra.Command{
		Use:           "backsight",
		Short:         "SMA-crossover strategy backtester",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.PersistentFlags().StringVarP(&cfgPath, "config", "c", "configs/config.yaml", "path to config file")

	root.AddCommand(newRunCmd(&cfgPath))
	root.AddCommand(newPortfolioCmd(&cfgPath))
	root.AddCommand(newWatchCmd(&cfgPath))
	return root
}

func loadConfig(path string) (*config.Config, error) {
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

func newFetcher(cfg *config.Config) fetch.Fetcher {
	switch cfg.DataSource.Provider {
	case "finance-go":
		return fetch.NewQuoteFetcher()
	case "mock":
		return &fetch.MockFetcher{BasePrice: 100, Drift: 0.001}
	default:
		return fetch.NewYahooFetcher(cfg.Proxy)
	}
}

func newRecorder(cfg *config.Config) recorder.Recorder {
	if cfg.Database.SQLitePath == "" {
		return recorder.NewNoopRecorder()
	}
	rec, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
	if err != nil {
		log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
		return recorder.NewNoopRecorder()
	}
	return rec
}

func paramsFromConfig(cfg *config.Config) backtest.Params {
	return backtest.Params{
		FastWindow:     cfg.Strategy.FastWindow,
		SlowWindow:     cfg.Strategy.SlowWindow,
		OscPeriod:      cfg.Strategy.OscPeriod,
		UseFilter:      cfg.Strategy.UseFilter,
		InitialCapital: cfg.Capital.Initial,
		StopLoss:       cfg.StopLossPtr(),
	}
}

func newRunCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "run [symbol]",
		Short: "Backtest a single symbol",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			symbol := cfg.Symbols[0]
			if len(args) == 1 {
				symbol = args[0]
			}

			start, _ := cfg.Start()
			end, _ := cfg.End()

			fetcher := newFetcher(cfg)
			log.Printf("[INFO] data source: %s", fetcher.Name())
			log.Printf("[INFO] fetching %s from %s to %s", symbol, cfg.StartDate, cfg.EndDate)

			series, err := fetcher.FetchDailyBars(symbol, start, end)
			if err != nil {
				return err
			}

			res, err := backtest.RunSymbol(series, paramsFromConfig(cfg))
			if err != nil {
				return err
			}
			fmt.Print(report.FormatSymbol(res))

			rec := newRecorder(cfg)
			defer rec.Close()
			if err := rec.RecordRun(&recorder.RunRecord{
				RunID:          recorder.NewRunID(),
				Symbol:         symbol,
				StartDate:      cfg.StartDate,
				EndDate:        cfg.EndDate,
				FastWindow:     cfg.Strategy.FastWindow,
				SlowWindow:     cfg.Strategy.SlowWindow,
				OscPeriod:      cfg.Strategy.OscPeriod,
				UseFilter:      cfg.Strategy.UseFilter,
				StopLoss:       cfg.Strategy.StopLoss,
				InitialCapital: cfg.Capital.Initial,
				FinalEquity:    res.Equity[len(res.Equity)-1],
				Summary:        res.Summary,
				Trades:         res.Trades,
			}); err != nil {
				log.Printf("[ERROR] record run: %v", err)
			}
			return nil
		},
	}
}

func newPortfolioCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "portfolio",
		Short: "Backtest all configured symbols and allocate capital",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}

			start, _ := cfg.Start()
			end, _ := cfg.End()

			fetcher := newFetcher(cfg)
			log.Printf("[INFO] data source: %s", fetcher.Name())

			perSymbol, err := fetch.All(fetcher, cfg.Symbols, start, end)
			if err != nil {
				return err
			}

			allocations, err := backtest.RunPortfolio(perSymbol, cfg.Capital.Total, paramsFromConfig(cfg), cfg.Allocation.EqualWeight)
			if err != nil {
				return err
			}
			fmt.Print(report.FormatPortfolio(allocations, cfg.Capital.Total))

			rec := newRecorder(cfg)
			defer rec.Close()
			runID := recorder.NewRunID()
			for symbol, a := range allocations {
				if err := rec.RecordAllocation(&recorder.AllocationRecord{
					RunID:   runID,
					Symbol:  symbol,
					Capital: a.Capital,
					Sharpe:  a.Result.Summary.SharpeRatio,
				}); err != nil {
					log.Printf("[ERROR] record allocation %s: %v", symbol, err)
				}
			}
			return nil
		},
	}
}

func newWatchCmd(cfgPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Re-run the portfolio backtest on the configured cron schedule",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*cfgPath)
			if err != nil {
				return err
			}
			if cfg.Schedule.Cron == "" {
				return fmt.Errorf("schedule.cron is required for watch mode")
			}

			fetcher := newFetcher(cfg)
			rec := newRecorder(cfg)
			defer rec.Close()

			sched := scheduler.NewScheduler(fetcher, rec, cfg)
			if err := sched.Register(cfg.Schedule.Cron); err != nil {
				return err
			}
			sched.Start()
			defer sched.Stop()

			if os.Getenv("RUN_ON_START") == "true" {
				log.Println("[INFO] RUN_ON_START enabled, refreshing now")
				go sched.RunNow()
			}

			log.Println("[INFO] watch mode running. Press Ctrl+C to stop.")
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			<-sigCh

			log.Println("[INFO] shutdown signal received, stopping...")
			return nil
		},
	}
}
