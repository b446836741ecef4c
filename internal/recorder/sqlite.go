package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists backtest results to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while a run is being written.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id              INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id          TEXT NOT NULL,
			timestamp       INTEGER NOT NULL,
			symbol          TEXT NOT NULL,
			start_date      TEXT,
			end_date        TEXT,
			fast_window     INTEGER,
			slow_window     INTEGER,
			osc_period      INTEGER,
			use_filter      INTEGER,
			stop_loss       REAL,
			initial_capital REAL,
			final_equity    REAL,
			total_return    REAL,
			net_profit      REAL,
			sharpe_ratio    REAL,
			max_drawdown    REAL,
			win_rate        REAL,
			total_trades    INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_run_id ON runs(run_id)`,
		`CREATE INDEX IF NOT EXISTS idx_runs_ts ON runs(timestamp)`,

		`CREATE TABLE IF NOT EXISTS trades (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			symbol      TEXT NOT NULL,
			entry_date  TEXT,
			entry_price REAL,
			exit_date   TEXT,
			exit_price  REAL,
			shares      REAL,
			exit_reason TEXT,
			profit      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_trades_run_id ON trades(run_id)`,

		`CREATE TABLE IF NOT EXISTS allocations (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			capital   REAL,
			sharpe    REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alloc_run_id ON allocations(run_id)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordRun(rec *RunRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().Unix()
	s := rec.Summary

	_, err := r.db.Exec(`INSERT INTO runs
		(run_id, timestamp, symbol, start_date, end_date,
		 fast_window, slow_window, osc_period, use_filter, stop_loss,
		 initial_capital, final_equity,
		 total_return, net_profit, sharpe_ratio, max_drawdown, win_rate, total_trades)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		rec.RunID, now, rec.Symbol, rec.StartDate, rec.EndDate,
		rec.FastWindow, rec.SlowWindow, rec.OscPeriod, rec.UseFilter, rec.StopLoss,
		rec.InitialCapital, rec.FinalEquity,
		s.TotalReturn, s.NetProfit, s.SharpeRatio, s.MaxDrawdown, s.WinRate, s.TotalTrades,
	)
	if err != nil {
		return err
	}

	for _, t := range rec.Trades {
		_, err := r.db.Exec(`INSERT INTO trades
			(run_id, symbol, entry_date, entry_price, exit_date, exit_price, shares, exit_reason, profit)
			VALUES (?,?,?,?,?,?,?,?,?)`,
			rec.RunID, rec.Symbol,
			t.EntryDate.Format("2006-01-02"), t.EntryPrice,
			t.ExitDate.Format("2006-01-02"), t.ExitPrice,
			t.Shares, string(t.ExitReason), t.Profit,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAllocation(rec *AllocationRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO allocations
		(run_id, timestamp, symbol, capital, sharpe)
		VALUES (?,?,?,?,?)`,
		rec.RunID, time.Now().Unix(), rec.Symbol, rec.Capital, rec.Sharpe,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
