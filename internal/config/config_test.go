package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

const sampleYAML = `
symbols: [AAPL, MSFT]
start_date: "2023-01-01"
end_date: "2024-01-01"
strategy:
  fast_window: 10
  slow_window: 30
  osc_period: 14
  use_filter: true
  stop_loss: 0.1
capital:
  initial: 50000
  total: 200000
data_source:
  provider: yahoo
database:
  sqlite_path: backsight.db
schedule:
  cron: "0 0 18 * * 1-5"
`

func TestLoad_ParsesYAML(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "AAPL" {
		t.Errorf("symbols = %v", cfg.Symbols)
	}
	if cfg.Strategy.FastWindow != 10 || cfg.Strategy.SlowWindow != 30 {
		t.Errorf("windows = %d/%d, want 10/30", cfg.Strategy.FastWindow, cfg.Strategy.SlowWindow)
	}
	if !cfg.Strategy.UseFilter {
		t.Error("use_filter not parsed")
	}
	if cfg.Capital.Initial != 50000 || cfg.Capital.Total != 200000 {
		t.Errorf("capital = %+v", cfg.Capital)
	}
	if cfg.Schedule.Cron != "0 0 18 * * 1-5" {
		t.Errorf("cron = %q", cfg.Schedule.Cron)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config should validate: %v", err)
	}
}

func TestLoad_AppliesDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "symbols: [SPY]\nstart_date: \"2023-01-01\"\n"))
	if err != nil {
		t.Fatal(err)
	}

	if cfg.Strategy.FastWindow != 20 || cfg.Strategy.SlowWindow != 50 || cfg.Strategy.OscPeriod != 14 {
		t.Errorf("strategy defaults = %+v", cfg.Strategy)
	}
	if cfg.Capital.Initial != 100000 {
		t.Errorf("initial capital default = %.0f, want 100000", cfg.Capital.Initial)
	}
	if cfg.Capital.Total != cfg.Capital.Initial {
		t.Errorf("total capital should default to initial, got %.0f", cfg.Capital.Total)
	}
	if cfg.DataSource.Provider != "yahoo" {
		t.Errorf("provider default = %q, want yahoo", cfg.DataSource.Provider)
	}
	if cfg.EndDate == "" {
		t.Error("end_date should default to today")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if cfg.Strategy.FastWindow != 20 {
		t.Errorf("defaults not applied, fast_window = %d", cfg.Strategy.FastWindow)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("BACKSIGHT_SYMBOLS", "TSLA, NVDA")
	t.Setenv("BACKSIGHT_PROVIDER", "mock")
	t.Setenv("SQLITE_PATH", "/tmp/override.db")

	cfg, err := Load(writeConfig(t, sampleYAML))
	if err != nil {
		t.Fatal(err)
	}

	if len(cfg.Symbols) != 2 || cfg.Symbols[0] != "TSLA" || cfg.Symbols[1] != "NVDA" {
		t.Errorf("symbols = %v, want [TSLA NVDA]", cfg.Symbols)
	}
	if cfg.DataSource.Provider != "mock" {
		t.Errorf("provider = %q, want mock", cfg.DataSource.Provider)
	}
	if cfg.Database.SQLitePath != "/tmp/override.db" {
		t.Errorf("sqlite path = %q", cfg.Database.SQLitePath)
	}
}

func TestValidate_Rejections(t *testing.T) {
	base := func() *Config {
		cfg, err := Load(writeConfig(t, sampleYAML))
		if err != nil {
			t.Fatal(err)
		}
		return cfg
	}

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no symbols", func(c *Config) { c.Symbols = nil }},
		{"bad start date", func(c *Config) { c.StartDate = "01/01/2023" }},
		{"end before start", func(c *Config) { c.EndDate = "2022-01-01" }},
		{"negative capital", func(c *Config) { c.Capital.Initial = -1 }},
		{"stop loss too large", func(c *Config) { c.Strategy.StopLoss = 1.0 }},
		{"unknown provider", func(c *Config) { c.DataSource.Provider = "bloomberg" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestStopLossPtr(t *testing.T) {
	cfg := &Config{}
	if cfg.StopLossPtr() != nil {
		t.Error("zero stop-loss should map to nil")
	}
	cfg.Strategy.StopLoss = 0.15
	p := cfg.StopLossPtr()
	if p == nil || *p != 0.15 {
		t.Errorf("stop-loss pointer = %v, want 0.15", p)
	}
}
