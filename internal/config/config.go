package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Symbols   []string `yaml:"symbols"`
	StartDate string   `yaml:"start_date"` // YYYY-MM-DD
	EndDate   string   `yaml:"end_date"`   // YYYY-MM-DD, empty means today

	Strategy struct {
		FastWindow int     `yaml:"fast_window"`
		SlowWindow int     `yaml:"slow_window"`
		OscPeriod  int     `yaml:"osc_period"`
		UseFilter  bool    `yaml:"use_filter"`
		StopLoss   float64 `yaml:"stop_loss"` // fraction in (0,1), 0 disables
	} `yaml:"strategy"`

	Capital struct {
		Initial float64 `yaml:"initial"` // per single-symbol run
		Total   float64 `yaml:"total"`   // portfolio pool
	} `yaml:"capital"`

	Allocation struct {
		EqualWeight bool `yaml:"equal_weight"`
	} `yaml:"allocation"`

	DataSource struct {
		Provider string `yaml:"provider"` // yahoo | finance-go | mock
	} `yaml:"data_source"`

	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`

	Schedule struct {
		Cron string `yaml:"cron"`
	} `yaml:"schedule"`

	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("BACKSIGHT_SYMBOLS"); v != "" {
		cfg.Symbols = strings.Split(v, ",")
		for i := range cfg.Symbols {
			cfg.Symbols[i] = strings.TrimSpace(cfg.Symbols[i])
		}
	}
	if v := os.Getenv("BACKSIGHT_PROVIDER"); v != "" {
		cfg.DataSource.Provider = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}
	if v := os.Getenv("BACKSIGHT_CRON"); v != "" {
		cfg.Schedule.Cron = v
	}

	// Defaults
	if cfg.Strategy.FastWindow == 0 {
		cfg.Strategy.FastWindow = 20
	}
	if cfg.Strategy.SlowWindow == 0 {
		cfg.Strategy.SlowWindow = 50
	}
	if cfg.Strategy.OscPeriod == 0 {
		cfg.Strategy.OscPeriod = 14
	}
	if cfg.Capital.Initial == 0 {
		cfg.Capital.Initial = 100000
	}
	if cfg.Capital.Total == 0 {
		cfg.Capital.Total = cfg.Capital.Initial
	}
	if cfg.DataSource.Provider == "" {
		cfg.DataSource.Provider = "yahoo"
	}
	if cfg.EndDate == "" {
		cfg.EndDate = time.Now().Format("2006-01-02")
	}

	return cfg, nil
}

// Validate checks that all required fields are set and consistent.
func (c *Config) Validate() error {
	if len(c.Symbols) == 0 {
		return fmt.Errorf("symbols must not be empty")
	}
	start, err := c.Start()
	if err != nil {
		return fmt.Errorf("start_date: %w", err)
	}
	end, err := c.End()
	if err != nil {
		return fmt.Errorf("end_date: %w", err)
	}
	if !end.After(start) {
		return fmt.Errorf("end_date must be after start_date")
	}
	if c.Capital.Initial <= 0 || c.Capital.Total <= 0 {
		return fmt.Errorf("capital must be positive")
	}
	if c.Strategy.StopLoss < 0 || c.Strategy.StopLoss >= 1 {
		return fmt.Errorf("strategy.stop_loss must be inside [0,1)")
	}
	switch c.DataSource.Provider {
	case "yahoo", "finance-go", "mock":
	default:
		return fmt.Errorf("unknown data_source.provider %q", c.DataSource.Provider)
	}
	return nil
}

// Start parses the configured start date.
func (c *Config) Start() (time.Time, error) {
	return time.Parse("2006-01-02", c.StartDate)
}

// End parses the configured end date.
func (c *Config) End() (time.Time, error) {
	return time.Parse("2006-01-02", c.EndDate)
}

// StopLossPtr converts the configured stop-loss into the optional form the
// simulator takes; zero means disabled.
func (c *Config) StopLossPtr() *float64 {
	if c.Strategy.StopLoss == 0 {
		return nil
	}
	sl := c.Strategy.StopLoss
	return &sl
}
