package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
)

// PlannerConfig is the on-disk configuration for a strategy ladder run
type PlannerConfig struct {
	Strategy planner.Config `json:"strategy"`

	// Output controls
	OutputDir    string `json:"output_dir"`
	ExcelReport  bool   `json:"excel_report"`
	ConsoleColor bool   `json:"console_color"`
}

// BacktestConfig is the on-disk configuration for a recurring-purchase
// backtest run
type BacktestConfig struct {
	Symbol    string  `json:"symbol"`
	Interval  string  `json:"interval"`
	AmountUSD float64 `json:"amount_usd"`

	Rule backtest.PurchaseRule `json:"rule"`

	// Data source: a CSV path, or empty to fetch from the exchange
	DataFile  string `json:"data_file"`
	Category  string `json:"category"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	OutputDir string `json:"output_dir"`
}

// ExchangeConfig carries Bybit connection settings, read from the environment
// so credentials stay out of config files
type ExchangeConfig struct {
	APIKey    string
	APISecret string
	Testnet   bool
}

// LoadPlannerConfig reads and validates a planner configuration file
func LoadPlannerConfig(path string) (*PlannerConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &PlannerConfig{
		OutputDir:    "results",
		ConsoleColor: true,
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Strategy.Validate(); err != nil {
		return nil, fmt.Errorf("invalid strategy config: %w", err)
	}

	return cfg, nil
}

// LoadBacktestConfig reads and validates a backtest configuration file
func LoadBacktestConfig(path string) (*BacktestConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg := &BacktestConfig{
		Interval:  "1h",
		Category:  "spot",
		OutputDir: "results",
	}
	if err := json.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the backtest configuration for usable values
func (c *BacktestConfig) Validate() error {
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.AmountUSD <= 0 {
		return fmt.Errorf("amount_usd must be positive, got %.2f", c.AmountUSD)
	}
	if err := c.Rule.Validate(); err != nil {
		return fmt.Errorf("invalid purchase rule: %w", err)
	}
	return nil
}

// LoadExchangeConfig reads Bybit credentials from the environment. Callers
// that support a .env file load it first, see common.LoadEnvFile.
func LoadExchangeConfig() ExchangeConfig {
	testnet, _ := strconv.ParseBool(os.Getenv("BYBIT_TESTNET"))
	return ExchangeConfig{
		APIKey:    os.Getenv("BYBIT_API_KEY"),
		APISecret: os.Getenv("BYBIT_API_SECRET"),
		Testnet:   testnet,
	}
}
