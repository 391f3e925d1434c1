package main

import (
	"flag"
	"fmt"
)

// Defaults for the backtest command
const (
	DefaultAmount   = 100.0
	DefaultInterval = "1h"
	DefaultDays     = 365
)

// BacktestFlags holds all command line flags for the backtest command
type BacktestFlags struct {
	// Configuration
	ConfigFile *string
	DataFile   *string
	Symbol     *string
	Interval   *string
	Category   *string

	// Purchase rule
	Amount     *float64
	Frequency  *string
	TargetHour *int
	Weekday    *int
	MonthDay   *int

	// Time range for exchange fetches
	Days      *int
	StartDate *string
	EndDate   *string

	// Output options
	Output      *string
	ConsoleOnly *bool
	EnvFile     *string

	// Metrics endpoint
	MetricsPort *int

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewBacktestFlags creates and registers all backtest command line flags
func NewBacktestFlags() *BacktestFlags {
	return &BacktestFlags{
		ConfigFile: flag.String("config", "", "Path to backtest configuration file"),
		DataFile:   flag.String("data", "", "Path to historical data CSV (empty = fetch from exchange)"),
		Symbol:     flag.String("symbol", "BTCUSDT", "Trading symbol"),
		Interval:   flag.String("interval", DefaultInterval, "Data interval (5m, 15m, 1h, 4h, 1d)"),
		Category:   flag.String("category", "spot", "Market category (spot, linear)"),

		Amount:     flag.Float64("amount", DefaultAmount, "Purchase amount in USD per trigger"),
		Frequency:  flag.String("frequency", "DAILY", "Purchase frequency (DAILY, WEEKLY, MONTHLY)"),
		TargetHour: flag.Int("hour", 0, "UTC hour of day to buy (0-23)"),
		Weekday:    flag.Int("weekday", 1, "Weekday to buy for WEEKLY (0=Sunday .. 6=Saturday)"),
		MonthDay:   flag.Int("month-day", 1, "Day of month to buy for MONTHLY (1-28)"),

		Days:      flag.Int("days", DefaultDays, "History length in days when fetching from exchange"),
		StartDate: flag.String("start", "", "Start date YYYY-MM-DD (overrides -days)"),
		EndDate:   flag.String("end", "", "End date YYYY-MM-DD (default now)"),

		Output:      flag.String("output", "", "Output file (.json, .csv or .xlsx)"),
		ConsoleOnly: flag.Bool("console", false, "Console output only, skip file writing"),
		EnvFile:     flag.String("env", ".env", "Environment file with exchange credentials"),

		MetricsPort: flag.Int("metrics-port", 0, "Serve Prometheus metrics on this port (0 = disabled)"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show help message"),
	}
}

// PrintUsage prints detailed usage information
func PrintUsage() {
	fmt.Println(`
📊 RECURRING PURCHASE BACKTEST

Replays a fixed recurring buy over historical candles and reports invested
capital, portfolio value, PnL and the daily history.

USAGE:
  dca-backtest [flags]

EXAMPLES:
  # Buy $100 of BTC daily at 00:00 UTC over the last year
  dca-backtest -symbol BTCUSDT -amount 100 -frequency DAILY

  # Weekly Monday buys from a local CSV export
  dca-backtest -data data/ETHUSDT_1h.csv -symbol ETHUSDT -frequency WEEKLY -weekday 1

  # Monthly buys over a fixed window, exported to Excel
  dca-backtest -frequency MONTHLY -month-day 15 -start 2023-01-01 -output report.xlsx`)
	fmt.Println("\nFLAGS:")
	flag.PrintDefaults()
}
