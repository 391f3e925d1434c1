package main

import (
	"flag"
	"fmt"
)

// Defaults for the planner command
const (
	DefaultCapital  = 1000.0
	DefaultLeverage = 10.0
	DefaultEntries  = 5
	DefaultGrid     = 8
	DefaultMult     = 1.3
)

// PlannerFlags holds all command line flags for the planner command
type PlannerFlags struct {
	// Configuration
	ConfigFile *string

	// Position settings
	Capital   *float64
	Leverage  *float64
	Direction *string
	Mode      *string
	Price     *float64

	// Classic ladder parameters
	Entries *int

	// Range ladder parameters
	RangeMin   *float64
	RangeMax   *float64
	GridCount  *int
	Multiplier *float64

	// Live price lookup
	Symbol   *string
	Category *string
	EnvFile  *string

	// Output options
	Output      *string
	ConsoleOnly *bool

	// Help and version
	ShowVersion *bool
	ShowHelp    *bool
}

// NewPlannerFlags creates and registers all planner command line flags
func NewPlannerFlags() *PlannerFlags {
	return &PlannerFlags{
		ConfigFile: flag.String("config", "", "Path to planner configuration file"),

		Capital:   flag.Float64("capital", DefaultCapital, "Account capital in USD"),
		Leverage:  flag.Float64("leverage", DefaultLeverage, "Position leverage"),
		Direction: flag.String("direction", "LONG", "Position direction (LONG, SHORT)"),
		Mode:      flag.String("mode", "CLASSIC", "Ladder mode (CLASSIC, RANGE)"),
		Price:     flag.Float64("price", 0, "Reference price (0 = fetch live from exchange)"),

		Entries: flag.Int("entries", DefaultEntries, "Number of ladder entries (CLASSIC mode)"),

		RangeMin:   flag.Float64("range-min", 0, "Lower bound of the price range (RANGE mode)"),
		RangeMax:   flag.Float64("range-max", 0, "Upper bound of the price range (RANGE mode)"),
		GridCount:  flag.Int("grid", DefaultGrid, "Number of grid levels (RANGE mode)"),
		Multiplier: flag.Float64("multiplier", DefaultMult, "Volume multiplier between levels (RANGE mode)"),

		Symbol:   flag.String("symbol", "BTCUSDT", "Symbol for live price lookup"),
		Category: flag.String("category", "linear", "Market category (spot, linear)"),
		EnvFile:  flag.String("env", ".env", "Environment file with exchange credentials"),

		Output:      flag.String("output", "", "Output file (.json, .csv or .xlsx)"),
		ConsoleOnly: flag.Bool("console", false, "Console output only, skip file writing"),

		ShowVersion: flag.Bool("version", false, "Show version information"),
		ShowHelp:    flag.Bool("help", false, "Show help message"),
	}
}

// PrintUsage prints detailed usage information
func PrintUsage() {
	fmt.Println(`
🎯 DCA STRATEGY PLANNER

Computes a martingale entry ladder with average price, margin, liquidation
estimate, stop-loss suggestion and take-profit scenarios.

USAGE:
  planner [flags]

EXAMPLES:
  # Classic 5-entry LONG ladder at a fixed price
  planner -mode CLASSIC -direction LONG -price 65000 -capital 2000 -leverage 10

  # Range ladder over 60000-70000 with live price lookup
  planner -mode RANGE -symbol BTCUSDT -range-min 60000 -range-max 70000 -grid 10

  # Load everything from a config file and export to Excel
  planner -config configs/btc_long.json -output plan.xlsx`)
	fmt.Println("\nFLAGS:")
	flag.PrintDefaults()
}
