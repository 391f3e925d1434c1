package reporting

import (
	"fmt"
	"os"
	"strings"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// ConsoleReporter renders plans and backtest results as terminal tables
type ConsoleReporter struct{}

// NewConsoleReporter creates a new console reporter
func NewConsoleReporter() *ConsoleReporter {
	return &ConsoleReporter{}
}

// OutputPlan prints the full ladder plan: entry rungs, position summary, risk
// levels and the take-profit scenarios.
func (r *ConsoleReporter) OutputPlan(cfg *planner.Config, result *planner.Result) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("📊 %s %s ENTRY LADDER\n", cfg.Mode, cfg.Direction)
	fmt.Println(strings.Repeat("=", 50))

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleRounded)
	header := table.Row{"#", "Price", "Volume", "Coins"}
	if cfg.Mode == planner.ModeRange {
		header = append(header, "Weight")
	}
	t.AppendHeader(header)
	for _, entry := range result.Entries {
		row := table.Row{
			entry.Level,
			fmt.Sprintf("%.4f", entry.Price),
			fmt.Sprintf("$%.2f", entry.Volume),
			fmt.Sprintf("%.6f", entry.CoinSize),
		}
		if cfg.Mode == planner.ModeRange {
			row = append(row, fmt.Sprintf("%.2f", entry.Weight))
		}
		t.AppendRow(row)
	}
	t.Render()

	fmt.Printf("\n💰 Capital:         $%.2f (x%.0f leverage)\n", cfg.Capital, cfg.Leverage)
	fmt.Printf("📈 Average Entry:   %.4f\n", result.AvgPrice)
	fmt.Printf("📊 Total Volume:    $%.2f\n", result.TotalVolume)
	fmt.Printf("🪙 Total Coins:     %.6f\n", result.TotalCoins)
	fmt.Printf("🏦 Total Margin:    $%.2f\n", result.TotalMargin)

	if result.Underfunded {
		fmt.Println(text.FgRed.Sprint("❌ UNDERFUNDED: required margin exceeds capital, no liquidation estimate"))
	} else {
		if result.LiquidationPrice != nil {
			fmt.Printf("⚠️  Liquidation:     %.4f\n", *result.LiquidationPrice)
		}
		if result.SuggestedStopLoss != nil {
			fmt.Printf("🛑 Stop Loss:       %.4f (loss $%.2f)\n", *result.SuggestedStopLoss, result.LossAtStopLoss)
		}
	}
	if result.RangeUnsafe {
		fmt.Println(text.FgYellow.Sprint("⚠️  Estimated liquidation falls inside the configured range"))
	}

	fmt.Println()
	exits := table.NewWriter()
	exits.SetOutputMirror(os.Stdout)
	exits.SetStyle(table.StyleRounded)
	exits.SetTitle("Take-Profit Scenarios")
	exits.AppendHeader(table.Row{"Target", "Exit Price", "PnL", "ROE"})
	for _, exit := range result.Exits {
		exits.AppendRow(table.Row{
			fmt.Sprintf("+%.0f%%", exit.TargetPercent),
			fmt.Sprintf("%.4f", exit.Price),
			fmt.Sprintf("$%.2f", exit.PnL),
			fmt.Sprintf("%.1f%%", exit.ROE),
		})
	}
	exits.Render()
}

// OutputResults prints backtest results to console
func (r *ConsoleReporter) OutputResults(result *backtest.Result) {
	fmt.Println("\n" + strings.Repeat("=", 50))
	fmt.Printf("📊 RECURRING PURCHASE BACKTEST: %s\n", result.Symbol)
	fmt.Println(strings.Repeat("=", 50))

	fmt.Printf("💰 Total Invested:  $%.2f\n", result.TotalInvested)
	fmt.Printf("💰 Current Value:   $%.2f\n", result.CurrentValue)
	fmt.Printf("🪙 Total Coins:     %.6f\n", result.TotalCoins)
	fmt.Printf("📈 Average Price:   %.4f\n", result.AvgPrice)
	fmt.Printf("🔄 Purchases:       %d\n", result.BuyCount)

	pnlText := fmt.Sprintf("$%.2f (%.2f%%)", result.PnL, result.ROE)
	if result.PnL >= 0 {
		fmt.Printf("✅ PnL:             %s\n", text.FgGreen.Sprint(pnlText))
	} else {
		fmt.Printf("❌ PnL:             %s\n", text.FgRed.Sprint(pnlText))
	}

	if len(result.History) > 0 {
		first := result.History[0]
		last := result.History[len(result.History)-1]
		fmt.Printf("📅 History:         %s → %s (%d days)\n", first.Date, last.Date, len(result.History))
	}
}

// Package-level convenience functions
func OutputPlan(cfg *planner.Config, result *planner.Result) {
	NewConsoleReporter().OutputPlan(cfg, result)
}

func OutputConsole(result *backtest.Result) {
	NewConsoleReporter().OutputResults(result)
}
