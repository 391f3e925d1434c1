package reporting

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
)

// CSVReporter writes plans and backtest results as CSV files
type CSVReporter struct{}

// NewCSVReporter creates a new CSV reporter
func NewCSVReporter() *CSVReporter {
	return &CSVReporter{}
}

// WritePlanCSV writes the entry ladder to a CSV file. An .xlsx path is
// delegated to the Excel writer.
func (r *CSVReporter) WritePlanCSV(cfg *planner.Config, result *planner.Result, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WritePlanXLSX(cfg, result, path)
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Level", "Price", "Volume_USD", "Coin_Size", "Weight"}); err != nil {
		return err
	}
	for _, entry := range result.Entries {
		row := []string{
			strconv.Itoa(entry.Level),
			fmt.Sprintf("%.8f", entry.Price),
			fmt.Sprintf("%.2f", entry.Volume),
			fmt.Sprintf("%.8f", entry.CoinSize),
			fmt.Sprintf("%.4f", entry.Weight),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	summary := fmt.Sprintf("SUMMARY: avg_price=%.8f; total_volume=%.2f; total_margin=%.2f; entries=%d",
		result.AvgPrice, result.TotalVolume, result.TotalMargin, len(result.Entries))
	summaryRow := make([]string, 5)
	summaryRow[4] = summary
	return w.Write(summaryRow)
}

// WriteHistoryCSV writes the daily portfolio history to a CSV file
func (r *CSVReporter) WriteHistoryCSV(result *backtest.Result, path string) error {
	if strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		return WriteBacktestXLSX(result, path)
	}
	if err := ensureParentDir(path); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"Date", "Value", "Invested"}); err != nil {
		return err
	}
	for _, point := range result.History {
		row := []string{
			point.Date,
			fmt.Sprintf("%.2f", point.Value),
			fmt.Sprintf("%.2f", point.Invested),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

// Package-level convenience functions
func WritePlanCSV(cfg *planner.Config, result *planner.Result, path string) error {
	return NewCSVReporter().WritePlanCSV(cfg, result, path)
}

func WriteHistoryCSV(result *backtest.Result, path string) error {
	return NewCSVReporter().WriteHistoryCSV(result, path)
}
