package reporting

import (
	"fmt"
	"os"
	"path/filepath"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
	"github.com/xuri/excelize/v2"
)

// ExcelReporter writes plans and backtest results as styled workbooks
type ExcelReporter struct{}

// NewExcelReporter creates a new Excel reporter
func NewExcelReporter() *ExcelReporter {
	return &ExcelReporter{}
}

type excelStyles struct {
	Header   int
	Currency int
	Percent  int
	Base     int
}

func createStyles(fx *excelize.File) (excelStyles, error) {
	var styles excelStyles
	var err error

	styles.Header, err = fx.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold:   true,
			Size:   11,
			Color:  "FFFFFF",
			Family: "Calibri",
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"2F4F4F"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return styles, err
	}

	styles.Currency, err = fx.NewStyle(&excelize.Style{
		NumFmt:    7,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.Percent, err = fx.NewStyle(&excelize.Style{
		NumFmt:    9,
		Alignment: &excelize.Alignment{Horizontal: "right"},
	})
	if err != nil {
		return styles, err
	}

	styles.Base, err = fx.NewStyle(&excelize.Style{
		Border: []excelize.Border{
			{Type: "bottom", Color: "E0E0E0", Style: 1},
		},
	})
	return styles, err
}

func ensureParentDir(path string) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}
	return nil
}

// WritePlanXLSX writes a ladder plan workbook with Entries and Exits sheets
func (r *ExcelReporter) WritePlanXLSX(cfg *planner.Config, result *planner.Result, path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const entriesSheet = "Entries"
	const exitsSheet = "Exits"
	fx.SetSheetName(fx.GetSheetName(0), entriesSheet)
	fx.NewSheet(exitsSheet)

	styles, err := createStyles(fx)
	if err != nil {
		return err
	}

	headers := []string{"Level", "Price", "Volume (USD)", "Coin Size", "Weight"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(entriesSheet, cell, h)
		fx.SetCellStyle(entriesSheet, cell, cell, styles.Header)
	}
	for i, entry := range result.Entries {
		row := i + 2
		fx.SetCellValue(entriesSheet, fmt.Sprintf("A%d", row), entry.Level)
		fx.SetCellValue(entriesSheet, fmt.Sprintf("B%d", row), entry.Price)
		fx.SetCellValue(entriesSheet, fmt.Sprintf("C%d", row), entry.Volume)
		fx.SetCellValue(entriesSheet, fmt.Sprintf("D%d", row), entry.CoinSize)
		fx.SetCellValue(entriesSheet, fmt.Sprintf("E%d", row), entry.Weight)
		fx.SetCellStyle(entriesSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), styles.Currency)
	}

	// Position summary below the ladder
	summaryRow := len(result.Entries) + 4
	summary := [][2]interface{}{
		{"Mode", string(cfg.Mode)},
		{"Direction", string(cfg.Direction)},
		{"Capital", cfg.Capital},
		{"Leverage", cfg.Leverage},
		{"Average Entry", result.AvgPrice},
		{"Total Volume", result.TotalVolume},
		{"Total Coins", result.TotalCoins},
		{"Total Margin", result.TotalMargin},
	}
	if result.LiquidationPrice != nil {
		summary = append(summary, [2]interface{}{"Liquidation", *result.LiquidationPrice})
	}
	if result.SuggestedStopLoss != nil {
		summary = append(summary, [2]interface{}{"Stop Loss", *result.SuggestedStopLoss})
		summary = append(summary, [2]interface{}{"Loss at Stop", result.LossAtStopLoss})
	}
	if result.Underfunded {
		summary = append(summary, [2]interface{}{"Underfunded", true})
	}
	if result.RangeUnsafe {
		summary = append(summary, [2]interface{}{"Range Unsafe", true})
	}
	for i, kv := range summary {
		row := summaryRow + i
		fx.SetCellValue(entriesSheet, fmt.Sprintf("A%d", row), kv[0])
		fx.SetCellValue(entriesSheet, fmt.Sprintf("B%d", row), kv[1])
	}

	exitHeaders := []string{"Target %", "Exit Price", "PnL (USD)", "ROE %"}
	for i, h := range exitHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(exitsSheet, cell, h)
		fx.SetCellStyle(exitsSheet, cell, cell, styles.Header)
	}
	for i, exit := range result.Exits {
		row := i + 2
		fx.SetCellValue(exitsSheet, fmt.Sprintf("A%d", row), exit.TargetPercent)
		fx.SetCellValue(exitsSheet, fmt.Sprintf("B%d", row), exit.Price)
		fx.SetCellValue(exitsSheet, fmt.Sprintf("C%d", row), exit.PnL)
		fx.SetCellValue(exitsSheet, fmt.Sprintf("D%d", row), exit.ROE)
		fx.SetCellStyle(exitsSheet, fmt.Sprintf("C%d", row), fmt.Sprintf("C%d", row), styles.Currency)
	}

	fx.SetColWidth(entriesSheet, "A", "E", 16)
	fx.SetColWidth(exitsSheet, "A", "D", 14)

	return fx.SaveAs(path)
}

// WriteBacktestXLSX writes a backtest workbook with Summary and History sheets
func (r *ExcelReporter) WriteBacktestXLSX(result *backtest.Result, path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	const summarySheet = "Summary"
	const historySheet = "History"
	fx.SetSheetName(fx.GetSheetName(0), summarySheet)
	fx.NewSheet(historySheet)

	styles, err := createStyles(fx)
	if err != nil {
		return err
	}

	summary := [][2]interface{}{
		{"Symbol", result.Symbol},
		{"Total Invested", result.TotalInvested},
		{"Current Value", result.CurrentValue},
		{"Total Coins", result.TotalCoins},
		{"Average Price", result.AvgPrice},
		{"PnL", result.PnL},
		{"ROE %", result.ROE},
		{"Purchases", result.BuyCount},
	}
	for i, kv := range summary {
		row := i + 1
		fx.SetCellValue(summarySheet, fmt.Sprintf("A%d", row), kv[0])
		fx.SetCellValue(summarySheet, fmt.Sprintf("B%d", row), kv[1])
		fx.SetCellStyle(summarySheet, fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), styles.Base)
	}

	historyHeaders := []string{"Date", "Portfolio Value", "Invested"}
	for i, h := range historyHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(historySheet, cell, h)
		fx.SetCellStyle(historySheet, cell, cell, styles.Header)
	}
	for i, point := range result.History {
		row := i + 2
		fx.SetCellValue(historySheet, fmt.Sprintf("A%d", row), point.Date)
		fx.SetCellValue(historySheet, fmt.Sprintf("B%d", row), point.Value)
		fx.SetCellValue(historySheet, fmt.Sprintf("C%d", row), point.Invested)
		fx.SetCellStyle(historySheet, fmt.Sprintf("B%d", row), fmt.Sprintf("C%d", row), styles.Currency)
	}

	fx.SetColWidth(summarySheet, "A", "B", 18)
	fx.SetColWidth(historySheet, "A", "C", 16)

	return fx.SaveAs(path)
}

// Package-level convenience functions
func WritePlanXLSX(cfg *planner.Config, result *planner.Result, path string) error {
	return NewExcelReporter().WritePlanXLSX(cfg, result, path)
}

func WriteBacktestXLSX(result *backtest.Result, path string) error {
	return NewExcelReporter().WriteBacktestXLSX(result, path)
}
