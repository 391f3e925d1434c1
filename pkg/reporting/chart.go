package reporting

import (
	"fmt"

	"dca-strategy-planner/internal/indicators"
	"dca-strategy-planner/pkg/types"
	"github.com/xuri/excelize/v2"
)

// WriteChartXLSX writes candles and computed indicator series to a workbook,
// one sheet per series, keyed by timestamp so the sheets line up in external
// charting tools.
func WriteChartXLSX(symbol string, bars []types.OHLCV, set *indicators.Set, path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	fx := excelize.NewFile()
	defer fx.Close()

	styles, err := createStyles(fx)
	if err != nil {
		return err
	}

	const timeFormat = "2006-01-02 15:04:05"
	const candlesSheet = "Candles"
	fx.SetSheetName(fx.GetSheetName(0), candlesSheet)

	candleHeaders := []string{"Timestamp", "Open", "High", "Low", "Close", "Volume"}
	for i, h := range candleHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		fx.SetCellValue(candlesSheet, cell, h)
		fx.SetCellStyle(candlesSheet, cell, cell, styles.Header)
	}
	for i, bar := range bars {
		row := i + 2
		fx.SetCellValue(candlesSheet, fmt.Sprintf("A%d", row), bar.Timestamp.UTC().Format(timeFormat))
		fx.SetCellValue(candlesSheet, fmt.Sprintf("B%d", row), bar.Open)
		fx.SetCellValue(candlesSheet, fmt.Sprintf("C%d", row), bar.High)
		fx.SetCellValue(candlesSheet, fmt.Sprintf("D%d", row), bar.Low)
		fx.SetCellValue(candlesSheet, fmt.Sprintf("E%d", row), bar.Close)
		fx.SetCellValue(candlesSheet, fmt.Sprintf("F%d", row), bar.Volume)
	}
	fx.SetColWidth(candlesSheet, "A", "A", 20)

	writePointSheet := func(sheet string, points []indicators.Point) {
		if len(points) == 0 {
			return
		}
		fx.NewSheet(sheet)
		fx.SetCellValue(sheet, "A1", "Timestamp")
		fx.SetCellValue(sheet, "B1", "Value")
		fx.SetCellStyle(sheet, "A1", "B1", styles.Header)
		for i, p := range points {
			row := i + 2
			fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Timestamp.UTC().Format(timeFormat))
			fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.Value)
		}
		fx.SetColWidth(sheet, "A", "A", 20)
	}

	writePointSheet("SMA", set.SMA)
	writePointSheet("RSI", set.RSI)

	if len(set.Bollinger) > 0 {
		const sheet = "Bollinger"
		fx.NewSheet(sheet)
		headers := []string{"Timestamp", "Upper", "Middle", "Lower"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			fx.SetCellValue(sheet, cell, h)
			fx.SetCellStyle(sheet, cell, cell, styles.Header)
		}
		for i, band := range set.Bollinger {
			row := i + 2
			fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), band.Timestamp.UTC().Format(timeFormat))
			fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), band.Upper)
			fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), band.Middle)
			fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), band.Lower)
		}
		fx.SetColWidth(sheet, "A", "A", 20)
	}

	if len(set.MACD) > 0 {
		const sheet = "MACD"
		fx.NewSheet(sheet)
		headers := []string{"Timestamp", "MACD", "Signal", "Histogram"}
		for i, h := range headers {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			fx.SetCellValue(sheet, cell, h)
			fx.SetCellStyle(sheet, cell, cell, styles.Header)
		}
		for i, p := range set.MACD {
			row := i + 2
			fx.SetCellValue(sheet, fmt.Sprintf("A%d", row), p.Timestamp.UTC().Format(timeFormat))
			fx.SetCellValue(sheet, fmt.Sprintf("B%d", row), p.MACD)
			fx.SetCellValue(sheet, fmt.Sprintf("C%d", row), p.Signal)
			fx.SetCellValue(sheet, fmt.Sprintf("D%d", row), p.Histogram)
		}
		fx.SetColWidth(sheet, "A", "A", 20)
	}

	if set.Ichimoku != nil {
		writePointSheet("Tenkan", set.Ichimoku.Tenkan)
		writePointSheet("Kijun", set.Ichimoku.Kijun)
		writePointSheet("SenkouA", set.Ichimoku.SenkouA)
		writePointSheet("SenkouB", set.Ichimoku.SenkouB)
		writePointSheet("Chikou", set.Ichimoku.Chikou)
	}

	return fx.SaveAs(path)
}
