package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"dca-strategy-planner/internal/logger"
	"dca-strategy-planner/pkg/types"
	"github.com/rs/zerolog"
)

// CSVProvider implements Provider for CSV files
type CSVProvider struct {
	format CSVColumnMapping
	log    zerolog.Logger
}

// NewCSVProvider creates a new CSV data provider with default format
func NewCSVProvider() *CSVProvider {
	return NewCSVProviderWithFormat(DefaultCSVFormat)
}

// NewCSVProviderWithFormat creates a new CSV data provider with custom format
func NewCSVProviderWithFormat(format CSVColumnMapping) *CSVProvider {
	return &CSVProvider{
		format: format,
		log:    logger.New("csv-provider"),
	}
}

// GetName returns the name of the data provider
func (p *CSVProvider) GetName() string {
	return "CSV Provider"
}

// LoadData loads historical data from a CSV file. Malformed rows are skipped
// with a warning rather than failing the whole load.
func (p *CSVProvider) LoadData(source string) ([]types.OHLCV, error) {
	file, err := os.Open(source)
	if err != nil {
		return nil, fmt.Errorf("failed to open data file %s: %w", source, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	// Skip header
	if _, err := reader.Read(); err != nil {
		return nil, err
	}

	var data []types.OHLCV

	lineNum := 1
	for {
		record, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("error reading CSV at line %d: %w", lineNum, err)
		}
		lineNum++

		if len(record) < p.format.MinColumns {
			p.log.Warn().Int("line", lineNum).Int("columns", len(record)).
				Msg("insufficient columns, skipping row")
			continue
		}

		timestamp, err := p.parseTimestamp(record[p.format.TimestampCol])
		if err != nil {
			p.log.Warn().Int("line", lineNum).Str("value", record[p.format.TimestampCol]).
				Err(err).Msg("invalid timestamp, skipping row")
			continue
		}

		open, err1 := strconv.ParseFloat(record[p.format.OpenCol], 64)
		high, err2 := strconv.ParseFloat(record[p.format.HighCol], 64)
		low, err3 := strconv.ParseFloat(record[p.format.LowCol], 64)
		closePrice, err4 := strconv.ParseFloat(record[p.format.CloseCol], 64)
		volume, err5 := strconv.ParseFloat(record[p.format.VolumeCol], 64)
		if err1 != nil || err2 != nil || err3 != nil || err4 != nil || err5 != nil {
			p.log.Warn().Int("line", lineNum).Msg("unparseable numeric field, skipping row")
			continue
		}

		if open <= 0 || high <= 0 || low <= 0 || closePrice <= 0 {
			p.log.Warn().Int("line", lineNum).Msg("non-positive price, skipping row")
			continue
		}
		if high < open || high < closePrice || high < low {
			p.log.Warn().Int("line", lineNum).Msg("high below other prices, skipping row")
			continue
		}
		if low > open || low > closePrice {
			p.log.Warn().Int("line", lineNum).Msg("low above other prices, skipping row")
			continue
		}

		data = append(data, types.OHLCV{
			Timestamp: timestamp,
			Open:      open,
			High:      high,
			Low:       low,
			Close:     closePrice,
			Volume:    volume,
		})
	}

	return data, nil
}

func (p *CSVProvider) parseTimestamp(raw string) (time.Time, error) {
	if p.format.DateFormat == "" {
		millis, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return time.Time{}, err
		}
		return time.UnixMilli(millis).UTC(), nil
	}
	return time.Parse(p.format.DateFormat, raw)
}

// ValidateData validates the integrity of loaded data
func (p *CSVProvider) ValidateData(data []types.OHLCV) error {
	if len(data) == 0 {
		return fmt.Errorf("no data provided")
	}

	for i, candle := range data {
		if candle.Open <= 0 || candle.High <= 0 || candle.Low <= 0 || candle.Close <= 0 {
			return fmt.Errorf("invalid price data at index %d: prices must be positive", i)
		}

		if candle.High < candle.Low {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) cannot be less than low (%.4f)",
				i, candle.High, candle.Low)
		}

		if candle.High < candle.Open || candle.High < candle.Close {
			return fmt.Errorf("invalid price data at index %d: high (%.4f) must be >= open (%.4f) and close (%.4f)",
				i, candle.High, candle.Open, candle.Close)
		}

		if candle.Low > candle.Open || candle.Low > candle.Close {
			return fmt.Errorf("invalid price data at index %d: low (%.4f) must be <= open (%.4f) and close (%.4f)",
				i, candle.Low, candle.Open, candle.Close)
		}

		if i > 0 && candle.Timestamp.Before(data[i-1].Timestamp) {
			return fmt.Errorf("invalid timestamp sequence at index %d: timestamps must be in chronological order", i)
		}
	}

	return nil
}
