package data

import (
	"context"
	"time"

	"dca-strategy-planner/pkg/types"
)

// Provider loads historical candles from a local source such as a CSV export.
type Provider interface {
	// LoadData loads historical data from the specified source
	LoadData(source string) ([]types.OHLCV, error)

	// ValidateData validates the integrity of the loaded data
	ValidateData(data []types.OHLCV) error

	// GetName returns the name of the data provider
	GetName() string
}

// HistoryProvider fetches historical candles from a remote market-data source.
type HistoryProvider interface {
	// FetchHistory returns candles for the symbol over [start, end), oldest
	// first. Implementations page through the source as needed.
	FetchHistory(ctx context.Context, symbol, interval string, start, end time.Time) ([]types.OHLCV, error)

	// LatestPrice returns the last traded price for the symbol
	LatestPrice(ctx context.Context, symbol string) (float64, error)

	// GetName returns the name of the history provider
	GetName() string
}

// CSVColumnMapping defines the column positions for different CSV formats
type CSVColumnMapping struct {
	TimestampCol int
	OpenCol      int
	HighCol      int
	LowCol       int
	CloseCol     int
	VolumeCol    int
	MinColumns   int
	DateFormat   string
}

// Predefined CSV formats
var (
	DefaultCSVFormat = CSVColumnMapping{
		TimestampCol: 0,
		OpenCol:      1,
		HighCol:      2,
		LowCol:       3,
		CloseCol:     4,
		VolumeCol:    5,
		MinColumns:   6,
		DateFormat:   "2006-01-02 15:04:05",
	}

	// UnixMillisCSVFormat reads exchange exports with an epoch-milliseconds
	// first column instead of a formatted date.
	UnixMillisCSVFormat = CSVColumnMapping{
		TimestampCol: 0,
		OpenCol:      1,
		HighCol:      2,
		LowCol:       3,
		CloseCol:     4,
		VolumeCol:    5,
		MinColumns:   6,
		DateFormat:   "",
	}
)
