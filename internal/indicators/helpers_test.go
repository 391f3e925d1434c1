package indicators

import (
	"time"

	"dca-strategy-planner/pkg/types"
)

var testStart = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

// barsFromCloses builds hourly bars where open/high/low equal the close.
func barsFromCloses(closes ...float64) []types.OHLCV {
	bars := make([]types.OHLCV, len(closes))
	for i, c := range closes {
		bars[i] = types.OHLCV{
			Timestamp: testStart.Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c,
			Low:       c,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

// generateRampData builds hourly bars with close=base+i and a one-unit
// high/low spread.
func generateRampData(n int, base float64) []types.OHLCV {
	bars := make([]types.OHLCV, n)
	for i := range bars {
		c := base + float64(i)
		bars[i] = types.OHLCV{
			Timestamp: testStart.Add(time.Duration(i) * time.Hour),
			Open:      c,
			High:      c + 1,
			Low:       c - 1,
			Close:     c,
			Volume:    1000,
		}
	}
	return bars
}

// generateFlatData builds hourly bars pinned at 100.0.
func generateFlatData(n int) []types.OHLCV {
	closes := make([]float64, n)
	for i := range closes {
		closes[i] = 100.0
	}
	return barsFromCloses(closes...)
}
