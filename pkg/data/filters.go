package data

import (
	"fmt"
	"sort"
	"time"

	"dca-strategy-planner/pkg/types"
)

// Filter holds the common filtering operations applied to candle series before
// indicator or backtest computation.
type Filter struct{}

// NewFilter creates a new data filter
func NewFilter() *Filter {
	return &Filter{}
}

// FilterByPeriod trims data to the trailing period, measured back from the
// last candle.
func (f *Filter) FilterByPeriod(data []types.OHLCV, period time.Duration) []types.OHLCV {
	if period <= 0 || len(data) == 0 {
		return data
	}

	cutoff := data[len(data)-1].Timestamp.Add(-period)

	startIdx := 0
	for i, candle := range data {
		if !candle.Timestamp.Before(cutoff) {
			startIdx = i
			break
		}
	}

	return data[startIdx:]
}

// FilterByDateRange filters data to the inclusive [start, end] range
func (f *Filter) FilterByDateRange(data []types.OHLCV, start, end time.Time) []types.OHLCV {
	if len(data) == 0 {
		return data
	}

	var filtered []types.OHLCV
	for _, candle := range data {
		if !candle.Timestamp.Before(start) && !candle.Timestamp.After(end) {
			filtered = append(filtered, candle)
		}
	}

	return filtered
}

// ValidateTimeSequence ensures data is strictly increasing in time
func (f *Filter) ValidateTimeSequence(data []types.OHLCV) error {
	for i := 1; i < len(data); i++ {
		if data[i].Timestamp.Before(data[i-1].Timestamp) {
			return fmt.Errorf("data not in chronological order at index %d: %s comes after %s",
				i, data[i].Timestamp.Format(time.RFC3339), data[i-1].Timestamp.Format(time.RFC3339))
		}
		if data[i].Timestamp.Equal(data[i-1].Timestamp) {
			return fmt.Errorf("duplicate timestamp at index %d: %s",
				i, data[i].Timestamp.Format(time.RFC3339))
		}
	}
	return nil
}

// SortByTimestamp returns a copy of data sorted in ascending time order
func (f *Filter) SortByTimestamp(data []types.OHLCV) []types.OHLCV {
	if len(data) <= 1 {
		return data
	}

	sorted := make([]types.OHLCV, len(data))
	copy(sorted, data)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted
}

// RemoveDuplicates removes duplicate timestamps, keeping the first occurrence
func (f *Filter) RemoveDuplicates(data []types.OHLCV) []types.OHLCV {
	if len(data) <= 1 {
		return data
	}

	var filtered []types.OHLCV
	seen := make(map[int64]bool)

	for _, candle := range data {
		key := candle.Timestamp.UnixMilli()
		if !seen[key] {
			seen[key] = true
			filtered = append(filtered, candle)
		}
	}

	return filtered
}
