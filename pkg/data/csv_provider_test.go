package data

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dca-strategy-planner/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestCSVProvider_LoadData(t *testing.T) {
	path := writeTempCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,110,95,105,1000
2024-01-01 01:00:00,105,115,100,110,1200
`)

	provider := NewCSVProvider()
	bars, err := provider.LoadData(path)
	require.NoError(t, err)

	require.Len(t, bars, 2)
	assert.Equal(t, 100.0, bars[0].Open)
	assert.Equal(t, 110.0, bars[0].High)
	assert.Equal(t, 95.0, bars[0].Low)
	assert.Equal(t, 105.0, bars[0].Close)
	assert.Equal(t, 1000.0, bars[0].Volume)
	assert.Equal(t, time.Date(2024, 1, 1, 1, 0, 0, 0, time.UTC), bars[1].Timestamp)
}

func TestCSVProvider_LoadData_SkipsMalformedRows(t *testing.T) {
	path := writeTempCSV(t, `timestamp,open,high,low,close,volume
2024-01-01 00:00:00,100,110,95,105,1000
not-a-date,100,110,95,105,1000
2024-01-01 01:00:00,abc,110,95,105,1000
2024-01-01 02:00:00,100,90,95,105,1000
2024-01-01 03:00:00,100,110,95,105,1200
`)

	provider := NewCSVProvider()
	bars, err := provider.LoadData(path)
	require.NoError(t, err)

	// Bad timestamp, bad number and high below close are all dropped
	assert.Len(t, bars, 2)
}

func TestCSVProvider_LoadData_MissingFile(t *testing.T) {
	provider := NewCSVProvider()

	_, err := provider.LoadData(filepath.Join(t.TempDir(), "nope.csv"))
	assert.Error(t, err)
}

func TestCSVProvider_LoadData_UnixMillisFormat(t *testing.T) {
	path := writeTempCSV(t, `timestamp,open,high,low,close,volume
1704067200000,100,110,95,105,1000
`)

	provider := NewCSVProviderWithFormat(UnixMillisCSVFormat)
	bars, err := provider.LoadData(path)
	require.NoError(t, err)

	require.Len(t, bars, 1)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), bars[0].Timestamp)
}

func TestCSVProvider_ValidateData(t *testing.T) {
	provider := NewCSVProvider()
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	valid := []types.OHLCV{
		{Timestamp: base, Open: 100, High: 110, Low: 95, Close: 105, Volume: 1},
		{Timestamp: base.Add(time.Hour), Open: 105, High: 115, Low: 100, Close: 110, Volume: 1},
	}
	assert.NoError(t, provider.ValidateData(valid))

	assert.Error(t, provider.ValidateData(nil))

	negative := []types.OHLCV{{Timestamp: base, Open: -1, High: 110, Low: 95, Close: 105}}
	assert.Error(t, provider.ValidateData(negative))

	inverted := []types.OHLCV{{Timestamp: base, Open: 100, High: 90, Low: 95, Close: 92}}
	assert.Error(t, provider.ValidateData(inverted))

	outOfOrder := []types.OHLCV{
		{Timestamp: base.Add(time.Hour), Open: 100, High: 110, Low: 95, Close: 105},
		{Timestamp: base, Open: 100, High: 110, Low: 95, Close: 105},
	}
	assert.Error(t, provider.ValidateData(outOfOrder))
}

func TestCSVProvider_GetName(t *testing.T) {
	assert.Equal(t, "CSV Provider", NewCSVProvider().GetName())
}
