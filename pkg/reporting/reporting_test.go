package reporting

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePlan(t *testing.T) (*planner.Config, *planner.Result) {
	t.Helper()
	cfg := &planner.Config{
		Capital:        1000,
		Leverage:       10,
		Direction:      planner.DirectionLong,
		Mode:           planner.ModeClassic,
		ReferencePrice: 100,
		Classic:        planner.ClassicParams{Entries: 3},
	}
	result, err := planner.Calculate(*cfg)
	require.NoError(t, err)
	return cfg, result
}

func sampleBacktest() *backtest.Result {
	return &backtest.Result{
		Symbol:        "BTCUSDT",
		TotalInvested: 300,
		CurrentValue:  330,
		TotalCoins:    0.005,
		PnL:           30,
		ROE:           10,
		AvgPrice:      60000,
		BuyCount:      3,
		History: []backtest.HistoryPoint{
			{Date: "2024-01-01", Value: 100, Invested: 100},
			{Date: "2024-01-02", Value: 210, Invested: 200},
			{Date: "2024-01-03", Value: 330, Invested: 300},
		},
	}
}

func TestConsoleReporter_InterfaceCompliance(t *testing.T) {
	var _ PlanReporter = NewConsoleReporter()
	var _ BacktestReporter = NewConsoleReporter()
}

func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("results", "BTCUSDT_1h"), DefaultOutputDir("btcusdt", "1H"))
	assert.Equal(t, filepath.Join("results", "UNKNOWN_unknown"), DefaultOutputDir("", ""))
}

func TestWritePlanJSON_RoundTrip(t *testing.T) {
	cfg, result := samplePlan(t)
	path := filepath.Join(t.TempDir(), "plan.json")

	require.NoError(t, WritePlanJSON(cfg, result, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var doc struct {
		Config planner.Config `json:"config"`
		Result planner.Result `json:"result"`
	}
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Equal(t, cfg.Capital, doc.Config.Capital)
	assert.Len(t, doc.Result.Entries, 3)
	assert.InDelta(t, result.AvgPrice, doc.Result.AvgPrice, 1e-9)
}

func TestWritePlanJSON_CreatesParentDir(t *testing.T) {
	cfg, result := samplePlan(t)
	path := filepath.Join(t.TempDir(), "nested", "deeper", "plan.json")

	require.NoError(t, WritePlanJSON(cfg, result, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteBacktestJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.json")

	require.NoError(t, WriteBacktestJSON(sampleBacktest(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var decoded backtest.Result
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "BTCUSDT", decoded.Symbol)
	assert.Len(t, decoded.History, 3)
}

func TestWritePlanCSV(t *testing.T) {
	cfg, result := samplePlan(t)
	path := filepath.Join(t.TempDir(), "plan.csv")

	require.NoError(t, WritePlanCSV(cfg, result, path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(raw)
	assert.Contains(t, content, "Level,Price,Volume_USD,Coin_Size,Weight")
	assert.Contains(t, content, "SUMMARY:")
}

func TestWriteHistoryCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.csv")

	require.NoError(t, WriteHistoryCSV(sampleBacktest(), path))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "2024-01-02,210.00,200.00")
}

func TestWritePlanCSV_DelegatesExcel(t *testing.T) {
	cfg, result := samplePlan(t)
	path := filepath.Join(t.TempDir(), "plan.xlsx")

	require.NoError(t, WritePlanCSV(cfg, result, path))
	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestWriteBacktestXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "result.xlsx")

	require.NoError(t, WriteBacktestXLSX(sampleBacktest(), path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}
