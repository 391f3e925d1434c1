package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadPlannerConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"strategy": {
			"capital": 2000,
			"leverage": 10,
			"direction": "LONG",
			"mode": "CLASSIC",
			"reference_price": 65000,
			"classic": {"entries": 5}
		},
		"excel_report": true
	}`)

	cfg, err := LoadPlannerConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, cfg.Strategy.Capital)
	assert.Equal(t, planner.DirectionLong, cfg.Strategy.Direction)
	assert.Equal(t, planner.ModeClassic, cfg.Strategy.Mode)
	assert.Equal(t, 5, cfg.Strategy.Classic.Entries)
	assert.True(t, cfg.ExcelReport)
	// Defaults survive partial files
	assert.Equal(t, "results", cfg.OutputDir)
}

func TestLoadPlannerConfig_InvalidStrategy(t *testing.T) {
	path := writeTempConfig(t, `{
		"strategy": {
			"capital": -5,
			"leverage": 10,
			"direction": "LONG",
			"mode": "CLASSIC",
			"reference_price": 65000,
			"classic": {"entries": 5}
		}
	}`)

	_, err := LoadPlannerConfig(path)
	assert.ErrorIs(t, err, planner.ErrInvalidConfig)
}

func TestLoadPlannerConfig_MissingFile(t *testing.T) {
	_, err := LoadPlannerConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadBacktestConfig(t *testing.T) {
	path := writeTempConfig(t, `{
		"symbol": "BTCUSDT",
		"amount_usd": 100,
		"rule": {
			"frequency": "WEEKLY",
			"target_hour": 8,
			"target_weekday": 1
		}
	}`)

	cfg, err := LoadBacktestConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "BTCUSDT", cfg.Symbol)
	assert.Equal(t, 100.0, cfg.AmountUSD)
	assert.Equal(t, backtest.FrequencyWeekly, cfg.Rule.Frequency)
	assert.Equal(t, 8, cfg.Rule.TargetHour)
	assert.Equal(t, time.Monday, cfg.Rule.TargetWeekday)
	// Defaults
	assert.Equal(t, "1h", cfg.Interval)
	assert.Equal(t, "spot", cfg.Category)
}

func TestLoadBacktestConfig_Invalid(t *testing.T) {
	missingSymbol := writeTempConfig(t, `{"amount_usd": 100, "rule": {"frequency": "DAILY"}}`)
	_, err := LoadBacktestConfig(missingSymbol)
	assert.ErrorContains(t, err, "symbol")

	badAmount := writeTempConfig(t, `{"symbol": "BTCUSDT", "amount_usd": 0, "rule": {"frequency": "DAILY"}}`)
	_, err = LoadBacktestConfig(badAmount)
	assert.ErrorContains(t, err, "amount_usd")

	badRule := writeTempConfig(t, `{"symbol": "BTCUSDT", "amount_usd": 50, "rule": {"frequency": "HOURLY"}}`)
	_, err = LoadBacktestConfig(badRule)
	assert.ErrorIs(t, err, backtest.ErrInvalidRule)
}

func TestLoadExchangeConfig(t *testing.T) {
	t.Setenv("BYBIT_API_KEY", "env-key")
	t.Setenv("BYBIT_API_SECRET", "env-secret")
	t.Setenv("BYBIT_TESTNET", "true")

	cfg := LoadExchangeConfig()

	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "env-secret", cfg.APISecret)
	assert.True(t, cfg.Testnet)
}

func TestLoadExchangeConfig_EmptyEnvironment(t *testing.T) {
	for _, key := range []string{"BYBIT_API_KEY", "BYBIT_API_SECRET", "BYBIT_TESTNET"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}

	cfg := LoadExchangeConfig()

	assert.Empty(t, cfg.APIKey)
	assert.Empty(t, cfg.APISecret)
	assert.False(t, cfg.Testnet)
}
