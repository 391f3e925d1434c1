package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAll_AllEnabled(t *testing.T) {
	data := generateRampData(120, 100)

	set := ComputeAll(data, Config{
		SMA:       true,
		Bollinger: true,
		Ichimoku:  true,
		RSI:       true,
		MACD:      true,
	})

	require.NotNil(t, set)
	assert.NotEmpty(t, set.SMA)
	assert.NotEmpty(t, set.Bollinger)
	assert.NotEmpty(t, set.RSI)
	assert.NotEmpty(t, set.MACD)
	require.NotNil(t, set.Ichimoku)
	assert.NotEmpty(t, set.Ichimoku.SenkouB)
}

func TestComputeAll_DisabledLeftEmpty(t *testing.T) {
	data := generateRampData(120, 100)

	set := ComputeAll(data, Config{SMA: true})

	assert.NotEmpty(t, set.SMA)
	assert.Empty(t, set.Bollinger)
	assert.Empty(t, set.RSI)
	assert.Empty(t, set.MACD)
	assert.Nil(t, set.Ichimoku)
}

func TestComputeAll_ShortDataLeavesSeriesEmpty(t *testing.T) {
	data := generateRampData(10, 100)

	set := ComputeAll(data, Config{
		SMA:       true,
		SMAPeriod: 5,
		MACD:      true,
	})

	// The short series still computes, the long one is skipped
	assert.NotEmpty(t, set.SMA)
	assert.Empty(t, set.MACD)
}

func TestComputeAll_DefaultPeriods(t *testing.T) {
	data := generateRampData(60, 100)

	set := ComputeAll(data, Config{SMA: true, RSI: true})

	assert.Len(t, set.SMA, 60-DefaultSMAPeriod+1)
	assert.Len(t, set.RSI, 60-DefaultRSIPeriod-1)
}
