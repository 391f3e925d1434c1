package indicators

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMA_Series_InsufficientData(t *testing.T) {
	sma := NewSMA(20)
	data := generateRampData(10, 100)

	_, err := sma.Series(data)
	assert.ErrorIs(t, err, ErrInsufficientData)
}

func TestSMA_Series_OutputLength(t *testing.T) {
	sma := NewSMA(5)
	data := generateRampData(12, 100)

	out, err := sma.Series(data)
	require.NoError(t, err)

	// One point per bar with a full window behind it
	assert.Len(t, out, 8)
	assert.Equal(t, data[4].Timestamp, out[0].Timestamp)
	assert.Equal(t, data[11].Timestamp, out[7].Timestamp)
}

func TestSMA_Series_KnownValues(t *testing.T) {
	sma := NewSMA(3)
	data := barsFromCloses(1, 2, 3, 4, 5)

	out, err := sma.Series(data)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.InDelta(t, 2.0, out[0].Value, 1e-9)
	assert.InDelta(t, 3.0, out[1].Value, 1e-9)
	assert.InDelta(t, 4.0, out[2].Value, 1e-9)
}

func TestSMA_Series_ExactWindow(t *testing.T) {
	sma := NewSMA(4)
	data := barsFromCloses(10, 20, 30, 40)

	out, err := sma.Series(data)
	require.NoError(t, err)

	require.Len(t, out, 1)
	assert.InDelta(t, 25.0, out[0].Value, 1e-9)
	assert.Equal(t, data[3].Timestamp, out[0].Timestamp)
}

func TestSMA_Series_FlatData(t *testing.T) {
	sma := NewSMA(5)
	data := generateFlatData(10)

	out, err := sma.Series(data)
	require.NoError(t, err)

	for _, p := range out {
		assert.Equal(t, 100.0, p.Value)
	}
}

func TestSMA_Series_PeriodOne(t *testing.T) {
	sma := NewSMA(1)
	data := barsFromCloses(10, 20, 30)

	out, err := sma.Series(data)
	require.NoError(t, err)

	require.Len(t, out, 3)
	assert.Equal(t, 10.0, out[0].Value)
	assert.Equal(t, 30.0, out[2].Value)
}

func TestSMA_InterfaceCompliance(t *testing.T) {
	var _ SeriesIndicator = NewSMA(5)
}

func TestSMA_Metadata(t *testing.T) {
	sma := NewSMA(5)
	assert.Equal(t, "SMA", sma.GetName())
	assert.Equal(t, 5, sma.GetRequiredPeriods())
}

func BenchmarkSMA_Series(b *testing.B) {
	sma := NewSMA(20)
	data := generateRampData(1000, 100)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = sma.Series(data)
	}
}
