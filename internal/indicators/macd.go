package indicators

import (
	"time"

	"dca-strategy-planner/pkg/types"
)

// MACD smoothing constants: standard 12/26 EMAs with period+1 denominators and
// a 9-period signal EMA.
const (
	macdFastK   = 2.0 / 13.0
	macdSlowK   = 2.0 / 27.0
	macdSignalK = 2.0 / 10.0

	// macdWarmup is the number of leading bars skipped before points are
	// emitted, so the slow EMA has settled.
	macdWarmup = 26
)

// MACDPoint is one sample of the MACD line, signal line and histogram.
type MACDPoint struct {
	Timestamp time.Time
	MACD      float64
	Signal    float64
	Histogram float64
}

// MACD computes the Moving Average Convergence Divergence oscillator with
// fixed 12/26/9 periods. Both EMAs are seeded at the first close, the signal
// EMA at the first MACD value.
type MACD struct{}

// NewMACD creates a new MACD indicator
func NewMACD() *MACD {
	return &MACD{}
}

// Series computes the MACD series, emitting points only past the warm-up
// window (indexes greater than 26).
func (m *MACD) Series(data []types.OHLCV) ([]MACDPoint, error) {
	if len(data) <= macdWarmup+1 {
		return nil, ErrInsufficientData
	}

	ema12 := data[0].Close
	ema26 := data[0].Close
	macdLine := make([]float64, len(data))
	for i := range data {
		ema12 = data[i].Close*macdFastK + ema12*(1-macdFastK)
		ema26 = data[i].Close*macdSlowK + ema26*(1-macdSlowK)
		macdLine[i] = ema12 - ema26
	}

	signal := macdLine[0]
	out := make([]MACDPoint, 0, len(data)-macdWarmup-1)
	for i := range data {
		signal = macdLine[i]*macdSignalK + signal*(1-macdSignalK)
		if i > macdWarmup {
			out = append(out, MACDPoint{
				Timestamp: data[i].Timestamp,
				MACD:      macdLine[i],
				Signal:    signal,
				Histogram: macdLine[i] - signal,
			})
		}
	}
	return out, nil
}

// GetName returns the indicator name
func (m *MACD) GetName() string {
	return "MACD"
}

// GetRequiredPeriods returns the minimum number of bars before output starts
func (m *MACD) GetRequiredPeriods() int {
	return macdWarmup + 2
}
