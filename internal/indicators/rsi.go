package indicators

import (
	"math"

	"dca-strategy-planner/pkg/types"
)

// RSI computes Wilder's Relative Strength Index over closing prices.
type RSI struct {
	period int
}

// NewRSI creates a new RSI indicator
func NewRSI(period int) *RSI {
	return &RSI{period: period}
}

// Series computes the RSI line. The average gain/loss is seeded with a simple
// mean over the first `period` price changes and then smoothed with weight
// 1/period per bar. The first point is emitted at index period+1.
// When the average loss reaches zero the RSI saturates to 100.
func (r *RSI) Series(data []types.OHLCV) ([]Point, error) {
	if len(data) < r.period+1 {
		return nil, ErrInsufficientData
	}

	gains := 0.0
	losses := 0.0
	for i := 1; i <= r.period; i++ {
		diff := data[i].Close - data[i-1].Close
		if diff > 0 {
			gains += diff
		} else {
			losses += math.Abs(diff)
		}
	}
	avgGain := gains / float64(r.period)
	avgLoss := losses / float64(r.period)

	out := make([]Point, 0, len(data)-r.period-1)
	for i := r.period + 1; i < len(data); i++ {
		diff := data[i].Close - data[i-1].Close
		gain := 0.0
		loss := 0.0
		if diff > 0 {
			gain = diff
		} else {
			loss = math.Abs(diff)
		}
		avgGain = (avgGain*float64(r.period-1) + gain) / float64(r.period)
		avgLoss = (avgLoss*float64(r.period-1) + loss) / float64(r.period)

		value := 100.0
		if avgLoss != 0 {
			rs := avgGain / avgLoss
			value = 100 - (100 / (1 + rs))
		}
		out = append(out, Point{Timestamp: data[i].Timestamp, Value: value})
	}
	return out, nil
}

// GetName returns the indicator name
func (r *RSI) GetName() string {
	return "RSI"
}

// GetRequiredPeriods returns the minimum number of bars needed
func (r *RSI) GetRequiredPeriods() int {
	return r.period + 1
}
