package indicators

import (
	"dca-strategy-planner/pkg/types"
)

// SMA computes the Simple Moving Average of closing prices
type SMA struct {
	period int
}

// NewSMA creates a new SMA indicator
func NewSMA(period int) *SMA {
	return &SMA{period: period}
}

// Series computes the trailing SMA for every bar with a full window behind it.
// Output length is len(data)-period+1.
func (s *SMA) Series(data []types.OHLCV) ([]Point, error) {
	if len(data) < s.period {
		return nil, ErrInsufficientData
	}

	out := make([]Point, 0, len(data)-s.period+1)
	for i := s.period - 1; i < len(data); i++ {
		sum := 0.0
		for j := i - s.period + 1; j <= i; j++ {
			sum += data[j].Close
		}
		out = append(out, Point{
			Timestamp: data[i].Timestamp,
			Value:     sum / float64(s.period),
		})
	}
	return out, nil
}

// GetName returns the indicator name
func (s *SMA) GetName() string {
	return "SMA"
}

// GetRequiredPeriods returns the minimum number of bars needed
func (s *SMA) GetRequiredPeriods() int {
	return s.period
}
