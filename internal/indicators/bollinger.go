package indicators

import (
	"math"
	"time"

	"dca-strategy-planner/pkg/types"
)

// BandPoint is one sample of a Bollinger band triple.
type BandPoint struct {
	Timestamp time.Time
	Upper     float64
	Middle    float64
	Lower     float64
}

// BollingerBands computes a trailing SMA with bands at a configurable number of
// standard deviations. The standard deviation is the population form (divide by
// period, not period-1).
type BollingerBands struct {
	period int
	stdDev float64
}

// NewBollingerBands creates a new Bollinger Bands indicator
func NewBollingerBands(period int, stdDev float64) *BollingerBands {
	return &BollingerBands{
		period: period,
		stdDev: stdDev,
	}
}

// Series computes the band triple for every bar with a full window behind it.
func (b *BollingerBands) Series(data []types.OHLCV) ([]BandPoint, error) {
	if len(data) < b.period {
		return nil, ErrInsufficientData
	}

	out := make([]BandPoint, 0, len(data)-b.period+1)
	for i := b.period - 1; i < len(data); i++ {
		window := data[i-b.period+1 : i+1]

		sum := 0.0
		for _, bar := range window {
			sum += bar.Close
		}
		mean := sum / float64(b.period)

		variance := 0.0
		for _, bar := range window {
			diff := bar.Close - mean
			variance += diff * diff
		}
		std := math.Sqrt(variance / float64(b.period))

		out = append(out, BandPoint{
			Timestamp: data[i].Timestamp,
			Upper:     mean + b.stdDev*std,
			Middle:    mean,
			Lower:     mean - b.stdDev*std,
		})
	}
	return out, nil
}

// GetName returns the indicator name
func (b *BollingerBands) GetName() string {
	return "BollingerBands"
}

// GetRequiredPeriods returns the minimum number of bars needed
func (b *BollingerBands) GetRequiredPeriods() int {
	return b.period
}
