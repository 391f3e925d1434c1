package indicators

import (
	"errors"
	"time"

	"dca-strategy-planner/pkg/types"
)

// ErrInsufficientData is returned when the bar sequence is shorter than an
// indicator's warm-up window.
var ErrInsufficientData = errors.New("insufficient data for indicator calculation")

// Point is a single value of a derived line series, keyed by the timestamp of
// the source bar it was computed from.
type Point struct {
	Timestamp time.Time
	Value     float64
}

// SeriesIndicator maps an ordered bar sequence to one derived line series.
// Implementations are pure: identical input produces identical output.
type SeriesIndicator interface {
	Series(data []types.OHLCV) ([]Point, error)
	GetName() string
	GetRequiredPeriods() int
}
