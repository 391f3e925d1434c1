package indicators

import (
	"dca-strategy-planner/pkg/types"
)

// IchimokuSeries holds the five Ichimoku component lines. Senkou spans are
// emitted at the bar they were computed from, not displaced forward by the
// Kijun period; the charting layer decides how to plot them.
type IchimokuSeries struct {
	Tenkan  []Point
	Kijun   []Point
	SenkouA []Point
	SenkouB []Point
	Chikou  []Point
}

// Ichimoku computes the Ichimoku cloud components from trailing high/low
// midpoints.
type Ichimoku struct {
	tenkanPeriod  int
	kijunPeriod   int
	senkouBPeriod int
}

// NewIchimoku creates an Ichimoku indicator with the given component periods,
// conventionally 9/26/52.
func NewIchimoku(tenkan, kijun, senkouB int) *Ichimoku {
	return &Ichimoku{
		tenkanPeriod:  tenkan,
		kijunPeriod:   kijun,
		senkouBPeriod: senkouB,
	}
}

// Series computes all five component lines in one pass. Each line starts as
// soon as its own window is full; Chikou is the raw close series.
func (ich *Ichimoku) Series(data []types.OHLCV) (*IchimokuSeries, error) {
	if len(data) == 0 {
		return nil, ErrInsufficientData
	}

	out := &IchimokuSeries{}
	for i := range data {
		ts := data[i].Timestamp

		if i >= ich.tenkanPeriod-1 {
			out.Tenkan = append(out.Tenkan, Point{Timestamp: ts, Value: midpoint(data[i-ich.tenkanPeriod+1 : i+1])})
		}
		if i >= ich.kijunPeriod-1 {
			kijun := midpoint(data[i-ich.kijunPeriod+1 : i+1])
			out.Kijun = append(out.Kijun, Point{Timestamp: ts, Value: kijun})

			tenkan := midpoint(data[i-ich.tenkanPeriod+1 : i+1])
			out.SenkouA = append(out.SenkouA, Point{Timestamp: ts, Value: (tenkan + kijun) / 2})
		}
		if i >= ich.senkouBPeriod-1 {
			out.SenkouB = append(out.SenkouB, Point{Timestamp: ts, Value: midpoint(data[i-ich.senkouBPeriod+1 : i+1])})
		}
		out.Chikou = append(out.Chikou, Point{Timestamp: ts, Value: data[i].Close})
	}
	return out, nil
}

// midpoint returns the middle of the highest high and lowest low of a window.
func midpoint(window []types.OHLCV) float64 {
	highest := window[0].High
	lowest := window[0].Low
	for _, bar := range window[1:] {
		if bar.High > highest {
			highest = bar.High
		}
		if bar.Low < lowest {
			lowest = bar.Low
		}
	}
	return (highest + lowest) / 2
}

// GetName returns the indicator name
func (ich *Ichimoku) GetName() string {
	return "Ichimoku"
}

// GetRequiredPeriods returns the minimum number of bars for all components
func (ich *Ichimoku) GetRequiredPeriods() int {
	return ich.senkouBPeriod
}
