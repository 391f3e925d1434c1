package types

import "time"

// OHLCV is a single candlestick bar. Bar sequences are ordered by Timestamp,
// strictly increasing, and treated as immutable once loaded.
type OHLCV struct {
	Open      float64
	High      float64
	Low       float64
	Close     float64
	Volume    float64
	Timestamp time.Time
}

// Ticker is a point-in-time market snapshot for one symbol.
type Ticker struct {
	Symbol    string
	Price     float64
	Volume    float64
	Timestamp time.Time
}
