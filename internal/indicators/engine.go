package indicators

import (
	"dca-strategy-planner/pkg/types"
)

// Default periods used when a Config leaves them zero.
const (
	DefaultSMAPeriod       = 20
	DefaultBollingerPeriod = 20
	DefaultBollingerStdDev = 2.0
	DefaultRSIPeriod       = 14
	DefaultTenkanPeriod    = 9
	DefaultKijunPeriod     = 26
	DefaultSenkouBPeriod   = 52
)

// Config selects which indicator series to compute and with which periods.
// Zero-valued periods fall back to the defaults above.
type Config struct {
	SMA       bool
	SMAPeriod int

	Bollinger       bool
	BollingerPeriod int
	BollingerStdDev float64

	Ichimoku      bool
	TenkanPeriod  int
	KijunPeriod   int
	SenkouBPeriod int

	RSI       bool
	RSIPeriod int

	MACD bool
}

// Set aggregates the computed series. Indicators that were not requested, or
// whose warm-up window exceeds the available bars, are left empty.
type Set struct {
	SMA       []Point
	Bollinger []BandPoint
	Ichimoku  *IchimokuSeries
	RSI       []Point
	MACD      []MACDPoint
}

// applyDefaults fills zero-valued periods with the package defaults.
func (c *Config) applyDefaults() {
	if c.SMAPeriod <= 0 {
		c.SMAPeriod = DefaultSMAPeriod
	}
	if c.BollingerPeriod <= 0 {
		c.BollingerPeriod = DefaultBollingerPeriod
	}
	if c.BollingerStdDev <= 0 {
		c.BollingerStdDev = DefaultBollingerStdDev
	}
	if c.RSIPeriod <= 0 {
		c.RSIPeriod = DefaultRSIPeriod
	}
	if c.TenkanPeriod <= 0 {
		c.TenkanPeriod = DefaultTenkanPeriod
	}
	if c.KijunPeriod <= 0 {
		c.KijunPeriod = DefaultKijunPeriod
	}
	if c.SenkouBPeriod <= 0 {
		c.SenkouBPeriod = DefaultSenkouBPeriod
	}
}

// ComputeAll computes every indicator enabled in the config. A bar sequence
// shorter than an indicator's warm-up window leaves that series empty rather
// than failing the whole set.
func ComputeAll(data []types.OHLCV, cfg Config) *Set {
	cfg.applyDefaults()
	set := &Set{}

	if cfg.SMA {
		if series, err := NewSMA(cfg.SMAPeriod).Series(data); err == nil {
			set.SMA = series
		}
	}
	if cfg.Bollinger {
		if series, err := NewBollingerBands(cfg.BollingerPeriod, cfg.BollingerStdDev).Series(data); err == nil {
			set.Bollinger = series
		}
	}
	if cfg.Ichimoku {
		if series, err := NewIchimoku(cfg.TenkanPeriod, cfg.KijunPeriod, cfg.SenkouBPeriod).Series(data); err == nil {
			set.Ichimoku = series
		}
	}
	if cfg.RSI {
		if series, err := NewRSI(cfg.RSIPeriod).Series(data); err == nil {
			set.RSI = series
		}
	}
	if cfg.MACD {
		if series, err := NewMACD().Series(data); err == nil {
			set.MACD = series
		}
	}
	return set
}
