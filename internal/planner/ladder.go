package planner

import (
	"errors"
	"fmt"
	"math"
)

// Ladder construction constants, shared with the dashboard the planner feeds.
const (
	// ModeClassic: rung spacing and first-order sizing.
	classicStepPercent    = 1.5
	classicFirstOrderSize = 0.02

	// Maintenance margin buffer applied when composing the liquidation price,
	// as a fraction of the average entry price.
	maintenanceBufferRatio = 0.004

	// The suggested stop sits 0.5% inside the liquidation price.
	stopLossBufferRatio = 0.005
)

// takeProfitTargets are the fixed exit scenarios, in percent.
var takeProfitTargets = []float64{2, 5, 10, 20}

var (
	// ErrInvalidRange reports a range configuration with min >= max.
	ErrInvalidRange = errors.New("range minimum must be below range maximum")
	// ErrInvalidConfig reports non-positive capital, leverage, price or counts.
	ErrInvalidConfig = errors.New("invalid planner configuration")
)

// Validate checks the configuration before any ladder arithmetic runs.
func (c Config) Validate() error {
	if c.Capital <= 0 {
		return fmt.Errorf("%w: capital must be positive, got %.2f", ErrInvalidConfig, c.Capital)
	}
	if c.Leverage <= 0 {
		return fmt.Errorf("%w: leverage must be positive, got %.2f", ErrInvalidConfig, c.Leverage)
	}
	if c.ReferencePrice <= 0 {
		return fmt.Errorf("%w: reference price must be positive, got %.4f", ErrInvalidConfig, c.ReferencePrice)
	}
	if c.Direction != DirectionLong && c.Direction != DirectionShort {
		return fmt.Errorf("%w: unknown direction %q", ErrInvalidConfig, c.Direction)
	}

	switch c.Mode {
	case ModeClassic:
		if c.Classic.Entries < 1 {
			return fmt.Errorf("%w: entry count must be at least 1, got %d", ErrInvalidConfig, c.Classic.Entries)
		}
	case ModeRange:
		if c.Range.GridCount < 1 {
			return fmt.Errorf("%w: grid count must be at least 1, got %d", ErrInvalidConfig, c.Range.GridCount)
		}
		if c.Range.Min <= 0 {
			return fmt.Errorf("%w: range minimum must be positive, got %.4f", ErrInvalidConfig, c.Range.Min)
		}
		if c.Range.Multiplier < 0 {
			return fmt.Errorf("%w: volume multiplier must not be negative, got %.2f", ErrInvalidConfig, c.Range.Multiplier)
		}
		if c.Range.Min >= c.Range.Max {
			return ErrInvalidRange
		}
	default:
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, c.Mode)
	}
	return nil
}

// Calculate builds the full entry ladder, aggregate position figures,
// liquidation/stop estimates and exit scenarios for the given configuration.
func Calculate(cfg Config) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var entries []EntryLevel
	switch cfg.Mode {
	case ModeClassic:
		entries = classicLadder(cfg)
	case ModeRange:
		entries = rangeLadder(cfg)
	}

	result := &Result{Entries: entries}
	for _, e := range entries {
		result.TotalVolume += e.Volume
		result.TotalCoins += e.CoinSize
	}
	result.AvgPrice = result.TotalVolume / result.TotalCoins
	result.TotalMargin = result.TotalVolume / cfg.Leverage

	// The margin check must run before any price-distance arithmetic: a
	// negative slack would otherwise turn into a nonsensical liquidation
	// price on the profitable side of the entry.
	slack := cfg.Capital - result.TotalMargin
	if slack < 0 {
		result.Underfunded = true
	} else {
		priceDistance := slack / result.TotalCoins
		buffer := result.AvgPrice * maintenanceBufferRatio

		var liqPrice, stopLoss float64
		if cfg.Direction == DirectionLong {
			liqPrice = (result.AvgPrice - priceDistance) + buffer
			stopLoss = liqPrice * (1 + stopLossBufferRatio)
			if cfg.Mode == ModeRange && liqPrice >= cfg.Range.Min {
				result.RangeUnsafe = true
			}
		} else {
			liqPrice = (result.AvgPrice + priceDistance) - buffer
			stopLoss = liqPrice * (1 - stopLossBufferRatio)
			if cfg.Mode == ModeRange && liqPrice <= cfg.Range.Max {
				result.RangeUnsafe = true
			}
		}

		// Deep ladders on low leverage can push the raw estimates below
		// zero; clamp rather than report a negative price.
		if liqPrice < 0 {
			liqPrice = 0
		}
		if stopLoss < 0 {
			stopLoss = 0
		}

		result.LiquidationPrice = &liqPrice
		result.SuggestedStopLoss = &stopLoss
		result.LossAtStopLoss = math.Abs(result.AvgPrice-stopLoss) * result.TotalCoins
	}

	result.Exits = exitPlans(cfg.Direction, result.AvgPrice, result.TotalCoins, result.TotalMargin)
	return result, nil
}

// classicLadder lays rungs a fixed percentage apart in the adverse direction,
// doubling the notional volume on every rung.
func classicLadder(cfg Config) []EntryLevel {
	entries := make([]EntryLevel, 0, cfg.Classic.Entries)
	volume := cfg.Capital * cfg.Leverage * classicFirstOrderSize

	for i := 0; i < cfg.Classic.Entries; i++ {
		offset := classicStepPercent * float64(i) / 100
		var price float64
		if cfg.Direction == DirectionLong {
			price = cfg.ReferencePrice * (1 - offset)
		} else {
			price = cfg.ReferencePrice * (1 + offset)
		}

		if i > 0 {
			volume *= 2
		}

		entries = append(entries, EntryLevel{
			Level:    i + 1,
			Price:    price,
			Volume:   volume,
			CoinSize: volume / price,
		})
	}
	return entries
}

// rangeLadder spreads rungs evenly between the reference price and the far
// edge of the configured range, splitting capital*leverage by the multiplier
// progression.
func rangeLadder(cfg Config) []EntryLevel {
	count := cfg.Range.GridCount

	totalRatio := 0.0
	for i := 0; i < count; i++ {
		totalRatio += math.Pow(cfg.Range.Multiplier, float64(i))
	}
	baseVolume := cfg.Capital * cfg.Leverage / totalRatio

	var startPrice, endPrice float64
	if cfg.Direction == DirectionLong {
		startPrice = math.Min(cfg.ReferencePrice, cfg.Range.Max)
		endPrice = cfg.Range.Min
	} else {
		startPrice = math.Max(cfg.ReferencePrice, cfg.Range.Min)
		endPrice = cfg.Range.Max
	}

	step := 0.0
	if count > 1 {
		step = math.Abs(startPrice-endPrice) / float64(count-1)
	}

	entries := make([]EntryLevel, 0, count)
	for i := 0; i < count; i++ {
		var price float64
		if cfg.Direction == DirectionLong {
			price = startPrice - step*float64(i)
			if price < cfg.Range.Min {
				price = cfg.Range.Min
			}
		} else {
			price = startPrice + step*float64(i)
			if price > cfg.Range.Max {
				price = cfg.Range.Max
			}
		}

		weight := math.Pow(cfg.Range.Multiplier, float64(i))
		volume := baseVolume * weight

		entries = append(entries, EntryLevel{
			Level:    i + 1,
			Price:    price,
			Volume:   volume,
			CoinSize: volume / price,
			Weight:   weight,
		})
	}
	return entries
}

// exitPlans computes the fixed take-profit scenarios from the aggregate
// position.
func exitPlans(direction Direction, avgPrice, totalCoins, totalMargin float64) []ExitPlan {
	plans := make([]ExitPlan, 0, len(takeProfitTargets))
	for _, pct := range takeProfitTargets {
		var price float64
		if direction == DirectionLong {
			price = avgPrice * (1 + pct/100)
		} else {
			price = avgPrice * (1 - pct/100)
		}

		pnl := totalCoins * math.Abs(price-avgPrice)
		roe := 0.0
		if totalMargin > 0 {
			roe = pnl / totalMargin * 100
		}
		plans = append(plans, ExitPlan{
			TargetPercent: pct,
			Price:         price,
			PnL:           pnl,
			ROE:           roe,
		})
	}
	return plans
}
