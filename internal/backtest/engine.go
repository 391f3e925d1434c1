package backtest

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"dca-strategy-planner/pkg/types"
)

// Frequency selects how often the recurring purchase triggers.
type Frequency string

const (
	FrequencyDaily   Frequency = "DAILY"
	FrequencyWeekly  Frequency = "WEEKLY"
	FrequencyMonthly Frequency = "MONTHLY"
)

// PurchaseRule describes a fixed recurring buy: at TargetHour every day, on
// TargetWeekday (WEEKLY) or on TargetDay of the month (MONTHLY). Bar
// timestamps are evaluated in UTC.
type PurchaseRule struct {
	Frequency     Frequency    `json:"frequency"`
	TargetHour    int          `json:"target_hour"`    // 0-23
	TargetWeekday time.Weekday `json:"target_weekday"` // used iff WEEKLY
	TargetDay     int          `json:"target_day"`     // 1-28, used iff MONTHLY
}

// HistoryPoint is one per-calendar-day sample of the simulated portfolio.
type HistoryPoint struct {
	Date     string  `json:"date"` // YYYY-MM-DD, UTC
	Value    float64 `json:"value"`
	Invested float64 `json:"invested"`
}

// Result is the outcome of one recurring-purchase replay. A new run replaces
// the previous result entirely; nothing is merged.
type Result struct {
	Symbol        string         `json:"symbol"`
	TotalInvested float64        `json:"total_invested"`
	CurrentValue  float64        `json:"current_value"`
	TotalCoins    float64        `json:"total_coins"`
	PnL           float64        `json:"pnl"`
	ROE           float64        `json:"roe"`
	AvgPrice      float64        `json:"avg_price"`
	BuyCount      int            `json:"buy_count"`
	History       []HistoryPoint `json:"history"`
}

var (
	// ErrNoHistoricalData reports an empty bar sequence; no Result is produced.
	ErrNoHistoricalData = errors.New("no historical data for backtest")
	// ErrInvalidRule reports a purchase rule outside its documented bounds.
	ErrInvalidRule = errors.New("invalid purchase rule")
)

// Validate checks the rule bounds before a replay starts.
func (r PurchaseRule) Validate() error {
	switch r.Frequency {
	case FrequencyDaily, FrequencyWeekly, FrequencyMonthly:
	default:
		return fmt.Errorf("%w: unknown frequency %q", ErrInvalidRule, r.Frequency)
	}
	if r.TargetHour < 0 || r.TargetHour > 23 {
		return fmt.Errorf("%w: target hour must be 0-23, got %d", ErrInvalidRule, r.TargetHour)
	}
	if r.Frequency == FrequencyMonthly && (r.TargetDay < 1 || r.TargetDay > 28) {
		return fmt.Errorf("%w: target day must be 1-28, got %d", ErrInvalidRule, r.TargetDay)
	}
	return nil
}

// matches reports whether a purchase triggers on a bar with this timestamp.
func (r PurchaseRule) matches(ts time.Time) bool {
	ts = ts.UTC()
	if ts.Hour() != r.TargetHour {
		return false
	}
	switch r.Frequency {
	case FrequencyDaily:
		return true
	case FrequencyWeekly:
		return ts.Weekday() == r.TargetWeekday
	case FrequencyMonthly:
		return ts.Day() == r.TargetDay
	}
	return false
}

// Engine replays a recurring-purchase rule over historical bars.
type Engine struct {
	amountUSD float64
}

// NewEngine creates a backtest engine buying amountUSD per trigger.
func NewEngine(amountUSD float64) *Engine {
	return &Engine{amountUSD: amountUSD}
}

// Run replays the rule over the bars in time order. Purchases execute at the
// bar's open price; portfolio value is sampled at each bar's close and
// recorded once per calendar day, with later bars overwriting earlier ones on
// the same day. The context is checked between bars so a superseded run can
// be abandoned mid-replay.
func (e *Engine) Run(ctx context.Context, symbol string, bars []types.OHLCV, rule PurchaseRule) (*Result, error) {
	if e.amountUSD <= 0 {
		return nil, fmt.Errorf("%w: purchase amount must be positive, got %.2f", ErrInvalidRule, e.amountUSD)
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}
	if len(bars) == 0 {
		return nil, ErrNoHistoricalData
	}

	result := &Result{Symbol: symbol}
	daily := make(map[string]HistoryPoint)

	for i, bar := range bars {
		// Cancellation is only worth checking occasionally; the per-bar
		// work is trivial.
		if i%1024 == 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
			}
		}

		if rule.matches(bar.Timestamp) {
			result.TotalCoins += e.amountUSD / bar.Open
			result.TotalInvested += e.amountUSD
			result.BuyCount++
		}

		if result.TotalInvested > 0 {
			date := bar.Timestamp.UTC().Format("2006-01-02")
			daily[date] = HistoryPoint{
				Date:     date,
				Value:    result.TotalCoins * bar.Close,
				Invested: result.TotalInvested,
			}
		}
	}

	result.History = make([]HistoryPoint, 0, len(daily))
	for _, point := range daily {
		result.History = append(result.History, point)
	}
	sort.Slice(result.History, func(i, j int) bool {
		return result.History[i].Date < result.History[j].Date
	})

	finalPrice := bars[len(bars)-1].Close
	result.CurrentValue = result.TotalCoins * finalPrice
	result.PnL = result.CurrentValue - result.TotalInvested
	if result.TotalInvested > 0 {
		result.ROE = result.PnL / result.TotalInvested * 100
		result.AvgPrice = result.TotalInvested / result.TotalCoins
	}
	return result, nil
}
