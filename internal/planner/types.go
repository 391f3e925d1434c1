package planner

// Direction is the side of the planned futures position.
type Direction string

const (
	DirectionLong  Direction = "LONG"
	DirectionShort Direction = "SHORT"
)

// Mode selects how the entry ladder is laid out.
type Mode string

const (
	// ModeClassic spaces rungs a fixed percentage apart and doubles the
	// notional volume on every rung (martingale).
	ModeClassic Mode = "CLASSIC"
	// ModeRange spreads rungs evenly across a configured price range and
	// scales volumes by a grid multiplier.
	ModeRange Mode = "RANGE"
)

// ClassicParams configures ModeClassic.
type ClassicParams struct {
	Entries int `json:"entries"`
}

// RangeParams configures ModeRange.
type RangeParams struct {
	Min        float64 `json:"min"`
	Max        float64 `json:"max"`
	GridCount  int     `json:"grid_count"`
	Multiplier float64 `json:"multiplier"`
}

// Config gathers every planner input into one immutable value. Calculate has
// no hidden state: the same Config and reference price always produce the
// same Result.
type Config struct {
	Capital        float64       `json:"capital"`
	Leverage       float64       `json:"leverage"`
	Direction      Direction     `json:"direction"`
	Mode           Mode          `json:"mode"`
	ReferencePrice float64       `json:"reference_price"`
	Classic        ClassicParams `json:"classic"`
	Range          RangeParams   `json:"range"`
}

// EntryLevel is one rung of the entry ladder, ordered by Level ascending,
// which corresponds to increasing distance from the reference price in the
// direction adverse to the position.
type EntryLevel struct {
	Level    int     `json:"level"`
	Price    float64 `json:"price"`
	Volume   float64 `json:"volume"` // notional USD
	CoinSize float64 `json:"coin_size"`
	Weight   float64 `json:"weight"`
}

// ExitPlan is one take-profit scenario computed from the average entry price.
type ExitPlan struct {
	TargetPercent float64 `json:"target_percent"`
	Price         float64 `json:"price"`
	PnL           float64 `json:"pnl"`
	ROE           float64 `json:"roe"`
}

// Result is the full ladder plan. LiquidationPrice and SuggestedStopLoss are
// nil when the position is underfunded (margin exceeds capital before any
// adverse move).
type Result struct {
	Entries []EntryLevel `json:"entries"`
	Exits   []ExitPlan   `json:"exits"`

	AvgPrice    float64 `json:"avg_price"`
	TotalVolume float64 `json:"total_volume"`
	TotalCoins  float64 `json:"total_coins"`
	TotalMargin float64 `json:"total_margin"`

	LiquidationPrice  *float64 `json:"liquidation_price"`
	SuggestedStopLoss *float64 `json:"suggested_stop_loss"`
	LossAtStopLoss    float64  `json:"loss_at_stop_loss"`

	Underfunded bool `json:"underfunded"`
	RangeUnsafe bool `json:"range_unsafe"`
}
