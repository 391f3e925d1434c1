package reporting

import (
	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
)

// PlanReporter renders a computed strategy ladder
type PlanReporter interface {
	// OutputPlan renders the ladder, exit plans and risk levels
	OutputPlan(cfg *planner.Config, result *planner.Result)
}

// BacktestReporter renders a recurring-purchase backtest result
type BacktestReporter interface {
	// OutputResults renders the final metrics and purchase history
	OutputResults(result *backtest.Result)
}
