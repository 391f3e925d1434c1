package reporting

import (
	"encoding/json"
	"os"

	"dca-strategy-planner/internal/backtest"
	"dca-strategy-planner/internal/planner"
)

// JSONReporter writes results as indented JSON files
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// planDocument pairs the inputs with the computed plan so a saved file is
// reproducible on its own.
type planDocument struct {
	Config *planner.Config `json:"config"`
	Result *planner.Result `json:"result"`
}

// WritePlanJSON writes the config and computed plan to a JSON file
func (r *JSONReporter) WritePlanJSON(cfg *planner.Config, result *planner.Result, path string) error {
	return writeJSON(planDocument{Config: cfg, Result: result}, path)
}

// WriteBacktestJSON writes a backtest result to a JSON file
func (r *JSONReporter) WriteBacktestJSON(result *backtest.Result, path string) error {
	return writeJSON(result, path)
}

func writeJSON(v interface{}, path string) error {
	if err := ensureParentDir(path); err != nil {
		return err
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Package-level convenience functions
func WritePlanJSON(cfg *planner.Config, result *planner.Result, path string) error {
	return NewJSONReporter().WritePlanJSON(cfg, result, path)
}

func WriteBacktestJSON(result *backtest.Result, path string) error {
	return NewJSONReporter().WriteBacktestJSON(result, path)
}
