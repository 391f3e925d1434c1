package reporting

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DefaultOutputDir returns the conventional results directory for a symbol
// and interval, e.g. results/BTCUSDT_1h.
func DefaultOutputDir(symbol, interval string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	i := strings.ToLower(strings.TrimSpace(interval))
	if s == "" {
		s = "UNKNOWN"
	}
	if i == "" {
		i = "unknown"
	}

	return filepath.Join("results", fmt.Sprintf("%s_%s", s, i))
}
