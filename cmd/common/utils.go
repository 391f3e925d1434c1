package common

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// LoadEnvFile loads environment variables from a file, silently continuing on
// a missing file so system environment variables alone are enough.
func LoadEnvFile(path string) error {
	if path == "" {
		path = ".env"
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	return godotenv.Load(path)
}

// FileExists checks if a file exists
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}

// ResolvePath resolves a path with smart defaults: a bare filename gets the
// default directory, a missing extension gets the default extension.
func ResolvePath(path, defaultDir, defaultExt string) string {
	if path == "" {
		return ""
	}

	if defaultExt != "" && !strings.HasSuffix(strings.ToLower(path), defaultExt) {
		path += defaultExt
	}

	if defaultDir != "" && !strings.ContainsAny(path, "/\\") {
		return filepath.Join(defaultDir, path)
	}

	return path
}

// FormatCurrency formats a value as currency
func FormatCurrency(value float64) string {
	return fmt.Sprintf("$%.2f", value)
}

// FormatPercent formats a decimal as a percentage
func FormatPercent(value float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, value*100)
}
