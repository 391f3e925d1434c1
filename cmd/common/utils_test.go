package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "creds.env")
	require.NoError(t, os.WriteFile(path, []byte("BYBIT_API_KEY=file-key\n"), 0644))
	// godotenv never overrides variables already present, even empty ones;
	// t.Setenv registers the restore, Unsetenv clears for the load.
	t.Setenv("BYBIT_API_KEY", "")
	os.Unsetenv("BYBIT_API_KEY")

	require.NoError(t, LoadEnvFile(path))
	assert.Equal(t, "file-key", os.Getenv("BYBIT_API_KEY"))
}

func TestLoadEnvFile_MissingFileIsNotAnError(t *testing.T) {
	assert.NoError(t, LoadEnvFile(filepath.Join(t.TempDir(), "absent.env")))
}

func TestFileExists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.csv")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	assert.True(t, FileExists(path))
}

func TestResolvePath(t *testing.T) {
	assert.Equal(t, "", ResolvePath("", "results", ".json"))
	assert.Equal(t, filepath.Join("results", "plan.json"), ResolvePath("plan", "results", ".json"))
	assert.Equal(t, filepath.Join("results", "plan.xlsx"), ResolvePath("plan.xlsx", "results", ""))
	// An explicit directory wins over the default
	assert.Equal(t, "out/plan.json", ResolvePath("out/plan.json", "results", ".json"))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(1234.5))
	assert.Equal(t, "$-3.00", FormatCurrency(-3))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.50%", FormatPercent(0.125, 2))
	assert.Equal(t, "8%", FormatPercent(0.08, 0))
}
