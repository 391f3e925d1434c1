package logger

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger tagged with the component name. Set
// LOG_LEVEL=debug (or any zerolog level string) to change verbosity;
// LOG_FORMAT=json switches to raw JSON output for log shippers.
func New(component string) zerolog.Logger {
	level := zerolog.InfoLevel
	if raw := os.Getenv("LOG_LEVEL"); raw != "" {
		if parsed, err := zerolog.ParseLevel(raw); err == nil {
			level = parsed
		}
	}

	logger := zerolog.New(os.Stderr)
	if os.Getenv("LOG_FORMAT") != "json" {
		logger = logger.Output(zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
		})
	}

	return logger.Level(level).With().
		Timestamp().
		Str("component", component).
		Logger()
}
