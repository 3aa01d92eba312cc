package observability

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide zerolog Logger: human-friendly
// console output when APP_ENV is dev, JSON otherwise.
func NewLogger(env string) zerolog.Logger {
	if env == "dev" || env == "development" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
