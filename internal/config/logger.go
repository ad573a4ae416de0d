package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// ServiceName tags every log line written by the catalog backend.
const ServiceName = "athletic-store"

// NewLogger creates a new logger based on the configuration.
func NewLogger(cfg LoggerConfig) zerolog.Logger {
	return newLogger(cfg, os.Stdout)
}

func newLogger(cfg LoggerConfig, out io.Writer) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	// Configure output format
	if cfg.Format == "console" {
		out = zerolog.ConsoleWriter{
			Out:        out,
			TimeFormat: time.RFC3339,
		}
	}

	return zerolog.New(out).With().
		Timestamp().
		Str("service", ServiceName).
		Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
