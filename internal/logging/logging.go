// Package logging provides structured logging functionality.
package logging

import (
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogConfig holds logging configuration.
type LogConfig struct {
	Level      string
	Console    bool
	File       bool
	FilePath   string
	MaxSize    int // megabytes
	MaxBackups int
	MaxAge     int // days
}

// DefaultLogConfig returns the default logging configuration. File
// logging is off by default; scheduled runs that want a persistent trail
// enable it in the config file.
func DefaultLogConfig() LogConfig {
	home, _ := os.UserHomeDir()
	return LogConfig{
		Level:      "info",
		Console:    true,
		File:       false,
		FilePath:   filepath.Join(home, ".config", "kabualert", "logs", "kabualert.log"),
		MaxSize:    10,
		MaxBackups: 5,
		MaxAge:     30,
	}
}

// NewLogger creates a new logger with default configuration.
func NewLogger() zerolog.Logger {
	return NewLoggerWithConfig(DefaultLogConfig())
}

// NewLoggerWithConfig creates a new logger with the specified configuration.
// Console output goes to stderr so that stdout stays reserved for command
// output, including JSON mode.
func NewLoggerWithConfig(cfg LogConfig) zerolog.Logger {
	var writers []io.Writer

	if cfg.Console {
		consoleWriter := zerolog.ConsoleWriter{
			Out:        os.Stderr,
			TimeFormat: time.RFC3339,
			FormatLevel: func(i interface{}) string {
				if ll, ok := i.(string); ok {
					switch ll {
					case "debug":
						return "\033[36mDBG\033[0m"
					case "info":
						return "\033[32mINF\033[0m"
					case "warn":
						return "\033[33mWRN\033[0m"
					case "error":
						return "\033[31mERR\033[0m"
					default:
						return ll
					}
				}
				return "???"
			},
		}
		writers = append(writers, consoleWriter)
	}

	// File writer with rotation
	if cfg.File {
		logDir := filepath.Dir(cfg.FilePath)
		if err := os.MkdirAll(logDir, 0755); err == nil {
			fileWriter := &lumberjack.Logger{
				Filename:   cfg.FilePath,
				MaxSize:    cfg.MaxSize,
				MaxBackups: cfg.MaxBackups,
				MaxAge:     cfg.MaxAge,
				Compress:   true,
			}
			writers = append(writers, fileWriter)
		}
	}

	var writer io.Writer
	if len(writers) == 0 {
		writer = os.Stderr
	} else if len(writers) == 1 {
		writer = writers[0]
	} else {
		writer = zerolog.MultiLevelWriter(writers...)
	}

	level := parseLevel(cfg.Level)
	zerolog.SetGlobalLevel(level)

	logger := zerolog.New(writer).
		With().
		Timestamp().
		Caller().
		Logger()

	return logger
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetDebugLevel sets the global log level to debug.
func SetDebugLevel() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
}

// LogTickerStatus logs the evaluated price state for one ticker. The
// market state comes from the quote provider ("REGULAR", "CLOSED", ...)
// and flags prices captured outside a trading session.
func LogTickerStatus(logger zerolog.Logger, ticker string, current, prevClose, changePct float64, marketState string) {
	event := logger.Info().
		Str("event", "ticker_status").
		Str("ticker", ticker).
		Float64("current", current).
		Float64("prev_close", prevClose).
		Float64("change_pct", changePct)
	if marketState != "" {
		event = event.Str("market_state", marketState)
	}
	event.Msg("Ticker checked")
}

// LogThresholdCrossing logs a threshold rule firing for a watched ticker.
func LogThresholdCrossing(logger zerolog.Logger, ticker, direction string, threshold, changePct float64) {
	logger.Info().
		Str("event", "threshold_crossing").
		Str("ticker", ticker).
		Str("direction", direction).
		Float64("threshold", threshold).
		Float64("change_pct", changePct).
		Msg("Threshold crossed")
}

// LogDispatch logs the outcome of a notification delivery attempt.
func LogDispatch(logger zerolog.Logger, destination string, events int, err error) {
	if err != nil {
		logger.Error().
			Str("event", "dispatch").
			Str("destination", destination).
			Int("events", events).
			Err(err).
			Msg("Notification delivery failed")
		return
	}
	logger.Info().
		Str("event", "dispatch").
		Str("destination", destination).
		Int("events", events).
		Msg("Notification delivered")
}
