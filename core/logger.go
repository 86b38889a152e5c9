package core

import (
	"fmt"
	"time"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/arbor/models"
)

// Logger provides debug logging for the tushare SDK.
type Logger struct {
	enabled bool
	log     arbor.ILogger
}

// NewLogger creates a new logger writing to the console.
func NewLogger(enabled bool) *Logger {
	level := "warn"
	if enabled {
		level = "debug"
	}
	l := arbor.NewLogger().WithConsoleWriter(models.WriterConfiguration{
		Type:             models.LogWriterTypeConsole,
		TimeFormat:       "15:04:05",
		DisableTimestamp: false,
	}).WithLevelFromString(level)
	return &Logger{enabled: enabled, log: l}
}

// NewLoggerFrom wraps an existing arbor logger.
func NewLoggerFrom(l arbor.ILogger, enabled bool) *Logger {
	if l == nil {
		return NewLogger(enabled)
	}
	return &Logger{enabled: enabled, log: l}
}

// Debug logs a debug message (only if debug is enabled).
func (l *Logger) Debug(message string, args ...any) {
	if l.enabled {
		if len(args) > 0 {
			message = fmt.Sprintf(message, args...)
		}
		l.log.Debug().Str("sdk", "tushare-go").Msg(message)
	}
}

// Request logs an outgoing query (without exposing the token).
func (l *Logger) Request(apiName, traceID string, params int) {
	if l.enabled {
		l.log.Debug().
			Str("api_name", apiName).
			Str("trace_id", traceID).
			Int("params", params).
			Msg("tushare request")
	}
}

// Timing logs query timing and result size.
func (l *Logger) Timing(apiName, traceID string, rows int, duration time.Duration) {
	if l.enabled {
		l.log.Debug().
			Str("api_name", apiName).
			Str("trace_id", traceID).
			Int("rows", rows).
			Int("duration_ms", int(duration.Milliseconds())).
			Msg("tushare response")
	}
}

// Failure logs a failed query. Failures are always logged at warn level.
func (l *Logger) Failure(apiName, traceID string, err error) {
	l.log.Warn().
		Str("api_name", apiName).
		Str("trace_id", traceID).
		Err(err).
		Msg("tushare request failed")
}

// Throttled logs time spent waiting on the client-side throttle.
func (l *Logger) Throttled(apiName string, waited time.Duration) {
	if l.enabled && waited > 0 {
		l.Debug("Throttled %s for %dms", apiName, waited.Milliseconds())
	}
}

// Enabled returns whether debug logging is enabled.
func (l *Logger) Enabled() bool {
	return l.enabled
}
