package logger

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
)

// HclogLogger adapts a hashicorp/go-hclog logger to the Logger interface.
type HclogLogger struct {
	inner hclog.Logger
}

// NewHclogLogger builds an hclog-backed logger named after the CLI.
func NewHclogLogger(name string, level Level, output io.Writer, jsonFormat, caller bool) *HclogLogger {
	if output == nil {
		output = os.Stderr
	}

	inner := hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      toHclogLevel(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
		IncludeLocation: caller,
		// skip the adapter method
		AdditionalLocationOffset: 1,
	})

	return &HclogLogger{inner: inner}
}

// Debug emits a debug level log entry.
func (h *HclogLogger) Debug(format string, args ...interface{}) {
	h.inner.Debug(fmt.Sprintf(format, args...))
}

// Info emits an info level log entry.
func (h *HclogLogger) Info(format string, args ...interface{}) {
	h.inner.Info(fmt.Sprintf(format, args...))
}

// Warn emits a warn level log entry.
func (h *HclogLogger) Warn(format string, args ...interface{}) {
	h.inner.Warn(fmt.Sprintf(format, args...))
}

// Error emits an error level log entry.
func (h *HclogLogger) Error(format string, args ...interface{}) {
	h.inner.Error(fmt.Sprintf(format, args...))
}

// DebugContext emits a debug level structured log entry.
func (h *HclogLogger) DebugContext(ctx context.Context, msg string, fields ...Field) {
	h.inner.Debug(msg, hclogArgs(ctx, fields)...)
}

// InfoContext emits an info level structured log entry.
func (h *HclogLogger) InfoContext(ctx context.Context, msg string, fields ...Field) {
	h.inner.Info(msg, hclogArgs(ctx, fields)...)
}

// WarnContext emits a warn level structured log entry.
func (h *HclogLogger) WarnContext(ctx context.Context, msg string, fields ...Field) {
	h.inner.Warn(msg, hclogArgs(ctx, fields)...)
}

// ErrorContext emits an error level structured log entry.
func (h *HclogLogger) ErrorContext(ctx context.Context, msg string, fields ...Field) {
	h.inner.Error(msg, hclogArgs(ctx, fields)...)
}

// With derives a logger carrying fields on every entry.
func (h *HclogLogger) With(fields ...Field) Logger {
	return &HclogLogger{inner: h.inner.With(hclogArgs(context.Background(), fields)...)}
}

// SetLevel adjusts the minimum log level emitted.
func (h *HclogLogger) SetLevel(level Level) {
	h.inner.SetLevel(toHclogLevel(level))
}

// GetLevel returns the current minimum log level.
func (h *HclogLogger) GetLevel() Level {
	switch h.inner.GetLevel() {
	case hclog.Trace, hclog.Debug:
		return LevelDebug
	case hclog.Warn:
		return LevelWarn
	case hclog.Error, hclog.Off:
		return LevelError
	default:
		return LevelInfo
	}
}

func toHclogLevel(level Level) hclog.Level {
	switch level {
	case LevelDebug:
		return hclog.Debug
	case LevelWarn:
		return hclog.Warn
	case LevelError:
		return hclog.Error
	default:
		return hclog.Info
	}
}

func hclogArgs(ctx context.Context, fields []Field) []interface{} {
	all := append(contextFields(ctx), fields...)
	args := make([]interface{}, 0, len(all)*2)
	for _, f := range all {
		args = append(args, f.Key, f.Value)
	}
	return args
}
