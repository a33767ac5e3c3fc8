package logger

import (
	"context"
	"log/slog"
	"os"
)

// Logger emits one JSON line per event. Every entry carries the service
// name and hostname so logs from several runs can be merged and filtered.
type Logger struct {
	sl *slog.Logger
}

func New(service string) *Logger {
	return NewWithLevel(service, slog.LevelInfo)
}

func NewWithLevel(service string, level slog.Level) *Logger {
	h := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	sl := slog.New(h).With(
		"service", service,
		"hostname", hostname(),
	)
	return &Logger{sl: sl}
}

// ParseLevel maps a config string to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (l *Logger) log(level slog.Level, action string, fields map[string]any, err error) {
	attrs := make([]any, 0, 2*len(fields)+4)
	attrs = append(attrs, "action", action)
	for k, v := range fields {
		attrs = append(attrs, k, v)
	}
	if err != nil {
		attrs = append(attrs, "error", err.Error())
	}
	l.sl.Log(context.Background(), level, action, attrs...)
}

func (l *Logger) Info(action string, fields map[string]any)  { l.log(slog.LevelInfo, action, fields, nil) }
func (l *Logger) Debug(action string, fields map[string]any) { l.log(slog.LevelDebug, action, fields, nil) }
func (l *Logger) Error(action string, err error, fields map[string]any) {
	l.log(slog.LevelError, action, fields, err)
}

func hostname() string { h, _ := os.Hostname(); return h }
