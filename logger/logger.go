package logger

import (
	"context"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// Logger writes leveled, structured log messages.
type Logger interface {
	Debug(ctx context.Context, msg string, fields map[string]interface{})
	Info(ctx context.Context, msg string, fields map[string]interface{})
	Warn(ctx context.Context, msg string, fields map[string]interface{})
	Error(ctx context.Context, msg string, fields map[string]interface{})
}

type contextKey string

const requestIDKey contextKey = "request_id"

// WithRequestID returns a copy of ctx carrying the given request ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromContext returns the request ID stored in ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// LogrusLogger implements Logger on top of logrus.
type LogrusLogger struct {
	log *logrus.Logger
}

// NewLogrusLogger creates a JSON logrus logger writing to stdout.
// Unknown levels fall back to info.
func NewLogrusLogger(level string) *LogrusLogger {
	return newLogrusLogger(level, os.Stdout)
}

func newLogrusLogger(level string, out io.Writer) *LogrusLogger {
	l := logrus.New()
	l.SetOutput(out)
	l.SetFormatter(&logrus.JSONFormatter{})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		lvl = logrus.InfoLevel
	}
	l.SetLevel(lvl)

	return &LogrusLogger{log: l}
}

// Debug logs at debug level.
func (l *LogrusLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	l.entry(ctx, fields).Debug(msg)
}

// Info logs at info level.
func (l *LogrusLogger) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	l.entry(ctx, fields).Info(msg)
}

// Warn logs at warn level.
func (l *LogrusLogger) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	l.entry(ctx, fields).Warn(msg)
}

// Error logs at error level.
func (l *LogrusLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	l.entry(ctx, fields).Error(msg)
}

func (l *LogrusLogger) entry(ctx context.Context, fields map[string]interface{}) *logrus.Entry {
	entry := logrus.NewEntry(l.log)
	if ctx != nil {
		entry = entry.WithContext(ctx)
	}
	if id := RequestIDFromContext(ctx); id != "" {
		entry = entry.WithField("request_id", id)
	}
	if len(fields) > 0 {
		entry = entry.WithFields(logrus.Fields(fields))
	}
	return entry
}
