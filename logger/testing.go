package logger

import (
	"context"
	"io"
	"sync"
)

// NewTestLogger returns a logger that discards all output.
func NewTestLogger() Logger {
	return newLogrusLogger("debug", io.Discard)
}

// Entry is a single message captured by a Recorder.
type Entry struct {
	Level     string
	Message   string
	Fields    map[string]interface{}
	RequestID string
}

// Recorder is a Logger that keeps every entry in memory.
type Recorder struct {
	mu      sync.Mutex
	entries []Entry
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) Debug(ctx context.Context, msg string, fields map[string]interface{}) {
	r.record(ctx, "debug", msg, fields)
}

func (r *Recorder) Info(ctx context.Context, msg string, fields map[string]interface{}) {
	r.record(ctx, "info", msg, fields)
}

func (r *Recorder) Warn(ctx context.Context, msg string, fields map[string]interface{}) {
	r.record(ctx, "warn", msg, fields)
}

func (r *Recorder) Error(ctx context.Context, msg string, fields map[string]interface{}) {
	r.record(ctx, "error", msg, fields)
}

// Entries returns a copy of the captured entries.
func (r *Recorder) Entries() []Entry {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

// Messages returns the captured entries with the given message.
func (r *Recorder) Messages(msg string) []Entry {
	var out []Entry
	for _, e := range r.Entries() {
		if e.Message == msg {
			out = append(out, e)
		}
	}
	return out
}

func (r *Recorder) record(ctx context.Context, level, msg string, fields map[string]interface{}) {
	copied := make(map[string]interface{}, len(fields))
	for k, v := range fields {
		copied[k] = v
	}

	r.mu.Lock()
	r.entries = append(r.entries, Entry{
		Level:     level,
		Message:   msg,
		Fields:    copied,
		RequestID: RequestIDFromContext(ctx),
	})
	r.mu.Unlock()
}
