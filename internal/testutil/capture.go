package testutil

import (
	"strings"
	"sync"
)

// LogEntry is one record captured by CaptureLogger.
type LogEntry struct {
	Level   string
	Message string
	Args    []any
}

// Arg returns the value following the named key in the entry's argument
// list, with ok reporting whether the key is present.
func (e LogEntry) Arg(key string) (any, bool) {
	for i := 0; i+1 < len(e.Args); i += 2 {
		if e.Args[i] == key {
			return e.Args[i+1], true
		}
	}

	return nil, false
}

// CaptureLogger implements logging.Logger and records every call so tests
// can assert on emitted messages and attributes. Safe for concurrent use.
type CaptureLogger struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewCaptureLogger creates an empty capture logger.
func NewCaptureLogger() *CaptureLogger { return &CaptureLogger{} }

// Debug records a debug-level entry.
func (l *CaptureLogger) Debug(msg string, args ...any) { l.record("DEBUG", msg, args) }

// Info records an info-level entry.
func (l *CaptureLogger) Info(msg string, args ...any) { l.record("INFO", msg, args) }

// Warn records a warn-level entry.
func (l *CaptureLogger) Warn(msg string, args ...any) { l.record("WARN", msg, args) }

// Error records an error-level entry.
func (l *CaptureLogger) Error(msg string, args ...any) { l.record("ERROR", msg, args) }

// Entries returns a copy of everything recorded so far.
func (l *CaptureLogger) Entries() []LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	entries := make([]LogEntry, len(l.entries))
	copy(entries, l.entries)
	return entries
}

// Messages returns the recorded messages in order.
func (l *CaptureLogger) Messages() []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	messages := make([]string, 0, len(l.entries))
	for _, e := range l.entries {
		messages = append(messages, e.Message)
	}
	return messages
}

// Has reports whether a message was recorded. A "LEVEL " prefix narrows the
// match to one level, e.g. Has("ERROR dispatch.error").
func (l *CaptureLogger) Has(message string) bool {
	level, msg := "", message
	if before, after, found := strings.Cut(message, " "); found {
		switch before {
		case "DEBUG", "INFO", "WARN", "ERROR":
			level, msg = before, after
		}
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range l.entries {
		if e.Message == msg && (level == "" || e.Level == level) {
			return true
		}
	}

	return false
}

// Reset discards everything recorded so far.
func (l *CaptureLogger) Reset() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = nil
}

func (l *CaptureLogger) record(level, msg string, args []any) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, LogEntry{Level: level, Message: msg, Args: args})
}
