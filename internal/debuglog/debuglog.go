// Package debuglog is the SUZUME_DEBUG-gated decision-log helper spec §6
// and §9 describe: the scorer and inflection engine log every cost/
// confidence adjustment as a structured event, but only when the
// environment variable is set. There is no logging framework anywhere in
// the pack's non-ingestion code (the teacher's cmd/smoketest reaches
// straight for fmt.Fprintf(os.Stderr, ...)), so this package is a thin
// wrapper around that idiom rather than an adapter for a third-party
// logger.
package debuglog

import (
	"fmt"
	"os"
	"sync"
)

var (
	once    sync.Once
	enabled bool

	eventsMu sync.Mutex
	events   []string
)

// Enabled reports whether SUZUME_DEBUG is set to a non-empty value. The
// env var is read once and cached; tests that need to flip it should call
// Reset first.
func Enabled() bool {
	once.Do(func() {
		enabled = os.Getenv("SUZUME_DEBUG") != ""
	})
	return enabled
}

// Reset clears the cached SUZUME_DEBUG reading. Intended for tests only.
func Reset() {
	once = sync.Once{}
}

// Printf writes a formatted decision event to stderr, prefixed with
// component, when debugging is enabled, and also appends it to the
// in-memory event buffer AnalyzeDebug-style callers can retrieve with
// Events. It is a no-op otherwise.
func Printf(component, format string, args ...any) {
	if !Enabled() {
		return
	}
	line := fmt.Sprintf("[suzume:%s] "+format, append([]any{component}, args...)...)
	fmt.Fprintln(os.Stderr, line)
	eventsMu.Lock()
	events = append(events, line)
	eventsMu.Unlock()
}

// Events returns the decision events recorded since the last ClearEvents
// (or process start). Returns an empty, non-nil slice when nothing was
// recorded.
func Events() []string {
	eventsMu.Lock()
	defer eventsMu.Unlock()
	out := make([]string, len(events))
	copy(out, events)
	return out
}

// ClearEvents empties the in-memory event buffer. Callers that want one
// trace per Analyze call invoke this before running the pipeline.
func ClearEvents() {
	eventsMu.Lock()
	events = nil
	eventsMu.Unlock()
}
