// Package diag provides the log-and-continue diagnostic sink used by the
// resolver when it encounters an entity kind it doesn't handle. It exists
// so callers can capture or silence diagnostics instead of inheriting a bare
// fmt.Println to stdout.
package diag

import "fmt"

// Logger receives one-line diagnostics. The default Logger writes to stdout,
// matching the plain progress narration used elsewhere (step/writer.go,
// render/step.go).
type Logger interface {
	Logf(format string, args ...any)
}

// StdLogger writes diagnostics to stdout via fmt.Printf.
type StdLogger struct{}

// Logf implements Logger.
func (StdLogger) Logf(format string, args ...any) {
	fmt.Printf(format+"\n", args...)
}

// Discard silently drops all diagnostics.
type Discard struct{}

// Logf implements Logger.
func (Discard) Logf(string, ...any) {}

// Collector records diagnostics for assertions in tests.
type Collector struct {
	Lines []string
}

// Logf implements Logger.
func (c *Collector) Logf(format string, args ...any) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}
