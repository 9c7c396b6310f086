package ballistics

import "sync"

// Level is the severity of a Diagnostic.
type Level uint8

const (
	LevelWarning Level = iota
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic reports a suspicious input that did not stop the computation.
type Diagnostic struct {
	Level   Level
	Message string
}

// Sink receives diagnostics. Implementations shared between goroutines must
// be safe for concurrent use.
type Sink interface {
	Report(Diagnostic)
}

// SinkFunc adapts a function to a Sink.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// NopSink discards every diagnostic.
type NopSink struct{}

// Report does nothing.
func (NopSink) Report(Diagnostic) {}

// Collector records diagnostics in arrival order.
type Collector struct {
	mu    sync.Mutex
	diags []Diagnostic
}

// Report appends d.
func (c *Collector) Report(d Diagnostic) {
	c.mu.Lock()
	c.diags = append(c.diags, d)
	c.mu.Unlock()
}

// Diagnostics returns a copy of everything reported so far.
func (c *Collector) Diagnostics() []Diagnostic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Diagnostic(nil), c.diags...)
}

// Reset drops recorded diagnostics.
func (c *Collector) Reset() {
	c.mu.Lock()
	c.diags = nil
	c.mu.Unlock()
}
