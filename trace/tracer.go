package trace

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Tracer provides execution tracing for debugging casm programs
type Tracer struct {
	enabled bool
	filters []string
	writer  io.Writer
	mu      sync.Mutex
}

// Global tracer instance
var globalTracer *Tracer

// Init initializes the global tracer
func Init(enabled bool, filters []string, writer io.Writer) {
	if writer == nil {
		writer = os.Stderr
	}
	globalTracer = &Tracer{
		enabled: enabled,
		filters: filters,
		writer:  writer,
	}
}

// IsEnabled returns whether tracing is enabled
func IsEnabled() bool {
	if globalTracer == nil {
		return false
	}
	return globalTracer.enabled
}

// matchesFilter checks if a statement kind matches any of the filter patterns
func (t *Tracer) matchesFilter(kind string) bool {
	if len(t.filters) == 0 {
		return true // No filters = trace everything
	}

	for _, pattern := range t.filters {
		if matched, _ := filepath.Match(pattern, kind); matched {
			return true
		}
	}
	return false
}

// Stmt logs a statement about to execute
func (t *Tracer) Stmt(line int, kind string, text string) {
	if !t.enabled || !t.matchesFilter(kind) {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %4d %-4s %s\n", line, kind, text)
}

// Skip logs a line discarded by an inactive conditional branch
func (t *Tracer) Skip(line int, text string) {
	if !t.enabled || !t.matchesFilter("skip") {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	// Truncate long lines for readability
	if len(text) > 60 {
		text = text[:57] + "..."
	}

	fmt.Fprintf(t.writer, "[TRACE] %4d skip %q\n", line, text)
}

// Branch logs a conditional block opening with its evaluated condition
func (t *Tracer) Branch(line int, cond bool) {
	if !t.enabled || !t.matchesFilter("if") {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %4d if   => %v\n", line, cond)
}

// Assign logs a variable write
func (t *Tracer) Assign(line int, name string, value string) {
	if !t.enabled || !t.matchesFilter("set") {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	fmt.Fprintf(t.writer, "[TRACE] %4d set  %s = %s\n", line, name, value)
}

// Global convenience functions

// Stmt logs a statement using the global tracer
func Stmt(line int, kind string, text string) {
	if globalTracer != nil {
		globalTracer.Stmt(line, kind, text)
	}
}

// Skip logs a discarded line using the global tracer
func Skip(line int, text string) {
	if globalTracer != nil {
		globalTracer.Skip(line, text)
	}
}

// Branch logs a conditional using the global tracer
func Branch(line int, cond bool) {
	if globalTracer != nil {
		globalTracer.Branch(line, cond)
	}
}

// Assign logs a variable write using the global tracer
func Assign(line int, name string, value string) {
	if globalTracer != nil {
		globalTracer.Assign(line, name, value)
	}
}
