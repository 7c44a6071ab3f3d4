// Package debug provides opt-in diagnostic tracing to stderr.
package debug

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

// state holds the mutable tracing configuration.
type state struct {
	mu      sync.RWMutex
	enabled bool
	noColor bool
	out     io.Writer
}

var traceState = state{out: os.Stderr}

// ANSI color codes
const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGray  = "\033[90m"
)

// SetDebug enables or disables debug tracing.
func SetDebug(enable bool) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.enabled = enable
}

// IsEnabled reports whether debug tracing is enabled.
func IsEnabled() bool {
	traceState.mu.RLock()
	defer traceState.mu.RUnlock()
	return traceState.enabled
}

// SetNoColor disables colored trace output.
func SetNoColor(disable bool) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.noColor = disable
}

// SetOutput redirects trace output; nil restores stderr.
func SetOutput(w io.Writer) {
	traceState.mu.Lock()
	defer traceState.mu.Unlock()
	traceState.out = w
}

// Debug prints a formatted debug message with a timestamp.
func Debug(format string, args ...interface{}) {
	writeLine(fmt.Sprintf(format, args...))
}

// DebugValue prints key = value style debug info.
func DebugValue(key string, value interface{}) {
	writeLine(fmt.Sprintf("%s = %v", key, value))
}

// DebugSection prints a section header for debug output.
func DebugSection(section string) {
	writeLine(fmt.Sprintf("=== %s ===", section))
}

// writeLine emits one trace line when tracing is enabled.
func writeLine(msg string) {
	traceState.mu.RLock()
	enabled, useColor, out := traceState.enabled, !traceState.noColor, traceState.out
	traceState.mu.RUnlock()
	if !enabled {
		return
	}
	if out == nil {
		out = os.Stderr
	}

	timestamp := time.Now().Format("15:04:05.000")
	if useColor {
		fmt.Fprintf(out, "%s[DEBUG]%s %s%s%s %s\n",
			colorCyan, colorReset, colorGray, timestamp, colorReset, msg)
	} else {
		fmt.Fprintf(out, "[DEBUG] %s %s\n", timestamp, msg)
	}
}
