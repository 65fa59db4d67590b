// Package logger provides the diagnostic output of the egress CLI.
//
// Debug, Info and section output only appear with --verbose and let users
// follow how each stair was sized and which overrides matched. Warnings
// always appear, since they describe results the user may need to act on.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.RWMutex
	verbose bool
	output  io.Writer = os.Stderr

	// now is replaced in tests.
	now = time.Now
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.RLock()
	defer mu.RUnlock()
	return verbose
}

// SetOutput sets the output writer. Defaults to os.Stderr.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	logf(false, "[DEBUG] ", format, args...)
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	logf(false, "[INFO] ", format, args...)
}

// Warn prints a warning whether or not verbose mode is enabled.
func Warn(format string, args ...any) {
	logf(true, "[WARN] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Stage prints a section header and returns a func that reports how long
// the stage ran. Call it when the stage ends.
func Stage(name string) func() {
	Section(name)
	start := now()
	return func() {
		Debug("%s took %s", name, now().Sub(start).Round(time.Microsecond))
	}
}

// Trail prints the lines of an audit trail, indented under the current
// section, if verbose mode is enabled.
func Trail(lines []string) {
	mu.RLock()
	defer mu.RUnlock()
	if !verbose {
		return
	}
	for _, line := range lines {
		fmt.Fprintf(output, "    %s\n", line)
	}
}

func logf(always bool, prefix, format string, args ...any) {
	mu.RLock()
	defer mu.RUnlock()
	if verbose || always {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}
