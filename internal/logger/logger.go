// Package logger provides verbose logging for greggs-finder.
// When verbose mode is enabled via the --verbose flag, messages describing
// dataset loading, geocoding and search are printed to stderr so they never
// mix with table or JSON output on stdout.
package logger

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"
)

var (
	mu      sync.Mutex
	verbose bool
	output  io.Writer = os.Stderr
)

// SetVerbose enables or disables verbose logging.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	verbose = v
}

// IsVerbose returns true if verbose mode is enabled.
func IsVerbose() bool {
	mu.Lock()
	defer mu.Unlock()
	return verbose
}

// SetOutput sets the output writer for verbose logs.
// Defaults to os.Stderr. Useful for testing.
func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	output = w
}

// Writer returns a writer that forwards to the log output while verbose mode
// is enabled and discards otherwise. Used to route framework logs (gin)
// through the same switch.
func Writer() io.Writer {
	return gatedWriter{}
}

type gatedWriter struct{}

func (gatedWriter) Write(p []byte) (int, error) {
	mu.Lock()
	defer mu.Unlock()
	if !verbose {
		return len(p), nil
	}
	return output.Write(p)
}

func printf(prefix, format string, args ...any) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, prefix+format+"\n", args...)
	}
}

// Debug prints a message if verbose mode is enabled.
func Debug(format string, args ...any) {
	printf("[DEBUG] ", format, args...)
}

// Section prints a section header if verbose mode is enabled.
func Section(name string) {
	mu.Lock()
	defer mu.Unlock()
	if verbose {
		fmt.Fprintf(output, "\n=== %s ===\n", name)
	}
}

// Info prints an informational message if verbose mode is enabled.
func Info(format string, args ...any) {
	printf("[INFO] ", format, args...)
}

// Warn prints a warning message if verbose mode is enabled.
func Warn(format string, args ...any) {
	printf("[WARN] ", format, args...)
}

// Since prints how long has passed since start, labelled with what.
//
//	defer logger.Since("geocode", time.Now())
func Since(what string, start time.Time) {
	printf("[DEBUG] ", "%s took %s", what, time.Since(start).Round(time.Microsecond))
}
