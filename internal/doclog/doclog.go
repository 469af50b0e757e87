// Package doclog is the stderr warning logger shared by the document
// loader, the CLI's -v flag, and the snapshot store's write
// confirmations. The teacher never reaches for a structured logging
// library (internal/ingest and internal/graph just call log.Printf
// straight at the call site), so this follows the same plain *log.Logger
// idiom instead of introducing one, just factored into a package so the
// three collaborators above share one on/off switch and one prefix.
package doclog

import (
	"io"
	"log"
	"os"
)

var logger = log.New(os.Stderr, "lini: ", 0)

var enabled = false

// SetEnabled turns warning/info output on or off. The CLI wires this to
// its -v/--verbose flag; it is off by default so library callers (tests,
// other programs importing internal/doc) stay silent unless they opt in.
func SetEnabled(v bool) {
	enabled = v
}

// SetOutput redirects where warnings and info lines are written,
// mainly so tests can capture output instead of polluting stderr.
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// Warnf reports a non-fatal problem: each entry a document load adds to
// its ErrorList (a skipped line, an invalid name, a key that failed to
// parse).
func Warnf(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf("warn: "+format, args...)
}

// Infof reports routine progress: a snapshot taken.
func Infof(format string, args ...any) {
	if !enabled {
		return
	}
	logger.Printf("info: "+format, args...)
}
