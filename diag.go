// SPDX-License-Identifier: MIT
// Copyright (c) 2026 neogeographica
// Source: github.com/neogeographica/expak

package expak

import (
	"os"

	"github.com/charmbracelet/log"
)

// Diagnostics are emitted for conditions that the operation results fold
// into a single failure: a source that is not a pak file, a truncated
// archive, or a transform fault on one resource. Suppressing them changes
// output only, never what the functions return.
var (
	// quiet disables all diagnostic output when true.
	quiet bool
	// logger is the diagnostics sink, replaceable via SetLogger.
	logger = log.NewWithOptions(os.Stderr, log.Options{Prefix: "expak"})
)

// SetQuiet enables or disables diagnostic output for the whole package.
func SetQuiet(v bool) { quiet = v }

// SetLogger replaces the package diagnostics logger. A nil logger restores
// the default stderr logger.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.NewWithOptions(os.Stderr, log.Options{Prefix: "expak"})
	}

	logger = l
}

// diagf emits one diagnostic line unless output is suppressed.
func diagf(format string, args ...any) {
	if quiet {
		return
	}

	logger.Warnf(format, args...)
}
