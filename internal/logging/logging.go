// SPDX-License-Identifier: MPL-2.0

// Package logging builds the charmbracelet/log logger shared by the CLI and
// the dispatcher.
package logging

import (
	"io"

	"github.com/charmbracelet/log"
)

// Prefix is the prefix of every cmdseq log line.
const Prefix = "cmdseq"

// New returns a logger writing to w at the named level ("debug", "info",
// "warn", "error"). Unknown levels fall back to info. Verbose forces debug
// and adds timestamps.
func New(w io.Writer, level string, verbose bool) *log.Logger {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		lvl = log.InfoLevel
	}
	if verbose {
		lvl = log.DebugLevel
	}

	return log.NewWithOptions(w, log.Options{
		Prefix:          Prefix,
		Level:           lvl,
		ReportTimestamp: verbose,
	})
}

// Discard returns a logger that drops everything.
func Discard() *log.Logger {
	return log.New(io.Discard)
}
