// SPDX-License-Identifier: MPL-2.0

// Package dispatch runs an ordered sequence of registered commands parsed
// from an argument vector.
//
// A run moves through four states: parsing, validating (every command name
// must resolve and at least one must be given), executing commands one at a
// time, and a terminal success or failure. The pipeline is linear and
// fail-fast: the first usage error, missing mandatory argument or non-zero
// command result ends the run, and nothing that already ran is undone.
package dispatch
