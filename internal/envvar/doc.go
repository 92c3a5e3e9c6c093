// SPDX-License-Identifier: MPL-2.0

// Package envvar resolves named values from the process environment with
// case-insensitive key matching, optionally backed by dotenv files.
package envvar
