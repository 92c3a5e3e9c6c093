// SPDX-License-Identifier: MPL-2.0

// Package issue provides actionable error handling with user-friendly messages.
//
// ActionableError carries the failed operation, the resource involved and
// hints for fixing the problem. The Issue catalog holds longer Markdown
// guidance for the failure classes a cmdseq user most often hits; the CLI
// renders it with glamour in verbose mode.
package issue
