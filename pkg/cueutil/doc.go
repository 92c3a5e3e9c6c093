// SPDX-License-Identifier: MPL-2.0

// Package cueutil wraps cuelang.org/go for the two ways cmdseq reads CUE.
//
// ParseAndDecode unifies a document with a definition from an embedded
// schema, validates it and decodes it into a Go value; the config package
// loads config.cue this way with WithConcrete(false) so unset optional
// fields are allowed. EvalJSON evaluates a free-standing document, optionally
// narrowed to a CUEPath, and exports it as indented JSON for the cueeval
// command.
//
// Errors from both are flattened by FormatError into
// "<file>: <path>: <message>" lines.
package cueutil
