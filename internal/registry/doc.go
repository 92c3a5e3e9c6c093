// SPDX-License-Identifier: MPL-2.0

// Package registry defines the command capability and the alias registry the
// dispatcher resolves command names against.
//
// The registry is populated once, at process start, by explicit Register
// calls; it is read-only while commands run.
package registry
