// SPDX-License-Identifier: MPL-2.0

// Package argv turns a raw process argument vector into an ordered list of
// command names and two parallel argument maps.
//
// The grammar is deliberately small:
//
//	--<command>   appends a command name (lowercased) to the ordered list
//	-<key>        starts a named argument
//	<value>       appended, space separated, to the active key
//
// One map is keyed and valued in lowercase and is the one used for lookups
// and validation. The other keeps the exact original text, for handlers that
// need it (file paths, scripts, messages).
package argv
