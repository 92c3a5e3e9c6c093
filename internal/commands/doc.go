// SPDX-License-Identifier: MPL-2.0

// Package commands holds the built-in commands of cmdseq and the explicit
// list that registers them.
//
// Every command reads its arguments through registry.Context, so a value may
// come from a flag (-msg hello) or from the environment (MSG=hello). File
// arguments are resolved against the working directory.
package commands
