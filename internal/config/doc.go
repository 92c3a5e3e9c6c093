// SPDX-License-Identifier: MPL-2.0

// Package config loads cmdseq configuration using Viper with CUE as the file
// format.
//
// The file is looked up at --config when given, otherwise at
// $XDG_CONFIG_HOME/cmdseq/config.cue (~/Library/Application Support on
// macOS, %APPDATA% on Windows), then ./config.cue. It is validated against the
// embedded #Config schema. CMDSEQ_* environment variables override file
// values (CMDSEQ_DISPATCH_USAGE_EXIT_CODE overrides dispatch.usage_exit_code).
package config
