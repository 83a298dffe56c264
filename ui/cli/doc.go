// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package cli implements the bdx command line: the root command launches
// the TUI, subcommands convert values and manage the config file.
package cli
