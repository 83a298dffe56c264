// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package tui implements the interactive converter. Presentation and input
// handling live here; conversion and input rules come from core/radix,
// core/session and core/keypad.
package tui
