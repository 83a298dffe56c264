// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
// Package session holds the input state of one converter session: the active
// base and the raw text typed in it. State is an immutable value; every
// transition returns a new State, which lets the UI treat it like a reducer.
package session
