// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package radix

import "strconv"

// Value is a signed 32-bit number or the absent value. The zero Value is
// absent, which is distinct from ValueOf(0).
type Value struct {
	n       int32
	present bool
}

// Absent is the explicit "no value" result.
var Absent = Value{}

// ValueOf wraps n as a present Value.
func ValueOf(n int32) Value {
	return Value{n: n, present: true}
}

// Get returns the number and whether it is present.
func (v Value) Get() (int32, bool) {
	return v.n, v.present
}

// IsAbsent reports whether v carries no number.
func (v Value) IsAbsent() bool { return !v.present }

func (v Value) String() string {
	if !v.present {
		return "<absent>"
	}
	return strconv.FormatInt(int64(v.n), 10)
}
