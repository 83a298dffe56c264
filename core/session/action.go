// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import "github.com/rasmusac/bdx/core/radix"

// Action is a single input event understood by State.Apply.
type Action interface {
	apply(State) State
}

// AppendDigit appends Digit to the raw text.
type AppendDigit struct{ Digit rune }

// DeleteLast removes the last character.
type DeleteLast struct{}

// ClearAll empties the raw text.
type ClearAll struct{}

// SwitchRadix changes the active base.
type SwitchRadix struct{ To radix.Radix }

func (a AppendDigit) apply(s State) State { return s.Append(a.Digit) }
func (DeleteLast) apply(s State) State    { return s.Backspace() }
func (ClearAll) apply(s State) State      { return s.Clear() }
func (a SwitchRadix) apply(s State) State { return s.Switch(a.To) }

// Apply runs a on s. A nil action leaves s unchanged.
func (s State) Apply(a Action) State {
	if a == nil {
		return s
	}
	return a.apply(s)
}

// Reduce applies actions in order.
func Reduce(s State, actions ...Action) State {
	for _, a := range actions {
		s = s.Apply(a)
	}
	return s
}
