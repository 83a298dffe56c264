// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package session

import (
	"unicode"
	"unicode/utf8"

	"github.com/rasmusac/bdx/core/radix"
)

// Validity classifies the raw text of a State.
type Validity int

const (
	Empty Validity = iota
	Valid
	Invalid
)

func (v Validity) String() string {
	switch v {
	case Empty:
		return "empty"
	case Valid:
		return "valid"
	case Invalid:
		return "invalid"
	}
	return "unknown"
}

// State is the active base plus the raw text entered in it.
type State struct {
	active radix.Radix
	text   string
	// Strict drops appends that would push the text out of the 32-bit range
	// instead of letting the state turn Invalid.
	strict bool
}

// New returns an empty state editing in base r. Unsupported bases fall back
// to Decimal.
func New(r radix.Radix) State {
	if !r.Valid() {
		r = radix.Decimal
	}
	return State{active: r}
}

// WithStrict returns s with strict overflow handling switched on or off.
func (s State) WithStrict(strict bool) State {
	s.strict = strict
	return s
}

// Strict reports whether overflowing appends are rejected.
func (s State) Strict() bool { return s.strict }

// Active returns the base being edited.
func (s State) Active() radix.Radix { return s.active }

// Raw returns the text exactly as entered in the active base.
func (s State) Raw() string { return s.text }

// Value parses the raw text in the active base.
func (s State) Value() radix.Value {
	return radix.Parse(s.text, s.active)
}

// Validity derives the tri-state validity of the raw text.
func (s State) Validity() Validity {
	if s.text == "" {
		return Empty
	}
	if s.Value().IsAbsent() {
		return Invalid
	}
	return Valid
}

// Text returns what base r displays: the raw text for the active base and
// the derived rendering for the others.
func (s State) Text(r radix.Radix) string {
	if r == s.active {
		return s.text
	}
	return radix.Format(s.Value(), r)
}

// Conversion renders the current value in every base.
func (s State) Conversion() radix.Conversion {
	return radix.Convert(s.Value())
}

// Append adds digit c to the raw text. Symbols that are not digits of the
// active base are ignored. In strict mode a digit that would make the text
// unparseable is ignored as well.
func (s State) Append(c rune) State {
	if !radix.IsDigitAllowed(c, s.active) {
		return s
	}
	next := s
	next.text = s.text + string(c)
	if s.strict && next.Value().IsAbsent() {
		return s
	}
	return next
}

// Backspace removes the last character, if any.
func (s State) Backspace() State {
	if s.text == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.text)
	s.text = s.text[:len(s.text)-size]
	return s
}

// Clear empties the raw text and keeps the active base.
func (s State) Clear() State {
	s.text = ""
	return s
}

// Switch makes r the active base and seeds its raw text from the current
// value. Switching to the active base is a no-op. The result is always Valid
// or Empty.
func (s State) Switch(r radix.Radix) State {
	if r == s.active || !r.Valid() {
		return s
	}
	seed := radix.Format(s.Value(), r)
	s.active = r
	s.text = seed
	return s
}

// Type appends every rune of text as if typed one by one. Lowercase letters
// are upper-cased first so "ff" types the hex digits F F.
func (s State) Type(text string) State {
	for _, c := range text {
		s = s.Append(unicode.ToUpper(c))
	}
	return s
}
