// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package keypad describes the on-screen keypad: its layout, which keys are
// enabled for a base and which session action each key triggers.
package keypad

import (
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/core/session"
)

// Kind tells digit keys apart from the editing keys.
type Kind int

const (
	Blank Kind = iota
	Digit
	ClearKey
	DeleteKey
)

// Key is one slot of the keypad.
type Key struct {
	Label string
	Kind  Kind
	Digit rune
}

func digit(c rune) Key { return Key{Label: string(c), Kind: Digit, Digit: c} }

var (
	blank      = Key{Kind: Blank}
	clearAll   = Key{Label: "AC", Kind: ClearKey}
	deleteLast = Key{Label: "⌫", Kind: DeleteKey}
)

// Layout is the keypad grid, row-major. Hex letters sit in the outer columns
// so the decimal block keeps the usual phone arrangement.
var Layout = [][]Key{
	{digit('A'), digit('1'), digit('2'), digit('3'), clearAll},
	{digit('B'), digit('4'), digit('5'), digit('6'), deleteLast},
	{digit('C'), digit('7'), digit('8'), digit('9'), digit('E')},
	{digit('D'), blank, digit('0'), blank, digit('F')},
}

// Rows and Cols are the grid dimensions.
var (
	Rows = len(Layout)
	Cols = len(Layout[0])
)

// Enabled reports whether k can be pressed while r is the active base.
// Editing keys are always enabled, blanks never.
func (k Key) Enabled(r radix.Radix) bool {
	switch k.Kind {
	case Digit:
		return radix.IsDigitAllowed(k.Digit, r)
	case ClearKey, DeleteKey:
		return true
	}
	return false
}

// Action returns the session action for k, or nil for blanks.
func (k Key) Action() session.Action {
	switch k.Kind {
	case Digit:
		return session.AppendDigit{Digit: k.Digit}
	case ClearKey:
		return session.ClearAll{}
	case DeleteKey:
		return session.DeleteLast{}
	}
	return nil
}

// At returns the key at row, col. Out of range positions are blank.
func At(row, col int) Key {
	if row < 0 || row >= Rows || col < 0 || col >= Cols {
		return blank
	}
	return Layout[row][col]
}
