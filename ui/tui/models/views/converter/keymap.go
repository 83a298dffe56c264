// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package converter

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/i18n"
)

// KeyMap is a pointer type so the footer, which keeps the announced
// help.KeyMap, sees the digit range follow the active base.
type KeyMap struct {
	Digit    key.Binding
	Delete   key.Binding
	Clear    key.Binding
	NextBase key.Binding
	PrevBase key.Binding
	Copy     key.Binding

	active radix.Radix
}

func (km *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.digit(), km.NextBase, km.Delete, km.Clear, km.Copy}
}

func (km *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.digit(), km.Delete, km.Clear},
		{km.NextBase, km.PrevBase, km.Copy},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

func (km *KeyMap) digit() key.Binding {
	b := km.Digit
	b.SetHelp(digitRange(km.active), i18n.T("keys.type"))
	return b
}

func digitRange(r radix.Radix) string {
	switch r {
	case radix.Binary:
		return "0-1"
	case radix.Octal:
		return "0-7"
	case radix.Hexadecimal:
		return "0-9 a-f"
	}
	return "0-9"
}

func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Digit: key.NewBinding(
			key.WithKeys(
				"0", "1", "2", "3", "4", "5", "6", "7", "8", "9",
				"a", "b", "c", "d", "e", "f", "A", "B", "C", "D", "E", "F",
			),
		),
		Delete: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("⌫", i18n.T("keys.delete")),
		),
		Clear: key.NewBinding(
			key.WithKeys("delete", "ctrl+u"),
			key.WithHelp("del", i18n.T("keys.clear")),
		),
		NextBase: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", i18n.T("keys.next_base")),
		),
		PrevBase: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", i18n.T("keys.prev_base")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("keys.copy")),
		),
		active: radix.Decimal,
	}
}
