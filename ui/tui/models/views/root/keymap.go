// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/rasmusac/bdx/internal/i18n"
)

type KeyMap struct {
	Exit       key.Binding
	Help       key.Binding
	ChooseBase key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.ChooseBase, km.Exit, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.ChooseBase}, {km.Help, km.Exit}}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// NewBaseKeyMap builds the always-active bindings. It is a function so the
// help texts pick up the language selected at startup.
func NewBaseKeyMap() KeyMap {
	return KeyMap{
		Exit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+q"),
			key.WithHelp("ctrl+c", i18n.T("keys.exit")),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", i18n.T("keys.help")),
		),
		ChooseBase: key.NewBinding(
			key.WithKeys("ctrl+b"),
			key.WithHelp("ctrl+b", i18n.T("keys.choose_base")),
		),
	}
}
