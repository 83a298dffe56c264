// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package keypad

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/rasmusac/bdx/internal/i18n"
)

type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Press key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.move(), km.Press}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{km.Up, km.Down, km.Left, km.Right, km.Press}}
}

// move stands in for the four arrows in the short help.
func (km KeyMap) move() key.Binding {
	return key.NewBinding(
		key.WithKeys(),
		key.WithHelp("←↑↓→", i18n.T("keys.move")),
	)
}

var _ help.KeyMap = KeyMap{}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", i18n.T("keys.move")),
		),
		Down: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", i18n.T("keys.move")),
		),
		Left: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", i18n.T("keys.move")),
		),
		Right: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", i18n.T("keys.move")),
		),
		Press: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", i18n.T("keys.press")),
		),
	}
}
