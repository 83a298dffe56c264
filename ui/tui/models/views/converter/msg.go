// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package converter

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/core/session"
)

// ActionMsg asks the converter to apply a session action, e.g. from the
// on-screen keypad.
type ActionMsg struct {
	Action session.Action
}

// Dispatch returns a command delivering a to the converter.
func Dispatch(a session.Action) tea.Cmd {
	return func() tea.Msg { return ActionMsg{Action: a} }
}

// ChangedMsg is emitted after every state change so dependent views (keypad,
// window title) can follow the active base.
type ChangedMsg struct {
	State session.State
}

func changed(s session.State) tea.Cmd {
	return func() tea.Msg { return ChangedMsg{State: s} }
}
