// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import tea "github.com/charmbracelet/bubbletea"

// up and down wrap around the list
func (m *Model) up() {
	if len(m.Items) == 0 {
		return
	}
	m.Active = (m.Active - 1 + len(m.Items)) % len(m.Items)
}

func (m *Model) down() {
	if len(m.Items) == 0 {
		return
	}
	m.Active = (m.Active + 1) % len(m.Items)
}

func (m *Model) selected() tea.Cmd {
	if m.Active < 0 || m.Active >= len(m.Items) {
		return nil
	}
	id := m.Items[m.Active].Id
	return func() tea.Msg { return ItemSelected{Id: id} }
}
