// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
	"github.com/rasmusac/bdx/util/slicest"
)

// Model is a vertical list with one active item.
type Model struct {
	Items   []Item
	Active  int
	keys    KeyMap
	theme   theme.Theme
	size    util.Size
	focused bool
}

func New(th theme.Theme, items ...Item) *Model {
	return &Model{
		Items: items,
		keys:  DefaultKeyMap(),
		theme: th,
	}
}

// SetActive moves the selection to the item with id, if there is one.
func (m *Model) SetActive(id string) {
	if i := slicest.IndexFunc(m.Items, func(item Item) bool { return item.Id == id }); i >= 0 {
		m.Active = i
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) || !m.focused {
		return nil
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Up):
			m.up()
		case key.Matches(msg, m.keys.Down):
			m.down()
		case key.Matches(msg, m.keys.Select):
			return m.selected()
		}
	}
	return nil
}

func (m Model) View() string {
	if len(m.Items) == 0 {
		return ""
	}
	style := lipgloss.NewStyle()
	if m.size.Width > 0 {
		style = style.MaxWidth(m.size.Width)
	}
	if m.size.Height > 0 {
		style = style.MaxHeight(m.size.Height)
	}
	return style.Render(renderItems(m.theme, m.Items, m.Active))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	m.focused = true
	return nil, m.keys
}

func (m *Model) Blur() {
	m.focused = false
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
