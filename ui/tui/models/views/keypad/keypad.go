// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package keypad

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/core/keypad"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

// Model is the on-screen keypad. It does not own any input state; pressed
// keys are dispatched to the converter and the enabled set follows the
// converter's ChangedMsg.
type Model struct {
	cursor  keypad.Cursor
	active  radix.Radix
	theme   theme.Theme
	keys    KeyMap
	size    util.Size
	focused bool
}

func New(th theme.Theme, active radix.Radix) *Model {
	return &Model{
		cursor: keypad.Home,
		active: active,
		theme:  th,
		keys:   DefaultKeyMap(),
	}
}

// Cursor returns the highlighted slot.
func (m Model) Cursor() keypad.Cursor { return m.cursor }

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case converter.ChangedMsg:
		m.active = msg.State.Active()
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.Up):
			m.cursor = m.cursor.Move(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.cursor = m.cursor.Move(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.cursor = m.cursor.Move(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.cursor = m.cursor.Move(0, 1)
		case key.Matches(msg, m.keys.Press):
			return m.press()
		}
	}
	return nil
}

func (m *Model) press() tea.Cmd {
	k := m.cursor.Key()
	if !k.Enabled(m.active) {
		logging.Debugf("keypad: %q disabled in %s", k.Label, m.active)
		return nil
	}
	return converter.Dispatch(k.Action())
}

func (m Model) keyStyle(k keypad.Key, row, col int) lipgloss.Style {
	switch {
	case k.Kind == keypad.Blank:
		return m.theme.BlankKey
	case m.focused && m.cursor.Row == row && m.cursor.Col == col:
		return m.theme.CursorKey
	case !k.Enabled(m.active):
		return m.theme.DisabledKey
	case k.Kind == keypad.ClearKey, k.Kind == keypad.DeleteKey:
		return m.theme.SpecialKey
	}
	return m.theme.Key
}

func (m Model) View() string {
	if m.size.Height < height() {
		return ""
	}
	rows := make([]string, 0, keypad.Rows)
	for r, row := range keypad.Layout {
		cells := make([]string, 0, len(row))
		for c, k := range row {
			cells = append(cells, m.keyStyle(k, r, c).Render(k.Label))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.PlaceHorizontal(
		m.size.Width,
		lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Left, rows...),
	)
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
