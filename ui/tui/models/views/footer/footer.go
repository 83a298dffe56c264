// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package footer

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/ui/tui/models/components/keyhelp"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

// StatusMsg replaces the footer's status line.
type StatusMsg struct {
	Text  string
	Error bool
}

// SetStatus returns a command that shows text in the status line.
func SetStatus(text string, isError bool) tea.Cmd {
	return func() tea.Msg { return StatusMsg{Text: text, Error: isError} }
}

type Model struct {
	baseKeyMap help.KeyMap
	size       util.Size
	help       *keyhelp.Model
	theme      theme.Theme
	status     StatusMsg
}

func New(baseKeyMap help.KeyMap, th theme.Theme) *Model {
	return &Model{
		baseKeyMap: baseKeyMap,
		help:       keyhelp.New(),
		theme:      th,
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case util.AnnounceKeyMapMsg:
		// inject the base key map so exit/help are always listed
		return m.help.Update(util.AnnounceKeyMapMsg{
			KeyMap: util.MergeKeyMaps(msg.KeyMap, m.baseKeyMap),
		})
	case StatusMsg:
		m.status = msg
		return nil
	case tea.KeyMsg:
		// any further input makes the last status stale
		m.status = StatusMsg{}
		return nil
	}

	m.size.Update(msg)
	return m.help.Update(msg)
}

// Status returns the current status line.
func (m Model) Status() StatusMsg { return m.status }

func (m Model) view() string {
	if m.status.Text == "" {
		return m.help.View()
	}
	style := m.theme.Status
	if m.status.Error {
		style = m.theme.StatusError
	}
	return lipgloss.JoinVertical(lipgloss.Left, style.Render(m.status.Text), m.help.View())
}

func (m Model) View() string {
	h_pos := lipgloss.Left
	if m.help.Expanded {
		h_pos = lipgloss.Center
	}

	return lipgloss.
		NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderTop(true).
		BorderForeground(m.theme.Palette.Outline).
		Render(lipgloss.Place(
			m.size.Width, max(m.size.Height-1, 0),
			h_pos, lipgloss.Top,
			m.view(),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

func (m *Model) ToggleExpanded() {
	m.help.ToggleExpanded()
}
