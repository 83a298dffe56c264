// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

type Model struct {
	size  util.Size
	theme theme.Theme
	title string
}

func New(th theme.Theme) *Model {
	return &Model{
		theme: th,
		title: i18n.T("app.title"),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	m.size.Update(msg)
	return nil
}

func (m Model) View() string {
	return lipgloss.
		NewStyle().
		Border(lipgloss.NormalBorder(), false).
		BorderBottom(true).
		BorderForeground(m.theme.Palette.Outline).
		Render(lipgloss.PlaceHorizontal(
			m.size.Width,
			lipgloss.Center,
			m.theme.Title.Render(m.title),
		))
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	return nil, nil
}

func (m *Model) Blur() {}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)
