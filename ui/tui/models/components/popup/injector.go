// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

const (
	reservedHeight int = 2
	reservedWidth  int = 6
)

type popup struct {
	model   *util.Model
	onClose func(*util.Model) tea.Cmd
}

// Injector draws popups centered over its child. While a popup is open it
// receives all messages and the child is dimmed.
type Injector struct {
	child  *util.Model
	popups []popup
	size   util.Size
	theme  theme.Theme
}

func NewInjector(child *util.Model, th theme.Theme) *Injector {
	return &Injector{
		child: child,
		theme: th,
	}
}

// Open reports whether a popup is showing.
func (m Injector) Open() bool {
	return len(m.popups) > 0
}

func (m Injector) Init() tea.Cmd {
	return (*m.child).Init()
}

func (m *Injector) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		if len(m.popups) > 0 {
			return tea.Batch(
				(*m.activeModel()).Update(m.popupSize()),
				(*m.child).Update(msg),
			)
		}
		return (*m.child).Update(msg)
	}

	switch msg := msg.(type) {
	case openMsg:
		return m.open(popup{
			model:   msg.Model,
			onClose: msg.OnClose,
		})
	case closeMsg:
		return m.close()
	}

	return (*m.activeModel()).Update(msg)
}

func (m Injector) popupSize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{
		Width:  max(m.size.Width-reservedWidth, 0),
		Height: max(m.size.Height-reservedHeight, 0),
	}
}

// overlay places v2 centered on top of v1, keeping v1's size.
func overlay(v1, v2 string) string {
	v1_width, v1_height := lipgloss.Size(v1)
	// limit v2 dimensions to v1
	v2 = lipgloss.NewStyle().MaxWidth(v1_width).MaxHeight(v1_height).Render(v2)
	v2_width, v2_height := lipgloss.Size(v2)

	offset_left := (v1_width - v2_width) / 2
	offset_top := (v1_height - v2_height) / 2

	v1_lines := strings.Split(v1, "\n")
	v2_lines := strings.Split(v2, "\n")

	for i := range v2_lines {
		v1_left := ansi.Truncate(v1_lines[i+offset_top], offset_left, "")
		v1_right := ansi.TruncateLeft(v1_lines[i+offset_top], offset_left+v2_width, "")
		v1_lines[i+offset_top] = v1_left + v2_lines[i] + v1_right
	}

	return strings.Join(v1_lines, "\n")
}

func (m Injector) View() string {
	childView := (*m.child).View()
	if len(m.popups) == 0 {
		return childView
	}

	popupView := lipgloss.
		NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(m.theme.Palette.Primary).
		Margin(0, 1).
		Render((*m.activeModel()).View())

	// pad the child to the full area so the popup stays centered
	childView = lipgloss.
		NewStyle().
		Width(m.size.Width).
		Height(m.size.Height).
		Foreground(m.theme.Palette.Outline).
		Faint(true).
		Render(ansi.Strip(childView))

	return overlay(childView, popupView)
}

func (m *Injector) Focus() (tea.Cmd, help.KeyMap) {
	return (*m.activeModel()).Focus()
}

func (m *Injector) Blur() {
	(*m.activeModel()).Blur()
}

// *Injector implements util.Model
var _ util.Model = (*Injector)(nil)

func (m *Injector) open(p popup) tea.Cmd {
	// blur active view
	m.Blur()
	m.popups = append(m.popups, p)
	// init and focus new popup
	return tea.Batch(
		(*p.model).Init(),
		m.focusActiveModel(),
		(*p.model).Update(m.popupSize()),
	)
}

func (m *Injector) close() tea.Cmd {
	if len(m.popups) == 0 {
		return nil
	}
	m.Blur()
	var onCloseCmd tea.Cmd
	if p := m.popups[len(m.popups)-1]; p.onClose != nil {
		onCloseCmd = p.onClose(p.model)
	}
	m.popups = m.popups[:len(m.popups)-1]
	// focus underlying view
	return tea.Batch(
		m.focusActiveModel(),
		onCloseCmd,
	)
}

func (m *Injector) activeModel() *util.Model {
	if len(m.popups) > 0 {
		return m.popups[len(m.popups)-1].model
	}
	return m.child
}

func (m *Injector) focusActiveModel() tea.Cmd {
	cmd, keyMap := m.Focus()
	return tea.Batch(cmd, util.AnnounceKeyMapCmd(keyMap))
}
