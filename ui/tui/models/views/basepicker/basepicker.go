// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package basepicker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/core/session"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/ui/tui/models/components/menu"
	"github.com/rasmusac/bdx/ui/tui/models/components/popup"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

// Model lets the user pick the active base from a list that previews the
// current value in every base, the way tapping a card does. It is meant to
// be opened with popup.OpenWithCallback and OnClose.
type Model struct {
	menu   *menu.Model
	theme  theme.Theme
	cancel key.Binding
	chosen radix.Radix
}

func New(th theme.Theme, state session.State) *Model {
	items := make([]menu.Item, 0, len(radix.All()))
	for _, r := range radix.All() {
		items = append(items, menu.WithItem(
			r.Short(),
			i18n.T("radix."+r.Name()),
			radix.WithPrefix(state.Text(r), r),
		))
	}
	m := menu.New(th, items...)
	m.SetActive(state.Active().Short())

	return &Model{
		menu:  m,
		theme: th,
		cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+b"),
			key.WithHelp("esc", i18n.T("keys.cancel")),
		),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case menu.ItemSelected:
		if r, err := radix.ParseRadix(msg.Id); err == nil {
			m.chosen = r
		}
		return popup.Close()
	case tea.KeyMsg:
		if key.Matches(msg, m.cancel) {
			return popup.Close()
		}
	}
	return m.menu.Update(msg)
}

// Chosen returns the selected base, or false when the picker was cancelled.
func (m Model) Chosen() (radix.Radix, bool) {
	return m.chosen, m.chosen.Valid()
}

// OnClose dispatches the switch to the chosen base once the popup is gone.
func OnClose(p *util.Model) tea.Cmd {
	picker, ok := (*p).(*Model)
	if !ok {
		return nil
	}
	if r, ok := picker.Chosen(); ok {
		return converter.Dispatch(session.SwitchRadix{To: r})
	}
	return nil
}

func (m Model) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.theme.Title.Render(i18n.T("picker.title")),
		"",
		m.menu.View(),
	)
}

func (m *Model) Focus() (tea.Cmd, help.KeyMap) {
	cmd, keys := m.menu.Focus()
	return cmd, util.MergeKeyMaps(keys, cancelKeyMap{m.cancel})
}

func (m *Model) Blur() {
	m.menu.Blur()
}

// *Model implements util.Model
var _ util.Model = (*Model)(nil)

type cancelKeyMap struct{ cancel key.Binding }

func (k cancelKeyMap) ShortHelp() []key.Binding  { return []key.Binding{k.cancel} }
func (k cancelKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{{k.cancel}} }
