// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package converter

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/core/session"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/rasmusac/bdx/ui/tui/models/views/footer"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

// writeClipboard is swapped out in tests.
var writeClipboard = clipboard.WriteAll

type Options struct {
	Start    radix.Radix
	Strict   bool
	Prefixes bool
	// Initial is typed into the start base as if entered key by key.
	Initial string
}

// Model shows the value in all four bases and owns the session state.
type Model struct {
	state    session.State
	theme    theme.Theme
	prefixes bool
	keys     *KeyMap
	size     util.Size
	focused  bool
}

func New(th theme.Theme, opts Options) *Model {
	state := session.New(opts.Start).WithStrict(opts.Strict).Type(opts.Initial)
	keys := DefaultKeyMap()
	keys.active = state.Active()
	return &Model{
		state:    state,
		theme:    th,
		prefixes: opts.Prefixes,
		keys:     keys,
	}
}

// State returns the current session state.
func (m Model) State() session.State { return m.state }

func (m Model) Init() tea.Cmd {
	return changed(m.state)
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	if m.size.Update(msg) {
		return nil
	}

	switch msg := msg.(type) {
	case ActionMsg:
		return m.apply(msg.Action)
	case tea.KeyMsg:
		if !m.focused {
			return nil
		}
		switch {
		case key.Matches(msg, m.keys.NextBase):
			return m.apply(session.SwitchRadix{To: m.state.Active().Next()})
		case key.Matches(msg, m.keys.PrevBase):
			return m.apply(session.SwitchRadix{To: m.state.Active().Prev()})
		case key.Matches(msg, m.keys.Delete):
			return m.apply(session.DeleteLast{})
		case key.Matches(msg, m.keys.Clear):
			return m.apply(session.ClearAll{})
		case key.Matches(msg, m.keys.Copy):
			return m.copyActive()
		case msg.Type == tea.KeyRunes && !msg.Alt:
			// typed or pasted digits; Type upper-cases and drops illegal runes
			return m.set(m.state.Type(string(msg.Runes)))
		}
	}
	return nil
}

func (m *Model) apply(a session.Action) tea.Cmd {
	return m.set(m.state.Apply(a))
}

func (m *Model) set(next session.State) tea.Cmd {
	if next == m.state {
		return nil
	}
	prev := m.state
	m.state = next
	m.keys.active = next.Active()
	if prev.Active() != next.Active() {
		logging.Debugf("active base %s -> %s (seed %q)", prev.Active(), next.Active(), next.Raw())
	}
	return changed(next)
}

// displayText is the value of base r as shown on its card.
func (m Model) displayText(r radix.Radix) string {
	text := m.state.Text(r)
	if m.prefixes {
		if text == "" {
			// empty cards still name their base
			return r.Prefix()
		}
		return radix.WithPrefix(text, r)
	}
	return text
}

func (m *Model) copyActive() tea.Cmd {
	if m.state.Validity() != session.Valid {
		return nil
	}
	text := radix.WithPrefix(m.state.Raw(), m.state.Active())
	if err := writeClipboard(text); err != nil {
		logging.Warnf("clipboard write failed: %v", err)
		return footer.SetStatus(i18n.T("converter.copy_failed", err), true)
	}
	return footer.SetStatus(i18n.T("converter.copied", text), false)
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
