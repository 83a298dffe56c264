// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/ui/tui/util"
)

type km []key.Binding

func (k km) ShortHelp() []key.Binding  { return k }
func (k km) FullHelp() [][]key.Binding { return [][]key.Binding{k[:1], k[1:]} }

func bindings() km {
	return km{
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next base")),
		key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy")),
	}
}

func TestShortHelpView_FitsOrTruncates(t *testing.T) {
	m := help.New()
	m.Width = 200
	out := ShortHelpView(m, bindings())
	if !strings.Contains(out, "next base") || !strings.Contains(out, "copy") {
		t.Fatalf("expected both bindings, got %q", out)
	}

	m.Width = 14
	out = ShortHelpView(m, bindings())
	if strings.Contains(out, "copy") {
		t.Fatalf("expected truncation at width 14, got %q", out)
	}
	if !strings.Contains(out, m.Ellipsis) {
		t.Fatalf("expected ellipsis, got %q", out)
	}
}

func TestShortHelpView_SkipsDisabled(t *testing.T) {
	b := bindings()
	b[0].SetEnabled(false)
	out := ShortHelpView(help.New(), b)
	if strings.Contains(out, "next base") || strings.HasPrefix(out, help.New().ShortSeparator) {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestModel_ExpandedUsesFullHelp(t *testing.T) {
	m := New()
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 3})
	m.Update(util.AnnounceKeyMapMsg{KeyMap: bindings()})
	short := m.View()
	m.ToggleExpanded()
	full := m.View()
	if short == full {
		t.Fatalf("expected expanded view to differ")
	}
	if !strings.Contains(full, "copy") {
		t.Fatalf("expected full help to list copy, got %q", full)
	}
}

func TestModel_EmptyWithoutKeyMap(t *testing.T) {
	if New().View() != "" {
		t.Fatalf("expected empty view without key map")
	}
}
