// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/ui/tui/theme"
)

func newMenu() *Model {
	m := New(theme.New("dark", theme.Dark),
		WithItem("a", "Alpha", "1"),
		WithItem("b", "Beta", "2"),
		WithItem("c", "Gamma", "3"),
	)
	m.Focus()
	return m
}

func TestNavigationWraps(t *testing.T) {
	m := newMenu()
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if m.Active != 2 {
		t.Fatalf("expected wrap to last item, got %d", m.Active)
	}
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	if m.Active != 0 {
		t.Fatalf("expected wrap to first item, got %d", m.Active)
	}
}

func TestSelectEmitsItemSelected(t *testing.T) {
	m := newMenu()
	m.SetActive("b")
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a command")
	}
	if msg, ok := cmd().(ItemSelected); !ok || msg.Id != "b" {
		t.Fatalf("expected ItemSelected b, got %#v", cmd())
	}
}

func TestBlurredMenuIgnoresKeys(t *testing.T) {
	m := newMenu()
	m.Blur()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("expected no command while blurred")
	}
}

func TestViewListsItems(t *testing.T) {
	out := newMenu().View()
	for _, want := range []string{"Alpha", "Beta", "Gamma", "▶"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view:\n%s", want, out)
		}
	}
}
