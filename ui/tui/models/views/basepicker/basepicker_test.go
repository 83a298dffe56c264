// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package basepicker

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/core/session"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/ui/tui/models/components/menu"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

func newPicker() *Model {
	i18n.Init("en")
	state := session.New(radix.Decimal).Type("255")
	m := New(theme.New("dark", theme.Dark), state)
	m.Focus()
	return m
}

func TestPreviewShowsEveryBase(t *testing.T) {
	out := newPicker().View()
	for _, want := range []string{"Choose base", "0d255", "0xFF", "0o377", "0b11111111"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in picker:\n%s", want, out)
		}
	}
}

func TestSelectionStartsOnActiveBase(t *testing.T) {
	m := newPicker()
	cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if sel, ok := cmd().(menu.ItemSelected); !ok || sel.Id != "dec" {
		t.Fatalf("expected dec to be preselected, got %#v", sel)
	}
}

func TestChoosingBaseSwitchesOnClose(t *testing.T) {
	m := newPicker()
	if cmd := m.Update(menu.ItemSelected{Id: "bin"}); cmd == nil {
		t.Fatal("expected close command")
	}
	if r, ok := m.Chosen(); !ok || r != radix.Binary {
		t.Fatalf("expected binary chosen, got %s %t", r, ok)
	}

	cmd := OnClose(util.ModelPointer(m))
	if cmd == nil {
		t.Fatal("expected switch command on close")
	}
	msg, ok := cmd().(converter.ActionMsg)
	if !ok || msg.Action != (session.SwitchRadix{To: radix.Binary}) {
		t.Fatalf("expected SwitchRadix to binary, got %#v", cmd())
	}
}

func TestEscapeClosesWithoutSwitch(t *testing.T) {
	m := newPicker()
	if cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc}); cmd == nil {
		t.Fatal("expected close command on esc")
	}
	if cmd := OnClose(util.ModelPointer(m)); cmd != nil {
		t.Fatal("expected no switch after cancel")
	}
}
