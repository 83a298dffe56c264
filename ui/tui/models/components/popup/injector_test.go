// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

type fake struct {
	text    string
	focused bool
	got     []tea.Msg
}

func (f fake) Init() tea.Cmd { return nil }
func (f *fake) Update(msg tea.Msg) tea.Cmd {
	f.got = append(f.got, msg)
	return nil
}
func (f fake) View() string { return f.text }
func (f *fake) Focus() (tea.Cmd, help.KeyMap) {
	f.focused = true
	return nil, nil
}
func (f *fake) Blur() { f.focused = false }

func setup() (*Injector, *fake, *fake) {
	child := &fake{text: strings.Repeat(strings.Repeat("x", 30)+"\n", 9) + strings.Repeat("x", 30)}
	dialog := &fake{text: "hello"}
	inj := NewInjector(util.ModelPointer(child), theme.New("dark", theme.Dark))
	inj.Update(tea.WindowSizeMsg{Width: 30, Height: 10})
	inj.Focus()
	return inj, child, dialog
}

func TestOpenRoutesMessagesToPopup(t *testing.T) {
	inj, child, dialog := setup()
	inj.Update(Open(util.ModelPointer(dialog))())

	if !inj.Open() {
		t.Fatal("expected popup to be open")
	}
	if child.focused || !dialog.focused {
		t.Fatalf("expected focus to move to popup (child %t, popup %t)", child.focused, dialog.focused)
	}

	before := len(child.got)
	inj.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if len(child.got) != before {
		t.Fatal("child must not receive keys while a popup is open")
	}
	if !strings.Contains(inj.View(), "hello") {
		t.Fatalf("expected popup in view:\n%s", inj.View())
	}
}

func TestCloseRestoresChild(t *testing.T) {
	inj, child, dialog := setup()
	closed := false
	inj.Update(OpenWithCallback(util.ModelPointer(dialog), func(*util.Model) tea.Cmd {
		closed = true
		return nil
	})())
	inj.Update(Close()())

	if inj.Open() {
		t.Fatal("expected popup to be closed")
	}
	if !closed {
		t.Fatal("expected close callback to run")
	}
	if !child.focused {
		t.Fatal("expected child to regain focus")
	}
	if strings.Contains(inj.View(), "hello") {
		t.Fatal("expected popup to be gone from view")
	}
}

func TestOverlayKeepsSize(t *testing.T) {
	base := "aaaaa\naaaaa\naaaaa"
	out := overlay(base, "b")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 || lines[1] != "aabaa" {
		t.Fatalf("unexpected overlay:\n%s", out)
	}
}
