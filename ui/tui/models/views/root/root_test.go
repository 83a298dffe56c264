// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

func newRoot(t *testing.T, initial string) *Model {
	t.Helper()
	i18n.Init("en")
	m := New(Options{
		Theme:     theme.New("dark", theme.Dark),
		Version:   "test",
		Converter: converter.Options{Start: radix.Decimal, Initial: initial},
	})
	// focus every item the way Init does, without running the command chain
	_, keyMap := m.stack.Focus()
	m.Update(util.AnnounceKeyMapMsg{KeyMap: keyMap})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 40})
	return m
}

// drain runs cmd and feeds resulting messages back until nothing is left,
// skipping batches and sequences that bubbletea would otherwise expand.
func drain(m *Model, cmd tea.Cmd) {
	queue := []tea.Cmd{cmd}
	for len(queue) > 0 && len(queue) < 100 {
		c := queue[0]
		queue = queue[1:]
		if c == nil {
			continue
		}
		switch msg := c().(type) {
		case tea.BatchMsg:
			queue = append(queue, msg...)
		case nil:
		default:
			if _, ok := msg.(tea.QuitMsg); ok {
				continue
			}
			_, next := m.Update(msg)
			queue = append(queue, next)
		}
	}
}

func TestExitKeysQuit(t *testing.T) {
	m := newRoot(t, "")
	for _, k := range []tea.KeyType{tea.KeyCtrlC, tea.KeyCtrlQ} {
		_, cmd := m.Update(tea.KeyMsg{Type: k})
		if cmd == nil {
			t.Fatalf("%s: expected quit command", k)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Fatalf("%s: expected tea.QuitMsg", k)
		}
	}
}

func TestTypingUpdatesAllCards(t *testing.T) {
	m := newRoot(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
	drain(m, cmd)
	out := m.View()
	for _, want := range []string{"42", "2A", "52", "101010"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in view:\n%s", want, out)
		}
	}
}

func TestKeypadPressReachesConverter(t *testing.T) {
	m := newRoot(t, "")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(m, cmd)
	if got := m.Converter().State().Raw(); got != "1" {
		t.Fatalf("expected keypad 1 in converter, got %q", got)
	}
}

func TestBaseSwitchSetsWindowTitle(t *testing.T) {
	m := newRoot(t, "10")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	drain(m, cmd)
	if got := m.titleHandler.Title(); got != "bdx test | Hexadecimal" {
		t.Fatalf("unexpected window title %q", got)
	}
	if got := m.Converter().State().Raw(); got != "A" {
		t.Fatalf("expected reseeded hex A, got %q", got)
	}
}

func TestHelpTogglesFooter(t *testing.T) {
	m := newRoot(t, "")
	before := m.View()
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("?")})
	if m.View() == before {
		t.Fatal("expected help toggle to change the footer")
	}
}

func TestBasePickerSwitchesBase(t *testing.T) {
	m := newRoot(t, "255")
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	drain(m, cmd)
	if !m.popups.Open() {
		t.Fatal("expected base picker to open")
	}
	if !strings.Contains(m.View(), "Choose base") {
		t.Fatalf("expected picker in view:\n%s", m.View())
	}

	// typing goes to the picker, not the converter
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("1")})
	drain(m, cmd)
	if got := m.Converter().State().Raw(); got != "255" {
		t.Fatalf("converter changed behind the popup: %q", got)
	}

	// Decimal is preselected; one step down is Hexadecimal
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	drain(m, cmd)
	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	drain(m, cmd)

	if m.popups.Open() {
		t.Fatal("expected picker to close after choosing")
	}
	state := m.Converter().State()
	if state.Active() != radix.Hexadecimal || state.Raw() != "FF" {
		t.Fatalf("expected hex FF, got %s %q", state.Active(), state.Raw())
	}
}

func TestViewFitsShortTerminals(t *testing.T) {
	m := newRoot(t, "255")
	for _, h := range []int{10, 15, 21, 22, 29} {
		m.Update(tea.WindowSizeMsg{Width: 80, Height: h})
		if got := lipgloss.Height(m.View()); got > h {
			t.Fatalf("terminal height %d: view is %d lines", h, got)
		}
	}
}
