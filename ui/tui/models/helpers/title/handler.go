// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

func NewHandler(base string, delimiter string) *TitleHandler {
	return &TitleHandler{
		Base:      base,
		Delimiter: delimiter,
	}
}

// TitleHandler keeps the terminal window title in sync with the view,
// e.g. "bdx 1.2.0 | Hexadecimal".
type TitleHandler struct {
	Base      string
	Delimiter string
	current   string
}

// Title returns the full title that is currently set.
func (t TitleHandler) Title() string {
	if t.current != "" {
		return t.Base + t.Delimiter + t.current
	}
	return t.Base
}

func (t TitleHandler) render() tea.Cmd {
	return tea.SetWindowTitle(t.Title())
}

func (t TitleHandler) Init() tea.Cmd {
	return t.render()
}

// Handle consumes title messages and returns the command that applies a
// changed title. Other messages yield nil.
func (t *TitleHandler) Handle(msg tea.Msg) tea.Cmd {
	if title, ok := msg.(titleMsg); ok {
		if t.current != string(title) {
			t.current = string(title)
			return t.render()
		}
	}
	return nil
}
