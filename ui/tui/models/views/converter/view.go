// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package converter

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/core/session"
	"github.com/rasmusac/bdx/internal/i18n"
)

// lines taken by one bordered card: border, label, value, border
const cardHeight = 4

// fullHeight is what the bordered layout needs, including the error line.
func fullHeight() int {
	return len(radix.All())*cardHeight + 1
}

func (m Model) View() string {
	if m.size.Width <= 0 {
		return ""
	}
	invalid := m.state.Validity() == session.Invalid

	var rows []string
	if m.size.Height > 0 && m.size.Height < fullHeight() {
		rows = m.compactRows(invalid)
	} else {
		for _, r := range radix.All() {
			rows = append(rows, m.card(r, invalid))
		}
	}

	if invalid {
		rows = append(rows, m.theme.ErrorText.Render(i18n.T("converter.invalid")))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) label(r radix.Radix) string {
	return i18n.T("radix." + r.Name())
}

func (m Model) valueStyle(r radix.Radix, invalid bool) lipgloss.Style {
	switch {
	case invalid:
		return m.theme.InvalidValue
	case r == m.state.Active():
		return m.theme.ActiveValue
	}
	return m.theme.CardValue
}

func (m Model) card(r radix.Radix, invalid bool) string {
	style := m.theme.Card
	switch {
	case invalid:
		style = m.theme.InvalidCard
	case r == m.state.Active():
		style = m.theme.ActiveCard
	}
	// Width excludes the border
	style = style.Width(max(m.size.Width-style.GetHorizontalBorderSize(), 0))

	label := m.label(r)
	if r == m.state.Active() {
		label += " · " + i18n.T("converter.active")
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left,
		m.theme.CardLabel.Render(label),
		m.valueStyle(r, invalid).Render(m.displayText(r)),
	))
}

// compactRows renders one line per base for short terminals.
func (m Model) compactRows(invalid bool) []string {
	width := 0
	for _, r := range radix.All() {
		width = max(width, lipgloss.Width(m.label(r)))
	}

	rows := make([]string, 0, len(radix.All()))
	for _, r := range radix.All() {
		marker := "  "
		if r == m.state.Active() {
			marker = "▶ "
		}
		label := m.label(r)
		label += strings.Repeat(" ", width-lipgloss.Width(label))
		rows = append(rows, marker+
			m.theme.CardLabel.Render(label)+"  "+
			m.valueStyle(r, invalid).Render(m.displayText(r)))
	}
	return rows
}
