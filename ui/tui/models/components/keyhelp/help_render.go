// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package keyhelp

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// ShortHelpView renders bindings on one line, cutting off with an ellipsis
// when m.Width is exceeded. Unlike help.Model.ShortHelpView it never
// separates a leading disabled binding.
func ShortHelpView(m help.Model, bindings []key.Binding) string {
	var items []string
	separator := m.Styles.ShortSeparator.Inline(true).Render(m.ShortSeparator)

	for _, kb := range bindings {
		if !kb.Enabled() {
			continue
		}
		var sep string
		if len(items) > 0 {
			sep = separator
		}
		items = append(items, sep+
			m.Styles.ShortKey.Inline(true).Render(kb.Help().Key)+" "+
			m.Styles.ShortDesc.Inline(true).Render(kb.Help().Desc))
	}

	return strings.Join(fit(m, items), "")
}

// FullHelpView renders one column per binding group. Groups without an
// enabled binding are skipped.
func FullHelpView(m help.Model, groups [][]key.Binding) string {
	var cols []string
	separator := m.Styles.FullSeparator.Inline(true).Render(m.FullSeparator)

	for _, group := range groups {
		if !slices.ContainsFunc(group, key.Binding.Enabled) {
			continue
		}
		var keys, descriptions []string
		for _, binding := range group {
			if !binding.Enabled() {
				continue
			}
			keys = append(keys, binding.Help().Key)
			descriptions = append(descriptions, binding.Help().Desc)
		}

		var sep string
		if len(cols) > 0 {
			sep = separator
		}
		cols = append(cols, lipgloss.JoinHorizontal(lipgloss.Top,
			sep,
			m.Styles.FullKey.Render(lipgloss.JoinVertical(lipgloss.Left, keys...)),
			" ",
			m.Styles.FullDesc.Render(lipgloss.JoinVertical(lipgloss.Left, descriptions...)),
		))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, fit(m, cols)...)
}

// fit keeps as many leading items as fit into m.Width, replacing the rest
// with an ellipsis tail when that fits. A zero width means unlimited.
func fit(m help.Model, items []string) []string {
	if m.Width <= 0 {
		return items
	}
	tail := " " + m.Styles.Ellipsis.Inline(true).Render(m.Ellipsis)
	tailLen := lipgloss.Width(tail)

	var out []string
	var usedWidth int
	for i, item := range items {
		itemLen := lipgloss.Width(item)
		last := i == len(items)-1
		if (last && usedWidth+itemLen <= m.Width) || (!last && usedWidth+itemLen+tailLen <= m.Width) {
			usedWidth += itemLen
			out = append(out, item)
			continue
		}
		if usedWidth+tailLen <= m.Width {
			out = append(out, tail)
		}
		break
	}
	return out
}
