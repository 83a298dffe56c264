// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package menu

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/util/slicest"
)

func WithItem(id string, name string, detail string) Item {
	return Item{
		Id:     id,
		Name:   name,
		Detail: detail,
	}
}

// Item is one selectable row. Detail is shown dimmed next to Name.
type Item struct {
	Id     string
	Name   string
	Detail string
}

func (i Item) View(th theme.Theme, nameWidth int, is_active bool) string {
	name := lipgloss.NewStyle().Width(nameWidth).Render(i.Name)
	detail := th.Hint.Render(i.Detail)

	marker := "  "
	style := lipgloss.NewStyle()
	if is_active {
		marker = "▶ "
		style = style.
			Foreground(th.Palette.OnPrimaryContainer).
			Background(th.Palette.PrimaryContainer).
			Bold(true)
	}
	return marker + style.Render(name) + "  " + detail
}

// ItemSelected is sent when the active item is chosen.
type ItemSelected struct {
	Id string
}

func renderItems(th theme.Theme, items []Item, active int) string {
	nameWidth := slicest.Reduce(items, func(item Item, w int) int {
		return max(w, lipgloss.Width(item.Name))
	})

	return lipgloss.JoinVertical(
		lipgloss.Left,
		slicest.MapI(items, func(i int, item Item) string {
			return item.View(th, nameWidth, active == i)
		})...,
	)
}
