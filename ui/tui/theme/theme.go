// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

// Package theme defines the color palettes and lipgloss styles of the TUI.
package theme

import "github.com/charmbracelet/lipgloss"

// Palette is the subset of a Material color scheme the TUI draws with.
type Palette struct {
	Primary            lipgloss.Color
	OnPrimary          lipgloss.Color
	PrimaryContainer   lipgloss.Color
	OnPrimaryContainer lipgloss.Color
	Surface            lipgloss.Color
	OnSurface          lipgloss.Color
	OnSurfaceVariant   lipgloss.Color
	Outline            lipgloss.Color
	ErrorContainer     lipgloss.Color
	OnErrorContainer   lipgloss.Color
	Error              lipgloss.Color
}

var Dark = Palette{
	Primary:            lipgloss.Color("#4FC3F7"),
	OnPrimary:          lipgloss.Color("#003544"),
	PrimaryContainer:   lipgloss.Color("#004D61"),
	OnPrimaryContainer: lipgloss.Color("#B8E6FF"),
	Surface:            lipgloss.Color("#0F1419"),
	OnSurface:          lipgloss.Color("#E1F4F9"),
	OnSurfaceVariant:   lipgloss.Color("#C0C8CC"),
	Outline:            lipgloss.Color("#8A9296"),
	ErrorContainer:     lipgloss.Color("#93000A"),
	OnErrorContainer:   lipgloss.Color("#FFDAD6"),
	Error:              lipgloss.Color("#FFB4AB"),
}

var Light = Palette{
	Primary:            lipgloss.Color("#006781"),
	OnPrimary:          lipgloss.Color("#FFFFFF"),
	PrimaryContainer:   lipgloss.Color("#B8E6FF"),
	OnPrimaryContainer: lipgloss.Color("#001F28"),
	Surface:            lipgloss.Color("#FAFDFE"),
	OnSurface:          lipgloss.Color("#191C1E"),
	OnSurfaceVariant:   lipgloss.Color("#40484C"),
	Outline:            lipgloss.Color("#70787D"),
	ErrorContainer:     lipgloss.Color("#FFDAD6"),
	OnErrorContainer:   lipgloss.Color("#410002"),
	Error:              lipgloss.Color("#BA1A1A"),
}

// Theme holds the styles derived from one palette.
type Theme struct {
	Name    string
	Palette Palette

	Title lipgloss.Style

	Card         lipgloss.Style
	ActiveCard   lipgloss.Style
	InvalidCard  lipgloss.Style
	CardLabel    lipgloss.Style
	CardValue    lipgloss.Style
	ActiveValue  lipgloss.Style
	InvalidValue lipgloss.Style
	ErrorText    lipgloss.Style
	Hint         lipgloss.Style

	Key         lipgloss.Style
	SpecialKey  lipgloss.Style
	DisabledKey lipgloss.Style
	CursorKey   lipgloss.Style
	BlankKey    lipgloss.Style

	Status      lipgloss.Style
	StatusError lipgloss.Style
}

// New derives the styles from p.
func New(name string, p Palette) Theme {
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.Outline).
		Padding(0, 2)
	key := lipgloss.NewStyle().
		Width(7).
		Align(lipgloss.Center).
		Padding(0, 0).
		Margin(0, 1, 1, 0).
		Bold(true)

	return Theme{
		Name:    name,
		Palette: p,

		Title: lipgloss.NewStyle().
			Foreground(p.OnPrimaryContainer).
			Background(p.PrimaryContainer).
			Bold(true).
			Padding(0, 2),

		Card:        card,
		ActiveCard:  card.BorderForeground(p.Primary).Border(lipgloss.ThickBorder()),
		InvalidCard: card.BorderForeground(p.Error),
		CardLabel:   lipgloss.NewStyle().Foreground(p.OnSurfaceVariant),
		CardValue:   lipgloss.NewStyle().Foreground(p.OnSurface).Bold(true),
		ActiveValue: lipgloss.NewStyle().Foreground(p.Primary).Bold(true),
		InvalidValue: lipgloss.NewStyle().
			Foreground(p.OnErrorContainer).
			Background(p.ErrorContainer).
			Bold(true),
		ErrorText: lipgloss.NewStyle().Foreground(p.Error),
		Hint:      lipgloss.NewStyle().Foreground(p.Outline).Italic(true),

		Key:         key.Foreground(p.OnPrimary).Background(p.Primary),
		SpecialKey:  key.Foreground(p.OnPrimaryContainer).Background(p.PrimaryContainer),
		DisabledKey: key.Foreground(p.Outline).Faint(true),
		CursorKey:   key.Foreground(p.OnErrorContainer).Background(p.OnSurface).Underline(true),
		BlankKey:    key,

		Status:      lipgloss.NewStyle().Foreground(p.Primary),
		StatusError: lipgloss.NewStyle().Foreground(p.Error),
	}
}

// Resolve returns the theme named by the config value. "auto" follows the
// terminal background; unknown names behave like "auto".
func Resolve(name string) Theme {
	switch name {
	case "dark":
		return New("dark", Dark)
	case "light":
		return New("light", Light)
	}
	if lipgloss.HasDarkBackground() {
		return New("dark", Dark)
	}
	return New("light", Light)
}
