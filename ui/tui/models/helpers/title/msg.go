// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package windowtitle

import tea "github.com/charmbracelet/bubbletea"

type titleMsg string

// Set returns a command that changes the view-specific part of the title.
func Set(title string) tea.Cmd {
	return func() tea.Msg { return titleMsg(title) }
}
