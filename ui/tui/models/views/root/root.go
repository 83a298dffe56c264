// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package root

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/internal/i18n"
	"github.com/rasmusac/bdx/ui/tui/models/components/header"
	"github.com/rasmusac/bdx/ui/tui/models/components/popup"
	"github.com/rasmusac/bdx/ui/tui/models/components/stack"
	windowtitle "github.com/rasmusac/bdx/ui/tui/models/helpers/title"
	"github.com/rasmusac/bdx/ui/tui/models/views/basepicker"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/models/views/footer"
	"github.com/rasmusac/bdx/ui/tui/models/views/keypad"
	"github.com/rasmusac/bdx/ui/tui/theme"
	"github.com/rasmusac/bdx/ui/tui/util"
)

type Options struct {
	Theme     theme.Theme
	Version   string
	Converter converter.Options
}

type Model struct {
	stack        *stack.Model
	converter    *util.Model
	footer       *util.Model
	popups       *popup.Injector
	keys         KeyMap
	theme        theme.Theme
	titleHandler *windowtitle.TitleHandler
}

func New(opts Options) *Model {
	keys := NewBaseKeyMap()
	_converter := converter.New(opts.Theme, opts.Converter)

	// create model pointers for multiple references
	_converter_ptr := util.ModelPointer(_converter)
	_footer_ptr := util.ModelPointer(footer.New(keys, opts.Theme))
	_popups := popup.NewInjector(
		util.ModelPointer(stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusAll()),
			stack.WithItem(_converter_ptr, converter.SizeConfig),
			stack.WithItem(util.ModelPointer(keypad.New(opts.Theme, _converter.State().Active())), keypad.SizeConfig),
		)),
		opts.Theme,
	)

	version := "unknown version"
	if len(opts.Version) > 0 {
		version = opts.Version
	}

	return &Model{
		stack: stack.New(
			stack.WithOrientation(stack.Vertical),
			stack.WithFocus(stack.FocusAll()),
			stack.WithItem(util.ModelPointer(header.New(opts.Theme)), header.SizeConfig),
			stack.WithItem(util.ModelPointer(_popups), stack.VariableSize(1)),
			stack.WithItem(_footer_ptr, footer.SizeConfig),
		),
		converter:    _converter_ptr,
		footer:       _footer_ptr,
		popups:       _popups,
		keys:         keys,
		theme:        opts.Theme,
		titleHandler: windowtitle.NewHandler(fmt.Sprintf("%s %s", i18n.T("app.window_title"), version), " | "),
	}
}

func (m Model) Init() tea.Cmd {
	titleCmd := m.titleHandler.Init()
	initCmd := m.stack.Init()
	focusCmd, keyMap := m.stack.Focus()
	keyMapCmd := util.AnnounceKeyMapCmd(keyMap)

	return tea.Sequence(titleCmd, initCmd, focusCmd, keyMapCmd)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Exit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			util.BorrowModelFunc(m.footer, func(_footer *footer.Model) {
				_footer.ToggleExpanded()
			})
		case key.Matches(msg, m.keys.ChooseBase) && !m.popups.Open():
			picker := basepicker.New(m.theme, m.Converter().State())
			return m, popup.OpenWithCallback(util.ModelPointer(picker), basepicker.OnClose)
		}
		return m, m.stack.Update(msg)
	case converter.ChangedMsg:
		// the title names the base being edited
		title := windowtitle.Set(i18n.T("radix." + msg.State.Active().Name()))
		return m, tea.Batch(title, m.stack.Update(msg))
	}
	// handle window title messages
	if cmd := m.titleHandler.Handle(msg); cmd != nil {
		return m, cmd
	}
	// handle other messages
	return m, m.stack.Update(msg)
}

func (m Model) View() string {
	return m.stack.View()
}

// Converter returns the converter view, mainly for inspecting its state.
func (m Model) Converter() *converter.Model {
	return (*m.converter).(*converter.Model)
}

// *Model implements tea.Model
var _ tea.Model = (*Model)(nil)
