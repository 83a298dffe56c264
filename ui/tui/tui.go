// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rasmusac/bdx/internal/config"
	"github.com/rasmusac/bdx/internal/logging"
	"github.com/rasmusac/bdx/ui/tui/models/views/converter"
	"github.com/rasmusac/bdx/ui/tui/models/views/root"
	"github.com/rasmusac/bdx/ui/tui/theme"
)

type Options struct {
	Config  config.Config
	Version string
	// Initial is typed into the start base before the first frame.
	Initial string
	// ProgramOptions are passed through to tea.NewProgram, e.g. for tests.
	ProgramOptions []tea.ProgramOption
}

// NewModel builds the root model for opts.
func NewModel(opts Options) (*root.Model, error) {
	start, err := opts.Config.StartRadix()
	if err != nil {
		return nil, err
	}
	th := theme.Resolve(opts.Config.Theme)
	logging.Debugf("tui: theme %s, start base %s, strict %t", th.Name, start, opts.Config.Strict)

	return root.New(root.Options{
		Theme:   th,
		Version: opts.Version,
		Converter: converter.Options{
			Start:    start,
			Strict:   opts.Config.Strict,
			Prefixes: opts.Config.Prefixes,
			Initial:  opts.Initial,
		},
	}), nil
}

func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}
	programOpts := append([]tea.ProgramOption{tea.WithAltScreen()}, opts.ProgramOptions...)
	if _, err := tea.NewProgram(model, programOpts...).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
