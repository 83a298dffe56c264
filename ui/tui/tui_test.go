// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package tui

import (
	"errors"
	"testing"

	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/internal/config"
)

func TestNewModelAppliesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Base = "hex"
	cfg.Theme = config.ThemeDark

	m, err := NewModel(Options{Config: cfg, Initial: "ff"})
	if err != nil {
		t.Fatalf("NewModel: %v", err)
	}
	state := m.Converter().State()
	if state.Active() != radix.Hexadecimal || state.Raw() != "FF" {
		t.Fatalf("expected hex FF, got %s %q", state.Active(), state.Raw())
	}
}

func TestNewModelRejectsUnknownBase(t *testing.T) {
	cfg := config.Default()
	cfg.Base = "base64"
	if _, err := NewModel(Options{Config: cfg}); !errors.Is(err, radix.ErrUnknownRadix) {
		t.Fatalf("expected ErrUnknownRadix, got %v", err)
	}
}
