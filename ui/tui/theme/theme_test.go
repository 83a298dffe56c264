// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package theme

import "testing"

func TestResolve_ExplicitNames(t *testing.T) {
	if got := Resolve("dark"); got.Name != "dark" || got.Palette != Dark {
		t.Fatalf("expected dark theme, got %q", got.Name)
	}
	if got := Resolve("light"); got.Name != "light" || got.Palette != Light {
		t.Fatalf("expected light theme, got %q", got.Name)
	}
}

func TestResolve_AutoPicksAPalette(t *testing.T) {
	got := Resolve("auto")
	if got.Name != "dark" && got.Name != "light" {
		t.Fatalf("unexpected auto theme %q", got.Name)
	}
}

func TestStylesRender(t *testing.T) {
	th := New("dark", Dark)
	for name, out := range map[string]string{
		"card":    th.Card.Render("x"),
		"active":  th.ActiveCard.Render("x"),
		"invalid": th.InvalidCard.Render("x"),
		"key":     th.Key.Render("1"),
	} {
		if out == "" {
			t.Fatalf("expected non-empty render for %s", name)
		}
	}
}
