// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package keypad

import (
	"github.com/rasmusac/bdx/core/keypad"
	"github.com/rasmusac/bdx/ui/tui/models/components/stack"
	"github.com/rasmusac/bdx/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

// each key row is one line plus its bottom margin
func height() int { return keypad.Rows * 2 }

func (s *sizeConfig) Priority() int { return 30 }

// Calculate shows the keypad only when it fits completely.
func (s *sizeConfig) Calculate(_ util.Model, remaining_size int, _ int) int {
	if remaining_size >= height() {
		return height()
	}
	return 0
}
