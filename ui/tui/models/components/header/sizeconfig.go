// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package header

import (
	"github.com/rasmusac/bdx/ui/tui/models/components/stack"
	"github.com/rasmusac/bdx/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

// height of the title line plus its bottom border
const height = 2

func (s *sizeConfig) Priority() int { return 10 }

// Calculate drops the header on very short terminals so the cards and keypad
// keep their room.
func (s *sizeConfig) Calculate(_ util.Model, _ int, total_size int) int {
	if total_size >= 20+height {
		return height
	}
	return 0
}
