// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
package converter

import (
	"github.com/rasmusac/bdx/core/radix"
	"github.com/rasmusac/bdx/ui/tui/models/components/stack"
	"github.com/rasmusac/bdx/ui/tui/util"
)

var SizeConfig = &sizeConfig{}

type sizeConfig struct{}

var _ stack.SizeConfig = (*sizeConfig)(nil)

// sized before the keypad so the values win on short terminals
func (s *sizeConfig) Priority() int { return 20 }

func (s *sizeConfig) Calculate(_ util.Model, remaining_size int, _ int) int {
	if remaining_size >= fullHeight() {
		return fullHeight()
	}
	// compact: one line per base plus the error line
	return min(remaining_size, len(radix.All())+1)
}
