// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package keypad

// Cursor is a position on the keypad grid.
type Cursor struct {
	Row int
	Col int
}

// Home is the "1" key.
var Home = Cursor{Row: 0, Col: 1}

// Key returns the key under the cursor.
func (c Cursor) Key() Key { return At(c.Row, c.Col) }

// Move steps the cursor by dr rows and dc columns, wrapping around the grid
// and skipping blank slots. A zero move returns c unchanged.
func (c Cursor) Move(dr, dc int) Cursor {
	if dr == 0 && dc == 0 {
		return c
	}
	next := c
	// at most one full lap over the grid
	for i := 0; i < Rows*Cols; i++ {
		next.Row = wrap(next.Row+dr, Rows)
		next.Col = wrap(next.Col+dc, Cols)
		if next.Key().Kind != Blank {
			return next
		}
	}
	return c
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}
