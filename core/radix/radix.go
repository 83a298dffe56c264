// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package radix

import (
	"errors"
	"fmt"
	"strings"
)

// Radix is one of the four supported positional numeral bases.
type Radix int

const (
	Binary      Radix = 2
	Octal       Radix = 8
	Decimal     Radix = 10
	Hexadecimal Radix = 16
)

// ErrUnknownRadix is returned by ParseRadix for names it does not recognize.
var ErrUnknownRadix = errors.New("unknown radix")

// displayOrder is the order in which the bases are shown to the user.
var displayOrder = []Radix{Decimal, Hexadecimal, Octal, Binary}

// All returns the supported bases in display order.
func All() []Radix {
	out := make([]Radix, len(displayOrder))
	copy(out, displayOrder)
	return out
}

// Valid reports whether r is one of the supported bases.
func (r Radix) Valid() bool {
	switch r {
	case Binary, Octal, Decimal, Hexadecimal:
		return true
	}
	return false
}

// Base returns the numeric base for use with strconv.
func (r Radix) Base() int { return int(r) }

// Name returns the long English name, e.g. "Hexadecimal". It doubles as the
// i18n message ID suffix for the label.
func (r Radix) Name() string {
	switch r {
	case Binary:
		return "Binary"
	case Octal:
		return "Octal"
	case Decimal:
		return "Decimal"
	case Hexadecimal:
		return "Hexadecimal"
	}
	return fmt.Sprintf("Radix(%d)", int(r))
}

// Short returns the short lowercase name used in flags and config files.
func (r Radix) Short() string {
	switch r {
	case Binary:
		return "bin"
	case Octal:
		return "oct"
	case Decimal:
		return "dec"
	case Hexadecimal:
		return "hex"
	}
	return ""
}

// Prefix returns the cosmetic base prefix shown next to a value.
func (r Radix) Prefix() string {
	switch r {
	case Binary:
		return "0b"
	case Octal:
		return "0o"
	case Decimal:
		return "0d"
	case Hexadecimal:
		return "0x"
	}
	return ""
}

func (r Radix) String() string { return r.Short() }

// Next returns the base following r in display order, wrapping around.
func (r Radix) Next() Radix { return r.step(1) }

// Prev returns the base preceding r in display order, wrapping around.
func (r Radix) Prev() Radix { return r.step(-1) }

func (r Radix) step(delta int) Radix {
	n := len(displayOrder)
	for i, o := range displayOrder {
		if o == r {
			return displayOrder[((i+delta)%n+n)%n]
		}
	}
	return Decimal
}

// ParseRadix resolves a user supplied base name. It accepts the short and
// long names, the single letter used in prefixes and the numeric base, all
// case-insensitively.
func ParseRadix(name string) (Radix, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bin", "binary", "b", "2", "0b":
		return Binary, nil
	case "oct", "octal", "o", "8", "0o":
		return Octal, nil
	case "dec", "decimal", "d", "10", "0d":
		return Decimal, nil
	case "hex", "hexadecimal", "x", "h", "16", "0x":
		return Hexadecimal, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRadix, name)
}
