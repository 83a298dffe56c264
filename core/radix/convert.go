// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package radix

import (
	"strconv"
	"strings"
)

const hexDigits = "0123456789ABCDEF"

// Parse returns the value text denotes in base r. The result is Absent when
// text is empty, contains a symbol that is not a digit of r, or does not fit
// into a signed 32-bit integer. A single leading sign is accepted, like the
// native signed parser it delegates to.
func Parse(text string, r Radix) Value {
	if text == "" || !r.Valid() {
		return Absent
	}
	n, err := strconv.ParseInt(text, r.Base(), 32)
	if err != nil {
		return Absent
	}
	return ValueOf(int32(n))
}

// Format renders v in base r without a prefix, hex digits in uppercase.
// Absent renders as "", zero as "0". Negative numbers keep the native signed
// rendering: a minus sign followed by the magnitude.
func Format(v Value, r Radix) string {
	n, ok := v.Get()
	if !ok || !r.Valid() {
		return ""
	}
	s := strconv.FormatInt(int64(n), r.Base())
	if r == Hexadecimal {
		s = strings.ToUpper(s)
	}
	return s
}

// WithPrefix puts the prefix of r in front of a rendering of r, after the
// sign: "-FF" becomes "-0xFF". The empty string stays empty.
func WithPrefix(s string, r Radix) string {
	if s == "" {
		return ""
	}
	if s[0] == '-' || s[0] == '+' {
		return s[:1] + r.Prefix() + s[1:]
	}
	return r.Prefix() + s
}

// IsDigitAllowed reports whether c is one of the digit symbols of base r.
// Hex letters are the uppercase symbols A-F only; callers that accept
// lowercase typing normalize first.
func IsDigitAllowed(c rune, r Radix) bool {
	if !r.Valid() {
		return false
	}
	i := strings.IndexRune(hexDigits, c)
	return i >= 0 && i < r.Base()
}

// Digits returns the digit symbols of base r in ascending order.
func Digits(r Radix) []rune {
	if !r.Valid() {
		return nil
	}
	return []rune(hexDigits[:r.Base()])
}

// Conversion holds the renderings of one value in every supported base.
type Conversion struct {
	Value       Value
	Decimal     string
	Hexadecimal string
	Octal       string
	Binary      string
}

// Convert renders v in all four bases.
func Convert(v Value) Conversion {
	return Conversion{
		Value:       v,
		Decimal:     Format(v, Decimal),
		Hexadecimal: Format(v, Hexadecimal),
		Octal:       Format(v, Octal),
		Binary:      Format(v, Binary),
	}
}

// In returns the rendering for base r.
func (c Conversion) In(r Radix) string {
	switch r {
	case Binary:
		return c.Binary
	case Octal:
		return c.Octal
	case Decimal:
		return c.Decimal
	case Hexadecimal:
		return c.Hexadecimal
	}
	return ""
}
