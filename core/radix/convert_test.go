// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.

package radix

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormat_RoundTrip(t *testing.T) {
	samples := []int32{
		0, 1, -1, 2, 7, 8, 9, 10, 15, 16, 255, 256, -255,
		1 << 16, 123456789, -987654321,
		math.MaxInt32, math.MaxInt32 - 1, math.MinInt32, math.MinInt32 + 1,
	}
	// sweep a spread of values across the whole range
	for i := int64(math.MinInt32); i <= math.MaxInt32; i += 104729 * 97 {
		samples = append(samples, int32(i))
	}

	for _, r := range All() {
		for _, n := range samples {
			text := Format(ValueOf(n), r)
			got := Parse(text, r)
			v, ok := got.Get()
			require.Truef(t, ok, "parse(%q, %s) absent", text, r)
			assert.Equalf(t, n, v, "round trip in %s via %q", r, text)
		}
	}
}

func TestFormat_AbsentAndZero(t *testing.T) {
	for _, r := range All() {
		assert.Equal(t, "", Format(Absent, r), r.Name())
		assert.Equal(t, "0", Format(ValueOf(0), r), r.Name())
	}
}

func TestParse_Empty(t *testing.T) {
	for _, r := range All() {
		assert.True(t, Parse("", r).IsAbsent(), r.Name())
	}
}

func TestParse_IllegalDigits(t *testing.T) {
	assert.True(t, Parse("2", Binary).IsAbsent())
	assert.True(t, Parse("8", Octal).IsAbsent())
	assert.True(t, Parse("G", Hexadecimal).IsAbsent())
	assert.True(t, Parse("A", Decimal).IsAbsent())
	assert.True(t, Parse("1 0", Decimal).IsAbsent())
	assert.True(t, Parse("1_000", Decimal).IsAbsent())
}

func TestParse_PrefixIsNotPartOfText(t *testing.T) {
	assert.True(t, Parse("0xFF", Hexadecimal).IsAbsent())
	assert.True(t, Parse("0b101", Binary).IsAbsent())
}

func TestParse_HexIsCaseInsensitive(t *testing.T) {
	upper, _ := Parse("BEEF", Hexadecimal).Get()
	lower, ok := Parse("beef", Hexadecimal).Get()
	require.True(t, ok)
	assert.Equal(t, int32(0xBEEF), upper)
	assert.Equal(t, upper, lower)
}

func TestParse_Overflow(t *testing.T) {
	assert.True(t, Parse("2147483648", Decimal).IsAbsent())
	assert.True(t, Parse("-2147483649", Decimal).IsAbsent())
	assert.True(t, Parse("80000000", Hexadecimal).IsAbsent())
	assert.True(t, Parse("100000000000000000000000000000000", Binary).IsAbsent())

	v, ok := Parse("2147483647", Decimal).Get()
	require.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), v)
	v, ok = Parse("7FFFFFFF", Hexadecimal).Get()
	require.True(t, ok)
	assert.Equal(t, int32(math.MaxInt32), v)
}

func TestParse_Sign(t *testing.T) {
	v, ok := Parse("-10", Decimal).Get()
	require.True(t, ok)
	assert.Equal(t, int32(-10), v)
	v, ok = Parse("+101", Binary).Get()
	require.True(t, ok)
	assert.Equal(t, int32(5), v)
	assert.True(t, Parse("-", Decimal).IsAbsent())
	assert.True(t, Parse("--1", Decimal).IsAbsent())
}

func TestFormat_HexUppercase(t *testing.T) {
	assert.Equal(t, "FF", Format(ValueOf(255), Hexadecimal))
	assert.Equal(t, "DEADBEE", Format(ValueOf(0xDEADBEE), Hexadecimal))
}

func TestFormat_NegativeUsesSignedRendering(t *testing.T) {
	assert.Equal(t, "-FF", Format(ValueOf(-255), Hexadecimal))
	assert.Equal(t, "-11111111", Format(ValueOf(-255), Binary))
	assert.Equal(t, "-377", Format(ValueOf(-255), Octal))
	assert.Equal(t, "-80000000", Format(ValueOf(math.MinInt32), Hexadecimal))
}

func TestIsDigitAllowed(t *testing.T) {
	assert.True(t, IsDigitAllowed('A', Hexadecimal))
	assert.False(t, IsDigitAllowed('A', Decimal))
	assert.False(t, IsDigitAllowed('a', Hexadecimal))
	assert.False(t, IsDigitAllowed('G', Hexadecimal))
	assert.False(t, IsDigitAllowed('-', Decimal))
	assert.True(t, IsDigitAllowed('1', Binary))
	assert.False(t, IsDigitAllowed('2', Binary))
	assert.True(t, IsDigitAllowed('7', Octal))
	assert.False(t, IsDigitAllowed('8', Octal))
	assert.True(t, IsDigitAllowed('9', Decimal))
	assert.False(t, IsDigitAllowed('0', Radix(3)))
}

func TestDigits(t *testing.T) {
	assert.Equal(t, "01", string(Digits(Binary)))
	assert.Equal(t, "01234567", string(Digits(Octal)))
	assert.Equal(t, "0123456789", string(Digits(Decimal)))
	assert.Equal(t, "0123456789ABCDEF", string(Digits(Hexadecimal)))
	for _, r := range All() {
		for _, d := range Digits(r) {
			assert.True(t, IsDigitAllowed(d, r))
		}
	}
}

func TestConvert_HexFF(t *testing.T) {
	c := Convert(Parse("FF", Hexadecimal))
	assert.Equal(t, "255", c.Decimal)
	assert.Equal(t, "377", c.Octal)
	assert.Equal(t, "11111111", c.Binary)
	assert.Equal(t, "FF", c.In(Hexadecimal))
}

func TestConvert_Absent(t *testing.T) {
	c := Convert(Absent)
	for _, r := range All() {
		assert.Empty(t, c.In(r))
	}
}

func TestWithPrefix(t *testing.T) {
	assert.Equal(t, "0xFF", WithPrefix("FF", Hexadecimal))
	assert.Equal(t, "-0xFF", WithPrefix("-FF", Hexadecimal))
	assert.Equal(t, "0b0", WithPrefix("0", Binary))
	assert.Empty(t, WithPrefix("", Octal))
}
