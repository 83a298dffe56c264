// Copyright (c) 2026 bdx Team
// bdx - number base converter
// This source code is licensed under the MIT license found in the LICENSE file.
// Package radix is the conversion core of bdx. It parses numerals written in
// base 2, 8, 10 or 16 into signed 32-bit values and renders values back into
// those bases. It is UI-agnostic; base prefixes such as "0x" are metadata for
// the presentation layer and never part of parsed or formatted text.
package radix
