// Copyright (c) 2026 Antti Kivi. All rights reserved.

// Package utf8check validates that a byte sequence is well-formed UTF-8,
// reporting the byte offset of the first violation so callers can render a
// line/column diagnostic.
//
// unicode/utf8.DecodeRune already rejects overlong encodings, surrogate
// halves (U+D800-U+DFFF), and code points beyond U+10FFFF — that rejection
// is exactly what TOML decoding requires, so this package walks the input
// with DecodeRune rather than re-implementing the UTF-8 state machine.
package utf8check

import "unicode/utf8"

// Validate reports the byte offset of the first ill-formed UTF-8 sequence in
// b, or -1 if b is entirely well-formed.
func Validate(b []byte) int {
	for i := 0; i < len(b); {
		r, n := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && n <= 1 {
			return i
		}
		i += n
	}
	return -1
}
