// Copyright (c) 2026 Antti Kivi. All rights reserved.

// Package escape decodes the escape sequences of TOML basic strings.
//
// Basic strings support both \uXXXX and \UXXXXXXXX escapes, invalid
// escapes and out-of-range code points are hard errors rather than being
// papered over with the Unicode replacement rune, and multiline basic
// strings additionally trim line-continuation backslashes.
package escape

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"go4.org/mem"
)

// Unescape decodes the escape sequences in src, the body of a basic string
// with its enclosing quotes already removed. If multiline is true, a
// backslash immediately followed by optional spaces/tabs and a newline is
// treated as a line continuation: the newline and all directly following
// whitespace are discarded rather than copied to the output.
func Unescape(src mem.RO, multiline bool) ([]byte, error) {
	dec := make([]byte, 0, src.Len())
	i := mem.IndexByte(src, '\\')
	if i < 0 {
		return mem.Append(dec, src), nil
	}

	for src.Len() != 0 {
		dec = mem.Append(dec, src.SliceTo(i))
		src = src.SliceFrom(i + 1)
		if src.Len() == 0 {
			return nil, errors.New("incomplete escape sequence")
		}

		if multiline && isLineContinuation(src) {
			src = skipLineContinuation(src)
		} else {
			var err error
			dec, src, err = decodeEscape(dec, src)
			if err != nil {
				return nil, err
			}
		}

		i = mem.IndexByte(src, '\\')
		if i < 0 {
			dec = mem.Append(dec, src)
			break
		}
	}
	return dec, nil
}

// isLineContinuation reports whether src begins with optional spaces/tabs
// followed by a newline (\n or \r\n), the shape a backslash must precede to
// start a line continuation.
func isLineContinuation(src mem.RO) bool {
	i := 0
	for i < src.Len() && isBlankByte(src.At(i)) {
		i++
	}
	if i >= src.Len() {
		return false
	}
	if src.At(i) == '\n' {
		return true
	}
	return src.At(i) == '\r' && i+1 < src.Len() && src.At(i+1) == '\n'
}

// skipLineContinuation consumes the newline and all directly following
// whitespace (spaces, tabs, and further newlines) of a line continuation.
func skipLineContinuation(src mem.RO) mem.RO {
	i := 0
	for i < src.Len() && isLineContinuationByte(src.At(i)) {
		i++
	}
	return src.SliceFrom(i)
}

func isBlankByte(b byte) bool { return b == ' ' || b == '\t' }

func isLineContinuationByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// decodeEscape decodes a single escape sequence from the front of src
// (which no longer contains the leading backslash) and appends its decoded
// form to dec, returning the remaining input.
func decodeEscape(dec []byte, src mem.RO) ([]byte, mem.RO, error) {
	c := src.At(0)
	switch c {
	case '"', '\\':
		return append(dec, c), src.SliceFrom(1), nil
	case 'b':
		return append(dec, '\b'), src.SliceFrom(1), nil
	case 'f':
		return append(dec, '\f'), src.SliceFrom(1), nil
	case 'n':
		return append(dec, '\n'), src.SliceFrom(1), nil
	case 'r':
		return append(dec, '\r'), src.SliceFrom(1), nil
	case 't':
		return append(dec, '\t'), src.SliceFrom(1), nil
	case 'u':
		return decodeUnicodeEscape(dec, src.SliceFrom(1), 4)
	case 'U':
		return decodeUnicodeEscape(dec, src.SliceFrom(1), 8)
	default:
		return nil, src, fmt.Errorf("invalid escape %q", "\\"+string(c))
	}
}

func decodeUnicodeEscape(dec []byte, src mem.RO, digits int) ([]byte, mem.RO, error) {
	if src.Len() < digits {
		return nil, src, errors.New("incomplete unicode escape")
	}
	v, err := parseHex(src.SliceTo(digits))
	if err != nil {
		return nil, src, err
	}
	if v >= 0xD800 && v <= 0xDFFF {
		return nil, src, fmt.Errorf("escape denotes a surrogate half U+%04X", v)
	}
	if v > 0x10FFFF {
		return nil, src, fmt.Errorf("escape denotes an out-of-range code point U+%X", v)
	}
	var buf [utf8.UTFMax]byte
	n := utf8.EncodeRune(buf[:], rune(v))
	return append(dec, buf[:n]...), src.SliceFrom(digits), nil
}

func parseHex(data mem.RO) (int64, error) {
	var v int64
	for i := 0; i < data.Len(); i++ {
		b := data.At(i)
		v <<= 4
		switch {
		case '0' <= b && b <= '9':
			v += int64(b - '0')
		case 'a' <= b && b <= 'f':
			v += int64(b - 'a' + 10)
		case 'A' <= b && b <= 'F':
			v += int64(b - 'A' + 10)
		default:
			return 0, fmt.Errorf("invalid hex digit %q", b)
		}
	}
	return v, nil
}
