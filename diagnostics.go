// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import (
	"bytes"
	"fmt"
	"strings"
)

// Diagnostics carries human-readable detail about a decoding failure: the
// line and column at which it was detected, the offending source line, and
// a message describing the failure. It is populated only when the caller
// requests it through ParseWithDiagnostics or DecodeWithDiagnostics.
type Diagnostics struct {
	Line    int    // 1-based line number
	Column  int    // 1-based column number
	Snippet string // the source line containing the error, without its terminator
	Message string
}

// String renders the diagnostic in the canonical form:
//
//	error parsing TOML document on line L, column C
//	<snippet>
//	<spaces>^
//
// with the caret aligned under Column (1-based).
func (d *Diagnostics) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "error parsing TOML document on line %d, column %d\n", d.Line, d.Column)
	buf.WriteString(d.Snippet)
	buf.WriteByte('\n')
	if d.Column > 1 {
		buf.WriteString(strings.Repeat(" ", d.Column-1))
	}
	buf.WriteByte('^')
	return buf.String()
}

// diagnosticsFromError populates a Diagnostics record from a decoding error and the
// original input, extracting the source line the error's location points
// into.
func diagnosticsFromError(input []byte, err *Error) *Diagnostics {
	return &Diagnostics{
		Line:    err.Location.Line,
		Column:  err.Location.Column,
		Snippet: sourceLine(input, err.Location.Line),
		Message: err.Message,
	}
}

// sourceLine returns the 1-based nth line of input, without its line
// terminator. It returns "" if n is out of range.
func sourceLine(input []byte, n int) string {
	if n < 1 {
		return ""
	}
	line := 1
	start := 0
	for i := 0; i < len(input); i++ {
		if input[i] != '\n' {
			continue
		}
		if line == n {
			return strings.TrimSuffix(string(input[start:i]), "\r")
		}
		line++
		start = i + 1
	}
	if line == n {
		return strings.TrimSuffix(string(input[start:]), "\r")
	}
	return ""
}
