// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "strconv"

// A Span describes a contiguous span of a source input.
type Span struct {
	Pos int // the start offset, 0-based
	End int // the end offset, 0-based (noninclusive)
}

// A LineCol describes the line number and column offset of a location in
// source text. Both are 1-based, matching the rendering in Diagnostics.
type LineCol struct {
	Line   int // line number, 1-based
	Column int // byte offset of column in line, 1-based
}

// A Location describes the complete location of a range of source text,
// including line and column offsets.
type Location struct {
	Span
	First, Last LineCol
}

// String renders loc as "line L, column C".
func (loc LineCol) String() string {
	return "line " + strconv.Itoa(loc.Line) + ", column " + strconv.Itoa(loc.Column)
}
