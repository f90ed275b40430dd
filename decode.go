// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import (
	"io"

	"github.com/anttikivi/toml/internal/utf8check"
)

// Parse decodes a complete TOML document held in input, returning its root
// table. The returned Table and every Value it transitively holds are
// independent of input; the decoder never retains input after Parse
// returns.
func Parse(input []byte) (*Table, error) {
	root, err := parse(input)
	if err != nil {
		return nil, err
	}
	return root, nil
}

// ParseWithDiagnostics decodes input like Parse, additionally returning a
// populated Diagnostics record when decoding fails. diag is nil on
// success.
func ParseWithDiagnostics(input []byte) (tbl *Table, diag *Diagnostics, err error) {
	tbl, err = parse(input)
	if err != nil {
		if terr, ok := err.(*Error); ok {
			diag = diagnosticsFromError(input, terr)
		}
		return nil, diag, err
	}
	return tbl, nil, nil
}

// Decode reads r to completion and decodes the result as a TOML document.
func Decode(r io.Reader) (*Table, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return Parse(input)
}

// DecodeWithDiagnostics reads r to completion and decodes the result like
// ParseWithDiagnostics.
func DecodeWithDiagnostics(r io.Reader) (*Table, *Diagnostics, error) {
	input, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, err
	}
	return ParseWithDiagnostics(input)
}

// parse implements the decoder façade's four steps: validate UTF-8,
// construct the scratch arena/scanner/parser, drive the top-level loop,
// and translate the resulting intermediate tree into the public Value
// tree. The scratch arena is released on every exit path.
func parse(input []byte) (*Table, error) {
	if off := utf8check.Validate(input); off >= 0 {
		return nil, newError(Encoding, lineColAt(input, off), "invalid UTF-8 sequence at byte offset %d", off)
	}

	sc := NewScanner(input)
	p := newParser(sc)
	defer p.arena.release()

	root, err := p.parseDocument()
	if err != nil {
		return nil, err
	}

	return convertNode(root).(*Table), nil
}

// lineColAt computes the 1-based line and column of byte offset n in
// input, used to locate UTF-8 validation failures before the scanner
// exists to track position itself.
func lineColAt(input []byte, n int) LineCol {
	line, col := 1, 1
	for i := 0; i < n && i < len(input); i++ {
		if input[i] == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return LineCol{Line: line, Column: col}
}

// convertNode duplicates an intermediate parsing node into the public
// Value tree, which outlives the scratch arena the node was allocated
// from.
func convertNode(n *node) Value {
	switch n.kind {
	case nodeString:
		return NewString(n.str, n.span)
	case nodeInteger:
		return NewInteger(n.i64, n.span)
	case nodeFloat:
		return NewFloat(n.f64, n.span)
	case nodeBool:
		return NewBool(n.b, n.span)
	case nodeLocalDate:
		d := n.date
		return NewLocalDate(d.Year, d.Month, d.Day, n.span)
	case nodeLocalTime:
		t := n.time
		return NewLocalTime(t.Hour, t.Minute, t.Second, t.Nanosecond, t.Precision, n.span)
	case nodeLocalDateTime:
		ldt := n.ldt
		return NewLocalDateTime(ldt.Date, ldt.Time, n.span)
	case nodeDateTime:
		dt := n.dt
		return NewDateTime(dt.LocalDateTime, dt.OffsetMinutes, n.span)
	case nodeArray:
		arr := NewArray(n.span)
		for _, it := range n.items {
			arr.Append(convertNode(it))
		}
		return arr
	case nodeTable:
		t := NewTable(n.span)
		for _, k := range n.keys {
			t.Set(k, convertNode(n.vals[k]))
		}
		return t
	default:
		panic("toml: unhandled node kind in convertNode")
	}
}
