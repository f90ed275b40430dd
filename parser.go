// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import (
	"bytes"
	"strings"

	"github.com/anttikivi/toml/internal/escape"
	"go4.org/mem"
)

// A parser consumes the token stream produced by a Scanner and assembles
// an intermediate node tree, enforcing TOML's key, table, and array-of-
// tables rules as it goes. The tree it builds is owned by a scratch
// arena released by the decoder once conversion to the public Value tree
// completes.
type parser struct {
	sc    *Scanner
	arena *nodeArena
	root  *node
	cur   *node
}

func newParser(sc *Scanner) *parser {
	ar := newNodeArena()
	return &parser{sc: sc, arena: ar, root: ar.newTable(), cur: nil}
}

// parseDocument drives the top-level loop described by the parser's
// component design: one top-level construct per iteration, switching on
// the first key-mode token of the line.
func (p *parser) parseDocument() (*node, error) {
	p.cur = p.root
	for {
		if err := p.sc.NextKeyToken(); err != nil {
			return nil, err
		}
		switch p.sc.Token() {
		case LineFeed:
			continue
		case EOF:
			return p.root, nil
		case LBracket:
			if err := p.parseStandardTableHeader(); err != nil {
				return nil, err
			}
		case LDoubleBrack:
			if err := p.parseArrayTableHeader(); err != nil {
				return nil, err
			}
		case BasicStr, LiteralStr, Literal:
			if err := p.parseKeyValueLine(); err != nil {
				return nil, err
			}
		default:
			return nil, p.syntaxErrorf("unexpected %s at start of line", p.sc.Token())
		}
	}
}

// --- headers ---

func (p *parser) parseStandardTableHeader() error {
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if !isKeyPartToken(p.sc.Token()) {
		return p.syntaxErrorf("expected a key after %q", "[")
	}
	first, err := p.keyPartText()
	if err != nil {
		return err
	}
	path, err := p.parseKeyPath(first)
	if err != nil {
		return err
	}
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if p.sc.Token() != RBracket {
		return p.syntaxErrorf("expected %q to close table header", "]")
	}
	if err := p.expectLineEnd(); err != nil {
		return err
	}
	tbl, err := p.resolveStandardTableHeader(path)
	if err != nil {
		return err
	}
	p.cur = tbl
	return nil
}

func (p *parser) parseArrayTableHeader() error {
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if !isKeyPartToken(p.sc.Token()) {
		return p.syntaxErrorf("expected a key after %q", "[[")
	}
	first, err := p.keyPartText()
	if err != nil {
		return err
	}
	path, err := p.parseKeyPath(first)
	if err != nil {
		return err
	}
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if p.sc.Token() != RDoubleBrack {
		return p.syntaxErrorf("expected %q to close array-of-tables header", "]]")
	}
	if err := p.expectLineEnd(); err != nil {
		return err
	}
	tbl, err := p.resolveArrayTableHeader(path)
	if err != nil {
		return err
	}
	p.cur = tbl
	return nil
}

// descendHeaderAncestors resolves the non-final segments of a table or
// array-of-tables header path, creating implicit standard-table
// ancestors as needed and descending into the last element when an
// ancestor names an existing array of tables.
func (p *parser) descendHeaderAncestors(segments []string) (*node, error) {
	cur := p.root
	for _, seg := range segments {
		existing, ok := cur.get(seg)
		if !ok {
			t := p.arena.newTable()
			t.standard = true
			cur.set(seg, t)
			cur = t
			continue
		}
		switch existing.kind {
		case nodeTable:
			if existing.inlined {
				return nil, p.semanticErrorf("cannot extend inline table %q with a header", seg)
			}
			cur = existing
		case nodeArray:
			if existing.inlined || len(existing.items) == 0 {
				return nil, p.semanticErrorf("%q is not an array of tables", seg)
			}
			last := existing.items[len(existing.items)-1]
			if last.kind != nodeTable {
				return nil, p.semanticErrorf("%q does not resolve to a table", seg)
			}
			cur = last
		default:
			return nil, p.semanticErrorf("cannot redefine %q as a table", seg)
		}
	}
	return cur, nil
}

func (p *parser) resolveStandardTableHeader(path []string) (*node, error) {
	ancestors, last := path[:len(path)-1], path[len(path)-1]
	parent, err := p.descendHeaderAncestors(ancestors)
	if err != nil {
		return nil, err
	}
	existing, ok := parent.get(last)
	if !ok {
		t := p.arena.newTable()
		t.standard = true
		t.explicit = true
		parent.set(last, t)
		return t, nil
	}
	if existing.kind == nodeTable && existing.standard && !existing.inlined && !existing.explicit {
		existing.explicit = true
		return existing, nil
	}
	return nil, p.semanticErrorf("table %q cannot be defined more than once", strings.Join(path, "."))
}

func (p *parser) resolveArrayTableHeader(path []string) (*node, error) {
	ancestors, last := path[:len(path)-1], path[len(path)-1]
	parent, err := p.descendHeaderAncestors(ancestors)
	if err != nil {
		return nil, err
	}
	existing, ok := parent.get(last)
	var arr *node
	if !ok {
		arr = p.arena.newArray()
		parent.set(last, arr)
	} else {
		if existing.kind != nodeArray || existing.inlined {
			return nil, p.semanticErrorf("%q is not an array of tables", last)
		}
		arr = existing
	}
	elem := p.arena.newTable()
	elem.standard = true
	elem.explicit = true
	arr.items = append(arr.items, elem)
	return elem, nil
}

// --- key/value lines ---

func (p *parser) parseKeyValueLine() error {
	first, err := p.keyPartText()
	if err != nil {
		return err
	}
	path, err := p.parseKeyPath(first)
	if err != nil {
		return err
	}
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if p.sc.Token() != Equals {
		return p.syntaxErrorf("expected %q after key", "=")
	}
	val, err := p.parseValue()
	if err != nil {
		return err
	}
	if err := p.writeKeyValue(p.cur, path, val); err != nil {
		return err
	}
	return p.expectLineEnd()
}

// writeKeyValue descends the dotted intermediate segments of path
// relative to base (the current table), creating implicit tables that
// are neither standard nor explicit, and writes the final value as a
// leaf. A dotted key may not pass through an already-explicit
// intermediate table (one named by a previous header), nor extend an
// inline table.
func (p *parser) writeKeyValue(base *node, path []string, val *node) error {
	cur := base
	for _, seg := range path[:len(path)-1] {
		existing, ok := cur.get(seg)
		if !ok {
			t := p.arena.newTable()
			cur.set(seg, t)
			cur = t
			continue
		}
		if existing.explicit {
			return p.semanticErrorf("cannot extend table %q defined by a header", seg)
		}
		if existing.kind != nodeTable || existing.inlined {
			return p.semanticErrorf("cannot extend %q via a dotted key", seg)
		}
		cur = existing
	}
	if cur.inlined {
		return p.semanticErrorf("cannot extend an inline table via a dotted key")
	}
	leaf := path[len(path)-1]
	if _, exists := cur.get(leaf); exists {
		return p.semanticErrorf("duplicate key %q", leaf)
	}
	cur.set(leaf, val)
	return nil
}

// --- key paths ---

func isKeyPartToken(t Token) bool {
	switch t {
	case Literal, BasicStr, LiteralStr:
		return true
	}
	return false
}

func (p *parser) keyPartText() (string, error) {
	switch p.sc.Token() {
	case Literal, LiteralStr:
		return string(p.sc.Text()), nil
	case BasicStr:
		raw := p.sc.Text()
		if bytes.IndexByte(raw, '\\') < 0 {
			return string(raw), nil
		}
		dec, err := escape.Unescape(mem.B(raw), false)
		if err != nil {
			return "", p.wrapLexical(err)
		}
		return string(dec), nil
	default:
		return "", p.syntaxErrorf("invalid key part %s", p.sc.Token())
	}
}

// parseKeyPath reads zero or more additional ".part" segments following a
// key part already consumed into first, using a save/restore lookahead to
// find out whether a dot follows without committing to consuming it.
func (p *parser) parseKeyPath(first string) ([]string, error) {
	parts := []string{first}
	for {
		mark := p.sc.Save()
		if err := p.sc.NextKeyToken(); err != nil {
			return nil, err
		}
		if p.sc.Token() != Dot {
			p.sc.Restore(mark)
			break
		}
		if err := p.sc.NextKeyToken(); err != nil {
			return nil, err
		}
		if !isKeyPartToken(p.sc.Token()) {
			return nil, p.syntaxErrorf("expected a key after %q", ".")
		}
		part, err := p.keyPartText()
		if err != nil {
			return nil, err
		}
		parts = append(parts, part)
	}
	return parts, nil
}

func (p *parser) expectLineEnd() error {
	if err := p.sc.NextKeyToken(); err != nil {
		return err
	}
	if p.sc.Token() != LineFeed && p.sc.Token() != EOF {
		return p.syntaxErrorf("expected a newline after value")
	}
	return nil
}

// --- values ---

func (p *parser) parseValue() (*node, error) {
	if err := p.sc.NextValueToken(); err != nil {
		return nil, err
	}
	return p.valueFromCurrentToken()
}

func (p *parser) valueFromCurrentToken() (*node, error) {
	if isStringToken(p.sc.Token()) {
		return p.stringFromCurrentToken()
	}
	switch p.sc.Token() {
	case IntegerTok:
		n := p.arena.newScalar()
		n.kind, n.i64, n.span = nodeInteger, p.sc.intVal, p.sc.Span()
		return n, nil
	case FloatTok:
		n := p.arena.newScalar()
		n.kind, n.f64, n.span = nodeFloat, p.sc.floatVal, p.sc.Span()
		return n, nil
	case BoolTok:
		n := p.arena.newScalar()
		n.kind, n.b, n.span = nodeBool, p.sc.boolVal, p.sc.Span()
		return n, nil
	case DateTimeTok:
		n := p.arena.newScalar()
		n.kind, n.dt, n.span = nodeDateTime, p.sc.dtVal, p.sc.Span()
		return n, nil
	case LocalDateTimeTok:
		n := p.arena.newScalar()
		n.kind, n.ldt, n.span = nodeLocalDateTime, p.sc.ldtVal, p.sc.Span()
		return n, nil
	case LocalDateTok:
		n := p.arena.newScalar()
		n.kind, n.date, n.span = nodeLocalDate, p.sc.dateVal, p.sc.Span()
		return n, nil
	case LocalTimeTok:
		n := p.arena.newScalar()
		n.kind, n.time, n.span = nodeLocalTime, p.sc.timeVal, p.sc.Span()
		return n, nil
	case LBracket:
		return p.parseInlineArray()
	case LBrace:
		return p.parseInlineTable()
	default:
		return nil, p.syntaxErrorf("unexpected %s at value position", p.sc.Token())
	}
}

func (p *parser) stringFromCurrentToken() (*node, error) {
	tok := p.sc.Token()
	raw := p.sc.Text()
	span := p.sc.Span()

	var text string
	switch tok {
	case LiteralStr, MultilineLitStr:
		text = string(raw)
	case BasicStr, MultilineBasicStr:
		if bytes.IndexByte(raw, '\\') < 0 {
			text = string(raw)
		} else {
			dec, err := escape.Unescape(mem.B(raw), tok == MultilineBasicStr)
			if err != nil {
				return nil, p.wrapLexical(err)
			}
			text = string(dec)
		}
	}
	n := p.arena.newScalar()
	n.kind, n.str, n.span = nodeString, text, span
	return n, nil
}

// parseInlineArray parses the body of a "[" already consumed by the
// caller. Newlines between elements are permitted and a trailing comma
// before "]" is legal.
func (p *parser) parseInlineArray() (*node, error) {
	arr := p.arena.newArray()
	arr.span = p.sc.Span()
	first := true
	for {
		if err := p.sc.NextValueToken(); err != nil {
			return nil, err
		}
		for p.sc.Token() == LineFeed {
			if err := p.sc.NextValueToken(); err != nil {
				return nil, err
			}
		}
		if p.sc.Token() == RBracket {
			break
		}
		if !first {
			if p.sc.Token() != Comma {
				return nil, p.syntaxErrorf("expected %q or %q in array", ",", "]")
			}
			if err := p.sc.NextValueToken(); err != nil {
				return nil, err
			}
			for p.sc.Token() == LineFeed {
				if err := p.sc.NextValueToken(); err != nil {
					return nil, err
				}
			}
			if p.sc.Token() == RBracket {
				break // trailing comma
			}
		}
		val, err := p.valueFromCurrentToken()
		if err != nil {
			return nil, err
		}
		arr.items = append(arr.items, val)
		first = false
	}
	propagateInline(arr)
	return arr, nil
}

// parseInlineTable parses the body of a "{" already consumed by the
// caller. Newlines are forbidden anywhere inside, and a trailing comma
// before "}" is forbidden.
func (p *parser) parseInlineTable() (*node, error) {
	tbl := p.arena.newTable()
	tbl.span = p.sc.Span()

	if err := p.sc.NextKeyToken(); err != nil {
		return nil, err
	}
	if p.sc.Token() == RBrace {
		propagateInline(tbl)
		return tbl, nil
	}

	for {
		if !isKeyPartToken(p.sc.Token()) {
			return nil, p.syntaxErrorf("expected a key in inline table")
		}
		first, err := p.keyPartText()
		if err != nil {
			return nil, err
		}
		path, err := p.parseKeyPath(first)
		if err != nil {
			return nil, err
		}
		if err := p.sc.NextKeyToken(); err != nil {
			return nil, err
		}
		if p.sc.Token() != Equals {
			return nil, p.syntaxErrorf("expected %q in inline table", "=")
		}
		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		if err := p.writeInlineKeyValue(tbl, path, val); err != nil {
			return nil, err
		}

		if err := p.sc.NextKeyToken(); err != nil {
			return nil, err
		}
		switch p.sc.Token() {
		case RBrace:
			propagateInline(tbl)
			return tbl, nil
		case Comma:
			if err := p.sc.NextKeyToken(); err != nil {
				return nil, err
			}
			if p.sc.Token() == RBrace {
				return nil, p.syntaxErrorf("trailing comma not allowed in inline table")
			}
			continue
		case LineFeed:
			return nil, p.syntaxErrorf("newline not allowed in inline table")
		default:
			return nil, p.syntaxErrorf("expected %q or %q in inline table", ",", "}")
		}
	}
}

// writeInlineKeyValue writes path=val into base, an inline table. Dotted
// keys create local sub-tables, left open (not yet inlined) until the
// enclosing inline table closes and propagateInline marks the whole
// subtree at once; this lets later keys in the same inline table descend
// back into them. A sub-table supplied as a complete literal value (e.g.
// "a = { b = 1 }") is already inlined by the time it is attached here, so
// the same existing.inlined check writeKeyValue uses against inline tables
// rejects a later dotted key trying to reopen it, e.g.
// "a = { b = 1 }, a.c = 2" in the same inline table. Duplicate leaves,
// including those reached through distinct dotted paths, are rejected.
func (p *parser) writeInlineKeyValue(base *node, path []string, val *node) error {
	cur := base
	for _, seg := range path[:len(path)-1] {
		existing, ok := cur.get(seg)
		if !ok {
			t := p.arena.newTable()
			t.explicit = true
			cur.set(seg, t)
			cur = t
			continue
		}
		if existing.inlined {
			return p.semanticErrorf("cannot extend table %q via a dotted key", seg)
		}
		if existing.kind != nodeTable {
			return p.semanticErrorf("cannot extend %q via a dotted key", seg)
		}
		cur = existing
	}
	leaf := path[len(path)-1]
	if _, exists := cur.get(leaf); exists {
		return p.semanticErrorf("duplicate key %q", leaf)
	}
	cur.set(leaf, val)
	return nil
}

// --- errors ---

func (p *parser) syntaxErrorf(format string, args ...any) error {
	return newError(Syntax, p.sc.Location().First, format, args...)
}

func (p *parser) semanticErrorf(format string, args ...any) error {
	return newError(Semantic, p.sc.Location().First, format, args...)
}

func (p *parser) wrapLexical(err error) error {
	return wrapError(Lexical, p.sc.Location().First, err)
}
