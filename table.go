// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "strings"

// A Table is an insertion-ordered mapping from string key to Value. It is
// the root of every decoded document and the representation of every
// standard table, array-of-tables element, and inline table.
type Table struct {
	datum
	keys []string
	vals map[string]Value
}

// NewTable constructs an empty Table.
func NewTable(span Span) *Table {
	return &Table{datum: datum{span}, vals: make(map[string]Value)}
}

// Set inserts key=v if key is not already present, preserving insertion
// order, and reports whether the insertion happened. A false return
// indicates a duplicate key; the table is left unmodified.
func (t *Table) Set(key string, v Value) bool {
	if _, ok := t.vals[key]; ok {
		return false
	}
	t.keys = append(t.keys, key)
	t.vals[key] = v
	return true
}

// Get returns the value associated with key, and whether it was present.
func (t *Table) Get(key string) (Value, bool) {
	v, ok := t.vals[key]
	return v, ok
}

// Has reports whether key is present in t.
func (t *Table) Has(key string) bool {
	_, ok := t.vals[key]
	return ok
}

// Len reports the number of entries in t.
func (t *Table) Len() int { return len(t.keys) }

// Keys returns a copy of the table's keys in insertion order.
func (t *Table) Keys() []string { return append([]string(nil), t.keys...) }

// Range calls f for each entry in insertion order, stopping early if f
// returns false.
func (t *Table) Range(f func(key string, v Value) bool) {
	for _, k := range t.keys {
		if !f(k, t.vals[k]) {
			return
		}
	}
}

// Format satisfies Formatter, rendering t as a brace-delimited inline
// table. This is used only for diagnostics and tests, never as an encoder.
func (t *Table) Format() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(k)
		b.WriteString(" = ")
		b.WriteString(formatValue(t.vals[k]))
	}
	b.WriteByte('}')
	return b.String()
}

// Release recursively releases every value owned by t and clears its
// contents. After Release returns, t is empty and no further reads should
// be performed on the values it previously held.
func (t *Table) Release() {
	for _, k := range t.keys {
		Release(t.vals[k])
	}
	t.keys = nil
	t.vals = nil
}

// Release recursively releases v if it is a container (Table or Array).
// Scalar values require no release step; the call is a no-op for them.
func Release(v Value) {
	switch x := v.(type) {
	case *Table:
		x.Release()
	case *Array:
		x.Release()
	}
}

// formatValue renders v using Formatter if it implements it, falling back
// to a fixed placeholder for values that do not (there are none among the
// variants this package produces, but the fallback keeps Format total).
func formatValue(v Value) string {
	if f, ok := v.(Formatter); ok {
		return f.Format()
	}
	return "<value>"
}
