// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "strings"

// An Array is an ordered sequence of Value.
type Array struct {
	datum
	items []Value
}

// NewArray constructs an empty Array.
func NewArray(span Span) *Array { return &Array{datum: datum{span}} }

// Append adds v to the end of a.
func (a *Array) Append(v Value) { a.items = append(a.items, v) }

// Len reports the number of elements in a.
func (a *Array) Len() int { return len(a.items) }

// At returns the element at index i.
func (a *Array) At(i int) Value { return a.items[i] }

// Items returns a copy of a's elements in order.
func (a *Array) Items() []Value { return append([]Value(nil), a.items...) }

// Format satisfies Formatter, rendering a as a bracket-delimited array.
func (a *Array) Format() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range a.items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(formatValue(v))
	}
	b.WriteByte(']')
	return b.String()
}

// Release recursively releases every value owned by a and clears its
// contents.
func (a *Array) Release() {
	for _, v := range a.items {
		Release(v)
	}
	a.items = nil
}
