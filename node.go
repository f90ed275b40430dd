// Copyright (c) 2026 Antti Kivi. All rights reserved.

package toml

import "github.com/anttikivi/toml/internal/arena"

// A node is a parsing-time value, allocated from a scratch arena and
// released as a unit when parsing finishes. It carries the same variants
// as the public Value tree plus the three structural flags that govern
// TOML's table redefinition and extension rules.
type node struct {
	span Span

	kind nodeKind

	// scalar payloads, one of which is meaningful depending on kind.
	str   string
	i64   int64
	f64   float64
	b     bool
	date  LocalDate
	time  LocalTime
	ldt   LocalDateTime
	dt    DateTime

	items []*node          // kind == nodeArray
	keys  []string         // kind == nodeTable, insertion order
	vals  map[string]*node // kind == nodeTable

	inlined  bool
	standard bool
	explicit bool
}

type nodeKind byte

const (
	nodeInvalid nodeKind = iota
	nodeString
	nodeInteger
	nodeFloat
	nodeBool
	nodeLocalDate
	nodeLocalTime
	nodeLocalDateTime
	nodeDateTime
	nodeArray
	nodeTable
)

// nodeArena allocates *node values for the duration of one parse and is
// released in one step when parsing completes, mirroring the scratch
// arena the intermediate tree is specified to live in.
type nodeArena struct {
	a *arena.Arena[node]
}

func newNodeArena() *nodeArena {
	return &nodeArena{a: arena.New[node](256)}
}

func (na *nodeArena) newTable() *node {
	n := na.a.Alloc()
	n.kind = nodeTable
	n.vals = make(map[string]*node)
	return n
}

func (na *nodeArena) newArray() *node {
	n := na.a.Alloc()
	n.kind = nodeArray
	return n
}

func (na *nodeArena) newScalar() *node {
	return na.a.Alloc()
}

// release drops the arena's slabs, making them eligible for garbage
// collection. It is safe to call more than once.
func (na *nodeArena) release() { na.a.Reset() }

// get looks up key in a table node.
func (n *node) get(key string) (*node, bool) {
	v, ok := n.vals[key]
	return v, ok
}

// set inserts key=v into a table node, preserving insertion order. It does
// not check for duplicates; callers enforce the duplicate-key rule
// themselves since the correct error message differs by call site.
func (n *node) set(key string, v *node) {
	if _, ok := n.vals[key]; !ok {
		n.keys = append(n.keys, key)
	}
	n.vals[key] = v
}

// propagateInline marks n and, recursively, every descendant it owns as
// inlined. An inline table or array literal flags its entire subtree this
// way, since every value nested inside one is itself inline.
func propagateInline(n *node) {
	n.inlined = true
	switch n.kind {
	case nodeTable:
		for _, k := range n.keys {
			propagateInline(n.vals[k])
		}
	case nodeArray:
		for _, it := range n.items {
			propagateInline(it)
		}
	}
}
