package toml_test

import (
	"testing"

	"github.com/anttikivi/toml"
)

func TestParse_arrayOfTablesNestedUnderHeader(t *testing.T) {
	tbl := mustParse(t, "[fruit]\nname = \"apple\"\n\n[[fruit.variety]]\nname = \"red delicious\"\n\n[[fruit.variety]]\nname = \"granny smith\"\n")
	fruit := get(t, tbl, "fruit").(*toml.Table)
	varieties := get(t, fruit, "variety").(*toml.Array)
	if varieties.Len() != 2 {
		t.Fatalf("len(fruit.variety) = %d, want 2", varieties.Len())
	}
	first := varieties.At(0).(*toml.Table)
	if name := get(t, first, "name").(toml.String).Text; name != "red delicious" {
		t.Errorf("fruit.variety[0].name = %q, want %q", name, "red delicious")
	}
}

func TestParse_arrayOfTablesCannotReplaceStandardTable(t *testing.T) {
	_, err := toml.Parse([]byte("[a]\nx = 1\n[[a]]\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_standardTableCannotReplaceArrayOfTables(t *testing.T) {
	_, err := toml.Parse([]byte("[[a]]\nx = 1\n[a]\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_quotedKeyTableHeader(t *testing.T) {
	tbl := mustParse(t, "[\"a.b\"]\nx = 1\n")
	v, ok := tbl.Get("a.b")
	if !ok {
		t.Fatal("missing quoted-key table \"a.b\"")
	}
	if _, ok := v.(*toml.Table); !ok {
		t.Fatalf("a.b is %T, want *toml.Table", v)
	}
}

func TestParse_inlineTableDottedKeyDuplicateAcrossPaths(t *testing.T) {
	_, err := toml.Parse([]byte("t = { a.b = 1, a.b = 2 }\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_inlineTableDottedKeyCreatesNestedTable(t *testing.T) {
	tbl := mustParse(t, "t = { a.b = 1, a.c = 2 }\n")
	tt := get(t, tbl, "t").(*toml.Table)
	a := get(t, tt, "a").(*toml.Table)
	if a.Len() != 2 {
		t.Fatalf("len(t.a) = %d, want 2", a.Len())
	}
}

func TestParse_inlineTableDottedKeyCannotReopenLiteralSubTable(t *testing.T) {
	_, err := toml.Parse([]byte("t = { a = { b = 1 }, a.c = 2 }\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_arrayOfTablesDescendsIntoLastElement(t *testing.T) {
	tbl := mustParse(t, "[[a]]\n[a.b]\nx = 1\n[[a]]\n[a.b]\nx = 2\n")
	arr := get(t, tbl, "a").(*toml.Array)
	if arr.Len() != 2 {
		t.Fatalf("len(a) = %d, want 2", arr.Len())
	}
	for i, want := range []int64{1, 2} {
		elem := arr.At(i).(*toml.Table)
		b := get(t, elem, "b").(*toml.Table)
		if n := get(t, b, "x").(toml.Integer); n.N != want {
			t.Errorf("a[%d].b.x = %d, want %d", i, n.N, want)
		}
	}
}

func TestParse_emptyInlineTableAndArray(t *testing.T) {
	tbl := mustParse(t, "t = {}\na = []\n")
	tt := get(t, tbl, "t").(*toml.Table)
	if tt.Len() != 0 {
		t.Errorf("len(t) = %d, want 0", tt.Len())
	}
	arr := get(t, tbl, "a").(*toml.Array)
	if arr.Len() != 0 {
		t.Errorf("len(a) = %d, want 0", arr.Len())
	}
}

func TestParse_nestedInlineArrays(t *testing.T) {
	tbl := mustParse(t, "a = [[1, 2], [3, 4, 5]]\n")
	outer := get(t, tbl, "a").(*toml.Array)
	if outer.Len() != 2 {
		t.Fatalf("len(a) = %d, want 2", outer.Len())
	}
	if inner := outer.At(1).(*toml.Array); inner.Len() != 3 {
		t.Errorf("len(a[1]) = %d, want 3", inner.Len())
	}
}
