package toml_test

import (
	"strings"
	"testing"

	"github.com/anttikivi/toml"
)

func mustParse(t *testing.T, input string) *toml.Table {
	t.Helper()
	tbl, err := toml.Parse([]byte(input))
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return tbl
}

func get(t *testing.T, tbl *toml.Table, key string) toml.Value {
	t.Helper()
	v, ok := tbl.Get(key)
	if !ok {
		t.Fatalf("missing key %q", key)
	}
	return v
}

func wantKind(t *testing.T, err error, kind toml.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected a %s error, got success", kind)
	}
	terr, ok := err.(*toml.Error)
	if !ok {
		t.Fatalf("expected *toml.Error, got %T: %v", err, err)
	}
	if terr.Kind != kind {
		t.Errorf("error kind: got %s, want %s (%v)", terr.Kind, kind, terr)
	}
}

func TestParse_minimalKV(t *testing.T) {
	tbl := mustParse(t, "x = 1\n")
	v, ok := tbl.Get("x")
	if !ok {
		t.Fatal("missing key x")
	}
	n, ok := v.(toml.Integer)
	if !ok || n.N != 1 {
		t.Errorf("x = %#v, want Integer(1)", v)
	}
}

func TestParse_dottedKeyCreatesTables(t *testing.T) {
	tbl := mustParse(t, "a.b.c = true\n")
	a, ok := tbl.Get("a")
	if !ok {
		t.Fatal("missing a")
	}
	at, ok := a.(*toml.Table)
	if !ok {
		t.Fatalf("a is %T, want *toml.Table", a)
	}
	b, ok := at.Get("b")
	if !ok {
		t.Fatal("missing a.b")
	}
	bt, ok := b.(*toml.Table)
	if !ok {
		t.Fatalf("a.b is %T, want *toml.Table", b)
	}
	c, ok := bt.Get("c")
	if !ok {
		t.Fatal("missing a.b.c")
	}
	if bv, ok := c.(toml.Bool); !ok || !bv.B {
		t.Errorf("a.b.c = %#v, want Bool(true)", c)
	}
}

func TestParse_headerAndArray(t *testing.T) {
	tbl := mustParse(t, "[t]\nks = [1, 2, 3]\n")
	tt := get(t, tbl, "t").(*toml.Table)
	arr := get(t, tt, "ks").(*toml.Array)
	if arr.Len() != 3 {
		t.Fatalf("len(ks) = %d, want 3", arr.Len())
	}
	for i, want := range []int64{1, 2, 3} {
		n, ok := arr.At(i).(toml.Integer)
		if !ok || n.N != want {
			t.Errorf("ks[%d] = %#v, want Integer(%d)", i, arr.At(i), want)
		}
	}
}

func TestParse_arrayOfTables(t *testing.T) {
	tbl := mustParse(t, "[[a]]\nx=1\n[[a]]\nx=2\n")
	v, ok := tbl.Get("a")
	if !ok {
		t.Fatal("missing a")
	}
	arr, ok := v.(*toml.Array)
	if !ok || arr.Len() != 2 {
		t.Fatalf("a = %#v, want a 2-element array", v)
	}
	for i, want := range []int64{1, 2} {
		elem, ok := arr.At(i).(*toml.Table)
		if !ok {
			t.Fatalf("a[%d] is %T, want *toml.Table", i, arr.At(i))
		}
		x, ok := elem.Get("x")
		if !ok {
			t.Fatalf("a[%d].x missing", i)
		}
		if n, ok := x.(toml.Integer); !ok || n.N != want {
			t.Errorf("a[%d].x = %#v, want Integer(%d)", i, x, want)
		}
	}
}

func TestParse_multilineBasicLineContinuation(t *testing.T) {
	tbl := mustParse(t, "s = \"\"\"one \\\n   two\"\"\"\n")
	v, ok := tbl.Get("s")
	if !ok {
		t.Fatal("missing s")
	}
	s, ok := v.(toml.String)
	if !ok || s.Text != "one two" {
		t.Errorf("s = %#v, want String(\"one two\")", v)
	}
}

func TestParse_offsetDateTime(t *testing.T) {
	tbl := mustParse(t, "t = 1979-05-27T07:32:00-08:00\n")
	v, ok := tbl.Get("t")
	if !ok {
		t.Fatal("missing t")
	}
	dt, ok := v.(toml.DateTime)
	if !ok {
		t.Fatalf("t is %T, want toml.DateTime", v)
	}
	if dt.OffsetMinutes != -480 {
		t.Errorf("offset = %d, want -480", dt.OffsetMinutes)
	}
	if dt.Date.Year != 1979 || dt.Date.Month != 5 || dt.Date.Day != 27 {
		t.Errorf("date = %s, want 1979-05-27", dt.Date)
	}
	if dt.Time.Hour != 7 || dt.Time.Minute != 32 || dt.Time.Second != 0 {
		t.Errorf("time = %s, want 07:32:00", dt.Time)
	}
}

func TestParse_duplicateKeyFails(t *testing.T) {
	_, err := toml.Parse([]byte("a = 1\na = 2\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_extendExplicitViaDottedFails(t *testing.T) {
	_, err := toml.Parse([]byte("[a.b]\nc = 1\n[a]\nb.d = 2\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_redefineStandardTableFails(t *testing.T) {
	_, err := toml.Parse([]byte("[a]\n[a]\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_dottedKeyExtendsImplicitAncestorWithinHeaderSection(t *testing.T) {
	tbl := mustParse(t, "[a]\nb.c = 1\nb.d = 2\n")
	a := get(t, tbl, "a").(*toml.Table)
	b := get(t, a, "b").(*toml.Table)
	if b.Len() != 2 {
		t.Errorf("len(a.b) = %d, want 2", b.Len())
	}
}

func TestParse_headerCannotAdoptDottedCreatedTable(t *testing.T) {
	_, err := toml.Parse([]byte("[fruit]\napple.color = \"red\"\n\n[fruit.apple]\ntexture = \"smooth\"\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_inlineTableForbidsTrailingComma(t *testing.T) {
	_, err := toml.Parse([]byte("a = { x = 1, }\n"))
	wantKind(t, err, toml.Syntax)
}

func TestParse_inlineArrayAllowsTrailingCommaAndNewlines(t *testing.T) {
	tbl := mustParse(t, "a = [\n  1,\n  2,\n]\n")
	arr := get(t, tbl, "a").(*toml.Array)
	if arr.Len() != 2 {
		t.Fatalf("len(a) = %d, want 2", arr.Len())
	}
}

func TestParse_inlineTableForbidsNewline(t *testing.T) {
	_, err := toml.Parse([]byte("a = { x = 1,\ny = 2 }\n"))
	wantKind(t, err, toml.Syntax)
}

func TestParse_mixedTypeArrayIsLegal(t *testing.T) {
	tbl := mustParse(t, `a = [1, "two", 3.0, true]`+"\n")
	arr := get(t, tbl, "a").(*toml.Array)
	if arr.Len() != 4 {
		t.Fatalf("len(a) = %d, want 4", arr.Len())
	}
}

func TestParse_cannotAppendToNonArrayName(t *testing.T) {
	_, err := toml.Parse([]byte("a = 1\n[[a]]\n"))
	wantKind(t, err, toml.Semantic)
}

func TestParse_leadingZeroRejected(t *testing.T) {
	_, err := toml.Parse([]byte("a = 007\n"))
	wantKind(t, err, toml.Lexical)
}

func TestParse_integerOverflow(t *testing.T) {
	_, err := toml.Parse([]byte("a = 99999999999999999999999\n"))
	wantKind(t, err, toml.Numeric)
}

func TestParse_invalidUTF8(t *testing.T) {
	_, err := toml.Parse([]byte("a = \"\xff\"\n"))
	wantKind(t, err, toml.Encoding)
}

func TestParse_idempotent(t *testing.T) {
	const doc = "[a]\nx = 1\nks = [1, 2, { y = \"z\" }]\n"
	t1 := mustParse(t, doc)
	t2 := mustParse(t, doc)
	if t1.Format() != t2.Format() {
		t.Errorf("parse not idempotent:\n%s\nvs\n%s", t1.Format(), t2.Format())
	}
}

func TestDecode_fromReader(t *testing.T) {
	tbl, err := toml.Decode(strings.NewReader("x = 1\n"))
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if !tbl.Has("x") {
		t.Error("decoded table missing x")
	}
}

func TestParseWithDiagnostics(t *testing.T) {
	_, diag, err := toml.ParseWithDiagnostics([]byte("a = 1\na = 2\n"))
	if err == nil {
		t.Fatal("expected an error")
	}
	if diag == nil {
		t.Fatal("expected non-nil diagnostics")
	}
	if diag.Line != 2 {
		t.Errorf("diag.Line = %d, want 2", diag.Line)
	}
	if !strings.Contains(diag.String(), "line 2, column") {
		t.Errorf("diagnostics text = %q, missing position", diag.String())
	}
}
