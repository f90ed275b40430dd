package toml_test

import (
	"strings"
	"testing"

	"github.com/anttikivi/toml"
)

func TestDiagnostics_String(t *testing.T) {
	_, diag, err := toml.ParseWithDiagnostics([]byte("x = 1\ny = [1, 2\n"))
	if err == nil {
		t.Fatal("expected a parse error")
	}
	if diag == nil {
		t.Fatal("expected non-nil diagnostics")
	}
	s := diag.String()
	if !strings.HasPrefix(s, "error parsing TOML document on line ") {
		t.Errorf("String() = %q, wrong prefix", s)
	}
	lines := strings.Split(s, "\n")
	if len(lines) != 3 {
		t.Fatalf("String() has %d lines, want 3:\n%s", len(lines), s)
	}
	caret := lines[2]
	if !strings.HasSuffix(caret, "^") {
		t.Errorf("last line = %q, want a caret at the end", caret)
	}
	if len(caret)-1 != diag.Column-1 {
		t.Errorf("caret at column %d, diag.Column = %d", len(caret), diag.Column)
	}
}

func TestDiagnostics_nilOnSuccess(t *testing.T) {
	_, diag, err := toml.ParseWithDiagnostics([]byte("x = 1\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diag != nil {
		t.Errorf("diag = %#v, want nil on success", diag)
	}
}
