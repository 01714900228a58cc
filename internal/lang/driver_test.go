package lang

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/griffinevans/chalice-lang/internal/lang/parser"
)

func TestParseStream(t *testing.T) {
	input := `
def double(x) x*2
extern sin(a)
double(21) < 100;
# a comment between units
1+2
`

	units, diags := ParseStream(strings.NewReader(input), parser.NewTable())
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if len(units) != 4 {
		t.Fatalf("expected 4 units, got %d", len(units))
	}

	expected := []struct {
		kind UnitKind
		str  string
	}{
		{UnitDefinition, "def double(x) (x * 2)"},
		{UnitExtern, "sin(a)"},
		{UnitExpression, "(double(21) < 100)"},
		{UnitExpression, "(1 + 2)"},
	}
	for i, exp := range expected {
		if units[i].Kind != exp.kind {
			t.Errorf("unit %d: expected kind %s, got %s", i, exp.kind, units[i].Kind)
		}
		if got := units[i].String(); got != exp.str {
			t.Errorf("unit %d: expected %q, got %q", i, exp.str, got)
		}
	}
}

func TestParseStreamRecovery(t *testing.T) {
	// The malformed definition produces a diagnostic; parsing resumes and
	// still picks up the following units.
	input := "def 1 x+1"

	units, diags := ParseStream(strings.NewReader(input), parser.NewTable())
	if len(diags) != 1 {
		t.Fatalf("expected 1 diagnostic, got %d: %v", len(diags), diags)
	}
	if len(units) != 1 {
		t.Fatalf("expected 1 recovered unit, got %d", len(units))
	}
	if units[0].Kind != UnitExpression {
		t.Errorf("expected recovered unit to be an expression, got %s", units[0].Kind)
	}
}

func TestParseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prog.chl")
	if err := os.WriteFile(path, []byte("def id(x) x\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	units, diags, err := ParseFile(path, parser.NewTable())
	if err != nil {
		t.Fatalf("ParseFile returned error: %v", err)
	}
	if len(diags) != 0 {
		t.Fatalf("expected no diagnostics, got %v", diags)
	}
	if len(units) != 1 || units[0].Kind != UnitDefinition {
		t.Fatalf("expected one definition, got %v", units)
	}
}

func TestParseFileRejectsWrongExtension(t *testing.T) {
	if _, _, err := ParseFile("prog.txt", parser.NewTable()); err == nil {
		t.Error("expected an extension error")
	}
}
