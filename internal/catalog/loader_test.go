package catalog_test

import (
	"strings"
	"testing"

	"github.com/gingerlang/ginger/internal/catalog"
	"github.com/gingerlang/ginger/internal/diagnostics"
	"github.com/gingerlang/ginger/internal/typecheck"
)

const sampleCatalog = `
catalog Arith

type Int
type Text

fn add
	args: Int, Int
	return: Int
	description: "integer addition"

fn greet
	args:
	return: Text
`

func loadCatalog(t *testing.T, src string) (*catalog.Catalog, []*diagnostics.DiagnosticError) {
	t.Helper()
	return catalog.Load(src, typecheck.DefaultMapping())
}

// mustLoad fails the test on any error-severity diagnostic.
func mustLoad(t *testing.T, src string) *catalog.Catalog {
	t.Helper()
	cat, diags := loadCatalog(t, src)
	for _, d := range diags {
		if d.Severity == diagnostics.SeverityError {
			t.Fatalf("unexpected load error: %s", d.Error())
		}
	}
	if cat == nil {
		t.Fatal("Load returned nil catalog without errors")
	}
	return cat
}

// expectLoadError asserts loading fails with the given code.
func expectLoadError(t *testing.T, src string, code diagnostics.ErrorCode) *diagnostics.DiagnosticError {
	t.Helper()
	cat, diags := loadCatalog(t, src)
	if cat != nil {
		t.Fatalf("expected error %s, but load succeeded", code)
	}
	if len(diags) != 1 {
		t.Fatalf("expected exactly one error, got %d", len(diags))
	}
	if diags[0].Code != code {
		t.Fatalf("expected error %s, got %s: %s", code, diags[0].Code, diags[0].Error())
	}
	return diags[0]
}

func TestLoadSample(t *testing.T) {
	cat := mustLoad(t, sampleCatalog)

	if cat.Name != "Arith" {
		t.Errorf("catalog name = %q, want Arith", cat.Name)
	}
	if got := cat.Types(); len(got) != 2 || got[0] != "Int" || got[1] != "Text" {
		t.Errorf("types = %v, want [Int Text]", got)
	}

	add, ok := cat.Lookup("add")
	if !ok {
		t.Fatal("add not found")
	}
	if len(add.Params) != 2 || add.Params[0] != "Int" || add.Params[1] != "Int" {
		t.Errorf("add params = %v, want [Int Int]", add.Params)
	}
	if add.Return != "Int" {
		t.Errorf("add return = %q, want Int", add.Return)
	}
	if add.Description != "integer addition" {
		t.Errorf("add description = %q", add.Description)
	}

	greet, ok := cat.Lookup("greet")
	if !ok {
		t.Fatal("greet not found")
	}
	if len(greet.Params) != 0 {
		t.Errorf("greet params = %v, want none", greet.Params)
	}
}

func TestLoadIsIdempotent(t *testing.T) {
	first := mustLoad(t, sampleCatalog)
	second := mustLoad(t, sampleCatalog)

	if strings.Join(first.Types(), ",") != strings.Join(second.Types(), ",") {
		t.Errorf("type sets differ: %v vs %v", first.Types(), second.Types())
	}
	firstFns := first.Functions()
	secondFns := second.Functions()
	if len(firstFns) != len(secondFns) {
		t.Fatalf("function counts differ: %d vs %d", len(firstFns), len(secondFns))
	}
	for i := range firstFns {
		if firstFns[i].Name != secondFns[i].Name {
			t.Errorf("function %d differs: %s vs %s", i, firstFns[i].Name, secondFns[i].Name)
		}
	}
}

func TestTypeRedeclarationIsIdempotent(t *testing.T) {
	cat := mustLoad(t, "type Int\ntype Int\nfn id\nargs: Int\nreturn: Int\n")
	if got := cat.Types(); len(got) != 1 {
		t.Errorf("types = %v, want exactly [Int]", got)
	}
}

func TestMissingArgs(t *testing.T) {
	err := expectLoadError(t, "fn add\nreturn: Int\n", diagnostics.ErrC002)
	if !strings.Contains(err.Message, "args") {
		t.Errorf("message %q should name args", err.Message)
	}
}

func TestMissingReturn(t *testing.T) {
	err := expectLoadError(t, "fn add\nargs: Int, Int\n", diagnostics.ErrC002)
	if !strings.Contains(err.Message, "return") {
		t.Errorf("message %q should name return", err.Message)
	}
}

func TestMissingReturnBeforeNextBlock(t *testing.T) {
	src := "fn add\nargs: Int, Int\nfn sub\nargs: Int, Int\nreturn: Int\n"
	expectLoadError(t, src, diagnostics.ErrC002)
}

func TestDuplicateFunction(t *testing.T) {
	src := "fn add\nargs: Int\nreturn: Int\nfn add\nargs: Int\nreturn: Int\n"
	expectLoadError(t, src, diagnostics.ErrC004)
}

func TestUnknownReferencedType(t *testing.T) {
	err := expectLoadError(t, "fn f\nargs: Widget\nreturn: Int\n", diagnostics.ErrC003)
	if !strings.Contains(err.Message, "Widget") {
		t.Errorf("message %q should name the unknown type", err.Message)
	}
}

func TestTypeDeclaredAfterUse(t *testing.T) {
	// type lines may follow the fn blocks that reference them
	mustLoad(t, "fn f\nargs: Widget\nreturn: Widget\ntype Widget\n")
}

func TestKeyedLineOutsideBlock(t *testing.T) {
	expectLoadError(t, "args: Int\n", diagnostics.ErrC005)
}

func TestUnrecognizedLine(t *testing.T) {
	err := expectLoadError(t, "frobnicate the catalog\n", diagnostics.ErrC001)
	if err.Line != 1 {
		t.Errorf("error line = %d, want 1", err.Line)
	}
}

func TestReturnTakesOneType(t *testing.T) {
	expectLoadError(t, "fn f\nargs: Int\nreturn: Int, Int\n", diagnostics.ErrC001)
}

func TestCommentsAndBlankLinesIgnored(t *testing.T) {
	src := "// header\n\nfn f\n// inner\nargs: Int\nreturn: Int\n\n"
	cat := mustLoad(t, src)
	if _, ok := cat.Lookup("f"); !ok {
		t.Error("f not found")
	}
}

func TestDescriptionKeepsInteriorQuotes(t *testing.T) {
	src := "fn f\nargs: Int\nreturn: Int\ndescription: \"says \"hi\" loudly\"\n"
	cat := mustLoad(t, src)
	f, _ := cat.Lookup("f")
	if f.Description != `says "hi" loudly` {
		t.Errorf("description = %q", f.Description)
	}
}

func TestUnusedTypeWarning(t *testing.T) {
	src := "type Int\ntype Ghost\nfn id\nargs: Int\nreturn: Int\n"
	cat, diags := loadCatalog(t, src)
	if cat == nil {
		t.Fatal("load failed")
	}
	if len(diags) != 1 {
		t.Fatalf("expected one warning, got %d diagnostics", len(diags))
	}
	warn := diags[0]
	if warn.Severity != diagnostics.SeverityWarning || warn.Code != diagnostics.WarnCW01 {
		t.Fatalf("expected %s warning, got %s %s", diagnostics.WarnCW01, warn.Severity, warn.Code)
	}
	if !strings.Contains(warn.Message, "Ghost") {
		t.Errorf("warning %q should name Ghost", warn.Message)
	}
}
