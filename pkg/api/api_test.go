package api

import "testing"

func TestDeclarePointerToInt(t *testing.T) {
	res := Declare("declare x as pointer to int")
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Gibberish != "int *x;" {
		t.Errorf("Gibberish = %q, want %q", res.Gibberish, "int *x;")
	}
}

func TestDeclareWithEastConst(t *testing.T) {
	res := DeclareWithOptions("declare x as pointer to const int", Options{EastConst: true})
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.Gibberish == "" {
		t.Fatal("expected non-empty gibberish")
	}
}

func TestExplainArrayOfInt(t *testing.T) {
	res := Explain("int a[3];")
	if len(res.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", res.Errors)
	}
	if res.English == "" {
		t.Fatal("expected non-empty english")
	}
}

func TestExplainListReturnsEachDeclarator(t *testing.T) {
	lr := ExplainList("int i, *j;")
	if len(lr.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", lr.Errors)
	}
	if len(lr.Results) != 2 {
		t.Fatalf("got %d results, want 2", len(lr.Results))
	}
}

func TestCheckRejectsMalformedDeclaration(t *testing.T) {
	if errs := Check("int a[3", Options{}); len(errs) == 0 {
		t.Error("expected an error for an unterminated array declarator")
	}
}

func TestCheckAcceptsWellFormedDeclaration(t *testing.T) {
	if errs := Check("int *x;", Options{}); len(errs) != 0 {
		t.Errorf("unexpected errors: %v", errs)
	}
}
