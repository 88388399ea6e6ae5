package operator

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

func TestNonOverloadable(t *testing.T) {
	for _, op := range []ID{Conditional, Dot, DotStar, ScopeRes} {
		if IsOverloadable(op) {
			t.Errorf("operator %v should not be overloadable", op)
		}
	}
}

func TestOverloadable(t *testing.T) {
	for _, op := range []ID{Add, Call, Subscript, New, Delete} {
		if !IsOverloadable(op) {
			t.Errorf("operator %v should be overloadable", op)
		}
	}
}

func TestIsAmbiguous(t *testing.T) {
	row, _ := Table(Mul, langver.CPP17)
	if !IsAmbiguous(row) {
		t.Error("* should be ambiguous (0..2 params)")
	}
	row, _ = Table(Div, langver.CPP17)
	if IsAmbiguous(row) {
		t.Error("/ should not be ambiguous (fixed 2 params)")
	}
}

func TestSubscriptRelaxedInCPP23(t *testing.T) {
	pre, _ := Table(Subscript, langver.CPP17)
	if pre.ParamsMin != 1 || pre.ParamsMax != 1 {
		t.Errorf("pre-C++23 [] should be exactly 1 param, got [%d,%d]", pre.ParamsMin, pre.ParamsMax)
	}
	post, _ := Table(Subscript, langver.CPP23)
	if post.ParamsMin != 0 || post.ParamsMax != 2 {
		t.Errorf("C++23+ [] should allow 0..2 params, got [%d,%d]", post.ParamsMin, post.ParamsMax)
	}
}

func TestSpaceshipRequiresCPP20(t *testing.T) {
	row, ok := Table(Spaceship, langver.CPP17)
	if !ok {
		t.Fatal("expected a row for <=>")
	}
	if row.Langs.Has(langver.CPP17) {
		t.Error("<=> should not be legal before C++20")
	}
	if !row.Langs.Has(langver.CPP20) {
		t.Error("<=> should be legal in C++20")
	}
}
