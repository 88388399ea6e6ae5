package keyword

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

func TestIsKeywordAcrossLanguages(t *testing.T) {
	if !IsKeyword("restrict", langver.C99) {
		t.Error("restrict should be reserved in C99")
	}
	if IsKeyword("restrict", langver.C89) {
		t.Error("restrict should not be reserved in C89")
	}
	if !IsKeyword("class", langver.CPP98) {
		t.Error("class should be reserved in C++98")
	}
	if IsKeyword("class", langver.C99) {
		t.Error("class should not be reserved in C99")
	}
}

func TestConceptRequiresCPP20(t *testing.T) {
	if IsKeyword("concept", langver.CPP17) {
		t.Error("concept should not be reserved before C++20")
	}
	if !IsKeyword("concept", langver.CPP20) {
		t.Error("concept should be reserved in C++20")
	}
}

func TestNotAKeyword(t *testing.T) {
	if IsKeyword("foo", langver.CPP23) {
		t.Error("foo is not a keyword in any language")
	}
	if Lookup("foo") != nil {
		t.Error("Lookup should return nil for a non-keyword")
	}
}

func TestAllIsSortedAndFiltered(t *testing.T) {
	names := All(langver.C89)
	for i := 1; i < len(names); i++ {
		if names[i] < names[i-1] {
			t.Fatalf("All should be sorted, got %v before %v", names[i-1], names[i])
		}
	}
	for _, n := range names {
		if n == "concept" || n == "class" {
			t.Errorf("All(C89) should not include C++-only keyword %q", n)
		}
	}
}

func TestAlternativeOperatorTokensAreCPPOnly(t *testing.T) {
	if !IsKeyword("and", langver.CPP17) {
		t.Error("and should be reserved in C++")
	}
	if IsKeyword("and", langver.C17) {
		t.Error("and should not be reserved in C")
	}
}
