package typeid

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

func TestNormalizeSignedAlone(t *testing.T) {
	tid := TID{Base: BaseSigned}.Normalize()
	if !tid.Base.Has(BaseInt) {
		t.Error("bare signed should normalize to include int")
	}
}

func TestNormalizeLongLong(t *testing.T) {
	tid := TID{Base: BaseLong | BaseLongLong}.Normalize()
	if !tid.Base.Has(BaseInt) {
		t.Error("bare long long should normalize to include int")
	}
}

func TestNormalizeLeavesCharAlone(t *testing.T) {
	tid := TID{Base: BaseChar | BaseUnsigned}.Normalize()
	if tid.Base.Has(BaseInt) {
		t.Error("unsigned char should not gain an int bit")
	}
}

func TestUnionIntersectComplement(t *testing.T) {
	a := TID{Base: BaseInt, Storage: StorageConst}
	b := TID{Base: BaseBool, Storage: StorageStatic}
	u := a.Union(b)
	if !u.Base.Has(BaseInt) || !u.Base.Has(BaseBool) {
		t.Error("union should have both base bits")
	}
	if !u.Storage.Has(StorageConst) || !u.Storage.Has(StorageStatic) {
		t.Error("union should have both storage bits")
	}

	i := a.Intersect(b)
	if i.Base != 0 || i.Storage != 0 {
		t.Error("disjoint triples should intersect to empty")
	}

	c := a.Complement().Complement()
	if !c.Equal(a) {
		t.Error("double complement should equal original")
	}
}

func TestLegalInGatedBit(t *testing.T) {
	tid := TID{Storage: StorageConstexpr}
	if tid.LegalIn(langver.C89) {
		t.Error("constexpr should not be legal in C89")
	}
	if !tid.LegalIn(langver.CPP11) {
		t.Error("constexpr should be legal in C++11")
	}
	if !tid.LegalIn(langver.C23) {
		t.Error("constexpr should be legal in C23")
	}
}

func TestLegalInUngatedIsUniversal(t *testing.T) {
	tid := TID{Base: BaseInt, Storage: StorageConst}
	for l := langver.KNRC; l <= langver.CPP26; l++ {
		if !tid.LegalIn(l) {
			t.Errorf("plain const int should be legal in every language, failed for %s", l)
		}
	}
}

func TestLegalLanguagesIntersectsMultipleBits(t *testing.T) {
	tid := TID{Base: BaseChar8T, Storage: StorageConsteval}
	set := tid.LegalLanguages()
	if set.Has(langver.CPP11) {
		t.Error("char8_t is CPP20+, consteval is CPP20+: CPP11 should not satisfy both")
	}
	if !set.Has(langver.CPP20) {
		t.Error("CPP20 should satisfy both char8_t and consteval")
	}
}
