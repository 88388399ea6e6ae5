package typeid

import (
	"strings"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

// TID is the type-id triple of §3.2: (base, storage, attrs). Each component
// is an independent bitset; a bit belongs to exactly one component, and
// mixing bits across components is a programmer error the type system
// doesn't try to catch (per the Design Notes).
type TID struct {
	Base    Base
	Storage Storage
	Attrs   Attr
}

// Union, Intersect, Complement apply per-component, per §3.2 ("the triple
// is closed under union, intersection, and complement per-component").
func (t TID) Union(o TID) TID {
	return TID{t.Base.Union(o.Base), t.Storage.Union(o.Storage), t.Attrs.Union(o.Attrs)}
}

func (t TID) Intersect(o TID) TID {
	return TID{t.Base.Intersect(o.Base), t.Storage.Intersect(o.Storage), t.Attrs.Intersect(o.Attrs)}
}

func (t TID) Complement() TID {
	return TID{t.Base.Complement(), t.Storage.Complement(), t.Attrs.Complement()}
}

func (t TID) Equal(o TID) bool {
	return t.Base == o.Base && t.Storage == o.Storage && t.Attrs == o.Attrs
}

// IsAny reports whether t has any bit of the given mask (mixed across
// components, for callers that want a single predicate over the triple).
func (t TID) IsAny(mask TID) bool {
	return t.Base.IsAny(mask.Base) || t.Storage.IsAny(mask.Storage) || t.Attrs.IsAny(mask.Attrs)
}

// Normalize expands composite shorthands into their canonical base bits:
//   - "signed" alone (no explicit width/char) -> "signed int"
//   - "short" alone -> "short int"
//   - "long" alone -> "long int"
//   - "long long" alone -> "long long int"
//   - "unsigned" alone -> "unsigned int"
//
// This mirrors the teacher's normalization habit of always storing a fully
// expanded representation rather than special-casing shorthand at every
// call site (see internal/types.Scalar in the teacher, which never leaves
// "abstract" bits unresolved past parse time).
func (t TID) Normalize() TID {
	const widthOrCharBits = BaseChar | BaseChar8T | BaseChar16T | BaseChar32T | BaseWCharT |
		BaseFloat | BaseDouble | BaseVoid | BaseBool
	modifiers := BaseSigned | BaseUnsigned | BaseShort | BaseLong | BaseLongLong

	if t.Base.IsAny(modifiers) && !t.Base.IsAny(widthOrCharBits) && !t.Base.Has(BaseInt) {
		t.Base |= BaseInt
	}
	return t
}

// String renders the triple for diagnostics, e.g. "static const int".
func (t TID) String() string {
	var parts []string
	if s := t.Storage.String(); s != "" {
		parts = append(parts, s)
	}
	if b := t.Base.String(); b != "" {
		parts = append(parts, b)
	}
	if a := t.Attrs.String(); a != "" {
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// These tables gate each bit to the language set it's legal in. Bits
// absent from these tables are legal in every language (e.g. plain `int`,
// plain `const`).
var baseLegality = map[Base]langver.Set{
	BaseChar8T:  langver.From(langver.CPP20),
	BaseChar16T: langver.Of(langver.C11, langver.C17, langver.C23).Union(langver.From(langver.CPP11)),
	BaseChar32T: langver.Of(langver.C11, langver.C17, langver.C23).Union(langver.From(langver.CPP11)),
	BaseBool:    langver.Of(langver.C99, langver.C11, langver.C17, langver.C23).Union(langver.AllCPP),
	BaseBitInt:  langver.From(langver.C23),
	BaseAccum:   langver.AllC,
	BaseFract:   langver.AllC,
	BaseSat:     langver.AllC,
	BaseConcept: langver.From(langver.CPP20),
	BaseAuto:    langver.From(langver.CPP11),
}

var storageLegality = map[Storage]langver.Set{
	StorageExternC:            langver.AllCPP,
	StorageRegister:           langver.Of(langver.KNRC, langver.C89, langver.C95, langver.C99, langver.C11, langver.C17).Union(langver.Of(langver.CPP98, langver.CPP03, langver.CPP11, langver.CPP14)),
	StorageFriend:             langver.AllCPP,
	StorageVirtual:            langver.AllCPP,
	StoragePureVirtual:        langver.AllCPP,
	StorageExplicit:           langver.AllCPP,
	StorageMutable:            langver.AllCPP,
	StorageConstexpr:          langver.Of(langver.C23).Union(langver.From(langver.CPP11)),
	StorageConsteval:          langver.From(langver.CPP20),
	StorageConstinit:          langver.From(langver.CPP20),
	StorageAtomic:             langver.Of(langver.C11, langver.C17, langver.C23),
	StorageRestrict:           langver.Of(langver.C99, langver.C11, langver.C17, langver.C23),
	StorageRefQualifier:       langver.From(langver.CPP11),
	StorageRvalueRefQualifier: langver.From(langver.CPP11),
	StorageNoexcept:           langver.From(langver.CPP11),
	StorageDefault:            langver.From(langver.CPP11),
	StorageDelete:             langver.From(langver.CPP11),
	StorageFinal:              langver.From(langver.CPP11),
	StorageOverride:           langver.From(langver.CPP11),
	StorageArrayQualified:     langver.Of(langver.C99, langver.C11, langver.C17, langver.C23),
	StorageThis:               langver.From(langver.CPP23),
	StorageUPCShared:          langver.Set(0), // UPC is a C dialect extension; legal wherever the keyword table admits it
	StorageUPCRelaxed:         langver.Set(0),
	StorageUPCStrict:          langver.Set(0),
}

var attrLegality = map[Attr]langver.Set{
	AttrCarriesDependency: langver.From(langver.CPP11),
	AttrDeprecated:        langver.Of(langver.C23).Union(langver.From(langver.CPP14)),
	AttrMaybeUnused:       langver.Of(langver.C23).Union(langver.From(langver.CPP17)),
	AttrNodiscard:         langver.Of(langver.C23).Union(langver.From(langver.CPP17)),
	AttrNoreturn:          langver.Of(langver.C11, langver.C17, langver.C23).Union(langver.From(langver.CPP11)),
	AttrNoUniqueAddress:   langver.From(langver.CPP20),
	AttrReproducible:      langver.Of(langver.C23),
	AttrUnsequenced:       langver.Of(langver.C23),
}

// LegalIn reports whether every bit set in t is legal in lang.
func (t TID) LegalIn(lang langver.Lang) bool {
	return t.LegalLanguages().Has(lang)
}

// LegalLanguages returns the set of languages in which every bit of t is
// legal: the intersection, across all set bits, of each bit's legal set.
// A triple with no gated bits at all is legal everywhere.
func (t TID) LegalLanguages() langver.Set {
	set := langver.All
	for bit := Base(1); bit != 0 && bit <= BaseConcept; bit <<= 1 {
		if t.Base&bit != 0 {
			if gate, ok := baseLegality[bit]; ok && !gate.IsEmpty() {
				set = set.Intersect(gate)
			}
		}
	}
	for bit := Storage(1); bit != 0 && bit <= StorageUPCStrict; bit <<= 1 {
		if t.Storage&bit != 0 {
			if gate, ok := storageLegality[bit]; ok && !gate.IsEmpty() {
				set = set.Intersect(gate)
			}
		}
	}
	for bit := Attr(1); bit != 0 && bit <= AttrMSCVectorcall; bit <<= 1 {
		if t.Attrs&bit != 0 {
			if gate, ok := attrLegality[bit]; ok && !gate.IsEmpty() {
				set = set.Intersect(gate)
			}
		}
	}
	return set
}
