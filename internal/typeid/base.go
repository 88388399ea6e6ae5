// Package typeid implements the type-id triple of spec §3.2/§4.B: three
// disjoint bitsets (base, storage, attrs), closed under union, intersection,
// and complement, with normalization and per-language legality.
package typeid

import "strings"

// Base is the bitset of base-type bits: what kind of thing a declaration's
// underlying type is (void, an arithmetic type, a tag type, ...).
type Base uint64

const BaseNone Base = 0

const (
	BaseVoid Base = 1 << iota
	BaseBool
	BaseChar
	BaseChar8T
	BaseChar16T
	BaseChar32T
	BaseWCharT
	BaseInt
	BaseSigned
	BaseUnsigned
	BaseShort
	BaseLong
	BaseLongLong // combined with BaseLong to mean "long long"
	BaseFloat
	BaseDouble
	BaseBitInt
	BaseAccum // Embedded-C _Accum
	BaseFract // Embedded-C _Fract
	BaseSat   // Embedded-C _Sat
	BaseEnum
	BaseClass
	BaseStruct
	BaseUnion
	BaseNamespace
	BaseAuto     // placeholder, deduced type
	BaseTypedef  // "this is a typedef declaration" marker
	BaseConcept
)

var baseNames = map[Base]string{
	BaseVoid:      "void",
	BaseBool:      "bool",
	BaseChar:      "char",
	BaseChar8T:    "char8_t",
	BaseChar16T:   "char16_t",
	BaseChar32T:   "char32_t",
	BaseWCharT:    "wchar_t",
	BaseInt:       "int",
	BaseSigned:    "signed",
	BaseUnsigned:  "unsigned",
	BaseShort:     "short",
	BaseLong:      "long",
	BaseLongLong:  "long long",
	BaseFloat:     "float",
	BaseDouble:    "double",
	BaseBitInt:    "_BitInt",
	BaseAccum:     "_Accum",
	BaseFract:     "_Fract",
	BaseSat:       "_Sat",
	BaseEnum:      "enum",
	BaseClass:     "class",
	BaseStruct:    "struct",
	BaseUnion:     "union",
	BaseNamespace: "namespace",
	BaseAuto:      "auto",
	BaseTypedef:   "typedef",
	BaseConcept:   "concept",
}

// CSU is every "class, struct, or union" bit.
const CSU = BaseClass | BaseStruct | BaseUnion

// Has reports whether all bits of mask are set in b.
func (b Base) Has(mask Base) bool { return b&mask == mask }

// IsAny reports whether any bit of mask is set in b.
func (b Base) IsAny(mask Base) bool { return b&mask != 0 }

// Union, Intersect, Complement are the closed triple operations of §3.2.
func (b Base) Union(o Base) Base      { return b | o }
func (b Base) Intersect(o Base) Base  { return b & o }
func (b Base) Complement() Base       { return ^b }

func (b Base) String() string {
	if b == 0 {
		return ""
	}
	var parts []string
	for bit := Base(1); bit != 0 && bit <= BaseConcept; bit <<= 1 {
		if b&bit != 0 {
			if name, ok := baseNames[bit]; ok {
				parts = append(parts, name)
			}
		}
	}
	return strings.Join(parts, " ")
}
