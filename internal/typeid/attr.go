package typeid

import "strings"

// Attr is the bitset of standard and vendor attribute bits.
type Attr uint64

const (
	AttrCarriesDependency Attr = 1 << iota
	AttrDeprecated
	AttrMaybeUnused
	AttrNodiscard
	AttrNoreturn
	AttrNoUniqueAddress
	AttrReproducible
	AttrUnsequenced
	AttrMSCCdecl
	AttrMSCStdcall
	AttrMSCFastcall
	AttrMSCThiscall
	AttrMSCVectorcall
)

var attrNames = map[Attr]string{
	AttrCarriesDependency: "carries_dependency",
	AttrDeprecated:        "deprecated",
	AttrMaybeUnused:       "maybe_unused",
	AttrNodiscard:         "nodiscard",
	AttrNoreturn:          "noreturn",
	AttrNoUniqueAddress:   "no_unique_address",
	AttrReproducible:      "reproducible",
	AttrUnsequenced:       "unsequenced",
	AttrMSCCdecl:          "__cdecl",
	AttrMSCStdcall:        "__stdcall",
	AttrMSCFastcall:       "__fastcall",
	AttrMSCThiscall:       "__thiscall",
	AttrMSCVectorcall:     "__vectorcall",
}

// MSCallingConvention is every Microsoft calling-convention attribute.
const MSCallingConvention = AttrMSCCdecl | AttrMSCStdcall | AttrMSCFastcall | AttrMSCThiscall | AttrMSCVectorcall

// ObjectOnly is every attribute legal only on objects (variables), not on
// function-like declarations, per §4.G.type-pass's object/function split.
const ObjectOnly = AttrNoUniqueAddress

func (a Attr) Has(mask Attr) bool      { return a&mask == mask }
func (a Attr) IsAny(mask Attr) bool    { return a&mask != 0 }
func (a Attr) Union(o Attr) Attr       { return a | o }
func (a Attr) Intersect(o Attr) Attr   { return a & o }
func (a Attr) Complement() Attr        { return ^a }

func (a Attr) String() string {
	if a == 0 {
		return ""
	}
	var parts []string
	for bit := Attr(1); bit != 0 && bit <= AttrMSCVectorcall; bit <<= 1 {
		if a&bit != 0 {
			if name, ok := attrNames[bit]; ok {
				parts = append(parts, "["+name+"]")
			}
		}
	}
	return strings.Join(parts, " ")
}
