package ast

import "github.com/paul-j-lucas/cdecl/internal/operator"

// Placeholder is an empty hole in a declarator chain awaiting patch_placeholder.
type Placeholder struct{ Header }

func (*Placeholder) isNode() {}

// Name is an identifier-only node: an untyped K&R-style parameter.
type Name struct {
	Header
	Ident string
}

func (*Name) isNode() {}

// Builtin is a fundamental type: void, bool, int family, float family,
// _BitInt, _Accum/_Fract/_Sat, etc. The base bits live in Header.Type.Base.
type Builtin struct {
	Header
	BitWidth int // meaningful only when Header.Type.Base.Has(typeid.BaseBitInt)
}

func (*Builtin) isNode() {}

// Enum holds an optional fixed underlying-type AST, the enum's own tag
// sname, and an optional explicit bit-field width (0 if none).
type Enum struct {
	Header
	Underlying ID // NoID if none
	Tag        *SNameHolder
	BitWidth   int
}

func (*Enum) isNode() {}

// SNameHolder exists so Enum/Class/Concept can carry a class-tag sname
// distinct from Header.SName (the declared variable's name), per §3.3.
type SNameHolder struct {
	Name string
}

// Class is shared by class/struct/union kinds (Header.Kind distinguishes).
type Class struct {
	Header
	Tag *SNameHolder
}

func (*Class) isNode() {}

// Concept carries a concept-tag sname.
type Concept struct {
	Header
	Tag *SNameHolder
}

func (*Concept) isNode() {}

// Typedef is a synonym for its For AST, not a structural parent — see
// §3.3's "Ownership and lifecycle" note. Traversal helpers in util.go
// decide whether to follow it.
type Typedef struct {
	Header
	For ID
}

func (*Typedef) isNode() {}

// Array holds the "of" slot (what's arrayed), a size classification, and
// the literal/named size value.
type Array struct {
	Header
	Of        ID
	SizeKind  SizeKind
	SizeInt   int64  // meaningful when SizeKind == SizeInt
	SizeNamed string // meaningful when SizeKind == SizeNamed
}

func (*Array) isNode() {}

// Pointer holds the "to" slot.
type Pointer struct {
	Header
	To ID
}

func (*Pointer) isNode() {}

// PointerToMember additionally carries the owning class's sname.
type PointerToMember struct {
	Header
	To    ID
	Class *SNameHolder
}

func (*PointerToMember) isNode() {}

// Reference and RvalueReference both hold a "to" slot; Header.Kind
// distinguishes & from &&.
type Reference struct {
	Header
	To ID
}

func (*Reference) isNode() {}

type RvalueReference struct {
	Header
	To ID
}

func (*RvalueReference) isNode() {}

// Param is a single function parameter: its declared AST plus an optional
// default-value source text (kept only for round-trip printing, never
// evaluated).
type Param struct {
	ID      ID
	Default string
}

// Function covers plain functions, member functions, and (via Header.Kind
// == KindAppleBlock) Apple's ^-block extension, which shares this payload
// shape per §3.3.
type Function struct {
	Header
	Return ID // NoID for constructors/destructors
	Params []Param
	Member Member
}

func (*Function) isNode() {}

// Ctor is the constructor payload: a parameter list, no return slot.
type Ctor struct {
	Header
	Params []Param
}

func (*Ctor) isNode() {}

// Dtor is the destructor payload: no parameters, no return slot.
type Dtor struct {
	Header
}

func (*Dtor) isNode() {}

// Operator is an overloaded-operator declaration.
type Operator struct {
	Header
	Return ID
	Params []Param
	Op     operator.ID
	Member Member
}

func (*Operator) isNode() {}

// UserDefinedConversion is `operator T()`.
type UserDefinedConversion struct {
	Header
	To ID
}

func (*UserDefinedConversion) isNode() {}

// UserDefinedLiteral is `operator "" _suffix(...)`.
type UserDefinedLiteral struct {
	Header
	Return ID
	Params []Param
}

func (*UserDefinedLiteral) isNode() {}

// Capture is one lambda capture entry.
type Capture struct {
	Kind CaptureKind
	Name string // meaningful for CaptureCopy/CaptureReference/CaptureVariable
}

// Lambda holds its capture list, parameters, and return AST (NoID if the
// return type is to be deduced).
type Lambda struct {
	Header
	Captures []Capture
	Params   []Param
	Return   ID
}

func (*Lambda) isNode() {}

// StructuredBinding holds the list of bound names from a `auto [a, b] = ...`
// declaration.
type StructuredBinding struct {
	Header
	Names []string
}

func (*StructuredBinding) isNode() {}

// Cast is a cast-expression node: `(T)x`, `static_cast<T>(x)`, etc.
type Cast struct {
	Header
	To   ID
	Kind CastKind
}

func (*Cast) isNode() {}

// Variadic is the bare `...` parameter marker.
type Variadic struct{ Header }

func (*Variadic) isNode() {}
