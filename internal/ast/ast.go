// Package ast defines the cdecl Abstract Syntax Tree: the arena-owned,
// id-linked node graph that the builder (internal/astbuild) constructs,
// the checker (internal/checker) validates, and the printer
// (internal/printer) renders.
package ast

import (
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// ID identifies a node within its owning arena. The zero value is never a
// valid id (arena slot 0 is reserved), mirroring the teacher's ast.Ref
// "by-id, not by-pointer" convention so nodes can be copied and compared
// cheaply without aliasing a pointer graph.
type ID uint32

// NoID is the invalid/absent node id.
const NoID ID = 0

// Kind tags every node payload, per §3.3's kind table.
type Kind uint8

const (
	KindPlaceholder Kind = iota
	KindName
	KindBuiltin
	KindEnum
	KindClass
	KindStruct
	KindUnion
	KindConcept
	KindTypedef
	KindArray
	KindPointer
	KindPointerToMember
	KindReference
	KindRvalueReference
	KindFunction
	KindAppleBlock
	KindConstructor
	KindDestructor
	KindOperator
	KindUserDefinedConversion
	KindUserDefinedLiteral
	KindLambda
	KindCapture
	KindStructuredBinding
	KindCast
	KindVariadic

	numKinds
)

var kindNames = [numKinds]string{
	KindPlaceholder:           "placeholder",
	KindName:                  "name",
	KindBuiltin:               "builtin",
	KindEnum:                  "enum",
	KindClass:                 "class",
	KindStruct:                "struct",
	KindUnion:                 "union",
	KindConcept:               "concept",
	KindTypedef:               "typedef",
	KindArray:                 "array",
	KindPointer:               "pointer",
	KindPointerToMember:       "pointer_to_member",
	KindReference:             "reference",
	KindRvalueReference:       "rvalue_reference",
	KindFunction:              "function",
	KindAppleBlock:            "apple_block",
	KindConstructor:           "constructor",
	KindDestructor:            "destructor",
	KindOperator:              "operator",
	KindUserDefinedConversion: "user_defined_conversion",
	KindUserDefinedLiteral:    "user_defined_literal",
	KindLambda:                "lambda",
	KindCapture:               "capture",
	KindStructuredBinding:     "structured_binding",
	KindCast:                  "cast",
	KindVariadic:              "variadic",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

// ReturnsKind reports whether nodes of this kind carry a "returns" slot per
// §3.3: function, operator, apple block, user-defined literal, user-defined
// conversion, and lambda. Constructors and destructors do not, even though
// they are function-like.
func (k Kind) ReturnsKind() bool {
	switch k {
	case KindFunction, KindAppleBlock, KindOperator, KindUserDefinedLiteral,
		KindUserDefinedConversion, KindLambda:
		return true
	default:
		return false
	}
}

// IsFunctionLike reports whether the kind carries a parameter list.
func (k Kind) IsFunctionLike() bool {
	switch k {
	case KindFunction, KindAppleBlock, KindConstructor, KindDestructor,
		KindOperator, KindUserDefinedLiteral, KindLambda:
		return true
	default:
		return false
	}
}

// SizeKind classifies an array's size expression.
type SizeKind uint8

const (
	SizeNone  SizeKind = iota // unsized: T a[]
	SizeInt                   // literal: T a[3]
	SizeNamed                 // named constant: T a[N]
	SizeVLA                   // C99 variable-length: T a[*]
)

// CastKind enumerates the cast-expression flavors of §3.3's `cast` payload.
type CastKind uint8

const (
	CastC CastKind = iota
	CastStatic
	CastConst
	CastDynamic
	CastReinterpret
)

// CaptureKind enumerates lambda capture sub-kinds.
type CaptureKind uint8

const (
	CaptureCopy CaptureKind = iota
	CaptureReference
	CaptureVariable
	CaptureThis
	CaptureStarThis
)

// Member classifies operator/conversion member-ness, resolved by
// operator_overload (§4.F) from declared storage, explicit tags, and arity.
type Member uint8

const (
	MemberUnspecified Member = iota
	MemberYes
	MemberNo
)

// Header is the common fields every node carries, embedded into every
// concrete kind struct — per DESIGN.md's decision to combine the teacher's
// per-kind-struct idiom with an embedded-header shared-fields pattern.
type Header struct {
	ID     ID
	Loc    Loc
	Kind   Kind
	Type   typeid.TID
	SName  *sname.SName
	Align  Align
	Parent ID

	// Depth is the "(" nesting level in effect when this node was created
	// during parsing; add_array/add_func/pointer use it to resolve
	// declarator precedence (§4.E).
	Depth int

	IsParamPack bool

	// ParamOf is the function-like node this node is a parameter of, or
	// NoID if this node is not a parameter.
	ParamOf ID
}

func (h *Header) header() *Header { return h }

// Loc is a byte-offset source location, resolved to line/column by
// internal/diagnostic.
type Loc struct {
	Start int32
}

// Align describes a node's alignment requirement: either unspecified, a
// literal power-of-two byte count, or "as type" (alignas(T)).
type Align struct {
	Kind  AlignKind
	Bytes uint32 // meaningful when Kind == AlignBytes
	As    ID     // meaningful when Kind == AlignAsType
}

type AlignKind uint8

const (
	AlignNone AlignKind = iota
	AlignBytes
	AlignAsType
)

// headerer is implemented by every concrete node type, giving arena-wide
// code uniform access to the shared Header without a type switch.
type headerer interface {
	header() *Header
}

// Node is the sum type over every concrete AST node kind. Implementations
// are found in nodes.go. The marker method keeps external packages from
// inventing new node kinds, mirroring the teacher's isDecl()/isStmt()
// sealed-interface idiom.
type Node interface {
	headerer
	isNode()
}
