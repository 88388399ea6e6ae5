package ast

import (
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/operator"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// qualMask is every cv/ref qualifier bit untypedef_qual accumulates while
// following a chain of typedefs.
const qualMask = typeid.StorageConst | typeid.StorageVolatile | typeid.StorageRestrict |
	typeid.StorageRefQualifier | typeid.StorageRvalueRefQualifier

// Untypedef follows Typedef.For links until it reaches a non-typedef node,
// per §4.F's untypedef(ast).
func (a *Arena) Untypedef(id ID) ID {
	cur := id
	for {
		td, ok := a.Node(cur).(*Typedef)
		if !ok {
			return cur
		}
		cur = td.For
	}
}

// UntypedefQual is Untypedef but also ORs together every cv/ref qualifier
// bit seen on the typedef nodes walked over, per §4.F's
// untypedef_qual(ast, out qual_bits).
func (a *Arena) UntypedefQual(id ID) (ID, typeid.Storage) {
	var qual typeid.Storage
	cur := id
	for {
		td, ok := a.Node(cur).(*Typedef)
		if !ok {
			return cur, qual
		}
		if h := a.Header(cur); h != nil {
			qual |= h.Type.Storage & qualMask
		}
		cur = td.For
	}
}

// SubTypedef builds a transient copy of a typedef's target with the
// typedef's own qualifiers, alignment, and bit-width projected onto it, per
// §4.F's sub_typedef(ast) — used to descend into the aliased type while
// preserving the alias's position-specific annotations. The copy is not
// added to the arena's owned graph; callers use it for inspection only.
func (a *Arena) SubTypedef(id ID) Node {
	td, ok := a.Node(id).(*Typedef)
	if !ok {
		return a.Node(id)
	}
	target := a.Node(td.For)
	if target == nil {
		return nil
	}
	clone := cloneNode(target)
	h := clone.header()
	h.Type.Storage |= td.Header.Type.Storage
	h.Type.Attrs |= td.Header.Type.Attrs
	h.Align = td.Header.Align
	if b, ok := clone.(*Builtin); ok {
		if src, ok := target.(*Builtin); ok {
			b.BitWidth = src.BitWidth
		}
	}
	return clone
}

// cloneNode makes a shallow value copy of n behind a fresh pointer, so
// SubTypedef's caller can mutate the copy's Header without disturbing the
// arena's real node.
func cloneNode(n Node) Node {
	switch v := n.(type) {
	case *Placeholder:
		c := *v
		return &c
	case *Name:
		c := *v
		return &c
	case *Builtin:
		c := *v
		return &c
	case *Enum:
		c := *v
		return &c
	case *Class:
		c := *v
		return &c
	case *Concept:
		c := *v
		return &c
	case *Typedef:
		c := *v
		return &c
	case *Array:
		c := *v
		return &c
	case *Pointer:
		c := *v
		return &c
	case *PointerToMember:
		c := *v
		return &c
	case *Reference:
		c := *v
		return &c
	case *RvalueReference:
		c := *v
		return &c
	case *Function:
		c := *v
		return &c
	case *Ctor:
		c := *v
		return &c
	case *Dtor:
		c := *v
		return &c
	case *Operator:
		c := *v
		return &c
	case *UserDefinedConversion:
		c := *v
		return &c
	case *UserDefinedLiteral:
		c := *v
		return &c
	case *Lambda:
		c := *v
		return &c
	case *StructuredBinding:
		c := *v
		return &c
	case *Cast:
		c := *v
		return &c
	case *Variadic:
		c := *v
		return &c
	default:
		return n
	}
}

// Unpointer untypedefs, then follows one pointer level, per §4.F.
// Returns NoID if the (untypedef'd) node isn't a pointer.
func (a *Arena) Unpointer(id ID) ID {
	u := a.Untypedef(id)
	if p, ok := a.Node(u).(*Pointer); ok {
		return p.To
	}
	return NoID
}

// Unreference untypedefs, then follows reference levels in a loop to
// implement reference collapsing (`& &` and `&& &` collapse to `&`, `&& &&`
// collapses to `&&`) per §3.3's "Ownership and lifecycle" note: a chain of
// references unwraps entirely in one call.
func (a *Arena) Unreference(id ID) ID {
	cur := a.Untypedef(id)
	found := false
	for {
		switch n := a.Node(cur).(type) {
		case *Reference:
			cur = a.Untypedef(n.To)
			found = true
			continue
		case *RvalueReference:
			cur = a.Untypedef(n.To)
			found = true
			continue
		}
		break
	}
	if !found {
		return NoID
	}
	return cur
}

// UnrvalueReference untypedefs, then follows one rvalue-reference level.
// Returns NoID if the (untypedef'd) node isn't an rvalue reference.
func (a *Arena) UnrvalueReference(id ID) ID {
	u := a.Untypedef(id)
	if r, ok := a.Node(u).(*RvalueReference); ok {
		return r.To
	}
	return NoID
}

// IsBuiltinAny reports whether id, after untypedef, is a builtin whose base
// bits intersect mask.
func (a *Arena) IsBuiltinAny(id ID, mask typeid.Base) bool {
	u := a.Untypedef(id)
	h := a.Header(u)
	if h == nil || h.Kind != KindBuiltin {
		return false
	}
	return h.Type.Base.IsAny(mask)
}

// integralBits is every Base bit that denotes an integral type.
const integralBits = typeid.BaseBool | typeid.BaseChar | typeid.BaseChar8T |
	typeid.BaseChar16T | typeid.BaseChar32T | typeid.BaseWCharT | typeid.BaseInt |
	typeid.BaseShort | typeid.BaseLong | typeid.BaseLongLong | typeid.BaseBitInt |
	typeid.BaseEnum

// IsIntegral reports whether id (after untypedef) denotes an integral type.
func (a *Arena) IsIntegral(id ID) bool {
	return a.IsBuiltinAny(id, integralBits)
}

// IsPtrToKindAny reports whether id is a pointer to a node whose Kind is in mask.
func (a *Arena) IsPtrToKindAny(id ID, kinds ...Kind) bool {
	to := a.Unpointer(id)
	if to == NoID {
		return false
	}
	to = a.Untypedef(to)
	h := a.Header(to)
	if h == nil {
		return false
	}
	for _, k := range kinds {
		if h.Kind == k {
			return true
		}
	}
	return false
}

// IsRefToKindAny reports whether id is a reference (or rvalue reference) to
// a node whose Kind is in kinds.
func (a *Arena) IsRefToKindAny(id ID, kinds ...Kind) bool {
	to := a.Unreference(id)
	if to == NoID {
		return false
	}
	h := a.Header(to)
	if h == nil {
		return false
	}
	for _, k := range kinds {
		if h.Kind == k {
			return true
		}
	}
	return false
}

// IsPtrToTIDAny reports whether id is a pointer to a node whose Type
// intersects mask.
func (a *Arena) IsPtrToTIDAny(id ID, mask typeid.TID) bool {
	to := a.Unpointer(id)
	if to == NoID {
		return false
	}
	h := a.Header(a.Untypedef(to))
	return h != nil && h.Type.IsAny(mask)
}

// IsRefToTIDAny reports whether id is a reference to a node whose Type
// intersects mask.
func (a *Arena) IsRefToTIDAny(id ID, mask typeid.TID) bool {
	to := a.Unreference(id)
	if to == NoID {
		return false
	}
	h := a.Header(to)
	return h != nil && h.Type.IsAny(mask)
}

// IsRefToClassSName reports whether id is a reference to a class/struct/
// union node whose tag sname equals name.
func (a *Arena) IsRefToClassSName(id ID, name string) bool {
	to := a.Unreference(id)
	if to == NoID {
		return false
	}
	c, ok := a.Node(to).(*Class)
	return ok && c.Tag != nil && c.Tag.Name == name
}

// IsSizeT reports whether the node at id carries an sname whose local name
// is one of the standard unsigned-size typedef spellings. It does not
// follow typedefs and does not look at the node's kind.
func (a *Arena) IsSizeT(id ID) bool {
	h := a.Header(id)
	if h == nil || h.SName == nil {
		return false
	}
	switch h.SName.Local() {
	case "size_t", "std::size_t", "rsize_t":
		return true
	default:
		return false
	}
}

// IsRegister reports whether id carries the `register` storage bit.
func (a *Arena) IsRegister(id ID) bool {
	h := a.Header(id)
	return h != nil && h.Type.Storage.Has(typeid.StorageRegister)
}

// HasESCUParam reports whether any parameter of a function-like node at id
// is (or is a reference to) an enum/struct/class/union type — §4.F's
// has_escu_param.
func (a *Arena) HasESCUParam(id ID) bool {
	escu := []Kind{KindEnum, KindStruct, KindClass, KindUnion}
	for _, p := range a.Params(id) {
		if a.isESCU(p.ID) || a.IsRefToKindAny(p.ID, escu...) {
			return true
		}
	}
	return false
}

func (a *Arena) isESCU(id ID) bool {
	h := a.Header(a.Untypedef(id))
	if h == nil {
		return false
	}
	switch h.Kind {
	case KindEnum, KindStruct, KindClass, KindUnion:
		return true
	default:
		return false
	}
}

// Params returns the parameter list of any function-like node, or nil.
func (a *Arena) Params(id ID) []Param {
	switch n := a.Node(id).(type) {
	case *Function:
		return n.Params
	case *Ctor:
		return n.Params
	case *Operator:
		return n.Params
	case *UserDefinedLiteral:
		return n.Params
	case *Lambda:
		return n.Params
	default:
		return nil
	}
}

// memberOnlyStorage is any storage bit that can only appear on a member
// function, used by OperatorOverload's step 3.
const memberOnlyStorage = typeid.StorageConst | typeid.StorageVolatile |
	typeid.StorageRefQualifier | typeid.StorageRvalueRefQualifier |
	typeid.StorageVirtual | typeid.StoragePureVirtual

// OperatorOverload resolves the member/non-member/unspecified status of an
// operator AST per §4.F's operator_overload algorithm:
//  1. the operator's declared overloadability (member/non-member/either),
//  2. an explicit user tag already set on the node,
//  3. member-only storage qualifiers (const/volatile/ref-qualifiers/
//     virtual all imply a member function),
//  4. special cases for new/delete (member iff named or static) and ++/--
//     (member if zero or one int parameter, non-member if two),
//  5. arity match against the operator table's (params_min, params_max).
func (a *Arena) OperatorOverload(id ID, lang langver.Lang) Member {
	op, ok := a.Node(id).(*Operator)
	if !ok {
		return MemberUnspecified
	}
	row, ok := operator.Table(op.Op, lang)
	if !ok {
		return MemberUnspecified
	}
	switch row.Overload {
	case operator.Member:
		return MemberYes
	case operator.NonMember:
		return MemberNo
	}

	if op.Member != MemberUnspecified {
		return op.Member
	}

	if op.Header.Type.Storage.IsAny(memberOnlyStorage) {
		return MemberYes
	}

	switch op.Op {
	case operator.New, operator.NewArray, operator.Delete, operator.DeleteArray:
		named := op.Header.SName != nil && !op.Header.SName.Empty()
		if named || op.Header.Type.Storage.Has(typeid.StorageStatic) {
			return MemberYes
		}
		return MemberUnspecified
	case operator.PreIncr, operator.PreDecr:
		switch len(op.Params) {
		case 0:
			return MemberYes
		case 1:
			if a.IsBuiltinAny(op.Params[0].ID, typeid.BaseInt) {
				return MemberYes
			}
			return MemberUnspecified
		case 2:
			return MemberNo
		}
	}

	switch len(op.Params) {
	case row.ParamsMin:
		return MemberYes
	case row.ParamsMax:
		return MemberNo
	default:
		return MemberUnspecified
	}
}
