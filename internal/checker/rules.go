package checker

import (
	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// cBitIntMaxWidth stands in for the spec's compile-time C_BITINT_MAXWIDTH.
const cBitIntMaxWidth = 128

// checkAlignas implements §4.G.alignas.
func (c *Checker) checkAlignas(st state, id ast.ID) bool {
	h := c.arena.Header(id)
	if h.Align.Kind == ast.AlignNone {
		return true
	}
	if h.Type.Storage.Has(typeid.StorageTypedef) {
		c.errf(id, diagnostic.KindAlignas, "typedef cannot be aligned")
		return false
	}
	if h.Type.Storage.Has(typeid.StorageRegister) {
		c.errf(id, diagnostic.KindAlignas, "register cannot combine with alignas")
		return false
	}

	switch h.Kind {
	case ast.KindFunction, ast.KindAppleBlock, ast.KindConstructor, ast.KindDestructor,
		ast.KindOperator, ast.KindUserDefinedConversion, ast.KindUserDefinedLiteral, ast.KindLambda:
		c.errf(id, diagnostic.KindAlignas, "only object kinds can be aligned")
		return false
	case ast.KindClass, ast.KindStruct, ast.KindUnion:
		if !alignableCSU.Has(st.lang) {
			c.errf(id, diagnostic.KindAlignas, "this language does not support aligned class/struct/union")
			return false
		}
	}

	if h.Align.Kind == ast.AlignBytes && !ast.IsValidAlignment(h.Align.Bytes) {
		c.errf(id, diagnostic.KindAlignas, "alignment %d must be a power of two", h.Align.Bytes)
		return false
	}
	if h.Align.Kind == ast.AlignAsType && h.Align.As != ast.NoID {
		if !c.checkAlignas(st, h.Align.As) {
			return false
		}
	}
	return true
}

// checkParamPack implements §4.G.param_pack's leaf-type rule; the
// "function cannot return a parameter pack" half lives in checkFunctionReturn.
func (c *Checker) checkParamPack(st state, id ast.ID) bool {
	leaf := c.arena.Leaf(id)
	h := c.arena.Header(leaf)
	if h == nil || h.Kind != ast.KindBuiltin || !h.Type.Base.Has(typeid.BaseAuto) {
		c.errf(id, diagnostic.KindParamPack, "a parameter pack's leaf type must be auto")
		return false
	}
	return true
}

// checkBuiltin implements §4.G.builtin.
func (c *Checker) checkBuiltin(st state, id ast.ID, n *ast.Builtin) bool {
	h := &n.Header

	if h.Type.Base.Has(typeid.BaseVoid) {
		parentIsCast := false
		if ph := c.arena.Header(h.Parent); ph != nil {
			parentIsCast = ph.Kind == ast.KindCast
		}
		isSoleParam := h.ParamOf != ast.NoID && len(c.arena.Params(h.ParamOf)) == 1
		isTypedef := h.Type.Storage.Has(typeid.StorageTypedef)
		isExtern := h.Type.Storage.Has(typeid.StorageExtern) && externVoidSupported.Has(st.lang)
		isVariable := h.Parent == ast.NoID || h.ParamOf != ast.NoID
		if isVariable && !st.pointeeOfTypedefToVoid && !parentIsCast && !isSoleParam && !isTypedef && !isExtern {
			c.errf(id, diagnostic.KindBuiltin, "a bare void variable is illegal (hint: pointer to void)")
			return false
		}
	}

	if h.Type.Base.Has(typeid.BaseBitInt) {
		switch {
		case n.BitWidth < 1:
			c.errf(id, diagnostic.KindBuiltin, "_BitInt(%d) must be at least 1 bit", n.BitWidth)
			return false
		case h.Type.Base.Has(typeid.BaseSigned) && n.BitWidth < 2:
			c.errf(id, diagnostic.KindBuiltin, "signed _BitInt(%d) must be at least 2 bits", n.BitWidth)
			return false
		case n.BitWidth > cBitIntMaxWidth:
			c.errf(id, diagnostic.KindBuiltin, "_BitInt can be at most %d bits", cBitIntMaxWidth)
			return false
		}
	}

	if h.Type.Base.Has(typeid.BaseSat) && !h.Type.Base.IsAny(typeid.BaseAccum|typeid.BaseFract) {
		c.errf(id, diagnostic.KindBuiltin, "_Sat requires _Accum or _Fract")
		return false
	}
	if h.Type.Storage.IsAny(typeid.StorageUPCRelaxed|typeid.StorageUPCStrict) && !h.Type.Storage.Has(typeid.StorageUPCShared) {
		c.errf(id, diagnostic.KindBuiltin, "relaxed/strict require shared")
		return false
	}

	return true
}

// checkArray implements §4.G.array.
func (c *Checker) checkArray(st state, id ast.ID, n *ast.Array) bool {
	h := &n.Header

	if h.Type.Storage.Has(typeid.StorageAtomic) {
		c.errf(id, diagnostic.KindArray, "_Atomic array is illegal")
		return false
	}
	if n.SizeKind == ast.SizeNone && h.Type.Storage.IsAny(typeid.NonEmpty) {
		c.errf(id, diagnostic.KindArray, "an unsized array cannot carry a non-empty storage qualifier")
		return false
	}
	if n.SizeKind == ast.SizeInt && n.SizeInt == 0 {
		c.errf(id, diagnostic.KindArray, "an array size of 0 is illegal")
		return false
	}
	if n.SizeKind == ast.SizeNamed {
		if st.enclosingFunc != ast.NoID {
			found := false
			for _, p := range c.arena.Params(st.enclosingFunc) {
				if sn := c.arena.Header(p.ID).SName; sn != nil && sn.Local() == n.SizeNamed {
					found = true
					if !c.arena.IsIntegral(p.ID) {
						c.errf(id, diagnostic.KindArray, "named array dimension %q must be integral", n.SizeNamed)
						return false
					}
				}
			}
			if !found {
				c.suggest(id, diagnostic.KindUnknownName, n.SizeNamed, c.nameCandidates(st), "named array dimension %q is not a parameter of the enclosing function", n.SizeNamed)
				return false
			}
		}
	}
	if (n.SizeKind == ast.SizeNamed || n.SizeKind == ast.SizeVLA) && !vlaSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindArray, "this language does not support variable-length arrays")
		return false
	}
	if h.Type.Storage.IsAny(typeid.StorageArrayQualified|typeid.StorageArrayStatic) && !arrayQualifiersSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindArray, "array qualifiers inside [] require language support")
		return false
	}

	ofHeader := c.arena.Header(n.Of)
	if ofHeader == nil {
		return true
	}
	switch ofHeader.Kind {
	case ast.KindBuiltin:
		if b, ok := c.arena.Node(n.Of).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseVoid) {
			c.errf(id, diagnostic.KindArray, "array of void is illegal (hint: pointer to void)")
			return false
		}
	case ast.KindArray:
		if sub, ok := c.arena.Node(n.Of).(*ast.Array); ok && sub.SizeKind == ast.SizeNone {
			c.errf(id, diagnostic.KindArray, "array of unsized array is illegal")
			return false
		}
	case ast.KindFunction, ast.KindAppleBlock:
		c.errf(id, diagnostic.KindArray, "array of function is illegal (hint: array of pointer to function)")
		return false
	case ast.KindReference:
		c.errf(id, diagnostic.KindArray, "array of reference is illegal (hint: reference to array)")
		return false
	case ast.KindRvalueReference:
		c.errf(id, diagnostic.KindArray, "array of rvalue reference is illegal (hint: rvalue reference to array)")
		return false
	}
	return true
}

// checkPointer implements the pointer half of §4.G.pointer.
func (c *Checker) checkPointer(st state, id, to ast.ID) bool {
	if toHeader := c.arena.Header(to); toHeader != nil {
		switch toHeader.Kind {
		case ast.KindReference:
			c.errf(id, diagnostic.KindPointer, "pointer to reference is illegal (hint: reference to pointer)")
			return false
		case ast.KindRvalueReference:
			c.errf(id, diagnostic.KindPointer, "pointer to rvalue reference is illegal (hint: *&)")
			return false
		case ast.KindStructuredBinding:
			c.errf(id, diagnostic.KindPointer, "pointer to a structured binding is illegal")
			return false
		case ast.KindBuiltin:
			if b, ok := c.arena.Node(to).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseAuto) && !autoPointerSupported.Has(st.lang) {
				c.errf(id, diagnostic.KindPointer, "pointer to auto requires language support")
				return false
			}
		}
	}

	h := c.arena.Header(id)
	if h.Type.Storage.Has(typeid.StorageRegister) {
		c.errf(id, diagnostic.KindPointer, "pointer to register is illegal")
		return false
	}
	if h.Type.Attrs.IsAny(typeid.MSCallingConvention) {
		toHeader := c.arena.Header(to)
		toFunc := toHeader != nil && (toHeader.Kind == ast.KindFunction || toHeader.Kind == ast.KindAppleBlock)
		if !toFunc {
			c.errf(id, diagnostic.KindPointer, "Microsoft calling-convention attributes are valid only on functions and pointers-to-function")
			return false
		}
	}
	return true
}

// checkPointerToMember implements the pointer-to-member half of §4.G.pointer.
func (c *Checker) checkPointerToMember(st state, id ast.ID) bool {
	if !pointerToMemberSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindPointer, "pointer-to-member requires language support")
		return false
	}
	return true
}

// checkReference implements §4.G.reference/rvalue-reference.
func (c *Checker) checkReference(st state, id, to ast.ID, rvalue bool) bool {
	set := referenceSupported
	if rvalue {
		set = rvalueReferenceSupported
	}
	if !set.Has(st.lang) {
		c.errf(id, diagnostic.KindReference, "reference requires language support")
		return false
	}

	h := c.arena.Header(id)
	if !h.Type.Storage.Has(typeid.StorageTypedef) && h.Type.Storage.IsAny(typeid.StorageConst|typeid.StorageVolatile) {
		c.errf(id, diagnostic.KindReference, "a direct reference cannot be cv-qualified (hint: reference to const)")
		return false
	}

	if toHeader := c.arena.Header(to); toHeader != nil && toHeader.Kind == ast.KindBuiltin {
		if b, ok := c.arena.Node(to).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseVoid) {
			c.errf(id, diagnostic.KindReference, "reference to void is illegal (hint: pointer to void)")
			return false
		}
	}
	return true
}

// checkEnum implements §4.G.enum.
func (c *Checker) checkEnum(st state, id ast.ID, n *ast.Enum) bool {
	if n.BitWidth > 0 && !enumBitFieldSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindEnum, "bit-field on enum requires language support")
		return false
	}
	if n.Underlying != ast.NoID {
		if !enumUnderlyingSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindEnum, "enum underlying type requires language support")
			return false
		}
		if !c.arena.IsIntegral(n.Underlying) {
			c.errf(id, diagnostic.KindEnum, "enum underlying type must be integral")
			return false
		}
	}
	return true
}

// checkClass covers what §4.G leaves to class/struct/union directly: nothing
// beyond §4.G.alignas and the type pass, both handled elsewhere.
func (c *Checker) checkClass(st state, id ast.ID) bool {
	return true
}

// checkConcept implements §4.G.concept.
func (c *Checker) checkConcept(st state, id ast.ID) bool {
	h := c.arena.Header(id)
	if h.Type.Storage&^conceptAllowedStorage != 0 {
		c.errf(id, diagnostic.KindConcept, "concept cannot carry this storage specifier")
		return false
	}
	if sn := h.SName; sn != nil {
		for i := 0; i < sn.Len()-1; i++ {
			scope, _ := sn.At(i)
			if scope.Kind != sname.KindNamespace && scope.Kind != sname.KindInlineNamespace {
				c.errf(id, diagnostic.KindConcept, "every enclosing scope of a concept must be a namespace")
				return false
			}
		}
	}
	return true
}

// checkCast implements §4.G.cast.
func (c *Checker) checkCast(st state, id ast.ID, n *ast.Cast) bool {
	if n.Kind != ast.CastC && !newStyleCastSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindCast, "new-style casts require language support")
		return false
	}

	toHeader := c.arena.Header(n.To)
	if toHeader != nil {
		if toHeader.Type.Storage.IsAny(typeid.NonEmpty) {
			c.errf(id, diagnostic.KindCast, "a cast's target type cannot carry storage-class bits")
			return false
		}
		if toHeader.Kind == ast.KindBuiltin {
			if b, ok := c.arena.Node(n.To).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseAuto) {
				c.errf(id, diagnostic.KindCast, "a cast's target type cannot be auto")
				return false
			}
		}
		if toHeader.Kind == ast.KindArray {
			c.errf(id, diagnostic.KindCast, "a cast's target type cannot be array")
			return false
		}
		if toHeader.Kind == ast.KindFunction || toHeader.Kind == ast.KindAppleBlock {
			c.errf(id, diagnostic.KindCast, "a cast's target type cannot be function (hint: pointer to function)")
			return false
		}
	}

	switch n.Kind {
	case ast.CastConst:
		if !isPtrOrRefKind(c.arena, n.To) {
			c.errf(id, diagnostic.KindCast, "const_cast target must be pointer, pointer-to-member, reference, or rvalue-reference")
			return false
		}
	case ast.CastDynamic:
		isPtrToClass := c.arena.IsPtrToKindAny(n.To, ast.KindClass, ast.KindStruct, ast.KindUnion)
		isRefToClass := c.arena.IsRefToKindAny(n.To, ast.KindClass, ast.KindStruct, ast.KindUnion)
		if !isPtrToClass && !isRefToClass {
			c.errf(id, diagnostic.KindCast, "dynamic_cast target must be pointer or reference to a class/struct/union")
			return false
		}
	case ast.CastReinterpret:
		if toHeader != nil && toHeader.Kind == ast.KindBuiltin {
			if b, ok := c.arena.Node(n.To).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseVoid) {
				c.errf(id, diagnostic.KindCast, "reinterpret_cast target cannot be void")
				return false
			}
		}
	}
	return true
}

func isPtrOrRefKind(a *ast.Arena, id ast.ID) bool {
	h := a.Header(id)
	if h == nil {
		return false
	}
	switch h.Kind {
	case ast.KindPointer, ast.KindPointerToMember, ast.KindReference, ast.KindRvalueReference:
		return true
	default:
		return false
	}
}

// checkStructuredBinding implements §4.G.structured_binding.
func (c *Checker) checkStructuredBinding(st state, id ast.ID, n *ast.StructuredBinding) bool {
	h := &n.Header
	if h.Type.Storage&^structuredBindingAllowedStorage != 0 {
		c.errf(id, diagnostic.KindStructBind, "structured binding cannot carry this storage specifier")
		return false
	}
	seen := make(map[string]bool, len(n.Names))
	for _, name := range n.Names {
		if seen[name] {
			c.errf(id, diagnostic.KindStructBind, "duplicate structured binding name %q", name)
			return false
		}
		seen[name] = true
	}
	return true
}
