package checker

import (
	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// visitType implements §4.G.type pass: per-language type-triple legality,
// constexpr-void and C-only constexpr interactions, the object/function
// attribute split, param-pack re-check, and restrict placement. It mirrors
// visitError's top-down, stop-on-first-failure shape.
func (c *Checker) visitType(st state, id ast.ID) bool {
	if id == ast.NoID {
		return true
	}
	h := c.arena.Header(id)
	if h == nil {
		return true
	}

	if !c.checkLegalLanguage(st, id, h) {
		return false
	}

	if h.Kind.IsFunctionLike() && h.Type.Storage.Has(typeid.StorageConstexpr) && !constexprVoidReturnSupported.Has(st.lang) {
		if ret := returnSlot(c.arena, id); ret != ast.NoID && c.arena.IsBuiltinAny(ret, typeid.BaseVoid) {
			c.errf(id, diagnostic.KindTypePass, "a constexpr function returning void requires language support")
			return false
		}
	}

	if h.Kind != ast.KindArray && h.Parent != ast.NoID && h.Type.Storage.IsAny(typeid.NonEmpty) {
		c.errf(id, diagnostic.KindTypePass, "illegal for %s", h.Kind)
		return false
	}

	if st.lang.IsC() && h.Type.Storage.Has(typeid.StorageConstexpr) &&
		h.Type.Storage.IsAny(typeid.StorageAtomic|typeid.StorageRestrict|typeid.StorageVolatile) {
		c.errf(id, diagnostic.KindTypePass, "constexpr cannot combine with _Atomic, restrict, or volatile")
		return false
	}

	if !h.Kind.IsFunctionLike() && h.Type.Attrs&^typeid.ObjectOnly != 0 {
		c.errf(id, diagnostic.KindTypePass, "attribute not allowed on a non-function-like node")
		return false
	}

	if h.IsParamPack && !c.checkParamPack(st, id) {
		return false
	}

	if !c.checkRestrict(st, id, h) {
		return false
	}

	if child := c.arena.ChildSlot(id); child != ast.NoID {
		if !c.visitType(st, child) {
			return false
		}
	}
	for _, p := range c.arena.Params(id) {
		if !c.visitType(st, p.ID) {
			return false
		}
	}
	if ret := returnSlot(c.arena, id); ret != ast.NoID {
		if !c.visitType(st, ret) {
			return false
		}
	}
	return true
}

// checkLegalLanguage implements the type pass's main bullet: compute the
// language set node.Type is legal in and compare it against the current
// language, choosing the "illegal in C/C++" wording when the legal set is
// restricted to one family, else "illegal for <kind>".
func (c *Checker) checkLegalLanguage(st state, id ast.ID, h *ast.Header) bool {
	legal := h.Type.LegalLanguages()
	if legal.Has(st.lang) {
		return true
	}
	switch {
	case legal.OnlyC():
		c.errf(id, diagnostic.KindTypePass, "illegal in C++")
	case legal.OnlyCPP():
		c.errf(id, diagnostic.KindTypePass, "illegal in C")
	default:
		c.errf(id, diagnostic.KindTypePass, "illegal for %s", h.Kind)
	}
	return false
}

// checkRestrict implements §4.G.restrict.
func (c *Checker) checkRestrict(st state, id ast.ID, h *ast.Header) bool {
	if !h.Type.Storage.Has(typeid.StorageRestrict) {
		return true
	}
	switch h.Kind {
	case ast.KindArray:
		if st.lang.IsC() {
			return true
		}
		if st.lang.IsCPP() && h.ParamOf != ast.NoID {
			return true
		}
		c.errf(id, diagnostic.KindRestrict, "restrict on array requires C, or __restrict on a C++ function parameter")
		return false
	case ast.KindPointer:
		if p, ok := c.arena.Node(id).(*ast.Pointer); ok {
			if toH := c.arena.Header(p.To); toH != nil && toH.Kind.IsFunctionLike() {
				c.errf(id, diagnostic.KindRestrict, "restrict pointer to a non-object kind is illegal")
				return false
			}
		}
		return true
	case ast.KindFunction, ast.KindAppleBlock, ast.KindOperator, ast.KindReference, ast.KindRvalueReference,
		ast.KindUserDefinedConversion:
		return true
	case ast.KindBuiltin, ast.KindClass, ast.KindStruct, ast.KindUnion, ast.KindConcept, ast.KindEnum,
		ast.KindPointerToMember:
		c.errf(id, diagnostic.KindRestrict, "restrict is illegal here")
		return false
	default:
		return true
	}
}
