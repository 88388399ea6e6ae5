// Package checker implements the two-pass semantic checker of spec §4.G:
// a per-kind structural/contextual error pass followed by a per-language
// type-legality pass, both top-down visits that stop at the first failure.
//
// It follows the same "visit top-down, immutable per-call state,
// short-circuit on first failure" shape as the teacher's
// internal/validator.Validator.Validate, turned into an explicit, passed-
// not-embedded state struct per the Design Notes' instruction to make that
// dependency non-hidden instead of living as *Validator receiver fields.
package checker

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/keyword"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/session"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// state is the immutable context threaded through both passes, per §4.G's
// "each pass receives an immutable state" — passed by value, never mutated
// in place, so a caller higher in the recursion never sees a callee's
// change.
type state struct {
	lang langver.Lang

	// pointeeOfTypedefToVoid names the §4.G.builtin "pointee" exception
	// (a void builtin that is the immediate target of a pointer typedef).
	// No check sets it, so it is always false; checkBuiltin already
	// accepts any void builtin that has a non-parameter parent.
	pointeeOfTypedefToVoid bool

	// enclosingFunc is the nearest enclosing function-like node, used to
	// resolve a named VLA dimension against its parameters.
	enclosingFunc ast.ID

	// inMultiDecl is set by CheckList while it checks a list of more than
	// one declarator (§4.G.list). No check reads it.
	inMultiDecl bool
}

// Checker runs both passes of §4.G over one command's AST, reporting into
// a diagnostic.List.
type Checker struct {
	sess  *session.Session
	arena *ast.Arena
	diags *diagnostic.List
}

// New returns a Checker bound to sess's typedef registry/options and arena,
// reporting into diags.
func New(sess *session.Session, arena *ast.Arena, diags *diagnostic.List) *Checker {
	return &Checker{sess: sess, arena: arena, diags: diags}
}

// Check runs check(ast) of §6.2: both passes, top-down, stopping at the
// first failure. It returns true iff every reachable node passed both.
func (c *Checker) Check(root ast.ID) bool {
	st := state{lang: c.sess.Options.Lang}
	if !c.visitError(st, root) {
		return false
	}
	return c.visitType(st, root)
}

// CheckType is check_type(type_ast) of §6.2: the variant used on typedef/
// using right-hand sides, which additionally forbids `auto` leaves and
// `concept` nodes appearing inside a type definition.
func (c *Checker) CheckType(root ast.ID) bool {
	leaf := c.arena.Leaf(root)
	if h := c.arena.Header(leaf); h != nil && h.Kind == ast.KindBuiltin && h.Type.Base.Has(typeid.BaseAuto) {
		c.errf(leaf, diagnostic.KindTypePass, "auto cannot appear as the leaf of a typedef/using right-hand side")
		return false
	}
	if id := c.arena.FindKindAny(root, ast.DirectionToLeaf, ast.KindConcept); id != ast.NoID {
		c.errf(id, diagnostic.KindConcept, "a concept cannot appear inside a type definition")
		return false
	}
	return c.Check(root)
}

func (c *Checker) errf(id ast.ID, kind diagnostic.Kind, format string, args ...any) {
	h := c.arena.Header(id)
	start := 0
	if h != nil {
		start = int(h.Loc.Start)
	}
	c.diags.AddError(kind, start, start+1, fmt.Sprintf(format, args...), nil, "")
}

func (c *Checker) suggest(id ast.ID, kind diagnostic.Kind, near string, candidates []string, format string, args ...any) {
	h := c.arena.Header(id)
	start := 0
	if h != nil {
		start = int(h.Loc.Start)
	}
	c.diags.AddError(kind, start, start+1, fmt.Sprintf(format, args...), candidates, near)
}

// nameCandidates gathers did-you-mean candidates for an unresolved
// identifier encountered mid-check: the enclosing function's parameter
// names (the closest in scope), lang's keyword table, and the typedef
// registry, per §4.I's "drawn from the keyword tables, typedef registry,
// or cdecl keywords according to a requested kind set."
func (c *Checker) nameCandidates(st state) []string {
	var out []string
	if st.enclosingFunc != ast.NoID {
		for _, p := range c.arena.Params(st.enclosingFunc) {
			if sn := c.arena.Header(p.ID).SName; sn != nil {
				out = append(out, sn.Local())
			}
		}
	}
	out = append(out, keyword.All(st.lang)...)
	out = append(out, c.sess.Typedefs.Names()...)
	return out
}

// visitError dispatches node to its kind-specific error-pass rule, then
// recurses into its structural children. Returns false on the first rule
// violated anywhere in the subtree.
func (c *Checker) visitError(st state, id ast.ID) bool {
	if id == ast.NoID {
		return true
	}
	h := c.arena.Header(id)
	if h == nil {
		return true
	}

	switch n := c.arena.Node(id).(type) {
	case *ast.Builtin:
		if !c.checkBuiltin(st, id, n) {
			return false
		}
	case *ast.Array:
		if !c.checkArray(st, id, n) {
			return false
		}
	case *ast.Pointer:
		if !c.checkPointer(st, id, n.To) {
			return false
		}
	case *ast.PointerToMember:
		if !c.checkPointerToMember(st, id) {
			return false
		}
	case *ast.Reference:
		if !c.checkReference(st, id, n.To, false) {
			return false
		}
	case *ast.RvalueReference:
		if !c.checkReference(st, id, n.To, true) {
			return false
		}
	case *ast.Enum:
		if !c.checkEnum(st, id, n) {
			return false
		}
	case *ast.Class:
		if !c.checkClass(st, id) {
			return false
		}
	case *ast.Concept:
		if !c.checkConcept(st, id) {
			return false
		}
	case *ast.Cast:
		if !c.checkCast(st, id, n) {
			return false
		}
	case *ast.StructuredBinding:
		if !c.checkStructuredBinding(st, id, n) {
			return false
		}
	case *ast.Function:
		if !c.checkFunction(st, id, n) {
			return false
		}
	case *ast.Ctor:
		if !c.checkCtorDtor(st, id, true) {
			return false
		}
	case *ast.Dtor:
		if !c.checkCtorDtor(st, id, false) {
			return false
		}
	case *ast.Operator:
		if !c.checkOperator(st, id, n) {
			return false
		}
	case *ast.UserDefinedConversion:
		if !c.checkUDC(st, id, n) {
			return false
		}
	case *ast.UserDefinedLiteral:
		if !c.checkUDL(st, id, n) {
			return false
		}
	case *ast.Lambda:
		if !c.checkLambda(st, id, n) {
			return false
		}
	}

	if !c.checkAlignas(st, id) {
		return false
	}
	if h.IsParamPack && !c.checkParamPack(st, id) {
		return false
	}

	return c.visitErrorChildren(st, id)
}

// visitErrorChildren recurses into every structural child of id: the
// single child slot (of/to/for), plus params/return for function-like
// kinds, threading the enclosing-function state for VLA resolution.
func (c *Checker) visitErrorChildren(st state, id ast.ID) bool {
	if child := c.arena.ChildSlot(id); child != ast.NoID {
		if !c.visitError(st, child) {
			return false
		}
	}

	childSt := st
	if c.arena.Header(id).Kind.IsFunctionLike() {
		childSt.enclosingFunc = id
	}
	for _, p := range c.arena.Params(id) {
		if !c.visitError(childSt, p.ID) {
			return false
		}
	}
	if ret := returnSlot(c.arena, id); ret != ast.NoID {
		if !c.visitError(childSt, ret) {
			return false
		}
	}
	return true
}

// returnSlot returns the "returns" child of a function-like node, or NoID.
func returnSlot(a *ast.Arena, id ast.ID) ast.ID {
	switch n := a.Node(id).(type) {
	case *ast.Function:
		return n.Return
	case *ast.Operator:
		return n.Return
	case *ast.UserDefinedLiteral:
		return n.Return
	case *ast.Lambda:
		return n.Return
	default:
		return ast.NoID
	}
}
