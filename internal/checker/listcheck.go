package checker

import (
	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// CheckList implements §4.G.list check for declarators sharing a single
// type prefix, e.g. `int i, *j;`: the auto-prefix language gate, the
// no-parameter-pack-in-a-list rule, and duplicate-unscoped-name handling
// (a C tentative redefinition with the same type is fine; anything else
// is a redefinition error), before running the normal two-pass check on
// each declarator.
func (c *Checker) CheckList(decls []ast.ID) bool {
	if len(decls) == 0 {
		return true
	}
	st := state{lang: c.sess.Options.Lang, inMultiDecl: len(decls) > 1}

	if len(decls) > 1 {
		leaf := c.arena.Leaf(decls[0])
		if h := c.arena.Header(leaf); h != nil && h.Kind == ast.KindBuiltin &&
			h.Type.Base.Has(typeid.BaseAuto) && !multiDeclAutoSupported.Has(st.lang) {
			c.errf(decls[0], diagnostic.KindListCheck, "a multi-declarator auto type requires language support")
			return false
		}
		for _, d := range decls {
			if h := c.arena.Header(d); h != nil && h.IsParamPack {
				c.errf(d, diagnostic.KindListCheck, "a parameter pack cannot appear in a multi-declarator list")
				return false
			}
		}
	}

	if !c.checkListDuplicates(st, decls) {
		return false
	}

	for _, d := range decls {
		if !c.Check(d) {
			return false
		}
	}
	return true
}

func (c *Checker) checkListDuplicates(st state, decls []ast.ID) bool {
	seen := make(map[string]ast.ID, len(decls))
	for _, d := range decls {
		h := c.arena.Header(d)
		if h == nil || h.SName == nil || h.SName.Len() != 1 {
			continue
		}
		name := h.SName.Local()
		if name == "" {
			continue
		}
		prior, ok := seen[name]
		if !ok {
			seen[name] = d
			continue
		}
		priorH := c.arena.Header(prior)
		sameType := priorH != nil && priorH.Kind == h.Kind && priorH.Type.Equal(h.Type)
		if st.lang.IsC() && sameType {
			continue
		}
		if sameType {
			c.errf(d, diagnostic.KindListCheck, "redefinition of %q", name)
		} else {
			c.errf(d, diagnostic.KindListCheck, "redefinition of %q with a different type", name)
		}
		return false
	}
	return true
}
