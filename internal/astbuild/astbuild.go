// Package astbuild implements the precedence-sensitive declarator tree
// surgery of spec §4.E: add_array, add_func, patch_placeholder, and
// pointer(host). These are the "structural" half of cdecl's design — get
// them wrong and a correct declaration parses into the wrong tree.
//
// No teacher file does this (WGSL declarators don't nest through C's
// pointer/array precedence rules), so the algorithms here are built fresh
// from the spec's own operational description, using the general style of
// small single-purpose tree-mutation functions operating on an arena-by-id
// model that the teacher's ast.Ref/ast.Index32 ("by id, not raw pointer")
// convention established.
package astbuild

import "github.com/paul-j-lucas/cdecl/internal/ast"

// Builder wraps an arena with the structural operators of §4.E. All
// mutation happens in place on the arena's owned nodes; every function
// returns the id that should now be treated as the root of the subtree
// being built.
type Builder struct {
	a *ast.Arena
}

// New returns a Builder over arena.
func New(arena *ast.Arena) *Builder {
	return &Builder{a: arena}
}

// depth returns a node's depth, treating NoID as having no meaningful depth
// (never wins a depth comparison).
func (b *Builder) depth(id ast.ID) int {
	if h := b.a.Header(id); h != nil {
		return h.Depth
	}
	return -1
}

func (b *Builder) kind(id ast.ID) ast.Kind {
	if h := b.a.Header(id); h != nil {
		return h.Kind
	}
	return ast.KindPlaceholder
}

// migrateRootAnnotations moves host's sname onto newRoot (if newRoot has
// none of its own yet) and transfers any storage/attr bits left on
// whatever is now in the array/function's "of"/return slot onto its own
// type, per §4.E's "these transfers preserve the invariant that storage
// qualifiers live on the outermost declarator they apply to."
func (b *Builder) migrateRootAnnotations(host, newRoot ast.ID) {
	hh, nh := b.a.Header(host), b.a.Header(newRoot)
	if hh == nil || nh == nil {
		return
	}
	if nh.SName == nil || nh.SName.Empty() {
		nh.SName = hh.SName
	}
	nh.Type.Storage |= hh.Type.Storage
	nh.Type.Attrs |= hh.Type.Attrs
}

// AddArray implements add_array(host, array_node, of_node): see §4.E.
func (b *Builder) AddArray(host, arrayNode, ofNode ast.ID) ast.ID {
	if host == ast.NoID {
		return arrayNode
	}

	switch b.kind(host) {
	case ast.KindPlaceholder:
		return b.spliceIntoPlaceholder(host, arrayNode, ofNode)

	case ast.KindArray:
		return b.appendArrayInto(host, arrayNode, ofNode)

	case ast.KindPointer:
		if b.depth(host) > b.depth(arrayNode) {
			to := b.a.ChildSlot(host)
			newTo := b.AddArray(to, arrayNode, ofNode)
			b.a.SetChildSlot(host, newTo)
			return host
		}
		return b.spliceAroundOther(host, arrayNode, ofNode)

	default:
		return b.spliceAroundOther(host, arrayNode, ofNode)
	}
}

// spliceIntoPlaceholder implements the "host is a placeholder" case:
// of_node -> array_node -> placeholder.parent.
func (b *Builder) spliceIntoPlaceholder(placeholder, arrayNode, ofNode ast.ID) ast.ID {
	b.a.SetChildSlot(arrayNode, ofNode)
	parent := b.a.Header(placeholder).Parent
	if parent != ast.NoID {
		b.a.SetChildSlot(parent, arrayNode)
		return b.a.Root(arrayNode)
	}
	return arrayNode
}

// appendArrayInto implements the "host is an array" case: recurse into
// host.of until the chain ends or the pointer-precedence rule fires,
// insert array_node as the new deepest element, then fix its of slot to
// of_node. Appending array 5 and then array 7 onto "array 3 of T" produces
// "array 3 of array 5 of array 7 of T", not "array 7 of array 3 of array 5
// of T".
func (b *Builder) appendArrayInto(host, arrayNode, ofNode ast.ID) ast.ID {
	child := b.a.ChildSlot(host)

	if b.kind(child) == ast.KindPointer && b.depth(child) > b.depth(arrayNode) {
		newChild := b.AddArray(child, arrayNode, ofNode)
		b.a.SetChildSlot(host, newChild)
		return host
	}
	if b.kind(child) == ast.KindArray {
		newChild := b.appendArrayInto(child, arrayNode, ofNode)
		b.a.SetChildSlot(host, newChild)
		return host
	}

	// chain ends here: child is the old deepest slot's contents (typically
	// a placeholder or a builtin base type) — insert array_node in its
	// place and give array_node that same content.
	b.a.SetChildSlot(host, arrayNode)
	b.a.SetChildSlot(arrayNode, ofNode)
	return host
}

// spliceAroundOther implements the "any other kind" case: compare depths;
// if host is deeper, array_node becomes host's child (spliced below); else
// array_node becomes host's parent (spliced above, becoming the new root).
func (b *Builder) spliceAroundOther(host, arrayNode, ofNode ast.ID) ast.ID {
	if b.depth(host) > b.depth(arrayNode) {
		existingChild := b.a.ChildSlot(host)
		if existingChild == ast.NoID {
			existingChild = ofNode
		}
		b.a.SetChildSlot(arrayNode, existingChild)
		b.a.SetChildSlot(host, arrayNode)
		return host
	}
	b.a.SetChildSlot(arrayNode, host)
	b.migrateRootAnnotations(host, arrayNode)
	return arrayNode
}

// AddFunc implements add_func(host, func_node, ret_node): the same
// splicing pattern as AddArray but for function-like nodes, recursing
// while host.depth > func_node.depth through array/pointer/reference
// chains. An array *of* function is tolerated here structurally — the
// checker rejects it and suggests "array of pointer to function".
func (b *Builder) AddFunc(host, funcNode, retNode ast.ID) ast.ID {
	if host == ast.NoID {
		return funcNode
	}

	switch b.kind(host) {
	case ast.KindPlaceholder:
		return b.spliceFuncIntoPlaceholder(host, funcNode, retNode)

	case ast.KindArray, ast.KindPointer, ast.KindReference, ast.KindRvalueReference:
		if b.depth(host) > b.depth(funcNode) {
			child := b.a.ChildSlot(host)
			newChild := b.AddFunc(child, funcNode, retNode)
			b.a.SetChildSlot(host, newChild)
			return host
		}
		return b.spliceFuncAroundOther(host, funcNode, retNode)

	default:
		return b.spliceFuncAroundOther(host, funcNode, retNode)
	}
}

func (b *Builder) spliceFuncIntoPlaceholder(placeholder, funcNode, retNode ast.ID) ast.ID {
	b.setReturn(funcNode, retNode)
	parent := b.a.Header(placeholder).Parent
	if parent != ast.NoID {
		b.a.SetChildSlot(parent, funcNode)
		return b.a.Root(funcNode)
	}
	return funcNode
}

func (b *Builder) spliceFuncAroundOther(host, funcNode, retNode ast.ID) ast.ID {
	if b.depth(host) > b.depth(funcNode) {
		existingChild := b.a.ChildSlot(host)
		if existingChild == ast.NoID {
			existingChild = retNode
		}
		b.setReturn(funcNode, existingChild)
		b.a.SetChildSlot(host, funcNode)
		return host
	}
	b.setReturn(funcNode, host)
	b.migrateRootAnnotations(host, funcNode)
	return funcNode
}

// setReturn wires ret into funcNode's Return slot, for every function-like
// kind that carries one (§3.3: constructors and destructors never do, and
// AddFunc/Pointer never build those here).
func (b *Builder) setReturn(funcNode, ret ast.ID) {
	switch n := b.a.Node(funcNode).(type) {
	case *ast.Function:
		n.Return = ret
	case *ast.Operator:
		n.Return = ret
	case *ast.UserDefinedLiteral:
		n.Return = ret
	case *ast.Lambda:
		n.Return = ret
	}
	b.a.SetParent(ret, funcNode)
}

// PatchPlaceholder implements patch_placeholder(type_ast, decl_ast): joins
// a type (e.g. "int") with a declarator (e.g. "*x") by finding the unique
// placeholder in decl_ast and either replacing it with type_ast, or
// hoisting type_ast above decl_ast when type_ast.depth > decl_ast.depth.
// Storage/attribute bits on the type migrate onto the declarator; the
// declarator's sname is filled in from the type if empty.
func (b *Builder) PatchPlaceholder(typeAST, declAST ast.ID) ast.ID {
	if declAST == ast.NoID {
		return typeAST
	}
	if b.kind(declAST) == ast.KindPlaceholder {
		if th, dh := b.a.Header(typeAST), b.a.Header(declAST); th != nil && dh != nil && (th.SName == nil || th.SName.Empty()) {
			th.SName = dh.SName
		}
		return typeAST
	}
	// Strict inequality: a type parsed no deeper than its declarator (the
	// overwhelmingly common case, e.g. plain "int *x") always fills the
	// declarator's placeholder in place, keeping the declarator as root.
	// Hoisting only applies when the type itself was parsed inside more
	// parens than the declarator — e.g. a parenthesized compound type-id
	// wrapping a bare abstract declarator.
	if b.depth(typeAST) > b.depth(declAST) {
		return b.hoistAbove(typeAST, declAST)
	}

	placeholder := b.findPlaceholder(declAST)
	if placeholder == ast.NoID {
		return declAST
	}
	parent := b.a.Header(placeholder).Parent
	if parent != ast.NoID {
		b.a.SetChildSlot(parent, typeAST)
	}

	declHeader := b.a.Header(declAST)
	typeHeader := b.a.Header(typeAST)
	if declHeader != nil && typeHeader != nil {
		declHeader.Type.Storage |= typeHeader.Type.Storage
		declHeader.Type.Attrs |= typeHeader.Type.Attrs
		if declHeader.SName == nil || declHeader.SName.Empty() {
			declHeader.SName = typeHeader.SName
		}
	}
	return b.a.Root(declAST)
}

// hoistAbove splices typeAST above declAST, with declAST occupying
// whatever single child slot typeAST has (if any) — used when the type
// itself nests deeper than the declarator, e.g. a parenthesized type-id.
func (b *Builder) hoistAbove(typeAST, declAST ast.ID) ast.ID {
	if b.a.ChildSlot(typeAST) != ast.NoID || isSingleSlotKind(b.kind(typeAST)) {
		b.a.SetChildSlot(typeAST, declAST)
	}
	declHeader := b.a.Header(declAST)
	typeHeader := b.a.Header(typeAST)
	if declHeader != nil && typeHeader != nil && (typeHeader.SName == nil || typeHeader.SName.Empty()) {
		typeHeader.SName = declHeader.SName
	}
	return typeAST
}

func isSingleSlotKind(k ast.Kind) bool {
	switch k {
	case ast.KindArray, ast.KindPointer, ast.KindPointerToMember,
		ast.KindReference, ast.KindRvalueReference, ast.KindTypedef,
		ast.KindUserDefinedConversion, ast.KindCast:
		return true
	default:
		return false
	}
}

// findPlaceholder finds the unique placeholder node reachable by walking
// single-child slots from declAST.
func (b *Builder) findPlaceholder(declAST ast.ID) ast.ID {
	cur := declAST
	for cur != ast.NoID {
		if b.kind(cur) == ast.KindPlaceholder {
			return cur
		}
		cur = b.a.ChildSlot(cur)
	}
	return ast.NoID
}

// Pointer implements pointer(host): wraps host in a fresh pointer node
// that adopts host's sname.
func (b *Builder) Pointer(host ast.ID) ast.ID {
	depth := b.depth(host)
	p := b.a.NewPointer(depth)
	b.a.SetChildSlot(p, host)
	if hh, ph := b.a.Header(host), b.a.Header(p); hh != nil && ph != nil {
		ph.SName = hh.SName
	}
	return p
}

// AppendParam appends a parameter to any function-like node's parameter
// list, per §4.E's append_param.
func (b *Builder) AppendParam(funcNode ast.ID, param ast.Param) {
	switch n := b.a.Node(funcNode).(type) {
	case *ast.Function:
		n.Params = append(n.Params, param)
	case *ast.Ctor:
		n.Params = append(n.Params, param)
	case *ast.Operator:
		n.Params = append(n.Params, param)
	case *ast.UserDefinedLiteral:
		n.Params = append(n.Params, param)
	case *ast.Lambda:
		n.Params = append(n.Params, param)
	}
	b.a.SetParent(param.ID, funcNode)
	if h := b.a.Header(param.ID); h != nil {
		h.ParamOf = funcNode
	}
}

// AppendCapture appends a capture to a lambda's capture list, per §4.E's
// append_capture.
func (b *Builder) AppendCapture(lambdaNode ast.ID, capture ast.Capture) {
	if l, ok := b.a.Node(lambdaNode).(*ast.Lambda); ok {
		l.Captures = append(l.Captures, capture)
	}
}
