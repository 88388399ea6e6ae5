package ast

// Import deep-copies the subtree rooted at srcID, owned by src, into a,
// returning the new root's id. It exists because a typedef record's AST
// (internal/typedefreg.Record) is owned by whatever arena built it, while
// every later use-site (a variable declared with that typedef's name)
// builds into its own per-command arena — per §3.3's "every node is owned
// by a per-command arena" and §5's "a command is the unit of work" with
// its own arena stack, a node from one command's arena can never simply be
// linked into another's tree. Import is the one place that crosses that
// boundary, by copying rather than aliasing.
//
// newDepth becomes every copied node's Depth (the "(" nesting level in
// effect at the use site), since depth describes where a fragment was
// parsed, not an intrinsic property of the type it describes.
func (a *Arena) Import(src *Arena, srcID ID, newDepth int) ID {
	if srcID == NoID {
		return NoID
	}
	n := src.Node(srcID)
	if n == nil {
		return NoID
	}
	srcHeader := n.header()

	var newID ID
	switch v := n.(type) {
	case *Placeholder:
		newID = a.NewPlaceholder(newDepth)

	case *Name:
		newID = a.add(&Name{Header: Header{Kind: KindName, Depth: newDepth}, Ident: v.Ident})

	case *Builtin:
		newID = a.add(&Builtin{Header: Header{Kind: KindBuiltin, Depth: newDepth}, BitWidth: v.BitWidth})

	case *Enum:
		e := &Enum{Header: Header{Kind: KindEnum, Depth: newDepth}, Tag: cloneTag(v.Tag), BitWidth: v.BitWidth, Underlying: NoID}
		newID = a.add(e)
		if v.Underlying != NoID {
			e.Underlying = a.Import(src, v.Underlying, newDepth)
			a.SetParent(e.Underlying, newID)
		}

	case *Class:
		newID = a.add(&Class{Header: Header{Kind: v.Kind, Depth: newDepth}, Tag: cloneTag(v.Tag)})

	case *Concept:
		newID = a.add(&Concept{Header: Header{Kind: KindConcept, Depth: newDepth}, Tag: cloneTag(v.Tag)})

	case *Typedef:
		forID := a.Import(src, v.For, newDepth)
		newID = a.add(&Typedef{Header: Header{Kind: KindTypedef, Depth: newDepth}, For: forID})
		a.SetParent(forID, newID)

	case *Array:
		ofID := a.Import(src, v.Of, newDepth)
		newID = a.add(&Array{Header: Header{Kind: KindArray, Depth: newDepth}, Of: ofID, SizeKind: v.SizeKind, SizeInt: v.SizeInt, SizeNamed: v.SizeNamed})
		a.SetParent(ofID, newID)

	case *Pointer:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&Pointer{Header: Header{Kind: KindPointer, Depth: newDepth}, To: toID})
		a.SetParent(toID, newID)

	case *PointerToMember:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&PointerToMember{Header: Header{Kind: KindPointerToMember, Depth: newDepth}, To: toID, Class: cloneTag(v.Class)})
		a.SetParent(toID, newID)

	case *Reference:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&Reference{Header: Header{Kind: KindReference, Depth: newDepth}, To: toID})
		a.SetParent(toID, newID)

	case *RvalueReference:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&RvalueReference{Header: Header{Kind: KindRvalueReference, Depth: newDepth}, To: toID})
		a.SetParent(toID, newID)

	case *Function:
		f := &Function{Header: Header{Kind: v.Kind, Depth: newDepth}, Member: v.Member, Return: NoID}
		newID = a.add(f)
		f.Return = a.Import(src, v.Return, newDepth)
		a.SetParent(f.Return, newID)
		f.Params = a.importParams(src, v.Params, newDepth, newID)

	case *Ctor:
		c := &Ctor{Header: Header{Kind: KindConstructor, Depth: newDepth}}
		newID = a.add(c)
		c.Params = a.importParams(src, v.Params, newDepth, newID)

	case *Dtor:
		newID = a.add(&Dtor{Header: Header{Kind: KindDestructor, Depth: newDepth}})

	case *Operator:
		o := &Operator{Header: Header{Kind: KindOperator, Depth: newDepth}, Op: v.Op, Member: v.Member, Return: NoID}
		newID = a.add(o)
		o.Return = a.Import(src, v.Return, newDepth)
		a.SetParent(o.Return, newID)
		o.Params = a.importParams(src, v.Params, newDepth, newID)

	case *UserDefinedConversion:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&UserDefinedConversion{Header: Header{Kind: KindUserDefinedConversion, Depth: newDepth}, To: toID})
		a.SetParent(toID, newID)

	case *UserDefinedLiteral:
		u := &UserDefinedLiteral{Header: Header{Kind: KindUserDefinedLiteral, Depth: newDepth}, Return: NoID}
		newID = a.add(u)
		u.Return = a.Import(src, v.Return, newDepth)
		a.SetParent(u.Return, newID)
		u.Params = a.importParams(src, v.Params, newDepth, newID)

	case *Lambda:
		l := &Lambda{Header: Header{Kind: KindLambda, Depth: newDepth}, Captures: append([]Capture(nil), v.Captures...), Return: NoID}
		newID = a.add(l)
		l.Return = a.Import(src, v.Return, newDepth)
		a.SetParent(l.Return, newID)
		l.Params = a.importParams(src, v.Params, newDepth, newID)

	case *StructuredBinding:
		newID = a.add(&StructuredBinding{Header: Header{Kind: KindStructuredBinding, Depth: newDepth}, Names: append([]string(nil), v.Names...)})

	case *Cast:
		toID := a.Import(src, v.To, newDepth)
		newID = a.add(&Cast{Header: Header{Kind: KindCast, Depth: newDepth}, To: toID, Kind: v.Kind})
		a.SetParent(toID, newID)

	case *Variadic:
		newID = a.add(&Variadic{Header{Kind: KindVariadic, Depth: newDepth}})

	default:
		return NoID
	}

	dstHeader := a.Header(newID)
	dstHeader.Type = srcHeader.Type
	dstHeader.Align = srcHeader.Align
	dstHeader.IsParamPack = srcHeader.IsParamPack
	return newID
}

func (a *Arena) importParams(src *Arena, params []Param, newDepth int, owner ID) []Param {
	if len(params) == 0 {
		return nil
	}
	out := make([]Param, len(params))
	for i, p := range params {
		id := a.Import(src, p.ID, newDepth)
		a.SetParent(id, owner)
		if h := a.Header(id); h != nil {
			h.ParamOf = owner
		}
		out[i] = Param{ID: id, Default: p.Default}
	}
	return out
}

func cloneTag(t *SNameHolder) *SNameHolder {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
