package ast

import (
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// Arena owns every node created for a single command (§3.3: "every node is
// owned by a per-command arena"). Nodes reference each other by ID, never
// by pointer, so the whole tree can be copied, reset, or discarded by
// dropping the arena — mirroring the teacher's id-based Ref/Index32 model.
type Arena struct {
	nodes []Node
}

// NewArena returns an empty arena. Slot 0 is reserved so the zero ID
// (NoID) never resolves to a real node.
func NewArena() *Arena {
	return &Arena{nodes: make([]Node, 1, 64)}
}

func (a *Arena) add(n Node) ID {
	id := ID(len(a.nodes))
	h := n.header()
	h.ID = id
	a.nodes = append(a.nodes, n)
	return id
}

// Node resolves an id to its node, or nil if the id is NoID or out of range.
func (a *Arena) Node(id ID) Node {
	if id == NoID || int(id) >= len(a.nodes) {
		return nil
	}
	return a.nodes[id]
}

// Header resolves an id directly to its shared Header, or nil.
func (a *Arena) Header(id ID) *Header {
	if n := a.Node(id); n != nil {
		return n.header()
	}
	return nil
}

// Len reports how many nodes (including the reserved slot 0) the arena holds.
func (a *Arena) Len() int { return len(a.nodes) }

// --- constructors, one per kind (§4.D) ---

func (a *Arena) NewPlaceholder(depth int) ID {
	return a.add(&Placeholder{Header{Kind: KindPlaceholder, Depth: depth}})
}

func (a *Arena) NewName(ident string, depth int) ID {
	return a.add(&Name{Header: Header{Kind: KindName, Depth: depth}, Ident: ident})
}

func (a *Arena) NewBuiltin(depth int) ID {
	return a.add(&Builtin{Header: Header{Kind: KindBuiltin, Depth: depth}})
}

func (a *Arena) NewEnum(depth int) ID {
	return a.add(&Enum{Header: Header{Kind: KindEnum, Depth: depth}})
}

func (a *Arena) NewClass(kind Kind, depth int) ID {
	return a.add(&Class{Header: Header{Kind: kind, Depth: depth}})
}

func (a *Arena) NewConcept(depth int) ID {
	return a.add(&Concept{Header: Header{Kind: KindConcept, Depth: depth}})
}

func (a *Arena) NewTypedef(forID ID, depth int) ID {
	return a.add(&Typedef{Header: Header{Kind: KindTypedef, Depth: depth}, For: forID})
}

func (a *Arena) NewArray(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&Array{Header: Header{Kind: KindArray, Depth: depth}, Of: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewPointer(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&Pointer{Header: Header{Kind: KindPointer, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewPointerToMember(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&PointerToMember{Header: Header{Kind: KindPointerToMember, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewReference(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&Reference{Header: Header{Kind: KindReference, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewRvalueReference(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&RvalueReference{Header: Header{Kind: KindRvalueReference, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewFunction(kind Kind, depth int) ID {
	return a.add(&Function{Header: Header{Kind: kind, Depth: depth}})
}

func (a *Arena) NewCtor(depth int) ID {
	return a.add(&Ctor{Header: Header{Kind: KindConstructor, Depth: depth}})
}

func (a *Arena) NewDtor(depth int) ID {
	return a.add(&Dtor{Header: Header{Kind: KindDestructor, Depth: depth}})
}

func (a *Arena) NewOperator(depth int) ID {
	return a.add(&Operator{Header: Header{Kind: KindOperator, Depth: depth}})
}

func (a *Arena) NewUserDefinedConversion(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&UserDefinedConversion{Header: Header{Kind: KindUserDefinedConversion, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewUserDefinedLiteral(depth int) ID {
	return a.add(&UserDefinedLiteral{Header: Header{Kind: KindUserDefinedLiteral, Depth: depth}})
}

func (a *Arena) NewLambda(depth int) ID {
	return a.add(&Lambda{Header: Header{Kind: KindLambda, Depth: depth}})
}

func (a *Arena) NewStructuredBinding(depth int) ID {
	return a.add(&StructuredBinding{Header: Header{Kind: KindStructuredBinding, Depth: depth}})
}

func (a *Arena) NewCast(depth int) ID {
	placeholder := a.NewPlaceholder(depth)
	id := a.add(&Cast{Header: Header{Kind: KindCast, Depth: depth}, To: placeholder})
	a.Header(placeholder).Parent = id
	return id
}

func (a *Arena) NewVariadic(depth int) ID {
	return a.add(&Variadic{Header{Kind: KindVariadic, Depth: depth}})
}

// SetParent updates both the child's Parent link and is the single place
// that mutates that relationship, per §4.D's set_parent(child, parent).
func (a *Arena) SetParent(child, parent ID) {
	if h := a.Header(child); h != nil {
		h.Parent = parent
	}
}

// ChildSlot exposes childSlot for astbuild's tree-surgery operators, which
// need to read a node's single structural child without a type switch of
// their own.
func (a *Arena) ChildSlot(id ID) ID { return a.childSlot(id) }

// SetChildSlot sets the single structural child slot ("of"/"to"/"for") of
// the node at id to child, and updates child's parent link to id in the
// same step. This is the generic splice primitive astbuild's
// add_array/add_func/patch_placeholder build on.
func (a *Arena) SetChildSlot(id, child ID) {
	switch n := a.Node(id).(type) {
	case *Array:
		n.Of = child
	case *Pointer:
		n.To = child
	case *PointerToMember:
		n.To = child
	case *Reference:
		n.To = child
	case *RvalueReference:
		n.To = child
	case *Typedef:
		n.For = child
	case *UserDefinedConversion:
		n.To = child
	case *Cast:
		n.To = child
	default:
		return
	}
	if child != NoID {
		a.SetParent(child, id)
	}
}

// childSlot returns the id stored in a node's single structural child slot
// ("of"/"to"), or NoID if the kind has none or has more than one (function
// params aren't reachable through this single-slot walk).
func (a *Arena) childSlot(id ID) ID {
	switch n := a.Node(id).(type) {
	case *Array:
		return n.Of
	case *Pointer:
		return n.To
	case *PointerToMember:
		return n.To
	case *Reference:
		return n.To
	case *RvalueReference:
		return n.To
	case *Typedef:
		return n.For
	case *UserDefinedConversion:
		return n.To
	case *Cast:
		return n.To
	default:
		return NoID
	}
}

// Leaf walks the of/to chain from root until it reaches a node with no
// further single child slot, per §4.D's leaf(root).
func (a *Arena) Leaf(root ID) ID {
	cur := root
	for {
		next := a.childSlot(cur)
		if next == NoID {
			return cur
		}
		cur = next
	}
}

// Root walks Parent links up from node until it reaches one with no parent,
// per §4.D's root(node).
func (a *Arena) Root(node ID) ID {
	cur := node
	for {
		h := a.Header(cur)
		if h == nil || h.Parent == NoID {
			return cur
		}
		cur = h.Parent
	}
}

// Direction selects which way find_name/find_kind_any/find_type_any walk.
type Direction uint8

const (
	DirectionToLeaf Direction = iota
	DirectionToRoot
)

func (a *Arena) walk(start ID, dir Direction) []ID {
	var ids []ID
	cur := start
	for cur != NoID {
		ids = append(ids, cur)
		if dir == DirectionToRoot {
			h := a.Header(cur)
			if h == nil {
				break
			}
			cur = h.Parent
		} else {
			cur = a.childSlot(cur)
		}
	}
	return ids
}

// FindName returns the first non-empty sname found while walking from node
// in the given direction, or nil.
func (a *Arena) FindName(node ID, dir Direction) *sname.SName {
	for _, id := range a.walk(node, dir) {
		if h := a.Header(id); h != nil && h.SName != nil && !h.SName.Empty() {
			return h.SName
		}
	}
	return nil
}

// FindKindAny returns the first node id, walking from node in the given
// direction, whose Kind is in kinds; NoID if none match.
func (a *Arena) FindKindAny(node ID, dir Direction, kinds ...Kind) ID {
	for _, id := range a.walk(node, dir) {
		h := a.Header(id)
		if h == nil {
			continue
		}
		for _, k := range kinds {
			if h.Kind == k {
				return id
			}
		}
	}
	return NoID
}

// FindTypeAny returns the first node id, walking from node in the given
// direction, whose Type has any bit in mask; NoID if none match.
func (a *Arena) FindTypeAny(node ID, dir Direction, mask typeid.TID) ID {
	for _, id := range a.walk(node, dir) {
		h := a.Header(id)
		if h == nil {
			continue
		}
		if h.Type.IsAny(mask) {
			return id
		}
	}
	return NoID
}

// TakeStorage moves every storage/attr bit off the node at id onto holder
// and clears them from id, per §4.D's take_storage — used to migrate
// `static` from a return-type builtin onto its enclosing function.
func (a *Arena) TakeStorage(id ID, holder *Header) {
	h := a.Header(id)
	if h == nil {
		return
	}
	holder.Type.Storage = holder.Type.Storage.Union(h.Type.Storage)
	holder.Type.Attrs = holder.Type.Attrs.Union(h.Type.Attrs)
	h.Type.Storage = 0
	h.Type.Attrs = 0
}
