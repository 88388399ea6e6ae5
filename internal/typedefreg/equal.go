package typedefreg

import "github.com/paul-j-lucas/cdecl/internal/ast"

// Equal reports whether the AST rooted at (aArena, aID) is structurally
// equal to the one rooted at (bArena, bID): same kind, same type bits at
// every node, and the same shape of child slots/params/captures. Two
// arenas holding the same content compare equal even though their node ids
// differ, since ids are arena-local allocation slots, not identity.
//
// This is what §6.3's add "returns a previously equal record" and R4's
// "typedef T X; using X = ...; round-trip ... and back" rely on: a second,
// textually different declaration of the same type must collapse onto the
// registry's existing record rather than insert a duplicate.
func Equal(aArena *ast.Arena, aID ast.ID, bArena *ast.Arena, bID ast.ID) bool {
	if aID == ast.NoID || bID == ast.NoID {
		return aID == bID
	}
	aNode, bNode := aArena.Node(aID), bArena.Node(bID)
	if aNode == nil || bNode == nil {
		return aNode == nil && bNode == nil
	}
	aHdr, bHdr := aArena.Header(aID), bArena.Header(bID)
	if aHdr.Kind != bHdr.Kind || !aHdr.Type.Equal(bHdr.Type) {
		return false
	}

	switch a := aNode.(type) {
	case *ast.Placeholder, *ast.Variadic, *ast.Dtor:
		return true
	case *ast.Name:
		b := bNode.(*ast.Name)
		return a.Ident == b.Ident
	case *ast.Builtin:
		b := bNode.(*ast.Builtin)
		return a.BitWidth == b.BitWidth
	case *ast.Enum:
		b := bNode.(*ast.Enum)
		return a.BitWidth == b.BitWidth &&
			sNameHolderEqual(a.Tag, b.Tag) &&
			Equal(aArena, a.Underlying, bArena, b.Underlying)
	case *ast.Class:
		b := bNode.(*ast.Class)
		return sNameHolderEqual(a.Tag, b.Tag)
	case *ast.Concept:
		b := bNode.(*ast.Concept)
		return sNameHolderEqual(a.Tag, b.Tag)
	case *ast.Typedef:
		b := bNode.(*ast.Typedef)
		return Equal(aArena, a.For, bArena, b.For)
	case *ast.Array:
		b := bNode.(*ast.Array)
		return a.SizeKind == b.SizeKind && a.SizeInt == b.SizeInt &&
			a.SizeNamed == b.SizeNamed && Equal(aArena, a.Of, bArena, b.Of)
	case *ast.Pointer:
		b := bNode.(*ast.Pointer)
		return Equal(aArena, a.To, bArena, b.To)
	case *ast.PointerToMember:
		b := bNode.(*ast.PointerToMember)
		return sNameHolderEqual(a.Class, b.Class) && Equal(aArena, a.To, bArena, b.To)
	case *ast.Reference:
		b := bNode.(*ast.Reference)
		return Equal(aArena, a.To, bArena, b.To)
	case *ast.RvalueReference:
		b := bNode.(*ast.RvalueReference)
		return Equal(aArena, a.To, bArena, b.To)
	case *ast.Function:
		b := bNode.(*ast.Function)
		return a.Member == b.Member &&
			Equal(aArena, a.Return, bArena, b.Return) &&
			paramsEqual(aArena, a.Params, bArena, b.Params)
	case *ast.Ctor:
		b := bNode.(*ast.Ctor)
		return paramsEqual(aArena, a.Params, bArena, b.Params)
	case *ast.Operator:
		b := bNode.(*ast.Operator)
		return a.Op == b.Op && a.Member == b.Member &&
			Equal(aArena, a.Return, bArena, b.Return) &&
			paramsEqual(aArena, a.Params, bArena, b.Params)
	case *ast.UserDefinedConversion:
		b := bNode.(*ast.UserDefinedConversion)
		return Equal(aArena, a.To, bArena, b.To)
	case *ast.UserDefinedLiteral:
		b := bNode.(*ast.UserDefinedLiteral)
		return Equal(aArena, a.Return, bArena, b.Return) &&
			paramsEqual(aArena, a.Params, bArena, b.Params)
	case *ast.Lambda:
		b := bNode.(*ast.Lambda)
		if len(a.Captures) != len(b.Captures) {
			return false
		}
		for i := range a.Captures {
			if a.Captures[i] != b.Captures[i] {
				return false
			}
		}
		return Equal(aArena, a.Return, bArena, b.Return) &&
			paramsEqual(aArena, a.Params, bArena, b.Params)
	case *ast.StructuredBinding:
		b := bNode.(*ast.StructuredBinding)
		if len(a.Names) != len(b.Names) {
			return false
		}
		for i := range a.Names {
			if a.Names[i] != b.Names[i] {
				return false
			}
		}
		return true
	case *ast.Cast:
		b := bNode.(*ast.Cast)
		return a.Kind == b.Kind && Equal(aArena, a.To, bArena, b.To)
	default:
		return false
	}
}

func sNameHolderEqual(a, b *ast.SNameHolder) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Name == b.Name
}

func paramsEqual(aArena *ast.Arena, a []ast.Param, bArena *ast.Arena, b []ast.Param) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i].Default != b[i].Default {
			return false
		}
		if !Equal(aArena, a[i].ID, bArena, b[i].ID) {
			return false
		}
	}
	return true
}
