package astbuild

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

func TestAddArrayAppendsAtDeepestElement(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	base := a.NewBuiltin(0)
	arr3 := a.NewArray(0)
	a.SetChildSlot(arr3, base)

	arr5 := a.NewArray(0)
	host := b.AddArray(arr3, arr5, base)
	if host != arr3 {
		t.Fatalf("host should remain arr3, got %d", host)
	}
	if a.ChildSlot(arr3) != arr5 {
		t.Error("arr3.of should now be arr5")
	}
	if a.ChildSlot(arr5) != base {
		t.Error("arr5.of should be the base type")
	}

	arr7 := a.NewArray(0)
	host = b.AddArray(host, arr7, base)
	if host != arr3 {
		t.Fatalf("host should still be arr3, got %d", host)
	}
	if a.ChildSlot(arr3) != arr5 {
		t.Error("arr3.of should still be arr5 after second append")
	}
	if a.ChildSlot(arr5) != arr7 {
		t.Error("arr5.of should now be arr7")
	}
	if a.ChildSlot(arr7) != base {
		t.Error("arr7.of should be the base type")
	}
}

// TestAddArrayPointerPrecedence builds the tree for
// "int (*(*x)[3])[5]" ("pointer to array 3 of pointer to array 5 of int")
// and verifies the pointer-precedence recursion in §4.E fires correctly.
func TestAddArrayPointerPrecedence(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	base := a.NewBuiltin(0)

	innerPtr := a.NewPointer(2)
	a.SetChildSlot(innerPtr, base)

	arr3 := a.NewArray(1)
	a.SetChildSlot(arr3, innerPtr)

	outerPtr := a.NewPointer(2)
	a.SetChildSlot(outerPtr, arr3)

	arr5 := a.NewArray(0)
	root := b.AddArray(outerPtr, arr5, base)

	if root != outerPtr {
		t.Fatalf("root should remain outerPtr, got %d", root)
	}
	if a.ChildSlot(outerPtr) != arr3 {
		t.Error("outerPtr.to should still be arr3")
	}
	if a.ChildSlot(arr3) != innerPtr {
		t.Error("arr3.of should still be innerPtr")
	}
	if a.ChildSlot(innerPtr) != arr5 {
		t.Error("innerPtr.to should now be arr5: pointer recursed past its own depth")
	}
	if a.ChildSlot(arr5) != base {
		t.Error("arr5.of should be the base type")
	}
}

// TestAddArrayMigratesStorageOntoNewRoot covers "static int a[3]": the
// static bit parsed onto the base builtin must end up on the array node
// once the array becomes the outermost declarator, per §4.E's rule that
// storage qualifiers live on the outermost declarator.
func TestAddArrayMigratesStorageOntoNewRoot(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	base := a.NewBuiltin(0)
	a.Header(base).Type.Storage |= typeid.StorageStatic

	arr := a.NewArray(0)
	root := b.AddArray(base, arr, base)
	if root != arr {
		t.Fatalf("array should become the new root, got %d", root)
	}
	if !a.Header(root).Type.Storage.Has(typeid.StorageStatic) {
		t.Error("static storage should have migrated onto the array node")
	}
}

func TestPointerWrapsAndAdoptsSName(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	host := a.NewBuiltin(0)
	sn, _ := sname.FromScopes(sname.Scope{ID: "x"})
	a.Header(host).SName = sn

	p := b.Pointer(host)
	if a.ChildSlot(p) != host {
		t.Error("pointer should wrap host")
	}
	if a.Header(p).SName != sn {
		t.Error("pointer should adopt host's sname")
	}
}

func TestPatchPlaceholderReplacesUniquePlaceholder(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	typeAST := a.NewBuiltin(0)
	ptr := a.NewPointer(0) // ptr.to starts as a placeholder

	result := b.PatchPlaceholder(typeAST, ptr)
	if result != ptr {
		t.Fatalf("result should be ptr (the declarator root), got %d", result)
	}
	if a.ChildSlot(ptr) != typeAST {
		t.Error("the placeholder inside ptr should have been replaced by typeAST")
	}
}

func TestPatchPlaceholderHoistsDeeperType(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	// A type parsed inside more parens than its declarator (depth 2 vs 0)
	// hoists above the declarator instead of filling its placeholder.
	typeAST := a.NewPointer(2)
	declAST := a.NewBuiltin(0)

	result := b.PatchPlaceholder(typeAST, declAST)
	if result != typeAST {
		t.Fatalf("result should be typeAST (hoisted above), got %d", result)
	}
	if a.ChildSlot(typeAST) != declAST {
		t.Error("typeAST should now wrap declAST")
	}
}

func TestAppendParamSetsParamOf(t *testing.T) {
	a := ast.NewArena()
	b := New(a)

	fn := a.NewFunction(ast.KindFunction, 0)
	p := a.NewBuiltin(0)
	b.AppendParam(fn, ast.Param{ID: p})

	if got := a.Header(p).ParamOf; got != fn {
		t.Errorf("param's ParamOf = %d, want %d", got, fn)
	}
	f := a.Node(fn).(*ast.Function)
	if len(f.Params) != 1 || f.Params[0].ID != p {
		t.Error("function should have the appended param")
	}
}
