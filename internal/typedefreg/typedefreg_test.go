package typedefreg

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/sname"
)

func nameFor(t *testing.T, id string) *sname.SName {
	t.Helper()
	sn, err := sname.FromScopes(sname.Scope{ID: id})
	if err != nil {
		t.Fatalf("FromScopes(%q): %v", id, err)
	}
	return sn
}

func TestAddInsertsNewRecord(t *testing.T) {
	r := New()
	a := ast.NewArena()
	root := a.NewBuiltin(0)

	rec := Record{SName: nameFor(t, "myint"), Arena: a, Root: root, Flags: DeclTypedef}
	got, inserted := r.Add(rec)
	if !inserted {
		t.Fatal("first Add should insert")
	}
	if got.SName.Local() != "myint" {
		t.Errorf("SName = %q, want myint", got.SName.Local())
	}
}

func TestAddReturnsExistingForEqualAST(t *testing.T) {
	r := New()
	a := ast.NewArena()
	root1 := a.NewBuiltin(0)
	root2 := a.NewBuiltin(0)

	r.Add(Record{SName: nameFor(t, "myint"), Arena: a, Root: root1, Flags: DeclTypedef})
	_, inserted := r.Add(Record{SName: nameFor(t, "myint"), Arena: a, Root: root2, Flags: DeclUsing})
	if inserted {
		t.Error("second Add with an equal AST should not insert a new record")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestFindNameAndFindSName(t *testing.T) {
	r := New()
	a := ast.NewArena()
	root := a.NewBuiltin(0)
	r.Add(Record{SName: nameFor(t, "myint"), Arena: a, Root: root})

	if r.FindName("myint") == nil {
		t.Error("FindName should find the inserted record")
	}
	if r.FindName("nope") != nil {
		t.Error("FindName should return nil for an unknown name")
	}
	if r.FindSName(nameFor(t, "myint")) == nil {
		t.Error("FindSName should find the inserted record")
	}
}

func TestRollbackUndoesCurrentGeneration(t *testing.T) {
	r := New()
	a := ast.NewArena()

	r.Begin()
	r.Add(Record{SName: nameFor(t, "committed"), Arena: a, Root: a.NewBuiltin(0)})
	r.Commit()

	r.Begin()
	r.Add(Record{SName: nameFor(t, "failed"), Arena: a, Root: a.NewBuiltin(0)})
	r.Rollback()

	if r.FindName("committed") == nil {
		t.Error("Rollback should not remove entries from a prior, committed generation")
	}
	if r.FindName("failed") != nil {
		t.Error("Rollback should remove entries added in the rolled-back generation")
	}
}

func TestEqualDistinguishesDifferentBaseTypes(t *testing.T) {
	a := ast.NewArena()
	intID := a.NewBuiltin(0)
	arrID := a.NewArray(0)
	a.SetChildSlot(arrID, intID)

	if Equal(a, intID, a, arrID) {
		t.Error("a builtin and an array should not compare equal")
	}
	if !Equal(a, intID, a, intID) {
		t.Error("a node should compare equal to itself")
	}
}

func TestEqualComparesArrayShape(t *testing.T) {
	a := ast.NewArena()
	base1 := a.NewBuiltin(0)
	arr3 := a.NewArray(0)
	a.SetChildSlot(arr3, base1)
	a.Node(arr3).(*ast.Array).SizeKind = ast.SizeInt
	a.Node(arr3).(*ast.Array).SizeInt = 3

	base2 := a.NewBuiltin(0)
	arr5 := a.NewArray(0)
	a.SetChildSlot(arr5, base2)
	a.Node(arr5).(*ast.Array).SizeKind = ast.SizeInt
	a.Node(arr5).(*ast.Array).SizeInt = 5

	if Equal(a, arr3, a, arr5) {
		t.Error("array 3 of int and array 5 of int should not compare equal")
	}
}
