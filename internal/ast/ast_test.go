package ast

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/operator"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

func TestArenaReservesSlotZero(t *testing.T) {
	a := NewArena()
	if a.Node(NoID) != nil {
		t.Error("NoID must never resolve to a node")
	}
	if a.Len() != 1 {
		t.Errorf("fresh arena should have 1 reserved slot, got %d", a.Len())
	}
}

func TestSetParentAndRoot(t *testing.T) {
	a := NewArena()
	inner := a.NewBuiltin(0)
	ptr := a.NewPointer(0)
	a.SetParent(inner, ptr)
	if got := a.Root(inner); got != ptr {
		t.Errorf("Root(inner) = %d, want %d", got, ptr)
	}
}

func TestLeafWalksToLeafSlot(t *testing.T) {
	a := NewArena()
	outer := a.NewPointer(0)
	p, _ := a.Node(outer).(*Pointer)
	inner := a.NewBuiltin(0)
	p.To = inner
	a.SetParent(inner, outer)
	if got := a.Leaf(outer); got != inner {
		t.Errorf("Leaf(outer) = %d, want %d", got, inner)
	}
}

func TestUntypedefChain(t *testing.T) {
	a := NewArena()
	target := a.NewBuiltin(0)
	td1 := a.NewTypedef(target, 0)
	td2 := a.NewTypedef(td1, 0)
	if got := a.Untypedef(td2); got != target {
		t.Errorf("Untypedef(td2) = %d, want %d", got, target)
	}
}

func TestUntypedefQualAccumulates(t *testing.T) {
	a := NewArena()
	target := a.NewBuiltin(0)
	td1 := a.NewTypedef(target, 0)
	a.Header(td1).Type.Storage |= typeid.StorageConst
	td2 := a.NewTypedef(td1, 0)
	a.Header(td2).Type.Storage |= typeid.StorageVolatile

	resolved, qual := a.UntypedefQual(td2)
	if resolved != target {
		t.Errorf("resolved = %d, want %d", resolved, target)
	}
	if !qual.Has(typeid.StorageConst) || !qual.Has(typeid.StorageVolatile) {
		t.Errorf("expected const+volatile accumulated, got %v", qual)
	}
}

func TestUnreferenceCollapsesChain(t *testing.T) {
	a := NewArena()
	target := a.NewBuiltin(0)

	inner := a.NewReference(0)
	a.Node(inner).(*Reference).To = target

	outer := a.NewRvalueReference(0)
	a.Node(outer).(*RvalueReference).To = inner

	if got := a.Unreference(outer); got != target {
		t.Errorf("Unreference should collapse && & chain fully, got %d want %d", got, target)
	}
}

func TestUnreferenceNonReferenceReturnsNoID(t *testing.T) {
	a := NewArena()
	target := a.NewBuiltin(0)
	if got := a.Unreference(target); got != NoID {
		t.Errorf("Unreference on a non-reference should return NoID, got %d", got)
	}
}

func TestUnpointer(t *testing.T) {
	a := NewArena()
	target := a.NewBuiltin(0)
	ptr := a.NewPointer(0)
	a.Node(ptr).(*Pointer).To = target
	if got := a.Unpointer(ptr); got != target {
		t.Errorf("Unpointer = %d, want %d", got, target)
	}
	if got := a.Unpointer(target); got != NoID {
		t.Errorf("Unpointer of a non-pointer should be NoID, got %d", got)
	}
}

func TestIsIntegral(t *testing.T) {
	a := NewArena()
	id := a.NewBuiltin(0)
	a.Header(id).Type.Base = typeid.BaseInt
	if !a.IsIntegral(id) {
		t.Error("plain int should be integral")
	}

	f := a.NewBuiltin(0)
	a.Header(f).Type.Base = typeid.BaseFloat
	if a.IsIntegral(f) {
		t.Error("float should not be integral")
	}
}

func TestIsPtrToKindAny(t *testing.T) {
	a := NewArena()
	cls := a.NewClass(KindStruct, 0)
	ptr := a.NewPointer(0)
	a.Node(ptr).(*Pointer).To = cls
	if !a.IsPtrToKindAny(ptr, KindStruct, KindClass) {
		t.Error("expected pointer-to-struct to match")
	}
	if a.IsPtrToKindAny(ptr, KindEnum) {
		t.Error("did not expect pointer-to-struct to match KindEnum")
	}
}

func TestIsRefToClassSName(t *testing.T) {
	a := NewArena()
	cls := a.NewClass(KindClass, 0)
	c := a.Node(cls).(*Class)
	c.Tag = &SNameHolder{Name: "Widget"}

	ref := a.NewReference(0)
	a.Node(ref).(*Reference).To = cls

	if !a.IsRefToClassSName(ref, "Widget") {
		t.Error("expected reference to class Widget to match")
	}
	if a.IsRefToClassSName(ref, "Gadget") {
		t.Error("did not expect reference to class Widget to match Gadget")
	}
}

func TestIsSizeT(t *testing.T) {
	a := NewArena()
	id := a.NewBuiltin(0)
	sn, _ := sname.FromScopes(sname.Scope{ID: "size_t"})
	a.Header(id).SName = sn
	if !a.IsSizeT(id) {
		t.Error("expected size_t to be recognized")
	}
}

func TestHasESCUParam(t *testing.T) {
	a := NewArena()
	fn := a.NewFunction(KindFunction, 0)
	cls := a.NewClass(KindStruct, 0)
	f := a.Node(fn).(*Function)
	f.Params = []Param{{ID: cls}}
	if !a.HasESCUParam(fn) {
		t.Error("expected struct parameter to count as an ESCU param")
	}
}

func TestTakeStorageMovesBits(t *testing.T) {
	a := NewArena()
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Storage |= typeid.StorageStatic

	fnHeader := &Header{}
	a.TakeStorage(ret, fnHeader)

	if !fnHeader.Type.Storage.Has(typeid.StorageStatic) {
		t.Error("static should have migrated to the function header")
	}
	if a.Header(ret).Type.Storage.Has(typeid.StorageStatic) {
		t.Error("static should have been cleared off the return-type node")
	}
}

func TestOperatorOverloadAssignIsMember(t *testing.T) {
	a := NewArena()
	op := a.NewOperator(0)
	o := a.Node(op).(*Operator)
	o.Op = operator.Assign
	if got := a.OperatorOverload(op, langver.CPP17); got != MemberYes {
		t.Errorf("operator= should resolve to member, got %v", got)
	}
}

func TestOperatorOverloadIncrZeroParamsIsMember(t *testing.T) {
	a := NewArena()
	op := a.NewOperator(0)
	o := a.Node(op).(*Operator)
	o.Op = operator.PreIncr
	if got := a.OperatorOverload(op, langver.CPP17); got != MemberYes {
		t.Errorf("prefix ++ with zero params should resolve to member, got %v", got)
	}
}

func TestOperatorOverloadIncrTwoParamsIsNonMember(t *testing.T) {
	a := NewArena()
	op := a.NewOperator(0)
	o := a.Node(op).(*Operator)
	o.Op = operator.PreIncr
	o.Params = []Param{{ID: a.NewName("x", 0)}, {ID: a.NewBuiltin(0)}}
	if got := a.OperatorOverload(op, langver.CPP17); got != MemberNo {
		t.Errorf("postfix ++ with two params should resolve to non-member, got %v", got)
	}
}

func TestIsValidAlignment(t *testing.T) {
	for _, n := range []uint32{1, 2, 4, 8, 16, 64} {
		if !IsValidAlignment(n) {
			t.Errorf("%d should be a valid power-of-two alignment", n)
		}
	}
	for _, n := range []uint32{0, 3, 5, 6, 100} {
		if IsValidAlignment(n) {
			t.Errorf("%d should not be a valid alignment", n)
		}
	}
}

func TestReturnsKindAndIsFunctionLike(t *testing.T) {
	if !KindFunction.ReturnsKind() {
		t.Error("function should carry a returns slot")
	}
	if KindConstructor.ReturnsKind() {
		t.Error("constructor should not carry a returns slot")
	}
	if !KindConstructor.IsFunctionLike() {
		t.Error("constructor should be function-like")
	}
	if KindArray.IsFunctionLike() {
		t.Error("array should not be function-like")
	}
}
