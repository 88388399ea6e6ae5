package checker

import (
	"testing"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/operator"
	"github.com/paul-j-lucas/cdecl/internal/session"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// newChecker builds a Checker over a fresh arena for lang, with its own
// diagnostic list so each test can inspect exactly its own failures.
func newChecker(lang langver.Lang) (*Checker, *ast.Arena, *diagnostic.List) {
	sess := session.New(session.Options{Lang: lang})
	arena := ast.NewArena()
	diags := diagnostic.NewList("")
	return New(sess, arena, diags), arena, diags
}

func TestCheckBuiltinBareVoidIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	v := a.NewBuiltin(0)
	a.Header(v).Type.Base = typeid.BaseVoid
	if c.Check(v) {
		t.Error("a bare void variable should be rejected")
	}
}

func TestCheckBuiltinVoidTypedefIsLegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	v := a.NewBuiltin(0)
	a.Header(v).Type.Base = typeid.BaseVoid
	a.Header(v).Type.Storage |= typeid.StorageTypedef
	if !c.Check(v) {
		t.Error("a void typedef should be accepted")
	}
}

func TestCheckBuiltinBitIntTooNarrowIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C23)
	b := a.NewBuiltin(0)
	bi, _ := a.Node(b).(*ast.Builtin)
	bi.Header.Type.Base = typeid.BaseBitInt
	bi.BitWidth = 0
	if c.Check(b) {
		t.Error("a _BitInt of width 0 should be rejected")
	}
}

func TestCheckArrayOfFunctionIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	f, _ := a.Node(fn).(*ast.Function)
	f.Return = ret
	a.SetParent(ret, fn)

	arr := a.NewArray(0)
	arrN, _ := a.Node(arr).(*ast.Array)
	arrN.Of = fn
	arrN.SizeKind = ast.SizeInt
	arrN.SizeInt = 4
	a.SetParent(fn, arr)

	if c.Check(arr) {
		t.Error("array of function should be rejected")
	}
}

// TestCheckArrayUnknownNamedDimensionIsRejected covers §4.I/§7's "Unknown
// name" rule: a named VLA dimension that matches none of the enclosing
// function's parameters is an unresolved identifier, not a silently
// accepted one.
func TestCheckArrayUnknownNamedDimensionIsRejected(t *testing.T) {
	c, a, diags := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)

	n := newIntParam(a, "n")

	of := a.NewBuiltin(0)
	a.Header(of).Type.Base = typeid.BaseInt
	arr := a.NewArray(0)
	arrN, _ := a.Node(arr).(*ast.Array)
	arrN.Of = of
	arrN.SizeKind = ast.SizeNamed
	arrN.SizeNamed = "bogus"
	arrParam := ast.Param{ID: arr}

	f.Params = []ast.Param{n, arrParam}
	a.SetParent(n.ID, fn)
	a.Header(n.ID).ParamOf = fn
	a.SetParent(arr, fn)
	a.Header(arr).ParamOf = fn

	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseVoid
	f.Return = ret
	a.SetParent(ret, fn)

	if c.Check(fn) {
		t.Fatal("a named dimension matching no parameter should be rejected")
	}
	if diags.Count() == 0 || diags.Diagnostics()[0].Kind != diagnostic.KindUnknownName {
		t.Errorf("expected a %s diagnostic, got %v", diagnostic.KindUnknownName, diags.Diagnostics())
	}
}

func TestCheckArrayNamedDimensionMatchingParamIsAccepted(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)

	n := newIntParam(a, "n")

	of := a.NewBuiltin(0)
	a.Header(of).Type.Base = typeid.BaseInt
	arr := a.NewArray(0)
	arrN, _ := a.Node(arr).(*ast.Array)
	arrN.Of = of
	arrN.SizeKind = ast.SizeNamed
	arrN.SizeNamed = "n"
	arrParam := ast.Param{ID: arr}

	f.Params = []ast.Param{n, arrParam}
	a.SetParent(n.ID, fn)
	a.Header(n.ID).ParamOf = fn
	a.SetParent(arr, fn)
	a.Header(arr).ParamOf = fn

	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseVoid
	f.Return = ret
	a.SetParent(ret, fn)

	if !c.Check(fn) {
		t.Error("a named dimension matching an integral parameter should be accepted")
	}
}

func TestCheckArrayZeroSizeIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	of := a.NewBuiltin(0)
	a.Header(of).Type.Base = typeid.BaseInt
	arr := a.NewArray(0)
	n, _ := a.Node(arr).(*ast.Array)
	n.Of = of
	n.SizeKind = ast.SizeInt
	n.SizeInt = 0
	a.SetParent(of, arr)
	if c.Check(arr) {
		t.Error("a zero-size array should be rejected")
	}
}

func TestCheckPointerToReferenceIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	target := a.NewBuiltin(0)
	a.Header(target).Type.Base = typeid.BaseInt
	ref := a.NewReference(0)
	a.Node(ref).(*ast.Reference).To = target
	a.SetParent(target, ref)

	ptr := a.NewPointer(0)
	a.Node(ptr).(*ast.Pointer).To = ref
	a.SetParent(ref, ptr)

	if c.Check(ptr) {
		t.Error("pointer to reference should be rejected")
	}
}

func TestCheckReferenceToVoidIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	void := a.NewBuiltin(0)
	a.Header(void).Type.Base = typeid.BaseVoid
	ref := a.NewReference(0)
	a.Node(ref).(*ast.Reference).To = void
	a.SetParent(void, ref)
	if c.Check(ref) {
		t.Error("reference to void should be rejected")
	}
}

func TestCheckReferenceRequiresCPP(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	target := a.NewBuiltin(0)
	a.Header(target).Type.Base = typeid.BaseInt
	ref := a.NewReference(0)
	a.Node(ref).(*ast.Reference).To = target
	a.SetParent(target, ref)
	if c.Check(ref) {
		t.Error("reference in plain C should be rejected")
	}
}

func TestCheckRvalueReferenceRequiresCPP11(t *testing.T) {
	c, a, _ := newChecker(langver.CPP03)
	target := a.NewBuiltin(0)
	a.Header(target).Type.Base = typeid.BaseInt
	ref := a.NewRvalueReference(0)
	a.Node(ref).(*ast.RvalueReference).To = target
	a.SetParent(target, ref)
	if c.Check(ref) {
		t.Error("rvalue reference before C++11 should be rejected")
	}
}

func TestCheckEnumBitFieldRequiresC23(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	e := a.NewEnum(0)
	en, _ := a.Node(e).(*ast.Enum)
	en.BitWidth = 4
	if c.Check(e) {
		t.Error("an enum bit-field before C23 should be rejected")
	}
}

func TestCheckConceptEverywhereUnderNamespace(t *testing.T) {
	c, a, _ := newChecker(langver.CPP20)
	concept := a.NewConcept(0)
	sn, _ := sname.FromScopes(sname.Scope{ID: "Widget", Kind: sname.KindClass}, sname.Scope{ID: "foo", Kind: sname.KindClass})
	a.Header(concept).SName = sn
	if c.Check(concept) {
		t.Error("a concept enclosed by a non-namespace scope should be rejected")
	}
}

func TestCheckCastConstCastRequiresPointerOrReference(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	to := a.NewBuiltin(0)
	a.Header(to).Type.Base = typeid.BaseInt
	cast := a.NewCast(0)
	cn, _ := a.Node(cast).(*ast.Cast)
	cn.To = to
	cn.Kind = ast.CastConst
	a.SetParent(to, cast)
	if c.Check(cast) {
		t.Error("const_cast to a non-pointer/reference target should be rejected")
	}
}

func TestCheckStructuredBindingDuplicateNameIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	sb := a.NewStructuredBinding(0)
	n, _ := a.Node(sb).(*ast.StructuredBinding)
	n.Names = []string{"a", "b", "a"}
	if c.Check(sb) {
		t.Error("duplicate structured binding names should be rejected")
	}
}

func newIntParam(a *ast.Arena, name string) ast.Param {
	p := a.NewBuiltin(0)
	a.Header(p).Type.Base = typeid.BaseInt
	if name != "" {
		sn, _ := sname.FromScopes(sname.Scope{ID: name, Kind: sname.KindUnknown})
		a.Header(p).SName = sn
	}
	return ast.Param{ID: p}
}

func TestCheckFunctionMainBadReturnIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseFloat
	f.Return = ret
	a.SetParent(ret, fn)
	sn, _ := sname.FromScopes(sname.Scope{ID: "main", Kind: sname.KindUnknown})
	a.Header(fn).SName = sn
	if c.Check(fn) {
		t.Error("main returning float should be rejected")
	}
}

func TestCheckFunctionDuplicateParamNameIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseVoid
	a.Header(ret).Type.Storage |= typeid.StorageTypedef
	f.Return = ret
	a.SetParent(ret, fn)

	p1 := newIntParam(a, "x")
	p2 := newIntParam(a, "x")
	f.Params = []ast.Param{p1, p2}
	a.SetParent(p1.ID, fn)
	a.SetParent(p2.ID, fn)
	a.Header(p1.ID).ParamOf = fn
	a.Header(p2.ID).ParamOf = fn

	if c.Check(fn) {
		t.Error("a function with two identically-named parameters should be rejected")
	}
}

func TestCheckFunctionVariadicNotLastIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	f.Return = ret
	a.SetParent(ret, fn)

	variadic := a.NewVariadic(0)
	p := newIntParam(a, "x")
	f.Params = []ast.Param{{ID: variadic}, p}
	a.SetParent(variadic, fn)
	a.SetParent(p.ID, fn)
	a.Header(variadic).ParamOf = fn
	a.Header(p.ID).ParamOf = fn

	if c.Check(fn) {
		t.Error("a variadic parameter not in last position should be rejected")
	}
}

func TestCheckFunctionLoneVariadicRequiresCPP(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	f.Return = ret
	a.SetParent(ret, fn)

	variadic := a.NewVariadic(0)
	f.Params = []ast.Param{{ID: variadic}}
	a.SetParent(variadic, fn)
	a.Header(variadic).ParamOf = fn

	if c.Check(fn) {
		t.Error("a lone variadic parameter in C should be rejected")
	}
}

func TestCheckFunctionReturningArrayIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	arr := a.NewArray(0)
	an, _ := a.Node(arr).(*ast.Array)
	of := a.NewBuiltin(0)
	a.Header(of).Type.Base = typeid.BaseInt
	an.Of = of
	an.SizeKind = ast.SizeInt
	an.SizeInt = 3
	a.SetParent(of, arr)
	f.Return = arr
	a.SetParent(arr, fn)
	if c.Check(fn) {
		t.Error("a function returning array should be rejected")
	}
}

func TestCheckFunctionVoidParamMustBeAlone(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	f.Return = ret
	a.SetParent(ret, fn)

	void := a.NewBuiltin(0)
	a.Header(void).Type.Base = typeid.BaseVoid
	p := newIntParam(a, "x")
	f.Params = []ast.Param{{ID: void}, p}
	a.SetParent(void, fn)
	a.SetParent(p.ID, fn)
	a.Header(void).ParamOf = fn
	a.Header(p.ID).ParamOf = fn

	if c.Check(fn) {
		t.Error("void combined with another parameter should be rejected")
	}
}

func TestCheckFunctionThisParamRequiresCPP23(t *testing.T) {
	c, a, _ := newChecker(langver.CPP20)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	f.Return = ret
	a.SetParent(ret, fn)

	this := a.NewBuiltin(0)
	a.Header(this).Type.Base = typeid.BaseInt
	a.Header(this).Type.Storage |= typeid.StorageThis
	f.Params = []ast.Param{{ID: this}}
	a.SetParent(this, fn)
	a.Header(this).ParamOf = fn

	sn, _ := sname.FromScopes(
		sname.Scope{ID: "Widget", Kind: sname.KindClass},
		sname.Scope{ID: "f", Kind: sname.KindUnknown},
	)
	a.Header(fn).SName = sn

	if c.Check(fn) {
		t.Error("a this parameter before C++23 should be rejected")
	}
}

func TestCheckFunctionVirtualOutsideClassIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	fn := a.NewFunction(ast.KindFunction, 0)
	f, _ := a.Node(fn).(*ast.Function)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseVoid
	f.Return = ret
	a.SetParent(ret, fn)
	a.Header(fn).Type.Storage |= typeid.StorageVirtual
	sn, _ := sname.FromScopes(sname.Scope{ID: "f", Kind: sname.KindUnknown})
	a.Header(fn).SName = sn
	if c.Check(fn) {
		t.Error("virtual on a non-member function should be rejected")
	}
}

func TestCheckCtorNameMustMatchEnclosingClass(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	ctor := a.NewCtor(0)
	sn, _ := sname.FromScopes(
		sname.Scope{ID: "Widget", Kind: sname.KindClass},
		sname.Scope{ID: "NotWidget", Kind: sname.KindUnknown},
	)
	a.Header(ctor).SName = sn
	if c.Check(ctor) {
		t.Error("a constructor whose name doesn't match its class should be rejected")
	}
}

func TestCheckCtorRequiresCPP(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	ctor := a.NewCtor(0)
	sn, _ := sname.FromScopes(
		sname.Scope{ID: "Widget", Kind: sname.KindClass},
		sname.Scope{ID: "Widget", Kind: sname.KindUnknown},
	)
	a.Header(ctor).SName = sn
	if c.Check(ctor) {
		t.Error("a constructor in plain C should be rejected")
	}
}

func TestCheckOperatorWrongArityIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	op := a.NewOperator(0)
	o, _ := a.Node(op).(*ast.Operator)
	o.Op = operator.Assign
	o.Member = ast.MemberYes
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseVoid
	o.Return = ret
	a.SetParent(ret, op)
	p1 := newIntParam(a, "")
	p2 := newIntParam(a, "")
	o.Params = []ast.Param{p1, p2}
	a.SetParent(p1.ID, op)
	a.SetParent(p2.ID, op)
	if c.Check(op) {
		t.Error("operator= with two parameters should be rejected")
	}
}

func TestCheckOperatorArrowMustReturnPointerToCSU(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	op := a.NewOperator(0)
	o, _ := a.Node(op).(*ast.Operator)
	o.Op = operator.Arrow
	o.Member = ast.MemberYes
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	o.Return = ret
	a.SetParent(ret, op)
	if c.Check(op) {
		t.Error("operator-> returning plain int should be rejected")
	}
}

func TestCheckOperatorNonMemberRequiresESCUParam(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	op := a.NewOperator(0)
	o, _ := a.Node(op).(*ast.Operator)
	o.Op = operator.Add
	o.Member = ast.MemberNo
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	o.Return = ret
	a.SetParent(ret, op)
	p1 := newIntParam(a, "")
	p2 := newIntParam(a, "")
	o.Params = []ast.Param{p1, p2}
	a.SetParent(p1.ID, op)
	a.SetParent(p2.ID, op)
	if c.Check(op) {
		t.Error("a non-member operator+ with no enum/class/struct/union parameter should be rejected")
	}
}

func TestCheckDefaultedOperatorAssignWrongShapeIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP20)
	op := a.NewOperator(0)
	o, _ := a.Node(op).(*ast.Operator)
	o.Op = operator.Assign
	o.Member = ast.MemberYes
	o.Header.Type.Storage |= typeid.StorageDefault
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	o.Return = ret
	a.SetParent(ret, op)
	p := newIntParam(a, "")
	o.Params = []ast.Param{p}
	a.SetParent(p.ID, op)
	if c.Check(op) {
		t.Error("a defaulted operator= returning plain int should be rejected")
	}
}

func TestCheckUDCFriendRequiresQualifiedName(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	udc := a.NewUserDefinedConversion(0)
	u, _ := a.Node(udc).(*ast.UserDefinedConversion)
	to := a.NewBuiltin(0)
	a.Header(to).Type.Base = typeid.BaseInt
	u.To = to
	a.SetParent(to, udc)
	a.Header(udc).Type.Storage |= typeid.StorageFriend
	if c.Check(udc) {
		t.Error("a friend UDC with no qualified name should be rejected")
	}
}

func TestCheckUDCTargetCannotBeArray(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	udc := a.NewUserDefinedConversion(0)
	u, _ := a.Node(udc).(*ast.UserDefinedConversion)
	arr := a.NewArray(0)
	an, _ := a.Node(arr).(*ast.Array)
	of := a.NewBuiltin(0)
	a.Header(of).Type.Base = typeid.BaseInt
	an.Of = of
	an.SizeKind = ast.SizeInt
	an.SizeInt = 2
	a.SetParent(of, arr)
	u.To = arr
	a.SetParent(arr, udc)
	if c.Check(udc) {
		t.Error("a UDC targeting array should be rejected")
	}
}

func TestCheckUDLOneParamMustBeValidType(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	udl := a.NewUserDefinedLiteral(0)
	u, _ := a.Node(udl).(*ast.UserDefinedLiteral)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	u.Return = ret
	a.SetParent(ret, udl)
	p := a.NewBuiltin(0)
	a.Header(p).Type.Base = typeid.BaseFloat
	u.Params = []ast.Param{{ID: p}}
	a.SetParent(p, udl)
	if c.Check(udl) {
		t.Error("a one-parameter UDL taking float should be rejected")
	}
}

func TestCheckUDLUnsignedLongLongIsLegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	udl := a.NewUserDefinedLiteral(0)
	u, _ := a.Node(udl).(*ast.UserDefinedLiteral)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	u.Return = ret
	a.SetParent(ret, udl)
	p := a.NewBuiltin(0)
	a.Header(p).Type.Base = typeid.BaseUnsigned | typeid.BaseLongLong
	u.Params = []ast.Param{{ID: p}}
	a.SetParent(p, udl)
	if !c.Check(udl) {
		t.Error("unsigned long long should be accepted as a UDL parameter type")
	}
}

func TestCheckUDLPlainUnsignedIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	udl := a.NewUserDefinedLiteral(0)
	u, _ := a.Node(udl).(*ast.UserDefinedLiteral)
	ret := a.NewBuiltin(0)
	a.Header(ret).Type.Base = typeid.BaseInt
	u.Return = ret
	a.SetParent(ret, udl)
	p := a.NewBuiltin(0)
	a.Header(p).Type.Base = typeid.BaseUnsigned
	u.Params = []ast.Param{{ID: p}}
	a.SetParent(p, udl)
	if c.Check(udl) {
		t.Error("plain unsigned (without long long) should not satisfy the unsigned-long-long UDL case")
	}
}

func TestCheckLambdaRequiresCPP(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	lam := a.NewLambda(0)
	if c.Check(lam) {
		t.Error("a lambda in plain C should be rejected")
	}
}

func TestCheckLambdaDefaultCaptureMustBeFirst(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	lam := a.NewLambda(0)
	l, _ := a.Node(lam).(*ast.Lambda)
	l.Captures = []ast.Capture{
		{Kind: ast.CaptureVariable, Name: "x"},
		{Kind: ast.CaptureCopy},
	}
	if c.Check(lam) {
		t.Error("a default capture not in first position should be rejected")
	}
}

func TestCheckLambdaStarThisRequiresCPP17(t *testing.T) {
	c, a, _ := newChecker(langver.CPP14)
	lam := a.NewLambda(0)
	l, _ := a.Node(lam).(*ast.Lambda)
	l.Captures = []ast.Capture{{Kind: ast.CaptureStarThis}}
	if c.Check(lam) {
		t.Error("*this capture before C++17 should be rejected")
	}
}

func TestCheckLambdaDuplicateNamedCaptureIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	lam := a.NewLambda(0)
	l, _ := a.Node(lam).(*ast.Lambda)
	l.Captures = []ast.Capture{
		{Kind: ast.CaptureVariable, Name: "x"},
		{Kind: ast.CaptureVariable, Name: "x"},
	}
	if c.Check(lam) {
		t.Error("duplicate named captures should be rejected")
	}
}

func TestCheckTypeIllegalInCPlusPlus(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	ref := a.NewReference(0)
	target := a.NewBuiltin(0)
	a.Header(target).Type.Base = typeid.BaseInt
	a.Node(ref).(*ast.Reference).To = target
	a.SetParent(target, ref)
	a.Header(ref).Type.Storage |= typeid.StorageRegister
	if c.Check(ref) {
		t.Error("register reference should be rejected by the type pass's legal-language check")
	}
}

func TestCheckRestrictOnClassIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	cls := a.NewClass(ast.KindStruct, 0)
	a.Header(cls).Type.Storage |= typeid.StorageRestrict
	if c.Check(cls) {
		t.Error("restrict on a struct should be rejected")
	}
}

func TestCheckListDuplicateDifferentTypeIsIllegal(t *testing.T) {
	c, a, diags := newChecker(langver.C17)
	i1 := a.NewBuiltin(0)
	a.Header(i1).Type.Base = typeid.BaseInt
	sn1, _ := sname.FromScopes(sname.Scope{ID: "x", Kind: sname.KindUnknown})
	a.Header(i1).SName = sn1

	f1 := a.NewBuiltin(0)
	a.Header(f1).Type.Base = typeid.BaseFloat
	sn2, _ := sname.FromScopes(sname.Scope{ID: "x", Kind: sname.KindUnknown})
	a.Header(f1).SName = sn2

	if c.CheckList([]ast.ID{i1, f1}) {
		t.Error("redefining x with a different type in one list should be rejected")
	}
	if diags.Count() == 0 {
		t.Error("expected a diagnostic for the conflicting redefinition")
	}
}

func TestCheckListTentativeSameTypeIsLegalInC(t *testing.T) {
	c, a, _ := newChecker(langver.C17)
	i1 := a.NewBuiltin(0)
	a.Header(i1).Type.Base = typeid.BaseInt
	sn1, _ := sname.FromScopes(sname.Scope{ID: "x", Kind: sname.KindUnknown})
	a.Header(i1).SName = sn1

	i2 := a.NewBuiltin(0)
	a.Header(i2).Type.Base = typeid.BaseInt
	sn2, _ := sname.FromScopes(sname.Scope{ID: "x", Kind: sname.KindUnknown})
	a.Header(i2).SName = sn2

	if !c.CheckList([]ast.ID{i1, i2}) {
		t.Error("a same-type tentative redefinition in C should be accepted")
	}
}

func TestCheckListMultiDeclAutoRequiresCPP11(t *testing.T) {
	c, a, _ := newChecker(langver.CPP03)
	auto1 := a.NewBuiltin(0)
	a.Header(auto1).Type.Base = typeid.BaseAuto
	ptr := a.NewPointer(0)
	a.Node(ptr).(*ast.Pointer).To = auto1
	a.SetParent(auto1, ptr)

	auto2 := a.NewBuiltin(0)
	a.Header(auto2).Type.Base = typeid.BaseAuto

	if c.CheckList([]ast.ID{ptr, auto2}) {
		t.Error("a multi-declarator auto prefix before C++11 should be rejected")
	}
}

func TestCheckListParamPackIsIllegal(t *testing.T) {
	c, a, _ := newChecker(langver.CPP17)
	i1 := a.NewBuiltin(0)
	a.Header(i1).Type.Base = typeid.BaseInt
	i2 := a.NewBuiltin(0)
	a.Header(i2).Type.Base = typeid.BaseAuto
	a.Header(i2).IsParamPack = true

	if c.CheckList([]ast.ID{i1, i2}) {
		t.Error("a parameter pack inside a multi-declarator list should be rejected")
	}
}

func TestCheckTypeForbidsAutoLeaf(t *testing.T) {
	c, a, _ := newChecker(langver.CPP20)
	td := a.NewBuiltin(0)
	a.Header(td).Type.Base = typeid.BaseAuto
	if c.CheckType(td) {
		t.Error("auto cannot appear as a typedef right-hand side's leaf")
	}
}

func TestCheckTypeForbidsNestedConcept(t *testing.T) {
	c, a, _ := newChecker(langver.CPP20)
	concept := a.NewConcept(0)
	sn, _ := sname.FromScopes(sname.Scope{ID: "Widget", Kind: sname.KindNamespace})
	a.Header(concept).SName = sn
	ptr := a.NewPointer(0)
	a.Node(ptr).(*ast.Pointer).To = concept
	a.SetParent(concept, ptr)
	if c.CheckType(ptr) {
		t.Error("a concept nested inside a typedef's right-hand side should be rejected")
	}
}
