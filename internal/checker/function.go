package checker

import (
	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/operator"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// checkFunction implements §4.G.function for plain functions and Apple
// blocks; checkOperator/checkUDC/checkUDL/checkLambda/checkCtorDtor cover
// the other function-like kinds §4.G.function shares its rules with.
func (c *Checker) checkFunction(st state, id ast.ID, n *ast.Function) bool {
	h := &n.Header

	if h.Kind != ast.KindAppleBlock && st.lang.IsCPP() {
		if !c.checkFunctionCPP(st, id, n) {
			return false
		}
	}

	if h.Type.Storage.Has(typeid.StorageConstinit) {
		c.errf(id, diagnostic.KindFunction, "constinit is illegal on a function")
		return false
	}

	if h.SName != nil && h.SName.Local() == "main" && h.SName.Len() == 1 &&
		!h.Type.Storage.IsAny(memberOnlyStorage) {
		if !c.checkMainSignature(id, n) {
			return false
		}
	}

	if h.Type.Attrs&^functionAllowedAttrs != 0 {
		c.errf(id, diagnostic.KindFunction, "attribute not allowed on a function")
		return false
	}
	if h.Type.Storage.IsAny(typeid.StorageDefault|typeid.StorageDelete) {
		c.errf(id, diagnostic.KindFunction, "= default / = delete are not valid on a plain function")
		return false
	}

	if !c.checkFunctionParams(st, id) {
		return false
	}
	return c.checkFunctionReturn(st, id, n.Return)
}

// checkFunctionCPP implements the C++-only bullets of §4.G.function: the
// `this` parameter, reference-qualifiers, member/non-member consistency,
// and virtual rules.
func (c *Checker) checkFunctionCPP(st state, id ast.ID, n *ast.Function) bool {
	h := &n.Header

	for i, p := range n.Params {
		ph := c.arena.Header(p.ID)
		if ph != nil && ph.Type.Storage.Has(typeid.StorageThis) && i != 0 {
			c.errf(id, diagnostic.KindFunction, "a this parameter must be first")
			return false
		}
	}
	hasThisParam := len(n.Params) > 0
	if hasThisParam {
		ph := c.arena.Header(n.Params[0].ID)
		hasThisParam = ph != nil && ph.Type.Storage.Has(typeid.StorageThis)
	}
	if hasThisParam {
		if !thisParamSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindFunction, "an explicit object parameter requires language support")
			return false
		}
		if h.Type.Storage.IsAny(thisParamIllegalStorage) {
			c.errf(id, diagnostic.KindFunction, "a function with a this parameter cannot carry this storage specifier")
			return false
		}
	}

	if h.Type.Storage.IsAny(typeid.StorageRefQualifier | typeid.StorageRvalueRefQualifier) {
		if !refQualifiedFunctionSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindFunction, "a reference-qualified function requires language support")
			return false
		}
		if h.Type.Storage.IsAny(typeid.StorageExtern | typeid.StorageExternC) {
			c.errf(id, diagnostic.KindFunction, "a reference-qualified function cannot have linkage")
			return false
		}
	}

	isMember := h.SName != nil && h.SName.Len() >= 2 && isCSUScope(h.SName, h.SName.Len()-2)

	if isMember && h.Type.Storage.IsAny(typeid.StorageExtern|typeid.StorageExternC) {
		c.errf(id, diagnostic.KindFunction, "a member function cannot have extern linkage")
		return false
	}
	if !isMember && h.Type.Storage.IsAny(memberOnlyStorage) {
		c.errf(id, diagnostic.KindFunction, "a non-member function cannot carry this storage specifier")
		return false
	}

	if h.Type.Storage.Has(typeid.StorageVirtual) && !isMember {
		c.errf(id, diagnostic.KindFunction, "virtual outside a class is illegal")
		return false
	}
	if h.Type.Storage.Has(typeid.StoragePureVirtual) && !h.Type.Storage.Has(typeid.StorageVirtual) {
		c.errf(id, diagnostic.KindFunction, "pure virtual on a non-virtual function is illegal")
		return false
	}

	return true
}

// isCSUScope reports whether sn's scope at index i is class-like.
func isCSUScope(sn *sname.SName, i int) bool {
	scope, ok := sn.At(i)
	if !ok {
		return false
	}
	switch scope.Kind {
	case sname.KindClass, sname.KindStruct, sname.KindUnion:
		return true
	default:
		return false
	}
}

// checkMainSignature implements §4.G.function's main-signature rules.
func (c *Checker) checkMainSignature(id ast.ID, n *ast.Function) bool {
	if !c.arena.IsBuiltinAny(n.Return, typeid.BaseInt) {
		c.errf(id, diagnostic.KindFunction, "main must return int (or a typedef thereof)")
		return false
	}
	switch len(n.Params) {
	case 0:
	case 1:
		if !c.arena.IsBuiltinAny(n.Params[0].ID, typeid.BaseVoid) {
			c.errf(id, diagnostic.KindFunction, "main's single parameter must be void")
			return false
		}
	case 2, 3:
		if !c.arena.IsBuiltinAny(n.Params[0].ID, typeid.BaseInt) {
			c.errf(id, diagnostic.KindFunction, "main's first parameter must be int")
			return false
		}
		for i := 1; i < len(n.Params); i++ {
			if !isMainArgvType(c.arena, n.Params[i].ID) {
				c.errf(n.Params[i].ID, diagnostic.KindFunction, "main's argv parameter must be char** or char*[]")
				return false
			}
		}
	default:
		c.errf(id, diagnostic.KindFunction, "main must have 0, 1, 2, or 3 parameters")
		return false
	}
	return true
}

func isMainArgvType(a *ast.Arena, id ast.ID) bool {
	switch n := a.Node(a.Untypedef(id)).(type) {
	case *ast.Pointer:
		return isPtrToChar(a, n.To)
	case *ast.Array:
		return isPtrToChar(a, n.Of)
	}
	return false
}

func isPtrToChar(a *ast.Arena, id ast.ID) bool {
	p, ok := a.Node(a.Untypedef(id)).(*ast.Pointer)
	if !ok {
		return false
	}
	return a.IsBuiltinAny(p.To, typeid.BaseChar)
}

// checkFunctionParams implements §4.G.function.params.
func (c *Checker) checkFunctionParams(st state, id ast.ID) bool {
	params := c.arena.Params(id)
	seen := make(map[string]bool, len(params))
	for i, p := range params {
		ph := c.arena.Header(p.ID)
		if ph == nil {
			continue
		}

		if _, isName := c.arena.Node(p.ID).(*ast.Name); isName {
			if !krSupported.Has(st.lang) {
				c.errf(p.ID, diagnostic.KindFuncParams, "an untyped parameter requires K&R-style function definitions")
				return false
			}
			continue
		}

		if _, isVariadic := c.arena.Node(p.ID).(*ast.Variadic); isVariadic {
			if i != len(params)-1 {
				c.errf(p.ID, diagnostic.KindFuncParams, "a variadic parameter must be last")
				return false
			}
			if i == 0 && !variadicOnlySupported.Has(st.lang) {
				c.errf(p.ID, diagnostic.KindFuncParams, "a lone variadic parameter requires language support")
				return false
			}
			continue
		}

		if ph.SName != nil && !ph.SName.Empty() {
			name := ph.SName.Local()
			if name != "" {
				if seen[name] {
					c.errf(p.ID, diagnostic.KindFuncParams, "duplicate parameter name %q", name)
					return false
				}
				seen[name] = true
			}
			if ph.SName.Len() > 1 {
				c.errf(p.ID, diagnostic.KindFuncParams, "a parameter name cannot be scoped")
				return false
			}
		}

		if ph.Kind == ast.KindBuiltin {
			b, _ := c.arena.Node(p.ID).(*ast.Builtin)
			if b != nil && b.Header.Type.Base.Has(typeid.BaseVoid) {
				if len(params) != 1 || (ph.SName != nil && !ph.SName.Empty()) || ph.Type.Storage != 0 {
					c.errf(p.ID, diagnostic.KindFuncParams, "a void parameter must be unnamed, unqualified, and alone")
					return false
				}
				continue
			}
			if b != nil && b.Header.Type.Base.Has(typeid.BaseAuto) && !autoParamSupported.Has(st.lang) {
				c.errf(p.ID, diagnostic.KindFuncParams, "an auto parameter requires language support")
				return false
			}
		}

		if ph.Kind != ast.KindArray && ph.Type.Storage.IsAny(typeid.NonEmpty) {
			c.errf(p.ID, diagnostic.KindFuncParams, "a parameter cannot carry this storage specifier")
			return false
		}
	}
	return true
}

// checkFunctionReturn implements §4.G.function.return, shared by every
// function-like kind with a "returns" slot.
func (c *Checker) checkFunctionReturn(st state, id, ret ast.ID) bool {
	if ret == ast.NoID {
		return true
	}
	rh := c.arena.Header(ret)
	if rh == nil {
		return true
	}

	switch rh.Kind {
	case ast.KindArray:
		c.errf(id, diagnostic.KindFuncReturn, "returning array is illegal (hint: returning pointer)")
		return false
	case ast.KindFunction, ast.KindAppleBlock:
		c.errf(id, diagnostic.KindFuncReturn, "returning function is illegal (hint: returning pointer to function)")
		return false
	case ast.KindStructuredBinding:
		c.errf(id, diagnostic.KindFuncReturn, "returning a structured binding is illegal")
		return false
	case ast.KindBuiltin:
		if b, ok := c.arena.Node(ret).(*ast.Builtin); ok && b.Header.Type.Base.Has(typeid.BaseAuto) && !returnAutoSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindFuncReturn, "returning auto requires language support")
			return false
		}
	case ast.KindClass, ast.KindStruct, ast.KindUnion:
		if !returnCSUSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindFuncReturn, "returning class/struct/union requires language support")
			return false
		}
	}

	if rh.Type.Storage.Has(typeid.StorageExplicit) {
		_, isUDC := c.arena.Node(id).(*ast.UserDefinedConversion)
		if !isUDC || !explicitUDCReturnSupported.Has(st.lang) {
			c.errf(id, diagnostic.KindFuncReturn, "explicit is only legal on a user-defined conversion's return")
			return false
		}
	}
	if rh.IsParamPack {
		c.errf(id, diagnostic.KindParamPack, "a function cannot return a parameter pack")
		return false
	}
	return true
}

// checkCtorDtor implements §4.G.ctor_dtor.
func (c *Checker) checkCtorDtor(st state, id ast.ID, isCtor bool) bool {
	if !ctorDtorSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindCtorDtor, "constructors and destructors require language support")
		return false
	}
	h := c.arena.Header(id)

	if h.SName != nil && h.SName.Len() >= 2 {
		last, _ := h.SName.At(h.SName.Len() - 1)
		prev, _ := h.SName.At(h.SName.Len() - 2)
		if last.ID != prev.ID {
			kind := "constructor"
			if !isCtor {
				kind = "destructor"
			}
			c.errf(id, diagnostic.KindCtorDtor, "a %s's name must match its enclosing class", kind)
			return false
		}
	}

	allowed := ctorAllowedStorage
	if !isCtor {
		allowed = dtorAllowedStorage
	}
	if h.Type.Storage&^allowed != 0 {
		c.errf(id, diagnostic.KindCtorDtor, "storage specifier not allowed here")
		return false
	}

	if isCtor && h.Type.Storage.IsAny(typeid.StorageDefault|typeid.StorageDelete) {
		params := c.arena.Params(id)
		switch len(params) {
		case 0:
		case 1:
			if !c.arena.IsRefToKindAny(params[0].ID, ast.KindClass, ast.KindStruct, ast.KindUnion) {
				c.errf(id, diagnostic.KindCtorDtor, "a defaulted/deleted constructor's single parameter must be a reference to its own class")
				return false
			}
		default:
			c.errf(id, diagnostic.KindCtorDtor, "a defaulted/deleted constructor may have at most one parameter")
			return false
		}
	}

	return true
}

func isDefaultedRelational(op operator.ID) bool {
	switch op {
	case operator.Eq, operator.NotEq, operator.Less, operator.LessEq, operator.Greater, operator.GreaterEq, operator.Spaceship:
		return true
	default:
		return false
	}
}

// checkOperator implements §4.G.operator.
func (c *Checker) checkOperator(st state, id ast.ID, n *ast.Operator) bool {
	h := &n.Header

	if !operator.IsOverloadable(n.Op) {
		c.errf(id, diagnostic.KindOperator, "this operator cannot be overloaded")
		return false
	}
	row, ok := operator.Table(n.Op, st.lang)
	if !ok || !row.Langs.Has(st.lang) {
		c.errf(id, diagnostic.KindOperator, "this operator is not available in the current language")
		return false
	}

	if n.Member != ast.MemberUnspecified {
		switch row.Overload {
		case operator.Member:
			if n.Member != ast.MemberYes {
				c.errf(id, diagnostic.KindOperator, "this operator must be a member")
				return false
			}
		case operator.NonMember:
			if n.Member != ast.MemberNo {
				c.errf(id, diagnostic.KindOperator, "this operator must be a non-member")
				return false
			}
		}
	}

	isNewDelete := n.Op == operator.New || n.Op == operator.NewArray || n.Op == operator.Delete || n.Op == operator.DeleteArray
	if h.Type.Storage.Has(typeid.StorageStatic) && !isNewDelete && !staticMemberOperatorSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindOperator, "a static member operator requires language support")
		return false
	}

	if isNewDelete && h.Type.Storage&^newDeleteAllowedStorage != 0 {
		c.errf(id, diagnostic.KindOperator, "new/delete operators may only carry a specific storage subset")
		return false
	}

	switch n.Op {
	case operator.Arrow:
		if !c.arena.IsPtrToKindAny(n.Return, ast.KindClass, ast.KindStruct, ast.KindUnion) {
			c.errf(id, diagnostic.KindOperator, "operator-> must return a pointer to class/struct/union")
			return false
		}
	case operator.Delete, operator.DeleteArray:
		if !c.arena.IsBuiltinAny(n.Return, typeid.BaseVoid) {
			c.errf(id, diagnostic.KindOperator, "operator delete must return void")
			return false
		}
	case operator.New, operator.NewArray:
		if !c.arena.IsPtrToTIDAny(n.Return, typeid.TID{Base: typeid.BaseVoid}) {
			c.errf(id, diagnostic.KindOperator, "operator new must return pointer to void")
			return false
		}
	}

	paramsMin, paramsMax := row.ParamsMin, row.ParamsMax
	if n.Member == ast.MemberYes && paramsMax > paramsMin {
		paramsMax--
	}
	if len(n.Params) < paramsMin || len(n.Params) > paramsMax {
		c.errf(id, diagnostic.KindOperator, "wrong number of parameters for this operator")
		return false
	}

	if n.Member == ast.MemberNo && !isNewDelete {
		if !c.arena.HasESCUParam(id) {
			c.errf(id, diagnostic.KindOperator, "a non-member operator must have at least one enum/class/struct/union parameter")
			return false
		}
	}

	if n.Member == ast.MemberYes && h.Type.Storage.Has(typeid.StorageFriend) && (h.SName == nil || h.SName.Empty()) {
		c.errf(id, diagnostic.KindOperator, "a member operator cannot also be friend without an explicit scope")
		return false
	}

	if n.Op == operator.PreIncr || n.Op == operator.PreDecr {
		if len(n.Params) > 0 {
			last := n.Params[len(n.Params)-1]
			if !c.arena.IsBuiltinAny(last.ID, typeid.BaseInt) {
				c.errf(last.ID, diagnostic.KindOperator, "the postfix dummy parameter must be int")
				return false
			}
		}
	}

	if n.Op == operator.Delete || n.Op == operator.DeleteArray {
		if len(n.Params) > 0 {
			p := n.Params[0].ID
			okPtr := c.arena.IsPtrToTIDAny(p, typeid.TID{Base: typeid.BaseVoid}) ||
				c.arena.IsPtrToKindAny(p, ast.KindClass, ast.KindStruct, ast.KindUnion)
			if !okPtr {
				c.errf(p, diagnostic.KindOperator, "delete's parameter must be pointer to void or pointer to class/struct/union")
				return false
			}
		}
	}
	if n.Op == operator.New || n.Op == operator.NewArray {
		if len(n.Params) > 0 && !c.arena.IsSizeT(n.Params[0].ID) {
			c.errf(n.Params[0].ID, diagnostic.KindOperator, "new's first parameter must be size_t (or equivalent)")
			return false
		}
	}

	if h.Type.Storage.Has(typeid.StorageDefault) {
		switch {
		case n.Op == operator.Assign:
			if !c.checkDefaultedAssign(st, id, n) {
				return false
			}
		case isDefaultedRelational(n.Op):
			if !c.checkDefaultedRelational(st, id, n) {
				return false
			}
		default:
			c.errf(id, diagnostic.KindOperator, "only operator= and defaulted relational operators may be = default")
			return false
		}
	}

	return true
}

// checkDefaultedAssign implements the "operator= where both the return type
// and the single parameter are references to the same class" bullet.
func (c *Checker) checkDefaultedAssign(st state, id ast.ID, n *ast.Operator) bool {
	if len(n.Params) != 1 {
		c.errf(id, diagnostic.KindOperator, "a defaulted operator= must take exactly one parameter")
		return false
	}
	if !c.arena.IsRefToKindAny(n.Params[0].ID, ast.KindClass, ast.KindStruct, ast.KindUnion) {
		c.errf(id, diagnostic.KindOperator, "a defaulted operator='s parameter must be a reference to its own class")
		return false
	}
	if !c.arena.IsRefToKindAny(n.Return, ast.KindClass, ast.KindStruct, ast.KindUnion) {
		c.errf(id, diagnostic.KindOperator, "a defaulted operator= must return a reference to its own class")
		return false
	}
	pc, _ := c.arena.Node(c.arena.Unreference(n.Params[0].ID)).(*ast.Class)
	rc, _ := c.arena.Node(c.arena.Unreference(n.Return)).(*ast.Class)
	if pc != nil && rc != nil && pc.Tag != nil && rc.Tag != nil && pc.Tag.Name != rc.Tag.Name {
		c.errf(id, diagnostic.KindOperator, "a defaulted operator= must return a reference to its own class")
		return false
	}
	return true
}

// checkDefaultedRelational implements the defaulted-comparison-operator
// bullet of §4.G.operator, including operator<=>'s return-type rule.
func (c *Checker) checkDefaultedRelational(st state, id ast.ID, n *ast.Operator) bool {
	if !defaultedComparisonSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindOperator, "a defaulted relational operator requires language support")
		return false
	}
	if n.Member == ast.MemberNo {
		if !n.Header.Type.Storage.Has(typeid.StorageFriend) {
			c.errf(id, diagnostic.KindOperator, "a non-member defaulted relational operator must be friend")
			return false
		}
		if len(n.Params) != 2 {
			c.errf(id, diagnostic.KindOperator, "a non-member defaulted relational operator takes two parameters")
			return false
		}
	} else {
		if !n.Header.Type.Storage.Has(typeid.StorageConst) {
			c.errf(id, diagnostic.KindOperator, "a member defaulted relational operator must be const")
			return false
		}
		if len(n.Params) != 1 {
			c.errf(id, diagnostic.KindOperator, "a member defaulted relational operator takes one parameter")
			return false
		}
	}

	if n.Op == operator.Spaceship {
		isAuto := c.arena.IsBuiltinAny(n.Return, typeid.BaseAuto)
		isOrderingByValue := false
		if cls, ok := c.arena.Node(c.arena.Untypedef(n.Return)).(*ast.Class); ok && cls.Tag != nil {
			isOrderingByValue = isStdOrderingName(cls.Tag.Name)
		}
		isOrderingByRef := c.arena.IsRefToClassSName(n.Return, "partial_ordering") ||
			c.arena.IsRefToClassSName(n.Return, "strong_ordering") ||
			c.arena.IsRefToClassSName(n.Return, "weak_ordering")
		if !isAuto && !isOrderingByValue && !isOrderingByRef {
			c.errf(id, diagnostic.KindOperator, "operator<=> must return auto or a standard ordering type")
			return false
		}
	} else if !c.arena.IsBuiltinAny(n.Return, typeid.BaseBool) {
		c.errf(id, diagnostic.KindOperator, "a defaulted relational operator must return bool")
		return false
	}
	return true
}

func isStdOrderingName(name string) bool {
	switch name {
	case "partial_ordering", "strong_ordering", "weak_ordering":
		return true
	default:
		return false
	}
}

// checkUDC implements §4.G.udef_conversion.
func (c *Checker) checkUDC(st state, id ast.ID, n *ast.UserDefinedConversion) bool {
	h := &n.Header
	if h.Type.Storage&^udcAllowedStorage != 0 {
		c.errf(id, diagnostic.KindUDC, "storage specifier not allowed on a user-defined conversion")
		return false
	}
	if h.Type.Storage.Has(typeid.StorageFriend) && (h.SName == nil || h.SName.Len() < 2) {
		c.errf(id, diagnostic.KindUDC, "a friend user-defined conversion must have a qualified name")
		return false
	}
	if toHeader := c.arena.Header(n.To); toHeader != nil && toHeader.Kind == ast.KindArray {
		c.errf(id, diagnostic.KindUDC, "a user-defined conversion's target cannot be array (hint: pointer to array)")
		return false
	}
	return c.checkFunctionReturn(st, id, n.To)
}

// checkUDL implements §4.G.udef_literal.
func (c *Checker) checkUDL(st state, id ast.ID, n *ast.UserDefinedLiteral) bool {
	if len(n.Params) > 2 {
		c.errf(id, diagnostic.KindUDL, "a user-defined literal cannot have more than 2 parameters")
		return false
	}

	switch len(n.Params) {
	case 1:
		p := n.Params[0].ID
		charBits := typeid.BaseChar | typeid.BaseChar8T | typeid.BaseChar16T | typeid.BaseChar32T | typeid.BaseWCharT
		ph := c.arena.Header(c.arena.Untypedef(p))
		isBuiltin := ph != nil && ph.Kind == ast.KindBuiltin
		ok := (isBuiltin && ph.Type.Base.IsAny(charBits)) ||
			(isBuiltin && ph.Type.Base.Has(typeid.BaseUnsigned|typeid.BaseLongLong)) ||
			(isBuiltin && ph.Type.Base.Has(typeid.BaseLong|typeid.BaseDouble)) ||
			isPtrToConstChar(c.arena, p)
		if !ok {
			c.errf(p, diagnostic.KindUDL, "invalid one-parameter user-defined literal parameter type")
			return false
		}
	case 2:
		if !isPtrToConstChar(c.arena, n.Params[0].ID) {
			c.errf(n.Params[0].ID, diagnostic.KindUDL, "a two-parameter user-defined literal's first parameter must be a const char* family pointer")
			return false
		}
		if !c.arena.IsSizeT(n.Params[1].ID) {
			c.errf(n.Params[1].ID, diagnostic.KindUDL, "a two-parameter user-defined literal's second parameter must be size_t")
			return false
		}
	}
	return true
}

func isPtrToConstChar(a *ast.Arena, id ast.ID) bool {
	to := a.Unpointer(id)
	if to == ast.NoID {
		return false
	}
	h := a.Header(a.Untypedef(to))
	if h == nil {
		return false
	}
	charBits := typeid.BaseChar | typeid.BaseChar8T | typeid.BaseChar16T | typeid.BaseChar32T | typeid.BaseWCharT
	return h.Kind == ast.KindBuiltin && h.Type.Base.IsAny(charBits) && h.Type.Storage.Has(typeid.StorageConst)
}

// checkLambda implements §4.G.lambda.
func (c *Checker) checkLambda(st state, id ast.ID, n *ast.Lambda) bool {
	if !lambdaSupported.Has(st.lang) {
		c.errf(id, diagnostic.KindLambda, "a lambda requires language support")
		return false
	}
	h := &n.Header
	if h.Type.Storage&^lambdaAllowedStorage != 0 {
		c.errf(id, diagnostic.KindLambda, "storage specifier not allowed on a lambda")
		return false
	}

	defaultSeen := false
	thisSeen := false
	names := make(map[string]bool, len(n.Captures))
	for i, cap := range n.Captures {
		switch cap.Kind {
		case ast.CaptureCopy, ast.CaptureReference:
			if defaultSeen {
				c.errf(id, diagnostic.KindLambda, "at most one default capture is allowed")
				return false
			}
			if i != 0 {
				c.errf(id, diagnostic.KindLambda, "a default capture must be first")
				return false
			}
			defaultSeen = true
		case ast.CaptureThis, ast.CaptureStarThis:
			if cap.Kind == ast.CaptureStarThis && !starThisCaptureSupported.Has(st.lang) {
				c.errf(id, diagnostic.KindLambda, "*this capture requires language support")
				return false
			}
			if thisSeen {
				c.errf(id, diagnostic.KindLambda, "this/*this captured more than once")
				return false
			}
			thisSeen = true
		case ast.CaptureVariable:
			if names[cap.Name] {
				c.errf(id, diagnostic.KindLambda, "duplicate capture name %q", cap.Name)
				return false
			}
			names[cap.Name] = true
		}
	}
	return true
}
