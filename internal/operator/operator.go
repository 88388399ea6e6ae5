// Package operator implements the static C++ operator-overload metadata
// table of spec §4.C: for every overloadable operator, which language
// versions allow overloading it, whether it may be a member, non-member,
// or either, and its legal parameter-count range.
package operator

import (
	"math"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

// ID identifies a single C++ operator.
type ID uint8

const (
	None ID = iota
	Add
	AddEq
	Sub
	SubEq
	Mul
	MulEq
	Div
	DivEq
	Mod
	ModEq
	BitAnd
	BitAndEq
	BitOr
	BitOrEq
	BitXor
	BitXorEq
	BitNot
	LShift
	LShiftEq
	RShift
	RShiftEq
	Assign
	Eq
	NotEq
	Less
	LessEq
	Greater
	GreaterEq
	Spaceship // <=>
	LogicalAnd
	LogicalOr
	LogicalNot
	PreIncr
	PreDecr // same ID handles postfix; arity distinguishes
	Comma
	Arrow
	ArrowStar
	Call      // ()
	Subscript // []
	New
	NewArray
	Delete
	DeleteArray
	CoAwait

	// Non-overloadable operators, kept in the table so IsOverloadable has
	// something concrete to reject (§4.G.operator: "?:", ".", "::", ".*"
	// cannot be overloaded).
	Conditional // ?:
	Dot         // .
	DotStar     // .*
	ScopeRes    // ::

	numOperators
)

// Overloadability constrains whether an operator may be declared as a
// member, a non-member, or either.
type Overloadability uint8

const (
	None_ Overloadability = iota // not overloadable at all
	Member
	NonMember
	Either
)

// Unbounded represents an unbounded parameter-count maximum (params_max = ∞).
const Unbounded = math.MaxInt32

// Row is one operator's metadata.
type Row struct {
	ID         ID
	Literal    string
	Langs      langver.Set
	Overload   Overloadability
	ParamsMin  int
	ParamsMax  int
}

var table = map[ID]Row{
	None:        {None, "", 0, None_, 0, 0},
	Add:         {Add, "+", langver.AllCPP, Either, 0, 2},
	AddEq:       {AddEq, "+=", langver.AllCPP, Either, 1, 1},
	Sub:         {Sub, "-", langver.AllCPP, Either, 0, 2},
	SubEq:       {SubEq, "-=", langver.AllCPP, Either, 1, 1},
	Mul:         {Mul, "*", langver.AllCPP, Either, 0, 2},
	MulEq:       {MulEq, "*=", langver.AllCPP, Either, 1, 1},
	Div:         {Div, "/", langver.AllCPP, Either, 2, 2},
	DivEq:       {DivEq, "/=", langver.AllCPP, Either, 1, 1},
	Mod:         {Mod, "%", langver.AllCPP, Either, 2, 2},
	ModEq:       {ModEq, "%=", langver.AllCPP, Either, 1, 1},
	BitAnd:      {BitAnd, "&", langver.AllCPP, Either, 0, 2},
	BitAndEq:    {BitAndEq, "&=", langver.AllCPP, Either, 1, 1},
	BitOr:       {BitOr, "|", langver.AllCPP, Either, 2, 2},
	BitOrEq:     {BitOrEq, "|=", langver.AllCPP, Either, 1, 1},
	BitXor:      {BitXor, "^", langver.AllCPP, Either, 2, 2},
	BitXorEq:    {BitXorEq, "^=", langver.AllCPP, Either, 1, 1},
	BitNot:      {BitNot, "~", langver.AllCPP, Either, 0, 1},
	LShift:      {LShift, "<<", langver.AllCPP, Either, 2, 2},
	LShiftEq:    {LShiftEq, "<<=", langver.AllCPP, Either, 1, 1},
	RShift:      {RShift, ">>", langver.AllCPP, Either, 2, 2},
	RShiftEq:    {RShiftEq, ">>=", langver.AllCPP, Either, 1, 1},
	Assign:      {Assign, "=", langver.AllCPP, Member, 1, 1},
	Eq:          {Eq, "==", langver.AllCPP, Either, 2, 2},
	NotEq:       {NotEq, "!=", langver.AllCPP, Either, 2, 2},
	Less:        {Less, "<", langver.AllCPP, Either, 2, 2},
	LessEq:      {LessEq, "<=", langver.AllCPP, Either, 2, 2},
	Greater:     {Greater, ">", langver.AllCPP, Either, 2, 2},
	GreaterEq:   {GreaterEq, ">=", langver.AllCPP, Either, 2, 2},
	Spaceship:   {Spaceship, "<=>", langver.From(langver.CPP20), Either, 2, 2},
	LogicalAnd:  {LogicalAnd, "&&", langver.AllCPP, Either, 2, 2},
	LogicalOr:   {LogicalOr, "||", langver.AllCPP, Either, 2, 2},
	LogicalNot:  {LogicalNot, "!", langver.AllCPP, Either, 0, 1},
	PreIncr:     {PreIncr, "++", langver.AllCPP, Either, 0, 2},
	PreDecr:     {PreDecr, "--", langver.AllCPP, Either, 0, 2},
	Comma:       {Comma, ",", langver.AllCPP, Either, 2, 2},
	Arrow:       {Arrow, "->", langver.AllCPP, Member, 0, 0},
	ArrowStar:   {ArrowStar, "->*", langver.AllCPP, Either, 2, 2},
	Call:        {Call, "()", langver.AllCPP, Member, 0, Unbounded},
	Subscript:   {Subscript, "[]", langver.AllCPP, Member, 1, 1}, // relaxed to 0..2 in C++23, see Table
	New:         {New, "new", langver.AllCPP, Either, 1, Unbounded},
	NewArray:    {NewArray, "new[]", langver.AllCPP, Either, 1, Unbounded},
	Delete:      {Delete, "delete", langver.AllCPP, Either, 1, 2},
	DeleteArray: {DeleteArray, "delete[]", langver.AllCPP, Either, 1, 2},
	CoAwait:     {CoAwait, "co_await", langver.From(langver.CPP20), Either, 0, 1},

	Conditional: {Conditional, "?:", 0, None_, 0, 0},
	Dot:         {Dot, ".", 0, None_, 0, 0},
	DotStar:     {DotStar, ".*", 0, None_, 0, 0},
	ScopeRes:    {ScopeRes, "::", 0, None_, 0, 0},
}

// Table returns the metadata row for op in lang, with C++23's relaxed
// subscript-operator arity ([] may now take 0 or 2 parameters, not just 1)
// applied when lang is CPP23 or later — the "distinct rows per language"
// requirement of §4.C.
func Table(op ID, lang langver.Lang) (Row, bool) {
	row, ok := table[op]
	if !ok {
		return Row{}, false
	}
	if op == Subscript && langver.From(langver.CPP23).Has(lang) {
		row.ParamsMin, row.ParamsMax = 0, 2
	}
	return row, true
}

// IsAmbiguous reports whether an operator's arity range alone can't decide
// member-vs-non-member without looking at the declared parameter count
// (params_min == 0 && params_max == 2), per §4.C — true for unary/binary
// operators like &, *, +, ++, -, --.
func IsAmbiguous(row Row) bool {
	return row.ParamsMin == 0 && row.ParamsMax == 2
}

// IsOverloadable reports whether op can be overloaded at all.
func IsOverloadable(op ID) bool {
	row, ok := table[op]
	return ok && row.Overload != None_
}
