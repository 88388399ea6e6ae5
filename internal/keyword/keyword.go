// Package keyword is the keyword-table collaborator named in spec §1 and
// §4.C: the set of C/C++ reserved words, gated by the language versions
// that reserve each one, used both to reject keywords as identifiers
// (sname.Parse) and as did-you-mean candidates in internal/diagnostic.
package keyword

import (
	"sort"

	"github.com/paul-j-lucas/cdecl/internal/langver"
)

// Kind categorizes a keyword by the grammar role it plays, mirroring the
// teacher's BuiltinKind table-of-categories shape in
// internal/builtins/builtins.go.
type Kind uint8

const (
	KindTypeSpecifier Kind = iota
	KindStorageClass
	KindCVQualifier
	KindFunctionSpecifier
	KindControl
	KindOperatorWord // and, or, not, ... — alternative tokens for operators
	KindMisc
)

// Entry is one reserved word and the languages that reserve it.
type Entry struct {
	Name string
	Kind Kind
	Langs langver.Set
}

var table = []Entry{
	// Type specifiers
	{"void", KindTypeSpecifier, langver.All},
	{"char", KindTypeSpecifier, langver.All},
	{"short", KindTypeSpecifier, langver.All},
	{"int", KindTypeSpecifier, langver.All},
	{"long", KindTypeSpecifier, langver.All},
	{"float", KindTypeSpecifier, langver.All},
	{"double", KindTypeSpecifier, langver.All},
	{"signed", KindTypeSpecifier, langver.All},
	{"unsigned", KindTypeSpecifier, langver.All},
	{"struct", KindTypeSpecifier, langver.All},
	{"union", KindTypeSpecifier, langver.All},
	{"enum", KindTypeSpecifier, langver.All},
	{"_Bool", KindTypeSpecifier, langver.From(langver.C99).Union(langver.Of(langver.C11, langver.C17))},
	{"bool", KindTypeSpecifier, langver.AllCPP},
	{"_Complex", KindTypeSpecifier, langver.Of(langver.C99, langver.C11, langver.C17)},
	{"_Imaginary", KindTypeSpecifier, langver.Of(langver.C99, langver.C11, langver.C17)},
	{"wchar_t", KindTypeSpecifier, langver.AllCPP},
	{"char8_t", KindTypeSpecifier, langver.From(langver.CPP20)},
	{"char16_t", KindTypeSpecifier, langver.From(langver.CPP11)},
	{"char32_t", KindTypeSpecifier, langver.From(langver.CPP11)},
	{"class", KindTypeSpecifier, langver.AllCPP},
	{"typename", KindTypeSpecifier, langver.AllCPP},
	{"auto", KindTypeSpecifier, langver.All},

	// Storage class / linkage
	{"typedef", KindStorageClass, langver.All},
	{"extern", KindStorageClass, langver.All},
	{"static", KindStorageClass, langver.All},
	{"register", KindStorageClass, langver.All},
	{"mutable", KindStorageClass, langver.AllCPP},
	{"thread_local", KindStorageClass, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"_Thread_local", KindStorageClass, langver.Of(langver.C11, langver.C17)},

	// cv-qualifiers and related type qualifiers
	{"const", KindCVQualifier, langver.All},
	{"volatile", KindCVQualifier, langver.All},
	{"restrict", KindCVQualifier, langver.From(langver.C99)},
	{"_Atomic", KindCVQualifier, langver.Of(langver.C11, langver.C17, langver.C23)},

	// Function specifiers / C++ member qualifiers
	{"inline", KindFunctionSpecifier, langver.All},
	{"virtual", KindFunctionSpecifier, langver.AllCPP},
	{"explicit", KindFunctionSpecifier, langver.AllCPP},
	{"friend", KindFunctionSpecifier, langver.AllCPP},
	{"constexpr", KindFunctionSpecifier, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"consteval", KindFunctionSpecifier, langver.From(langver.CPP20)},
	{"constinit", KindFunctionSpecifier, langver.From(langver.CPP20)},
	{"_Noreturn", KindFunctionSpecifier, langver.Of(langver.C11, langver.C17)},
	{"_Alignas", KindFunctionSpecifier, langver.Of(langver.C11, langver.C17)},
	{"alignas", KindFunctionSpecifier, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"_Alignof", KindFunctionSpecifier, langver.Of(langver.C11, langver.C17)},
	{"alignof", KindFunctionSpecifier, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"_Static_assert", KindFunctionSpecifier, langver.Of(langver.C11, langver.C17)},
	{"static_assert", KindFunctionSpecifier, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"_Generic", KindFunctionSpecifier, langver.From(langver.C11)},

	// Control keywords (kept mainly as did-you-mean/identifier-rejection
	// fodder; cdecl never parses statements)
	{"if", KindControl, langver.All},
	{"else", KindControl, langver.All},
	{"switch", KindControl, langver.All},
	{"case", KindControl, langver.All},
	{"default", KindControl, langver.All},
	{"for", KindControl, langver.All},
	{"while", KindControl, langver.All},
	{"do", KindControl, langver.All},
	{"break", KindControl, langver.All},
	{"continue", KindControl, langver.All},
	{"goto", KindControl, langver.All},
	{"return", KindControl, langver.All},
	{"sizeof", KindControl, langver.All},
	{"try", KindControl, langver.AllCPP},
	{"catch", KindControl, langver.AllCPP},
	{"throw", KindControl, langver.AllCPP},
	{"co_await", KindControl, langver.From(langver.CPP20)},
	{"co_return", KindControl, langver.From(langver.CPP20)},
	{"co_yield", KindControl, langver.From(langver.CPP20)},

	// Misc C++ declaration keywords cdecl's grammar actually touches
	{"namespace", KindMisc, langver.AllCPP},
	{"using", KindMisc, langver.AllCPP},
	{"template", KindMisc, langver.AllCPP},
	{"operator", KindMisc, langver.AllCPP},
	{"new", KindMisc, langver.AllCPP},
	{"delete", KindMisc, langver.AllCPP},
	{"this", KindMisc, langver.AllCPP},
	{"noexcept", KindMisc, langver.From(langver.CPP11)},
	{"decltype", KindMisc, langver.From(langver.CPP11)},
	{"nullptr", KindMisc, langver.From(langver.CPP11).Union(langver.From(langver.C23))},
	{"true", KindMisc, langver.AllCPP.Union(langver.From(langver.C23))},
	{"false", KindMisc, langver.AllCPP.Union(langver.From(langver.C23))},
	{"export", KindMisc, langver.AllCPP},
	{"concept", KindMisc, langver.From(langver.CPP20)},
	{"requires", KindMisc, langver.From(langver.CPP20)},
	{"public", KindMisc, langver.AllCPP},
	{"private", KindMisc, langver.AllCPP},
	{"protected", KindMisc, langver.AllCPP},
	{"const_cast", KindMisc, langver.AllCPP},
	{"static_cast", KindMisc, langver.AllCPP},
	{"dynamic_cast", KindMisc, langver.AllCPP},
	{"reinterpret_cast", KindMisc, langver.AllCPP},
	{"typeid", KindMisc, langver.AllCPP},

	// C++ alternative operator tokens (digraph-adjacent word spellings)
	{"and", KindOperatorWord, langver.AllCPP},
	{"or", KindOperatorWord, langver.AllCPP},
	{"not", KindOperatorWord, langver.AllCPP},
	{"xor", KindOperatorWord, langver.AllCPP},
	{"bitand", KindOperatorWord, langver.AllCPP},
	{"bitor", KindOperatorWord, langver.AllCPP},
	{"compl", KindOperatorWord, langver.AllCPP},
	{"and_eq", KindOperatorWord, langver.AllCPP},
	{"or_eq", KindOperatorWord, langver.AllCPP},
	{"xor_eq", KindOperatorWord, langver.AllCPP},
	{"not_eq", KindOperatorWord, langver.AllCPP},
}

var byName = func() map[string]*Entry {
	m := make(map[string]*Entry, len(table))
	for i := range table {
		m[table[i].Name] = &table[i]
	}
	return m
}()

// Lookup returns the Entry for name, or nil if name is never a keyword in
// any language cdecl knows about.
func Lookup(name string) *Entry {
	return byName[name]
}

// IsKeyword reports whether name is reserved in lang.
func IsKeyword(name string, lang langver.Lang) bool {
	e := byName[name]
	return e != nil && e.Langs.Has(lang)
}

// All returns every keyword reserved in lang, sorted for deterministic
// did-you-mean candidate ordering.
func All(lang langver.Lang) []string {
	names := make([]string, 0, len(table))
	for _, e := range table {
		if e.Langs.Has(lang) {
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)
	return names
}
