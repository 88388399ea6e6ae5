// Package langver defines the C/C++ language versions cdecl reasons about
// and the bitset used everywhere a spec rule is gated by "requires language
// support."
package langver

import "strings"

// Lang identifies a single C or C++ standard (or the ill-defined K&R
// dialect that predates standardization).
type Lang uint8

const (
	// None is the zero value; no language selected.
	None Lang = iota

	KNRC // pre-standard K&R C

	C89
	C95
	C99
	C11
	C17
	C23

	CPP98
	CPP03
	CPP11
	CPP14
	CPP17
	CPP20
	CPP23
	CPP26

	numLangs
)

var names = [numLangs]string{
	None:  "none",
	KNRC:  "K&R C",
	C89:   "C89",
	C95:   "C95",
	C99:   "C99",
	C11:   "C11",
	C17:   "C17",
	C23:   "C23",
	CPP98: "C++98",
	CPP03: "C++03",
	CPP11: "C++11",
	CPP14: "C++14",
	CPP17: "C++17",
	CPP20: "C++20",
	CPP23: "C++23",
	CPP26: "C++26",
}

func (l Lang) String() string {
	if int(l) < len(names) {
		return names[l]
	}
	return "unknown"
}

// byName maps every accepted -x/--lang spelling to its Lang, built once
// from names so CLI parsing and String() can never drift apart.
var byName = func() map[string]Lang {
	m := make(map[string]Lang, numLangs*2)
	for l, n := range names {
		if Lang(l) == None {
			continue
		}
		m[strings.ToLower(n)] = Lang(l)
	}
	// common CLI spellings that don't match the display string exactly
	m["knrc"] = KNRC
	m["k&r"] = KNRC
	m["c++98"], m["cpp98"] = CPP98, CPP98
	m["c++03"], m["cpp03"] = CPP03, CPP03
	m["c++11"], m["cpp11"] = CPP11, CPP11
	m["c++14"], m["cpp14"] = CPP14, CPP14
	m["c++17"], m["cpp17"] = CPP17, CPP17
	m["c++20"], m["cpp20"] = CPP20, CPP20
	m["c++23"], m["cpp23"] = CPP23, CPP23
	m["c++26"], m["cpp26"] = CPP26, CPP26
	return m
}()

// Parse looks up a language by its -x/--lang flag spelling
// ("c17", "c++17", "cpp17"), case-insensitively.
func Parse(name string) (Lang, bool) {
	l, ok := byName[strings.ToLower(name)]
	return l, ok
}

// IsC reports whether l is one of the C dialects (including K&R).
func (l Lang) IsC() bool {
	return l == KNRC || (l >= C89 && l <= C23)
}

// IsCPP reports whether l is one of the C++ dialects.
func (l Lang) IsCPP() bool {
	return l >= CPP98 && l <= CPP26
}

// bit returns the Set bit corresponding to l.
func (l Lang) bit() Set {
	if l == None || int(l) >= int(numLangs) {
		return 0
	}
	return Set(1) << uint(l)
}

// Set is a bitset of Lang values, used to say "legal in these languages."
type Set uint32

// Of builds a Set from individual languages.
func Of(langs ...Lang) Set {
	var s Set
	for _, l := range langs {
		s |= l.bit()
	}
	return s
}

// All is every language cdecl knows about.
var All = func() Set {
	var s Set
	for l := KNRC; l < numLangs; l++ {
		s |= l.bit()
	}
	return s
}()

// AllC is every C dialect.
var AllC = Of(KNRC, C89, C95, C99, C11, C17, C23)

// AllCPP is every C++ dialect.
var AllCPP = Of(CPP98, CPP03, CPP11, CPP14, CPP17, CPP20, CPP23, CPP26)

// From returns the set of every language from l onward within l's family
// (C or C++), inclusive. Used for "requires C99 or later" style rules.
func From(l Lang) Set {
	var s Set
	if l.IsC() {
		for x := l; x <= C23; x++ {
			s |= x.bit()
		}
	} else if l.IsCPP() {
		for x := l; x <= CPP26; x++ {
			s |= x.bit()
		}
	}
	return s
}

// Has reports whether l is a member of s.
func (s Set) Has(l Lang) bool {
	return s&l.bit() != 0
}

// Union returns s | other.
func (s Set) Union(other Set) Set { return s | other }

// Intersect returns s & other.
func (s Set) Intersect(other Set) Set { return s & other }

// IsEmpty reports whether the set has no members.
func (s Set) IsEmpty() bool { return s == 0 }

// String renders the set as a comma-separated list of language names, in
// declaration order, for use in diagnostics ("not supported until C99,C11").
func (s Set) String() string {
	if s == 0 {
		return "no language"
	}
	var parts []string
	for l := KNRC; l < numLangs; l++ {
		if s.Has(l) {
			parts = append(parts, l.String())
		}
	}
	return strings.Join(parts, ",")
}

// OnlyC reports whether s is a non-empty subset of AllC.
func (s Set) OnlyC() bool {
	return s != 0 && s&^AllC == 0
}

// OnlyCPP reports whether s is a non-empty subset of AllCPP.
func (s Set) OnlyCPP() bool {
	return s != 0 && s&^AllCPP == 0
}
