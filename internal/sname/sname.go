// Package sname implements scoped names: an ordered, non-empty sequence of
// (identifier, scope-kind) pairs, innermost last, per spec §3.1/§4.A.
package sname

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Kind is the kind of a single scope in a scoped name.
type Kind uint8

const (
	// KindUnknown is the "scope" sentinel: a scope whose kind is not yet
	// known, coerced once a matching user type becomes known.
	KindUnknown Kind = iota
	KindNamespace
	KindInlineNamespace
	KindClass
	KindStruct
	KindUnion
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindNamespace:
		return "namespace"
	case KindInlineNamespace:
		return "inline namespace"
	case KindClass:
		return "class"
	case KindStruct:
		return "struct"
	case KindUnion:
		return "union"
	case KindEnum:
		return "enum"
	default:
		return "scope"
	}
}

// rank implements the scope-kind ordering: namespace < class/struct/union <
// enum. KindUnknown has no rank constraint (it hasn't been resolved yet) and
// is represented as -1, which is never compared against.
func (k Kind) rank() int {
	switch k {
	case KindNamespace, KindInlineNamespace:
		return 0
	case KindClass, KindStruct, KindUnion:
		return 1
	case KindEnum:
		return 2
	default:
		return -1
	}
}

// Scope is one link in a scoped name.
type Scope struct {
	ID   string
	Kind Kind
}

// ErrSyntax is returned when an identifier is actually a keyword.
var ErrSyntax = errors.New("syntax error")

// ErrNestedKind is returned when a scoped name nests a coarser scope kind
// inside a finer one, e.g. a namespace inside a class.
var ErrNestedKind = errors.New("nested scope kind")

// SName is an ordered, non-empty sequence of scopes.
type SName struct {
	scopes []Scope
}

// New creates an empty scoped name. It is not valid until at least one
// scope has been appended.
func New() *SName {
	return &SName{}
}

// FromScopes builds a scoped name from a pre-validated list of scopes,
// checking the nesting-order invariant as it goes.
func FromScopes(scopes ...Scope) (*SName, error) {
	sn := New()
	for _, s := range scopes {
		if err := sn.Append(s.ID, s.Kind); err != nil {
			return nil, err
		}
	}
	return sn, nil
}

// Append adds a new innermost scope, enforcing that the scope-kind ordering
// is monotonic non-decreasing from outer to inner.
func (sn *SName) Append(id string, kind Kind) error {
	if len(sn.scopes) > 0 {
		outer := sn.scopes[len(sn.scopes)-1]
		if outer.Kind.rank() >= 0 && kind.rank() >= 0 && kind.rank() < outer.Kind.rank() {
			return fmt.Errorf("%w: %s inside %s", ErrNestedKind, kind, outer.Kind)
		}
	}
	sn.scopes = append(sn.scopes, Scope{ID: id, Kind: kind})
	return nil
}

// Pop removes and returns the innermost scope.
func (sn *SName) Pop() (Scope, bool) {
	if len(sn.scopes) == 0 {
		return Scope{}, false
	}
	last := sn.scopes[len(sn.scopes)-1]
	sn.scopes = sn.scopes[:len(sn.scopes)-1]
	return last, true
}

// Len returns the number of scopes.
func (sn *SName) Len() int { return len(sn.scopes) }

// Empty reports whether the scoped name has no scopes.
func (sn *SName) Empty() bool { return len(sn.scopes) == 0 }

// Local returns the innermost (last) identifier.
func (sn *SName) Local() string {
	if len(sn.scopes) == 0 {
		return ""
	}
	return sn.scopes[len(sn.scopes)-1].ID
}

// ScopeName returns every scope but the last, joined by "::".
func (sn *SName) ScopeName() string {
	if len(sn.scopes) <= 1 {
		return ""
	}
	ids := make([]string, 0, len(sn.scopes)-1)
	for _, s := range sn.scopes[:len(sn.scopes)-1] {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, "::")
}

// Full returns every scope joined by "::".
func (sn *SName) Full() string {
	ids := make([]string, 0, len(sn.scopes))
	for _, s := range sn.scopes {
		ids = append(ids, s.ID)
	}
	return strings.Join(ids, "::")
}

// Scopes returns the underlying scope list. Callers must not mutate it.
func (sn *SName) Scopes() []Scope { return sn.scopes }

// At returns the scope at index i (0 = outermost).
func (sn *SName) At(i int) (Scope, bool) {
	if i < 0 || i >= len(sn.scopes) {
		return Scope{}, false
	}
	return sn.scopes[i], true
}

// CoerceKind resolves a KindUnknown scope at index i to a concrete kind,
// once a matching user type becomes known (e.g. bare "scope" -> "namespace").
// It re-validates the nesting-order invariant against both neighbors.
func (sn *SName) CoerceKind(i int, kind Kind) error {
	if i < 0 || i >= len(sn.scopes) {
		return fmt.Errorf("sname: index %d out of range", i)
	}
	if i > 0 {
		outer := sn.scopes[i-1]
		if outer.Kind.rank() >= 0 && kind.rank() >= 0 && kind.rank() < outer.Kind.rank() {
			return fmt.Errorf("%w: %s inside %s", ErrNestedKind, kind, outer.Kind)
		}
	}
	if i+1 < len(sn.scopes) {
		inner := sn.scopes[i+1]
		if inner.Kind.rank() >= 0 && kind.rank() >= 0 && inner.Kind.rank() < kind.rank() {
			return fmt.Errorf("%w: %s inside %s", ErrNestedKind, inner.Kind, kind)
		}
	}
	sn.scopes[i].Kind = kind
	return nil
}

// Equal reports whether two scoped names have the same length and
// pairwise-equal identifiers. Scope kind is not part of equality.
func (sn *SName) Equal(other *SName) bool {
	if other == nil || len(sn.scopes) != len(other.scopes) {
		return false
	}
	for i := range sn.scopes {
		if sn.scopes[i].ID != other.scopes[i].ID {
			return false
		}
	}
	return true
}

// Clone returns a deep copy.
func (sn *SName) Clone() *SName {
	cp := make([]Scope, len(sn.scopes))
	copy(cp, sn.scopes)
	return &SName{scopes: cp}
}

// IsCtor reports whether this scoped name looks like a constructor name:
// at least two scopes, with the last equal to the penultimate.
func (sn *SName) IsCtor() bool {
	n := len(sn.scopes)
	return n >= 2 && sn.scopes[n-1].ID == sn.scopes[n-2].ID
}

// Match reports whether the scoped name matches glob, per §4.A: a leading
// "**::" means "match at any scope depth" (the remaining pattern matches a
// trailing suffix of the name); without it, the pattern must match the
// entire name exactly, segment for segment, fnmatch-style.
//
// Scopes are joined with "/" and matched with doublestar, the same library
// termfx-morfx (retrieval pack) uses for filesystem globs: "::" behaves
// exactly like a path separator here, and a leading "**::" lowers to a
// leading "**/", doublestar's "match zero or more path components" marker.
func (sn *SName) Match(glob string) bool {
	path := strings.Join(idsOf(sn.scopes), "/")
	pattern := glob
	if strings.HasPrefix(pattern, "**::") {
		pattern = "**/" + strings.TrimPrefix(pattern, "**::")
	}
	pattern = strings.ReplaceAll(pattern, "::", "/")
	ok, err := doublestar.Match(pattern, path)
	return err == nil && ok
}

func idsOf(scopes []Scope) []string {
	ids := make([]string, len(scopes))
	for i, s := range scopes {
		ids[i] = s.ID
	}
	return ids
}

func (sn *SName) String() string { return sn.Full() }
