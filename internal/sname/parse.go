package sname

import (
	"fmt"
	"strings"
)

// IsKeywordFunc reports whether an identifier is a reserved word in the
// language currently in effect. sname takes this as a callback rather than
// depending on internal/keyword directly, per the Design Notes' instruction
// to thread dependencies explicitly through narrow interfaces instead of
// reaching for global state.
type IsKeywordFunc func(id string) bool

// Parse parses "a::b::c" into a scoped name of KindUnknown scopes,
// rejecting any segment that is a keyword of the current language.
func Parse(s string, isKeyword IsKeywordFunc) (*SName, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty name", ErrSyntax)
	}
	parts := strings.Split(s, "::")
	sn := New()
	for _, p := range parts {
		if p == "" {
			return nil, fmt.Errorf("%w: empty scope segment in %q", ErrSyntax, s)
		}
		if isKeyword != nil && isKeyword(p) {
			return nil, fmt.Errorf("%w: %q is a keyword", ErrSyntax, p)
		}
		if err := sn.Append(p, KindUnknown); err != nil {
			return nil, err
		}
	}
	return sn, nil
}

// ParseDtor parses a destructor name: the same as Parse, but the last
// segment must have a leading "~" or "compl ", and the resulting scoped
// name's last two scopes must be equal (the class name repeated), e.g.
// "Foo::~Foo" or "Foo::compl Foo".
func ParseDtor(s string, isKeyword IsKeywordFunc) (*SName, error) {
	parts := strings.Split(s, "::")
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty name", ErrSyntax)
	}
	last := parts[len(parts)-1]
	switch {
	case strings.HasPrefix(last, "~"):
		parts[len(parts)-1] = last[1:]
	case strings.HasPrefix(last, "compl "):
		parts[len(parts)-1] = strings.TrimPrefix(last, "compl ")
	default:
		return nil, fmt.Errorf("%w: destructor name must start with ~ or \"compl \"", ErrSyntax)
	}

	sn, err := Parse(strings.Join(parts, "::"), isKeyword)
	if err != nil {
		return nil, err
	}
	if sn.Len() >= 2 && !sn.IsCtor() {
		return nil, fmt.Errorf("%w: destructor name %q must repeat the class name", ErrSyntax, s)
	}
	return sn, nil
}
