package ast

// IsValidAlignment reports whether bytes is a legal alignas() argument: a
// power of two, per the same "alignment is always a power of two" rule the
// teacher's memory-layout computations rely on for vector/matrix/struct
// padding (internal/reflect's TypeLayout.Alignment field).
func IsValidAlignment(bytes uint32) bool {
	return bytes != 0 && bytes&(bytes-1) == 0
}

// CheckAlign reports whether a's declared alignment is well-formed in
// isolation (AlignAsType alignments are validated by the checker once the
// referenced type's own alignment is known).
func (a *Arena) CheckAlign(id ID) bool {
	h := a.Header(id)
	if h == nil {
		return true
	}
	switch h.Align.Kind {
	case AlignNone:
		return true
	case AlignBytes:
		return IsValidAlignment(h.Align.Bytes)
	case AlignAsType:
		return h.Align.As != NoID
	default:
		return false
	}
}
