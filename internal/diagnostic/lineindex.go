package diagnostic

import "sort"

// lineIndex maps byte offsets into a command's source text to 0-indexed
// line/column pairs, precomputing each line's starting offset so every
// diagnostic's caret position resolves in O(log n) instead of rescanning
// the source per lookup.
type lineIndex struct {
	source     string
	lineStarts []int // byte offset of each line's first byte
}

// newLineIndex scans source once for line boundaries (LF, CR, and CRLF).
func newLineIndex(source string) *lineIndex {
	idx := &lineIndex{source: source, lineStarts: []int{0}}
	for i := 0; i < len(source); i++ {
		switch source[i] {
		case '\n':
			if next := i + 1; next < len(source) {
				idx.lineStarts = append(idx.lineStarts, next)
			}
		case '\r':
			if i+1 < len(source) && source[i+1] == '\n' {
				if next := i + 2; next < len(source) {
					idx.lineStarts = append(idx.lineStarts, next)
				}
				i++
			} else if next := i + 1; next < len(source) {
				idx.lineStarts = append(idx.lineStarts, next)
			}
		}
	}
	return idx
}

// byteOffsetToLineColumn converts offset to a 0-indexed line/column pair,
// clamping out-of-range offsets to the start or end of source.
func (idx *lineIndex) byteOffsetToLineColumn(offset int) (line, col int) {
	if offset < 0 {
		return 0, 0
	}
	if offset >= len(idx.source) {
		if len(idx.source) == 0 {
			return 0, 0
		}
		offset = len(idx.source)
	}

	line = sort.Search(len(idx.lineStarts), func(i int) bool {
		return idx.lineStarts[i] > offset
	}) - 1
	if line < 0 {
		line = 0
	}

	col = offset - idx.lineStarts[line]
	return line, col
}
