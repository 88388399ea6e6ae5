// Package diagnostic implements the cdecl error and suggestion sink of
// spec §4.I: severities, source ranges, did-you-mean suggestions, and
// human-readable rendering with a caret under the offending byte range.
package diagnostic

import (
	"fmt"
	"strings"

	"github.com/agext/levenshtein"
)

// Severity is a diagnostic's severity level.
type Severity uint8

const (
	Error Severity = iota
	Warning
	Note
)

func (s Severity) String() string {
	switch s {
	case Error:
		return "error"
	case Warning:
		return "warning"
	case Note:
		return "note"
	default:
		return "unknown"
	}
}

// Position is a source location resolved to line/column.
type Position struct {
	Offset int
	Line   int // 1-based
	Column int // 1-based
}

// Range is a half-open source span.
type Range struct {
	Start Position
	End   Position
}

// RelatedInfo attaches a secondary location/message to a Diagnostic, used
// for "note:" follow-ups (e.g. "declared here").
type RelatedInfo struct {
	Range   Range
	Message string
}

// Kind names the checker rule or grammar area a diagnostic comes from,
// grounded directly in spec §4.A and §4.G's own section names so a
// diagnostic's Kind always matches the rule that raised it.
type Kind string

const (
	KindSyntax      Kind = "syntax"
	KindNestedKind  Kind = "nested-kind"
	KindAlignas     Kind = "alignas"
	KindArray       Kind = "array"
	KindBuiltin     Kind = "builtin"
	KindCast        Kind = "cast"
	KindConcept     Kind = "concept"
	KindCtorDtor    Kind = "ctor_dtor"
	KindEnum        Kind = "enum"
	KindFunction    Kind = "function"
	KindFuncParams  Kind = "function.params"
	KindFuncReturn  Kind = "function.return"
	KindLambda      Kind = "lambda"
	KindOperator    Kind = "operator"
	KindParamPack   Kind = "param_pack"
	KindPointer     Kind = "pointer"
	KindReference   Kind = "reference"
	KindRestrict    Kind = "restrict"
	KindStructBind  Kind = "structured_binding"
	KindUDC         Kind = "udef_conversion"
	KindUDL         Kind = "udef_literal"
	KindTypePass    Kind = "type-pass"
	KindListCheck   Kind = "list-check"
	KindUnknownName Kind = "unknown-name"
)

// Diagnostic is a single reported message.
type Diagnostic struct {
	Severity Severity
	Kind     Kind
	Message  string
	Range    Range
	Related  []RelatedInfo
	// Suggestions holds did-you-mean candidates, closest first.
	Suggestions []string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%d:%d: %s: %s", d.Range.Start.Line, d.Range.Start.Column, d.Severity, d.Message)
}

// List collects diagnostics produced while checking one command, in order.
type List struct {
	diagnostics []Diagnostic
	lineIndex   *lineIndex
	source      string
	hasErrors   bool
}

// NewList creates a diagnostic list over source, used to resolve byte
// offsets to line/column for every diagnostic added to it.
func NewList(source string) *List {
	return &List{
		lineIndex: newLineIndex(source),
		source:    source,
	}
}

// Add appends a diagnostic and tracks whether any error-severity one has
// been seen, per §4.I's error sink.
func (l *List) Add(d Diagnostic) {
	l.diagnostics = append(l.diagnostics, d)
	if d.Severity == Error {
		l.hasErrors = true
	}
}

// AddError adds an error diagnostic spanning [start, end) with did-you-mean
// suggestions ranked against candidates by edit distance.
func (l *List) AddError(kind Kind, start, end int, message string, candidates []string, near string) {
	d := Diagnostic{
		Severity: Error,
		Kind:     kind,
		Message:  message,
		Range:    l.MakeRange(start, end),
	}
	if near != "" {
		d.Suggestions = Suggest(near, candidates, 3)
	}
	l.Add(d)
}

// AddNote adds a related-location note to the most recently added
// diagnostic, or as a standalone note if the list is empty.
func (l *List) AddNote(offset int, message string) {
	rel := RelatedInfo{Range: l.MakeRange(offset, offset+1), Message: message}
	if n := len(l.diagnostics); n > 0 {
		l.diagnostics[n-1].Related = append(l.diagnostics[n-1].Related, rel)
		return
	}
	l.Add(Diagnostic{Severity: Note, Message: message, Range: rel.Range})
}

// MakePosition converts a byte offset to a 1-based line/column Position.
func (l *List) MakePosition(offset int) Position {
	line, col := l.lineIndex.byteOffsetToLineColumn(offset)
	return Position{Offset: offset, Line: line + 1, Column: col + 1}
}

// MakeRange converts a byte-offset pair to a Range.
func (l *List) MakeRange(start, end int) Range {
	return Range{Start: l.MakePosition(start), End: l.MakePosition(end)}
}

// HasErrors reports whether any error-severity diagnostic was added.
func (l *List) HasErrors() bool { return l.hasErrors }

// Diagnostics returns every diagnostic added, in order.
func (l *List) Diagnostics() []Diagnostic { return l.diagnostics }

// Count returns the total number of diagnostics.
func (l *List) Count() int { return len(l.diagnostics) }

// ErrorCount returns the number of error-severity diagnostics.
func (l *List) ErrorCount() int {
	n := 0
	for _, d := range l.diagnostics {
		if d.Severity == Error {
			n++
		}
	}
	return n
}

// Format renders every diagnostic as a human-readable, caret-annotated
// report, one after another.
func (l *List) Format() string {
	if len(l.diagnostics) == 0 {
		return ""
	}
	var sb strings.Builder
	for i := range l.diagnostics {
		sb.WriteString(l.FormatDiagnostic(&l.diagnostics[i]))
		sb.WriteByte('\n')
	}
	return sb.String()
}

// FormatDiagnostic renders one diagnostic: its message line, a quoted
// source line, a caret under the offending range, any did-you-mean
// suggestions, and related notes.
func (l *List) FormatDiagnostic(d *Diagnostic) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%d:%d: %s: %s\n",
		d.Range.Start.Line, d.Range.Start.Column, d.Severity, d.Message))

	if line := l.sourceLine(d.Range.Start.Line); line != "" {
		sb.WriteString(fmt.Sprintf("    %s\n", line))
		caret := strings.Repeat(" ", d.Range.Start.Column-1+4) + "^"
		if d.Range.End.Line == d.Range.Start.Line && d.Range.End.Column > d.Range.Start.Column+1 {
			caret += strings.Repeat("~", d.Range.End.Column-d.Range.Start.Column-1)
		}
		sb.WriteString(caret)
		sb.WriteByte('\n')
	}

	if len(d.Suggestions) > 0 {
		sb.WriteString(fmt.Sprintf("  did you mean %s?\n", quoteJoin(d.Suggestions)))
	}

	for _, rel := range d.Related {
		sb.WriteString(fmt.Sprintf("  %d:%d: note: %s\n",
			rel.Range.Start.Line, rel.Range.Start.Column, rel.Message))
	}

	return sb.String()
}

func quoteJoin(ss []string) string {
	quoted := make([]string, len(ss))
	for i, s := range ss {
		quoted[i] = `"` + s + `"`
	}
	return strings.Join(quoted, ", ")
}

func (l *List) sourceLine(line int) string {
	if line < 1 {
		return ""
	}
	lines := strings.Split(l.source, "\n")
	if line > len(lines) {
		return ""
	}
	return strings.TrimRight(lines[line-1], "\r")
}

// Clear removes every collected diagnostic, used between commands in an
// interactive session.
func (l *List) Clear() {
	l.diagnostics = l.diagnostics[:0]
	l.hasErrors = false
}

// maxSuggestDistance bounds how different a candidate may be from the
// misspelled token before it's not worth suggesting at all.
const maxSuggestDistance = 3

// Suggest ranks candidates by Levenshtein distance to near and returns the
// closest max, distance ascending, dropping anything farther than
// maxSuggestDistance — cdecl's did-you-mean sink of §4.I.
func Suggest(near string, candidates []string, max int) []string {
	type scored struct {
		name string
		dist int
	}
	var ranked []scored
	for _, c := range candidates {
		d := levenshtein.Distance(near, c, nil)
		if d <= maxSuggestDistance {
			ranked = append(ranked, scored{c, d})
		}
	}
	for i := 1; i < len(ranked); i++ {
		for j := i; j > 0 && ranked[j].dist < ranked[j-1].dist; j-- {
			ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
		}
	}
	if len(ranked) > max {
		ranked = ranked[:max]
	}
	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}
	return out
}

// SuggestKind filters which kind of name a did-you-mean search draws
// candidates from.
type SuggestKind uint8

const (
	SuggestKeyword SuggestKind = 1 << iota
	SuggestTypedef
)

// SuggestBoth searches both keywords and typedef names.
const SuggestBoth = SuggestKeyword | SuggestTypedef

func (k SuggestKind) Has(mask SuggestKind) bool { return k&mask == mask }
