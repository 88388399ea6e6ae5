// Package printer renders a declaration AST (internal/ast) back into
// source text, in the two output modes of spec §4.H: "gibberish" (C/C++
// declaration syntax) and pseudo-English ("declare x as pointer to int").
// It keeps the teacher's low-level buffer/position-tracking printer shape
// (Options, Printer, the print/printSpace/printNewline helper family, and
// a switch-per-kind dispatch) re-pointed at declarators instead of WGSL
// statements.
package printer

import (
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/operator"
	"github.com/paul-j-lucas/cdecl/internal/session"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// DeclFlags are the gibberish output contract bits of §4.H.
type DeclFlags uint8

const (
	// FlagCast prints the node as an abstract (unnamed) type, for a cast
	// target or similar type-only context.
	FlagCast DeclFlags = 1 << iota
	// FlagDeclaration marks ordinary top-level declaration output (kept
	// as a bit rather than the absence of the others, mirroring the
	// spec's explicit flag set).
	FlagDeclaration
	// FlagTypedef prints the leading "typedef" keyword.
	FlagTypedef
	// FlagUsing selects "using Name = Type;" form over "typedef Type Name;".
	FlagUsing
	// FlagMultiDecl marks this declarator as one of several sharing a
	// type prefix; callers combine it with FlagOmitType on the second and
	// later declarators to get "int i, *j;" instead of repeating "int".
	FlagMultiDecl
	// FlagOmitType suppresses the base type and specifiers, printing only
	// the declarator — used by callers assembling "int i, *j;" by hand.
	FlagOmitType
	// FlagTrailingSemicolon appends ";" after the declaration.
	FlagTrailingSemicolon
)

// EnglishFlags are the English output contract bits of §4.H.
type EnglishFlags uint8

const (
	// EnglishOmitDeclare drops the leading "declare ... as" framing,
	// leaving just "name as <type phrase>" or the bare type phrase.
	EnglishOmitDeclare EnglishFlags = 1 << iota
)

// Options controls printer output: the process-level switches of §5 that
// bear on rendering (cv placement, alternative-token spelling, trailing
// return syntax) plus the current language, needed to decide nested-using
// scope syntax and operator spellings. Color is deliberately kept out of
// this package; the CLI layer wraps Printer output in color itself.
type Options struct {
	Lang           langver.Lang
	CV             session.CVPlacement
	AltOutput      session.AltOutputMode
	TrailingReturn bool
}

// FromSession extracts the subset of a session's options this package
// needs, so printer doesn't have to import the whole Session type.
func FromSession(o session.Options) Options {
	return Options{Lang: o.Lang, CV: o.CV, AltOutput: o.AltOutput, TrailingReturn: o.TrailingReturn}
}

// Printer renders declarator ASTs. One Printer is reused across calls;
// each entry point resets the buffer first.
type Printer struct {
	options Options

	buf    strings.Builder
	indent int

	// needsSpace tracks whether the next token should be preceded by a
	// space, mirroring the teacher's minify-aware spacing tracker even
	// though this package never minifies.
	needsSpace bool

	outputLine int
	outputCol  int
}

// New creates a new printer.
func New(options Options) *Printer {
	return &Printer{options: options}
}

// ----------------------------------------------------------------------------
// Output helpers
// ----------------------------------------------------------------------------

func (p *Printer) print(s string) {
	p.buf.WriteString(s)
	p.updatePosition(s)
	p.needsSpace = false
}

func (p *Printer) updatePosition(s string) {
	for _, c := range s {
		if c == '\n' {
			p.outputLine++
			p.outputCol = 0
		} else {
			p.outputCol++
		}
	}
}

func (p *Printer) printSpace() {
	p.buf.WriteByte(' ')
	p.outputCol++
	p.needsSpace = false
}

func (p *Printer) printNewline() {
	p.buf.WriteByte('\n')
	p.outputLine++
	p.outputCol = 0
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
		p.outputCol += 4
	}
	p.needsSpace = false
}

// altTokenWords/digraphs/trigraphs are the §4.H.6 alternative spellings for
// the punctuation cdecl's own printed tokens can take. Only the tokens the
// printer itself emits are routed through tok(); pass-through text (a
// parameter's default-value source, a tag name) is never rewritten.
var altTokenWords = map[string]string{
	"&":  "bitand",
	"&&": "and",
	"|":  "bitor",
	"^":  "xor",
	"~":  "compl",
	"!":  "not",
}

var digraphs = map[string]string{
	"[": "<:",
	"]": ":>",
	"{": "<%",
	"}": "%>",
	"#": "%:",
}

var trigraphs = map[string]string{
	"[": "??(",
	"]": "??)",
	"{": "??<",
	"}": "??>",
	"#": "??=",
	"^": "??'",
	"|": "??!",
	"~": "??-",
}

// tok substitutes s for its alternative spelling under the active
// AltOutput mode, or returns s unchanged.
func (p *Printer) tok(s string) string {
	var table map[string]string
	switch p.options.AltOutput {
	case session.AltTokens:
		table = altTokenWords
	case session.AltDigraphs:
		table = digraphs
	case session.AltTrigraphs:
		table = trigraphs
	default:
		return s
	}
	if alt, ok := table[s]; ok {
		return alt
	}
	return s
}

// ----------------------------------------------------------------------------
// Gibberish
// ----------------------------------------------------------------------------

// Gibberish implements §6.4's ast_gibberish(ast, flags, out).
func (p *Printer) Gibberish(a *ast.Arena, id ast.ID, flags DeclFlags) string {
	p.buf.Reset()
	h := a.Header(id)
	if h == nil {
		return ""
	}

	switch h.Kind {
	case ast.KindStructuredBinding:
		if sb, ok := a.Node(id).(*ast.StructuredBinding); ok {
			p.printStructuredBinding(sb)
		}
	case ast.KindCast:
		if c, ok := a.Node(id).(*ast.Cast); ok {
			p.printCastExpr(a, c)
		}
	default:
		name := ""
		if flags&FlagCast == 0 && h.SName != nil && !h.SName.Empty() {
			name = h.SName.Full()
		}
		if flags&FlagTypedef != 0 {
			p.print("typedef ")
		}
		if spec := p.specifiers(h); spec != "" {
			p.print(spec)
		}
		if flags&FlagOmitType != 0 {
			core, _ := p.decl(a, id, name)
			p.print(core)
		} else {
			p.print(p.typeAndDeclNamed(a, id, name))
		}
	}
	if flags&FlagTrailingSemicolon != 0 {
		p.print(";")
	}
	return p.buf.String()
}

func (p *Printer) printStructuredBinding(n *ast.StructuredBinding) {
	if cv := p.cvWords(n.Header.Type.Storage); cv != "" {
		p.print(cv)
		p.printSpace()
	}
	p.print("auto ")
	p.print(p.tok("["))
	p.print(strings.Join(n.Names, ", "))
	p.print(p.tok("]"))
}

func (p *Printer) printCastExpr(a *ast.Arena, n *ast.Cast) {
	target := p.typeAndDecl(a, n.To)
	switch n.Kind {
	case ast.CastStatic:
		p.print("static_cast<" + target + ">()")
	case ast.CastConst:
		p.print("const_cast<" + target + ">()")
	case ast.CastDynamic:
		p.print("dynamic_cast<" + target + ">()")
	case ast.CastReinterpret:
		p.print("reinterpret_cast<" + target + ">()")
	default:
		p.print("(" + target + ")")
	}
}

// typeAndDecl renders id as an abstract (unnamed) type-and-declarator,
// e.g. for a cast target, enum underlying type, or user-defined
// conversion's target type.
func (p *Printer) typeAndDecl(a *ast.Arena, id ast.ID) string {
	return p.typeAndDeclNamed(a, id, "")
}

// typeAndDeclNamed renders id's base type plus its declarator chain, with
// name spliced in at the declarator's root (its own SName if name is "").
// The base id comes from decl's own terminal return, not ast.Arena.Leaf:
// Leaf only follows the single-child of/to/for slots, while a function-like
// root's base type sits behind its Return field, which decl already knows
// how to walk.
func (p *Printer) typeAndDeclNamed(a *ast.Arena, id ast.ID, name string) string {
	core, base := p.decl(a, id, name)
	baseH := a.Header(base)
	var west, east string
	if baseH != nil {
		if cv := p.cvWords(baseH.Type.Storage); cv != "" {
			if p.options.CV == session.CVEast {
				east = " " + cv
			} else {
				west = cv + " "
			}
		}
	}
	baseText := p.baseType(a, base)

	var sb strings.Builder
	sb.WriteString(west)
	sb.WriteString(baseText)
	sb.WriteString(east)
	if core != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(core)
	}
	return strings.TrimSpace(sb.String())
}

// decl walks the declarator chain rooted at id, accumulating the
// declarator text around name as it goes, per the classic "declare"
// right-to-left precedence algorithm: a pointer/reference level wraps
// whatever it points/refers to in parentheses only when that target is
// itself an array or function (§4.H.2's west/east spacing sits on top of
// this shape, not inside it). It returns the accumulated declarator text
// and the id of the terminal (base-type) node reached.
func (p *Printer) decl(a *ast.Arena, id ast.ID, name string) (string, ast.ID) {
	switch n := a.Node(id).(type) {
	case *ast.Pointer:
		core := p.tok("*") + p.ptrCV(n.Header.Type.Storage) + name
		if p.needsGroup(a, n.To) {
			core = "(" + core + ")"
		}
		return p.decl(a, n.To, core)

	case *ast.PointerToMember:
		cls := ""
		if n.Class != nil {
			cls = n.Class.Name
		}
		core := cls + "::" + p.tok("*") + p.ptrCV(n.Header.Type.Storage) + name
		if p.needsGroup(a, n.To) {
			core = "(" + core + ")"
		}
		return p.decl(a, n.To, core)

	case *ast.Reference:
		core := p.tok("&") + name
		if p.needsGroup(a, n.To) {
			core = "(" + core + ")"
		}
		return p.decl(a, n.To, core)

	case *ast.RvalueReference:
		core := p.tok("&&") + name
		if p.needsGroup(a, n.To) {
			core = "(" + core + ")"
		}
		return p.decl(a, n.To, core)

	case *ast.Array:
		core := name + p.arraySuffix(n)
		return p.decl(a, n.Of, core)

	case *ast.Function:
		var core string
		if n.Header.Kind == ast.KindAppleBlock {
			core = "(" + p.tok("^") + name + ")(" + p.paramsString(a, n.Params) + ")" + p.funcQualifiers(n.Header.Type.Storage)
		} else {
			core = name + "(" + p.paramsString(a, n.Params) + ")" + p.funcQualifiers(n.Header.Type.Storage)
		}
		if n.Return == ast.NoID {
			return core, id
		}
		if p.options.TrailingReturn && langver.From(langver.CPP11).Has(p.options.Lang) {
			ret := p.typeAndDecl(a, n.Return)
			return "auto " + core + " -> " + ret, ast.NoID
		}
		return p.decl(a, n.Return, core)

	case *ast.Ctor:
		return name + "(" + p.paramsString(a, n.Params) + ")" + p.funcQualifiers(n.Header.Type.Storage), id

	case *ast.Dtor:
		return "~" + name + "()" + p.funcQualifiers(n.Header.Type.Storage), id

	case *ast.Operator:
		opName := "operator" + p.operatorSpace(n.Op) + p.operatorSpelling(n.Op)
		core := opName + "(" + p.paramsString(a, n.Params) + ")" + p.funcQualifiers(n.Header.Type.Storage)
		if n.Return == ast.NoID {
			return core, id
		}
		return p.decl(a, n.Return, core)

	case *ast.UserDefinedConversion:
		target := p.typeAndDecl(a, n.To)
		return "operator " + target + "()" + p.funcQualifiers(n.Header.Type.Storage), id

	case *ast.UserDefinedLiteral:
		core := `operator"" ` + name + "(" + p.paramsString(a, n.Params) + ")"
		if n.Return == ast.NoID {
			return core, id
		}
		return p.decl(a, n.Return, core)

	case *ast.Lambda:
		return p.lambdaText(a, n), id

	default:
		// Builtin, Enum, Class, Concept, Typedef, Name, Variadic,
		// Placeholder: the declarator chain terminates here; the caller
		// renders the base type from this id separately.
		return name, id
	}
}

// needsGroup reports whether a pointer/reference level must parenthesize
// its accumulated declarator before descending into to, because to is an
// array or a function-like kind that would otherwise bind tighter than
// the * or & that precedes it (`int (*p)[3]`, not `int *p[3]`).
func (p *Printer) needsGroup(a *ast.Arena, to ast.ID) bool {
	h := a.Header(to)
	if h == nil {
		return false
	}
	if h.Kind == ast.KindArray {
		return true
	}
	return h.Kind.IsFunctionLike()
}

// ptrCV renders the cv-qualifiers that apply to a pointer/reference itself
// (`int *const p`), always immediately after the sigil regardless of the
// west/east option — that option governs only the base type's own
// qualifiers, per this package's §4.H.2 simplification (see DESIGN.md).
func (p *Printer) ptrCV(s typeid.Storage) string {
	if cv := p.cvWords(s); cv != "" {
		return cv + " "
	}
	return ""
}

const cvMask = typeid.StorageConst | typeid.StorageVolatile | typeid.StorageRestrict | typeid.StorageAtomic

func (p *Printer) cvWords(s typeid.Storage) string {
	return s.Intersect(cvMask).String()
}

// specMask is every non-cv storage bit that prints as a prefix specifier
// before the base type, regardless of the CV placement option.
const specMask = typeid.StorageExtern | typeid.StorageExternC | typeid.StorageStatic | typeid.StorageRegister |
	typeid.StorageInline | typeid.StorageVirtual | typeid.StoragePureVirtual | typeid.StorageExplicit |
	typeid.StorageMutable | typeid.StorageConstexpr | typeid.StorageConsteval | typeid.StorageConstinit |
	typeid.StorageFriend

func (p *Printer) specifiers(h *ast.Header) string {
	s := h.Type.Storage.Intersect(specMask).String()
	if s == "" {
		return ""
	}
	return s + " "
}

func (p *Printer) arraySuffix(n *ast.Array) string {
	var inner strings.Builder
	if n.Header.Type.Storage.Has(typeid.StorageArrayStatic) {
		inner.WriteString("static ")
	}
	if cv := p.cvWords(n.Header.Type.Storage); cv != "" {
		inner.WriteString(cv)
		inner.WriteByte(' ')
	}
	switch n.SizeKind {
	case ast.SizeInt:
		inner.WriteString(strconv.FormatInt(n.SizeInt, 10))
	case ast.SizeNamed:
		inner.WriteString(n.SizeNamed)
	case ast.SizeVLA:
		inner.WriteString("*")
	}
	return p.tok("[") + inner.String() + p.tok("]")
}

func (p *Printer) paramsString(a *ast.Arena, params []ast.Param) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, prm := range params {
		if _, ok := a.Node(prm.ID).(*ast.Variadic); ok {
			parts = append(parts, "...")
			continue
		}
		text := p.typeAndDecl(a, prm.ID)
		if prm.Default != "" {
			text += " = " + prm.Default
		}
		parts = append(parts, text)
	}
	return strings.Join(parts, ", ")
}

func (p *Printer) funcQualifiers(s typeid.Storage) string {
	var parts []string
	if s.Has(typeid.StorageConst) {
		parts = append(parts, "const")
	}
	if s.Has(typeid.StorageVolatile) {
		parts = append(parts, "volatile")
	}
	if s.Has(typeid.StorageRefQualifier) {
		parts = append(parts, p.tok("&"))
	}
	if s.Has(typeid.StorageRvalueRefQualifier) {
		parts = append(parts, p.tok("&&"))
	}
	if s.Has(typeid.StorageNoexcept) {
		parts = append(parts, "noexcept")
	} else if s.Has(typeid.StorageThrow) {
		parts = append(parts, "throw()")
	}
	if s.Has(typeid.StorageOverride) {
		parts = append(parts, "override")
	}
	if s.Has(typeid.StorageFinal) {
		parts = append(parts, "final")
	}
	if s.Has(typeid.StoragePureVirtual) {
		parts = append(parts, "= 0")
	}
	if s.Has(typeid.StorageDefault) {
		parts = append(parts, "= default")
	}
	if s.Has(typeid.StorageDelete) {
		parts = append(parts, "= delete")
	}
	if len(parts) == 0 {
		return ""
	}
	return " " + strings.Join(parts, " ")
}

func (p *Printer) operatorSpelling(op operator.ID) string {
	row, ok := operator.Table(op, p.options.Lang)
	if !ok {
		return ""
	}
	return row.Literal
}

// operatorSpace reports the separator between "operator" and its spelling:
// a space before a word operator (`operator new`), none before a symbol
// one (`operator+`).
func (p *Printer) operatorSpace(op operator.ID) string {
	s := p.operatorSpelling(op)
	if s == "" {
		return ""
	}
	c := s[0]
	if c >= 'a' && c <= 'z' {
		return " "
	}
	return ""
}

func (p *Printer) captureText(c ast.Capture) string {
	switch c.Kind {
	case ast.CaptureCopy:
		return "="
	case ast.CaptureReference:
		return p.tok("&")
	case ast.CaptureVariable:
		return c.Name
	case ast.CaptureThis:
		return "this"
	case ast.CaptureStarThis:
		return "*this"
	default:
		return ""
	}
}

func (p *Printer) lambdaText(a *ast.Arena, n *ast.Lambda) string {
	caps := make([]string, 0, len(n.Captures))
	for _, c := range n.Captures {
		caps = append(caps, p.captureText(c))
	}
	var sb strings.Builder
	sb.WriteString(p.tok("["))
	sb.WriteString(strings.Join(caps, ", "))
	sb.WriteString(p.tok("]"))
	sb.WriteString("(")
	sb.WriteString(p.paramsString(a, n.Params))
	sb.WriteString(")")
	sb.WriteString(p.funcQualifiers(n.Header.Type.Storage))
	if n.Return != ast.NoID {
		if ret := p.typeAndDecl(a, n.Return); ret != "" {
			sb.WriteString(" -> ")
			sb.WriteString(ret)
		}
	}
	sb.WriteString(" ")
	sb.WriteString(p.tok("{"))
	sb.WriteString(" ")
	sb.WriteString(p.tok("}"))
	return sb.String()
}

// baseType renders the terminal node of a declarator chain: the
// fundamental type, tag type, typedef name, or concept name the
// declarator ultimately names.
func (p *Printer) baseType(a *ast.Arena, id ast.ID) string {
	h := a.Header(id)
	if h == nil {
		return ""
	}
	switch n := a.Node(id).(type) {
	case *ast.Builtin:
		return p.builtinText(h.Type, n.BitWidth)
	case *ast.Enum:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		s := "enum"
		if name != "" {
			s += " " + name
		}
		if n.Underlying != ast.NoID {
			s += " : " + p.typeAndDecl(a, n.Underlying)
		}
		if n.BitWidth > 0 {
			s += " : " + strconv.Itoa(n.BitWidth)
		}
		return s
	case *ast.Class:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		s := h.Kind.String()
		if name != "" {
			s += " " + name
		}
		return s
	case *ast.Concept:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		return "concept " + name
	case *ast.Typedef:
		if h.SName != nil && !h.SName.Empty() {
			return h.SName.Full()
		}
		return ""
	case *ast.Name:
		return n.Ident
	case *ast.Variadic:
		return "..."
	default:
		return ""
	}
}

func (p *Printer) builtinText(t typeid.TID, bitWidth int) string {
	s := t.Base.String()
	if t.Base.Has(typeid.BaseBitInt) {
		s += "(" + strconv.Itoa(bitWidth) + ")"
	}
	return s
}

// ----------------------------------------------------------------------------
// English
// ----------------------------------------------------------------------------

// English implements §6.4's ast_english(ast, flags, out): cdecl's classic
// "declare x as pointer to int" pseudo-English rendering.
func (p *Printer) English(a *ast.Arena, id ast.ID, flags EnglishFlags) string {
	p.buf.Reset()
	h := a.Header(id)
	if h == nil {
		return ""
	}
	name := ""
	if h.SName != nil && !h.SName.Empty() {
		name = h.SName.Full()
	}
	if flags&EnglishOmitDeclare == 0 {
		p.print("declare ")
		if name != "" {
			p.print(name)
			p.printSpace()
		}
		p.print("as ")
	} else if name != "" {
		p.print(name)
		p.print(" as ")
	}
	p.print(p.englishType(a, id))
	return p.buf.String()
}

func (p *Printer) englishType(a *ast.Arena, id ast.ID) string {
	h := a.Header(id)
	if h == nil {
		return ""
	}
	spec := strings.TrimSpace(p.specifiers(h))
	cv := p.cvWords(h.Type.Storage)

	prefix := ""
	if spec != "" {
		prefix = spec + " "
	}
	if cv != "" {
		prefix += cv + " "
	}

	switch n := a.Node(id).(type) {
	case *ast.Pointer:
		return prefix + "pointer to " + p.englishType(a, n.To)
	case *ast.PointerToMember:
		cls := ""
		if n.Class != nil {
			cls = n.Class.Name
		}
		return prefix + "pointer to member of class " + cls + " " + p.englishType(a, n.To)
	case *ast.Reference:
		return prefix + "reference to " + p.englishType(a, n.To)
	case *ast.RvalueReference:
		return prefix + "rvalue reference to " + p.englishType(a, n.To)
	case *ast.Array:
		return prefix + "array " + p.englishArraySize(n) + "of " + p.englishType(a, n.Of)
	case *ast.Function:
		kw := "function"
		if h.Kind == ast.KindAppleBlock {
			kw = "block"
		}
		params := p.englishParams(a, n.Params)
		ret := "void"
		if n.Return != ast.NoID {
			ret = p.englishType(a, n.Return)
		}
		s := prefix + kw
		if params != "" {
			s += " (" + params + ")"
		}
		return s + " returning " + ret
	case *ast.Ctor:
		return prefix + "constructor (" + p.englishParams(a, n.Params) + ")"
	case *ast.Dtor:
		return prefix + "destructor"
	case *ast.Operator:
		params := p.englishParams(a, n.Params)
		ret := "void"
		if n.Return != ast.NoID {
			ret = p.englishType(a, n.Return)
		}
		return prefix + "operator " + p.operatorSpelling(n.Op) + " (" + params + ") returning " + ret
	case *ast.UserDefinedConversion:
		return prefix + "user-defined conversion to " + p.englishType(a, n.To)
	case *ast.UserDefinedLiteral:
		ret := "void"
		if n.Return != ast.NoID {
			ret = p.englishType(a, n.Return)
		}
		return prefix + "user-defined literal (" + p.englishParams(a, n.Params) + ") returning " + ret
	case *ast.Lambda:
		return prefix + "lambda"
	case *ast.Variadic:
		return "variadic"
	case *ast.Builtin:
		return prefix + p.builtinText(h.Type, n.BitWidth)
	case *ast.Enum:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		return prefix + strings.TrimSpace("enum " + name)
	case *ast.Class:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		return prefix + strings.TrimSpace(h.Kind.String()+" "+name)
	case *ast.Concept:
		name := ""
		if n.Tag != nil {
			name = n.Tag.Name
		}
		return prefix + "concept " + name
	case *ast.Typedef:
		if h.SName != nil && !h.SName.Empty() {
			return prefix + h.SName.Full()
		}
		return prefix
	default:
		return strings.TrimSpace(prefix)
	}
}

func (p *Printer) englishArraySize(n *ast.Array) string {
	switch n.SizeKind {
	case ast.SizeInt:
		return strconv.FormatInt(n.SizeInt, 10) + " "
	case ast.SizeNamed:
		return n.SizeNamed + " "
	case ast.SizeVLA:
		return "variable length "
	default:
		return ""
	}
}

func (p *Printer) englishParams(a *ast.Arena, params []ast.Param) string {
	if len(params) == 0 {
		return ""
	}
	parts := make([]string, 0, len(params))
	for _, prm := range params {
		if _, ok := a.Node(prm.ID).(*ast.Variadic); ok {
			parts = append(parts, "variadic")
			continue
		}
		h := a.Header(prm.ID)
		name := ""
		if h != nil && h.SName != nil && !h.SName.Empty() {
			name = h.SName.Full()
		}
		t := p.englishType(a, prm.ID)
		if name != "" {
			parts = append(parts, name+" as "+t)
		} else {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, ", ")
}

// ----------------------------------------------------------------------------
// Typedef printing
// ----------------------------------------------------------------------------

// TypedefGibberish implements §6.4's typedef_gibberish(td, flags, out):
// `typedef Type Name;` or, when flags carries FlagUsing, `using Name =
// Type;`, opening and symmetrically closing any namespace scopes the
// alias's scoped name carries, per §4.H.4.
func (p *Printer) TypedefGibberish(rec typedefreg.Record, flags DeclFlags) string {
	p.buf.Reset()
	local, nsScopes, qualPrefix := p.splitTypedefName(rec.SName)
	closeBraces, shortForm := p.openNamespaces(nsScopes)

	name := qualPrefix + local
	if flags&FlagUsing != 0 {
		p.print("using ")
		p.print(local)
		p.print(" = ")
		p.print(p.typeAndDecl(rec.Arena, rec.Root))
	} else {
		p.print("typedef ")
		p.print(p.typeAndDeclNamed(rec.Arena, rec.Root, name))
	}
	p.print(";")
	p.closeNamespaces(closeBraces, shortForm)
	return p.buf.String()
}

// TypedefEnglish implements §6.4's typedef_english(td, out): "Name as
// <type phrase>", the form cdecl uses to describe an existing typedef.
func (p *Printer) TypedefEnglish(rec typedefreg.Record) string {
	p.buf.Reset()
	p.print(rec.SName.Full())
	p.print(" as ")
	p.print(p.englishType(rec.Arena, rec.Root))
	return p.buf.String()
}

// splitTypedefName decides how an alias's scoped name should be printed:
// if every outer scope is a (possibly inline) namespace, they're returned
// separately so the caller can open them as braces; otherwise the whole
// scope chain is folded into a "::"-qualified prefix on the local name.
func (p *Printer) splitTypedefName(sn *sname.SName) (local string, nsScopes []sname.Scope, qualPrefix string) {
	local = sn.Local()
	scopes := sn.Scopes()
	if len(scopes) <= 1 {
		return local, nil, ""
	}
	outer := scopes[:len(scopes)-1]
	for _, s := range outer {
		if s.Kind != sname.KindNamespace && s.Kind != sname.KindInlineNamespace {
			return local, nil, sn.ScopeName() + "::"
		}
	}
	return local, outer, ""
}

// openNamespaces opens nsScopes, using the C++17 nested-namespace form
// (`namespace A::B { `) when every scope is a plain (non-inline) namespace
// and the language supports it, else one `namespace` per scope. It
// returns how many closing braces are owed and whether the short form was
// used (so closeNamespaces emits exactly one `}` for it).
func (p *Printer) openNamespaces(scopes []sname.Scope) (owed int, shortForm bool) {
	if len(scopes) == 0 {
		return 0, false
	}
	allPlain := true
	for _, s := range scopes {
		if s.Kind != sname.KindNamespace {
			allPlain = false
			break
		}
	}
	if allPlain && len(scopes) > 1 && langver.From(langver.CPP17).Has(p.options.Lang) {
		ids := make([]string, 0, len(scopes))
		for _, s := range scopes {
			ids = append(ids, s.ID)
		}
		p.print("namespace " + strings.Join(ids, "::") + " { ")
		return 1, true
	}
	for _, s := range scopes {
		kw := "namespace"
		if s.Kind == sname.KindInlineNamespace {
			kw = "inline namespace"
		}
		p.print(kw + " " + s.ID + " { ")
	}
	return len(scopes), false
}

func (p *Printer) closeNamespaces(owed int, shortForm bool) {
	if owed == 0 {
		return
	}
	if shortForm {
		p.print(" }")
		return
	}
	for i := 0; i < owed; i++ {
		p.print(" }")
	}
}
