package declfmt

import (
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// parseEnglishDeclare parses the top-level pseudo-English declaration
// grammar of §8.4's worked examples:
//
//	declare <name> as <type-phrase>
//	<name> ::= ( dtor-name | ctor-name | scoped-ident )
//	<type-phrase> ::= storage* ( array-phrase | pointer-phrase |
//	                  reference-phrase | function-phrase | base-phrase )
func (p *Parser) parseEnglishDeclare() (ast.ID, bool) {
	p.accept("declare")

	var name *sname.SName
	if p.cur().Kind == TokIdent && !p.isPhraseKeyword(p.word()) {
		sn, ok := p.parseEnglishName()
		if !ok {
			return ast.NoID, false
		}
		name = sn
	}
	if !p.accept("as") {
		p.errf("expected \"as\"")
		return ast.NoID, false
	}

	root, ok := p.parseEnglishTypePhrase()
	if !ok {
		return ast.NoID, false
	}
	if name != nil {
		if h := p.arena.Header(p.arena.Leaf(root)); h != nil {
			h.SName = name
		}
		if h := p.arena.Header(root); h != nil && h.SName == nil {
			h.SName = name
		}
	}
	return root, true
}

func (p *Parser) parseEnglishName() (*sname.SName, bool) {
	if p.cur().Kind == TokTilde {
		p.advance()
		id := p.advance().Value
		sn := sname.New()
		_ = sn.Append(id, sname.KindUnknown)
		_ = sn.Append("~"+id, sname.KindUnknown)
		return sn, true
	}
	sn := sname.New()
	for {
		if p.cur().Kind != TokIdent {
			p.errf("expected identifier")
			return nil, false
		}
		id := p.advance().Value
		if err := sn.Append(id, sname.KindUnknown); err != nil {
			p.errf("%v", err)
			return nil, false
		}
		if p.cur().Kind == TokColonColon {
			p.advance()
			continue
		}
		break
	}
	return sn, true
}

var phraseKeywords = map[string]bool{
	"array": true, "pointer": true, "reference": true, "rvalue": true,
	"function": true, "const": true, "volatile": true, "restrict": true,
	"non-empty": true, "variable-length": true,
}

func (p *Parser) isPhraseKeyword(w string) bool { return phraseKeywords[w] }

// parseEnglishTypePhrase parses one level of the recursive type-phrase
// grammar, building the AST bottom-up via astbuild (the innermost phrase
// becomes the leaf builtin/CSU/typedef; each wrapping phrase calls
// AddArray/AddFunc/Pointer/NewReference around it).
func (p *Parser) parseEnglishTypePhrase() (ast.ID, bool) {
	switch {
	case p.accept("non-empty"):
		if !p.accept("array") {
			p.errf("expected \"array\" after \"non-empty\"")
			return ast.NoID, false
		}
		return p.parseEnglishArray(true)

	case p.is("array"):
		p.advance()
		return p.parseEnglishArray(false)

	case p.accept("pointer"):
		if !p.accept("to") {
			p.errf("expected \"to\" after \"pointer\"")
			return ast.NoID, false
		}
		to, ok := p.parseEnglishTypePhrase()
		if !ok {
			return ast.NoID, false
		}
		return p.build.Pointer(to), true

	case p.accept("reference"):
		if !p.accept("to") {
			p.errf("expected \"to\" after \"reference\"")
			return ast.NoID, false
		}
		to, ok := p.parseEnglishTypePhrase()
		if !ok {
			return ast.NoID, false
		}
		r := p.arena.NewReference(p.depth)
		p.arena.SetChildSlot(r, to)
		return r, true

	case p.accept("rvalue"):
		p.accept("reference")
		if !p.accept("to") {
			p.errf("expected \"to\" after \"rvalue reference\"")
			return ast.NoID, false
		}
		to, ok := p.parseEnglishTypePhrase()
		if !ok {
			return ast.NoID, false
		}
		r := p.arena.NewRvalueReference(p.depth)
		p.arena.SetChildSlot(r, to)
		return r, true

	case p.accept("function"):
		return p.parseEnglishFunction()

	case p.is("const"), p.is("volatile"), p.is("restrict"), p.is("atomic"):
		return p.parseEnglishQualified()

	default:
		return p.parseEnglishBase()
	}
}

func (p *Parser) parseEnglishQualified() (ast.ID, bool) {
	var storage typeid.Storage
	for {
		switch {
		case p.accept("const"):
			storage |= typeid.StorageConst
		case p.accept("volatile"):
			storage |= typeid.StorageVolatile
		case p.accept("restrict"):
			storage |= typeid.StorageRestrict
		case p.accept("atomic"):
			storage |= typeid.StorageAtomic
		default:
			inner, ok := p.parseEnglishTypePhrase()
			if !ok {
				return ast.NoID, false
			}
			if h := p.arena.Header(inner); h != nil {
				h.Type.Storage |= storage
			}
			return inner, true
		}
	}
}

// parseEnglishArray parses "[N|name] of <type-phrase>" after "array" has
// already been consumed.
func (p *Parser) parseEnglishArray(nonEmpty bool) (ast.ID, bool) {
	a := p.arena.NewArray(p.depth)
	if h := p.arena.Header(a); h != nil && nonEmpty {
		h.Type.Storage |= typeid.StorageArrayStatic
	}
	if n, ok := p.arena.Node(a).(*ast.Array); ok {
		switch {
		case p.cur().Kind == TokNumber:
			v, _ := strconv.ParseInt(p.advance().Value, 0, 64)
			n.SizeKind = ast.SizeInt
			n.SizeInt = v
		case p.cur().Kind == TokIdent && !p.is("of"):
			n.SizeKind = ast.SizeNamed
			n.SizeNamed = p.advance().Value
		default:
			n.SizeKind = ast.SizeNone
		}
	}
	if !p.accept("of") {
		p.errf("expected \"of\" in array phrase")
		return ast.NoID, false
	}
	of, ok := p.parseEnglishTypePhrase()
	if !ok {
		return ast.NoID, false
	}
	return p.build.AddArray(p.arena.NewPlaceholder(p.depth), a, of), true
}

// parseEnglishFunction parses the optional "(params)" and mandatory
// "returning <type-phrase>" after "function" has already been consumed.
func (p *Parser) parseEnglishFunction() (ast.ID, bool) {
	fn := p.arena.NewFunction(ast.KindFunction, p.depth)
	if p.cur().Kind == TokLParen {
		p.advance()
		if !p.parseEnglishParamList(fn) {
			return ast.NoID, false
		}
		if p.cur().Kind != TokRParen {
			p.errf("expected \")\"")
			return ast.NoID, false
		}
		p.advance()
	}
	if !p.accept("returning") {
		p.errf("expected \"returning\"")
		return ast.NoID, false
	}
	ret, ok := p.parseEnglishTypePhrase()
	if !ok {
		return ast.NoID, false
	}
	return p.build.AddFunc(p.arena.NewPlaceholder(p.depth), fn, ret), true
}

func (p *Parser) parseEnglishParamList(fn ast.ID) bool {
	if p.cur().Kind == TokRParen {
		return true
	}
	for {
		if p.is("void") && p.peekIsCloseAfterVoid() {
			p.advance()
			return true
		}
		if !p.parseEnglishParam(fn) {
			return false
		}
		if p.cur().Kind == TokComma {
			p.advance()
			continue
		}
		break
	}
	return true
}

// peekIsCloseAfterVoid reports whether the token after the current "void"
// identifier closes the parameter list, distinguishing a bare "(void)"
// marker from a parameter whose type happens to start with "void".
func (p *Parser) peekIsCloseAfterVoid() bool {
	if p.pos+1 < len(p.toks) {
		return p.toks[p.pos+1].Kind == TokRParen
	}
	return false
}

func (p *Parser) parseEnglishParam(fn ast.ID) bool {
	if p.cur().Kind == TokEllipsis {
		p.advance()
		v := p.arena.NewVariadic(p.depth)
		p.build.AppendParam(fn, ast.Param{ID: v})
		return true
	}
	var name *sname.SName
	if p.cur().Kind == TokIdent && !p.isPhraseKeyword(p.word()) {
		sn, ok := p.parseEnglishName()
		if !ok {
			return false
		}
		name = sn
		if !p.accept("as") {
			p.errf("expected \"as\" in parameter")
			return false
		}
	}
	ty, ok := p.parseEnglishTypePhrase()
	if !ok {
		return false
	}
	if name != nil {
		if h := p.arena.Header(ty); h != nil {
			h.SName = name
		}
	}
	p.build.AppendParam(fn, ast.Param{ID: ty})
	return true
}

// parseEnglishBase parses the innermost leaf of a type-phrase: a builtin
// type name (with modifiers), a CSU/enum tag, or a bare identifier
// resolved against the typedef registry.
func (p *Parser) parseEnglishBase() (ast.ID, bool) {
	switch {
	case p.accept("struct"):
		return p.parseEnglishCSU(ast.KindStruct, typeid.BaseStruct)
	case p.accept("class"):
		return p.parseEnglishCSU(ast.KindClass, typeid.BaseClass)
	case p.accept("union"):
		return p.parseEnglishCSU(ast.KindUnion, typeid.BaseUnion)
	case p.accept("enum"):
		return p.parseEnglishEnum()
	}

	if p.cur().Kind != TokIdent {
		p.errf("expected a type")
		return ast.NoID, false
	}

	if rec := p.typedefs.FindName(p.word()); rec != nil {
		p.advance()
		imported := p.arena.Import(rec.Arena, rec.Root, p.depth)
		return imported, true
	}

	base, width := p.parseEnglishBuiltinWords()
	if base == 0 {
		p.errf("unknown type %q", p.cur().Value)
		return ast.NoID, false
	}
	b := p.arena.NewBuiltin(p.depth)
	if h := p.arena.Header(b); h != nil {
		h.Type.Base = base
	}
	if n, ok := p.arena.Node(b).(*ast.Builtin); ok {
		n.BitWidth = width
	}
	return b, true
}

func (p *Parser) parseEnglishCSU(kind ast.Kind, base typeid.Base) (ast.ID, bool) {
	c := p.arena.NewClass(kind, p.depth)
	if h := p.arena.Header(c); h != nil {
		h.Type.Base = base
	}
	if p.cur().Kind == TokIdent {
		if n, ok := p.arena.Node(c).(*ast.Class); ok {
			n.Tag = &ast.SNameHolder{Name: p.advance().Value}
		}
	}
	return c, true
}

func (p *Parser) parseEnglishEnum() (ast.ID, bool) {
	e := p.arena.NewEnum(p.depth)
	if h := p.arena.Header(e); h != nil {
		h.Type.Base = typeid.BaseEnum
	}
	if p.cur().Kind == TokIdent {
		if n, ok := p.arena.Node(e).(*ast.Enum); ok {
			n.Tag = &ast.SNameHolder{Name: p.advance().Value}
		}
	}
	return e, true
}

// parseEnglishBuiltinWords greedily consumes a run of builtin-type words
// ("unsigned", "long", "long", "int", ...) and returns the combined,
// normalized Base bits plus a _BitInt width if one was given.
func (p *Parser) parseEnglishBuiltinWords() (typeid.Base, int) {
	var base typeid.Base
	width := 0
	consumed := false
	for p.cur().Kind == TokIdent {
		w := strings.ToLower(p.cur().Value)
		bit, ok := builtinWords[w]
		if !ok {
			break
		}
		p.advance()
		consumed = true
		base |= bit
		if w == "_bitint" || w == "bitint" {
			if p.cur().Kind == TokLParen {
				p.advance()
				if p.cur().Kind == TokNumber {
					width, _ = strconv.Atoi(p.advance().Value)
				}
				if p.cur().Kind == TokRParen {
					p.advance()
				}
			}
		}
	}
	if !consumed {
		return 0, 0
	}
	return typeid.TID{Base: base}.Normalize().Base, width
}

var builtinWords = map[string]typeid.Base{
	"void":     typeid.BaseVoid,
	"bool":     typeid.BaseBool,
	"char":     typeid.BaseChar,
	"char8_t":  typeid.BaseChar8T,
	"char16_t": typeid.BaseChar16T,
	"char32_t": typeid.BaseChar32T,
	"wchar_t":  typeid.BaseWCharT,
	"int":      typeid.BaseInt,
	"signed":   typeid.BaseSigned,
	"unsigned": typeid.BaseUnsigned,
	"short":    typeid.BaseShort,
	"long":     typeid.BaseLong,
	"float":    typeid.BaseFloat,
	"double":   typeid.BaseDouble,
	"_bitint":  typeid.BaseBitInt,
	"bitint":   typeid.BaseBitInt,
	"_accum":   typeid.BaseAccum,
	"_fract":   typeid.BaseFract,
	"_sat":     typeid.BaseSat,
	"auto":     typeid.BaseAuto,
}
