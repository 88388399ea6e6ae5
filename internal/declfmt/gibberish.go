package declfmt

import (
	"strconv"
	"strings"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/sname"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// typeSpec is the accumulated result of parsing a declaration's leading
// type-specifier run (storage/cv keywords plus exactly one base-type
// specifier), kept separate from any AST node because each declarator in a
// multi-declarator list ("int i, *j;") needs its own fresh leaf node built
// from the same spec (§4.H.1/§4.G.list's shared-prefix rule).
type typeSpec struct {
	tid        typeid.TID
	kind       ast.Kind // KindBuiltin, KindClass/Struct/Union, KindEnum, or KindTypedef
	tag        string
	bitWidth   int
	typedefRec *typedefreg.Record
	haveBase   bool
}

var storageWords = map[string]typeid.Storage{
	"static":    typeid.StorageStatic,
	"register":  typeid.StorageRegister,
	"typedef":   typeid.StorageTypedef,
	"friend":    typeid.StorageFriend,
	"inline":    typeid.StorageInline,
	"virtual":   typeid.StorageVirtual,
	"explicit":  typeid.StorageExplicit,
	"mutable":   typeid.StorageMutable,
	"constexpr": typeid.StorageConstexpr,
	"consteval": typeid.StorageConsteval,
	"constinit": typeid.StorageConstinit,
	"const":     typeid.StorageConst,
	"volatile":  typeid.StorageVolatile,
	"restrict":  typeid.StorageRestrict,
	"__restrict": typeid.StorageRestrict,
	"_atomic":   typeid.StorageAtomic,
	"final":     typeid.StorageFinal,
	"override":  typeid.StorageOverride,
}

// parseTypeSpecifiers parses the leading storage/cv/base-type run of a
// declaration, e.g. "static const unsigned long int" or "struct Point" or
// a typedef name.
func (p *Parser) parseTypeSpecifiers() (typeSpec, bool) {
	var spec typeSpec
	spec.kind = ast.KindBuiltin

	for p.cur().Kind == TokIdent {
		w := strings.ToLower(p.cur().Value)

		if w == "extern" {
			p.advance()
			if p.cur().Kind == TokString {
				p.advance() // "C" linkage string
				spec.tid.Storage |= typeid.StorageExternC
			} else {
				spec.tid.Storage |= typeid.StorageExtern
			}
			continue
		}
		if bit, ok := storageWords[w]; ok {
			p.advance()
			spec.tid.Storage |= bit
			continue
		}
		if w == "struct" || w == "class" || w == "union" {
			if spec.haveBase {
				break
			}
			p.advance()
			switch w {
			case "struct":
				spec.kind, spec.tid.Base = ast.KindStruct, typeid.BaseStruct
			case "class":
				spec.kind, spec.tid.Base = ast.KindClass, typeid.BaseClass
			case "union":
				spec.kind, spec.tid.Base = ast.KindUnion, typeid.BaseUnion
			}
			spec.haveBase = true
			if p.cur().Kind == TokIdent {
				spec.tag = p.advance().Value
			}
			continue
		}
		if w == "enum" {
			if spec.haveBase {
				break
			}
			p.advance()
			spec.kind, spec.tid.Base, spec.haveBase = ast.KindEnum, typeid.BaseEnum, true
			if p.cur().Kind == TokIdent {
				spec.tag = p.advance().Value
			}
			continue
		}
		if bit, ok := builtinWords[w]; ok && !spec.haveBase {
			p.advance()
			spec.tid.Base |= bit
			if w == "_bitint" || w == "bitint" {
				if p.cur().Kind == TokLParen {
					p.advance()
					if p.cur().Kind == TokNumber {
						spec.bitWidth, _ = strconv.Atoi(p.advance().Value)
					}
					if p.cur().Kind == TokRParen {
						p.advance()
					}
				}
			}
			if w != "signed" && w != "unsigned" && w != "short" && w != "long" {
				spec.haveBase = true
			}
			continue
		}
		if !spec.haveBase {
			if rec := p.typedefs.FindName(p.cur().Value); rec != nil {
				p.advance()
				spec.kind = ast.KindTypedef
				spec.typedefRec = rec
				spec.haveBase = true
				continue
			}
		}

		// An identifier that resolves to neither a keyword, a tag, nor a
		// typedef name, directly followed by another identifier, can only
		// have been meant as a type name — the declarator name still to
		// come is the second identifier, not this one. Report it as
		// unknown rather than silently misparsing it as the declarator
		// name, per §4.I/§7 "Unknown name".
		if !spec.haveBase && p.cur().Kind == TokIdent && p.peekKind(1) == TokIdent {
			p.reportUnknownName(p.cur())
			return spec, false
		}
		break
	}

	if spec.kind == ast.KindBuiltin {
		spec.tid.Base = typeid.TID{Base: spec.tid.Base}.Normalize().Base
	}
	return spec, true
}

// buildSpecNode materializes a fresh AST leaf node from spec at depth. It
// must be called once per declarator sharing the spec, never reused across
// declarators, since a leaf node is spliced (mutated in place) by
// PatchPlaceholder.
func (p *Parser) buildSpecNode(spec typeSpec, depth int) ast.ID {
	switch spec.kind {
	case ast.KindClass, ast.KindStruct, ast.KindUnion:
		id := p.arena.NewClass(spec.kind, depth)
		if h := p.arena.Header(id); h != nil {
			h.Type = spec.tid
		}
		if spec.tag != "" {
			if n, ok := p.arena.Node(id).(*ast.Class); ok {
				n.Tag = &ast.SNameHolder{Name: spec.tag}
			}
		}
		return id

	case ast.KindEnum:
		id := p.arena.NewEnum(depth)
		if h := p.arena.Header(id); h != nil {
			h.Type = spec.tid
		}
		if spec.tag != "" {
			if n, ok := p.arena.Node(id).(*ast.Enum); ok {
				n.Tag = &ast.SNameHolder{Name: spec.tag}
			}
		}
		return id

	case ast.KindTypedef:
		imported := p.arena.Import(spec.typedefRec.Arena, spec.typedefRec.Root, depth)
		if h := p.arena.Header(imported); h != nil {
			h.Type.Storage |= spec.tid.Storage
			h.Type.Attrs |= spec.tid.Attrs
		}
		return imported

	default:
		id := p.arena.NewBuiltin(depth)
		if h := p.arena.Header(id); h != nil {
			h.Type = spec.tid
		}
		if n, ok := p.arena.Node(id).(*ast.Builtin); ok {
			n.BitWidth = spec.bitWidth
		}
		return id
	}
}

// parseGibberishDecl parses one declaration's shared type-specifier prefix
// followed by one or more comma-separated declarators, per §4.H.1's
// multi-declarator shape.
func (p *Parser) parseGibberishDecl() ([]ast.ID, bool) {
	spec, ok := p.parseTypeSpecifiers()
	if !ok {
		return nil, false
	}
	if !spec.haveBase && spec.kind == ast.KindBuiltin {
		spec.tid.Base = typeid.BaseInt // implicit-int; the checker gates its legality
	}

	var out []ast.ID
	for {
		declID := p.parseDeclarator(0)
		specNode := p.buildSpecNode(spec, 0)
		out = append(out, p.build.PatchPlaceholder(specNode, declID))
		if p.cur().Kind == TokComma {
			p.advance()
			continue
		}
		break
	}
	if p.cur().Kind == TokSemicolon {
		p.advance()
	}
	if p.cur().Kind != TokEOF {
		p.errf("unexpected trailing input %q", p.cur().Value)
		return out, false
	}
	return out, true
}

// parseAbstractDeclarator parses a declarator with no required name, for
// cast targets and typedef right-hand sides.
func (p *Parser) parseAbstractDeclarator() ast.ID {
	return p.parseDeclarator(0)
}

type sigilKind uint8

const (
	sigilPointer sigilKind = iota
	sigilReference
	sigilRvalueReference
)

type sigil struct {
	kind    sigilKind
	storage typeid.Storage // cv-qualifiers following the sigil, e.g. "* const"
}

// parseDeclarator parses pointer/reference/rvalue-reference prefix sigils
// followed by a direct-declarator, applying the sigils innermost-first
// (the sigil closest to the name wraps first) per standard C declarator
// grammar.
func (p *Parser) parseDeclarator(depth int) ast.ID {
	var sigils []sigil
	for {
		switch p.cur().Kind {
		case TokStar:
			p.advance()
			s := sigil{kind: sigilPointer}
			s.storage = p.consumeCVRun()
			sigils = append(sigils, s)
		case TokAmp:
			p.advance()
			sigils = append(sigils, sigil{kind: sigilReference})
		case TokAmpAmp:
			p.advance()
			sigils = append(sigils, sigil{kind: sigilRvalueReference})
		default:
			goto done
		}
	}
done:
	result := p.parseDirectDeclarator(depth)
	for i := len(sigils) - 1; i >= 0; i-- {
		s := sigils[i]
		switch s.kind {
		case sigilPointer:
			result = p.build.Pointer(result)
			if h := p.arena.Header(result); h != nil {
				h.Type.Storage |= s.storage
			}
		case sigilReference:
			r := p.arena.NewReference(depth)
			p.migrateAndSet(r, result)
			result = r
		case sigilRvalueReference:
			r := p.arena.NewRvalueReference(depth)
			p.migrateAndSet(r, result)
			result = r
		}
	}
	return result
}

// migrateAndSet sets wrapper's child slot to child and carries child's
// sname up onto wrapper, mirroring astbuild's migrateRootAnnotations for
// the reference wrappers that astbuild.Pointer handles internally but that
// have no direct astbuild equivalent (§4.E only names pointer(host)).
func (p *Parser) migrateAndSet(wrapper, child ast.ID) {
	p.arena.SetChildSlot(wrapper, child)
	if ch, wh := p.arena.Header(child), p.arena.Header(wrapper); ch != nil && wh != nil {
		wh.SName = ch.SName
	}
}

func (p *Parser) consumeCVRun() typeid.Storage {
	var s typeid.Storage
	for p.cur().Kind == TokIdent {
		if bit, ok := storageWords[strings.ToLower(p.cur().Value)]; ok {
			s |= bit
			p.advance()
			continue
		}
		break
	}
	return s
}

// parseDirectDeclarator parses the name-or-parenthesized core of a
// declarator plus any trailing array/function suffixes.
func (p *Parser) parseDirectDeclarator(depth int) ast.ID {
	var host ast.ID

	switch {
	case p.cur().Kind == TokLParen:
		p.advance()
		host = p.parseDeclarator(depth + 1)
		if p.cur().Kind != TokRParen {
			p.errf("expected \")\"")
			return host
		}
		p.advance()

	case p.cur().Kind == TokTilde:
		p.advance()
		id := p.advance().Value
		host = p.arena.NewPlaceholder(depth)
		sn := sname.New()
		_ = sn.Append("~"+id, sname.KindUnknown)
		p.arena.Header(host).SName = sn

	case p.cur().Kind == TokIdent:
		sn, ok := p.parseScopedName()
		host = p.arena.NewPlaceholder(depth)
		if ok {
			p.arena.Header(host).SName = sn
		}

	default:
		host = p.arena.NewPlaceholder(depth)
	}

	for {
		switch p.cur().Kind {
		case TokLBracket:
			host = p.parseArraySuffix(host, depth)
		case TokLParen:
			host = p.parseFuncSuffix(host, depth)
		default:
			return host
		}
	}
}

func (p *Parser) parseScopedName() (*sname.SName, bool) {
	sn := sname.New()
	for {
		if p.cur().Kind != TokIdent {
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
		return sn, true
	}
}

func (p *Parser) parseArraySuffix(host ast.ID, depth int) ast.ID {
	p.advance() // '['
	arr := p.arena.NewArray(depth)
	n, _ := p.arena.Node(arr).(*ast.Array)
	for {
		if p.accept("static") {
			n.Header.Type.Storage |= typeid.StorageArrayStatic
			continue
		}
		if bit, ok := storageWords[p.word()]; ok && (bit == typeid.StorageConst || bit == typeid.StorageVolatile || bit == typeid.StorageRestrict) {
			n.Header.Type.Storage |= bit | typeid.StorageArrayQualified
			p.advance()
			continue
		}
		break
	}
	switch {
	case p.cur().Kind == TokStar:
		p.advance()
		n.SizeKind = ast.SizeVLA
	case p.cur().Kind == TokNumber:
		v, _ := strconv.ParseInt(p.advance().Value, 0, 64)
		n.SizeKind = ast.SizeInt
		n.SizeInt = v
	case p.cur().Kind == TokIdent:
		n.SizeKind = ast.SizeNamed
		n.SizeNamed = p.advance().Value
	default:
		n.SizeKind = ast.SizeNone
	}
	if p.cur().Kind != TokRBracket {
		p.errf("expected \"]\"")
		return host
	}
	p.advance()
	filler := p.arena.ChildSlot(arr)
	return p.build.AddArray(host, arr, filler)
}

func (p *Parser) parseFuncSuffix(host ast.ID, depth int) ast.ID {
	p.advance() // '('
	fn := p.arena.NewFunction(ast.KindFunction, depth)
	if !p.parseParamList(fn, depth) {
		return host
	}
	if p.cur().Kind != TokRParen {
		p.errf("expected \")\"")
		return host
	}
	p.advance()
	filler := p.arena.NewPlaceholder(depth)
	return p.build.AddFunc(host, fn, filler)
}

func (p *Parser) parseParamList(fn ast.ID, depth int) bool {
	if p.cur().Kind == TokRParen {
		return true
	}
	for {
		if p.cur().Kind == TokEllipsis {
			p.advance()
			v := p.arena.NewVariadic(depth)
			p.build.AppendParam(fn, ast.Param{ID: v})
			break
		}
		if p.is("void") && len(paramsOf(p.arena, fn)) == 0 && p.peekKind(1) == TokRParen {
			p.advance()
			b := p.arena.NewBuiltin(depth)
			p.arena.Header(b).Type.Base = typeid.BaseVoid
			p.build.AppendParam(fn, ast.Param{ID: b})
			break
		}
		spec, ok := p.parseTypeSpecifiers()
		if !ok || (!spec.haveBase && spec.kind == ast.KindBuiltin) {
			p.errf("expected a parameter type")
			return false
		}
		declID := p.parseDeclarator(depth)
		specNode := p.buildSpecNode(spec, depth)
		root := p.build.PatchPlaceholder(specNode, declID)
		p.build.AppendParam(fn, ast.Param{ID: root})
		if p.cur().Kind == TokComma {
			p.advance()
			continue
		}
		break
	}
	return true
}

func (p *Parser) peekKind(off int) TokKind {
	if p.pos+off < len(p.toks) {
		return p.toks[p.pos+off].Kind
	}
	return TokEOF
}

func paramsOf(a *ast.Arena, fn ast.ID) []ast.Param {
	return a.Params(fn)
}
