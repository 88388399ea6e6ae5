package declfmt

import (
	"fmt"
	"strings"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/astbuild"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/keyword"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
)

// Parser is a recursive-descent parser over declfmt's token stream. It
// does not pick a grammar from the input: the caller chooses the
// pseudo-English grammar (ParseEnglish, which accepts an optional leading
// "declare") or the gibberish declaration subset (ParseGibberish and its
// list/type variants) — mirroring the teacher's internal/parser.Parser (a
// flat token-slice recursive descent) rewritten for C declarators.
type Parser struct {
	toks     []Token
	pos      int
	arena    *ast.Arena
	build    *astbuild.Builder
	lang     langver.Lang
	typedefs *typedefreg.Registry
	diags    *diagnostic.List
	depth    int // current "(" nesting level, per §3.3's Depth
}

// New returns a Parser that builds nodes into arena using lang's keyword
// table and typedefs for name resolution, reporting errors to diags.
func New(arena *ast.Arena, lang langver.Lang, typedefs *typedefreg.Registry, diags *diagnostic.List) *Parser {
	return &Parser{
		arena:    arena,
		build:    astbuild.New(arena),
		lang:     lang,
		typedefs: typedefs,
		diags:    diags,
	}
}

func (p *Parser) tokenize(src string) {
	l := newLexer(src)
	p.toks = nil
	for {
		t := l.Next()
		p.toks = append(p.toks, t)
		if t.Kind == TokEOF {
			break
		}
	}
	p.pos = 0
}

func (p *Parser) cur() Token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	return Token{Kind: TokEOF}
}

func (p *Parser) advance() Token {
	t := p.cur()
	if p.pos < len(p.toks)-1 {
		p.pos++
	}
	return t
}

// word returns cur's identifier text lower-cased, or "" if cur isn't an
// identifier.
func (p *Parser) word() string {
	if p.cur().Kind == TokIdent {
		return strings.ToLower(p.cur().Value)
	}
	return ""
}

// is reports whether cur is the identifier w (case-insensitive).
func (p *Parser) is(w string) bool { return p.word() == w }

// accept consumes cur if it's identifier w, reporting whether it did.
func (p *Parser) accept(w string) bool {
	if p.is(w) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) errf(format string, args ...any) {
	pos := p.cur().Pos
	p.diags.AddError(diagnostic.KindSyntax, pos, pos+len(p.cur().Value), fmt.Sprintf(format, args...), nil, p.cur().Value)
}

// suggestCandidates gathers did-you-mean candidates from lang's keyword
// table and/or the typedef registry, per kinds — §4.I's "drawn from the
// keyword tables, typedef registry, or cdecl keywords according to a
// requested kind set."
func (p *Parser) suggestCandidates(kinds diagnostic.SuggestKind) []string {
	var out []string
	if kinds.Has(diagnostic.SuggestKeyword) {
		out = append(out, keyword.All(p.lang)...)
	}
	if kinds.Has(diagnostic.SuggestTypedef) {
		out = append(out, p.typedefs.Names()...)
	}
	return out
}

// reportUnknownName reports tok as an identifier that is neither a
// keyword nor a registered typedef, attaching a did-you-mean list ranked
// against both, per §7's "Unknown name" rule.
func (p *Parser) reportUnknownName(tok Token) {
	p.diags.AddError(diagnostic.KindUnknownName, tok.Pos, tok.Pos+len(tok.Value),
		fmt.Sprintf("%q is not a keyword, typedef, or the name of a known type", tok.Value),
		p.suggestCandidates(diagnostic.SuggestBoth), tok.Value)
}

// ParseEnglish parses a pseudo-English declaration ("declare x as pointer
// to int") and returns the root declarator id, or ok=false on syntax error
// (already reported to p.diags).
func (p *Parser) ParseEnglish(src string) (ast.ID, bool) {
	p.tokenize(src)
	return p.parseEnglishDeclare()
}

// ParseGibberish parses a single C/C++ declaration ("int *x;") and returns
// the declared root id, or ok=false on syntax error.
func (p *Parser) ParseGibberish(src string) (ast.ID, bool) {
	p.tokenize(src)
	ids, ok := p.parseGibberishDecl()
	if !ok || len(ids) == 0 {
		return ast.NoID, false
	}
	return ids[0], true
}

// ParseGibberishList parses a multi-declarator gibberish declaration
// ("int i, *j;") and returns every declared root id, per §4.G's list
// check contract.
func (p *Parser) ParseGibberishList(src string) ([]ast.ID, bool) {
	p.tokenize(src)
	return p.parseGibberishDecl()
}

// ParseGibberishType parses a bare type-id with no declarator name, for
// cast targets and typedef right-hand sides ("int", "char const *").
func (p *Parser) ParseGibberishType(src string) (ast.ID, bool) {
	p.tokenize(src)
	spec, ok := p.parseTypeSpecifiers()
	if !ok {
		return ast.NoID, false
	}
	decl := p.parseAbstractDeclarator()
	specNode := p.buildSpecNode(spec, 0)
	root := p.build.PatchPlaceholder(specNode, decl)
	return root, true
}

func (p *Parser) isKeyword(id string) bool {
	return keyword.IsKeyword(id, p.lang)
}
