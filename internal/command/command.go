// Package command wires the tokenizer, AST builder, checker, and printer
// together into the per-command pipeline of spec §5: lex → build → check →
// print, with every node owned by an arena scoped to the one command. It
// follows the teacher's internal/minifier.Minify() orchestration shape —
// options in, staged pipeline, a result-or-diagnostics out — re-pointed at
// declarations instead of whole shader modules.
package command

import (
	"fmt"

	"github.com/paul-j-lucas/cdecl/internal/ast"
	"github.com/paul-j-lucas/cdecl/internal/checker"
	"github.com/paul-j-lucas/cdecl/internal/declfmt"
	"github.com/paul-j-lucas/cdecl/internal/diagnostic"
	"github.com/paul-j-lucas/cdecl/internal/printer"
	"github.com/paul-j-lucas/cdecl/internal/session"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
	"github.com/paul-j-lucas/cdecl/internal/typeid"
)

// Command is the arena-scoped unit of work of §5: every node it builds
// belongs to its own Arena, discarded (GC'd) when the command ends,
// regardless of whether it succeeded.
type Command struct {
	Sess  *session.Session
	Arena *ast.Arena
	Diags *diagnostic.List
}

// New starts a command against sess, reporting diagnostics against the
// given source text (used only for caret-line rendering).
func New(sess *session.Session, source string) *Command {
	return &Command{
		Sess:  sess,
		Arena: ast.NewArena(),
		Diags: diagnostic.NewList(source),
	}
}

// Result is what a command produces on success.
type Result struct {
	// Gibberish is the C/C++ syntax rendering, set by Declare, Explain, and
	// ExplainList.
	Gibberish string
	// English is the pseudo-English rendering, set by Declare, Explain, and
	// ExplainList.
	English string
	// Typedef is non-empty when the declaration registered a typedef/using
	// name (its storage has typeid.StorageTypedef set).
	Typedef string
}

// Declare parses pseudo-English source, checks it, and prints gibberish —
// §6.5's `cdecl declare`.
func (c *Command) Declare(source string) (Result, error) {
	p := declfmt.New(c.Arena, c.Sess.Options.Lang, c.Sess.Typedefs, c.Diags)
	root, ok := p.ParseEnglish(source)
	if !ok || c.Diags.HasErrors() {
		return Result{}, c.firstError()
	}
	return c.checkAndPrint(root)
}

// Explain parses a gibberish declaration, checks it, and prints
// pseudo-English — §6.5's `cdecl explain`.
func (c *Command) Explain(source string) (Result, error) {
	p := declfmt.New(c.Arena, c.Sess.Options.Lang, c.Sess.Typedefs, c.Diags)
	root, ok := p.ParseGibberish(source)
	if !ok || c.Diags.HasErrors() {
		return Result{}, c.firstError()
	}
	return c.checkAndPrint(root)
}

// ExplainList parses a multi-declarator gibberish declaration ("int i,
// *j;"), runs §4.G.list's check_list, and prints each declarator back as
// pseudo-English.
func (c *Command) ExplainList(source string) ([]Result, error) {
	p := declfmt.New(c.Arena, c.Sess.Options.Lang, c.Sess.Typedefs, c.Diags)
	roots, ok := p.ParseGibberishList(source)
	if !ok || c.Diags.HasErrors() {
		return nil, c.firstError()
	}

	chk := checker.New(c.Sess, c.Arena, c.Diags)
	c.Sess.Typedefs.Begin()
	if !chk.CheckList(roots) {
		c.Sess.Typedefs.Rollback()
		return nil, c.firstError()
	}

	pr := printer.New(printer.FromSession(c.Sess.Options))
	results := make([]Result, len(roots))
	for i, root := range roots {
		c.registerTypedef(root)
		results[i] = Result{
			Gibberish: pr.Gibberish(c.Arena, root, printer.FlagDeclaration|printer.FlagTrailingSemicolon),
			English:   pr.English(c.Arena, root, 0),
		}
	}
	c.Sess.Typedefs.Commit()
	return results, nil
}

// checkAndPrint runs both checker passes over root, registers it as a
// typedef if it declares one, and renders both output forms.
func (c *Command) checkAndPrint(root ast.ID) (Result, error) {
	chk := checker.New(c.Sess, c.Arena, c.Diags)

	c.Sess.Typedefs.Begin()
	if !chk.Check(root) {
		c.Sess.Typedefs.Rollback()
		return Result{}, c.firstError()
	}

	typedefName := c.registerTypedef(root)
	c.Sess.Typedefs.Commit()

	pr := printer.New(printer.FromSession(c.Sess.Options))
	res := Result{
		Gibberish: pr.Gibberish(c.Arena, root, printer.FlagDeclaration|printer.FlagTrailingSemicolon),
		English:   pr.English(c.Arena, root, 0),
		Typedef:   typedefName,
	}
	return res, nil
}

// registerTypedef inserts root into the typedef registry if its storage
// carries typeid.StorageTypedef, per §6.3's "populated only by successful
// typedef/using commands". Returns the registered local name, or "" if
// root isn't a typedef.
func (c *Command) registerTypedef(root ast.ID) string {
	h := c.Arena.Header(root)
	if h == nil || !h.Type.Storage.Has(typeid.StorageTypedef) || h.SName == nil {
		return ""
	}
	rec := typedefreg.Record{
		SName: h.SName,
		Arena: c.Arena,
		Root:  root,
		Flags: typedefreg.DeclTypedef,
	}
	result, _ := c.Sess.Typedefs.Add(rec)
	return result.SName.Local()
}

func (c *Command) firstError() error {
	diags := c.Diags.Diagnostics()
	if len(diags) == 0 {
		return fmt.Errorf("command failed with no recorded diagnostic")
	}
	return fmt.Errorf("%s: %w", diags[0].Kind, &diags[0])
}
