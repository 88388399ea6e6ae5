// Package api provides the public API for cdecl, the C/C++ declaration
// translator.
//
// This package is intended for programmatic use of cdecl's declare/explain
// pipeline. For CLI usage, see cmd/cdecl.
package api

import (
	"github.com/paul-j-lucas/cdecl/internal/command"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/session"
)

// Options controls how declarations are parsed and rendered.
type Options struct {
	// Lang selects the target C or C++ standard's keyword set and
	// diagnostic rules. Defaults to C17 when left zero.
	Lang langver.Lang

	// EastConst places cv-qualifiers after the type they modify
	// ("int const *") instead of before it ("const int *").
	EastConst bool

	// TrailingReturn renders function declarators using C++11 trailing
	// return-type syntax ("auto f() -> int") where the language allows it.
	TrailingReturn bool
}

func (o Options) toSessionOptions() session.Options {
	opts := session.DefaultOptions()
	if o.Lang != 0 {
		opts.Lang = o.Lang
	}
	if o.EastConst {
		opts.CV = session.CVEast
	}
	opts.TrailingReturn = o.TrailingReturn
	return opts
}

// Result contains one declaration's translation output.
type Result struct {
	// Gibberish is the C/C++ syntax rendering.
	Gibberish string

	// English is the pseudo-English rendering.
	English string

	// Typedef is the local name registered, if the declaration was a
	// typedef or using-alias; empty otherwise.
	Typedef string

	// Errors contains any errors encountered translating the declaration.
	// If non-empty, Gibberish/English/Typedef are zero-valued.
	Errors []string
}

// Declare translates a pseudo-English declaration ("declare x as pointer
// to int") into gibberish C/C++ syntax, using default options.
func Declare(source string) Result {
	return DeclareWithOptions(source, Options{})
}

// DeclareWithOptions translates source with custom options.
func DeclareWithOptions(source string, opts Options) Result {
	sess := session.New(opts.toSessionOptions())
	cmd := command.New(sess, source)
	res, err := cmd.Declare(source)
	return toResult(res, err)
}

// Explain translates a gibberish C/C++ declaration ("int *x;") into
// pseudo-English, using default options.
func Explain(source string) Result {
	return ExplainWithOptions(source, Options{})
}

// ExplainWithOptions translates source with custom options.
func ExplainWithOptions(source string, opts Options) Result {
	sess := session.New(opts.toSessionOptions())
	cmd := command.New(sess, source)
	res, err := cmd.Explain(source)
	return toResult(res, err)
}

// ListResult contains the translation output of every declarator in a
// multi-declarator gibberish declaration ("int i, *j;").
type ListResult struct {
	Results []Result
	Errors  []string
}

// ExplainList translates every declarator in a multi-declarator gibberish
// declaration into pseudo-English, using default options.
func ExplainList(source string) ListResult {
	return ExplainListWithOptions(source, Options{})
}

// ExplainListWithOptions translates source with custom options.
func ExplainListWithOptions(source string, opts Options) ListResult {
	sess := session.New(opts.toSessionOptions())
	cmd := command.New(sess, source)
	results, err := cmd.ExplainList(source)
	if err != nil {
		return ListResult{Errors: []string{err.Error()}}
	}
	out := make([]Result, len(results))
	for i, r := range results {
		out[i] = Result{Gibberish: r.Gibberish, English: r.English, Typedef: r.Typedef}
	}
	return ListResult{Results: out}
}

// Check reports whether a gibberish C/C++ declaration is well-formed under
// the target language, without producing any translation. It returns nil
// on success, or the diagnostic messages on failure.
func Check(source string, opts Options) []string {
	sess := session.New(opts.toSessionOptions())
	cmd := command.New(sess, source)
	if _, err := cmd.Explain(source); err != nil {
		return []string{err.Error()}
	}
	return nil
}

func toResult(r command.Result, err error) Result {
	if err != nil {
		return Result{Errors: []string{err.Error()}}
	}
	return Result{Gibberish: r.Gibberish, English: r.English, Typedef: r.Typedef}
}
