// Package session bundles the process-wide mutable and read-mostly state
// named in spec §5 — the typedef registry and the options, including the
// language-version flag — into one explicit value passed by reference into
// each command, instead of scattering it across package-level globals (per
// the Design Notes' "group into an explicit session" directive). The
// keyword and operator tables are not held here; they are static tables in
// internal/keyword and internal/operator, looked up by language.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/typedefreg"
)

// CVPlacement selects where cv-qualifiers print relative to the type they
// qualify: "west" (`const int *`, the default) or "east" (`int const *`).
type CVPlacement uint8

const (
	CVWest CVPlacement = iota
	CVEast
)

// AltOutputMode selects a mutually exclusive alternative spelling for
// punctuation tokens cdecl prints, per §4.H/§6.5.
type AltOutputMode uint8

const (
	AltNone AltOutputMode = iota
	AltTokens
	AltDigraphs
	AltTrigraphs
)

// Options are the process-level switches of §5's "process-level options"
// bullet: color, alt-tokens, east/west, trailing-return, graph mode,
// current language.
type Options struct {
	Lang            langver.Lang  `json:"-"`
	CV              CVPlacement   `json:"-"`
	AltOutput       AltOutputMode `json:"-"`
	TrailingReturn  bool          `json:"trailingReturn,omitempty"`
	GraphMode       bool          `json:"graphMode,omitempty"`
	Color           bool          `json:"-"`
}

// DefaultOptions returns cdecl's out-of-the-box options: C17, west cv
// placement, no alternative token substitution.
func DefaultOptions() Options {
	return Options{
		Lang: langver.C17,
		CV:   CVWest,
	}
}

// Session is the shared, mostly-read-only state threaded by reference into
// every command: the typedef registry and the options (which carry the
// language-version flag), grouped explicitly instead of living as
// package-level globals.
type Session struct {
	Typedefs *typedefreg.Registry
	Options  Options
}

// New returns a fresh session with an empty typedef registry and the given
// options.
func New(opts Options) *Session {
	return &Session{
		Typedefs: typedefreg.New(),
		Options:  opts,
	}
}

// fileNames are the config file names searched for, in order of
// preference, mirroring the teacher's ConfigFileNames search list.
var fileNames = []string{
	"cdecl.json",
	".cdeclrc",
	".cdeclrc.json",
}

// fileConfig is the on-disk shape of cdecl.json/.cdeclrc. All fields are
// optional; unset fields keep DefaultOptions' values.
type fileConfig struct {
	Lang           *string `json:"lang,omitempty"`
	EastConst      *bool   `json:"eastConst,omitempty"`
	AltTokens      *bool   `json:"altTokens,omitempty"`
	Digraphs       *bool   `json:"digraphs,omitempty"`
	Trigraphs      *bool   `json:"trigraphs,omitempty"`
	TrailingReturn *bool   `json:"trailingReturn,omitempty"`
	GraphMode      *bool   `json:"graphMode,omitempty"`
}

// Load searches startDir and its parent directories for a config file,
// returning DefaultOptions (and no error) if none is found — mirroring the
// teacher's config.Load walk-up-to-root search.
func Load(startDir string) (Options, string, error) {
	dir := startDir
	for {
		for _, name := range fileNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				opts, err := LoadFile(path)
				return opts, path, err
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return DefaultOptions(), "", nil
		}
		dir = parent
	}
}

// LoadFile loads options from a specific config file path.
func LoadFile(path string) (Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Options{}, err
	}

	var fc fileConfig
	if err := json.Unmarshal(data, &fc); err != nil {
		return Options{}, err
	}

	opts := DefaultOptions()
	if fc.Lang != nil {
		if l, ok := langNames[*fc.Lang]; ok {
			opts.Lang = l
		}
	}
	if fc.EastConst != nil && *fc.EastConst {
		opts.CV = CVEast
	}
	switch {
	case fc.AltTokens != nil && *fc.AltTokens:
		opts.AltOutput = AltTokens
	case fc.Digraphs != nil && *fc.Digraphs:
		opts.AltOutput = AltDigraphs
	case fc.Trigraphs != nil && *fc.Trigraphs:
		opts.AltOutput = AltTrigraphs
	}
	if fc.TrailingReturn != nil {
		opts.TrailingReturn = *fc.TrailingReturn
	}
	if fc.GraphMode != nil {
		opts.GraphMode = *fc.GraphMode
	}

	return opts, nil
}

var langNames = map[string]langver.Lang{
	"knrc":  langver.KNRC,
	"c89":   langver.C89,
	"c95":   langver.C95,
	"c99":   langver.C99,
	"c11":   langver.C11,
	"c17":   langver.C17,
	"c23":   langver.C23,
	"c++98": langver.CPP98,
	"c++03": langver.CPP03,
	"c++11": langver.CPP11,
	"c++14": langver.CPP14,
	"c++17": langver.CPP17,
	"c++20": langver.CPP20,
	"c++23": langver.CPP23,
	"c++26": langver.CPP26,
}

// MergeOptions are CLI-supplied overrides; CLI flags take precedence over
// whatever Load found in a config file, mirroring the teacher's
// Config.Merge precedence rule.
type MergeOptions struct {
	Lang           *langver.Lang
	EastConst      *bool
	AltOutput      *AltOutputMode
	TrailingReturn *bool
	GraphMode      *bool
}

// Merge applies CLI overrides on top of opts, returning the combined
// result without mutating opts.
func Merge(opts Options, cli MergeOptions) Options {
	if cli.Lang != nil {
		opts.Lang = *cli.Lang
	}
	if cli.EastConst != nil {
		if *cli.EastConst {
			opts.CV = CVEast
		} else {
			opts.CV = CVWest
		}
	}
	if cli.AltOutput != nil {
		opts.AltOutput = *cli.AltOutput
	}
	if cli.TrailingReturn != nil {
		opts.TrailingReturn = *cli.TrailingReturn
	}
	if cli.GraphMode != nil {
		opts.GraphMode = *cli.GraphMode
	}
	return opts
}
