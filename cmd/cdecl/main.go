// Command cdecl translates between pseudo-English and C/C++ declaration
// syntax.
//
// Usage:
//
//	cdecl declare <pseudo-English...>
//	cdecl explain <gibberish...>
//	cdecl set <option>...
//
// Options:
//
//	-x, --lang <std>     Target language (c17, c++17, ...); default c17.
//	-+, --cpp            Shorthand for -x c++17.
//	--east-const         Print cv-qualifiers after the type ("int const *").
//	--alt-tokens         Use alternative spellings for punctuation tokens.
//	--digraphs           Use digraph spellings ("<:" for "[").
//	--trigraphs          Use trigraph spellings ("??(" for "[").
//	--no-color           Disable colored diagnostic output.
//	-v, --verbose        Log the loaded config file and each command's input.
//
// cdecl looks for cdecl.json or .cdeclrc in the current directory and its
// parents; CLI flags override whatever a config file set.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/paul-j-lucas/cdecl/internal/command"
	"github.com/paul-j-lucas/cdecl/internal/langver"
	"github.com/paul-j-lucas/cdecl/internal/session"
)

// cliFlags holds the persistent flag values shared by every subcommand,
// bound directly to Cobra's persistent-flag set rather than threaded
// through individual subcommand structs.
type cliFlags struct {
	lang           string
	cpp            bool
	eastConst      bool
	altTokens      bool
	digraphs       bool
	trigraphs      bool
	noColor        bool
	verbose        bool
	trailingReturn bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "cdecl: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := &cliFlags{}

	root := &cobra.Command{
		Use:   "cdecl",
		Short: "Translate between pseudo-English and C/C++ declarations",
		Long: "cdecl translates pseudo-English declarations into C/C++ syntax and\n" +
			"back, diagnosing declarations that are illegal in the selected language.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.lang, "lang", "x", "", "target language (c17, c++17, ...)")
	root.PersistentFlags().BoolVarP(&flags.cpp, "cpp", "+", false, "shorthand for -x c++17")
	root.PersistentFlags().BoolVar(&flags.eastConst, "east-const", false, `print cv-qualifiers after the type ("int const *")`)
	root.PersistentFlags().BoolVar(&flags.altTokens, "alt-tokens", false, "use alternative spellings for punctuation tokens")
	root.PersistentFlags().BoolVar(&flags.digraphs, "digraphs", false, `use digraph spellings ("<:" for "[")`)
	root.PersistentFlags().BoolVar(&flags.trigraphs, "trigraphs", false, `use trigraph spellings ("??(" for "[")`)
	root.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "disable colored diagnostic output")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "log the loaded config file and each command's input")
	root.PersistentFlags().BoolVar(&flags.trailingReturn, "trailing-return", false, "render functions with C++11 trailing return syntax")

	root.AddCommand(
		newDeclareCmd(flags),
		newExplainCmd(flags),
		newSetCmd(flags),
	)
	return root
}

// newSession builds a session.Session from a config file (if any) merged
// with flags, per §6.5's "flags map 1:1 onto internal/session.Options".
func newSession(flags *cliFlags) (*session.Session, error) {
	if flags.altTokens && flags.digraphs || flags.altTokens && flags.trigraphs || flags.digraphs && flags.trigraphs {
		return nil, fmt.Errorf("--alt-tokens, --digraphs, and --trigraphs are mutually exclusive")
	}

	startDir, _ := os.Getwd()
	opts, configPath, err := session.Load(startDir)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if flags.verbose && configPath != "" {
		slog.Info("loaded config", "path", configPath)
	}

	var merge session.MergeOptions
	if flags.trailingReturn {
		merge.TrailingReturn = &flags.trailingReturn
	}

	lang := flags.lang
	if flags.cpp && lang == "" {
		lang = "c++17"
	}
	if lang != "" {
		l, ok := langver.Parse(lang)
		if !ok {
			return nil, fmt.Errorf("unknown language %q", lang)
		}
		merge.Lang = &l
	}
	if flags.eastConst {
		merge.EastConst = &flags.eastConst
	}

	switch {
	case flags.altTokens:
		alt := session.AltTokens
		merge.AltOutput = &alt
	case flags.digraphs:
		alt := session.AltDigraphs
		merge.AltOutput = &alt
	case flags.trigraphs:
		alt := session.AltTrigraphs
		merge.AltOutput = &alt
	}

	opts = session.Merge(opts, merge)
	opts.Color = !flags.noColor && isatty.IsTerminal(os.Stdout.Fd())
	return session.New(opts), nil
}

func newDeclareCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "declare <pseudo-English...>",
		Short:         "Translate a pseudo-English declaration into C/C++ syntax",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}
			source := strings.Join(args, " ")
			if flags.verbose {
				slog.Info("declare", "lang", sess.Options.Lang, "source", source)
			}
			c := command.New(sess, source)
			res, err := c.Declare(source)
			if err != nil {
				return printDiagnostic(flags, err)
			}
			fmt.Println(res.Gibberish)
			return nil
		},
	}
}

func newExplainCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:           "explain <gibberish...>",
		Short:         "Translate a C/C++ declaration into pseudo-English",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}
			source := strings.Join(args, " ")
			if flags.verbose {
				slog.Info("explain", "lang", sess.Options.Lang, "source", source)
			}
			c := command.New(sess, source)
			results, err := c.ExplainList(source)
			if err != nil {
				return printDiagnostic(flags, err)
			}
			for _, r := range results {
				fmt.Println(r.English)
			}
			return nil
		},
	}
}

func newSetCmd(flags *cliFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "set",
		Short: "Print the effective session options for the given flags",
		RunE: func(cmd *cobra.Command, args []string) error {
			sess, err := newSession(flags)
			if err != nil {
				return err
			}
			o := sess.Options
			fmt.Printf("lang=%s\n", o.Lang)
			fmt.Printf("cv=%s\n", cvName(o.CV))
			fmt.Printf("alt-output=%s\n", altName(o.AltOutput))
			fmt.Printf("trailing-return=%t\n", o.TrailingReturn)
			fmt.Printf("color=%t\n", o.Color)
			return nil
		},
	}
}

func cvName(cv session.CVPlacement) string {
	if cv == session.CVEast {
		return "east"
	}
	return "west"
}

func altName(a session.AltOutputMode) string {
	switch a {
	case session.AltTokens:
		return "alt-tokens"
	case session.AltDigraphs:
		return "digraphs"
	case session.AltTrigraphs:
		return "trigraphs"
	default:
		return "none"
	}
}

// printDiagnostic wraps a command failure for display, coloring it red
// unless --no-color is set or stderr is not a terminal — §6.5's rule that coloring lives in
// cmd/cdecl only, never inside the core packages. The caller propagates
// the result as its own RunE error, so main's single Execute() error path
// prints and exits.
func printDiagnostic(flags *cliFlags, err error) error {
	msg := err.Error()
	if !flags.noColor && isatty.IsTerminal(os.Stderr.Fd()) {
		msg = color.New(color.FgRed).Sprint(msg)
	}
	return fmt.Errorf("%s", msg)
}
