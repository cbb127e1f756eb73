package main

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

// Options holds the parsed CLI surface: a single pattern (-e), one or more
// files (-f), and the -q/-x/-F/-i/-v switches.
type Options struct {
	Pattern    string
	Files      goflags.StringSlice
	Quiet      bool
	Fullmatch  bool
	IgnoreCase bool
	Verbose    bool
}

// parseFlags parses os.Args into Options using grouped, short/long-form
// flags.
func parseFlags() *Options {
	opts := &Options{}
	var fullmatchX, fullmatchF bool

	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("sigmagrep matches files against a small regular-expression automaton engine.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "expr", "e", "", "pattern to compile and match (required)"),
		flagSet.StringSliceVarP(&opts.Files, "file", "f", nil, "files to scan (comma-separated or repeated)", goflags.FileCommaSeparatedStringSliceOptions),
	)

	flagSet.CreateGroup("matching", "Matching",
		flagSet.BoolVarP(&opts.IgnoreCase, "ignore-case", "i", false, "case-insensitive match"),
		flagSet.BoolVar(&fullmatchX, "x", false, "require whole-line match (alias of --fullmatch)"),
		flagSet.BoolVarP(&fullmatchF, "fullmatch", "F", false, "require whole-line match"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Quiet, "quiet", "q", false, "suppress output of matching lines"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "log the compiled pattern and prefilter status at debug level (automata are not printed)"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s", err)
	}

	opts.Fullmatch = fullmatchX || fullmatchF

	if opts.Pattern == "" {
		gologger.Fatal().Msgf("sigmagrep: a pattern is required (-e/--expr)")
	}
	if len(opts.Files) == 0 {
		gologger.Fatal().Msgf("sigmagrep: at least one file is required (-f/--file)")
	}

	return opts
}
