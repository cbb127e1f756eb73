// Command sigmagrep is a thin CLI front-end over the sigmatch core: it
// consumes the library exclusively through Compile / Match / ReadLazy /
// ReadGreedy and is not part of the automaton pipeline itself.
package main

import (
	"bufio"
	"fmt"
	"os"
	"sync"

	"github.com/projectdiscovery/gologger"

	"github.com/coregx/ahocorasick"
	"github.com/coregx/sigmatch"
)

func main() {
	opts := parseFlags()

	// -x/--fullmatch require whole-line match; the default wraps the
	// pattern with Σ* on both ends, turning it into a substring search.
	pattern := opts.Pattern
	if !opts.Fullmatch {
		pattern = "Σ*(" + pattern + ")Σ*"
	}

	var flags sigmatch.Flags
	if opts.IgnoreCase {
		flags |= sigmatch.FlagIgnoreCase
	}

	automaton, err := sigmatch.Compile(pattern, flags)
	if err != nil {
		gologger.Fatal().Msgf("sigmagrep: %v", err)
	}

	if opts.Verbose {
		gologger.Debug().Msgf("compiled pattern %q (source %q)", pattern, opts.Pattern)
	}

	// The literal prefilter is case-sensitive, so it is not used under -i.
	var (
		prefilter    *ahocorasick.Automaton
		hasPrefilter bool
	)
	if !opts.IgnoreCase {
		prefilter, hasPrefilter = buildPrefilter(opts.Pattern)
	}
	if hasPrefilter && opts.Verbose {
		gologger.Debug().Msgf("literal prefilter active for %q", opts.Pattern)
	}

	var (
		mu      sync.Mutex
		matched bool
		wg      sync.WaitGroup
		sem     = make(chan struct{}, 8)
	)

	for _, path := range opts.Files {
		path := path
		wg.Add(1)
		sem <- struct{}{}
		go func() {
			defer wg.Done()
			defer func() { <-sem }()
			found := scanFile(path, automaton, prefilter, opts.Quiet)
			if found {
				mu.Lock()
				matched = true
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if matched {
		os.Exit(0)
	}
	os.Exit(1)
}

// scanFile reads path line by line, optionally skipping lines the literal
// prefilter rules out, and reports whether any line matched.
func scanFile(path string, automaton *sigmatch.Automaton, prefilter *ahocorasick.Automaton, quiet bool) bool {
	f, err := os.Open(path)
	if err != nil {
		gologger.Error().Msgf("sigmagrep: %v", err)
		return false
	}
	defer f.Close()

	matched := false
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if prefilter != nil && !prefilter.IsMatch([]byte(line)) {
			continue
		}
		if !automaton.Match(line) {
			continue
		}
		matched = true
		if !quiet {
			fmt.Println(line)
		}
	}
	if err := scanner.Err(); err != nil {
		gologger.Error().Msgf("sigmagrep: %v: %v", path, err)
	}
	return matched
}
