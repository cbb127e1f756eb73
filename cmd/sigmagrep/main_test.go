package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coregx/sigmatch"
)

// writeLines writes lines to a new file under t.TempDir() and returns its path.
func writeLines(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "input.txt")
	var body string
	for _, l := range lines {
		body += l + "\n"
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}

// TestSubstringWrapMatchesEmbeddedOccurrence exercises the default (non
// -fullmatch) Σ*(...)Σ* wrap from main: it should match a line where the
// pattern occurs anywhere, not just lines equal to the pattern.
func TestSubstringWrapMatchesEmbeddedOccurrence(t *testing.T) {
	path := writeLines(t, "a warning: disk nearly full", "all clear", "fatal error here")

	pattern := "Σ*(" + "warning|fatal" + ")Σ*"
	automaton, err := sigmatch.Compile(pattern, 0)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}

	if !scanFile(path, automaton, nil, true) {
		t.Error("scanFile should report a match when a substring occurrence exists")
	}
	if !automaton.Match("a warning: disk nearly full") {
		t.Error("wrapped pattern should match a line containing \"warning\" anywhere in it")
	}
	if !automaton.Match("fatal error here") {
		t.Error("wrapped pattern should match a line containing \"fatal\" anywhere in it")
	}
	if automaton.Match("all clear") {
		t.Error("wrapped pattern should reject a line containing neither literal")
	}
}

// TestSubstringWrapRejectsNoMatch confirms scanFile returns false when no
// line in the file contains the pattern anywhere.
func TestSubstringWrapRejectsNoMatch(t *testing.T) {
	path := writeLines(t, "all clear", "nothing to see")

	pattern := "Σ*(" + "error" + ")Σ*"
	automaton, err := sigmatch.Compile(pattern, 0)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", pattern, err)
	}

	if scanFile(path, automaton, nil, true) {
		t.Error("scanFile should report no match when the pattern occurs nowhere")
	}
}
