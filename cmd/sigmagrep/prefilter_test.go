package main

import (
	"reflect"
	"testing"
)

func TestSplitTopLevelAlt(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"a|bb|ccc", []string{"a", "bb", "ccc"}},
		{"abc", []string{"abc"}},
		{`a\|b|c`, []string{`a\|b`, "c"}},
		{"(a|b)|c", []string{"(a|b)", "c"}},
	}
	for _, tt := range tests {
		got := splitTopLevelAlt(tt.pattern)
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("splitTopLevelAlt(%q) = %v, want %v", tt.pattern, got, tt.want)
		}
	}
}

func TestPlainLiteral(t *testing.T) {
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"abc", "abc", true},
		{`a\.b`, "a.b", true},
		{"a*b", "", false},
		{"(a)", "", false},
		{"a|b", "", false},
		{`a\`, "", false},
	}
	for _, tt := range tests {
		got, ok := plainLiteral(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("plainLiteral(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestExtractLiteralsFlatAlternation(t *testing.T) {
	got := extractLiterals("error|warning|fatal")
	want := []string{"error", "warning", "fatal"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("extractLiterals(error|warning|fatal) = %v, want %v", got, want)
	}
}

func TestExtractLiteralsRejectsNonFlatPatterns(t *testing.T) {
	for _, pattern := range []string{
		"a(b|c)d",      // not a top-level alternation of plain runs
		"abc",          // no alternation at all
		"ab|cd*",       // one branch has a star
		"x|y",          // literals too short (< 2 bytes) to bother prefiltering
	} {
		if got := extractLiterals(pattern); got != nil {
			t.Errorf("extractLiterals(%q) = %v, want nil", pattern, got)
		}
	}
}

func TestBuildPrefilterSkipsNonLiteralPatterns(t *testing.T) {
	if _, ok := buildPrefilter("a(b|c)d"); ok {
		t.Error("buildPrefilter should skip a pattern that isn't a flat literal alternation")
	}
}

func TestBuildPrefilterMatchesExpectedLines(t *testing.T) {
	auto, ok := buildPrefilter("error|warning")
	if !ok {
		t.Fatal("buildPrefilter should accept a flat literal alternation")
	}
	if !auto.IsMatch([]byte("an error occurred")) {
		t.Error("prefilter should match a line containing \"error\"")
	}
	if auto.IsMatch([]byte("all clear")) {
		t.Error("prefilter should not match a line containing neither literal")
	}
}
