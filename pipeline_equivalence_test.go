package sigmatch

import (
	"testing"

	"github.com/coregx/sigmatch/dfa"
	"github.com/coregx/sigmatch/parse"
)

// acceptsAtStage walks d exactly the way match.Match does, without importing
// the match package (which would be redundant with the Automaton-level
// tests already exercising it) — it's a minimal, independent reference walk
// so this test isn't just checking match.Match against itself.
func acceptsAtStage(d *dfa.Automaton, s string) bool {
	state := d.Initial()
	for _, c := range s {
		next, ok := d.Read(state, c)
		if !ok {
			return false
		}
		if d.IsTrap(next) {
			return false
		}
		state = next
	}
	return d.Node(state).Final()
}

// TestPipelineStagesAgree checks that every stage of the pipeline — the
// Thompson NFA, the subset-construction DFA, the completed DFA, and the
// minimized DFA — accepts exactly the same language for a range of
// patterns and probe strings. Completion and minimization must never
// change which strings are accepted, only how many states represent that
// acceptance.
func TestPipelineStagesAgree(t *testing.T) {
	patterns := []string{
		"",
		"a",
		"ab",
		"a|b",
		"a*",
		"(a|b)*",
		"(a|b)*abb",
		"a(b|c)d",
		"Σ",
		"ΣΣ*",
		`a\*b`,
	}
	probes := []string{
		"", "a", "b", "ab", "ba", "abb", "aabb", "babb", "abba",
		"abcd", "acd", "ad", "x", "xy", "a*b", "a*",
	}

	for _, pattern := range patterns {
		n, err := parse.Parse(pattern, 0)
		if err != nil {
			t.Fatalf("parse.Parse(%q) error: %v", pattern, err)
		}

		subset := dfa.Determinize(n)
		completed := dfa.Complete(subset)
		minimized := dfa.Minimize(completed)

		for _, s := range probes {
			want := n.Match(s)

			if got := acceptsAtStage(subset, s); got != want {
				t.Errorf("pattern %q: subset-construction DFA disagrees with NFA on %q: got %v, want %v", pattern, s, got, want)
			}
			if got := acceptsAtStage(completed, s); got != want {
				t.Errorf("pattern %q: completed DFA disagrees with NFA on %q: got %v, want %v", pattern, s, got, want)
			}
			if got := acceptsAtStage(minimized, s); got != want {
				t.Errorf("pattern %q: minimized DFA disagrees with NFA on %q: got %v, want %v", pattern, s, got, want)
			}
		}
	}
}

// TestPipelineStagesAgreeIgnoreCase repeats the cross-stage check under
// FlagIgnoreCase, since sibling-transition emission during the Thompson
// build is a second code path distinct from the plain-literal case above.
func TestPipelineStagesAgreeIgnoreCase(t *testing.T) {
	n, err := parse.Parse("abc", parse.FlagIgnoreCase)
	if err != nil {
		t.Fatalf("parse.Parse error: %v", err)
	}

	subset := dfa.Determinize(n)
	completed := dfa.Complete(subset)
	minimized := dfa.Minimize(completed)

	for _, s := range []string{"abc", "ABC", "aBc", "abd", "ab"} {
		want := n.Match(s)
		if got := acceptsAtStage(subset, s); got != want {
			t.Errorf("ignore-case: subset DFA disagrees with NFA on %q: got %v, want %v", s, got, want)
		}
		if got := acceptsAtStage(completed, s); got != want {
			t.Errorf("ignore-case: completed DFA disagrees with NFA on %q: got %v, want %v", s, got, want)
		}
		if got := acceptsAtStage(minimized, s); got != want {
			t.Errorf("ignore-case: minimized DFA disagrees with NFA on %q: got %v, want %v", s, got, want)
		}
	}
}

// TestMinimizeNeverIncreasesStateCount holds Minimize to its basic
// contract across several patterns, independent of the specific
// state-count hand-trace already pinned down in the dfa package's own
// tests for (a|b)*abb.
func TestMinimizeNeverIncreasesStateCount(t *testing.T) {
	for _, pattern := range []string{"a", "ab", "a|b", "(a|b)*", "(a|b)*abb", "a(b|c)d"} {
		n, err := parse.Parse(pattern, 0)
		if err != nil {
			t.Fatalf("parse.Parse(%q) error: %v", pattern, err)
		}
		completed := dfa.Complete(dfa.Determinize(n))
		minimized := dfa.Minimize(completed)
		if minimized.Len() > completed.Len() {
			t.Errorf("pattern %q: Minimize grew the state count: %d -> %d", pattern, completed.Len(), minimized.Len())
		}
	}
}
