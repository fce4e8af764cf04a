package search

import (
	"strings"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"   ", ""},
		{"\t\n", ""},
		{"  Project Dashboard ", "project dashboard"},
		{"RISK", "risk"},
		{"(a+b)*[c]", "(a+b)*[c]"},
		{"Cafe\u0301", "caf\u00e9"}, // decomposed accent composes
	}
	for _, tt := range tests {
		if got := Normalize(tt.in); got != tt.want {
			t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalize_InvalidUTF8(t *testing.T) {
	if got := Normalize(" \xffAB "); got == "" {
		t.Fatalf("expected non-empty result for invalid UTF-8 input")
	}
}

func TestTokenize(t *testing.T) {
	got := Tokenize("Change-Request  workflow/Approvals")
	want := []string{"change", "request", "workflow", "approvals"}
	if strings.Join(got, ",") != strings.Join(want, ",") {
		t.Fatalf("Tokenize = %v, want %v", got, want)
	}
	if Tokenize("   ") != nil {
		t.Fatalf("expected nil tokens for blank input")
	}
}

func TestSimilarity(t *testing.T) {
	tests := []struct {
		query, candidate string
		min, max         float64
	}{
		// Exact
		{"Project Dashboard", "Project Dashboard", 1, 1},
		// Case insensitive exact
		{"project dashboard", "PROJECT DASHBOARD", 1, 1},
		// Prefix
		{"proj", "Project Dashboard", 0.85, 0.95},
		// Word start
		{"dash", "Project Dashboard", 0.8, 0.85},
		// Substring
		{"board", "Project Dashboard", 0.6, 0.85},
		// Query contains candidate
		{"project dashboard and more", "Project Dashboard", 0.4, 0.7},
		// Typo
		{"projct", "Project Dashboard", 0.5, 0.85},
		// No relationship
		{"xyzzy", "Project Dashboard", 0, 0.2},
		// Empty
		{"", "Project Dashboard", 0, 0},
		{"proj", "", 0, 0},
		{"   ", "   ", 0, 0},
	}
	for _, tt := range tests {
		got := Similarity(tt.query, tt.candidate)
		if got < tt.min || got > tt.max {
			t.Errorf("Similarity(%q, %q) = %.3f, want [%.2f, %.2f]", tt.query, tt.candidate, got, tt.min, tt.max)
		}
	}
}

func TestSimilarity_MonotonicInSharedPrefix(t *testing.T) {
	const candidate = "Project Dashboard"
	prev := 0.0
	for _, q := range []string{"p", "pr", "pro", "proj", "proje", "projec", "project"} {
		got := Similarity(q, candidate)
		if got < prev {
			t.Fatalf("Similarity(%q) = %.3f dropped below previous %.3f", q, got, prev)
		}
		prev = got
	}
}

func TestSimilarity_BoundedOnLongInputs(t *testing.T) {
	long := strings.Repeat("portfolio ", 5000)
	got := Similarity(long, long+"x")
	if got < 0 || got > 1 {
		t.Fatalf("score out of range: %f", got)
	}
	got = Similarity(strings.Repeat("ab", 10000), "Project Dashboard")
	if got < 0 || got > 1 {
		t.Fatalf("score out of range: %f", got)
	}
}

func TestSimilarity_RegexMetacharacters(t *testing.T) {
	for _, q := range []string{"(", ")", "[", "*", "+?", `\`, "$^", "(.*)"} {
		got := Similarity(q, "Budget (FY24) [draft] *")
		if got < 0 || got > 1 {
			t.Errorf("Similarity(%q) out of range: %f", q, got)
		}
	}
}

func TestBigramCosine(t *testing.T) {
	if got := bigramCosine("abc", "abc"); got < 0.999 {
		t.Fatalf("identical strings: got %f", got)
	}
	if got := bigramCosine("abc", "xyz"); got != 0 {
		t.Fatalf("disjoint strings: got %f", got)
	}
	if got := bigramCosine("a", "a"); got < 0.999 {
		t.Fatalf("single rune: got %f", got)
	}
	if got := bigramCosine("", "abc"); got != 0 {
		t.Fatalf("empty: got %f", got)
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := truncateRunes("héllo", 2); got != "hé" {
		t.Fatalf("truncateRunes = %q", got)
	}
	if got := truncateRunes("hi", 5); got != "hi" {
		t.Fatalf("truncateRunes = %q", got)
	}
}
