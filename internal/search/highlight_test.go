package search

import (
	"strings"
	"testing"
)

func TestHighlightMatch(t *testing.T) {
	tests := []struct {
		text, query, want string
	}{
		{"Project Dashboard", "dash", "Project <mark>Dash</mark>board"},
		{"Project Dashboard", "DASH", "Project <mark>Dash</mark>board"},
		{"Project Dashboard", "  dash ", "Project <mark>Dash</mark>board"},
		{"risk and Risk", "risk", "<mark>risk</mark> and <mark>Risk</mark>"},
		{"Cost (USD) [est.]*", "(usd)", "Cost <mark>(USD)</mark> [est.]*"},
		{"Cost (USD) [est.]*", "[est.]*", "Cost (USD) <mark>[est.]*</mark>"},
		{"Project Dashboard", "zzz", "Project Dashboard"},
		{"Project Dashboard", "", "Project Dashboard"},
		{"Project Dashboard", "   ", "Project Dashboard"},
		{"", "dash", ""},
		{"Project Dashboard", "\xff", "Project Dashboard"},
	}
	for _, tt := range tests {
		if got := HighlightMatch(tt.text, tt.query); got != tt.want {
			t.Errorf("HighlightMatch(%q, %q) = %q, want %q", tt.text, tt.query, got, tt.want)
		}
	}
}

func TestHighlightMatch_RoundTrip(t *testing.T) {
	texts := []string{
		"Project Dashboard",
		"aaaa",
		"Änderungsantrag für Ärzte",
		"Budget (FY24) [draft] * $100 ^ | ? + .",
		"",
		strings.Repeat("ab", 500),
	}
	queries := []string{"a", "aa", "ä", "(fy24)", "[", "*", "$", ".", "b", "xyz", "", "\\", "dash"}
	for _, text := range texts {
		for _, q := range queries {
			if got := StripHighlight(HighlightMatch(text, q)); got != text {
				t.Errorf("round trip failed for text=%q query=%q: %q", text, q, got)
			}
		}
	}
}

func TestMatchRanges(t *testing.T) {
	got := MatchRanges("aaaa", "aa")
	if len(got) != 2 || got[0] != [2]int{0, 2} || got[1] != [2]int{2, 4} {
		t.Fatalf("unexpected ranges: %v", got)
	}
	if MatchRanges("abc", "") != nil {
		t.Fatalf("expected nil for empty query")
	}
}

func TestHighlighter_Render(t *testing.T) {
	h := Highlighter{Render: strings.ToUpper}
	if got := h.Highlight("risk register", "reg"); got != "risk REGister" {
		t.Fatalf("unexpected render: %q", got)
	}
	custom := Highlighter{Open: "[[", Close: "]]"}
	out := custom.Highlight("Risk Register", "risk")
	if out != "[[Risk]] Register" {
		t.Fatalf("unexpected custom markers: %q", out)
	}
	if custom.Strip(out) != "Risk Register" {
		t.Fatalf("strip failed: %q", custom.Strip(out))
	}
}
