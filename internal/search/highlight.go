package search

import (
	"regexp"
	"strings"
)

// Default highlight markers, as rendered by the web search bar.
const (
	MarkOpen  = "<mark>"
	MarkClose = "</mark>"
)

// Highlighter wraps query matches in display text.
//
// When Render is set it is applied to every matched substring and Open/Close
// are ignored.
type Highlighter struct {
	Open   string
	Close  string
	Render func(match string) string
}

// DefaultHighlighter uses the <mark> markers.
var DefaultHighlighter = Highlighter{Open: MarkOpen, Close: MarkClose}

// HighlightMatch wraps each case-insensitive occurrence of query in text with
// <mark></mark>. Text outside matches is returned untouched.
func HighlightMatch(text, query string) string {
	return DefaultHighlighter.Highlight(text, query)
}

// StripHighlight removes the default markers from s.
func StripHighlight(s string) string {
	return DefaultHighlighter.Strip(s)
}

// MatchRanges returns the byte ranges of non-overlapping, case-insensitive
// occurrences of the trimmed query in text. The query is matched literally.
func MatchRanges(text, query string) [][2]int {
	q := strings.TrimSpace(query)
	if q == "" || text == "" {
		return nil
	}
	re, err := regexp.Compile("(?i)" + regexp.QuoteMeta(q))
	if err != nil {
		// invalid UTF-8 in query
		return nil
	}
	locs := re.FindAllStringIndex(text, -1)
	out := make([][2]int, 0, len(locs))
	for _, l := range locs {
		if l[1] > l[0] {
			out = append(out, [2]int{l[0], l[1]})
		}
	}
	return out
}

// Highlight wraps matches of query in text.
func (h Highlighter) Highlight(text, query string) string {
	ranges := MatchRanges(text, query)
	if len(ranges) == 0 {
		return text
	}
	var b strings.Builder
	b.Grow(len(text) + len(ranges)*(len(h.Open)+len(h.Close)))
	last := 0
	for _, r := range ranges {
		b.WriteString(text[last:r[0]])
		match := text[r[0]:r[1]]
		if h.Render != nil {
			b.WriteString(h.Render(match))
		} else {
			b.WriteString(h.Open)
			b.WriteString(match)
			b.WriteString(h.Close)
		}
		last = r[1]
	}
	b.WriteString(text[last:])
	return b.String()
}

// Strip removes h's markers from s.
func (h Highlighter) Strip(s string) string {
	if h.Open != "" {
		s = strings.ReplaceAll(s, h.Open, "")
	}
	if h.Close != "" {
		s = strings.ReplaceAll(s, h.Close, "")
	}
	return s
}
