package search

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// splitFrontmatter separates a leading YAML block from the page body.
// Keys are lower-cased. Pages without (or with broken) frontmatter yield an
// empty header and the full content.
func splitFrontmatter(content string) (map[string]any, string) {
	s := strings.TrimPrefix(content, "\ufeff")
	if !strings.HasPrefix(s, "---") {
		return map[string]any{}, content
	}

	parts := strings.SplitN(s, "---", 3)
	if len(parts) < 3 {
		return map[string]any{}, content
	}

	fmText := strings.TrimSpace(parts[1])
	body := strings.TrimPrefix(parts[2], "\n")

	var raw map[string]any
	if err := yaml.Unmarshal([]byte(fmText), &raw); err != nil {
		return map[string]any{}, content
	}

	out := make(map[string]any, len(raw))
	for k, v := range raw {
		out[strings.ToLower(k)] = v
	}
	return out, body
}

func fmString(h map[string]any, key string) string {
	switch v := h[key].(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// fmList accepts either a YAML sequence or a comma-separated string.
func fmList(h map[string]any, key string) []string {
	var raw []string
	switch v := h[key].(type) {
	case string:
		raw = strings.Split(v, ",")
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok {
				raw = append(raw, s)
			}
		}
	}
	var out []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
