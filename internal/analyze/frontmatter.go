package analyze

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

const frontMatterSeparator = "---\n"

// FrontMatter is the subset of a leading metadata block the graph cares about.
type FrontMatter struct {
	Title    string   `json:"title,omitempty"`
	Next     []string `json:"next,omitempty"`
	Previous []string `json:"previous,omitempty"`
	Related  []string `json:"related,omitempty"`
	Tags     []string `json:"tags,omitempty"`
}

// IsZero reports whether no known keys were declared.
func (f FrontMatter) IsZero() bool {
	return f.Title == "" && len(f.Next) == 0 && len(f.Previous) == 0 && len(f.Related) == 0 && len(f.Tags) == 0
}

// SplitFrontMatter separates a leading `---` delimited YAML block from the
// body. Text without a block is returned unchanged with a zero FrontMatter.
func SplitFrontMatter(text string) (FrontMatter, string, error) {
	text = normalizeNewlines(text)
	if !strings.HasPrefix(text, frontMatterSeparator) {
		return FrontMatter{}, text, nil
	}
	rest := strings.TrimPrefix(text, frontMatterSeparator)

	var raw, body string
	switch idx := strings.Index(rest, "\n---\n"); {
	case rest == "---" || strings.HasPrefix(rest, frontMatterSeparator):
		body = strings.TrimPrefix(rest, "---")
		body = strings.TrimPrefix(body, "\n")
	case idx >= 0:
		raw, body = rest[:idx], rest[idx+len("\n---\n"):]
	case strings.HasSuffix(rest, "\n---"):
		raw = strings.TrimSuffix(rest, "\n---")
	default:
		return FrontMatter{}, text, fmt.Errorf("invalid front matter: missing closing separator")
	}

	decoded := map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &decoded); err != nil {
		return FrontMatter{}, text, fmt.Errorf("unmarshal front matter: %w", err)
	}

	fm := FrontMatter{
		Title:    scalarString(decoded["title"]),
		Next:     stringList(decoded["next"]),
		Previous: append(stringList(decoded["previous"]), stringList(decoded["prev"])...),
		Related:  stringList(decoded["related"]),
		Tags:     stringList(decoded["tags"]),
	}
	return fm, body, nil
}

func scalarString(v any) string {
	switch v := v.(type) {
	case string:
		return strings.TrimSpace(v)
	case nil:
		return ""
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// stringList accepts a single string or a list of scalars.
func stringList(v any) []string {
	switch v := v.(type) {
	case string:
		if s := strings.TrimSpace(v); s != "" {
			return []string{s}
		}
	case []any:
		var out []string
		for _, item := range v {
			if s := scalarString(item); s != "" {
				out = append(out, s)
			}
		}
		return out
	}
	return nil
}
