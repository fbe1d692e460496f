package analyze

import (
	"strings"
	"testing"
)

func TestClassifyComplexityBoundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Complexity
	}{
		{0, Simple},
		{9, Simple},
		{10, Moderate},
		{24, Moderate},
		{25, Complex},
	}
	for _, tt := range tests {
		if got := ClassifyComplexity(tt.score); got != tt.want {
			t.Errorf("score %d: expected %s, got %s", tt.score, tt.want, got)
		}
	}
}

func TestDetectLanguage(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"none", "just prose", "markdown"},
		{"go", "```go\nx\n```", "go"},
		{"priority beats position", "```rust\n```\n```python\n```", "python"},
		{"js alias", "```js\n```", "javascript"},
		{"java prefix of javascript", "```javascript\n```", "javascript"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectLanguage(tt.text); got != tt.want {
				t.Errorf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyTopics(t *testing.T) {
	text := "# Getting Started Quickly Today\n## an API Reference\n## Getting Help\n### Extra More Topics Here"
	p := Classify(text)
	want := []string{"Getting", "Started", "Quickly", "API", "Reference"}
	if len(p.Topics) != len(want) {
		t.Fatalf("expected topics %v, got %v", want, p.Topics)
	}
	for i := range want {
		if p.Topics[i] != want[i] {
			t.Errorf("topic %d: expected %q, got %q", i, want[i], p.Topics[i])
		}
	}
}

func TestClassifyFlagsAndScore(t *testing.T) {
	text := "# Doc\n\n![pic](a.png) [link](b.md)\n\n| a | b |\n|---|---|\n\n```py\nx = 1\n```\n\n$x$"
	p := Classify(text)

	if !p.HasCode || !p.HasImages || !p.HasTables || !p.HasMath {
		t.Errorf("expected all flags set, got %+v", p)
	}
	// 2*1 code + 1 heading + 1 link + 1 image + 3*2 table rows
	if p.ComplexityScore != 11 {
		t.Errorf("expected score 11, got %d", p.ComplexityScore)
	}
	if p.Complexity != Moderate {
		t.Errorf("expected moderate, got %s", p.Complexity)
	}
	if p.Language != "python" {
		t.Errorf("expected python, got %s", p.Language)
	}
}

func TestClassifyPlain(t *testing.T) {
	p := Classify("hello world")
	if p.HasCode || p.HasImages || p.HasTables || p.HasMath {
		t.Errorf("expected no flags, got %+v", p)
	}
	if p.Complexity != Simple {
		t.Errorf("expected simple, got %s", p.Complexity)
	}
	if p.Topics == nil {
		t.Error("expected empty topics, got nil")
	}
}

func TestSummarize(t *testing.T) {
	t.Run("short", func(t *testing.T) {
		if got := Summarize("  hello  "); got != "hello" {
			t.Errorf("expected %q, got %q", "hello", got)
		}
	})
	t.Run("truncated", func(t *testing.T) {
		got := Summarize(strings.Repeat("a", 250))
		want := strings.Repeat("a", 200) + "..."
		if got != want {
			t.Errorf("expected 200 chars plus ellipsis, got %d chars", len(got))
		}
	})
	t.Run("exactly 200", func(t *testing.T) {
		got := Summarize(strings.Repeat("b", 200))
		if !strings.HasSuffix(got, "...") {
			t.Errorf("expected ellipsis at exactly 200 chars, got %q", got)
		}
	})
	t.Run("strips front matter and code", func(t *testing.T) {
		got := Summarize("---\ntitle: x\n---\nBody ```code``` end")
		if got != "Body  end" {
			t.Errorf("expected %q, got %q", "Body  end", got)
		}
	})
}
