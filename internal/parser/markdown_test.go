package parser

import (
	"strings"
	"testing"

	"github.com/dgallion1/docgraph/internal/doctree"
)

func TestExtractHeadings_Order(t *testing.T) {
	input := `# Title

Intro text.

## Section A

### Subsection A1

## Section B
`
	got := ExtractHeadings([]byte(input))
	want := []doctree.Heading{
		{Level: 1, Text: "Title"},
		{Level: 2, Text: "Section A"},
		{Level: 3, Text: "Subsection A1"},
		{Level: 2, Text: "Section B"},
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d headings, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("heading[%d]: expected %+v, got %+v", i, want[i], got[i])
		}
	}
}

func TestExtractHeadings_SkipsCodeBlocks(t *testing.T) {
	input := "# Real\n\n```sh\n# comment, not a heading\n```\n\n## Also Real\n"
	got := ExtractHeadings([]byte(input))
	if len(got) != 2 {
		t.Fatalf("expected 2 headings, got %d: %+v", len(got), got)
	}
	if got[1].Text != "Also Real" {
		t.Errorf("expected %q, got %q", "Also Real", got[1].Text)
	}
}

func TestExtractHeadings_InlineMarkupFlattened(t *testing.T) {
	got := ExtractHeadings([]byte("## Using *fast* mode\n"))
	if len(got) != 1 || got[0].Text != "Using fast mode" {
		t.Errorf("expected %q, got %+v", "Using fast mode", got)
	}
}

func TestExtractHeadings_NoHeadings(t *testing.T) {
	got := ExtractHeadings([]byte("just prose\n\n- a list\n"))
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %+v", got)
	}
}

func TestMarkdownLoader_NormalizesNewlines(t *testing.T) {
	l := &MarkdownLoader{}
	got, err := l.Load(strings.NewReader("# A\r\n\r\ntext\r\n"), "a.md")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "# A\n\ntext\n" {
		t.Errorf("expected LF text, got %q", got)
	}
}

func TestForFile(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"a.md", false},
		{"b.MARKDOWN", false},
		{"c.txt", false},
		{"d.pdf", false},
		{"e.docx", false},
		{"f.htm", false},
		{"g.csv", false},
		{"h.exe", true},
	}
	for _, tt := range tests {
		_, err := ForFile(tt.name, Options{})
		if (err != nil) != tt.wantErr {
			t.Errorf("ForFile(%q): expected error %v, got %v", tt.name, tt.wantErr, err)
		}
		if IsSupportedExtension(tt.name) == tt.wantErr {
			t.Errorf("IsSupportedExtension(%q): expected %v", tt.name, !tt.wantErr)
		}
	}
}
