package parser

import (
	"strings"
	"testing"
)

func TestTextLoader_ParagraphSplitting(t *testing.T) {
	input := "First paragraph line one.\nFirst paragraph line two.\n\n\n\nSecond paragraph.\n\nThird paragraph.\n"
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader(input), "notes.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "First paragraph line one.\nFirst paragraph line two.\n\nSecond paragraph.\n\nThird paragraph."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestTextLoader_EmptyInput(t *testing.T) {
	l := &TextLoader{}
	got, err := l.Load(strings.NewReader(""), "empty.txt")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestCSVLoader_PipeTable(t *testing.T) {
	input := "name,qty\napple,3\npear,5,extra\n"
	l := &CSVLoader{}
	got, err := l.Load(strings.NewReader(input), "fruit.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "| name | qty |  |\n| --- | --- | --- |\n| apple | 3 |  |\n| pear | 5 | extra |"
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestCSVLoader_Empty(t *testing.T) {
	l := &CSVLoader{}
	got, err := l.Load(strings.NewReader(""), "empty.csv")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("expected empty text, got %q", got)
	}
}

func TestHTMLLoader_Structure(t *testing.T) {
	input := `<html><head><title>Ignored</title><style>p{}</style></head><body>
<h1>Guide</h1>
<p>Read the <a href="setup.md">setup notes</a> <strong>first</strong>.</p>
<h2>Steps</h2>
<ol><li>one</li><li>two</li></ol>
<ul><li>alpha</li></ul>
<pre>x := 1
y := 2</pre>
<table><tr><th>k</th><th>v</th></tr><tr><td>a</td><td>1</td></tr></table>
<script>alert(1)</script>
</body></html>`

	l := &HTMLLoader{}
	got, err := l.Load(strings.NewReader(input), "guide.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := strings.Join([]string{
		"# Guide",
		"Read the [setup notes](setup.md) **first**.",
		"## Steps",
		"1. one\n2. two",
		"- alpha",
		"```\nx := 1\ny := 2\n```",
		"| k | v |\n| --- | --- |\n| a | 1 |",
	}, "\n\n")
	if got != want {
		t.Errorf("expected\n%s\ngot\n%s", want, got)
	}
}

func TestHTMLLoader_TitleBecomesHeading(t *testing.T) {
	l := &HTMLLoader{}
	got, err := l.Load(strings.NewReader("<title>Notes</title><p>body</p>"), "n.html")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "# Notes\n\nbody" {
		t.Errorf("expected %q, got %q", "# Notes\n\nbody", got)
	}
}

func TestStyleHeadingLevel(t *testing.T) {
	tests := []struct {
		style string
		want  int
	}{
		{"Heading1", 1},
		{"heading 3", 3},
		{"Heading7", 0},
		{"Normal", 0},
		{"Heading10", 0},
	}
	for _, tt := range tests {
		if got := styleHeadingLevel(tt.style); got != tt.want {
			t.Errorf("styleHeadingLevel(%q): expected %d, got %d", tt.style, tt.want, got)
		}
	}
}

func TestPagesToMarkdown(t *testing.T) {
	got := pagesToMarkdown("first page\f\fthird page\n")
	want := "# Page 1\n\nfirst page\n\n# Page 3\n\nthird page"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
