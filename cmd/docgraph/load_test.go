package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dgallion1/docgraph/internal/render"
)

func TestLoadDocument_UnknownExtensionIsMarkdown(t *testing.T) {
	p := filepath.Join(t.TempDir(), "README")
	if err := os.WriteFile(p, []byte("# Readme\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	text, size, err := loadDocument(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "# Readme\n" {
		t.Errorf("expected normalized markdown, got %q", text)
	}
	if size != 10 {
		t.Errorf("expected size 10, got %d", size)
	}
}

func TestLoadDocument_Missing(t *testing.T) {
	if _, _, err := loadDocument(filepath.Join(t.TempDir(), "gone.md")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestRunsText(t *testing.T) {
	runs := []render.Run{
		render.TextRun{Text: "see "},
		render.LinkRun{Href: "b.md", Runs: []render.Run{render.TextRun{Text: "docs"}}},
	}
	got := runsText(runs)
	for _, want := range []string{"see ", "docs", "b.md"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in %q", want, got)
		}
	}
}

func TestBlockText_OrderedList(t *testing.T) {
	b := render.ListBlock{Ordered: true, Items: [][]render.Run{
		{render.TextRun{Text: "one"}},
		{render.TextRun{Text: "two"}},
	}}
	got := blockText(b)
	if !strings.Contains(got, "1. one") || !strings.Contains(got, "2. two") {
		t.Errorf("expected numbered items, got %q", got)
	}
}
