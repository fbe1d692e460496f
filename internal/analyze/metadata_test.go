package analyze

import (
	"errors"
	"testing"
)

func TestAnalyze(t *testing.T) {
	text := "---\ntags: [a]\n---\n# Guide\n\nSee [next](b.md).\n\n## Install\n\n```\n# not a heading\n```\n\n## Usage\n"
	meta := Analyze("/docs/guide.md", 0, text, nil)

	if meta.Title != "Guide" {
		t.Errorf("expected title Guide, got %q", meta.Title)
	}
	if meta.Size != int64(len(text)) {
		t.Errorf("expected size %d, got %d", len(text), meta.Size)
	}
	if len(meta.Headings) != 1 || len(meta.Headings[0].Children) != 2 {
		t.Fatalf("expected one root with two children, got %+v", meta.Headings)
	}
	want := []string{"# Guide/## Install", "# Guide/## Usage"}
	if len(meta.LeafPaths) != len(want) {
		t.Fatalf("expected leaf paths %v, got %v", want, meta.LeafPaths)
	}
	for i := range want {
		if meta.LeafPaths[i] != want[i] {
			t.Errorf("leaf %d: expected %q, got %q", i, want[i], meta.LeafPaths[i])
		}
	}
	if len(meta.Relations) != 1 || meta.Relations[0].Path != "b.md" {
		t.Errorf("expected relation to b.md, got %+v", meta.Relations)
	}
	if len(meta.FrontMatter.Tags) != 1 {
		t.Errorf("expected front matter tags, got %+v", meta.FrontMatter)
	}
	if !meta.Profile.HasCode {
		t.Error("expected hasCode")
	}
}

func TestAnalyzeTitleFallbacks(t *testing.T) {
	tests := []struct {
		name string
		path string
		text string
		want string
	}{
		{"front matter wins", "/a.md", "---\ntitle: FM\n---\n# H1\n", "FM"},
		{"first h1", "/a.md", "## Sub\n# Top\n", "Top"},
		{"file stem", "/dir/notes.md", "no headings", "notes"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Analyze(tt.path, 0, tt.text, nil).Title; got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAnalyzeBadFrontMatter(t *testing.T) {
	meta := Analyze("/a.md", 0, "---\ntitle: x\n# Heading\n", nil)
	if len(meta.Headings) != 1 || meta.Headings[0].Text != "Heading" {
		t.Errorf("expected heading from full text, got %+v", meta.Headings)
	}
}

func TestAnalyzeSourceReadError(t *testing.T) {
	meta := AnalyzeSource("/broken.md", func() (string, int64, error) {
		return "", 0, errors.New("permission denied")
	}, nil)

	if meta.Path != "/broken.md" {
		t.Errorf("expected path preserved, got %q", meta.Path)
	}
	if meta.Headings == nil || len(meta.Headings) != 0 {
		t.Errorf("expected empty headings, got %v", meta.Headings)
	}
	if meta.Relations == nil || len(meta.Relations) != 0 {
		t.Errorf("expected empty relations, got %v", meta.Relations)
	}
	if meta.LeafPaths == nil || len(meta.LeafPaths) != 0 {
		t.Errorf("expected empty leaf paths, got %v", meta.LeafPaths)
	}
	if meta.Statistics != (Statistics{}) {
		t.Errorf("expected zero statistics, got %+v", meta.Statistics)
	}
}

func TestAnalyzeSourcePanic(t *testing.T) {
	meta := AnalyzeSource("/p.md", func() (string, int64, error) {
		panic("boom")
	}, nil)
	if meta.Path != "/p.md" || len(meta.Headings) != 0 {
		t.Errorf("expected empty record, got %+v", meta)
	}
}
