package graph

import (
	"math"
	"testing"

	"github.com/dgallion1/docgraph/internal/analyze"
)

func doc(p string, size int64, rels ...string) analyze.FileMetadata {
	m := analyze.Empty(p)
	m.Size = size
	for _, r := range rels {
		m.Relations = append(m.Relations, analyze.Relation{Path: r})
	}
	return m
}

func TestExtractTwoDocuments(t *testing.T) {
	a := doc("/x/y/a.md", 100)
	b := doc("/x/z/b.md", 100, "/x/y/a.md")

	g := Extract([]analyze.FileMetadata{a, b})

	if len(g.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(g.Nodes))
	}
	if len(g.Links) != 1 {
		t.Fatalf("expected 1 link, got %d", len(g.Links))
	}
	if g.Links[0] != (Link{Source: "/x/z/b.md", Target: "/x/y/a.md"}) {
		t.Errorf("expected b -> a, got %+v", g.Links[0])
	}
	if len(g.Categories) != 2 || g.Categories[0].Name != "y" || g.Categories[1].Name != "z" {
		t.Errorf("expected categories [y z], got %+v", g.Categories)
	}
	if g.Nodes[1].Category != 1 {
		t.Errorf("expected b in category 1, got %d", g.Nodes[1].Category)
	}
}

func TestExtractDropsUnknownTargets(t *testing.T) {
	a := doc("/docs/a.md", 10, "missing.md", "../nowhere.md")
	g := Extract([]analyze.FileMetadata{a})
	if len(g.Links) != 0 {
		t.Errorf("expected no links, got %+v", g.Links)
	}
}

func TestExtractRelativeTargets(t *testing.T) {
	a := doc("/x/y/a.md", 10)
	b := doc("/x/z/b.md", 10, "../y/a.md", "../y/a.md#install")
	g := Extract([]analyze.FileMetadata{a, b})
	if len(g.Links) != 2 {
		t.Fatalf("expected 2 links, got %+v", g.Links)
	}
	for _, l := range g.Links {
		if l.Target != "/x/y/a.md" {
			t.Errorf("expected target /x/y/a.md, got %q", l.Target)
		}
	}
}

func TestExtractNextPrevious(t *testing.T) {
	a := doc("/a.md", 10)
	b := doc("/b.md", 10)
	c := doc("/c.md", 10)
	b.Previous = []string{"/a.md"}
	b.Next = []string{"/c.md"}
	c.FrontMatter.Previous = []string{"b.md"}
	a.FrontMatter.Related = []string{"c.md"}

	g := Extract([]analyze.FileMetadata{a, b, c})

	want := []Link{
		{Source: "/a.md", Target: "/c.md"},
		{Source: "/b.md", Target: "/c.md"},
		{Source: "/a.md", Target: "/b.md"},
		{Source: "/b.md", Target: "/c.md"},
	}
	if len(g.Links) != len(want) {
		t.Fatalf("expected %d links, got %+v", len(want), g.Links)
	}
	for i := range want {
		if g.Links[i] != want[i] {
			t.Errorf("link %d: expected %+v, got %+v", i, want[i], g.Links[i])
		}
	}
}

func TestExtractEmpty(t *testing.T) {
	g := Extract(nil)
	if g.Nodes == nil || g.Links == nil || g.Categories == nil {
		t.Errorf("expected empty non-nil slices, got %+v", g)
	}
}

func TestCategoryOf(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/x/y/a.md", "y"},
		{"/x/y/z/a.md", "y"},
		{"/x/a.md", RootCategory},
		{"a.md", RootCategory},
		{"", RootCategory},
	}
	for _, tt := range tests {
		if got := CategoryOf(tt.path); got != tt.want {
			t.Errorf("CategoryOf(%q): expected %q, got %q", tt.path, tt.want, got)
		}
	}
}

func TestSymbolSize(t *testing.T) {
	tests := []struct {
		size int64
		want float64
	}{
		{-5, 8},
		{0, 8},
		{1, 8},
		{100, 2.5 * math.Log(100)},
		{1 << 20, 20},
	}
	for _, tt := range tests {
		if got := SymbolSize(tt.size); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("SymbolSize(%d): expected %f, got %f", tt.size, tt.want, got)
		}
	}
}

func TestCategoryColor(t *testing.T) {
	// "root" hashes to 3506402, and 3506402 mod 9 = 2.
	if got := CategoryColor("root"); got != Palette[2] {
		t.Errorf("expected %s, got %s", Palette[2], got)
	}
	if CategoryColor("guides") != CategoryColor("guides") {
		t.Error("expected stable color")
	}
}
