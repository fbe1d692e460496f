// Package graph turns analyzed documents into a node/link/category graph for
// force-directed visualization.
package graph

import (
	"math"
	"path"
	"strings"
	"unicode/utf16"

	"github.com/dgallion1/docgraph/internal/analyze"
)

// RootCategory is assigned to paths too shallow to carry a directory category.
const RootCategory = "root"

const (
	minSymbolSize = 8
	maxSymbolSize = 20
	symbolScale   = 2.5
)

// Palette is the ordered color set categories hash into.
var Palette = []string{
	"#5470c6", "#91cc75", "#fac858", "#ee6666", "#73c0de",
	"#3ba272", "#fc8452", "#9a60b4", "#ea7ccc",
}

type Node struct {
	ID         string  `json:"id"`
	Label      string  `json:"label"`
	Path       string  `json:"path"`
	ByteSize   int64   `json:"byteSize"`
	SymbolSize float64 `json:"symbolSize"`
	Category   int     `json:"category"`
}

type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

type Category struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// Graph is the visualization payload. Every link endpoint is a node ID.
type Graph struct {
	Nodes      []Node     `json:"nodes"`
	Links      []Link     `json:"links"`
	Categories []Category `json:"categories"`
}

// Extract builds the graph from docs in the order given. Links whose target
// is not one of the docs are dropped; duplicate links are kept.
func Extract(docs []analyze.FileMetadata) Graph {
	g := Graph{Nodes: []Node{}, Links: []Link{}, Categories: []Category{}}

	known := make(map[string]bool, len(docs))
	categoryIndex := map[string]int{}
	for _, doc := range docs {
		if known[doc.Path] {
			continue
		}
		known[doc.Path] = true

		name := CategoryOf(doc.Path)
		idx, ok := categoryIndex[name]
		if !ok {
			idx = len(g.Categories)
			categoryIndex[name] = idx
			g.Categories = append(g.Categories, Category{Name: name, Color: CategoryColor(name)})
		}

		g.Nodes = append(g.Nodes, Node{
			ID:         doc.Path,
			Label:      label(doc),
			Path:       doc.Path,
			ByteSize:   doc.Size,
			SymbolSize: SymbolSize(doc.Size),
			Category:   idx,
		})
	}

	for _, doc := range docs {
		src := doc.Path
		forward := func(targets ...string) {
			for _, t := range targets {
				if id, ok := resolve(src, t, known); ok {
					g.Links = append(g.Links, Link{Source: src, Target: id})
				}
			}
		}
		backward := func(targets ...string) {
			for _, t := range targets {
				if id, ok := resolve(src, t, known); ok {
					g.Links = append(g.Links, Link{Source: id, Target: src})
				}
			}
		}

		for _, rel := range doc.Relations {
			forward(rel.Path)
		}
		forward(doc.Next...)
		backward(doc.Previous...)
		forward(doc.FrontMatter.Next...)
		backward(doc.FrontMatter.Previous...)
		forward(doc.FrontMatter.Related...)
	}
	return g
}

// CategoryOf returns the path component after the second separator, or
// RootCategory when the path has no directory at that depth. A file name is
// never a category: "/x/a.md" is in RootCategory.
func CategoryOf(p string) string {
	parts := strings.Split(strings.ReplaceAll(p, "\\", "/"), "/")
	if len(parts) > 3 && parts[2] != "" {
		return parts[2]
	}
	return RootCategory
}

// SymbolSize is 2.5·ln(size) clamped to [8, 20]. Sizes below 1 count as 1.
func SymbolSize(size int64) float64 {
	s := symbolScale * math.Log(float64(max(size, 1)))
	return math.Min(maxSymbolSize, math.Max(minSymbolSize, s))
}

// CategoryColor hashes name with a 32-bit h*31+c rolling hash and picks the
// palette entry at |h| mod len(Palette).
func CategoryColor(name string) string {
	var h int32
	for _, c := range utf16.Encode([]rune(name)) {
		h = h*31 + int32(c)
	}
	n := int64(h)
	if n < 0 {
		n = -n
	}
	return Palette[n%int64(len(Palette))]
}

// resolve matches target as a node ID directly, then relative to src's
// directory. URL fragments are ignored.
func resolve(src, target string, known map[string]bool) (string, bool) {
	if i := strings.IndexByte(target, '#'); i >= 0 {
		target = target[:i]
	}
	if target == "" {
		return "", false
	}
	if known[target] {
		return target, true
	}
	if !strings.HasPrefix(target, "/") {
		joined := path.Clean(path.Join(path.Dir(src), target))
		if known[joined] {
			return joined, true
		}
	}
	return "", false
}

func label(doc analyze.FileMetadata) string {
	if doc.Title != "" {
		return doc.Title
	}
	return path.Base(doc.Path)
}
