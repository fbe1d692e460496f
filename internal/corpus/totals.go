package corpus

import (
	"path"
	"strings"

	"github.com/dgallion1/docgraph/internal/analyze"
)

// Totals aggregates a scan's documents.
type Totals struct {
	FileCount   int                `json:"fileCount"`
	TotalBytes  int64              `json:"totalBytes"`
	ByExtension map[string]int     `json:"byExtension"`
	Statistics  analyze.Statistics `json:"statistics"`
}

// Summarize totals docs. The result does not depend on the order of docs.
func Summarize(docs []analyze.FileMetadata) Totals {
	t := Totals{ByExtension: map[string]int{}}
	for _, d := range docs {
		t.FileCount++
		t.TotalBytes += d.Size
		t.ByExtension[extensionOf(d.Path)]++
		t.Statistics = t.Statistics.Add(d.Statistics)
	}
	return t
}

func extensionOf(p string) string {
	ext := strings.ToLower(path.Ext(p))
	if ext == "" {
		return "(none)"
	}
	return ext
}
