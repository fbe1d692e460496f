// Package analyze extracts structure, references, statistics and a content
// profile from document text.
package analyze

import (
	"fmt"
	"log/slog"
	"path"
	"strings"

	"github.com/dgallion1/docgraph/internal/doctree"
	"github.com/dgallion1/docgraph/internal/parser"
)

// FileMetadata is the aggregated record for one document. It is not modified
// after Analyze returns it.
type FileMetadata struct {
	Path        string                 `json:"path"`
	Title       string                 `json:"title"`
	Size        int64                  `json:"size"`
	Headings    []*doctree.HeadingNode `json:"headings"`
	LeafPaths   []string               `json:"leafPaths"`
	Relations   []Relation             `json:"relations"`
	Statistics  Statistics             `json:"statistics"`
	Profile     ContentProfile         `json:"profile"`
	FrontMatter FrontMatter            `json:"frontMatter"`

	// Next and Previous are structural neighbours assigned by the caller,
	// e.g. directory order during a corpus scan.
	Next     []string `json:"next,omitempty"`
	Previous []string `json:"previous,omitempty"`
}

// Empty is the record substituted for a document that could not be read or
// analyzed: only Path is set, and every collection is empty rather than nil.
func Empty(docPath string) FileMetadata {
	return FileMetadata{
		Path:      docPath,
		Title:     titleFromPath(docPath),
		Headings:  []*doctree.HeadingNode{},
		LeafPaths: []string{},
		Relations: []Relation{},
		Profile: ContentProfile{
			Language:   defaultLanguage,
			Topics:     []string{},
			Complexity: Simple,
		},
	}
}

// Analyze composes every extractor over text. Size is the caller's byte size;
// when zero, the text length is used.
func Analyze(docPath string, size int64, text string, log *slog.Logger) FileMetadata {
	if log == nil {
		log = slog.Default()
	}
	text = normalizeNewlines(text)
	if size <= 0 {
		size = int64(len(text))
	}

	fm, body, err := SplitFrontMatter(text)
	if err != nil {
		log.Warn("ignoring front matter", "path", docPath, "error", err)
		body = text
	}

	forest := doctree.Build(parser.ExtractHeadings([]byte(body)))

	return FileMetadata{
		Path:        docPath,
		Title:       chooseTitle(docPath, fm, forest),
		Size:        size,
		Headings:    forest,
		LeafPaths:   doctree.LeafPaths(forest),
		Relations:   ExtractRelations(text),
		Statistics:  ComputeStatistics(text),
		Profile:     Classify(text),
		FrontMatter: fm,
	}
}

// ReadFunc supplies a document's text and byte size.
type ReadFunc func() (text string, size int64, err error)

// AnalyzeSource reads and analyzes one document. Read failures and panics
// yield Empty(docPath); neither is returned to the caller.
func AnalyzeSource(docPath string, read ReadFunc, log *slog.Logger) (meta FileMetadata) {
	if log == nil {
		log = slog.Default()
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("analysis panicked", "path", docPath, "panic", fmt.Sprint(r))
			meta = Empty(docPath)
		}
	}()

	text, size, err := read()
	if err != nil {
		log.Warn("document unreadable", "path", docPath, "error", err)
		return Empty(docPath)
	}
	return Analyze(docPath, size, text, log)
}

func chooseTitle(docPath string, fm FrontMatter, forest []*doctree.HeadingNode) string {
	if fm.Title != "" {
		return fm.Title
	}
	for _, root := range forest {
		if root.Level == 1 {
			return root.Text
		}
	}
	return titleFromPath(docPath)
}

func titleFromPath(docPath string) string {
	base := path.Base(strings.ReplaceAll(docPath, "\\", "/"))
	if ext := path.Ext(base); ext != "" && ext != base {
		base = strings.TrimSuffix(base, ext)
	}
	return base
}
