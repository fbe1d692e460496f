package parser

import (
	"io"
	"strings"

	"github.com/dgallion1/docgraph/internal/doctree"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// MarkdownLoader passes markdown through with line endings normalized.
type MarkdownLoader struct{}

func (l *MarkdownLoader) Load(r io.Reader, filename string) (string, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(string(src), "\r\n", "\n"), nil
}

// ExtractHeadings returns the document's headings in source order. Heading
// markers inside code blocks are not headings and are skipped.
func ExtractHeadings(src []byte) []doctree.Heading {
	md := goldmark.New()
	doc := md.Parser().Parse(text.NewReader(src))

	headings := []doctree.Heading{}
	for n := doc.FirstChild(); n != nil; n = n.NextSibling() {
		h, ok := n.(*ast.Heading)
		if !ok {
			continue
		}
		title := strings.TrimSpace(string(h.Text(src)))
		if title == "" {
			continue
		}
		headings = append(headings, doctree.Heading{Level: h.Level, Text: title})
	}
	return headings
}
