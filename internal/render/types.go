// Package render turns markdown-like text into typed content blocks and inline
// runs for a display layer.
package render

import "strings"

// Block is one renderable structural unit of a document. The set of
// implementations is closed: HeadingBlock, ParagraphBlock, ListBlock,
// TableBlock, CodeBlock and MathBlock.
type Block interface {
	block()
}

// Run is one renderable span of inline text. The set of implementations is
// closed: TextRun, BoldRun, ItalicRun, CodeRun, LinkRun and MathRun.
type Run interface {
	run()
}

type HeadingBlock struct {
	Level int   `json:"level"`
	Runs  []Run `json:"runs"`
}

type ParagraphBlock struct {
	Runs []Run `json:"runs"`
}

// ListBlock holds contiguous list items; each item is one run sequence.
type ListBlock struct {
	Ordered bool    `json:"ordered"`
	Items   [][]Run `json:"items"`
}

// TableBlock holds a header row and data rows of independently resolved cells.
type TableBlock struct {
	Header [][]Run   `json:"header"`
	Rows   [][][]Run `json:"rows"`
}

// CodeBlock holds the verbatim lines between fence markers.
type CodeBlock struct {
	Language string   `json:"language,omitempty"`
	Lines    []string `json:"lines"`
}

// Content joins the block's lines with newlines.
func (b CodeBlock) Content() string {
	return strings.Join(b.Lines, "\n")
}

// MathBlock carries rendered markup when the math renderer succeeded, or only
// the raw source otherwise.
type MathBlock struct {
	Math
}

func (HeadingBlock) block()   {}
func (ParagraphBlock) block() {}
func (ListBlock) block()      {}
func (TableBlock) block()     {}
func (CodeBlock) block()      {}
func (MathBlock) block()      {}

type TextRun struct {
	Text string `json:"text"`
}

type BoldRun struct {
	Runs []Run `json:"runs"`
}

type ItalicRun struct {
	Runs []Run `json:"runs"`
}

type CodeRun struct {
	Code string `json:"code"`
}

// LinkRun is a link whose label is itself resolved into runs. Href is kept
// exactly as written.
type LinkRun struct {
	Href string `json:"href"`
	Runs []Run  `json:"runs"`
}

type MathRun struct {
	Math
}

func (TextRun) run()   {}
func (BoldRun) run()   {}
func (ItalicRun) run() {}
func (CodeRun) run()   {}
func (LinkRun) run()   {}
func (MathRun) run()   {}

// Math is a rendered expression or its raw-source fallback.
type Math struct {
	Source   string `json:"source"`
	Markup   string `json:"markup,omitempty"`
	Rendered bool   `json:"rendered"`
}

// Content is the rendered markup, or the raw source when rendering failed.
func (m Math) Content() string {
	if m.Rendered {
		return m.Markup
	}
	return m.Source
}

// PlainText flattens runs to their visible text. Math contributes its source.
func PlainText(runs []Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch r := r.(type) {
		case TextRun:
			sb.WriteString(r.Text)
		case BoldRun:
			sb.WriteString(PlainText(r.Runs))
		case ItalicRun:
			sb.WriteString(PlainText(r.Runs))
		case CodeRun:
			sb.WriteString(r.Code)
		case LinkRun:
			sb.WriteString(PlainText(r.Runs))
		case MathRun:
			sb.WriteString(r.Source)
		default:
			panic("render: unknown run type")
		}
	}
	return sb.String()
}
