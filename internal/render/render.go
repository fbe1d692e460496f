package render

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
)

// MathRenderer turns a TeX expression into display markup. Errors are never
// fatal to rendering; the caller falls back to the raw source.
type MathRenderer interface {
	RenderMath(ctx context.Context, src string, display bool) (string, error)
}

// Renderer segments documents into blocks. A nil MathRenderer leaves every
// math expression as raw source.
type Renderer struct {
	math MathRenderer
	log  *slog.Logger
}

func New(math MathRenderer, log *slog.Logger) *Renderer {
	if log == nil {
		log = slog.Default()
	}
	return &Renderer{math: math, log: log}
}

const (
	fenceMarker = "```"
	mathMarker  = "$$"
)

var (
	tableRowRe    = regexp.MustCompile(`^\s*\|.*\|\s*$`)
	tableSepRe    = regexp.MustCompile(`^\s*\|?\s*:?-+:?\s*(\|\s*:?-+:?\s*)*\|?\s*$`)
	headingRe     = regexp.MustCompile(`^(#{1,6})\s+(.+)$`)
	bulletRe      = regexp.MustCompile(`^\s*[-*+]\s+(.*)$`)
	orderedRe     = regexp.MustCompile(`^\s*\d+[.)]\s+(.*)$`)
	displayMathRe = regexp.MustCompile(`^\$\$([^$]+)\$\$$`)
)

// Render segments text into blocks in document order. It never fails:
// unterminated fences and math regions are flushed as best-effort blocks.
func (r *Renderer) Render(ctx context.Context, text string) []Block {
	lines := SplitLines(text)
	blocks := []Block{}

	for i := 0; i < len(lines); {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		switch {
		case isFenceOpen(trimmed):
			var code CodeBlock
			code, i = collectFence(lines, i)
			blocks = append(blocks, code)

		case isTableStart(lines, i):
			var table TableBlock
			table, i = r.collectTable(ctx, lines, i)
			blocks = append(blocks, table)

		case headingRe.MatchString(trimmed):
			m := headingRe.FindStringSubmatch(trimmed)
			blocks = append(blocks, HeadingBlock{
				Level: len(m[1]),
				Runs:  r.Inline(ctx, strings.TrimSpace(m[2])),
			})
			i++

		case bulletRe.MatchString(line), orderedRe.MatchString(line):
			var list ListBlock
			list, i = r.collectList(ctx, lines, i)
			blocks = append(blocks, list)

		case trimmed == "":
			i++

		case trimmed == mathMarker:
			var math MathBlock
			math, i = r.collectMath(ctx, lines, i)
			blocks = append(blocks, math)

		// A whole line wrapped in one pair of $$ is display math; anything
		// else containing $$ is prose and goes through inline resolution.
		case displayMathRe.MatchString(trimmed):
			src := strings.TrimSpace(displayMathRe.FindStringSubmatch(trimmed)[1])
			blocks = append(blocks, MathBlock{Math: r.renderMath(ctx, src, true)})
			i++

		default:
			if runs := r.Inline(ctx, trimmed); len(runs) > 0 {
				blocks = append(blocks, ParagraphBlock{Runs: runs})
			}
			i++
		}
	}

	return blocks
}

// SplitLines splits text on newlines, normalizing CRLF first.
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// isFenceOpen accepts a bare fence or a fence followed by an info string.
func isFenceOpen(trimmed string) bool {
	if !strings.HasPrefix(trimmed, fenceMarker) {
		return false
	}
	return !strings.Contains(strings.TrimPrefix(trimmed, fenceMarker), "`")
}

func collectFence(lines []string, start int) (CodeBlock, int) {
	code := CodeBlock{Lines: []string{}}
	if info := strings.Fields(strings.TrimPrefix(strings.TrimSpace(lines[start]), fenceMarker)); len(info) > 0 {
		code.Language = info[0]
	}
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == fenceMarker {
			return code, i + 1
		}
		code.Lines = append(code.Lines, lines[i])
	}
	return code, len(lines)
}

func (r *Renderer) collectMath(ctx context.Context, lines []string, start int) (MathBlock, int) {
	var body []string
	end := len(lines)
	for i := start + 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == mathMarker {
			end = i + 1
			break
		}
		body = append(body, lines[i])
	}
	src := strings.Join(body, "\n")
	return MathBlock{Math: r.renderMath(ctx, src, true)}, end
}

func isTableStart(lines []string, i int) bool {
	if i+1 >= len(lines) || !tableRowRe.MatchString(lines[i]) {
		return false
	}
	sep := lines[i+1]
	return strings.Contains(sep, "|") && tableSepRe.MatchString(sep)
}

func (r *Renderer) collectTable(ctx context.Context, lines []string, start int) (TableBlock, int) {
	table := TableBlock{
		Header: r.resolveCells(ctx, lines[start]),
		Rows:   [][][]Run{},
	}
	i := start + 2
	for ; i < len(lines) && tableRowRe.MatchString(lines[i]); i++ {
		table.Rows = append(table.Rows, r.resolveCells(ctx, lines[i]))
	}
	return table, i
}

func (r *Renderer) resolveCells(ctx context.Context, row string) [][]Run {
	cells := SplitCells(row)
	out := make([][]Run, 0, len(cells))
	for _, cell := range cells {
		out = append(out, r.Inline(ctx, cell))
	}
	return out
}

// SplitCells splits a pipe-table row into trimmed cell texts.
func SplitCells(row string) []string {
	s := strings.TrimSpace(row)
	s = strings.TrimPrefix(s, "|")
	s = strings.TrimSuffix(s, "|")
	parts := strings.Split(s, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

// collectList gathers contiguous items of the same list kind as the first line.
func (r *Renderer) collectList(ctx context.Context, lines []string, start int) (ListBlock, int) {
	re := bulletRe
	list := ListBlock{Items: [][]Run{}}
	if !bulletRe.MatchString(lines[start]) {
		re = orderedRe
		list.Ordered = true
	}

	i := start
	for ; i < len(lines); i++ {
		m := re.FindStringSubmatch(lines[i])
		if m == nil {
			break
		}
		list.Items = append(list.Items, r.Inline(ctx, strings.TrimSpace(m[1])))
	}
	return list, i
}

func (r *Renderer) renderMath(ctx context.Context, src string, display bool) Math {
	m := Math{Source: src}
	if r.math == nil {
		return m
	}
	markup, err := r.math.RenderMath(ctx, src, display)
	if err != nil {
		r.log.Debug("math render failed, using raw source", "display", display, "error", err)
		return m
	}
	m.Markup = markup
	m.Rendered = true
	return m
}
