package render

import (
	"context"
	"regexp"
)

type inlineKind int

const (
	inlineMath inlineKind = iota
	inlineLink
	inlineBold
	inlineItalic
	inlineCode
)

type inlinePattern struct {
	kind inlineKind
	re   *regexp.Regexp
}

// inlinePatterns is ordered by priority. When two patterns match at the same
// offset the earlier entry wins.
var inlinePatterns = []inlinePattern{
	{inlineMath, regexp.MustCompile(`\$\$([^$\n]+?)\$\$|\$([^$\n]+?)\$`)},
	{inlineLink, regexp.MustCompile(`\[([^\]\n]*)\]\(([^)\s]*)\)`)},
	{inlineBold, regexp.MustCompile(`\*\*(.+?)\*\*|__(.+?)__`)},
	{inlineItalic, regexp.MustCompile(`\*([^*\n]+?)\*|\b_([^_\n]+?)_\b`)},
	{inlineCode, regexp.MustCompile("`([^`\n]+)`")},
}

// Inline resolves a single line of text into runs. Unmatched delimiters stay
// in the output as literal text.
func (r *Renderer) Inline(ctx context.Context, line string) []Run {
	runs := []Run{}
	pos := 0

	for pos < len(line) {
		rest := line[pos:]

		best := -1
		var bestLoc []int
		for i, p := range inlinePatterns {
			loc := p.re.FindStringSubmatchIndex(rest)
			if loc == nil {
				continue
			}
			if best < 0 || loc[0] < bestLoc[0] {
				best, bestLoc = i, loc
			}
		}
		if best < 0 {
			break
		}

		if bestLoc[0] > 0 {
			runs = append(runs, TextRun{Text: rest[:bestLoc[0]]})
		}
		runs = append(runs, r.buildRun(ctx, inlinePatterns[best].kind, rest, bestLoc))
		pos += bestLoc[1]
	}

	if pos < len(line) {
		runs = append(runs, TextRun{Text: line[pos:]})
	}
	return runs
}

func (r *Renderer) buildRun(ctx context.Context, kind inlineKind, s string, loc []int) Run {
	switch kind {
	case inlineMath:
		display := loc[2] >= 0
		return MathRun{Math: r.renderMath(ctx, firstGroup(s, loc), display)}
	case inlineLink:
		return LinkRun{
			Href: group(s, loc, 2),
			Runs: r.Inline(ctx, group(s, loc, 1)),
		}
	case inlineBold:
		return BoldRun{Runs: r.Inline(ctx, firstGroup(s, loc))}
	case inlineItalic:
		return ItalicRun{Runs: r.Inline(ctx, firstGroup(s, loc))}
	case inlineCode:
		return CodeRun{Code: group(s, loc, 1)}
	}
	return TextRun{Text: s[loc[0]:loc[1]]}
}

// group returns submatch n, or "" when it did not participate.
func group(s string, loc []int, n int) string {
	if 2*n+1 >= len(loc) || loc[2*n] < 0 {
		return ""
	}
	return s[loc[2*n]:loc[2*n+1]]
}

// firstGroup returns the first participating submatch of an alternation.
func firstGroup(s string, loc []int) string {
	for n := 1; 2*n+1 < len(loc); n++ {
		if loc[2*n] >= 0 {
			return s[loc[2*n]:loc[2*n+1]]
		}
	}
	return ""
}
