package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docgraph/internal/render"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a document into content blocks",
	Long: `Render a document into typed content blocks (heading, paragraph, list,
table, codeBlock, latexBlock) with resolved inline runs.

Math is rendered through the service at --math-url when set; otherwise the
source is kept.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	text, _, err := loadDocument(args[0])
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", args[0], err)
	}

	renderer, closeFn := newRenderer()
	defer closeFn()
	blocks := renderer.Render(cmd.Context(), text)

	if humanOutput {
		for _, b := range blocks {
			fmt.Println(blockText(b))
			fmt.Println()
		}
		return nil
	}
	return outputJSON(map[string]any{"blocks": blocks})
}

func blockText(b render.Block) string {
	switch b := b.(type) {
	case render.HeadingBlock:
		return headingStyle.Render(strings.Repeat("#", b.Level) + " " + runsText(b.Runs))
	case render.ParagraphBlock:
		return runsText(b.Runs)
	case render.ListBlock:
		lines := make([]string, len(b.Items))
		for i, item := range b.Items {
			marker := "•"
			if b.Ordered {
				marker = fmt.Sprintf("%d.", i+1)
			}
			lines[i] = "  " + marker + " " + runsText(item)
		}
		return strings.Join(lines, "\n")
	case render.TableBlock:
		rows := [][][]render.Run{b.Header}
		rows = append(rows, b.Rows...)
		lines := make([]string, len(rows))
		for i, row := range rows {
			cells := make([]string, len(row))
			for j, cell := range row {
				cells[j] = runsText(cell)
			}
			lines[i] = strings.Join(cells, labelStyle.Render(" │ "))
		}
		return strings.Join(lines, "\n")
	case render.CodeBlock:
		return boxStyle.Render(codeStyle.Render(b.Content()))
	case render.MathBlock:
		return boxStyle.Render(mathText(b.Math))
	default:
		return ""
	}
}

func runsText(runs []render.Run) string {
	var sb strings.Builder
	for _, r := range runs {
		switch r := r.(type) {
		case render.TextRun:
			sb.WriteString(r.Text)
		case render.BoldRun:
			sb.WriteString(titleStyle.Render(runsText(r.Runs)))
		case render.ItalicRun:
			sb.WriteString(runsText(r.Runs))
		case render.CodeRun:
			sb.WriteString(codeStyle.Render(r.Code))
		case render.LinkRun:
			sb.WriteString(linkStyle.Render(runsText(r.Runs)) + labelStyle.Render(" ("+r.Href+")"))
		case render.MathRun:
			sb.WriteString(mathText(r.Math))
		}
	}
	return sb.String()
}

func mathText(m render.Math) string {
	if m.Rendered {
		return m.Markup
	}
	return codeStyle.Render(m.Source)
}
