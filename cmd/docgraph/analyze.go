package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docgraph/internal/analyze"
)

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Extract metadata from one document",
	Long: `Extract heading structure, leaf paths, relations, statistics and a
content profile from one document.

Example:
  docgraph analyze docs/guide.md --human`,
	Args: cobra.ExactArgs(1),
	RunE: runAnalyze,
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	path := args[0]
	log := logger()

	meta := analyze.AnalyzeSource(filepath.ToSlash(path), func() (string, int64, error) {
		return loadDocument(path)
	}, log)

	if humanOutput {
		printMetadata(meta)
		return nil
	}
	return outputJSON(meta)
}

func printMetadata(m analyze.FileMetadata) {
	fmt.Println(titleStyle.Render(m.Title))
	fmt.Println(field("path", m.Path))
	fmt.Println(field("size", humanize.Bytes(uint64(max(m.Size, 0)))))
	fmt.Println(field("language", m.Profile.Language))
	fmt.Println(field("complexity", fmt.Sprintf("%s (%d)", m.Profile.Complexity, m.Profile.ComplexityScore)))
	if len(m.Profile.Topics) > 0 {
		fmt.Println(field("topics", strings.Join(m.Profile.Topics, ", ")))
	}
	printStatistics(m.Statistics)

	if len(m.Headings) > 0 {
		fmt.Println()
		fmt.Println(headingStyle.Render("Outline"))
		fmt.Print(outlineText(m))
	}
	if len(m.Relations) > 0 {
		fmt.Println()
		fmt.Println(headingStyle.Render("Relations"))
		for _, r := range m.Relations {
			fmt.Printf("  %s %s\n", linkStyle.Render(r.Path), labelStyle.Render(r.Description))
		}
	}
	if m.Profile.Summary != "" {
		fmt.Println()
		fmt.Println(boxStyle.Render(m.Profile.Summary))
	}
}

func printStatistics(s analyze.Statistics) {
	fmt.Println(field("words", humanize.Comma(int64(s.WordCount))))
	fmt.Println(field("lines", fmt.Sprintf("%s total, %s content, %s code, %s empty",
		humanize.Comma(int64(s.TotalLines)), humanize.Comma(int64(s.ContentLines)),
		humanize.Comma(int64(s.CodeLines)), humanize.Comma(int64(s.EmptyLines)))))
	fmt.Println(field("reading time", fmt.Sprintf("%d min", s.ReadingTimeMinutes)))
}
