package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dgallion1/docgraph/internal/analyze"
	"github.com/dgallion1/docgraph/internal/doctree"
)

func init() {
	rootCmd.AddCommand(outlineCmd)
}

var outlineCmd = &cobra.Command{
	Use:   "outline <file>",
	Short: "Print a document's heading outline",
	Args:  cobra.ExactArgs(1),
	RunE:  runOutline,
}

type outlineResponse struct {
	Path      string                 `json:"path"`
	Headings  []*doctree.HeadingNode `json:"headings"`
	LeafPaths []string               `json:"leafPaths"`
}

func runOutline(cmd *cobra.Command, args []string) error {
	path := args[0]
	text, _, err := loadDocument(path)
	if err != nil {
		exitWithError(ExitDataError, "loading %s: %v", path, err)
	}
	meta := analyze.Analyze(filepath.ToSlash(path), 0, text, logger())

	if humanOutput {
		fmt.Println(titleStyle.Render(meta.Title))
		fmt.Print(outlineText(meta))
		return nil
	}
	return outputJSON(outlineResponse{Path: meta.Path, Headings: meta.Headings, LeafPaths: meta.LeafPaths})
}

func outlineText(m analyze.FileMetadata) string {
	var b strings.Builder
	for _, line := range strings.Split(strings.TrimSuffix(doctree.Outline(m.Headings), "\n"), "\n") {
		if line == "" {
			continue
		}
		b.WriteString("  " + headingStyle.Render(line) + "\n")
	}
	return b.String()
}
