package main

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docgraph/internal/corpus"
)

func init() {
	for _, cmd := range []*cobra.Command{scanCmd, graphCmd} {
		cmd.Flags().IntVar(&cfg.ScanConcurrency, "concurrency", 0, "Documents analyzed in parallel (default $SCAN_CONCURRENCY or 8)")
		cmd.Flags().Int64Var(&cfg.MaxDocumentBytes, "max-bytes", 0, "Skip documents larger than this (default $MAX_DOCUMENT_BYTES or 10MB)")
		cmd.Flags().BoolVar(&cfg.LinkSiblings, "link-siblings", false, "Link consecutive documents in each directory")
		rootCmd.AddCommand(cmd)
	}
}

var scanCmd = &cobra.Command{
	Use:   "scan <dir>",
	Short: "Analyze every document under a directory",
	Long: `Analyze every supported document under a directory and report
per-document metadata plus corpus totals.

Example:
  docgraph scan ./docs --human`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func scanDir(cmd *cobra.Command, dir string) *corpus.Result {
	scanner := corpus.NewScanner(corpus.Options{
		Concurrency:          cfg.ScanConcurrency,
		MaxDocumentBytes:     cfg.MaxDocumentBytes,
		LinkSiblings:         cfg.LinkSiblings,
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	}, nil, nil, logger())

	result, err := scanner.Scan(cmd.Context(), dir)
	if errors.Is(err, corpus.ErrNoCorpusRoot) {
		exitWithError(ExitConfigError, "%v", err)
	}
	if err != nil {
		exitWithError(ExitError, "%v", err)
	}
	return result
}

func runScan(cmd *cobra.Command, args []string) error {
	result := scanDir(cmd, args[0])

	if !humanOutput {
		return outputJSON(result)
	}

	for _, d := range result.Documents {
		fmt.Printf("%s  %s  %s\n",
			linkStyle.Render(d.Path),
			d.Title,
			labelStyle.Render(fmt.Sprintf("%s, %s words, %s", humanize.Bytes(uint64(max(d.Size, 0))), humanize.Comma(int64(d.Statistics.WordCount)), d.Profile.Complexity)))
	}
	fmt.Println()

	t := result.Totals
	fmt.Println(titleStyle.Render(fmt.Sprintf("%d documents, %s", t.FileCount, humanize.Bytes(uint64(max(t.TotalBytes, 0))))))
	exts := make([]string, 0, len(t.ByExtension))
	for ext := range t.ByExtension {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	for _, ext := range exts {
		fmt.Println(field(ext, humanize.Comma(int64(t.ByExtension[ext]))))
	}
	printStatistics(t.Statistics)
	return nil
}
