// Package main provides the docgraph CLI entry point.
package main

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dgallion1/docgraph/internal/config"
)

// Version is set at build time via ldflags
var Version = "dev"

// humanOutput controls whether to use human-readable output
var humanOutput bool

var verbose bool

// cfg holds env-derived defaults; flags override individual fields.
var cfg config.Config

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitError)
	}
}

var rootCmd = &cobra.Command{
	Use:   "docgraph",
	Short: "Analyze, render and graph markdown documents",
	Long: `docgraph extracts heading structure, references, statistics and a
content profile from documents, renders them into typed content blocks, and
builds a cross-document reference graph over a directory.

All commands output JSON by default; pass --human for styled text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		loaded := config.Load()
		// Keep values already set by flags.
		if !cmd.Flags().Changed("math-url") {
			cfg.MathRenderURL = loaded.MathRenderURL
		}
		cfg.MathRenderTimeout = loaded.MathRenderTimeout
		cfg.PDFFallbackPdftotext = loaded.PDFFallbackPdftotext
		cfg.CacheSize = loaded.CacheSize
		if !cmd.Flags().Changed("concurrency") {
			cfg.ScanConcurrency = loaded.ScanConcurrency
		}
		if !cmd.Flags().Changed("max-bytes") {
			cfg.MaxDocumentBytes = loaded.MaxDocumentBytes
		}
		if !cmd.Flags().Changed("link-siblings") {
			cfg.LinkSiblings = loaded.LinkSiblings
		}
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&humanOutput, "human", false, "Use human-readable output instead of JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.PersistentFlags().StringVar(&cfg.MathRenderURL, "math-url", "", "Math render service URL (default $MATH_RENDER_URL)")
	rootCmd.Version = Version
}

// logger writes text logs to stderr so stdout stays machine-readable.
func logger() *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
