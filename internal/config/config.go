package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Auth
	DocgraphAPIKey string

	// Corpus
	WorkspaceRoot    string
	ScanConcurrency  int
	MaxDocumentBytes int64
	CacheSize        int
	LinkSiblings     bool

	// Scan job pool
	WorkerCount  int
	MaxQueueSize int
	JobTTL       time.Duration

	// Math rendering; empty URL means math is shown as source.
	MathRenderURL     string
	MathRenderTimeout time.Duration

	// PDF
	PDFFallbackPdftotext bool
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8090"),

		DocgraphAPIKey: os.Getenv("DOCGRAPH_API_KEY"),

		WorkspaceRoot:    os.Getenv("WORKSPACE_ROOT"),
		ScanConcurrency:  envInt("SCAN_CONCURRENCY", 8),
		MaxDocumentBytes: envInt64("MAX_DOCUMENT_BYTES", 10485760), // 10MB
		CacheSize:        envInt("CACHE_SIZE", 2048),
		LinkSiblings:     envBool("LINK_SIBLINGS", false),

		WorkerCount:  envInt("WORKER_COUNT", 4),
		MaxQueueSize: envInt("MAX_QUEUE_SIZE", 16),
		JobTTL:       envDuration("JOB_TTL", 1*time.Hour),

		MathRenderURL:     os.Getenv("MATH_RENDER_URL"),
		MathRenderTimeout: envDuration("MATH_RENDER_TIMEOUT", 10*time.Second),

		PDFFallbackPdftotext: envBool("PDF_FALLBACK_PDFTOTEXT", true),
	}

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 16
	}
	if cfg.ScanConcurrency <= 0 {
		cfg.ScanConcurrency = 8
	}
	if cfg.MaxDocumentBytes <= 0 {
		cfg.MaxDocumentBytes = 10485760
	}
	if cfg.CacheSize <= 0 {
		cfg.CacheSize = 2048
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}
	if cfg.MathRenderTimeout <= 0 {
		cfg.MathRenderTimeout = 10 * time.Second
	}

	return cfg
}

// Validate checks settings the HTTP server cannot run without.
func (c Config) Validate() error {
	if c.DocgraphAPIKey == "" {
		return fmt.Errorf("DOCGRAPH_API_KEY is required")
	}
	if c.WorkspaceRoot == "" {
		return fmt.Errorf("WORKSPACE_ROOT is required")
	}
	info, err := os.Stat(c.WorkspaceRoot)
	if err != nil {
		return fmt.Errorf("WORKSPACE_ROOT: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("WORKSPACE_ROOT %q is not a directory", c.WorkspaceRoot)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
