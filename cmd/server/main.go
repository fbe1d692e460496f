package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dgallion1/docgraph/internal/api"
	"github.com/dgallion1/docgraph/internal/config"
	"github.com/dgallion1/docgraph/internal/corpus"
	"github.com/dgallion1/docgraph/internal/mathsvc"
	"github.com/dgallion1/docgraph/internal/render"
)

func main() {
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Math rendering is optional; without it math is shown as source.
	var math render.MathRenderer
	var mathClient *mathsvc.Client
	if cfg.MathRenderURL != "" {
		mathClient = mathsvc.NewClient(cfg.MathRenderURL, cfg.MathRenderTimeout)
		math = mathClient
	}
	renderer := render.New(math, log)

	cache, err := corpus.NewCache(cfg.CacheSize)
	if err != nil {
		log.Error("create cache", "error", err)
		os.Exit(1)
	}
	timings := corpus.NewTimings(time.Hour)
	scanner := corpus.NewScanner(corpus.Options{
		Concurrency:          cfg.ScanConcurrency,
		MaxDocumentBytes:     cfg.MaxDocumentBytes,
		LinkSiblings:         cfg.LinkSiblings,
		PDFFallbackPdftotext: cfg.PDFFallbackPdftotext,
	}, cache, timings, log)

	orch := corpus.NewOrchestrator(scanner, cfg.WorkerCount, cfg.MaxQueueSize, cfg.JobTTL, log)
	orch.Start(ctx)

	srv := api.NewServer(orch, renderer, timings, log, cfg)

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Info("shutting down...")

		// Stop accepting requests before closing the scan queue.
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer shutdownCancel()
		httpServer.Shutdown(shutdownCtx)

		orch.Stop()

		if mathClient != nil {
			mathClient.Close()
		}
	}()

	log.Info("starting docgraph", "port", cfg.Port, "workspace", cfg.WorkspaceRoot)
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
