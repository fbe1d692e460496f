package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/dgallion1/docgraph/internal/mathsvc"
	"github.com/dgallion1/docgraph/internal/parser"
	"github.com/dgallion1/docgraph/internal/render"
)

// loadDocument reads a file through the loader for its extension. Unknown
// extensions are read as markdown.
func loadDocument(path string) (string, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", 0, err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return "", 0, err
	}

	loader, err := parser.ForFile(path, parser.Options{PDFFallbackPdftotext: cfg.PDFFallbackPdftotext})
	if errors.Is(err, parser.ErrUnsupported) {
		loader = &parser.MarkdownLoader{}
	} else if err != nil {
		return "", 0, err
	}
	text, err := loader.Load(f, filepath.Base(path))
	return text, info.Size(), err
}

// newRenderer wires the math service when one is configured.
func newRenderer() (*render.Renderer, func()) {
	log := logger()
	if cfg.MathRenderURL == "" {
		return render.New(nil, log), func() {}
	}
	client := mathsvc.NewClient(cfg.MathRenderURL, cfg.MathRenderTimeout)
	return render.New(client, log), client.Close
}
