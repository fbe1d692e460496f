package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/docgraph/internal/analyze"
	"github.com/dgallion1/docgraph/internal/parser"
)

// handleAnalyze analyzes a document posted as the raw request body. The path
// query parameter names the document; its extension selects the loader.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	docPath := r.URL.Query().Get("path")
	if docPath == "" {
		jsonError(w, "path query parameter is required", http.StatusBadRequest)
		return
	}

	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	text, err := s.loadText(data, docPath)
	if err != nil {
		jsonError(w, "failed to load document: "+err.Error(), http.StatusUnprocessableEntity)
		return
	}

	meta := analyze.Analyze(docPath, int64(len(data)), text, s.log)
	writeJSON(w, http.StatusOK, meta)
}

// handleRender renders a posted document into content blocks.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	data, ok := s.readBody(w, r)
	if !ok {
		return
	}

	text := string(data)
	if name := r.URL.Query().Get("path"); name != "" {
		loaded, err := s.loadText(data, name)
		if err != nil {
			jsonError(w, "failed to load document: "+err.Error(), http.StatusUnprocessableEntity)
			return
		}
		text = loaded
	}

	blocks := s.renderer.Render(r.Context(), text)
	writeJSON(w, http.StatusOK, map[string]any{"blocks": blocks})
}

func (s *Server) readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	limit := s.cfg.MaxDocumentBytes
	data, err := io.ReadAll(io.LimitReader(r.Body, limit+1))
	if err != nil {
		jsonError(w, "failed to read body", http.StatusBadRequest)
		return nil, false
	}
	if int64(len(data)) > limit {
		jsonError(w, fmt.Sprintf("document exceeds max size (%d bytes)", limit), http.StatusRequestEntityTooLarge)
		return nil, false
	}
	return data, true
}

// loadText runs the loader for name's extension; unknown extensions are
// treated as markdown.
func (s *Server) loadText(data []byte, name string) (string, error) {
	loader, err := parser.ForFile(name, parser.Options{PDFFallbackPdftotext: s.cfg.PDFFallbackPdftotext})
	if errors.Is(err, parser.ErrUnsupported) {
		loader = &parser.MarkdownLoader{}
	} else if err != nil {
		return "", err
	}
	return loader.Load(bytes.NewReader(data), name)
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func jsonError(w http.ResponseWriter, msg string, code int) {
	writeJSON(w, code, map[string]string{"error": msg})
}
