package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/dgallion1/docgraph/internal/corpus"
	"github.com/go-chi/chi/v5"
)

type scanRequest struct {
	Dir string `json:"dir"`
}

func (s *Server) handleCreateScan(w http.ResponseWriter, r *http.Request) {
	// An empty body scans the whole workspace.
	var req scanRequest
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 64*1024)).Decode(&req)
	if err != nil && !errors.Is(err, io.EOF) {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	root, err := corpus.ResolveDir(s.cfg.WorkspaceRoot, req.Dir)
	if err != nil {
		jsonError(w, err.Error(), http.StatusBadRequest)
		return
	}

	job := corpus.NewJob(req.Dir, root)
	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusAccepted, map[string]any{
		"job_id":   job.ID,
		"status":   corpus.StatusQueued,
		"poll_url": fmt.Sprintf("/api/scans/%s", job.ID),
	})
}

func (s *Server) handleScanStatus(w http.ResponseWriter, r *http.Request) {
	job := s.lookupJob(w, r)
	if job == nil {
		return
	}
	writeJSON(w, http.StatusOK, job.Snapshot())
}

func (s *Server) handleScanDocuments(w http.ResponseWriter, r *http.Request) {
	result := s.completedResult(w, r)
	if result == nil {
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"documents": result.Documents,
		"totals":    result.Totals,
	})
}

func (s *Server) handleScanGraph(w http.ResponseWriter, r *http.Request) {
	result := s.completedResult(w, r)
	if result == nil {
		return
	}
	writeJSON(w, http.StatusOK, result.Graph())
}

func (s *Server) lookupJob(w http.ResponseWriter, r *http.Request) *corpus.Job {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
	}
	return job
}

// completedResult writes 409 while the job is still running or has failed.
func (s *Server) completedResult(w http.ResponseWriter, r *http.Request) *corpus.Result {
	job := s.lookupJob(w, r)
	if job == nil {
		return nil
	}
	result := job.Result()
	if result == nil {
		jsonError(w, fmt.Sprintf("scan is %s", job.Snapshot().Status), http.StatusConflict)
	}
	return result
}
