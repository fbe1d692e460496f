package api

import (
	"net/http"
)

func (s *Server) handleTimingStats(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"phases":      s.timings.Snapshot(),
		"queue_depth": s.orchestrator.QueueDepth(),
	})
}
