package server

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/farmadados/farmacorpus/internal/models"
	"github.com/farmadados/farmacorpus/internal/storage"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	idx, run := s.snapshot()

	resp := map[string]interface{}{
		"terms": idx.Len(),
	}
	if run != nil {
		resp["run"] = run
	}
	if diskBytes, err := storage.DiskUsageBytes(s.cfg.Storage.DatabasePath, s.cfg.Output.Dir); err == nil {
		resp["disk_usage_bytes"] = diskBytes
	}
	resp["config"] = map[string]interface{}{
		"dataset":         s.cfg.Dataset.Path,
		"identifier":      s.cfg.Output.Identifier,
		"language":        s.cfg.Normalize.Language,
		"expand_synonyms": s.cfg.Synonyms.Expand,
		"database_path":   s.cfg.Storage.DatabasePath,
		"output_dir":      s.cfg.Output.Dir,
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListTerms(w http.ResponseWriter, r *http.Request) {
	_, run := s.snapshot()
	if run == nil {
		s.respondError(w, http.StatusNotFound, "no build runs yet")
		return
	}

	prefix := r.URL.Query().Get("prefix")
	limit := parseLimit(r, 50, 500)
	entries, err := s.store.ListTerms(r.Context(), run.ID, prefix, limit)
	if err != nil {
		s.logger.Error("list terms failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if entries == nil {
		entries = []models.TermEntry{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(entries),
		"terms": entries,
	})
}

func (s *Server) handleGetTerm(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "term")
	if decoded, err := url.PathUnescape(raw); err == nil {
		raw = decoded
	}

	// Queries go through the same normalization as corpus keys, so
	// "Dipirona Sódica" finds the entry stored under its normal form.
	key := s.norm.Normalize(raw)
	if key == "" {
		s.respondError(w, http.StatusBadRequest, "term normalizes to empty")
		return
	}

	idx, run := s.snapshot()
	if !idx.Has(key) {
		s.respondJSON(w, http.StatusNotFound, map[string]interface{}{
			"error":       "term not found",
			"term":        key,
			"suggestions": idx.Suggest(key, 5),
		})
		return
	}
	names := idx.Names(key)
	resp := map[string]interface{}{
		"query": raw,
		"term":  key,
		"names": names,
		"count": len(names),
	}
	if run != nil {
		resp["run_id"] = run.ID
	}
	s.respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	if query == "" {
		s.respondError(w, http.StatusBadRequest, "q is required")
		return
	}
	limit := parseLimit(r, 10, 100)
	s.logger.Debug("search request", zap.String("query", query), zap.Int("limit", limit))

	idx, _ := s.snapshot()
	matches, err := idx.Search(query, limit)
	if err != nil {
		s.logger.Error("search failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"query":   query,
		"count":   len(matches),
		"matches": matches,
	})
}

func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	limit := parseLimit(r, 20, 100)
	runs, err := s.store.ListRuns(r.Context(), limit)
	if err != nil {
		s.logger.Error("list runs failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []*models.BuildRun{}
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(runs),
		"runs":  runs,
	})
}

func parseLimit(r *http.Request, def, max int) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return def
	}
	if n > max {
		return max
	}
	return n
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
