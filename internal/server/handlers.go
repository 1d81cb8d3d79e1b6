package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/katalvlaran/lvrank/core"
	"github.com/katalvlaran/lvrank/internal/snapshot"
	"github.com/katalvlaran/lvrank/matrix"
	"github.com/katalvlaran/lvrank/pagerank"
	"github.com/katalvlaran/lvrank/stochastic"
	"github.com/katalvlaran/lvrank/store"
	"go.uber.org/zap"
)

// rankingResponse is the body of every endpoint returning results.
type rankingResponse struct {
	RunID   string            `json:"run_id,omitempty"`
	Method  string            `json:"method,omitempty"`
	Query   string            `json:"query,omitempty"`
	Total   int               `json:"total"`
	Results []pagerank.Result `json:"results"`
}

type nodeResponse struct {
	pagerank.Result
	Links []string `json:"links"`
}

// rankRequest is the body of POST /api/v1/rank.
type rankRequest struct {
	Records []store.Record `json:"records"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	cur := s.holder.Current()
	if cur == nil {
		s.respondJSON(w, http.StatusOK, map[string]interface{}{"status": "loading"})
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{
		"status":   "ok",
		"run_id":   cur.RunID,
		"nodes":    len(cur.Results),
		"method":   cur.Method.String(),
		"built_at": cur.BuiltAt,
	})
}

func (s *Server) handleRankings(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}
	snap, release, err := s.holder.Acquire()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	defer release()

	s.respondJSON(w, http.StatusOK, rankingResponse{
		RunID:   snap.RunID,
		Total:   len(snap.Results),
		Results: pagerank.Limit(snap.Results, limit),
	})
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	limit, ok := s.limit(w, r)
	if !ok {
		return
	}
	q := r.URL.Query().Get("q")
	rerank := false
	if v := r.URL.Query().Get("rerank"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "rerank must be a boolean")
			return
		}
		rerank = b
	}

	snap, release, err := s.holder.Acquire()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	defer release()

	s.logger.Debug("search request", zap.String("query", q), zap.Int("limit", limit), zap.Bool("rerank", rerank))
	var results []pagerank.Result
	runID := snap.RunID
	if rerank {
		results, err = s.engine.RankMatching(r.Context(), snap.Graph, q)
		runID = ""
	} else {
		results, err = snap.Search(r.Context(), q)
	}
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rankingResponse{
		RunID:   runID,
		Query:   q,
		Total:   len(results),
		Results: pagerank.Limit(results, limit),
	})
}

func (s *Server) handleNode(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, release, err := s.holder.Acquire()
	if err != nil {
		s.respondErr(w, err)
		return
	}
	defer release()

	res, ok := snap.Result(id)
	if !ok {
		s.respondError(w, http.StatusNotFound, "node not found")
		return
	}
	edges, err := snap.Graph.OutEdges(id)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	links := make([]string, len(edges))
	for i, e := range edges {
		links[i] = e.To
	}
	s.respondJSON(w, http.StatusOK, nodeResponse{Result: res, Links: links})
}

// handleRank ranks the records in the body without touching the served
// snapshot. The optional damping query parameter overrides the engine's;
// every other configured option stays in force.
func (s *Server) handleRank(w http.ResponseWriter, r *http.Request) {
	engine := s.engine
	if v := r.URL.Query().Get("damping"); v != "" {
		d, err := strconv.ParseFloat(v, 64)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "damping must be a number")
			return
		}
		if engine, err = s.engine.With(pagerank.WithDamping(d)); err != nil {
			s.respondErr(w, err)
			return
		}
	}

	var req rankRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	g, err := store.ToGraph(req.Records)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	run, err := engine.RankRun(r.Context(), g)
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rankingResponse{
		RunID:   run.ID,
		Method:  run.Method.String(),
		Total:   len(run.Results),
		Results: run.Results,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	snap, err := s.holder.Reload(r.Context())
	if err != nil {
		s.respondErr(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, map[string]interface{}{"status": "reloaded", "run_id": snap.RunID, "nodes": len(snap.Results)})
}

// limit parses ?limit=, applying the configured default and cap.
func (s *Server) limit(w http.ResponseWriter, r *http.Request) (int, bool) {
	limit := s.search.DefaultLimit
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			s.respondError(w, http.StatusBadRequest, "limit must be a positive integer")
			return 0, false
		}
		limit = n
	}
	if s.search.MaxLimit > 0 && limit > s.search.MaxLimit {
		limit = s.search.MaxLimit
	}
	return limit, true
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, snapshot.ErrNotReady):
		return http.StatusServiceUnavailable
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, pagerank.ErrNoUniqueSteadyState),
		errors.Is(err, matrix.ErrNumericInstability),
		errors.Is(err, pagerank.ErrNotConverged):
		return http.StatusUnprocessableEntity
	case errors.Is(err, store.ErrNotFound),
		errors.Is(err, core.ErrNodeNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInconsistent),
		errors.Is(err, store.ErrTruncated),
		errors.Is(err, core.ErrEmptyNodeID),
		errors.Is(err, core.ErrDuplicateNode),
		errors.Is(err, core.ErrBadWeight),
		errors.Is(err, core.ErrLoopNotAllowed),
		errors.Is(err, stochastic.ErrEmptyGraph),
		errors.Is(err, stochastic.ErrNonStochastic),
		errors.Is(err, pagerank.ErrInvalidDamping):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondErr(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Int("status", status), zap.Error(err))
	}
	s.respondError(w, status, err.Error())
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
