package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/sitebid/sitebid/internal/cache"
	"github.com/sitebid/sitebid/internal/calc"
	"github.com/sitebid/sitebid/internal/report"
	"github.com/sitebid/sitebid/internal/store"
)

type server struct {
	store  *store.Store
	cache  cache.Cache
	logger *zap.Logger

	mu    sync.RWMutex
	table calc.Table
}

func newServer(st *store.Store, c cache.Cache, table calc.Table, lg *zap.Logger) *server {
	return &server{store: st, cache: c, table: table, logger: lg}
}

// benchmarks returns the current table. Entries are value types, so readers
// can use the returned map without holding the lock.
func (s *server) benchmarks() calc.Table {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table
}

func (s *server) swapBenchmarks(table calc.Table) {
	s.mu.Lock()
	s.table = table
	s.mu.Unlock()
}

type errorResponse struct {
	Error string `json:"error"`
}

type estimateRequest struct {
	Title string     `json:"title"`
	Notes string     `json:"notes"`
	Input calc.Input `json:"input"`
}

type estimateResponse struct {
	ID        int64       `json:"id"`
	SessionID string      `json:"sessionId"`
	Cached    bool        `json:"cached"`
	Result    calc.Result `json:"result"`
}

type whatIfRequest struct {
	Base      calc.Input     `json:"base"`
	Overrides calc.Overrides `json:"overrides"`
}

func (s *server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *server) handleValidate(w http.ResponseWriter, r *http.Request) {
	var in calc.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	s.writeJSON(w, http.StatusOK, calc.ValidateInputs(in))
}

func (s *server) handleCreateEstimate(w http.ResponseWriter, r *http.Request) {
	var req estimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	if v := calc.ValidateInputs(req.Input); !v.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, v)
		return
	}

	table := s.benchmarks()
	key := cache.Key(req.Input, table.Resolve(req.Input.ProjectType))

	var res calc.Result
	cached := false
	if data, ok := s.cache.Get(r.Context(), key); ok {
		if err := json.Unmarshal(data, &res); err == nil {
			cached = true
		}
	}
	if !cached {
		res = calc.Calculate(req.Input, table)
		if data, err := json.Marshal(res); err == nil {
			if err := s.cache.Set(r.Context(), key, data); err != nil {
				s.logger.Warn("failed to cache estimate", zap.Error(err))
			}
		}
	}

	sessionID := calc.NewSessionID()
	id, err := s.store.SaveEstimate(sessionID, req.Title, req.Notes, req.Input, res)
	if err != nil {
		s.logger.Error("failed to save estimate", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save estimate"})
		return
	}

	s.writeJSON(w, http.StatusCreated, estimateResponse{
		ID:        id,
		SessionID: sessionID,
		Cached:    cached,
		Result:    res,
	})
}

func (s *server) handleWhatIf(w http.ResponseWriter, r *http.Request) {
	var req whatIfRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	merged := req.Overrides.Apply(req.Base)
	if v := calc.ValidateInputs(merged); !v.Valid {
		s.writeJSON(w, http.StatusUnprocessableEntity, v)
		return
	}

	s.writeJSON(w, http.StatusOK, calc.WhatIf(req.Base, req.Overrides, s.benchmarks()))
}

func (s *server) handleListEstimates(w http.ResponseWriter, r *http.Request) {
	query := strings.TrimSpace(r.URL.Query().Get("q"))
	estimates, err := s.store.ListEstimates(query)
	if err != nil {
		s.logger.Error("failed to list estimates", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list estimates"})
		return
	}
	s.writeJSON(w, http.StatusOK, estimates)
}

func (s *server) estimateFromPath(r *http.Request) (store.Estimate, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return store.Estimate{}, store.ErrNotFound
	}
	return s.store.GetEstimate(id)
}

func (s *server) handleGetEstimate(w http.ResponseWriter, r *http.Request) {
	estimate, err := s.estimateFromPath(r)
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "estimate not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to load estimate", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load estimate"})
		return
	}
	s.writeJSON(w, http.StatusOK, estimate)
}

func (s *server) handleExportEstimate(w http.ResponseWriter, r *http.Request) {
	estimate, err := s.estimateFromPath(r)
	if errors.Is(err, store.ErrNotFound) {
		s.writeJSON(w, http.StatusNotFound, errorResponse{Error: "estimate not found"})
		return
	}
	if err != nil {
		s.logger.Error("failed to load estimate", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to load estimate"})
		return
	}

	workbook, err := report.Workbook(estimate)
	if err != nil {
		s.logger.Error("failed to render workbook", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to render workbook"})
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=estimate-%d.xlsx", estimate.ID))
	if _, err := w.Write(workbook); err != nil {
		s.logger.Error("failed to write workbook", zap.Error(err))
	}
}

func (s *server) handleListBenchmarks(w http.ResponseWriter, r *http.Request) {
	benchmarks, err := s.store.ListBenchmarks()
	if err != nil {
		s.logger.Error("failed to list benchmarks", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to list benchmarks"})
		return
	}
	s.writeJSON(w, http.StatusOK, benchmarks)
}

func (s *server) handleUpsertBenchmark(w http.ResponseWriter, r *http.Request) {
	var row store.BenchmarkRow
	if err := json.NewDecoder(r.Body).Decode(&row); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}
	row.ProjectType = strings.TrimSpace(row.ProjectType)

	if err := row.Benchmark().Check(row.ProjectType); err != nil {
		s.writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: err.Error()})
		return
	}

	if err := s.store.UpsertBenchmark(row); err != nil {
		s.logger.Error("failed to upsert benchmark", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to save benchmark"})
		return
	}

	table, err := s.store.LoadTable()
	if err != nil {
		s.logger.Error("failed to reload benchmark table", zap.Error(err))
		s.writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "failed to reload benchmark table"})
		return
	}
	s.swapBenchmarks(table)

	s.writeJSON(w, http.StatusOK, row)
}
