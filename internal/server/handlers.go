package server

import (
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/jonathan/keyword-insights/internal/insights"
	"github.com/jonathan/keyword-insights/internal/schemas"
	"github.com/jonathan/keyword-insights/internal/store"
	"github.com/jonathan/keyword-insights/internal/types"
)

// maxRequestBody caps analysis payloads at 16 MB.
const maxRequestBody = 16 << 20

// analyzeResponse is the POST /analyze response payload.
type analyzeResponse struct {
	RunID    *uuid.UUID                `json:"runId,omitempty"`
	Insights *types.ActionableInsights `json:"insights"`
	Summary  string                    `json:"summary,omitempty"`
}

// handleAnalyze runs the full analysis over the posted keyword dataset.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBody))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "failed to read request body")
		return
	}

	if err := schemas.ValidateAnalysisRequest(body); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req types.AnalysisRequest
	if err := json.Unmarshal(body, &req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.Options.Persist && s.store == nil {
		err := &ErrPersistenceUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if req.Options.Summarize && s.summarizer == nil {
		err := &ErrSummaryUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := insights.GenerateInsights(r.Context(), req.RankedKeywords, req.BrandKeywords, req.BrandContext, s.engineOpts)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := analyzeResponse{Insights: result}

	if req.Options.Summarize {
		brand := ""
		if req.BrandContext != nil {
			brand = req.BrandContext.BrandName
		}
		text, err := s.summarizer.Summarize(r.Context(), brand, result)
		if err != nil {
			s.errorResponse(w, http.StatusBadGateway, "summary generation failed: "+err.Error())
			return
		}
		resp.Summary = text
	}

	if req.Options.Persist {
		runID, err := s.persistRun(r, &req, &resp)
		if err != nil {
			s.errorResponse(w, HTTPStatus(err), err.Error())
			return
		}
		resp.RunID = &runID
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// persistRun stores the run record plus its artifacts.
func (s *Server) persistRun(r *http.Request, req *types.AnalysisRequest, resp *analyzeResponse) (uuid.UUID, error) {
	ctx := r.Context()

	brand, industry := "", ""
	if req.BrandContext != nil {
		brand = req.BrandContext.BrandName
		industry = req.BrandContext.Industry
	}

	runID, err := s.store.CreateRun(ctx, brand, industry, len(req.RankedKeywords))
	if err != nil {
		return uuid.Nil, err
	}

	if err := s.store.SaveInsights(ctx, runID, resp.Insights); err != nil {
		_ = s.store.CompleteRun(ctx, runID, store.StatusFailed)
		return uuid.Nil, err
	}
	if resp.Summary != "" {
		if err := s.store.SaveSummary(ctx, runID, resp.Summary); err != nil {
			_ = s.store.CompleteRun(ctx, runID, store.StatusFailed)
			return uuid.Nil, err
		}
	}
	if err := s.store.CompleteRun(ctx, runID, store.StatusCompleted); err != nil {
		return uuid.Nil, err
	}

	log.Printf("[analyze] persisted run %s (%d keywords)", runID, len(req.RankedKeywords))
	return runID, nil
}

// handleListRuns lists recent analysis runs.
func (s *Server) handleListRuns(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrPersistenceUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filters := store.RunFilters{
		Brand:  r.URL.Query().Get("brand"),
		Status: r.URL.Query().Get("status"),
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			s.errorResponse(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filters.Limit = limit
	}

	runs, err := s.store.ListRuns(r.Context(), filters)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if runs == nil {
		runs = []store.Run{}
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"runs": runs})
}

// runResponse is the GET /runs/{id} response payload.
type runResponse struct {
	Run      *store.Run                `json:"run"`
	Insights *types.ActionableInsights `json:"insights,omitempty"`
	Summary  string                    `json:"summary,omitempty"`
}

// handleGetRun returns a single run with its stored insights and summary.
func (s *Server) handleGetRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrPersistenceUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	resp := runResponse{Run: run}
	if resp.Insights, err = s.store.GetInsights(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if resp.Summary, err = s.store.GetSummary(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleDeleteRun deletes a run and its artifacts.
func (s *Server) handleDeleteRun(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		err := &ErrPersistenceUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	runID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid run ID")
		return
	}

	run, err := s.store.GetRun(r.Context(), runID)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	if run == nil {
		notFound := &ErrRunNotFound{RunID: runID}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	if err := s.store.DeleteRun(r.Context(), runID); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleHealth returns server health status, including database reachability
// when persistence is configured.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	health := map[string]string{"status": "ok", "database": "not configured"}
	if s.store != nil {
		if err := s.store.Ping(r.Context()); err != nil {
			health["database"] = "unavailable"
		} else {
			health["database"] = "ok"
		}
	}
	s.jsonResponse(w, http.StatusOK, health)
}
