package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jonathan/resume-matcher/internal/analyzer"
)

// analyzeRequest is the POST /v1/analyze payload.
type analyzeRequest struct {
	ResumeText string `json:"resume_text"`
	JobText    string `json:"job_text"`
}

// learnRequest is the POST /v1/synonyms payload, declaring that MissingTerm
// should be treated as equivalent to PresentTerm.
type learnRequest struct {
	MissingTerm string `json:"missing_term"`
	PresentTerm string `json:"present_term"`
}

// handleAnalyze runs one analysis. Empty inputs are valid and score zero; an
// oversized or unprocessable document maps to 422.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.analyzer.Analyze(r.Context(), req.ResumeText, req.JobText)
	if err != nil {
		var docErr *analyzer.DocumentError
		if errors.As(err, &docErr) {
			s.errorResponse(w, http.StatusUnprocessableEntity, docErr.Error())
			return
		}
		s.errorResponse(w, http.StatusInternalServerError, "analysis failed")
		return
	}

	s.jsonResponse(w, http.StatusOK, result)
}

// handleLearn records a user-declared synonym. The mapping takes effect for
// subsequent analyses immediately; already-computed results are not rewritten.
func (s *Server) handleLearn(w http.ResponseWriter, r *http.Request) {
	var req learnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if req.MissingTerm == "" || req.PresentTerm == "" {
		s.errorResponse(w, http.StatusBadRequest, "missing_term and present_term are required")
		return
	}

	if err := s.analyzer.Synonyms().Learn(req.MissingTerm, req.PresentTerm); err != nil {
		// The in-memory mapping is already active; report the persistence
		// failure without discarding it.
		s.jsonResponse(w, http.StatusAccepted, map[string]string{
			"status": "learned in memory, persistence failed",
			"error":  err.Error(),
		})
		return
	}

	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReload re-reads the user synonym table from its backing file, picking
// up out-of-band edits.
func (s *Server) handleReload(w http.ResponseWriter, _ *http.Request) {
	if err := s.analyzer.Synonyms().Reload(); err != nil {
		s.errorResponse(w, http.StatusInternalServerError, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}
