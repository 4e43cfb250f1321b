package server

import (
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/jonathan/langhire/internal/analysis"
	"github.com/jonathan/langhire/internal/types"
)

var validate = validator.New()

// AnalyzeRequest is the request body for POST /v1/analyze. The profile
// fields are optional; when absent the raw texts are used for every
// scoring sub-field.
type AnalyzeRequest struct {
	CandidateText string                  `json:"candidate_text" validate:"required"`
	JobText       string                  `json:"job_text" validate:"required"`
	Profile       *types.CandidateProfile `json:"resume_analysis,omitempty"`
	Posting       *types.JobPosting       `json:"jd_analysis,omitempty"`
}

// ErrorResponse is the JSON error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// handleAnalyze runs a full candidate-vs-job analysis and returns the
// report. Nothing is stored server-side.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	if err := validate.Struct(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	report, err := analysis.Run(r.Context(), s.engine, analysis.Request{
		CandidateText: req.CandidateText,
		JobText:       req.JobText,
		Profile:       req.Profile,
		Posting:       req.Posting,
	})
	if err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, report)
}

// handleHealth reports liveness.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, ErrorResponse{Error: message})
}
