package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/jonathan/resume-adapter/internal/pipeline"
)

// maxBodyBytes caps request bodies; resumes and job postings are text
// and never legitimately approach this.
const maxBodyBytes = 1 << 20

// AdaptHTTPRequest represents the request body for /adapt
type AdaptHTTPRequest struct {
	ResumeText string `json:"resume_text" validate:"required,min=1"`
	JobText    string `json:"job_text,omitempty"`
}

// handleAdapt runs one adaptation and returns the full response:
// adapted resume, clean snapshot, diff and cost ledger.
func (s *Server) handleAdapt(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

	var req AdaptHTTPRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	resp, err := s.adapter.Adapt(r.Context(), pipeline.AdaptRequest{
		ResumeText: req.ResumeText,
		JobText:    req.JobText,
	})
	if err != nil {
		log.Printf("[server] adaptation failed: %v", err)
		s.errorResponse(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// extractValidationErrors extracts validation error messages from validator errors.
func extractValidationErrors(err error) string {
	if validationErrors, ok := err.(validator.ValidationErrors); ok {
		if len(validationErrors) > 0 {
			// Return first validation error for simplicity
			ve := validationErrors[0]
			return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
		}
	}
	return "validation error: invalid request"
}
