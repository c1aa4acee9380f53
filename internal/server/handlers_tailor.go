package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-tailor/internal/rendering"
	"github.com/jonathan/resume-tailor/internal/tailor"
	"github.com/jonathan/resume-tailor/internal/types"
)

// handleIngestJob handles POST /tailor/job/ingest
func (s *Server) handleIngestJob(w http.ResponseWriter, r *http.Request) {
	var req types.IngestJobRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	job, err := s.service.IngestJob(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, tailor.IngestResponse(job))
}

// handleGetJob handles GET /tailor/job/{id}?user_id=
func (s *Server) handleGetJob(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		s.errorResponse(w, http.StatusBadRequest, "user_id query parameter is required")
		return
	}

	job, err := s.service.GetJobIngest(r.Context(), userID, r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, job)
}

// handlePreview handles POST /tailor/preview
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req types.PreviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := s.validator.Struct(req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.service.PreviewTailoredResume(r.Context(), req)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, result.Resume)
}

// handleGetTailored handles GET /tailor/{id}
func (s *Server) handleGetTailored(w http.ResponseWriter, r *http.Request) {
	resume, err := s.service.GetTailoredResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, resume)
}

// handleListTailored handles GET /users/{id}/tailored?limit=
func (s *Server) handleListTailored(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			s.errorResponse(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = n
	}

	resumes, err := s.service.ListTailoredResumes(r.Context(), r.PathValue("id"), limit)
	if err != nil {
		s.serviceError(w, r, err)
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{
		"tailored_resumes": resumes,
		"count":            len(resumes),
	})
}

// handleExportText handles GET /tailor/{id}/export/txt
func (s *Server) handleExportText(w http.ResponseWriter, r *http.Request) {
	resume, err := s.service.GetTailoredResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume-"+resume.ID+".txt"))
	_, _ = w.Write([]byte(resume.PlainText))
}

// handleExportLaTeX handles GET /tailor/{id}/export/tex
func (s *Server) handleExportLaTeX(w http.ResponseWriter, r *http.Request) {
	resume, err := s.service.GetTailoredResume(r.Context(), r.PathValue("id"))
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	tex, err := rendering.RenderLaTeX(resume.Sections, rendering.LaTeXOptions{
		Template:     resume.Template,
		TemplatePath: s.latexPath,
	})
	if err != nil {
		s.serviceError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "application/x-tex; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "resume-"+resume.ID+".tex"))
	_, _ = w.Write([]byte(tex))
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
