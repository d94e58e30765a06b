package server

import (
	"net/http"

	"github.com/marcela/resume-studio/internal/export"
	"github.com/marcela/resume-studio/internal/render"
	"github.com/marcela/resume-studio/internal/server/middleware"
	"github.com/marcela/resume-studio/internal/types"
)

// resolveForRender reads the addressed resume and picks the template, with
// an optional ?template= override.
func (s *Server) resolveForRender(r *http.Request) (*types.Resume, types.Template, error) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, "", err
	}
	resume, err := s.store.ReadResume(r.Context(), ownerID, r.PathValue("id"))
	if err != nil {
		return nil, "", err
	}
	template := resume.Template
	if t := r.URL.Query().Get("template"); t != "" {
		template = types.Template(t)
	}
	return resume, template, nil
}

// handlePreview renders the resume to standalone HTML.
func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	resume, template, err := s.resolveForRender(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	html, err := render.Render(&resume.Data, template)
	if err != nil {
		s.handleError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleExportPDF renders the resume to HTML and prints it to PDF through
// headless Chrome.
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	resume, template, err := s.resolveForRender(r)
	if err != nil {
		s.handleError(w, err)
		return
	}
	html, err := render.Render(&resume.Data, template)
	if err != nil {
		s.handleError(w, err)
		return
	}
	pdf, err := export.PDF(r.Context(), html)
	if err != nil {
		s.errorResponse(w, http.StatusInternalServerError, "Failed to export PDF: "+err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", `attachment; filename="`+resume.Title+`.pdf"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(pdf)
}
