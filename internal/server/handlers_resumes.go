package server

import (
	"encoding/json"
	"net/http"

	"github.com/marcela/resume-studio/internal/server/middleware"
	"github.com/marcela/resume-studio/internal/session"
	"github.com/marcela/resume-studio/internal/types"
)

// CreateResumeRequest is the request body for creating a resume.
type CreateResumeRequest struct {
	Title    string `json:"title"`
	Template string `json:"template,omitempty"`
}

// RenameResumeRequest is the request body for renaming a resume.
type RenameResumeRequest struct {
	Title string `json:"title"`
}

// SetTemplateRequest is the request body for switching templates.
type SetTemplateRequest struct {
	Template string `json:"template"`
}

// handleListResumes returns every resume owned by the authenticated user.
func (s *Server) handleListResumes(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	resumes, err := s.store.ListResumes(r.Context(), ownerID)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if resumes == nil {
		resumes = []types.Resume{}
	}
	writeJSON(w, http.StatusOK, resumes)
}

// handleCreateResume creates a resume with a fully defaulted document.
func (s *Server) handleCreateResume(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	var req CreateResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	template := types.Template(req.Template)
	if req.Template == "" {
		template = types.TemplateModern
	}

	sess := s.newSession(ownerID)
	resume, err := sess.Create(r.Context(), req.Title, template)
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resume)
}

// handleGetResume returns one resume record including its document.
func (s *Server) handleGetResume(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	resume, err := s.store.ReadResume(r.Context(), ownerID, r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resume)
}

// handleDeleteResume removes a resume from the owner's collection.
func (s *Server) handleDeleteResume(w http.ResponseWriter, r *http.Request) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}
	sess := s.newSession(ownerID)
	if err := sess.Delete(r.Context(), r.PathValue("id")); err != nil {
		s.handleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleDuplicateResume persists a copy of a resume under a new id.
func (s *Server) handleDuplicateResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r, r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	copied, err := sess.Duplicate(r.Context())
	if err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, copied)
}

// handleRenameResume changes a resume's title.
func (s *Server) handleRenameResume(w http.ResponseWriter, r *http.Request) {
	var req RenameResumeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.SetTitle(req.Title)
	})
}

// handleSetTemplate switches a resume's visual template.
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req SetTemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.SetTemplate(types.Template(req.Template))
	})
}

// handleValidateResume runs section validation over the stored document.
// Validation errors are advisory and never block saving, so this endpoint
// always answers 200 with the error list.
func (s *Server) handleValidateResume(w http.ResponseWriter, r *http.Request) {
	sess, err := s.loadSession(r, r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	errs := sess.Validate()
	writeJSON(w, http.StatusOK, map[string]any{
		"valid":  len(errs) == 0,
		"errors": errs,
	})
}
