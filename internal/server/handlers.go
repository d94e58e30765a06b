package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/marcela/resume-studio/internal/server/middleware"
	"github.com/marcela/resume-studio/internal/session"
)

// writeJSON writes v as a JSON response with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
	}
}

// errorResponse writes a JSON error body with the given status.
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// handleError maps a domain error to its HTTP status.
func (s *Server) handleError(w http.ResponseWriter, err error) {
	s.errorResponse(w, HTTPStatus(err), err.Error())
}

// loadSession builds an editing session for the authenticated owner with the
// given resume loaded. Each request gets its own session; the store is the
// single source of truth between requests.
func (s *Server) loadSession(r *http.Request, id string) (*session.Session, error) {
	ownerID, err := middleware.GetUserID(r)
	if err != nil {
		return nil, err
	}
	sess := session.New(s.store, ownerID)
	if err := sess.Load(r.Context(), id); err != nil {
		return nil, err
	}
	return sess, nil
}

// newSession builds an empty editing session for the given owner.
func (s *Server) newSession(ownerID string) *session.Session {
	return session.New(s.store, ownerID)
}

// withLoadedResume loads the addressed resume, applies one edit, saves and
// responds with the updated record. Editing over HTTP is load-edit-save per
// request.
func (s *Server) withLoadedResume(w http.ResponseWriter, r *http.Request, edit func(*session.Session) error) {
	sess, err := s.loadSession(r, r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	if err := edit(sess); err != nil {
		s.handleError(w, err)
		return
	}
	if err := sess.Save(r.Context()); err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sess.Current())
}

// handleHealth returns a basic health check response.
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
