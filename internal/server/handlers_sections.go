package server

import (
	"encoding/json"
	"net/http"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/session"
	"github.com/marcela/resume-studio/internal/types"
)

// UpdateSliceRequest is the request body for a wholesale slice update.
type UpdateSliceRequest struct {
	Value json.RawMessage `json:"value"`
}

// MoveRequest is the request body for moving an entity or a section.
type MoveRequest struct {
	ToID string `json:"toId"`
}

// ReorderRequest is the request body for reordering sections.
type ReorderRequest struct {
	FromID string `json:"fromId"`
	ToID   string `json:"toId"`
}

// AddEntityResponse carries the generated id of a newly added entity.
type AddEntityResponse struct {
	ID string `json:"id"`
}

// handleUpdateSlice replaces the slice at the addressed path wholesale.
func (s *Server) handleUpdateSlice(w http.ResponseWriter, r *http.Request) {
	var req UpdateSliceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path := document.Path(r.PathValue("path"))
	value, err := decodeSliceValue(path, req.Value)
	if err != nil {
		s.handleError(w, err)
		return
	}

	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.Apply(path, value)
	})
}

// handleAddEntity appends an entity to the collection at the addressed path
// and returns its generated id.
func (s *Server) handleAddEntity(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path := document.Path(r.PathValue("path"))
	entity, err := decodeEntity(path, raw)
	if err != nil {
		s.handleError(w, err)
		return
	}

	sess, err := s.loadSession(r, r.PathValue("id"))
	if err != nil {
		s.handleError(w, err)
		return
	}
	id, err := sess.AddEntity(path, entity)
	if err != nil {
		s.handleError(w, err)
		return
	}
	if err := sess.Save(r.Context()); err != nil {
		s.handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, AddEntityResponse{ID: id})
}

// handleUpdateEntity replaces the identified entity with the request body.
// The entity id in the stored document never changes.
func (s *Server) handleUpdateEntity(w http.ResponseWriter, r *http.Request) {
	var raw json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path := document.Path(r.PathValue("path"))
	entity, err := decodeEntity(path, raw)
	if err != nil {
		s.handleError(w, err)
		return
	}

	entityID := r.PathValue("entity_id")
	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.UpdateEntity(path, entityID, func(types.Entity) types.Entity {
			return entity
		})
	})
}

// handleRemoveEntity removes the identified entity. Removal is idempotent,
// so deleting an absent id still answers 200.
func (s *Server) handleRemoveEntity(w http.ResponseWriter, r *http.Request) {
	path := document.Path(r.PathValue("path"))
	entityID := r.PathValue("entity_id")
	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.RemoveEntity(path, entityID)
	})
}

// handleMoveEntity reorders an entity within its collection.
func (s *Server) handleMoveEntity(w http.ResponseWriter, r *http.Request) {
	var req MoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	path := document.Path(r.PathValue("path"))
	entityID := r.PathValue("entity_id")
	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.MoveEntity(path, entityID, req.ToID)
	})
}

// handleReorderSections moves a section descriptor in the layout.
func (s *Server) handleReorderSections(w http.ResponseWriter, r *http.Request) {
	var req ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	s.withLoadedResume(w, r, func(sess *session.Session) error {
		return sess.Reorder(req.FromID, req.ToID)
	})
}
