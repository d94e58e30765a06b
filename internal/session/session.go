package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/schema"
	"github.com/marcela/resume-studio/internal/sections"
	"github.com/marcela/resume-studio/internal/store"
	"github.com/marcela/resume-studio/internal/types"
)

// State is the lifecycle state of an editing session.
type State int

// Session states. Editing means the local document diverges from the
// persisted record.
const (
	StateUnloaded State = iota
	StateLoading
	StateLoaded
	StateEditing
	StateSaving
)

func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEditing:
		return "editing"
	case StateSaving:
		return "saving"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Session edits one owner's resumes, at most one loaded at a time. The
// owner identity and the creation entitlement are explicit constructor
// inputs, never ambient state. All methods are safe for use from a single
// goroutine; the internal mutex exists to serialize saves for the loaded
// resume id so concurrent writes can never interleave.
type Session struct {
	mu        sync.Mutex
	store     store.Store
	ownerID   string
	canCreate func() bool
	now       func() time.Time

	state   State
	current *types.Resume
}

// Option configures a Session.
type Option func(*Session)

// WithEntitlement injects the predicate evaluated before resume creation.
// The default allows all creations.
func WithEntitlement(canCreate func() bool) Option {
	return func(s *Session) { s.canCreate = canCreate }
}

// WithClock injects the time source. Tests use this to pin timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// New creates an editing session for the given owner.
func New(st store.Store, ownerID string, opts ...Option) *Session {
	s := &Session{
		store:     st,
		ownerID:   ownerID,
		canCreate: func() bool { return true },
		now:       time.Now,
		state:     StateUnloaded,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Current returns a copy of the loaded resume record including unsaved
// edits, or nil when nothing is loaded.
func (s *Session) Current() *types.Resume {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	r := *s.current
	return &r
}

// Document returns the live document for preview rendering, or nil when
// nothing is loaded. Every edit made through the session is visible here
// before the next edit is accepted.
func (s *Session) Document() *types.Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	d := s.current.Data
	return &d
}

// Create makes a new resume with a fully defaulted document and the
// default section ordering, persists it and loads it into the session.
func (s *Session) Create(ctx context.Context, title string, template types.Template) (*types.Resume, error) {
	if !s.canCreate() {
		return nil, &CreateNotAllowedError{}
	}
	if title == "" {
		return nil, &schema.ValidationError{Errors: []schema.FieldError{{Field: "title", Message: "is required"}}}
	}
	if !template.Valid() {
		return nil, &schema.ValidationError{Errors: []schema.FieldError{{Field: "template", Message: "is invalid"}}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	r := types.Resume{
		ID:        uuid.NewString(),
		OwnerID:   s.ownerID,
		Title:     title,
		Template:  template,
		CreatedAt: now,
		UpdatedAt: now,
		Sections:  sections.Default(),
		Data:      *document.New(),
	}

	all, err := s.store.ListResumes(ctx, s.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume list: %w", err)
	}
	if err := s.store.WriteAll(ctx, s.ownerID, append(all, r)); err != nil {
		return nil, &PersistenceError{Err: err}
	}

	s.current = &r
	s.state = StateLoaded
	out := r
	return &out, nil
}

// Load replaces the session's current resume with the stored record. On
// failure (including ResumeNotFoundError) the session returns to Unloaded
// with no partial state behind.
func (s *Session) Load(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = StateLoading
	s.current = nil
	r, err := s.store.ReadResume(ctx, s.ownerID, id)
	if err != nil {
		s.state = StateUnloaded
		return err
	}
	if len(r.Sections) == 0 {
		// Records written before section ordering was persisted.
		r.Sections = sections.Default()
	}
	s.current = r
	s.state = StateLoaded
	return nil
}

// Unload discards the session's resume and any unsaved edits. Navigating
// away from an edit session is a silent discard.
func (s *Session) Unload() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.state = StateUnloaded
}

func (s *Session) requireLoaded() error {
	if s.current == nil {
		return &NoResumeLoadedError{}
	}
	return nil
}

// Apply replaces the slice at path with value in the working document.
// The call is synchronous: the new document is observable through Document
// before any further input is accepted.
func (s *Session) Apply(path document.Path, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	next, err := document.WithSlice(&s.current.Data, path, value)
	if err != nil {
		return err
	}
	s.current.Data = *next
	s.state = StateEditing
	return nil
}

// AddEntity appends an entity to the collection at path and returns its
// generated id.
func (s *Session) AddEntity(path document.Path, e types.Entity) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return "", err
	}
	next, id, err := document.AddEntity(&s.current.Data, path, e)
	if err != nil {
		return "", err
	}
	s.current.Data = *next
	s.state = StateEditing
	return id, nil
}

// UpdateEntity replaces the identified entity with mutate's result.
func (s *Session) UpdateEntity(path document.Path, id string, mutate func(types.Entity) types.Entity) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	next, err := document.UpdateEntity(&s.current.Data, path, id, mutate)
	if err != nil {
		return err
	}
	s.current.Data = *next
	s.state = StateEditing
	return nil
}

// RemoveEntity removes the identified entity; absent ids are a no-op.
func (s *Session) RemoveEntity(path document.Path, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	next, err := document.RemoveEntity(&s.current.Data, path, id)
	if err != nil {
		return err
	}
	s.current.Data = *next
	s.state = StateEditing
	return nil
}

// MoveEntity reorders an entity within its collection.
func (s *Session) MoveEntity(path document.Path, fromID, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	next, err := document.MoveEntity(&s.current.Data, path, fromID, toID)
	if err != nil {
		return err
	}
	s.current.Data = *next
	s.state = StateEditing
	return nil
}

// Reorder moves a section descriptor. Layout changes never touch the
// document; they are persisted alongside it on save.
func (s *Session) Reorder(fromID, toID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	s.current.Sections = sections.Reorder(s.current.Sections, fromID, toID)
	s.state = StateEditing
	return nil
}

// SetTemplate switches the visual template.
func (s *Session) SetTemplate(t types.Template) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	if !t.Valid() {
		return &schema.ValidationError{Errors: []schema.FieldError{{Field: "template", Message: "is invalid"}}}
	}
	s.current.Template = t
	s.state = StateEditing
	return nil
}

// SetTitle renames the resume.
func (s *Session) SetTitle(title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}
	if title == "" {
		return &schema.ValidationError{Errors: []schema.FieldError{{Field: "title", Message: "is required"}}}
	}
	s.current.Title = title
	s.state = StateEditing
	return nil
}

// Validate runs section validation over the working document. Errors are
// field-local and never block saving.
func (s *Session) Validate() []schema.FieldError {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	return schema.ValidateDocument(&s.current.Data)
}

// Save persists the working resume. Saves for the loaded resume are
// serialized: a second Save blocks until the prior one finished. On store
// failure the session stays in Editing with every edit preserved and the
// error is retryable.
func (s *Session) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return err
	}

	prev := s.state
	s.state = StateSaving

	all, err := s.store.ListResumes(ctx, s.ownerID)
	if err != nil {
		s.state = prev
		return &PersistenceError{Err: err}
	}
	replaced := false
	for i := range all {
		if all[i].ID == s.current.ID {
			updated := *s.current
			updated.UpdatedAt = s.now().UTC()
			// updatedAt must increase even under a coarse clock.
			if !updated.UpdatedAt.After(all[i].UpdatedAt) {
				updated.UpdatedAt = all[i].UpdatedAt.Add(time.Millisecond)
			}
			all[i] = updated
			s.current = &updated
			replaced = true
			break
		}
	}
	if !replaced {
		s.state = prev
		return &store.ResumeNotFoundError{ID: s.current.ID}
	}
	if err := s.store.WriteAll(ctx, s.ownerID, all); err != nil {
		s.state = StateEditing
		return &PersistenceError{Err: err}
	}
	s.state = StateLoaded
	return nil
}

// Duplicate persists a copy of the working resume (including unsaved
// edits) under a new id and returns it. The session keeps the original
// loaded; editing the copy is a fresh load cycle.
func (s *Session) Duplicate(ctx context.Context) (*types.Resume, error) {
	if !s.canCreate() {
		return nil, &CreateNotAllowedError{}
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.requireLoaded(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	copied := *s.current
	copied.ID = uuid.NewString()
	copied.Title = s.current.Title + " (Cópia)"
	copied.CreatedAt = now
	copied.UpdatedAt = now

	all, err := s.store.ListResumes(ctx, s.ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load resume list: %w", err)
	}
	if err := s.store.WriteAll(ctx, s.ownerID, append(all, copied)); err != nil {
		return nil, &PersistenceError{Err: err}
	}
	out := copied
	return &out, nil
}

// Delete removes a resume from the owner's collection. Deleting the loaded
// resume unloads the session.
func (s *Session) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.ListResumes(ctx, s.ownerID)
	if err != nil {
		return fmt.Errorf("failed to load resume list: %w", err)
	}
	kept := all[:0]
	for _, r := range all {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if err := s.store.WriteAll(ctx, s.ownerID, kept); err != nil {
		return &PersistenceError{Err: err}
	}
	if s.current != nil && s.current.ID == id {
		s.current = nil
		s.state = StateUnloaded
	}
	return nil
}
