// Package store provides the persistence adapters for resume records. The
// core treats a store as an opaque key-value collection keyed by owner with
// last-write-wins semantics; implementations exist for a local JSON file
// (the default) and PostgreSQL.
package store

import (
	"context"

	"github.com/marcela/resume-studio/internal/types"
)

// Store is the persistence boundary for resume records. Every operation is
// an atomic read-modify-write on the owner's collection.
type Store interface {
	// ListResumes returns every resume owned by ownerID, empty when the
	// owner has none.
	ListResumes(ctx context.Context, ownerID string) ([]types.Resume, error)
	// ReadResume returns the resume with the given id, or
	// ResumeNotFoundError when absent from the owner's collection.
	ReadResume(ctx context.Context, ownerID, id string) (*types.Resume, error)
	// WriteAll replaces the owner's whole collection.
	WriteAll(ctx context.Context, ownerID string, resumes []types.Resume) error
}

// UserStore is the persistence boundary for user accounts.
type UserStore interface {
	// CreateUser stores a new user; EmailTakenError when the email is
	// already registered.
	CreateUser(ctx context.Context, u types.User) error
	// GetUserByEmail returns the user registered under email, or
	// UserNotFoundError.
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)
	// GetUser returns the user with the given id, or UserNotFoundError.
	GetUser(ctx context.Context, id string) (*types.User, error)
}
