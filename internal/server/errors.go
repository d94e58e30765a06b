package server

import (
	"errors"
	"net/http"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/schema"
	"github.com/marcela/resume-studio/internal/session"
	"github.com/marcela/resume-studio/internal/store"
)

// ErrInvalidCredentials indicates invalid login credentials.
type ErrInvalidCredentials struct{}

func (e *ErrInvalidCredentials) Error() string {
	return "invalid email or password"
}

// HTTPStatus returns the appropriate HTTP status code for an error.
func HTTPStatus(err error) int {
	var (
		resumeNotFound *store.ResumeNotFoundError
		userNotFound   *store.UserNotFoundError
		emailTaken     *store.EmailTakenError
		corrupt        *store.CorruptStoreError
		invalidPath    *document.InvalidPathError
		entityNotFound *document.EntityNotFoundError
		validation     *schema.ValidationError
		notAllowed     *session.CreateNotAllowedError
		notLoaded      *session.NoResumeLoadedError
		credentials    *ErrInvalidCredentials
	)
	switch {
	case errors.As(err, &resumeNotFound), errors.As(err, &userNotFound), errors.As(err, &entityNotFound):
		return http.StatusNotFound
	case errors.As(err, &emailTaken):
		return http.StatusConflict
	case errors.As(err, &invalidPath), errors.As(err, &validation):
		return http.StatusBadRequest
	case errors.As(err, &notAllowed):
		return http.StatusForbidden
	case errors.As(err, &notLoaded):
		return http.StatusConflict
	case errors.As(err, &credentials):
		return http.StatusUnauthorized
	case errors.As(err, &corrupt):
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
