// Package session implements the resume editing session: the state machine
// between the stored resume collection and the live document being edited.
package session

import "fmt"

// CreateNotAllowedError indicates the injected entitlement predicate
// refused resume creation.
type CreateNotAllowedError struct{}

func (e *CreateNotAllowedError) Error() string {
	return "resume creation is not allowed for this account"
}

// PersistenceError wraps a failed save. It is recoverable: local edits are
// preserved and the save can be retried.
type PersistenceError struct {
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("failed to persist resume: %v", e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

// NoResumeLoadedError indicates an operation that requires a loaded resume
// was called on an unloaded session.
type NoResumeLoadedError struct{}

func (e *NoResumeLoadedError) Error() string {
	return "no resume is loaded in this session"
}
