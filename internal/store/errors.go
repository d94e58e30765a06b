package store

import "fmt"

// ResumeNotFoundError indicates a resume id absent from the owner's
// collection.
type ResumeNotFoundError struct {
	ID string
}

func (e *ResumeNotFoundError) Error() string {
	return fmt.Sprintf("resume not found: %s", e.ID)
}

// UserNotFoundError indicates an unknown user id or email.
type UserNotFoundError struct {
	Key string
}

func (e *UserNotFoundError) Error() string {
	return fmt.Sprintf("user not found: %s", e.Key)
}

// EmailTakenError indicates the email is already registered.
type EmailTakenError struct {
	Email string
}

func (e *EmailTakenError) Error() string {
	return fmt.Sprintf("email already registered: %s", e.Email)
}

// CorruptStoreError indicates a store file that failed schema validation
// and was refused.
type CorruptStoreError struct {
	Path    string
	Details []string
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("store file %s failed validation: %v", e.Path, e.Details)
}
