package document

import "fmt"

// InvalidPathError indicates a slice path that does not exist in the
// document schema. This is a programmer error (a section dispatched to an
// unknown slice), not a user-facing condition.
type InvalidPathError struct {
	Path Path
}

func (e *InvalidPathError) Error() string {
	return fmt.Sprintf("invalid document path: %q", e.Path)
}

// EntityNotFoundError indicates an entity id that is absent from the
// addressed collection.
type EntityNotFoundError struct {
	Path Path
	ID   string
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("entity %s not found in %q", e.ID, e.Path)
}
