//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// User is an account that owns resumes. PasswordHash is a bcrypt hash and
// is never serialized in API responses.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
