//nolint:revive // types is a standard Go package name pattern
package types

import "time"

// Template selects the visual template used by the preview renderer.
type Template string

// Available templates.
const (
	TemplateModern  Template = "modern"
	TemplateClassic Template = "classic"
	TemplateMinimal Template = "minimal"
)

// Valid reports whether t is one of the known templates.
func (t Template) Valid() bool {
	switch t {
	case TemplateModern, TemplateClassic, TemplateMinimal:
		return true
	}
	return false
}

// Resume is the persisted wrapper around a Document plus metadata. The
// section ordering is persisted alongside the document so editor layout
// survives across sessions.
type Resume struct {
	ID        string              `json:"id"`
	OwnerID   string              `json:"userId"`
	Title     string              `json:"title"`
	Template  Template            `json:"template"`
	CreatedAt time.Time           `json:"createdAt"`
	UpdatedAt time.Time           `json:"updatedAt"`
	Sections  []SectionDescriptor `json:"sections,omitempty"`
	Data      Document            `json:"data"`
}
