// Package types provides type definitions for the resume document model
// shared across the resume-studio system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Document is the full in-memory resume content for one resume: the core
// sections plus the three category groups. Every field is always present
// after document.New; collections are empty (non-nil) and singletons are
// populated with empty leaf values.
type Document struct {
	PersonalInfo   PersonalInfo    `json:"personalInfo"`
	Objective      string          `json:"objective"`
	Education      []Education     `json:"education"`
	Experience     []Experience    `json:"experience"`
	Skills         []Skill         `json:"skills"`
	Certifications []Certification `json:"certifications"`
	Links          []Link          `json:"links"`

	Technical TechnicalCategories `json:"technicalCategories"`
	Personal  PersonalCategories  `json:"personalCategories"`
	Strategic StrategicCategories `json:"strategicCategories"`
}

// Entity is an identified item inside a collection-type section. The id is
// assigned at creation, immutable and never reused; display order is array
// order, not the id.
type Entity interface {
	EntityID() string
	// WithID returns a copy of the entity with the given id. Used only at
	// creation time by the document package.
	WithID(id string) Entity
}

// PersonalInfo is the singleton header section of a document.
type PersonalInfo struct {
	FullName string `json:"fullName" validate:"required"`
	JobTitle string `json:"jobTitle" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Education is one entry of the education collection.
type Education struct {
	ID          string `json:"id"`
	Institution string `json:"institution" validate:"required"`
	Degree      string `json:"degree" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Experience is one entry of the work experience collection.
type Experience struct {
	ID          string `json:"id"`
	Company     string `json:"company" validate:"required"`
	Position    string `json:"position" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description" validate:"required"`
}

// Skill is one entry of the skills collection.
type Skill struct {
	ID       string `json:"id"`
	Name     string `json:"name" validate:"required"`
	Level    int    `json:"level,omitempty"`
	Category string `json:"category,omitempty"`
}

// Certification is one entry of the core certifications collection.
type Certification struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Issuer      string `json:"issuer" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}

// Link is one entry of the links collection.
type Link struct {
	ID   string `json:"id"`
	Name string `json:"name" validate:"required"`
	URL  string `json:"url" validate:"required,url"`
}

func (e Education) EntityID() string     { return e.ID }
func (e Experience) EntityID() string    { return e.ID }
func (e Skill) EntityID() string         { return e.ID }
func (e Certification) EntityID() string { return e.ID }
func (e Link) EntityID() string          { return e.ID }

func (e Education) WithID(id string) Entity     { e.ID = id; return e }
func (e Experience) WithID(id string) Entity    { e.ID = id; return e }
func (e Skill) WithID(id string) Entity         { e.ID = id; return e }
func (e Certification) WithID(id string) Entity { e.ID = id; return e }
func (e Link) WithID(id string) Entity          { e.ID = id; return e }
