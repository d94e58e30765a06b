//nolint:revive // types is a standard Go package name pattern
package types

// TechnicalCategories groups the technical and complementary sections of a
// document. All members are collections.
type TechnicalCategories struct {
	TechnicalSkills        []TechnicalSkill        `json:"technicalSkills"`
	Certifications         []ExtendedCertification `json:"certifications"`
	Projects               []Project               `json:"projects"`
	Languages              []Language              `json:"languages"`
	ExtracurricularCourses []ExtracurricularCourse `json:"extracurricularCourses"`
	Publications           []Publication           `json:"publications"`
}

// PersonalCategories groups the personal and academic highlight sections.
type PersonalCategories struct {
	VolunteerWork           []VolunteerWork           `json:"volunteerWork"`
	AcademicActivities      []AcademicActivity        `json:"academicActivities"`
	Events                  []Event                   `json:"events"`
	InternationalExperience []InternationalExperience `json:"internationalExperience"`
	AwardsRecognitions      []AwardRecognition        `json:"awardsRecognitions"`
}

// StrategicCategories groups the optional strategic sections. Availability
// is a singleton and ProfessionalInterests is a plain string list without
// entity ids.
type StrategicCategories struct {
	ProfessionalInterests []string     `json:"professionalInterests"`
	SoftSkills            []SoftSkill  `json:"softSkills"`
	Availability          Availability `json:"availability"`
	References            []Reference  `json:"references"`
}

// TechnicalSkill is a tool, programming language or software entry.
type TechnicalSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Proficiency int    `json:"proficiency,omitempty"`
}

// ExtendedCertification is the category variant of a certification with the
// issuing platform recorded.
type ExtendedCertification struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Issuer      string `json:"issuer" validate:"required"`
	Platform    string `json:"platform"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}

// Project is one project entry.
type Project struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Description  string   `json:"description"`
	Role         string   `json:"role,omitempty"`
	Technologies []string `json:"technologies"`
	URL          string   `json:"url,omitempty" validate:"omitempty,url"`
	StartDate    string   `json:"startDate" validate:"required"`
	EndDate      string   `json:"endDate,omitempty"`
	Current      bool     `json:"current"`
}

// Language proficiency levels as displayed in the editor.
const (
	ProficiencyBasic        = "básico"
	ProficiencyIntermediate = "intermediário"
	ProficiencyAdvanced     = "avançado"
	ProficiencyFluent       = "fluente"
	ProficiencyNative       = "nativo"
)

// Language is one spoken language entry.
type Language struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Proficiency string `json:"proficiency"`
}

// ExtracurricularCourse is one extracurricular course entry.
type ExtracurricularCourse struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Institution string `json:"institution" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description,omitempty"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
}

// Publication types as displayed in the editor.
const (
	PublicationArticle = "article"
	PublicationBlog    = "blog"
	PublicationBook    = "book"
	PublicationOther   = "other"
)

// Publication is one publication entry.
type Publication struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Publisher   string `json:"publisher" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Type        string `json:"type"`
	URL         string `json:"url,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty"`
}

// VolunteerWork is one volunteer work entry.
type VolunteerWork struct {
	ID           string `json:"id"`
	Organization string `json:"organization" validate:"required"`
	Role         string `json:"role" validate:"required"`
	StartDate    string `json:"startDate" validate:"required"`
	EndDate      string `json:"endDate,omitempty"`
	Current      bool   `json:"current"`
	Description  string `json:"description,omitempty"`
}

// AcademicActivity is one academic activity entry (monitoria, pesquisa,
// iniciação científica, outro).
type AcademicActivity struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	Institution string `json:"institution" validate:"required"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// Event is one event participation entry (feira, congresso, hackathon,
// palestra, outro).
type Event struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Date        string `json:"date" validate:"required"`
	Role        string `json:"role"`
	Description string `json:"description,omitempty"`
}

// InternationalExperience is one international experience entry (estudo,
// trabalho, voluntariado, outro).
type InternationalExperience struct {
	ID          string `json:"id"`
	Country     string `json:"country" validate:"required"`
	Institution string `json:"institution,omitempty"`
	Type        string `json:"type"`
	StartDate   string `json:"startDate" validate:"required"`
	EndDate     string `json:"endDate,omitempty"`
	Current     bool   `json:"current"`
	Description string `json:"description,omitempty"`
}

// AwardRecognition is one award or recognition entry.
type AwardRecognition struct {
	ID          string `json:"id"`
	Title       string `json:"title" validate:"required"`
	Issuer      string `json:"issuer" validate:"required"`
	Date        string `json:"date" validate:"required"`
	Description string `json:"description,omitempty"`
}

// SoftSkill is one soft skill entry.
type SoftSkill struct {
	ID          string `json:"id"`
	Name        string `json:"name" validate:"required"`
	Description string `json:"description,omitempty"`
}

// Work hour regimes as displayed in the editor.
const (
	WorkHoursFullTime = "integral"
	WorkHoursPartTime = "meio período"
	WorkHoursFlexible = "flexível"
	WorkHoursOther    = "outro"
)

// Availability is the singleton availability section.
type Availability struct {
	Relocation     bool   `json:"relocation"`
	Travel         bool   `json:"travel"`
	RemoteWork     bool   `json:"remoteWork"`
	WorkHours      string `json:"workHours"`
	AdditionalInfo string `json:"additionalInfo,omitempty"`
}

// Reference is one professional reference entry.
type Reference struct {
	ID           string `json:"id"`
	Name         string `json:"name" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
	Company      string `json:"company,omitempty"`
	Contact      string `json:"contact" validate:"required"`
	Available    bool   `json:"available"`
}

func (e TechnicalSkill) EntityID() string          { return e.ID }
func (e ExtendedCertification) EntityID() string   { return e.ID }
func (e Project) EntityID() string                 { return e.ID }
func (e Language) EntityID() string                { return e.ID }
func (e ExtracurricularCourse) EntityID() string   { return e.ID }
func (e Publication) EntityID() string             { return e.ID }
func (e VolunteerWork) EntityID() string           { return e.ID }
func (e AcademicActivity) EntityID() string        { return e.ID }
func (e Event) EntityID() string                   { return e.ID }
func (e InternationalExperience) EntityID() string { return e.ID }
func (e AwardRecognition) EntityID() string        { return e.ID }
func (e SoftSkill) EntityID() string               { return e.ID }
func (e Reference) EntityID() string               { return e.ID }

func (e TechnicalSkill) WithID(id string) Entity          { e.ID = id; return e }
func (e ExtendedCertification) WithID(id string) Entity   { e.ID = id; return e }
func (e Project) WithID(id string) Entity                 { e.ID = id; return e }
func (e Language) WithID(id string) Entity                { e.ID = id; return e }
func (e ExtracurricularCourse) WithID(id string) Entity   { e.ID = id; return e }
func (e Publication) WithID(id string) Entity             { e.ID = id; return e }
func (e VolunteerWork) WithID(id string) Entity           { e.ID = id; return e }
func (e AcademicActivity) WithID(id string) Entity        { e.ID = id; return e }
func (e Event) WithID(id string) Entity                   { e.ID = id; return e }
func (e InternationalExperience) WithID(id string) Entity { e.ID = id; return e }
func (e AwardRecognition) WithID(id string) Entity        { e.ID = id; return e }
func (e SoftSkill) WithID(id string) Entity               { e.ID = id; return e }
func (e Reference) WithID(id string) Entity               { e.ID = id; return e }
