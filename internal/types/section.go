//nolint:revive // types is a standard Go package name pattern
package types

// Tag names one of the fixed, closed set of section kinds. Each tag maps to
// exactly one shape in the schema registry.
type Tag string

// Core section tags.
const (
	TagPersonalInfo   Tag = "personalInfo"
	TagObjective      Tag = "objective"
	TagEducation      Tag = "education"
	TagExperience     Tag = "experience"
	TagSkills         Tag = "skills"
	TagCertifications Tag = "certifications"
	TagLinks          Tag = "links"
)

// Technical category tags.
const (
	TagTechnicalSkills        Tag = "technicalSkills"
	TagExtendedCertifications Tag = "extendedCertifications"
	TagProjects               Tag = "projects"
	TagLanguages              Tag = "languages"
	TagExtracurricularCourses Tag = "extracurricularCourses"
	TagPublications           Tag = "publications"
)

// Personal category tags.
const (
	TagVolunteerWork           Tag = "volunteerWork"
	TagAcademicActivities      Tag = "academicActivities"
	TagEvents                  Tag = "events"
	TagInternationalExperience Tag = "internationalExperience"
	TagAwardsRecognitions      Tag = "awardsRecognitions"
)

// Strategic category tags.
const (
	TagProfessionalInterests Tag = "professionalInterests"
	TagSoftSkills            Tag = "softSkills"
	TagAvailability          Tag = "availability"
	TagReferences            Tag = "references"
)

// SectionDescriptor is one layout slot in the section registry. ID is a
// layout-slot identity used purely for stable reordering; for core sections
// it equals the tag. Reordering descriptors never mutates the Document.
type SectionDescriptor struct {
	ID          string `json:"id"`
	DisplayName string `json:"name"`
	Tag         Tag    `json:"type"`
}
