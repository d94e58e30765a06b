package schema

import (
	"fmt"

	"github.com/marcela/resume-studio/internal/types"
)

// Kind distinguishes singleton sections (one object per document) from
// collection sections (an ordered list of identified entities).
type Kind int

// Section kinds.
const (
	KindSingleton Kind = iota
	KindCollection
)

// Spec declares one section type: its default value and its validation
// predicate. The registry of specs is resolved once at package init, not
// reconstructed per use.
type Spec struct {
	Kind     Kind
	Default  func() any
	Validate func(v any) []FieldError
}

func singletonSpec[T any](tag types.Tag) Spec {
	return Spec{
		Kind:    KindSingleton,
		Default: func() any { var zero T; return zero },
		Validate: func(v any) []FieldError {
			return validateStruct(string(tag), v.(T))
		},
	}
}

func collectionSpec[T types.Entity](tag types.Tag) Spec {
	return Spec{
		Kind:    KindCollection,
		Default: func() any { return []T{} },
		Validate: func(v any) []FieldError {
			var errs []FieldError
			for i, e := range v.([]T) {
				errs = append(errs, validateStruct(fmt.Sprintf("%s[%d]", tag, i), e)...)
			}
			return errs
		},
	}
}

// registry is the closed set of section specs, keyed by tag.
var registry = map[types.Tag]Spec{
	types.TagPersonalInfo: singletonSpec[types.PersonalInfo](types.TagPersonalInfo),
	types.TagObjective: {
		Kind:    KindSingleton,
		Default: func() any { return "" },
		Validate: func(v any) []FieldError {
			if v.(string) == "" {
				return []FieldError{{Field: string(types.TagObjective), Message: msgRequired}}
			}
			return nil
		},
	},
	types.TagEducation:              collectionSpec[types.Education](types.TagEducation),
	types.TagExperience:             collectionSpec[types.Experience](types.TagExperience),
	types.TagSkills:                 collectionSpec[types.Skill](types.TagSkills),
	types.TagCertifications:         collectionSpec[types.Certification](types.TagCertifications),
	types.TagLinks:                  collectionSpec[types.Link](types.TagLinks),
	types.TagTechnicalSkills:        collectionSpec[types.TechnicalSkill](types.TagTechnicalSkills),
	types.TagExtendedCertifications: collectionSpec[types.ExtendedCertification](types.TagExtendedCertifications),
	types.TagProjects:               collectionSpec[types.Project](types.TagProjects),
	types.TagLanguages:              collectionSpec[types.Language](types.TagLanguages),
	types.TagExtracurricularCourses: collectionSpec[types.ExtracurricularCourse](types.TagExtracurricularCourses),
	types.TagPublications:           collectionSpec[types.Publication](types.TagPublications),
	types.TagVolunteerWork:          collectionSpec[types.VolunteerWork](types.TagVolunteerWork),
	types.TagAcademicActivities:     collectionSpec[types.AcademicActivity](types.TagAcademicActivities),
	types.TagEvents:                 collectionSpec[types.Event](types.TagEvents),
	types.TagInternationalExperience: collectionSpec[types.InternationalExperience](
		types.TagInternationalExperience),
	types.TagAwardsRecognitions: collectionSpec[types.AwardRecognition](types.TagAwardsRecognitions),
	types.TagProfessionalInterests: {
		Kind:    KindCollection,
		Default: func() any { return []string{} },
		// Plain string list; entries are unconstrained.
		Validate: func(v any) []FieldError { _ = v.([]string); return nil },
	},
	types.TagSoftSkills:   collectionSpec[types.SoftSkill](types.TagSoftSkills),
	types.TagAvailability: singletonSpec[types.Availability](types.TagAvailability),
	types.TagReferences:   collectionSpec[types.Reference](types.TagReferences),
}

func spec(tag types.Tag) Spec {
	s, ok := registry[tag]
	if !ok {
		// Unknown tags are programmer errors: the tag taxonomy is closed.
		panic(fmt.Sprintf("schema: unknown section tag %q", tag))
	}
	return s
}

// DefaultValue returns the default value for the section tag: a
// fully-populated object with empty leaves for singletons, an empty
// sequence for collections.
func DefaultValue(tag types.Tag) any {
	return spec(tag).Default()
}

// SectionKind returns whether the tag is a singleton or a collection.
func SectionKind(tag types.Tag) Kind {
	return spec(tag).Kind
}

// Validate checks the value against the section's rules and returns the
// field-level errors, nil when valid. It is pure and never fails for
// malformed shape: passing a value of the wrong type for the tag is a
// precondition violation and panics.
func Validate(tag types.Tag, v any) []FieldError {
	return spec(tag).Validate(v)
}

// Tags returns every known section tag. Order is unspecified.
func Tags() []types.Tag {
	out := make([]types.Tag, 0, len(registry))
	for t := range registry {
		out = append(out, t)
	}
	return out
}
