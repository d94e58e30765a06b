package document

import (
	"fmt"

	"github.com/marcela/resume-studio/internal/types"
)

// Path addresses one slice of a Document: either a bare core section tag or
// a dotted category path. The set of paths is closed; resolution goes
// through the accessor registry below, never through string splitting.
type Path string

// Core section paths.
const (
	PathPersonalInfo   Path = "personalInfo"
	PathObjective      Path = "objective"
	PathEducation      Path = "education"
	PathExperience     Path = "experience"
	PathSkills         Path = "skills"
	PathCertifications Path = "certifications"
	PathLinks          Path = "links"
)

// Technical category paths.
const (
	PathTechnicalSkills        Path = "technicalCategories.technicalSkills"
	PathExtendedCertifications Path = "technicalCategories.certifications"
	PathProjects               Path = "technicalCategories.projects"
	PathLanguages              Path = "technicalCategories.languages"
	PathExtracurricularCourses Path = "technicalCategories.extracurricularCourses"
	PathPublications           Path = "technicalCategories.publications"
)

// Personal category paths.
const (
	PathVolunteerWork           Path = "personalCategories.volunteerWork"
	PathAcademicActivities      Path = "personalCategories.academicActivities"
	PathEvents                  Path = "personalCategories.events"
	PathInternationalExperience Path = "personalCategories.internationalExperience"
	PathAwardsRecognitions      Path = "personalCategories.awardsRecognitions"
)

// Strategic category paths.
const (
	PathProfessionalInterests Path = "strategicCategories.professionalInterests"
	PathSoftSkills            Path = "strategicCategories.softSkills"
	PathAvailability          Path = "strategicCategories.availability"
	PathReferences            Path = "strategicCategories.references"
)

// sliceOps is one compile-time-known getter/setter pair. set reports false
// when the value's dynamic type does not match the slice.
type sliceOps struct {
	get func(d *types.Document) any
	set func(d *types.Document, v any) bool
}

// slices is the closed accessor registry. Adding a section means adding a
// tag, a path and one entry here.
var slices = map[Path]sliceOps{
	PathPersonalInfo: {
		get: func(d *types.Document) any { return d.PersonalInfo },
		set: func(d *types.Document, v any) bool { t, ok := v.(types.PersonalInfo); d.PersonalInfo = t; return ok },
	},
	PathObjective: {
		get: func(d *types.Document) any { return d.Objective },
		set: func(d *types.Document, v any) bool { t, ok := v.(string); d.Objective = t; return ok },
	},
	PathEducation: {
		get: func(d *types.Document) any { return d.Education },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Education); d.Education = t; return ok },
	},
	PathExperience: {
		get: func(d *types.Document) any { return d.Experience },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Experience); d.Experience = t; return ok },
	},
	PathSkills: {
		get: func(d *types.Document) any { return d.Skills },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Skill); d.Skills = t; return ok },
	},
	PathCertifications: {
		get: func(d *types.Document) any { return d.Certifications },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Certification); d.Certifications = t; return ok },
	},
	PathLinks: {
		get: func(d *types.Document) any { return d.Links },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Link); d.Links = t; return ok },
	},
	PathTechnicalSkills: {
		get: func(d *types.Document) any { return d.Technical.TechnicalSkills },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.TechnicalSkill)
			d.Technical.TechnicalSkills = t
			return ok
		},
	},
	PathExtendedCertifications: {
		get: func(d *types.Document) any { return d.Technical.Certifications },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.ExtendedCertification)
			d.Technical.Certifications = t
			return ok
		},
	},
	PathProjects: {
		get: func(d *types.Document) any { return d.Technical.Projects },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Project); d.Technical.Projects = t; return ok },
	},
	PathLanguages: {
		get: func(d *types.Document) any { return d.Technical.Languages },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Language); d.Technical.Languages = t; return ok },
	},
	PathExtracurricularCourses: {
		get: func(d *types.Document) any { return d.Technical.ExtracurricularCourses },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.ExtracurricularCourse)
			d.Technical.ExtracurricularCourses = t
			return ok
		},
	},
	PathPublications: {
		get: func(d *types.Document) any { return d.Technical.Publications },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.Publication)
			d.Technical.Publications = t
			return ok
		},
	},
	PathVolunteerWork: {
		get: func(d *types.Document) any { return d.Personal.VolunteerWork },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.VolunteerWork)
			d.Personal.VolunteerWork = t
			return ok
		},
	},
	PathAcademicActivities: {
		get: func(d *types.Document) any { return d.Personal.AcademicActivities },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.AcademicActivity)
			d.Personal.AcademicActivities = t
			return ok
		},
	},
	PathEvents: {
		get: func(d *types.Document) any { return d.Personal.Events },
		set: func(d *types.Document, v any) bool { t, ok := v.([]types.Event); d.Personal.Events = t; return ok },
	},
	PathInternationalExperience: {
		get: func(d *types.Document) any { return d.Personal.InternationalExperience },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.InternationalExperience)
			d.Personal.InternationalExperience = t
			return ok
		},
	},
	PathAwardsRecognitions: {
		get: func(d *types.Document) any { return d.Personal.AwardsRecognitions },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.AwardRecognition)
			d.Personal.AwardsRecognitions = t
			return ok
		},
	},
	PathProfessionalInterests: {
		get: func(d *types.Document) any { return d.Strategic.ProfessionalInterests },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]string)
			d.Strategic.ProfessionalInterests = t
			return ok
		},
	},
	PathSoftSkills: {
		get: func(d *types.Document) any { return d.Strategic.SoftSkills },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.SoftSkill)
			d.Strategic.SoftSkills = t
			return ok
		},
	},
	PathAvailability: {
		get: func(d *types.Document) any { return d.Strategic.Availability },
		set: func(d *types.Document, v any) bool {
			t, ok := v.(types.Availability)
			d.Strategic.Availability = t
			return ok
		},
	},
	PathReferences: {
		get: func(d *types.Document) any { return d.Strategic.References },
		set: func(d *types.Document, v any) bool {
			t, ok := v.([]types.Reference)
			d.Strategic.References = t
			return ok
		},
	},
}

// pathsByTag maps every section tag to its slice path.
var pathsByTag = map[types.Tag]Path{
	types.TagPersonalInfo:            PathPersonalInfo,
	types.TagObjective:               PathObjective,
	types.TagEducation:               PathEducation,
	types.TagExperience:              PathExperience,
	types.TagSkills:                  PathSkills,
	types.TagCertifications:          PathCertifications,
	types.TagLinks:                   PathLinks,
	types.TagTechnicalSkills:         PathTechnicalSkills,
	types.TagExtendedCertifications:  PathExtendedCertifications,
	types.TagProjects:                PathProjects,
	types.TagLanguages:               PathLanguages,
	types.TagExtracurricularCourses:  PathExtracurricularCourses,
	types.TagPublications:            PathPublications,
	types.TagVolunteerWork:           PathVolunteerWork,
	types.TagAcademicActivities:      PathAcademicActivities,
	types.TagEvents:                  PathEvents,
	types.TagInternationalExperience: PathInternationalExperience,
	types.TagAwardsRecognitions:      PathAwardsRecognitions,
	types.TagProfessionalInterests:   PathProfessionalInterests,
	types.TagSoftSkills:              PathSoftSkills,
	types.TagAvailability:            PathAvailability,
	types.TagReferences:              PathReferences,
}

// PathForTag resolves a section tag to its slice path.
func PathForTag(tag types.Tag) (Path, bool) {
	p, ok := pathsByTag[tag]
	return p, ok
}

// Paths returns every known slice path. Order is unspecified.
func Paths() []Path {
	out := make([]Path, 0, len(slices))
	for p := range slices {
		out = append(out, p)
	}
	return out
}

// GetSlice returns the value stored at path.
func GetSlice(d *types.Document, path Path) (any, error) {
	ops, ok := slices[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	return ops.get(d), nil
}

// WithSlice returns a new Document with exactly the addressed slice
// replaced wholesale; every other field of the result shares structure with
// d. Passing a value of the wrong type for the path is a precondition
// violation and panics.
func WithSlice(d *types.Document, path Path, v any) (*types.Document, error) {
	ops, ok := slices[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	out := *d
	if !ops.set(&out, v) {
		panic(fmt.Sprintf("document: value of type %T is not assignable to slice %q", v, path))
	}
	return &out, nil
}
