// Package document implements the resume document model: default document
// construction, slice addressing with structural sharing, and entity
// lifecycle operations on collection sections.
package document

import "github.com/marcela/resume-studio/internal/types"

// New returns a fully defaulted Document. Every singleton section is
// populated with empty leaf values and every collection is an empty,
// non-nil sequence, so every section has a well-formed renderable value
// immediately after creation.
func New() *types.Document {
	return &types.Document{
		PersonalInfo:   types.PersonalInfo{},
		Objective:      "",
		Education:      []types.Education{},
		Experience:     []types.Experience{},
		Skills:         []types.Skill{},
		Certifications: []types.Certification{},
		Links:          []types.Link{},
		Technical: types.TechnicalCategories{
			TechnicalSkills:        []types.TechnicalSkill{},
			Certifications:         []types.ExtendedCertification{},
			Projects:               []types.Project{},
			Languages:              []types.Language{},
			ExtracurricularCourses: []types.ExtracurricularCourse{},
			Publications:           []types.Publication{},
		},
		Personal: types.PersonalCategories{
			VolunteerWork:           []types.VolunteerWork{},
			AcademicActivities:      []types.AcademicActivity{},
			Events:                  []types.Event{},
			InternationalExperience: []types.InternationalExperience{},
			AwardsRecognitions:      []types.AwardRecognition{},
		},
		Strategic: types.StrategicCategories{
			ProfessionalInterests: []string{},
			SoftSkills:            []types.SoftSkill{},
			Availability:          types.Availability{},
			References:            []types.Reference{},
		},
	}
}
