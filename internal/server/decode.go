package server

import (
	"encoding/json"
	"fmt"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/types"
)

// The editing protocol is typed on the Go side but arrives as JSON. These
// registries map each slice path to its concrete decode, so handlers never
// hand an untyped value to the document layer.

func decodeAs[T any](raw json.RawMessage) (any, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

var sliceDecoders = map[document.Path]func(json.RawMessage) (any, error){
	document.PathPersonalInfo:            decodeAs[types.PersonalInfo],
	document.PathObjective:               decodeAs[string],
	document.PathEducation:               decodeAs[[]types.Education],
	document.PathExperience:              decodeAs[[]types.Experience],
	document.PathSkills:                  decodeAs[[]types.Skill],
	document.PathCertifications:          decodeAs[[]types.Certification],
	document.PathLinks:                   decodeAs[[]types.Link],
	document.PathTechnicalSkills:         decodeAs[[]types.TechnicalSkill],
	document.PathExtendedCertifications:  decodeAs[[]types.ExtendedCertification],
	document.PathProjects:                decodeAs[[]types.Project],
	document.PathLanguages:               decodeAs[[]types.Language],
	document.PathExtracurricularCourses:  decodeAs[[]types.ExtracurricularCourse],
	document.PathPublications:            decodeAs[[]types.Publication],
	document.PathVolunteerWork:           decodeAs[[]types.VolunteerWork],
	document.PathAcademicActivities:      decodeAs[[]types.AcademicActivity],
	document.PathEvents:                  decodeAs[[]types.Event],
	document.PathInternationalExperience: decodeAs[[]types.InternationalExperience],
	document.PathAwardsRecognitions:      decodeAs[[]types.AwardRecognition],
	document.PathProfessionalInterests:   decodeAs[[]string],
	document.PathSoftSkills:              decodeAs[[]types.SoftSkill],
	document.PathAvailability:            decodeAs[types.Availability],
	document.PathReferences:              decodeAs[[]types.Reference],
}

func decodeEntityAs[T types.Entity](raw json.RawMessage) (types.Entity, error) {
	var v T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, err
	}
	return v, nil
}

var entityDecoders = map[document.Path]func(json.RawMessage) (types.Entity, error){
	document.PathEducation:               decodeEntityAs[types.Education],
	document.PathExperience:              decodeEntityAs[types.Experience],
	document.PathSkills:                  decodeEntityAs[types.Skill],
	document.PathCertifications:          decodeEntityAs[types.Certification],
	document.PathLinks:                   decodeEntityAs[types.Link],
	document.PathTechnicalSkills:         decodeEntityAs[types.TechnicalSkill],
	document.PathExtendedCertifications:  decodeEntityAs[types.ExtendedCertification],
	document.PathProjects:                decodeEntityAs[types.Project],
	document.PathLanguages:               decodeEntityAs[types.Language],
	document.PathExtracurricularCourses:  decodeEntityAs[types.ExtracurricularCourse],
	document.PathPublications:            decodeEntityAs[types.Publication],
	document.PathVolunteerWork:           decodeEntityAs[types.VolunteerWork],
	document.PathAcademicActivities:      decodeEntityAs[types.AcademicActivity],
	document.PathEvents:                  decodeEntityAs[types.Event],
	document.PathInternationalExperience: decodeEntityAs[types.InternationalExperience],
	document.PathAwardsRecognitions:      decodeEntityAs[types.AwardRecognition],
	document.PathSoftSkills:              decodeEntityAs[types.SoftSkill],
	document.PathReferences:              decodeEntityAs[types.Reference],
}

// decodeSliceValue decodes raw as the slice type for path.
func decodeSliceValue(path document.Path, raw json.RawMessage) (any, error) {
	dec, ok := sliceDecoders[path]
	if !ok {
		return nil, &document.InvalidPathError{Path: path}
	}
	v, err := dec(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode value for %q: %w", path, err)
	}
	return v, nil
}

// decodeEntity decodes raw as the entity type for path.
func decodeEntity(path document.Path, raw json.RawMessage) (types.Entity, error) {
	dec, ok := entityDecoders[path]
	if !ok {
		return nil, &document.InvalidPathError{Path: path}
	}
	e, err := dec(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to decode entity for %q: %w", path, err)
	}
	return e, nil
}
