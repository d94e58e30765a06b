package schema

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/types"
)

// Validation messages surfaced inline next to the offending field.
const (
	msgRequired = "is required"
	msgEmail    = "must be a valid email address"
	msgURL      = "must be a valid URL"
)

// validate is the shared validator instance. Field names in error paths
// come from json tags so that paths match the wire/document shape.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateStruct runs tag-based validation on one singleton or entity value
// and converts the result to field errors rooted at prefix.
func validateStruct(prefix string, v any) []FieldError {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// Non-struct input cannot happen for registered tags.
		panic(fmt.Sprintf("schema: cannot validate %T: %v", v, err))
	}
	out := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, FieldError{
			Field:   prefix + "." + fe.Field(),
			Message: messageFor(fe.Tag()),
		})
	}
	return out
}

func messageFor(tag string) string {
	switch tag {
	case "required":
		return msgRequired
	case "email":
		return msgEmail
	case "url":
		return msgURL
	default:
		return "is invalid"
	}
}

// ValidateDocument validates every section of the document and returns the
// combined field errors, nil when the document is fully valid.
func ValidateDocument(d *types.Document) []FieldError {
	var errs []FieldError
	for _, tag := range orderedTags {
		path, ok := document.PathForTag(tag)
		if !ok {
			panic(fmt.Sprintf("schema: tag %q has no document path", tag))
		}
		v, err := document.GetSlice(d, path)
		if err != nil {
			panic(fmt.Sprintf("schema: tag %q resolves to invalid path %q", tag, path))
		}
		errs = append(errs, Validate(tag, v)...)
	}
	return errs
}

// orderedTags fixes the reporting order of ValidateDocument so output is
// deterministic.
var orderedTags = []types.Tag{
	types.TagPersonalInfo,
	types.TagObjective,
	types.TagEducation,
	types.TagExperience,
	types.TagSkills,
	types.TagCertifications,
	types.TagLinks,
	types.TagTechnicalSkills,
	types.TagExtendedCertifications,
	types.TagProjects,
	types.TagLanguages,
	types.TagExtracurricularCourses,
	types.TagPublications,
	types.TagVolunteerWork,
	types.TagAcademicActivities,
	types.TagEvents,
	types.TagInternationalExperience,
	types.TagAwardsRecognitions,
	types.TagProfessionalInterests,
	types.TagSoftSkills,
	types.TagAvailability,
	types.TagReferences,
}
