package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/types"
)

func TestValidateDocument_DefaultDocument(t *testing.T) {
	errs := ValidateDocument(document.New())

	var fields []string
	for _, e := range errs {
		fields = append(fields, e.Field)
	}
	// Only the always-required singleton fields are missing on a fresh
	// document; empty collections are valid.
	assert.Equal(t, []string{"personalInfo.fullName", "personalInfo.jobTitle", "objective"}, fields)
}

func TestValidateDocument_Valid(t *testing.T) {
	d := document.New()
	d.PersonalInfo = types.PersonalInfo{FullName: "Ana Silva", JobTitle: "Engenheira"}
	d.Objective = "Liderar times de plataforma"

	assert.Empty(t, ValidateDocument(d))
}

func TestValidateDocument_ReportsCategorySections(t *testing.T) {
	d := document.New()
	d.PersonalInfo = types.PersonalInfo{FullName: "Ana Silva", JobTitle: "Engenheira"}
	d.Objective = "Objetivo"
	d.Technical.Projects = []types.Project{{Name: "Billing"}}
	d.Strategic.References = []types.Reference{{Name: "Marcos"}}

	errs := ValidateDocument(d)
	require.Len(t, errs, 3)
	assert.Equal(t, "projects[0].startDate", errs[0].Field)
	assert.Equal(t, "references[0].relationship", errs[1].Field)
	assert.Equal(t, "references[0].contact", errs[2].Field)
}

func TestValidateDocument_DeterministicOrder(t *testing.T) {
	d := document.New()
	first := ValidateDocument(d)
	second := ValidateDocument(d)
	assert.Equal(t, first, second)
}
