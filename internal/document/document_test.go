package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcela/resume-studio/internal/types"
)

func TestNew_AllCollectionsPresent(t *testing.T) {
	d := New()

	assert.NotNil(t, d.Education)
	assert.NotNil(t, d.Experience)
	assert.NotNil(t, d.Skills)
	assert.NotNil(t, d.Certifications)
	assert.NotNil(t, d.Links)
	assert.NotNil(t, d.Technical.TechnicalSkills)
	assert.NotNil(t, d.Technical.Projects)
	assert.NotNil(t, d.Personal.VolunteerWork)
	assert.NotNil(t, d.Strategic.SoftSkills)
	assert.NotNil(t, d.Strategic.ProfessionalInterests)

	assert.Empty(t, d.Objective)
	assert.Empty(t, d.PersonalInfo.FullName)
}

func TestNew_EveryPathResolves(t *testing.T) {
	d := New()
	for _, p := range Paths() {
		_, err := GetSlice(d, p)
		assert.NoError(t, err, "path %q", p)
	}
}

func TestGetSlice_InvalidPath(t *testing.T) {
	d := New()
	_, err := GetSlice(d, Path("experience.bogus"))

	var invalidPath *InvalidPathError
	require.ErrorAs(t, err, &invalidPath)
	assert.Equal(t, Path("experience.bogus"), invalidPath.Path)
}

func TestWithSlice_ReplacesWholesale(t *testing.T) {
	d := New()

	next, err := WithSlice(d, PathSkills, []types.Skill{
		{ID: "s1", Name: "Go", Level: 5},
		{ID: "s2", Name: "SQL", Level: 4},
	})
	require.NoError(t, err)

	got, err := GetSlice(next, PathSkills)
	require.NoError(t, err)
	assert.Len(t, got.([]types.Skill), 2)

	// The original is untouched.
	orig, err := GetSlice(d, PathSkills)
	require.NoError(t, err)
	assert.Empty(t, orig.([]types.Skill))
}

func TestWithSlice_SingletonPaths(t *testing.T) {
	d := New()

	next, err := WithSlice(d, PathPersonalInfo, types.PersonalInfo{FullName: "Ana Silva", JobTitle: "Engenheira"})
	require.NoError(t, err)

	next, err = WithSlice(next, PathObjective, "Desenvolver sistemas distribuídos")
	require.NoError(t, err)

	assert.Equal(t, "Ana Silva", next.PersonalInfo.FullName)
	assert.Equal(t, "Desenvolver sistemas distribuídos", next.Objective)
	assert.Empty(t, d.PersonalInfo.FullName)
}

func TestWithSlice_CategoryPaths(t *testing.T) {
	d := New()

	next, err := WithSlice(d, PathProjects, []types.Project{{ID: "p1", Name: "Billing", StartDate: "2024-01"}})
	require.NoError(t, err)

	next, err = WithSlice(next, PathProfessionalInterests, []string{"Arquitetura", "Dados"})
	require.NoError(t, err)

	assert.Len(t, next.Technical.Projects, 1)
	assert.Equal(t, []string{"Arquitetura", "Dados"}, next.Strategic.ProfessionalInterests)
	assert.Empty(t, d.Technical.Projects)
	assert.Empty(t, d.Strategic.ProfessionalInterests)
}

func TestWithSlice_WrongTypePanics(t *testing.T) {
	d := New()
	assert.Panics(t, func() {
		_, _ = WithSlice(d, PathSkills, []types.Link{{ID: "l1"}})
	})
}

func TestPathForTag_CoversEveryTag(t *testing.T) {
	for _, tag := range []types.Tag{
		types.TagPersonalInfo, types.TagObjective, types.TagEducation,
		types.TagExperience, types.TagSkills, types.TagCertifications,
		types.TagLinks, types.TagTechnicalSkills, types.TagExtendedCertifications,
		types.TagProjects, types.TagLanguages, types.TagExtracurricularCourses,
		types.TagPublications, types.TagVolunteerWork, types.TagAcademicActivities,
		types.TagEvents, types.TagInternationalExperience, types.TagAwardsRecognitions,
		types.TagProfessionalInterests, types.TagSoftSkills, types.TagAvailability,
		types.TagReferences,
	} {
		p, ok := PathForTag(tag)
		assert.True(t, ok, "tag %q", tag)
		assert.NotEmpty(t, p)
	}

	_, ok := PathForTag(types.Tag("unknown"))
	assert.False(t, ok)
}
