package sections

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcela/resume-studio/internal/types"
)

func ids(list []types.SectionDescriptor) []string {
	out := make([]string, len(list))
	for i, s := range list {
		out[i] = s.ID
	}
	return out
}

func TestDefault_CoreOrder(t *testing.T) {
	list := Default()
	require.Len(t, list, 22)

	assert.Equal(t,
		[]string{"personalInfo", "objective", "experience", "education", "skills", "certifications", "links"},
		ids(list)[:7])
}

func TestDefault_UniqueIDsAndTags(t *testing.T) {
	list := Default()
	seen := map[string]bool{}
	for _, s := range list {
		assert.False(t, seen[s.ID], "duplicate id %q", s.ID)
		seen[s.ID] = true
		assert.NotEmpty(t, s.DisplayName)
		assert.NotEmpty(t, s.Tag)
	}
}

func TestIsStandard(t *testing.T) {
	assert.True(t, IsStandard(types.TagExperience))
	assert.True(t, IsStandard(types.TagPersonalInfo))
	assert.False(t, IsStandard(types.TagProjects))
	assert.False(t, IsStandard(types.TagAvailability))
}

func TestReorder_MovesDescriptor(t *testing.T) {
	list := Default()

	moved := Reorder(list, "education", "experience")
	got := ids(moved)
	assert.Equal(t, []string{"personalInfo", "objective", "education", "experience", "skills"}, got[:5])

	// Result is a permutation, nothing dropped or duplicated.
	require.Len(t, moved, len(list))
	assert.ElementsMatch(t, ids(list), got)
}

func TestReorder_ForwardMove(t *testing.T) {
	list := Default()
	moved := Reorder(list, "objective", "skills")
	assert.Equal(t, []string{"personalInfo", "experience", "education", "skills", "objective"}, ids(moved)[:5])
}

func TestReorder_NoopCases(t *testing.T) {
	list := Default()

	assert.Equal(t, ids(list), ids(Reorder(list, "skills", "skills")))
	assert.Equal(t, ids(list), ids(Reorder(list, "unknown", "skills")))
	assert.Equal(t, ids(list), ids(Reorder(list, "skills", "unknown")))
}

func TestReorder_DoesNotMutateInput(t *testing.T) {
	list := Default()
	before := ids(list)
	_ = Reorder(list, "links", "personalInfo")
	assert.Equal(t, before, ids(list))
}
