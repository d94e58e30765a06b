package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcela/resume-studio/internal/types"
)

func experienceIDs(d *types.Document) []string {
	ids := make([]string, len(d.Experience))
	for i, e := range d.Experience {
		ids[i] = e.ID
	}
	return ids
}

func TestAddEntity_AssignsIDAndAppends(t *testing.T) {
	d := New()

	next, id1, err := AddEntity(d, PathExperience, types.Experience{Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	next, id2, err := AddEntity(next, PathExperience, types.Experience{Company: "Beta", Position: "Dev"})
	require.NoError(t, err)

	require.Len(t, next.Experience, 2)
	assert.NotEmpty(t, id1)
	assert.NotEmpty(t, id2)
	assert.NotEqual(t, id1, id2)
	// Order on add is append.
	assert.Equal(t, []string{id1, id2}, experienceIDs(next))
	// Any id the caller proposed is overwritten.
	next, id3, err := AddEntity(next, PathExperience, types.Experience{ID: "chosen", Company: "Gama"})
	require.NoError(t, err)
	assert.NotEqual(t, "chosen", id3)

	assert.Empty(t, d.Experience)
}

func TestAddEntity_InvalidPath(t *testing.T) {
	d := New()
	_, _, err := AddEntity(d, Path("nope"), types.Experience{})

	var invalidPath *InvalidPathError
	assert.ErrorAs(t, err, &invalidPath)
}

func TestUpdateEntity_PreservesID(t *testing.T) {
	d := New()
	d, id, err := AddEntity(d, PathSkills, types.Skill{Name: "Go", Level: 3})
	require.NoError(t, err)

	next, err := UpdateEntity(d, PathSkills, id, func(e types.Entity) types.Entity {
		s := e.(types.Skill)
		s.Level = 5
		s.ID = "tampered"
		return s
	})
	require.NoError(t, err)

	require.Len(t, next.Skills, 1)
	assert.Equal(t, id, next.Skills[0].ID)
	assert.Equal(t, 5, next.Skills[0].Level)
	// The original document still holds the old value.
	assert.Equal(t, 3, d.Skills[0].Level)
}

func TestUpdateEntity_UnknownID(t *testing.T) {
	d := New()
	_, err := UpdateEntity(d, PathSkills, "missing", func(e types.Entity) types.Entity { return e })

	var notFound *EntityNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, "missing", notFound.ID)
	assert.Equal(t, PathSkills, notFound.Path)
}

func TestRemoveEntity_Idempotent(t *testing.T) {
	d := New()
	d, id, err := AddEntity(d, PathLinks, types.Link{Name: "GitHub", URL: "https://github.com/ana"})
	require.NoError(t, err)

	next, err := RemoveEntity(d, PathLinks, id)
	require.NoError(t, err)
	assert.Empty(t, next.Links)

	// Removing again is a no-op, not an error.
	again, err := RemoveEntity(next, PathLinks, id)
	require.NoError(t, err)
	assert.Empty(t, again.Links)
}

func TestMoveEntity_ArraySemantics(t *testing.T) {
	d := New()
	var ids []string
	for _, company := range []string{"A", "B", "C", "D"} {
		var id string
		var err error
		d, id, err = AddEntity(d, PathExperience, types.Experience{Company: company})
		require.NoError(t, err)
		ids = append(ids, id)
	}

	tests := []struct {
		name string
		from int
		to   int
		want []int
	}{
		{name: "forward", from: 0, to: 2, want: []int{1, 2, 0, 3}},
		{name: "backward", from: 3, to: 1, want: []int{0, 3, 1, 2}},
		{name: "adjacent", from: 1, to: 2, want: []int{0, 2, 1, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			next, err := MoveEntity(d, PathExperience, ids[tt.from], ids[tt.to])
			require.NoError(t, err)

			want := make([]string, len(tt.want))
			for i, idx := range tt.want {
				want[i] = ids[idx]
			}
			assert.Equal(t, want, experienceIDs(next))
			// Ids and contents survive the move.
			for _, e := range next.Experience {
				assert.NotEmpty(t, e.Company)
			}
		})
	}
}

func TestMoveEntity_SelfMoveIsNoop(t *testing.T) {
	d := New()
	d, id, err := AddEntity(d, PathExperience, types.Experience{Company: "A"})
	require.NoError(t, err)

	next, err := MoveEntity(d, PathExperience, id, id)
	require.NoError(t, err)
	assert.Equal(t, experienceIDs(d), experienceIDs(next))
}

func TestMoveEntity_UnknownIDs(t *testing.T) {
	d := New()
	d, id, err := AddEntity(d, PathExperience, types.Experience{Company: "A"})
	require.NoError(t, err)

	var notFound *EntityNotFoundError
	_, err = MoveEntity(d, PathExperience, "missing", id)
	assert.ErrorAs(t, err, &notFound)

	_, err = MoveEntity(d, PathExperience, id, "missing")
	assert.ErrorAs(t, err, &notFound)
}

func TestEntities_ReturnsIsolatedCopy(t *testing.T) {
	d := New()
	d, _, err := AddEntity(d, PathSkills, types.Skill{Name: "Go"})
	require.NoError(t, err)

	items, err := Entities(d, PathSkills)
	require.NoError(t, err)
	require.Len(t, items, 1)

	// Mutating the boxed copy must not touch the document.
	items[0] = types.Skill{ID: "x", Name: "Rust"}
	assert.Equal(t, "Go", d.Skills[0].Name)
}

func TestEntities_ProfessionalInterestsHasNoEntityOps(t *testing.T) {
	d := New()
	_, err := Entities(d, PathProfessionalInterests)

	var invalidPath *InvalidPathError
	assert.ErrorAs(t, err, &invalidPath)
}
