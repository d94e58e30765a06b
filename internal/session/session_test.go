package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcela/resume-studio/internal/document"
	"github.com/marcela/resume-studio/internal/schema"
	"github.com/marcela/resume-studio/internal/store"
	"github.com/marcela/resume-studio/internal/types"
)

// flakyStore wraps a real store and fails writes on demand.
type flakyStore struct {
	store.Store
	failWrites bool
}

func (s *flakyStore) WriteAll(ctx context.Context, ownerID string, resumes []types.Resume) error {
	if s.failWrites {
		return errors.New("disk full")
	}
	return s.Store.WriteAll(ctx, ownerID, resumes)
}

func newTestStore(t *testing.T) *store.FileStore {
	t.Helper()
	s, err := store.NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestCreate_PersistsAndLoads(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	r, err := sess.Create(ctx, "Currículo Principal", types.TemplateModern)
	require.NoError(t, err)

	assert.Equal(t, StateLoaded, sess.State())
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "owner-1", r.OwnerID)
	assert.Len(t, r.Sections, 22)
	assert.NotNil(t, r.Data.Experience)

	stored, err := st.ReadResume(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Currículo Principal", stored.Title)
}

func TestCreate_Validation(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	var validation *schema.ValidationError
	_, err := sess.Create(ctx, "", types.TemplateModern)
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, "title", validation.Errors[0].Field)

	_, err = sess.Create(ctx, "Título", types.Template("fancy"))
	assert.ErrorAs(t, err, &validation)
}

func TestCreate_EntitlementDenied(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1", WithEntitlement(func() bool { return false }))

	_, err := sess.Create(context.Background(), "Título", types.TemplateModern)
	var denied *CreateNotAllowedError
	assert.ErrorAs(t, err, &denied)
	assert.Equal(t, StateUnloaded, sess.State())
}

func TestLoad_MissingLeavesNoPartialState(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")

	err := sess.Load(context.Background(), "missing")
	var notFound *store.ResumeNotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, StateUnloaded, sess.State())
	assert.Nil(t, sess.Current())
	assert.Nil(t, sess.Document())
}

func TestLoad_BackfillsSectionOrdering(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	r := types.Resume{
		ID:       "r1",
		OwnerID:  "owner-1",
		Title:    "Antigo",
		Template: types.TemplateClassic,
		Data:     *document.New(),
	}
	require.NoError(t, st.WriteAll(ctx, "owner-1", []types.Resume{r}))

	sess := New(st, "owner-1")
	require.NoError(t, sess.Load(ctx, "r1"))
	assert.Len(t, sess.Current().Sections, 22)
}

func TestEdits_VisibleBeforeSave(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	_, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	require.NoError(t, sess.Apply(document.PathObjective, "Atuar como engenheira de plataforma"))
	assert.Equal(t, StateEditing, sess.State())
	assert.Equal(t, "Atuar como engenheira de plataforma", sess.Document().Objective)

	id, err := sess.AddEntity(document.PathExperience, types.Experience{Company: "Acme", Position: "Dev"})
	require.NoError(t, err)
	require.Len(t, sess.Document().Experience, 1)
	assert.Equal(t, id, sess.Document().Experience[0].ID)

	require.NoError(t, sess.UpdateEntity(document.PathExperience, id, func(e types.Entity) types.Entity {
		exp := e.(types.Experience)
		exp.Current = true
		return exp
	}))
	assert.True(t, sess.Document().Experience[0].Current)

	require.NoError(t, sess.RemoveEntity(document.PathExperience, id))
	assert.Empty(t, sess.Document().Experience)
}

func TestEdits_RequireLoadedResume(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")

	var notLoaded *NoResumeLoadedError
	assert.ErrorAs(t, sess.Apply(document.PathObjective, "x"), &notLoaded)
	_, err := sess.AddEntity(document.PathSkills, types.Skill{Name: "Go"})
	assert.ErrorAs(t, err, &notLoaded)
	assert.ErrorAs(t, sess.Reorder("skills", "links"), &notLoaded)
	assert.ErrorAs(t, sess.Save(context.Background()), &notLoaded)
}

func TestSave_PersistsEditsAndBumpsUpdatedAt(t *testing.T) {
	st := newTestStore(t)
	fixed := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	sess := New(st, "owner-1", WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	r, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	require.NoError(t, sess.Apply(document.PathObjective, "Objetivo"))
	require.NoError(t, sess.Save(ctx))
	assert.Equal(t, StateLoaded, sess.State())

	saved, err := st.ReadResume(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, "Objetivo", saved.Data.Objective)
	// The clock is pinned, so monotonicity comes from the bump guard.
	assert.True(t, saved.UpdatedAt.After(r.UpdatedAt))

	first := saved.UpdatedAt
	require.NoError(t, sess.SetTitle("Currículo 2"))
	require.NoError(t, sess.Save(ctx))
	saved, err = st.ReadResume(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.True(t, saved.UpdatedAt.After(first))
}

func TestSave_FailurePreservesEdits(t *testing.T) {
	flaky := &flakyStore{Store: newTestStore(t)}
	sess := New(flaky, "owner-1")
	ctx := context.Background()

	_, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)
	require.NoError(t, sess.Apply(document.PathObjective, "Objetivo"))

	flaky.failWrites = true
	err = sess.Save(ctx)
	var persistence *PersistenceError
	require.ErrorAs(t, err, &persistence)
	assert.Equal(t, StateEditing, sess.State())
	assert.Equal(t, "Objetivo", sess.Document().Objective)

	// The same save succeeds on retry.
	flaky.failWrites = false
	require.NoError(t, sess.Save(ctx))
	assert.Equal(t, StateLoaded, sess.State())
}

func TestReorder_PersistedWithResume(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	r, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	require.NoError(t, sess.Reorder("education", "experience"))
	require.NoError(t, sess.Save(ctx))

	saved, err := st.ReadResume(ctx, "owner-1", r.ID)
	require.NoError(t, err)
	assert.Equal(t, "education", saved.Sections[2].ID)
	assert.Equal(t, "experience", saved.Sections[3].ID)
}

func TestDuplicate_CopiesWorkingDocument(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	orig, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	// Unsaved edits travel into the copy.
	require.NoError(t, sess.Apply(document.PathObjective, "Objetivo editado"))
	copied, err := sess.Duplicate(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, orig.ID, copied.ID)
	assert.Equal(t, "Currículo (Cópia)", copied.Title)
	assert.Equal(t, "Objetivo editado", copied.Data.Objective)

	// The original stays loaded and still has its unsaved edit.
	assert.Equal(t, orig.ID, sess.Current().ID)
	assert.Equal(t, "Objetivo editado", sess.Document().Objective)

	all, err := st.ListResumes(ctx, "owner-1")
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestDelete_UnloadsCurrent(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	r, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	require.NoError(t, sess.Delete(ctx, r.ID))
	assert.Equal(t, StateUnloaded, sess.State())
	assert.Nil(t, sess.Current())

	all, err := st.ListResumes(ctx, "owner-1")
	require.NoError(t, err)
	assert.Empty(t, all)
}

func TestValidate_ReflectsWorkingDocument(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	_, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	errs := sess.Validate()
	assert.NotEmpty(t, errs)

	require.NoError(t, sess.Apply(document.PathPersonalInfo, types.PersonalInfo{FullName: "Ana Silva", JobTitle: "Engenheira"}))
	require.NoError(t, sess.Apply(document.PathObjective, "Objetivo"))
	assert.Empty(t, sess.Validate())
}

func TestSetTemplate(t *testing.T) {
	st := newTestStore(t)
	sess := New(st, "owner-1")
	ctx := context.Background()

	_, err := sess.Create(ctx, "Currículo", types.TemplateModern)
	require.NoError(t, err)

	require.NoError(t, sess.SetTemplate(types.TemplateMinimal))
	assert.Equal(t, types.TemplateMinimal, sess.Current().Template)

	var validation *schema.ValidationError
	assert.ErrorAs(t, sess.SetTemplate(types.Template("fancy")), &validation)
}
