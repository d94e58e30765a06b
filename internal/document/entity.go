package document

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/marcela/resume-studio/internal/types"
)

// collectionOps adapts one typed entity collection to the generic entity
// operations. get returns a fresh boxed copy, so callers may append or
// reorder without touching the original backing array.
type collectionOps struct {
	get func(d *types.Document) []types.Entity
	set func(d *types.Document, items []types.Entity)
}

func coll[T types.Entity](get func(d *types.Document) []T, set func(d *types.Document, items []T)) collectionOps {
	return collectionOps{
		get: func(d *types.Document) []types.Entity {
			src := get(d)
			out := make([]types.Entity, len(src))
			for i, e := range src {
				out[i] = e
			}
			return out
		},
		set: func(d *types.Document, items []types.Entity) {
			out := make([]T, len(items))
			for i, e := range items {
				t, ok := e.(T)
				if !ok {
					panic(fmt.Sprintf("document: entity of type %T is not assignable to collection of %T", e, out))
				}
				out[i] = t
			}
			set(d, out)
		},
	}
}

// collections maps every entity-bearing path to its typed operations.
// professionalInterests is deliberately absent: it is a plain string list
// without entity identity and is edited wholesale through WithSlice.
var collections = map[Path]collectionOps{
	PathEducation: coll(
		func(d *types.Document) []types.Education { return d.Education },
		func(d *types.Document, v []types.Education) { d.Education = v }),
	PathExperience: coll(
		func(d *types.Document) []types.Experience { return d.Experience },
		func(d *types.Document, v []types.Experience) { d.Experience = v }),
	PathSkills: coll(
		func(d *types.Document) []types.Skill { return d.Skills },
		func(d *types.Document, v []types.Skill) { d.Skills = v }),
	PathCertifications: coll(
		func(d *types.Document) []types.Certification { return d.Certifications },
		func(d *types.Document, v []types.Certification) { d.Certifications = v }),
	PathLinks: coll(
		func(d *types.Document) []types.Link { return d.Links },
		func(d *types.Document, v []types.Link) { d.Links = v }),
	PathTechnicalSkills: coll(
		func(d *types.Document) []types.TechnicalSkill { return d.Technical.TechnicalSkills },
		func(d *types.Document, v []types.TechnicalSkill) { d.Technical.TechnicalSkills = v }),
	PathExtendedCertifications: coll(
		func(d *types.Document) []types.ExtendedCertification { return d.Technical.Certifications },
		func(d *types.Document, v []types.ExtendedCertification) { d.Technical.Certifications = v }),
	PathProjects: coll(
		func(d *types.Document) []types.Project { return d.Technical.Projects },
		func(d *types.Document, v []types.Project) { d.Technical.Projects = v }),
	PathLanguages: coll(
		func(d *types.Document) []types.Language { return d.Technical.Languages },
		func(d *types.Document, v []types.Language) { d.Technical.Languages = v }),
	PathExtracurricularCourses: coll(
		func(d *types.Document) []types.ExtracurricularCourse { return d.Technical.ExtracurricularCourses },
		func(d *types.Document, v []types.ExtracurricularCourse) { d.Technical.ExtracurricularCourses = v }),
	PathPublications: coll(
		func(d *types.Document) []types.Publication { return d.Technical.Publications },
		func(d *types.Document, v []types.Publication) { d.Technical.Publications = v }),
	PathVolunteerWork: coll(
		func(d *types.Document) []types.VolunteerWork { return d.Personal.VolunteerWork },
		func(d *types.Document, v []types.VolunteerWork) { d.Personal.VolunteerWork = v }),
	PathAcademicActivities: coll(
		func(d *types.Document) []types.AcademicActivity { return d.Personal.AcademicActivities },
		func(d *types.Document, v []types.AcademicActivity) { d.Personal.AcademicActivities = v }),
	PathEvents: coll(
		func(d *types.Document) []types.Event { return d.Personal.Events },
		func(d *types.Document, v []types.Event) { d.Personal.Events = v }),
	PathInternationalExperience: coll(
		func(d *types.Document) []types.InternationalExperience { return d.Personal.InternationalExperience },
		func(d *types.Document, v []types.InternationalExperience) { d.Personal.InternationalExperience = v }),
	PathAwardsRecognitions: coll(
		func(d *types.Document) []types.AwardRecognition { return d.Personal.AwardsRecognitions },
		func(d *types.Document, v []types.AwardRecognition) { d.Personal.AwardsRecognitions = v }),
	PathSoftSkills: coll(
		func(d *types.Document) []types.SoftSkill { return d.Strategic.SoftSkills },
		func(d *types.Document, v []types.SoftSkill) { d.Strategic.SoftSkills = v }),
	PathReferences: coll(
		func(d *types.Document) []types.Reference { return d.Strategic.References },
		func(d *types.Document, v []types.Reference) { d.Strategic.References = v }),
}

// Entities returns a boxed copy of the entity collection at path.
func Entities(d *types.Document, path Path) ([]types.Entity, error) {
	ops, ok := collections[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	return ops.get(d), nil
}

// AddEntity appends e to the collection at path with a freshly generated
// id and returns the new document along with the assigned id. Order on add
// is always append, never insert-at-position.
func AddEntity(d *types.Document, path Path, e types.Entity) (*types.Document, string, error) {
	ops, ok := collections[path]
	if !ok {
		return nil, "", &InvalidPathError{Path: path}
	}
	id := uuid.NewString()
	items := append(ops.get(d), e.WithID(id))
	out := *d
	ops.set(&out, items)
	return &out, id, nil
}

// UpdateEntity locates the entity with the given id and replaces it with
// mutate's result. The id is immutable: whatever mutate returns is re-keyed
// to the original id. Returns EntityNotFoundError if the id is absent.
func UpdateEntity(d *types.Document, path Path, id string, mutate func(types.Entity) types.Entity) (*types.Document, error) {
	ops, ok := collections[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	items := ops.get(d)
	for i, e := range items {
		if e.EntityID() == id {
			items[i] = mutate(e).WithID(id)
			out := *d
			ops.set(&out, items)
			return &out, nil
		}
	}
	return nil, &EntityNotFoundError{Path: path, ID: id}
}

// RemoveEntity filters the entity with the given id out of the collection
// at path. Removal is idempotent: an absent id returns the document
// unchanged with no error.
func RemoveEntity(d *types.Document, path Path, id string) (*types.Document, error) {
	ops, ok := collections[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	items := ops.get(d)
	kept := items[:0]
	found := false
	for _, e := range items {
		if e.EntityID() == id {
			found = true
			continue
		}
		kept = append(kept, e)
	}
	if !found {
		return d, nil
	}
	out := *d
	ops.set(&out, kept)
	return &out, nil
}

// MoveEntity moves the entity identified by fromID to the position
// currently occupied by toID, shifting intermediate entities by one. Ids
// and field contents are preserved; only array position changes. Moving an
// entity onto itself is a no-op.
func MoveEntity(d *types.Document, path Path, fromID, toID string) (*types.Document, error) {
	ops, ok := collections[path]
	if !ok {
		return nil, &InvalidPathError{Path: path}
	}
	items := ops.get(d)
	from, to := -1, -1
	for i, e := range items {
		if e.EntityID() == fromID {
			from = i
		}
		if e.EntityID() == toID {
			to = i
		}
	}
	if from == -1 {
		return nil, &EntityNotFoundError{Path: path, ID: fromID}
	}
	if to == -1 {
		return nil, &EntityNotFoundError{Path: path, ID: toID}
	}
	if from == to {
		return d, nil
	}
	moved := items[from]
	items = append(items[:from], items[from+1:]...)
	rest := append(items[:to], append([]types.Entity{moved}, items[to:]...)...)
	out := *d
	ops.set(&out, rest)
	return &out, nil
}
