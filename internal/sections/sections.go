// Package sections maintains the ordered, reorderable list of section
// descriptors that drives editor layout. Ordering is independent of
// document contents; descriptors only reference section tags.
package sections

import "github.com/marcela/resume-studio/internal/types"

// standardTags is the fixed set of tags routed to the standard section
// form; every other tag routes to the category form dispatcher.
var standardTags = map[types.Tag]bool{
	types.TagPersonalInfo:   true,
	types.TagObjective:      true,
	types.TagEducation:      true,
	types.TagExperience:     true,
	types.TagSkills:         true,
	types.TagCertifications: true,
	types.TagLinks:          true,
}

// IsStandard reports whether the tag belongs to the standard form set.
func IsStandard(tag types.Tag) bool {
	return standardTags[tag]
}

// Default returns the default ordering of section descriptors: the core
// sections in the original editor order, then the category sections.
// Display names are the editor's Portuguese labels; the UI shell may
// localize them freely without affecting the model.
func Default() []types.SectionDescriptor {
	return []types.SectionDescriptor{
		{ID: "personalInfo", DisplayName: "Informações Pessoais", Tag: types.TagPersonalInfo},
		{ID: "objective", DisplayName: "Objetivo Profissional", Tag: types.TagObjective},
		{ID: "experience", DisplayName: "Experiência Profissional", Tag: types.TagExperience},
		{ID: "education", DisplayName: "Formação Acadêmica", Tag: types.TagEducation},
		{ID: "skills", DisplayName: "Habilidades", Tag: types.TagSkills},
		{ID: "certifications", DisplayName: "Certificações", Tag: types.TagCertifications},
		{ID: "links", DisplayName: "Links", Tag: types.TagLinks},
		{ID: "technicalSkills", DisplayName: "Habilidades Técnicas", Tag: types.TagTechnicalSkills},
		{ID: "extendedCertifications", DisplayName: "Certificações e Cursos", Tag: types.TagExtendedCertifications},
		{ID: "projects", DisplayName: "Projetos", Tag: types.TagProjects},
		{ID: "languages", DisplayName: "Idiomas", Tag: types.TagLanguages},
		{ID: "extracurricularCourses", DisplayName: "Cursos Extracurriculares", Tag: types.TagExtracurricularCourses},
		{ID: "publications", DisplayName: "Publicações", Tag: types.TagPublications},
		{ID: "volunteerWork", DisplayName: "Trabalho Voluntário", Tag: types.TagVolunteerWork},
		{ID: "academicActivities", DisplayName: "Atividades Acadêmicas", Tag: types.TagAcademicActivities},
		{ID: "events", DisplayName: "Eventos", Tag: types.TagEvents},
		{ID: "internationalExperience", DisplayName: "Experiência Internacional", Tag: types.TagInternationalExperience},
		{ID: "awardsRecognitions", DisplayName: "Prêmios e Reconhecimentos", Tag: types.TagAwardsRecognitions},
		{ID: "professionalInterests", DisplayName: "Interesses Profissionais", Tag: types.TagProfessionalInterests},
		{ID: "softSkills", DisplayName: "Soft Skills", Tag: types.TagSoftSkills},
		{ID: "availability", DisplayName: "Disponibilidade", Tag: types.TagAvailability},
		{ID: "references", DisplayName: "Referências", Tag: types.TagReferences},
	}
}

// Reorder moves the descriptor identified by fromID to the position
// currently occupied by toID, shifting intermediate descriptors by one.
// The result is a permutation of the input: nothing is duplicated or
// dropped. A move onto the descriptor's own position returns the input
// unchanged; unknown ids also return the input unchanged.
func Reorder(list []types.SectionDescriptor, fromID, toID string) []types.SectionDescriptor {
	from, to := -1, -1
	for i, s := range list {
		if s.ID == fromID {
			from = i
		}
		if s.ID == toID {
			to = i
		}
	}
	if from == -1 || to == -1 || from == to {
		return list
	}
	out := make([]types.SectionDescriptor, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	moved := list[from]
	out = append(out[:to], append([]types.SectionDescriptor{moved}, out[to:]...)...)
	return out
}
