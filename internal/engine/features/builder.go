// internal/engine/features/builder.go

package features

import (
	"career-workers/internal/engine/catalog"
	"career-workers/internal/models"
)

const (
	synergyPerSharedSkill = 0.2
	maxSynergy            = 1.0
)

// Encoder maps a class name to the integer index the model was trained on.
type Encoder interface {
	Index(name string) (int, bool)
}

// Builder synthesizes feature vectors for skill-gap candidates.
type Builder struct {
	skills  Encoder
	careers Encoder
	catalog *catalog.Catalog
	demand  MarketDemandFunc
}

func NewBuilder(skills, careers Encoder, cat *catalog.Catalog, demand MarketDemandFunc) *Builder {
	if demand == nil {
		demand = RandomMarketDemand()
	}
	return &Builder{
		skills:  skills,
		careers: careers,
		catalog: cat,
		demand:  demand,
	}
}

// Build returns the vector for skill as a candidate for career. ok is false
// when the skill encoder does not know skill; the candidate must then be
// dropped. An unknown career is encoded as index 0 and still scored.
func (b *Builder) Build(skill, career string, profile *models.UserProfile) (Vector, bool) {
	skillIdx, ok := b.skills.Index(skill)
	if !ok {
		return Vector{}, false
	}
	careerIdx, ok := b.careers.Index(career)
	if !ok {
		careerIdx = 0
	}

	return Vector{
		skillIndex:         float64(skillIdx),
		careerIndex:        float64(careerIdx),
		skillImportance:    Importance(career, skill),
		marketDemand:       b.demand(skill),
		learningDifficulty: 1 - profile.LearningCapacity,
		synergyScore:       b.Synergy(skill, profile.CurrentSkills),
		experienceFactor:   min(1.0, profile.ExperienceYears/10),
		academicFactor:     profile.AcademicScore / 100,
		learningCapacity:   profile.LearningCapacity,
	}, true
}

// Synergy adds 0.2 for every current skill sharing a category with skill,
// once per shared category, capped at 1.0.
func (b *Builder) Synergy(skill string, current []string) float64 {
	categories := b.catalog.CategoriesOf(skill)
	if len(categories) == 0 {
		return 0
	}

	seen := make(map[string]struct{}, len(current))
	var score float64
	for _, have := range current {
		if _, dup := seen[have]; dup {
			continue
		}
		seen[have] = struct{}{}
		for _, category := range categories {
			if b.catalog.Contains(category, have) {
				score += synergyPerSharedSkill
			}
		}
	}
	return min(maxSynergy, score)
}
