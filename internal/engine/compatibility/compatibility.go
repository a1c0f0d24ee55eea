// internal/engine/compatibility/compatibility.go

// Package compatibility scores how well an opportunity fits a user across
// the five weighted dimensions.
package compatibility

import (
	"career-workers/internal/common/logger"
	"career-workers/internal/engine/dimension"
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
)

// Result is the composite score and its per-dimension parts, all in [0,1].
type Result struct {
	Composite  float64                      `json:"composite"`
	Dimensions map[tables.Dimension]float64 `json:"dimensions"`
	UserType   tables.UserType              `json:"userType"`
}

type Evaluator struct {
	tables *tables.Configuration
	scorer *dimension.Scorer
}

func New(cfg *tables.Configuration, log logger.Logger) *Evaluator {
	return &Evaluator{
		tables: cfg,
		scorer: dimension.NewScorer(log),
	}
}

// Evaluate scores opp for profile with the configured dimension weights.
func (e *Evaluator) Evaluate(profile *models.UserProfile, opp *models.Opportunity) Result {
	userType := UserTypeOf(profile)
	scores := map[tables.Dimension]float64{
		tables.DimensionPersonal:   e.personal(profile, opp, userType),
		tables.DimensionCultural:   e.cultural(profile, opp),
		tables.DimensionEconomic:   dimension.ScoreOf(e.scorer, "economic_brackets", e.tables.EconomicBrackets, profile.EconomicBracket),
		tables.DimensionGeographic: e.geographic(profile, opp),
		tables.DimensionSocial:     e.social(profile, opp),
	}
	return Result{
		Composite:  clamp(dimension.Composite(scores, e.tables.DimensionWeights)),
		Dimensions: scores,
		UserType:   userType,
	}
}

// UserTypeOf buckets a profile by age and experience.
func UserTypeOf(p *models.UserProfile) tables.UserType {
	switch {
	case p.Age < 23 && p.ExperienceYears < 1:
		return tables.UserStudent
	case p.ExperienceYears < 3:
		return tables.UserEarlyCareer
	case p.ExperienceYears < 8:
		return tables.UserMidCareer
	default:
		return tables.UserSenior
	}
}

// Readiness is the user-type weighted mean of the readiness features.
func (e *Evaluator) Readiness(p *models.UserProfile, userType tables.UserType) float64 {
	features := map[tables.ReadinessFeature]float64{
		tables.FeatureExperience:       clamp(p.ExperienceYears / 10),
		tables.FeatureAcademic:         clamp(p.AcademicScore / 100),
		tables.FeatureEducation:        dimension.ScoreOf(e.scorer, "education_levels", e.tables.EducationLevels, p.EducationLevel),
		tables.FeatureLearningCapacity: clamp(p.LearningCapacity),
	}
	weights := e.tables.UserTypeWeights[userType]

	var total float64
	for _, f := range tables.ReadinessFeatures {
		total += features[f] * weights[f]
	}
	return clamp(total)
}

func (e *Evaluator) personal(p *models.UserProfile, opp *models.Opportunity, userType tables.UserType) float64 {
	readiness := e.Readiness(p, userType)
	demand := (dimension.ScoreOf(e.scorer, "career_difficulty", e.tables.CareerDifficulty, opp.Career) +
		dimension.ScoreOf(e.scorer, "seniority_levels", e.tables.SeniorityLevels, opp.Seniority)) / 2
	if readiness >= demand {
		return 1.0
	}
	return clamp(1 - (demand - readiness))
}

func (e *Evaluator) cultural(p *models.UserProfile, opp *models.Opportunity) float64 {
	context := dimension.ScoreOf(e.scorer, "cultural_contexts", e.tables.CulturalContexts, p.CulturalContext)
	fit := dimension.NestedOf(e.scorer, "industry_cultural_fit", e.tables.IndustryCulturalFit, opp.Industry, p.CulturalContext)
	return (context + fit) / 2
}

func (e *Evaluator) geographic(p *models.UserProfile, opp *models.Opportunity) float64 {
	infra := dimension.ScoreOf(e.scorer, "infrastructure_levels", e.tables.InfrastructureLevels, p.InfrastructureLevel)
	area := dimension.NestedOf(e.scorer, "urban_rural", e.tables.UrbanRural, p.AreaType, opp.AreaType)
	return (infra + area) / 2
}

func (e *Evaluator) social(p *models.UserProfile, opp *models.Opportunity) float64 {
	affinity := dimension.NestedOf(e.scorer, "family_affinity", e.tables.FamilyAffinity, p.FamilyBackground, opp.Industry)
	return (affinity + e.language(p, opp)) / 2
}

// language scores the opportunity's working language, halved when the user
// does not speak it.
func (e *Evaluator) language(p *models.UserProfile, opp *models.Opportunity) float64 {
	if dimension.Normalize(opp.Language) == "" {
		return dimension.Neutral
	}
	score := dimension.ScoreOf(e.scorer, "languages", e.tables.Languages, opp.Language)
	want := dimension.Normalize(opp.Language)
	for _, l := range p.Languages {
		if dimension.Normalize(l) == want {
			return score
		}
	}
	return score / 2
}

func clamp(v float64) float64 {
	return max(0.0, min(1.0, v))
}
