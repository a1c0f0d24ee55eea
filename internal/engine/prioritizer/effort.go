// internal/engine/prioritizer/effort.go

package prioritizer

import "career-workers/internal/models"

// DefaultDifficulty is the base learning effort per skill. Skills not
// listed are Medium.
var DefaultDifficulty = map[string]models.LearningEffort{
	"Machine Learning": models.EffortHigh,
	"Kubernetes":       models.EffortHigh,
	"Terraform":        models.EffortHigh,
	"Statistics":       models.EffortHigh,
	"AWS":              models.EffortHigh,
	"C++":              models.EffortHigh,
	"Rust":             models.EffortHigh,
	"HTML":             models.EffortLow,
	"CSS":              models.EffortLow,
	"Excel":            models.EffortLow,
	"Git":              models.EffortLow,
	"Communication":    models.EffortLow,
	"Agile":            models.EffortLow,
}

// EstimateEffort returns the base difficulty of skill, one tier lower for
// fast learners or users with more than five years of experience.
func (p *Prioritizer) EstimateEffort(skill string, profile *models.UserProfile) models.LearningEffort {
	effort, ok := p.difficulty[skill]
	if !ok {
		effort = models.EffortMedium
	}
	if profile.LearningCapacity > 0.7 || profile.ExperienceYears > 5 {
		return downgrade(effort)
	}
	return effort
}

func downgrade(e models.LearningEffort) models.LearningEffort {
	switch e {
	case models.EffortHigh:
		return models.EffortMedium
	default:
		return models.EffortLow
	}
}
