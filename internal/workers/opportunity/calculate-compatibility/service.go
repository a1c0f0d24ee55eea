// internal/workers/opportunity/calculate-compatibility/service.go

package calculatecompatibility

import (
	"career-workers/internal/engine/compatibility"
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
)

// Evaluator is satisfied by *compatibility.Evaluator.
type Evaluator interface {
	Evaluate(profile *models.UserProfile, opp *models.Opportunity) compatibility.Result
	Readiness(profile *models.UserProfile, userType tables.UserType) float64
}

func (c *Config) levelOf(score float64) MatchLevel {
	switch {
	case score >= c.StrongMatch:
		return MatchStrong
	case score >= c.WeakMatch:
		return MatchModerate
	default:
		return MatchWeak
	}
}
