// internal/workers/opportunity/calculate-compatibility/models.go

package calculatecompatibility

import (
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
)

type Input struct {
	UserID      string              `json:"userId,omitempty"`
	UserProfile *models.UserProfile `json:"userProfile,omitempty"`
	Opportunity models.Opportunity  `json:"opportunity"`
}

type MatchLevel string

const (
	MatchStrong   MatchLevel = "strong"
	MatchModerate MatchLevel = "moderate"
	MatchWeak     MatchLevel = "weak"
)

type Output struct {
	OpportunityID      string                       `json:"opportunityId"`
	UserID             string                       `json:"userId,omitempty"`
	CompatibilityScore float64                      `json:"compatibilityScore"`
	Dimensions         map[tables.Dimension]float64 `json:"dimensions"`
	UserType           tables.UserType              `json:"userType"`
	Readiness          float64                      `json:"readiness"`
	MatchLevel         MatchLevel                   `json:"matchLevel"`
}
