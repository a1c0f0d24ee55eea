// internal/workers/opportunity/rank-opportunities/models.go

package rankopportunities

import (
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
)

type Input struct {
	UserID      string              `json:"userId,omitempty"`
	UserProfile *models.UserProfile `json:"userProfile,omitempty"`
	Keywords    string              `json:"keywords,omitempty"`
	Career      string              `json:"career,omitempty"`
	Industry    string              `json:"industry,omitempty"`
	AreaType    string              `json:"areaType,omitempty"`
	MaxItems    int                 `json:"maxItems,omitempty"`
}

type Output struct {
	RankedOpportunities []RankedOpportunity `json:"rankedOpportunities"`
	TotalHits           int64               `json:"totalHits"`
	FeedbackApplied     bool                `json:"feedbackApplied"`
}

type RankedOpportunity struct {
	ID                 string                       `json:"id"`
	Title              string                       `json:"title"`
	Career             string                       `json:"career,omitempty"`
	Industry           string                       `json:"industry,omitempty"`
	FinalScore         float64                      `json:"finalScore"`
	SearchScore        float64                      `json:"searchScore"`
	CompatibilityScore float64                      `json:"compatibilityScore"`
	FeedbackScore      float64                      `json:"feedbackScore"`
	Dimensions         map[tables.Dimension]float64 `json:"dimensions"`
}
