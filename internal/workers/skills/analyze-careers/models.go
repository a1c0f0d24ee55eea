// internal/workers/skills/analyze-careers/models.go

package analyzecareers

import (
	"time"

	"career-workers/internal/models"
)

type Input struct {
	UserID        string              `json:"userId,omitempty"`
	UserProfile   *models.UserProfile `json:"userProfile,omitempty"`
	TargetCareers []string            `json:"targetCareers"`
	TopK          int                 `json:"topK,omitempty"`
}

// CareerSkill is the reduced per-career entry of a multi-career analysis.
type CareerSkill struct {
	Skill         string  `json:"skill"`
	PriorityScore float64 `json:"priorityScore"`
}

type Output struct {
	RequestID      string                   `json:"requestId"`
	UserID         string                   `json:"userId,omitempty"`
	CareerAnalysis map[string][]CareerSkill `json:"careerAnalysis"`
	SkippedCareers []string                 `json:"skippedCareers"`
	GeneratedAt    time.Time                `json:"generatedAt"`
}
