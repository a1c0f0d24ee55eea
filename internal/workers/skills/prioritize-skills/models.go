// internal/workers/skills/prioritize-skills/models.go

package prioritizeskills

import (
	"time"

	"career-workers/internal/models"
)

type Input struct {
	UserID       string              `json:"userId,omitempty"`
	UserProfile  *models.UserProfile `json:"userProfile,omitempty"`
	TargetCareer string              `json:"targetCareer"`
	TopK         int                 `json:"topK,omitempty"`
}

type Output struct {
	RequestID      string                 `json:"requestId"`
	UserID         string                 `json:"userId,omitempty"`
	TargetCareer   string                 `json:"targetCareer"`
	PrioritySkills []models.SkillPriority `json:"prioritySkills"`
	GeneratedAt    time.Time              `json:"generatedAt"`
}
