// internal/workers/skills/prioritize-skills/service.go

package prioritizeskills

import (
	"context"

	"career-workers/internal/models"
)

// Ranker is the part of the prioritizer this worker needs.
type Ranker interface {
	Prioritize(ctx context.Context, profile *models.UserProfile, career string, topK int) ([]models.SkillPriority, error)
}
