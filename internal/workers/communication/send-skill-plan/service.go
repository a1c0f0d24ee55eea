// internal/workers/communication/send-skill-plan/service.go

package sendskillplan

import (
	"context"

	"career-workers/internal/models"
)

// ContactSource resolves delivery details for a user.
type ContactSource interface {
	Contact(ctx context.Context, userID string) (*models.UserContact, error)
}

type Ranker interface {
	Prioritize(ctx context.Context, profile *models.UserProfile, career string, topK int) ([]models.SkillPriority, error)
}
