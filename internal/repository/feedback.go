// internal/repository/feedback.go

package repository

import (
	"context"
	"database/sql"
	"fmt"

	"career-workers/internal/models"

	"github.com/lib/pq"
)

const feedbackQuery = `
	SELECT opportunity_id, rating, created_at
	FROM opportunity_feedback
	WHERE user_id = $1 AND opportunity_id = ANY($2)
	ORDER BY created_at DESC`

// FeedbackStore reads the ratings a user left on past opportunities.
type FeedbackStore struct {
	db *sql.DB
}

func NewFeedbackStore(db *sql.DB) *FeedbackStore {
	return &FeedbackStore{db: db}
}

// ForOpportunities groups the user's feedback by opportunity id. Ratings are
// stored on a 1..5 scale and returned normalized to [0,1].
func (s *FeedbackStore) ForOpportunities(ctx context.Context, userID string, ids []string) (map[string][]models.Feedback, error) {
	out := make(map[string][]models.Feedback)
	if userID == "" || len(ids) == 0 {
		return out, nil
	}

	rows, err := s.db.QueryContext(ctx, feedbackQuery, userID, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("query feedback: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		fb := models.Feedback{UserID: userID}
		var rating float64
		if err := rows.Scan(&fb.OpportunityID, &rating, &fb.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan feedback: %w", err)
		}
		fb.Rating = normalizeRating(rating)
		out[fb.OpportunityID] = append(out[fb.OpportunityID], fb)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate feedback: %w", err)
	}
	return out, nil
}

func normalizeRating(r float64) float64 {
	switch {
	case r <= 1:
		return 0
	case r >= 5:
		return 1
	default:
		return (r - 1) / 4
	}
}
