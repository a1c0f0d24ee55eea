// internal/workers/opportunity/rank-opportunities/service.go

package rankopportunities

import (
	"context"
	"time"

	"career-workers/internal/engine/compatibility"
	"career-workers/internal/engine/dimension"
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
	"career-workers/internal/repository"
)

type OpportunitySearcher interface {
	Search(ctx context.Context, q repository.OpportunityQuery) (*repository.SearchResult, error)
}

type FeedbackSource interface {
	ForOpportunities(ctx context.Context, userID string, ids []string) (map[string][]models.Feedback, error)
}

type Evaluator interface {
	Evaluate(profile *models.UserProfile, opp *models.Opportunity) compatibility.Result
}

// FeedbackScore is the time-weighted mean rating. Ratings older than the
// decay window carry no weight; with no weighted rating it is Neutral.
func FeedbackScore(feedback []models.Feedback, now time.Time, decay tables.TimeDecay) float64 {
	var weighted, total float64
	for _, f := range feedback {
		daysAgo := int(now.Sub(f.CreatedAt).Hours() / 24)
		w := dimension.TimeWeight(daysAgo, decay)
		weighted += w * f.Rating
		total += w
	}
	if total == 0 {
		return dimension.Neutral
	}
	return weighted / total
}

// normalizeSearchScore maps an elasticsearch _score onto [0,1] relative to
// the best hit of the same query.
func normalizeSearchScore(score, maxScore float64) float64 {
	if maxScore <= 0 || score <= 0 {
		return 0
	}
	if score >= maxScore {
		return 1
	}
	return score / maxScore
}
