// internal/workers/opportunity/rank-opportunities/handler.go

package rankopportunities

import (
	"context"
	stderrors "errors"
	"fmt"
	"sort"
	"time"

	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
	"career-workers/internal/repository"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "rank-opportunities"

type Handler struct {
	config    *Config
	logger    logger.Logger
	search    OpportunitySearcher
	feedback  FeedbackSource
	evaluator Evaluator
	profiles  jobs.ProfileSource
	decay     tables.TimeDecay
	now       func() time.Time
	obs       *observability.Observability
	errors    *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Search        OpportunitySearcher
	Feedback      FeedbackSource
	Evaluator     Evaluator
	Profiles      jobs.ProfileSource
	TimeDecay     tables.TimeDecay
	Clock         func() time.Time
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Search == nil || opts.Evaluator == nil {
		return nil, fmt.Errorf("%s: search and evaluator are required", TaskType)
	}

	decay := opts.TimeDecay
	if decay.Factor == 0 {
		decay = tables.Default().TimeDecay
	}
	clock := opts.Clock
	if clock == nil {
		clock = time.Now
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:    cfg,
		logger:    log,
		search:    opts.Search,
		feedback:  opts.Feedback,
		evaluator: opts.Evaluator,
		profiles:  opts.Profiles,
		decay:     decay,
		now:       clock,
		obs:       opts.Observability,
		errors:    errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Config() *Config {
	return h.config
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	ctx, tracker := jobs.Start(ctx, h.obs, TaskType, job)

	h.logger.Info("processing job", map[string]interface{}{
		"jobKey":      job.GetKey(),
		"workflowKey": job.GetProcessInstanceKey(),
	})

	err := h.handle(ctx, client, job)
	tracker.Done(err)
	if err != nil {
		h.errors.HandleJobError(ctx, client, job, err)
	}
}

func (h *Handler) handle(ctx context.Context, client worker.JobClient, job entities.Job) error {
	var input Input
	if err := jobs.Parse(job, GetInputSchema(), &input); err != nil {
		return err
	}

	output, err := h.Execute(ctx, &input)
	if err != nil {
		return err
	}

	if err := jobs.Complete(ctx, client, job, output); err != nil {
		return errors.NewWorkflowEngineError("complete job", err)
	}
	return nil
}

// Execute searches, scores and ranks opportunities for the user.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	profile, err := jobs.ResolveProfile(ctx, h.profiles, input.UserProfile, input.UserID)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	result, err := h.search.Search(ctx, repository.OpportunityQuery{
		Keywords: input.Keywords,
		Career:   input.Career,
		Industry: input.Industry,
		AreaType: input.AreaType,
		Size:     h.config.SearchSize,
	})
	if err != nil {
		return nil, h.searchError(ctx, err)
	}

	hits := dedupe(result.Hits)
	feedback, applied := h.loadFeedback(ctx, profile.UserID, hits)
	now := h.now()

	ranked := make([]RankedOpportunity, 0, len(hits))
	for _, hit := range hits {
		opp := hit.Opportunity
		compat := h.evaluator.Evaluate(profile, &opp)
		searchScore := normalizeSearchScore(hit.Score, result.MaxScore)
		feedbackScore := FeedbackScore(feedback[opp.ID], now, h.decay)

		ranked = append(ranked, RankedOpportunity{
			ID:                 opp.ID,
			Title:              opp.Title,
			Career:             opp.Career,
			Industry:           opp.Industry,
			SearchScore:        searchScore,
			CompatibilityScore: compat.Composite,
			FeedbackScore:      feedbackScore,
			Dimensions:         compat.Dimensions,
			FinalScore: searchScore*h.config.SearchWeight +
				compat.Composite*h.config.CompatibilityWeight +
				feedbackScore*h.config.FeedbackWeight,
		})
	}

	// Equal scores keep search order.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].FinalScore > ranked[j].FinalScore
	})

	maxItems := input.MaxItems
	if maxItems <= 0 || maxItems > h.config.MaxItems {
		maxItems = h.config.MaxItems
	}
	if len(ranked) > maxItems {
		ranked = ranked[:maxItems]
	}

	elapsed := time.Since(start)
	h.logger.Info("ranking completed", map[string]interface{}{
		"userId":      profile.UserID,
		"inputCount":  len(result.Hits),
		"outputCount": len(ranked),
		"durationMs":  elapsed.Milliseconds(),
	})
	if elapsed > h.config.SlowRankingThreshold {
		h.logger.Warn("ranking exceeded threshold", map[string]interface{}{
			"durationMs":  elapsed.Milliseconds(),
			"thresholdMs": h.config.SlowRankingThreshold.Milliseconds(),
		})
	}

	return &Output{
		RankedOpportunities: ranked,
		TotalHits:           result.TotalHits,
		FeedbackApplied:     applied,
	}, nil
}

// loadFeedback degrades to neutral feedback when the store is unavailable.
func (h *Handler) loadFeedback(ctx context.Context, userID string, hits []repository.OpportunityHit) (map[string][]models.Feedback, bool) {
	if h.feedback == nil || userID == "" || len(hits) == 0 {
		return nil, false
	}

	ids := make([]string, len(hits))
	for i, hit := range hits {
		ids[i] = hit.Opportunity.ID
	}

	feedback, err := h.feedback.ForOpportunities(ctx, userID, ids)
	if err != nil {
		h.logger.Warn("failed to load feedback, ranking without it", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, false
	}
	return feedback, true
}

func (h *Handler) searchError(ctx context.Context, err error) error {
	switch {
	case stderrors.Is(err, repository.ErrIndexNotFound):
		return errors.NewIndexNotFoundError(h.config.Index)
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		return errors.NewSearchTimeoutError(h.config.Index)
	case stderrors.Is(err, repository.ErrSearchUnavailable):
		return errors.NewElasticsearchConnectionFailedError(err)
	default:
		return errors.NewOpportunitySearchFailedError(err)
	}
}

func dedupe(hits []repository.OpportunityHit) []repository.OpportunityHit {
	seen := make(map[string]struct{}, len(hits))
	out := make([]repository.OpportunityHit, 0, len(hits))
	for _, hit := range hits {
		if _, ok := seen[hit.Opportunity.ID]; ok {
			continue
		}
		seen[hit.Opportunity.ID] = struct{}{}
		out = append(out, hit)
	}
	return out
}
