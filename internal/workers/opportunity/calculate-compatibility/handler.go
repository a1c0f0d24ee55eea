// internal/workers/opportunity/calculate-compatibility/handler.go

package calculatecompatibility

import (
	"context"
	"fmt"
	"strings"

	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "calculate-compatibility"

type Handler struct {
	config    *Config
	logger    logger.Logger
	evaluator Evaluator
	profiles  jobs.ProfileSource
	obs       *observability.Observability
	errors    *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Evaluator     Evaluator
	Profiles      jobs.ProfileSource
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Evaluator == nil {
		return nil, fmt.Errorf("%s: evaluator is required", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:    cfg,
		logger:    log,
		evaluator: opts.Evaluator,
		profiles:  opts.Profiles,
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

// Execute scores one opportunity for the user across the five dimensions.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if strings.TrimSpace(input.Opportunity.ID) == "" {
		return nil, errors.NewValidationError("opportunity.id", "opportunity id is required")
	}

	profile, err := jobs.ResolveProfile(ctx, h.profiles, input.UserProfile, input.UserID)
	if err != nil {
		return nil, err
	}

	result := h.evaluator.Evaluate(profile, &input.Opportunity)
	output := &Output{
		OpportunityID:      input.Opportunity.ID,
		UserID:             profile.UserID,
		CompatibilityScore: result.Composite,
		Dimensions:         result.Dimensions,
		UserType:           result.UserType,
		Readiness:          h.evaluator.Readiness(profile, result.UserType),
		MatchLevel:         h.config.levelOf(result.Composite),
	}

	h.logger.Info("compatibility calculated", map[string]interface{}{
		"userId":        output.UserID,
		"opportunityId": output.OpportunityID,
		"score":         output.CompatibilityScore,
		"dimensions":    output.Dimensions,
		"matchLevel":    output.MatchLevel,
	})
	return output, nil
}
