// internal/workers/skills/analyze-careers/handler.go

package analyzecareers

import (
	"context"
	"fmt"
	"time"

	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "analyze-careers"

type Handler struct {
	config   *Config
	logger   logger.Logger
	analyzer Analyzer
	profiles jobs.ProfileSource
	obs      *observability.Observability
	errors   *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Analyzer      Analyzer
	Profiles      jobs.ProfileSource
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Analyzer == nil {
		return nil, fmt.Errorf("%s: analyzer is required", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:   cfg,
		logger:   log,
		analyzer: opts.Analyzer,
		profiles: opts.Profiles,
		obs:      opts.Observability,
		errors:   errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Config() *Config {
	return h.config
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	ctx, tracker := jobs.Start(ctx, h.obs, TaskType, job)

	h.logger.Info("Processing career analysis", map[string]interface{}{
		"jobKey":             job.GetKey(),
		"processInstanceKey": job.GetProcessInstanceKey(),
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

// Execute prioritizes skills for every requested career the model knows.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	careers := dedupe(input.TargetCareers)
	if len(careers) == 0 {
		return nil, errors.NewValidationError("targetCareers", "at least one target career is required")
	}
	if len(careers) > h.config.MaxCareers {
		return nil, errors.NewValidationError("targetCareers",
			fmt.Sprintf("at most %d careers can be analyzed at once, got %d", h.config.MaxCareers, len(careers)))
	}

	profile, err := jobs.ResolveProfile(ctx, h.profiles, input.UserProfile, input.UserID)
	if err != nil {
		return nil, err
	}

	topK := input.TopK
	if topK <= 0 {
		topK = h.config.DefaultTopK
	}

	analysis, err := h.analyzer.Analyze(ctx, profile, careers, topK)
	if err != nil {
		return nil, jobs.RankingError(err)
	}

	skipped := []string{}
	for _, c := range careers {
		if _, ok := analysis[c]; !ok {
			skipped = append(skipped, c)
		}
	}

	output := &Output{
		RequestID:      uuid.NewString(),
		UserID:         profile.UserID,
		CareerAnalysis: reduce(analysis),
		SkippedCareers: skipped,
		GeneratedAt:    time.Now().UTC(),
	}

	h.logger.Info("Careers analyzed", map[string]interface{}{
		"requestId": output.RequestID,
		"userId":    output.UserID,
		"analyzed":  len(output.CareerAnalysis),
		"skipped":   skipped,
		"topK":      topK,
	})
	return output, nil
}
