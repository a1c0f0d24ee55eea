// internal/workers/skills/prioritize-skills/handler.go

package prioritizeskills

import (
	"context"
	"fmt"
	"strings"
	"time"

	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/models"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "prioritize-skills"

type Handler struct {
	config   *Config
	logger   logger.Logger
	ranker   Ranker
	profiles jobs.ProfileSource
	obs      *observability.Observability
	errors   *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Ranker        Ranker
	Profiles      jobs.ProfileSource
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Ranker == nil {
		return nil, fmt.Errorf("%s: ranker is required", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:   cfg,
		logger:   log,
		ranker:   opts.Ranker,
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

	h.logger.Info("Processing skill prioritization", map[string]interface{}{
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

// Execute ranks the skills the user is missing for the target career.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	career := strings.TrimSpace(input.TargetCareer)
	if career == "" {
		return nil, errors.NewValidationError("targetCareer", "targetCareer is required")
	}

	profile, err := jobs.ResolveProfile(ctx, h.profiles, input.UserProfile, input.UserID)
	if err != nil {
		return nil, err
	}

	topK := input.TopK
	if topK <= 0 {
		topK = h.config.DefaultTopK
	}

	skills, err := h.ranker.Prioritize(ctx, profile, career, topK)
	if err != nil {
		return nil, jobs.RankingError(err)
	}
	if skills == nil {
		skills = []models.SkillPriority{}
	}

	output := &Output{
		RequestID:      uuid.NewString(),
		UserID:         profile.UserID,
		TargetCareer:   career,
		PrioritySkills: skills,
		GeneratedAt:    time.Now().UTC(),
	}

	h.logger.Info("Skills prioritized", map[string]interface{}{
		"requestId":    output.RequestID,
		"userId":       output.UserID,
		"targetCareer": career,
		"returned":     len(skills),
		"topK":         topK,
	})
	return output, nil
}
