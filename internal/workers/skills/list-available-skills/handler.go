// internal/workers/skills/list-available-skills/handler.go

package listavailableskills

import (
	"context"
	"fmt"
	"strings"

	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/models"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

const TaskType = "list-available-skills"

// Catalog is the read-only catalog view of the prioritizer.
type Catalog interface {
	AvailableSkills() models.SkillCatalogDump
}

type Handler struct {
	config  *Config
	logger  logger.Logger
	catalog Catalog
	obs     *observability.Observability
	errors  *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Catalog       Catalog
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Catalog == nil {
		return nil, fmt.Errorf("%s: catalog is required", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:  cfg,
		logger:  log,
		catalog: opts.Catalog,
		obs:     opts.Observability,
		errors:  errors.NewErrorHandler(log),
	}, nil
}

func (h *Handler) Config() *Config {
	return h.config
}

func (h *Handler) Handle(client worker.JobClient, job entities.Job) {
	ctx, cancel := context.WithTimeout(context.Background(), h.config.Timeout)
	defer cancel()

	ctx, tracker := jobs.Start(ctx, h.obs, TaskType, job)

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

func (h *Handler) Execute(_ context.Context, input *Input) (*Output, error) {
	dump := h.catalog.AvailableSkills()

	category := strings.TrimSpace(input.Category)
	if category == "" {
		return &Output{
			SkillsByCategory: dump.SkillsByCategory,
			AllSkills:        dump.AllSkills,
			Careers:          dump.Careers,
			TotalSkills:      len(dump.AllSkills),
		}, nil
	}

	skills, ok := dump.SkillsByCategory[category]
	if !ok {
		h.logger.Debug("unknown category requested", map[string]interface{}{"category": category})
		skills = []string{}
	}
	return &Output{
		SkillsByCategory: map[string][]string{category: skills},
		AllSkills:        skills,
		Careers:          dump.Careers,
		TotalSkills:      len(skills),
	}, nil
}
