// cmd/worker-manager/workers.go

package main

import (
	"fmt"

	awsclient "career-workers/internal/common/aws"
	"career-workers/internal/common/camunda"
	"career-workers/internal/common/config"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/observability"
	"career-workers/internal/engine/compatibility"
	"career-workers/internal/engine/prioritizer"
	"career-workers/internal/engine/tables"
	"career-workers/internal/repository"

	ssp "career-workers/internal/workers/communication/send-skill-plan"
	cc "career-workers/internal/workers/opportunity/calculate-compatibility"
	ro "career-workers/internal/workers/opportunity/rank-opportunities"
	ac "career-workers/internal/workers/skills/analyze-careers"
	las "career-workers/internal/workers/skills/list-available-skills"
	ps "career-workers/internal/workers/skills/prioritize-skills"
)

// dependencies is the context object shared by every handler. It is built
// once in main and never stored globally.
type dependencies struct {
	cfg           *config.Config
	log           logger.Logger
	obs           *observability.Observability
	ranker        *prioritizer.Prioritizer
	evaluator     *compatibility.Evaluator
	timeDecay     tables.TimeDecay
	profiles      *repository.ProfileStore
	feedback      *repository.FeedbackStore
	opportunities *repository.OpportunityStore
	ses           awsclient.SESAPI
	sns           awsclient.SNSAPI
}

func registerWorkers(w *camunda.Workers, d *dependencies) error {
	// Skill Workers (3)
	{
		handler, err := ps.NewHandler(ps.HandlerOptions{
			AppConfig:     d.cfg,
			Ranker:        d.ranker,
			Profiles:      d.profiles,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", ps.TaskType, err)
		}
		w.Start(ps.TaskType, config.GetWorkerConfig(d.cfg, ps.TaskType), handler.Handle)
	}
	{
		handler, err := ac.NewHandler(ac.HandlerOptions{
			AppConfig:     d.cfg,
			Analyzer:      d.ranker,
			Profiles:      d.profiles,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", ac.TaskType, err)
		}
		w.Start(ac.TaskType, config.GetWorkerConfig(d.cfg, ac.TaskType), handler.Handle)
	}
	{
		handler, err := las.NewHandler(las.HandlerOptions{
			AppConfig:     d.cfg,
			Catalog:       d.ranker,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", las.TaskType, err)
		}
		w.Start(las.TaskType, config.GetWorkerConfig(d.cfg, las.TaskType), handler.Handle)
	}

	// Opportunity Workers (2)
	{
		handler, err := cc.NewHandler(cc.HandlerOptions{
			AppConfig:     d.cfg,
			Evaluator:     d.evaluator,
			Profiles:      d.profiles,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", cc.TaskType, err)
		}
		w.Start(cc.TaskType, config.GetWorkerConfig(d.cfg, cc.TaskType), handler.Handle)
	}
	{
		handler, err := ro.NewHandler(ro.HandlerOptions{
			AppConfig:     d.cfg,
			Search:        d.opportunities,
			Feedback:      d.feedback,
			Evaluator:     d.evaluator,
			Profiles:      d.profiles,
			TimeDecay:     d.timeDecay,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", ro.TaskType, err)
		}
		w.Start(ro.TaskType, config.GetWorkerConfig(d.cfg, ro.TaskType), handler.Handle)
	}

	// Communication Workers (1)
	{
		handler, err := ssp.NewHandler(ssp.HandlerOptions{
			AppConfig:     d.cfg,
			Contacts:      d.profiles,
			Profiles:      d.profiles,
			Ranker:        d.ranker,
			SES:           d.ses,
			SNS:           d.sns,
			Observability: d.obs,
			Logger:        d.log,
		})
		if err != nil {
			return fmt.Errorf("create %s handler: %w", ssp.TaskType, err)
		}
		w.Start(ssp.TaskType, config.GetWorkerConfig(d.cfg, ssp.TaskType), handler.Handle)
	}

	return nil
}
