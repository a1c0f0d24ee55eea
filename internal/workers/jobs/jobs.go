// internal/workers/jobs/jobs.go

// Package jobs holds the plumbing every worker handler shares: variable
// parsing, profile resolution, completion and per-job instrumentation.
package jobs

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"strings"
	"time"

	"career-workers/internal/common/errors"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/observability"
	"career-workers/internal/common/validation"
	"career-workers/internal/engine/prioritizer"
	"career-workers/internal/models"
	"career-workers/internal/repository"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Parse validates the job variables against schema and decodes them into dst.
func Parse(job entities.Job, schema validation.JSONSchema, dst interface{}) error {
	raw := job.GetVariables()
	if strings.TrimSpace(raw) == "" {
		raw = "{}"
	}

	result := validation.ValidateJSON(raw, schema)
	if !result.Valid {
		return errors.NewValidationError(result.FirstField(), strings.Join(result.GetErrorMessages(), "; "))
	}

	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return errors.NewValidationError("(root)", fmt.Sprintf("decode variables: %v", err))
	}
	return nil
}

// Complete sends the output as the job's result variables.
func Complete(ctx context.Context, client worker.JobClient, job entities.Job, output interface{}) error {
	cmd, err := client.NewCompleteJobCommand().
		JobKey(job.GetKey()).
		VariablesFromObject(output)
	if err != nil {
		return fmt.Errorf("create complete job command: %w", err)
	}
	if _, err := cmd.Send(ctx); err != nil {
		return fmt.Errorf("send complete job command: %w", err)
	}
	return nil
}

// ProfileSource loads stored profiles by user id.
type ProfileSource interface {
	Get(ctx context.Context, userID string) (*models.UserProfile, error)
}

// ResolveProfile prefers an inline profile and otherwise loads userID.
// An inline profile without a user id gets a copy carrying userID; the
// caller's value is left as is.
func ResolveProfile(ctx context.Context, src ProfileSource, inline *models.UserProfile, userID string) (*models.UserProfile, error) {
	if inline != nil {
		if inline.UserID != "" || userID == "" {
			return inline, nil
		}
		withID := *inline
		withID.UserID = userID
		return &withID, nil
	}
	if userID == "" {
		return nil, errors.NewValidationError("userProfile", "either userProfile or userId is required")
	}
	if src == nil {
		return nil, errors.NewValidationError("userProfile", "profile lookup is not configured; pass userProfile inline")
	}

	profile, err := src.Get(ctx, userID)
	if err != nil {
		return nil, LookupError(ctx, userID, err)
	}
	return profile, nil
}

// LookupError maps a failed profile or contact read onto the worker error
// codes.
func LookupError(ctx context.Context, userID string, err error) error {
	var netErr net.Error
	switch {
	case stderrors.Is(err, repository.ErrProfileNotFound):
		return errors.NewProfileNotFoundError(userID)
	case stderrors.Is(ctx.Err(), context.DeadlineExceeded):
		return errors.NewQueryTimeoutError("user lookup")
	case stderrors.Is(err, driver.ErrBadConn), stderrors.As(err, &netErr):
		return errors.NewDatabaseConnectionFailedError(err)
	default:
		return errors.NewProfileLookupFailedError(userID, err)
	}
}

// RankingError maps a prioritizer failure onto the worker error codes.
func RankingError(err error) error {
	if err == nil {
		return nil
	}
	if stderrors.Is(err, prioritizer.ErrTargetCareerRequired) {
		return errors.NewValidationError("targetCareer", err.Error())
	}
	if _, ok := errors.AsStandardError(err); ok {
		return err
	}
	return errors.NewScoringFailedError(err)
}

// Tracker records the metrics and span of one job.
type Tracker struct {
	taskType string
	obs      *observability.Observability
	span     trace.Span
	start    time.Time
	ctx      context.Context
}

// Start marks the job active and opens its span.
func Start(ctx context.Context, obs *observability.Observability, taskType string, job entities.Job) (context.Context, *Tracker) {
	metrics.WorkerJobsActive.WithLabelValues(taskType).Inc()

	ctx, span := obs.StartSpan(ctx, taskType,
		attribute.Int64("job.key", job.GetKey()),
		attribute.Int64("process.instance.key", job.GetProcessInstanceKey()),
	)
	return ctx, &Tracker{
		taskType: taskType,
		obs:      obs,
		span:     span,
		start:    time.Now(),
		ctx:      ctx,
	}
}

// Done records the outcome. Call it exactly once.
func (t *Tracker) Done(err error) {
	defer metrics.WorkerJobsActive.WithLabelValues(t.taskType).Dec()
	defer t.span.End()

	elapsed := time.Since(t.start)
	status := "success"
	if err != nil {
		status = "failed"
		code := string(errors.ErrCodeInternal)
		if stdErr, ok := errors.AsStandardError(err); ok {
			code = string(stdErr.Code)
		}
		metrics.WorkerJobsFailed.WithLabelValues(t.taskType, code).Inc()
		t.span.RecordError(err)
		t.span.SetStatus(codes.Error, code)
	} else {
		metrics.WorkerJobsCompleted.WithLabelValues(t.taskType).Inc()
		t.span.SetStatus(codes.Ok, "")
	}

	metrics.WorkerJobDuration.WithLabelValues(t.taskType).Observe(elapsed.Seconds())
	t.obs.RecordJobProcessed(t.ctx, t.taskType, status)
	t.obs.RecordJobDuration(t.ctx, t.taskType, elapsed, status)
}
