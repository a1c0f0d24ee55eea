// internal/common/errors/handler.go
package errors

import (
	"context"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
)

// ErrorHandler reports a failed job back to the engine. Retryable errors
// fail the job so the broker re-delivers it; everything else, and retryable
// errors that used up their budget, is thrown as a BPMN error so the
// process can route on the code.
type ErrorHandler struct {
	logger Logger
}

type Logger interface {
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

func NewErrorHandler(logger Logger) *ErrorHandler {
	return &ErrorHandler{logger: logger}
}

// HandleJobError normalizes err and fails or throws the job.
func (h *ErrorHandler) HandleJobError(ctx context.Context, client worker.JobClient, job entities.Job, err error) {
	stdErr := h.normalizeError(err)
	bpmnErr := ConvertToBPMNError(stdErr)

	remaining, retry := retryDecision(stdErr, job.Retries)
	if retry {
		h.log(true, job, stdErr, bpmnErr, remaining)
		h.failJob(ctx, client, job, bpmnErr, remaining)
		return
	}

	h.log(false, job, stdErr, bpmnErr, 0)
	h.throwBPMNError(ctx, client, job, bpmnErr)
}

// retryDecision returns the retries left after this attempt and whether the
// job should be failed for re-delivery. The per-code budget caps what the
// broker reports.
func retryDecision(stdErr *StandardError, jobRetries int32) (int, bool) {
	if !stdErr.Retryable {
		return 0, false
	}
	budget := GetRetryCount(stdErr.Code)
	if int(jobRetries) < budget {
		budget = int(jobRetries)
	}
	remaining := budget - 1
	if remaining <= 0 {
		return 0, false
	}
	return remaining, true
}

// normalizeError ensures we always have a StandardError
func (h *ErrorHandler) normalizeError(err error) *StandardError {
	if stdErr, ok := AsStandardError(err); ok {
		return stdErr
	}
	return NewInternalError(err)
}

func (h *ErrorHandler) failJob(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError, remaining int) {
	cmd := client.NewFailJobCommand().
		JobKey(job.Key).
		Retries(int32(remaining)).
		ErrorMessage(bpmnErr.Message)

	withVars, err := cmd.VariablesFromMap(bpmnErr.ToErrorVariables())
	if err != nil {
		_, err = cmd.Send(ctx)
	} else {
		_, err = withVars.Send(ctx)
	}
	h.sendFailed("fail job", job, err)
}

func (h *ErrorHandler) throwBPMNError(ctx context.Context, client worker.JobClient, job entities.Job, bpmnErr *BPMNError) {
	cmd := client.NewThrowErrorCommand().
		JobKey(job.Key).
		ErrorCode(bpmnErr.Code).
		ErrorMessage(bpmnErr.Message)

	withVars, err := cmd.VariablesFromMap(bpmnErr.ToErrorVariables())
	if err != nil {
		_, err = cmd.Send(ctx)
	} else {
		_, err = withVars.Send(ctx)
	}
	h.sendFailed("throw error", job, err)
}

func (h *ErrorHandler) sendFailed(command string, job entities.Job, err error) {
	if err == nil || h.logger == nil {
		return
	}
	h.logger.Error("could not report job failure to the broker", map[string]interface{}{
		"command": command,
		"jobKey":  job.Key,
		"jobType": job.Type,
		"error":   err.Error(),
	})
}

func (h *ErrorHandler) log(retrying bool, job entities.Job, stdErr *StandardError, bpmnErr *BPMNError, remaining int) {
	if h.logger == nil {
		return
	}
	fields := map[string]interface{}{
		"jobKey":           job.Key,
		"jobType":          job.Type,
		"errorCode":        string(stdErr.Code),
		"bpmnErrorCode":    bpmnErr.Code,
		"message":          bpmnErr.Message,
		"details":          stdErr.Details,
		"errorCategory":    GetErrorCategory(stdErr.Code),
		"workflowInstance": job.ProcessInstanceKey,
	}
	if retrying {
		fields["retriesLeft"] = remaining
		h.logger.Warn("job failed, broker will retry", fields)
		return
	}
	h.logger.Error("job failed", fields)
}
