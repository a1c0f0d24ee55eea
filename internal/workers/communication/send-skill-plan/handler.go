// internal/workers/communication/send-skill-plan/handler.go

package sendskillplan

import (
	"context"
	"fmt"
	"time"

	awsclient "career-workers/internal/common/aws"
	"career-workers/internal/common/config"
	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/observability"
	"career-workers/internal/workers/jobs"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/worker"
	"github.com/google/uuid"
)

const TaskType = "send-skill-plan"

type Handler struct {
	config    *Config
	logger    logger.Logger
	contacts  ContactSource
	profiles  jobs.ProfileSource
	ranker    Ranker
	sesClient awsclient.SESAPI
	snsClient awsclient.SNSAPI
	obs       *observability.Observability
	errors    *errors.ErrorHandler
}

type HandlerOptions struct {
	AppConfig     *config.Config
	CustomConfig  *Config
	Contacts      ContactSource
	Profiles      jobs.ProfileSource
	Ranker        Ranker
	SES           awsclient.SESAPI
	SNS           awsclient.SNSAPI
	Observability *observability.Observability
	Logger        logger.Logger
}

func NewHandler(opts HandlerOptions) (*Handler, error) {
	cfg := createConfigFromAppConfig(opts.AppConfig, opts.CustomConfig)
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration for %s: %w", TaskType, err)
	}
	if opts.Contacts == nil {
		return nil, fmt.Errorf("%s: contact source is required", TaskType)
	}
	if cfg.EmailEnabled && opts.SES == nil {
		return nil, fmt.Errorf("%s: e-mail enabled without an SES client", TaskType)
	}
	if cfg.SMSEnabled && opts.SNS == nil {
		return nil, fmt.Errorf("%s: SMS enabled without an SNS client", TaskType)
	}

	log := opts.Logger
	if log == nil {
		log = logger.NewStructured("info", "json")
	}
	log = log.WithFields(map[string]interface{}{"taskType": TaskType})

	return &Handler{
		config:    cfg,
		logger:    log,
		contacts:  opts.Contacts,
		profiles:  opts.Profiles,
		ranker:    opts.Ranker,
		sesClient: opts.SES,
		snsClient: opts.SNS,
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

// Execute delivers the user's skill plan by e-mail, plus an SMS summary
// for users who opted in.
func (h *Handler) Execute(ctx context.Context, input *Input) (*Output, error) {
	if input.UserID == "" {
		return nil, errors.NewValidationError("userId", "userId is required")
	}

	notificationID := input.RequestID
	if notificationID == "" {
		notificationID = uuid.NewString()
	}
	output := &Output{
		NotificationID: notificationID,
		Status:         StatusDisabled,
		SentAt:         time.Now().UTC().Format(time.RFC3339),
	}
	if !h.config.EmailEnabled && !h.config.SMSEnabled {
		h.logger.Info("notifications disabled by configuration", nil)
		return output, nil
	}

	contact, err := h.contacts.Contact(ctx, input.UserID)
	if err != nil {
		return nil, jobs.LookupError(ctx, input.UserID, err)
	}

	canEmail := h.config.EmailEnabled && contact.Email != ""
	canSMS := h.config.SMSEnabled && contact.SMSOptedIn && contact.Phone != ""
	if !canEmail && !canSMS {
		return nil, errors.NewContactUnavailableError(input.UserID)
	}

	data, err := h.plan(ctx, input)
	if err != nil {
		return nil, err
	}
	output.SkillCount = len(data.Skills)

	if canEmail {
		subject, text, html, err := renderEmail(data)
		if err != nil {
			return nil, errors.NewInternalError(fmt.Errorf("render skill plan: %w", err))
		}
		msg := awsclient.EmailInput(h.config.FromEmail, contact.Email, subject, text, html)
		if _, err := h.sesClient.SendEmail(ctx, msg); err != nil {
			metrics.NotificationsSent.WithLabelValues("email", "failed").Inc()
			return nil, errors.NewNotificationSendFailedError("email", err)
		}
		metrics.NotificationsSent.WithLabelValues("email", "sent").Inc()
		output.EmailSent = true
	}

	if canSMS {
		msg := awsclient.SMSInput(contact.Phone, smsText(data), h.config.SenderID)
		if _, err := h.snsClient.Publish(ctx, msg); err != nil {
			metrics.NotificationsSent.WithLabelValues("sms", "failed").Inc()
			if !output.EmailSent {
				return nil, errors.NewNotificationSendFailedError("sms", err)
			}
			h.logger.Warn("sms send failed, e-mail already delivered", map[string]interface{}{
				"userId": input.UserID,
				"error":  err.Error(),
			})
		} else {
			metrics.NotificationsSent.WithLabelValues("sms", "sent").Inc()
			output.SMSSent = true
		}
	}

	output.Status = StatusSent
	if canEmail && canSMS && !(output.EmailSent && output.SMSSent) {
		output.Status = StatusPartial
	}

	h.logger.Info("skill plan sent", map[string]interface{}{
		"notificationId": output.NotificationID,
		"userId":         input.UserID,
		"emailSent":      output.EmailSent,
		"smsSent":        output.SMSSent,
		"skills":         output.SkillCount,
	})
	return output, nil
}

// plan uses the skills passed in, or prioritizes them for the target career.
func (h *Handler) plan(ctx context.Context, input *Input) (planData, error) {
	data := planData{TargetCareer: input.TargetCareer, Skills: input.PrioritySkills}
	if len(data.Skills) > 0 {
		return data, nil
	}

	if input.TargetCareer == "" {
		return data, errors.NewValidationError("prioritySkills", "prioritySkills or targetCareer is required")
	}
	if h.ranker == nil {
		return data, errors.NewValidationError("prioritySkills", "prioritySkills is required")
	}

	profile, err := jobs.ResolveProfile(ctx, h.profiles, nil, input.UserID)
	if err != nil {
		return data, err
	}
	skills, err := h.ranker.Prioritize(ctx, profile, input.TargetCareer, h.config.PlanSize)
	if err != nil {
		return data, jobs.RankingError(err)
	}
	data.Skills = skills
	return data, nil
}
