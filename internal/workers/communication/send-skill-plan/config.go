// internal/workers/communication/send-skill-plan/config.go

package sendskillplan

import (
	"time"

	"career-workers/internal/common/config"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`

	EmailEnabled bool   `mapstructure:"email_enabled"`
	FromEmail    string `mapstructure:"from_email"`
	SMSEnabled   bool   `mapstructure:"sms_enabled"`
	SenderID     string `mapstructure:"sender_id"`
	// PlanSize is how many skills the plan lists when none are passed in.
	PlanSize int `mapstructure:"plan_size"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30 * time.Second,
		EmailEnabled:  true,
		FromEmail:     "no-reply@career-workers.local",
		SMSEnabled:    false,
		PlanSize:      5,
	}
}

func (c *Config) Validate() error {
	return ozzo.ValidateStruct(c,
		ozzo.Field(&c.MaxJobsActive, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.Timeout, ozzo.Required, ozzo.Min(time.Millisecond)),
		ozzo.Field(&c.FromEmail, ozzo.When(c.EmailEnabled, ozzo.Required, is.EmailFormat)),
		ozzo.Field(&c.SenderID, ozzo.Length(0, 11)),
		ozzo.Field(&c.PlanSize, ozzo.Required, ozzo.Min(1), ozzo.Max(20)),
	)
}

func createConfigFromAppConfig(appCfg *config.Config, custom *Config) *Config {
	if custom != nil {
		return custom
	}

	cfg := DefaultConfig()
	if appCfg == nil {
		return cfg
	}

	wc := config.GetWorkerConfig(appCfg, TaskType)
	cfg.Enabled = wc.Enabled
	if wc.MaxJobsActive > 0 {
		cfg.MaxJobsActive = wc.MaxJobsActive
	}
	if wc.Timeout > 0 {
		cfg.Timeout = config.GetDuration(wc.Timeout)
	}

	n := appCfg.Notifications
	cfg.EmailEnabled = n.Email.Enabled
	if n.Email.FromEmail != "" {
		cfg.FromEmail = n.Email.FromEmail
	}
	cfg.SMSEnabled = n.SMS.Enabled
	cfg.SenderID = n.SMS.SenderID
	return cfg
}
