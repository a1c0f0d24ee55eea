// internal/workers/opportunity/calculate-compatibility/config.go

package calculatecompatibility

import (
	"time"

	"career-workers/internal/common/config"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	// StrongMatch and WeakMatch bound the composite score bands.
	StrongMatch float64 `mapstructure:"strong_match"`
	WeakMatch   float64 `mapstructure:"weak_match"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 10,
		Timeout:       10 * time.Second,
		StrongMatch:   0.75,
		WeakMatch:     0.5,
	}
}

func (c *Config) Validate() error {
	return ozzo.ValidateStruct(c,
		ozzo.Field(&c.MaxJobsActive, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.Timeout, ozzo.Required, ozzo.Min(time.Millisecond)),
		ozzo.Field(&c.StrongMatch, ozzo.Required, ozzo.Max(1.0), ozzo.Min(c.WeakMatch)),
		ozzo.Field(&c.WeakMatch, ozzo.Min(0.0)),
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
	return cfg
}
