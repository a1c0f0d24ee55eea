// internal/workers/skills/analyze-careers/config.go

package analyzecareers

import (
	"time"

	"career-workers/internal/common/config"
	"career-workers/internal/engine/prioritizer"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	DefaultTopK   int           `mapstructure:"default_top_k"`
	MaxCareers    int           `mapstructure:"max_careers"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:       true,
		MaxJobsActive: 5,
		Timeout:       30 * time.Second,
		DefaultTopK:   prioritizer.DefaultAnalyzeTopK,
		MaxCareers:    20,
	}
}

func (c *Config) Validate() error {
	return ozzo.ValidateStruct(c,
		ozzo.Field(&c.MaxJobsActive, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.Timeout, ozzo.Required, ozzo.Min(time.Millisecond)),
		ozzo.Field(&c.DefaultTopK, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.MaxCareers, ozzo.Required, ozzo.Min(1)),
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
	if appCfg.Ranking.AnalyzeTopK > 0 {
		cfg.DefaultTopK = appCfg.Ranking.AnalyzeTopK
	}
	return cfg
}
