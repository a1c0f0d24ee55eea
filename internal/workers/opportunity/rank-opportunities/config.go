// internal/workers/opportunity/rank-opportunities/config.go

package rankopportunities

import (
	"fmt"
	"math"
	"time"

	"career-workers/internal/common/config"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"
)

type Config struct {
	Enabled       bool          `mapstructure:"enabled"`
	MaxJobsActive int           `mapstructure:"max_jobs_active"`
	Timeout       time.Duration `mapstructure:"timeout"`
	// MaxItems caps the ranked list; SearchSize caps the candidates fetched.
	MaxItems   int    `mapstructure:"max_items"`
	SearchSize int    `mapstructure:"search_size"`
	Index      string `mapstructure:"index"`

	SearchWeight        float64 `mapstructure:"search_weight"`
	CompatibilityWeight float64 `mapstructure:"compatibility_weight"`
	FeedbackWeight      float64 `mapstructure:"feedback_weight"`

	SlowRankingThreshold time.Duration `mapstructure:"slow_ranking_threshold"`
}

func DefaultConfig() *Config {
	return &Config{
		Enabled:              true,
		MaxJobsActive:        5,
		Timeout:              15 * time.Second,
		MaxItems:             20,
		SearchSize:           50,
		Index:                "opportunities",
		SearchWeight:         0.4,
		CompatibilityWeight:  0.4,
		FeedbackWeight:       0.2,
		SlowRankingThreshold: 500 * time.Millisecond,
	}
}

func (c *Config) Validate() error {
	err := ozzo.ValidateStruct(c,
		ozzo.Field(&c.MaxJobsActive, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.Timeout, ozzo.Required, ozzo.Min(time.Millisecond)),
		ozzo.Field(&c.MaxItems, ozzo.Required, ozzo.Min(1)),
		ozzo.Field(&c.SearchSize, ozzo.Required, ozzo.Min(1), ozzo.Max(100)),
		ozzo.Field(&c.Index, ozzo.Required),
		ozzo.Field(&c.SearchWeight, ozzo.Min(0.0), ozzo.Max(1.0)),
		ozzo.Field(&c.CompatibilityWeight, ozzo.Min(0.0), ozzo.Max(1.0)),
		ozzo.Field(&c.FeedbackWeight, ozzo.Min(0.0), ozzo.Max(1.0)),
	)
	if err != nil {
		return err
	}
	if sum := c.SearchWeight + c.CompatibilityWeight + c.FeedbackWeight; math.Abs(sum-1) > 1e-6 {
		return fmt.Errorf("ranking weights must sum to 1, got %.4f", sum)
	}
	return nil
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
	if appCfg.Ranking.MaxOpportunities > 0 {
		cfg.MaxItems = appCfg.Ranking.MaxOpportunities
	}
	if idx := appCfg.Database.Elasticsearch.OpportunityIndex; idx != "" {
		cfg.Index = idx
	}
	return cfg
}
