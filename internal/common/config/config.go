// internal/common/config/config.go
package config

import (
	"fmt"
	"strings"
	"time"
)

// Config is the main application configuration struct.
type Config struct {
	App           AppConfig               `mapstructure:"app"`
	Camunda       CamundaConfig           `mapstructure:"camunda"`
	Database      DatabaseConfig          `mapstructure:"database"`
	Workers       map[string]WorkerConfig `mapstructure:"workers"`
	Logging       LoggingConfig           `mapstructure:"logging"`
	Ranking       RankingConfig           `mapstructure:"ranking"`
	Scoring       ScoringConfig           `mapstructure:"scoring"`
	Market        MarketConfig            `mapstructure:"market"`
	Notifications NotificationConfig      `mapstructure:"notifications"`
	Observability ObservabilityConfig     `mapstructure:"observability"`
}

// --- Core App/Infrastructure Config ---
type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	Port        int    `mapstructure:"port"` // health and metrics endpoint
}

type CamundaConfig struct {
	BrokerAddress  string `mapstructure:"broker_address"`
	MaxJobsActive  int    `mapstructure:"max_jobs_active"`
	Timeout        int    `mapstructure:"timeout"`         // milliseconds
	RequestTimeout int    `mapstructure:"request_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
	Redis         RedisConfig         `mapstructure:"redis"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type ElasticsearchConfig struct {
	Addresses        []string `mapstructure:"addresses"`
	URL              string   `mapstructure:"url"` // single-node shorthand for Addresses
	Username         string   `mapstructure:"username"`
	Password         string   `mapstructure:"password"`
	MaxRetries       int      `mapstructure:"max_retries"`
	OpportunityIndex string   `mapstructure:"opportunity_index"`
}

// Endpoints merges URL and Addresses, dropping blanks and duplicates.
// Unexpanded ${VAR} entries count as blank.
func (e ElasticsearchConfig) Endpoints() []string {
	seen := make(map[string]bool)
	var out []string
	for _, a := range append([]string{e.URL}, e.Addresses...) {
		a = strings.TrimSpace(a)
		if a == "" || strings.HasPrefix(a, "${") || seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}
	return out
}

type RedisConfig struct {
	Address      string `mapstructure:"address"`
	Password     string `mapstructure:"password"`
	DB           int    `mapstructure:"db"`
	PoolSize     int    `mapstructure:"pool_size"`
	MinIdleConns int    `mapstructure:"min_idle_conns"`
}

// WorkerConfig holds the core settings applicable to every worker.
type WorkerConfig struct {
	Enabled       bool `mapstructure:"enabled"`
	MaxJobsActive int  `mapstructure:"max_jobs_active"`
	Timeout       int  `mapstructure:"timeout"`     // milliseconds
	MaxRetries    int  `mapstructure:"max_retries"` // For error handling
}

// --- Domain Configuration Sections ---

// RankingConfig holds the skill ranking artifact and request defaults.
type RankingConfig struct {
	ArtifactPath     string        `mapstructure:"artifact_path"`
	DefaultTopK      int           `mapstructure:"default_top_k"`
	AnalyzeTopK      int           `mapstructure:"analyze_top_k"`
	MaxOpportunities int           `mapstructure:"max_opportunities"`
	ProfileCacheTTL  time.Duration `mapstructure:"profile_cache_ttl"`
}

// ScoringConfig overrides the built-in compatibility weights and the
// feedback time decay. Empty values keep the built-in tables.
type ScoringConfig struct {
	DimensionWeights map[string]float64 `mapstructure:"dimension_weights"`
	TimeDecay        struct {
		Factor     float64 `mapstructure:"factor"`
		MaxAgeDays *int    `mapstructure:"max_age_days"` // nil keeps the built-in cutoff
	} `mapstructure:"time_decay"`
}

// MarketConfig points at the redis hash holding skill demand signals.
type MarketConfig struct {
	RedisKey        string        `mapstructure:"redis_key"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
}

// NotificationConfig holds settings for the send-skill-plan worker.
type NotificationConfig struct {
	Email struct {
		Enabled   bool   `mapstructure:"enabled"`
		FromEmail string `mapstructure:"from_email"`
	} `mapstructure:"email"`
	SMS struct {
		Enabled  bool   `mapstructure:"enabled"`
		SenderID string `mapstructure:"sender_id"`
	} `mapstructure:"sms"`
	AWS struct {
		Region string `mapstructure:"region"`
	} `mapstructure:"aws"`
}

// ObservabilityConfig holds tracing settings. Tracing is off when
// JaegerEndpoint is empty.
type ObservabilityConfig struct {
	ServiceName    string  `mapstructure:"service_name"`
	JaegerEndpoint string  `mapstructure:"jaeger_endpoint"`
	SampleRatio    float64 `mapstructure:"sample_ratio"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
