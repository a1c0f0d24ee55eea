// internal/common/config/config_test.go

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const baseYAML = `
camunda:
  broker_address: localhost:26500
database:
  postgres:
    host: localhost
    database: careers
    user: careers
  elasticsearch:
    addresses:
      - http://localhost:9200
  redis:
    address: localhost:6379
workers:
  prioritize-skills:
    enabled: true
  send-skill-plan:
    enabled: false
    timeout: 45000
`

const validYAML = baseYAML + `
ranking:
  artifact_path: ./artifacts/skill_ranker.json
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadFromFile_Defaults(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, validYAML))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.App.Port)
	assert.Equal(t, 10, cfg.Camunda.MaxJobsActive)
	assert.Equal(t, "disable", cfg.Database.Postgres.SSLMode)
	assert.Equal(t, []string{"http://localhost:9200"}, cfg.Database.Elasticsearch.Endpoints())
	assert.Equal(t, 3, cfg.Database.Elasticsearch.MaxRetries)
	assert.Equal(t, 10, cfg.Database.Redis.PoolSize)
	assert.Equal(t, "opportunities", cfg.Database.Elasticsearch.OpportunityIndex)

	assert.Equal(t, 10, cfg.Ranking.DefaultTopK)
	assert.Equal(t, 5, cfg.Ranking.AnalyzeTopK)
	assert.Equal(t, 20, cfg.Ranking.MaxOpportunities)
	assert.Equal(t, 15*time.Minute, cfg.Ranking.ProfileCacheTTL)
	assert.Equal(t, "market:demand", cfg.Market.RedisKey)
	assert.Equal(t, 5*time.Minute, cfg.Market.RefreshInterval)
	assert.Equal(t, 1.0, cfg.Observability.SampleRatio)
	assert.Empty(t, cfg.Scoring.DimensionWeights)
	assert.Nil(t, cfg.Scoring.TimeDecay.MaxAgeDays)
}

func TestLoadFromFile_ZeroMaxAgeDays(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, validYAML+`
scoring:
  time_decay:
    max_age_days: 0
`))
	require.NoError(t, err)
	require.NotNil(t, cfg.Scoring.TimeDecay.MaxAgeDays)
	assert.Equal(t, 0, *cfg.Scoring.TimeDecay.MaxAgeDays)
}

func TestLoadFromFile_Workers(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, validYAML))
	require.NoError(t, err)

	w := GetWorkerConfig(cfg, "prioritize-skills")
	assert.True(t, w.Enabled)
	assert.Equal(t, 5, w.MaxJobsActive)
	assert.Equal(t, 30000, w.Timeout)

	assert.False(t, IsWorkerEnabled(cfg, "send-skill-plan"))
	assert.Equal(t, 45*time.Second, GetDuration(GetWorkerConfig(cfg, "send-skill-plan").Timeout))
	assert.True(t, IsWorkerEnabled(cfg, "not-configured"))
	assert.Equal(t, 3, GetWorkerConfig(cfg, "not-configured").MaxRetries)
}

func TestLoadFromFile_ScoringSection(t *testing.T) {
	cfg, err := LoadFromFile(writeConfig(t, validYAML+`
scoring:
  dimension_weights:
    personal: 0.4
    cultural: 0.2
    economic: 0.2
    geographic: 0.1
    social: 0.1
  time_decay:
    factor: 0.9
    max_age_days: 30
market:
  refresh_interval: 30s
`))
	require.NoError(t, err)

	assert.InDelta(t, 0.4, cfg.Scoring.DimensionWeights["personal"], 1e-9)
	assert.Equal(t, 0.9, cfg.Scoring.TimeDecay.Factor)
	require.NotNil(t, cfg.Scoring.TimeDecay.MaxAgeDays)
	assert.Equal(t, 30, *cfg.Scoring.TimeDecay.MaxAgeDays)
	assert.Equal(t, 30*time.Second, cfg.Market.RefreshInterval)
}

func TestLoadFromFile_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_ARTIFACT_PATH", "/srv/models/ranker.cbor")

	cfg, err := LoadFromFile(writeConfig(t, baseYAML+`
ranking:
  artifact_path: ${TEST_ARTIFACT_PATH}
`))
	require.NoError(t, err)
	assert.Equal(t, "/srv/models/ranker.cbor", cfg.Ranking.ArtifactPath)
}

func TestLoadFromFile_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{
			name:    "missing artifact path",
			body:    baseYAML + "ranking:\n  artifact_path: \"\"\n",
			wantErr: "ranking.artifact_path is required",
		},
		{
			name:    "weights do not sum to one",
			body:    validYAML + "scoring:\n  dimension_weights:\n    personal: 0.9\n    social: 0.9\n",
			wantErr: "must sum to 1.0",
		},
		{
			name:    "decay factor above one",
			body:    validYAML + "scoring:\n  time_decay:\n    factor: 1.5\n",
			wantErr: "time_decay.factor",
		},
		{
			name:    "negative max age",
			body:    validYAML + "scoring:\n  time_decay:\n    max_age_days: -1\n",
			wantErr: "max_age_days must not be negative",
		},
		{
			name:    "negative top k",
			body:    baseYAML + "ranking:\n  artifact_path: a.json\n  default_top_k: -1\n",
			wantErr: "must not be negative",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFromFile(writeConfig(t, tt.body))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadFromFile_MissingFile(t *testing.T) {
	_, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestGetDSN(t *testing.T) {
	p := PostgresConfig{Host: "db", Port: 5432, User: "u", Password: "p", Database: "careers", SSLMode: "disable"}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=careers sslmode=disable", p.GetDSN())
}

func TestElasticsearchEndpoints(t *testing.T) {
	e := ElasticsearchConfig{
		URL:       "http://es-1:9200",
		Addresses: []string{"http://es-1:9200", " ", "${ELASTICSEARCH_URL}", "http://es-2:9200"},
	}
	assert.Equal(t, []string{"http://es-1:9200", "http://es-2:9200"}, e.Endpoints())
	assert.Empty(t, ElasticsearchConfig{}.Endpoints())
}
