// internal/engine/prioritizer/prioritizer_test.go

package prioritizer

import (
	"context"
	"errors"
	"sync"
	"testing"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine/catalog"
	"career-workers/internal/engine/features"
	"career-workers/internal/engine/model"
	"career-workers/internal/models"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

// funcModel scores each row with score and remembers the rows it saw.
type funcModel struct {
	mu    sync.Mutex
	score func(row []float64) float64
	rows  [][]float64
	err   error
}

func (m *funcModel) Predict(rows [][]float64) ([]float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.rows = append(m.rows, rows...)
	out := make([]float64, len(rows))
	for i, r := range rows {
		out[i] = m.score(r)
	}
	return out, nil
}

// importanceModel ranks purely by the skill_importance column.
func importanceModel() *funcModel {
	return &funcModel{score: func(row []float64) float64 { return row[2] }}
}

func constantModel(v float64) *funcModel {
	return &funcModel{score: func([]float64) float64 { return v }}
}

func testArtifact(fn model.ScoringFunction) *model.Artifact {
	return &model.Artifact{
		Version: "test",
		Model:   fn,
		// Statistics is deliberately absent from the encoder.
		SkillEncoder:   model.NewEncoder([]string{"Docker", "Excel", "Figma", "Git", "Java", "Kubernetes", "Python", "SQL"}),
		CareerEncoder:  model.NewEncoder([]string{"Data Scientist", "Software Engineer"}),
		FeatureColumns: features.Columns,
		AllSkills:      []string{"Python", "Java", "SQL", "Statistics", "Git", "Docker", "Kubernetes", "Figma", "Excel"},
		SkillsByCategory: []catalog.Category{
			{Name: "programming", Skills: []string{"Python", "Java", "SQL"}},
			{Name: "data_science", Skills: []string{"Python", "SQL", "Statistics"}},
			{Name: "cloud_devops", Skills: []string{"Git", "Docker", "Kubernetes"}},
			{Name: "design", Skills: []string{"Figma"}},
		},
		Careers: []string{"Data Scientist", "Software Engineer"},
	}
}

func newPrioritizer(t *testing.T, fn model.ScoringFunction) *Prioritizer {
	t.Helper()
	p, err := New(testArtifact(fn), Options{
		MarketDemand: features.ConstantMarketDemand(0.42),
		Logger:       logger.NewTestLogger(t),
	})
	require.NoError(t, err)
	return p
}

func testProfile() *models.UserProfile {
	return &models.UserProfile{
		Age:              26,
		CurrentSkills:    []string{"Python"},
		ExperienceYears:  2,
		AcademicScore:    75,
		LearningCapacity: 0.5,
	}
}

func skillsOf(results []models.SkillPriority) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Skill
	}
	return out
}

// ==========================
// Prioritize
// ==========================

func TestPrioritize(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	results, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.Equal(t, []string{"Git", "Java", "SQL"}, skillsOf(results))
	assert.Equal(t, models.SkillPriority{
		Skill:          "Git",
		PriorityScore:  0.9,
		Category:       "cloud_devops",
		Importance:     0.9,
		LearningEffort: models.EffortLow,
	}, results[0])
	assert.Equal(t, "programming", results[1].Category)
	assert.Equal(t, models.EffortMedium, results[1].LearningEffort)
}

func TestPrioritize_FullRanking(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	results, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 100)
	require.NoError(t, err)

	// SQL and Docker tie at 0.75 and keep catalog order; so do Figma and Excel.
	assert.Equal(t, []string{"Git", "Java", "SQL", "Docker", "Kubernetes", "Figma", "Excel"}, skillsOf(results))
	assert.Equal(t, catalog.Other, results[6].Category)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].PriorityScore, results[i].PriorityScore)
	}
}

func TestPrioritize_TiesKeepCatalogOrder(t *testing.T) {
	p := newPrioritizer(t, constantModel(0.5))

	results, err := p.Prioritize(context.Background(), testProfile(), "Data Scientist", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Java", "SQL", "Git", "Docker", "Kubernetes", "Figma", "Excel"}, skillsOf(results))
}

func TestPrioritize_DefaultTopK(t *testing.T) {
	var classes []string
	for i := 0; i < 15; i++ {
		classes = append(classes, string(rune('A'+i)))
	}
	a := testArtifact(constantModel(1))
	a.SkillEncoder = model.NewEncoder(classes)
	a.AllSkills = classes
	a.SkillsByCategory = nil

	p, err := New(a, Options{MarketDemand: features.ConstantMarketDemand(0.5)})
	require.NoError(t, err)

	results, err := p.Prioritize(context.Background(), &models.UserProfile{}, "Software Engineer", 0)
	require.NoError(t, err)
	assert.Len(t, results, DefaultTopK)
}

func TestPrioritize_AtMostK(t *testing.T) {
	p := newPrioritizer(t, importanceModel())
	for k := 1; k <= 9; k++ {
		results, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", k)
		require.NoError(t, err)
		assert.LessOrEqual(t, len(results), k)
	}
}

func TestPrioritize_AllSkillsKnown(t *testing.T) {
	p := newPrioritizer(t, importanceModel())
	profile := testProfile()
	profile.CurrentSkills = testArtifact(nil).AllSkills

	for _, k := range []int{1, 5, 10} {
		results, err := p.Prioritize(context.Background(), profile, "Software Engineer", k)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
}

func TestPrioritize_OnlyUnknownSkillsMissing(t *testing.T) {
	m := importanceModel()
	p := newPrioritizer(t, m)
	profile := testProfile()
	profile.CurrentSkills = []string{"Python", "Java", "SQL", "Git", "Docker", "Kubernetes", "Figma", "Excel"}

	results, err := p.Prioritize(context.Background(), profile, "Software Engineer", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
	assert.Empty(t, m.rows, "model must not be called with an empty batch")
}

func TestPrioritize_UnknownSkillExcluded(t *testing.T) {
	p := newPrioritizer(t, importanceModel())
	before := testutil.ToFloat64(metrics.SkillCandidatesExcluded)

	results, err := p.Prioritize(context.Background(), testProfile(), "Data Scientist", 20)
	require.NoError(t, err)

	assert.NotContains(t, skillsOf(results), "Statistics")
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.SkillCandidatesExcluded)-before)
}

func TestPrioritize_UnknownCareerScoredWithIndexZero(t *testing.T) {
	m := constantModel(0.3)
	p := newPrioritizer(t, m)

	results, err := p.Prioritize(context.Background(), testProfile(), "Astronaut", 3)
	require.NoError(t, err)
	require.Len(t, results, 3)

	require.NotEmpty(t, m.rows)
	for _, row := range m.rows {
		assert.Equal(t, 0.0, row[1], "career_index")
		assert.Equal(t, features.DefaultImportance, row[2])
	}
	for _, r := range results {
		assert.Equal(t, features.DefaultImportance, r.Importance)
	}
}

func TestPrioritize_UsesInjectedMarketDemand(t *testing.T) {
	m := constantModel(0.3)
	p := newPrioritizer(t, m)

	_, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 3)
	require.NoError(t, err)
	for _, row := range m.rows {
		assert.Equal(t, 0.42, row[3])
	}
}

func TestPrioritize_Deterministic(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	first, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 5)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 5)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPrioritize_Errors(t *testing.T) {
	t.Run("missing career", func(t *testing.T) {
		p := newPrioritizer(t, importanceModel())
		_, err := p.Prioritize(context.Background(), testProfile(), "", 3)
		assert.ErrorIs(t, err, ErrTargetCareerRequired)
	})

	t.Run("scoring failure is fatal", func(t *testing.T) {
		p := newPrioritizer(t, &funcModel{err: errors.New("corrupt tree")})
		results, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 3)
		assert.ErrorIs(t, err, model.ErrScoring)
		assert.Nil(t, results)
	})

	t.Run("cancelled context", func(t *testing.T) {
		p := newPrioritizer(t, importanceModel())
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := p.Prioritize(ctx, testProfile(), "Software Engineer", 3)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNew_RequiresArtifact(t *testing.T) {
	_, err := New(nil, Options{})
	assert.ErrorIs(t, err, ErrNoArtifact)

	_, err = New(&model.Artifact{}, Options{})
	assert.ErrorIs(t, err, ErrNoArtifact)
}

func TestPrioritize_Concurrent(t *testing.T) {
	p := newPrioritizer(t, importanceModel())
	want, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 5)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := p.Prioritize(context.Background(), testProfile(), "Software Engineer", 5)
			assert.NoError(t, err)
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}

// ==========================
// Analyze and catalog dump
// ==========================

func TestAnalyze(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	out, err := p.Analyze(context.Background(), testProfile(), []string{"Software Engineer", "Astronaut", "Data Scientist"}, 2)
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.NotContains(t, out, "Astronaut")
	assert.Equal(t, []string{"Git", "Java"}, skillsOf(out["Software Engineer"]))
	assert.Len(t, out["Data Scientist"], 2)
}

func TestAnalyze_DefaultTopK(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	out, err := p.Analyze(context.Background(), testProfile(), []string{"Software Engineer"}, 0)
	require.NoError(t, err)
	assert.Len(t, out["Software Engineer"], DefaultAnalyzeTopK)
}

func TestAnalyze_NoKnownCareers(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	out, err := p.Analyze(context.Background(), testProfile(), []string{"Astronaut"}, 3)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAvailableSkills(t *testing.T) {
	p := newPrioritizer(t, importanceModel())
	dump := p.AvailableSkills()

	assert.Equal(t, []string{"Python", "Java", "SQL", "Statistics", "Git", "Docker", "Kubernetes", "Figma", "Excel"}, dump.AllSkills)
	assert.Equal(t, []string{"Git", "Docker", "Kubernetes"}, dump.SkillsByCategory["cloud_devops"])
	assert.Equal(t, []string{"Data Scientist", "Software Engineer"}, dump.Careers)
}

// ==========================
// Learning effort
// ==========================

func TestEstimateEffort(t *testing.T) {
	p := newPrioritizer(t, importanceModel())

	tests := []struct {
		name     string
		skill    string
		capacity float64
		years    float64
		want     models.LearningEffort
	}{
		{"high, fast learner", "Machine Learning", 0.8, 0, models.EffortMedium},
		{"high, neither condition", "Machine Learning", 0.4, 2, models.EffortHigh},
		{"high, both conditions downgrade once", "Kubernetes", 0.95, 12, models.EffortMedium},
		{"high, experienced", "Kubernetes", 0.3, 6, models.EffortMedium},
		{"capacity boundary not downgraded", "Kubernetes", 0.7, 5, models.EffortHigh},
		{"unknown skill defaults to medium", "Basket Weaving", 0.2, 1, models.EffortMedium},
		{"medium downgrades to low", "Basket Weaving", 0.9, 1, models.EffortLow},
		{"low stays low", "Git", 0.9, 10, models.EffortLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			profile := &models.UserProfile{LearningCapacity: tt.capacity, ExperienceYears: tt.years}
			assert.Equal(t, tt.want, p.EstimateEffort(tt.skill, profile))
		})
	}
}

func TestEstimateEffort_CustomDifficulty(t *testing.T) {
	p, err := New(testArtifact(importanceModel()), Options{
		Difficulty: map[string]models.LearningEffort{"Git": models.EffortHigh},
	})
	require.NoError(t, err)
	assert.Equal(t, models.EffortHigh, p.EstimateEffort("Git", &models.UserProfile{}))
	assert.Equal(t, models.EffortMedium, p.EstimateEffort("Machine Learning", &models.UserProfile{}))
}
