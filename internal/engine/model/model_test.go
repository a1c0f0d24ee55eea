// internal/engine/model/model_test.go

package model

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"career-workers/internal/engine/features"
	"career-workers/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

const gbdtArtifact = "testdata/skill_ranker.json"

func loadTestArtifact(t *testing.T) *Artifact {
	t.Helper()
	a, err := Load(gbdtArtifact)
	require.NoError(t, err)
	return a
}

// mutateArtifact rewrites the test artifact through fn and returns its JSON.
func mutateArtifact(t *testing.T, fn func(doc map[string]interface{})) []byte {
	t.Helper()
	data, err := os.ReadFile(gbdtArtifact)
	require.NoError(t, err)

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &doc))
	fn(doc)

	out, err := json.Marshal(doc)
	require.NoError(t, err)
	return out
}

type failingModel struct{}

func (failingModel) Predict([][]float64) ([]float64, error) {
	return nil, errors.New("tree evaluation exploded")
}

type shortModel struct{}

func (shortModel) Predict(rows [][]float64) ([]float64, error) {
	return make([]float64, len(rows)-1), nil
}

// ==========================
// Load
// ==========================

func TestLoad_JSON(t *testing.T) {
	a := loadTestArtifact(t)

	assert.Equal(t, "2024.06-test", a.Version)
	assert.Equal(t, features.Columns, a.FeatureColumns)
	assert.Len(t, a.AllSkills, 28)
	assert.Len(t, a.SkillsByCategory, 6)
	assert.True(t, a.KnowsCareer("Software Engineer"))
	assert.False(t, a.KnowsCareer("Astronaut"))

	idx, ok := a.SkillEncoder.Index("Git")
	require.True(t, ok)
	assert.Equal(t, 9, idx)

	_, ok = a.SkillEncoder.Index("Terraform")
	assert.False(t, ok, "test artifact leaves Terraform out of the encoder")

	idx, ok = a.CareerEncoder.Index("Software Engineer")
	require.True(t, ok)
	assert.Equal(t, 4, idx)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrArtifactNotFound)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_CBOR(t *testing.T) {
	data, err := os.ReadFile(gbdtArtifact)
	require.NoError(t, err)

	encoded, err := JSONToCBOR(data)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "skill_ranker.cbor")
	require.NoError(t, os.WriteFile(path, encoded, 0o600))

	fromCBOR, err := Load(path)
	require.NoError(t, err)
	fromJSON := loadTestArtifact(t)

	assert.Equal(t, fromJSON.Version, fromCBOR.Version)
	assert.Equal(t, fromJSON.AllSkills, fromCBOR.AllSkills)
	assert.Equal(t, fromJSON.SkillsByCategory, fromCBOR.SkillsByCategory)
	assert.Equal(t, fromJSON.SkillEncoder.Classes(), fromCBOR.SkillEncoder.Classes())

	rows := [][]float64{
		{9, 4, 0.9, 0.8, 0.3, 0.4, 0.5, 0.8, 0.7},
		{1, 0, 0.5, 0.6, 0.7, 0.0, 0.1, 0.6, 0.3},
	}
	want, err := fromJSON.Model.Predict(rows)
	require.NoError(t, err)
	got, err := fromCBOR.Model.Predict(rows)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestParseCBOR_Garbage(t *testing.T) {
	_, err := ParseCBOR([]byte{0xff, 0x00, 0x13})
	assert.ErrorIs(t, err, ErrArtifactInvalid)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(doc map[string]interface{})
	}{
		{"missing careers", func(doc map[string]interface{}) { delete(doc, "careers") }},
		{"missing skill encoder", func(doc map[string]interface{}) { delete(doc, "skillEncoder") }},
		{"missing model", func(doc map[string]interface{}) { delete(doc, "model") }},
		{"missing skills by category", func(doc map[string]interface{}) { delete(doc, "skillsByCategory") }},
		{"unsupported model type", func(doc map[string]interface{}) {
			doc["model"] = map[string]interface{}{"type": "neural"}
		}},
		{"gbdt without trees", func(doc map[string]interface{}) {
			doc["model"] = map[string]interface{}{"type": "gbdt", "baseScore": 0.1}
		}},
		{"linear with wrong width", func(doc map[string]interface{}) {
			doc["model"] = map[string]interface{}{"type": "linear", "coefficients": []float64{1, 2}}
		}},
		{"unknown feature column", func(doc map[string]interface{}) {
			doc["featureColumns"] = []string{"skill_index", "salary"}
		}},
		{"tree child points backwards", func(doc map[string]interface{}) {
			doc["model"] = map[string]interface{}{
				"type": "gbdt",
				"trees": []interface{}{
					map[string]interface{}{"nodes": []interface{}{
						map[string]interface{}{"feature": 2, "threshold": 0.5, "left": 0, "right": 1},
						map[string]interface{}{"leaf": 0.1},
					}},
				},
			}
		}},
		{"tree feature out of range", func(doc map[string]interface{}) {
			doc["model"] = map[string]interface{}{
				"type": "gbdt",
				"trees": []interface{}{
					map[string]interface{}{"nodes": []interface{}{
						map[string]interface{}{"feature": 42, "threshold": 0.5, "left": 1, "right": 2},
						map[string]interface{}{"leaf": 0.1},
						map[string]interface{}{"leaf": 0.2},
					}},
				},
			}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(mutateArtifact(t, tt.mutate))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrArtifactInvalid)
			assert.NotErrorIs(t, err, ErrArtifactNotFound)
		})
	}
}

func TestParse_NotJSON(t *testing.T) {
	_, err := Parse([]byte("not json"))
	assert.ErrorIs(t, err, ErrArtifactInvalid)
}

func TestArtifact_Catalog(t *testing.T) {
	c := loadTestArtifact(t).Catalog()

	assert.Equal(t, "cloud_devops", c.CategoryOf("Git"))
	assert.Equal(t, "programming", c.CategoryOf("Python"))
	assert.Equal(t, "programming", c.CategoryOf("JavaScript"), "first declared category wins")
	assert.Contains(t, c.AllSkills(), "Terraform")
	assert.Len(t, c.AllSkills(), 28)
}

// ==========================
// Scoring functions
// ==========================

func TestGBDT_Predict(t *testing.T) {
	a := loadTestArtifact(t)

	scores, err := a.Model.Predict([][]float64{
		{9, 4, 0.9, 0.8, 0.3, 0.4, 0.5, 0.8, 0.7},
		{1, 0, 0.5, 0.6, 0.7, 0.0, 0.1, 0.6, 0.3},
		{1, 0, 0.8, 0.6, 0.7, 0.1, 0.1, 0.6, 0.3},
	})
	require.NoError(t, err)
	require.Len(t, scores, 3)

	assert.InDelta(t, 0.85, scores[0], 1e-9)
	assert.InDelta(t, 0.35, scores[1], 1e-9)
	assert.InDelta(t, 0.50, scores[2], 1e-9)
}

func TestGBDT_RowWidthMismatch(t *testing.T) {
	a := loadTestArtifact(t)
	_, err := a.Model.Predict([][]float64{{1, 2, 3}})
	assert.Error(t, err)
}

func TestLinear_Predict(t *testing.T) {
	a, err := Load("testdata/linear.json")
	require.NoError(t, err)

	scores, err := a.Model.Predict([][]float64{{0, 0, 0.9, 0.8, 0.3, 0.4, 0, 0, 0}})
	require.NoError(t, err)
	assert.InDelta(t, 0.8, scores[0], 1e-9)

	_, err = a.Model.Predict([][]float64{{1}})
	assert.Error(t, err)
}

func TestPredict_Deterministic(t *testing.T) {
	a := loadTestArtifact(t)
	rows := [][]float64{{3, 1, 0.75, 0.9, 0.2, 0.6, 0.3, 0.7, 0.8}}

	first, err := a.Model.Predict(rows)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := a.Model.Predict(rows)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

// ==========================
// Adapter
// ==========================

func TestAdapter_ScoreBatch(t *testing.T) {
	a := loadTestArtifact(t)
	b := features.NewBuilder(a.SkillEncoder, a.CareerEncoder, a.Catalog(), features.ConstantMarketDemand(0.8))
	profile := &models.UserProfile{
		CurrentSkills:    []string{"Docker", "Linux"},
		ExperienceYears:  5,
		AcademicScore:    80,
		LearningCapacity: 0.7,
	}

	git, ok := b.Build("Git", "Software Engineer", profile)
	require.True(t, ok)
	figma, ok := b.Build("Figma", "Software Engineer", profile)
	require.True(t, ok)

	scores, err := NewAdapter(a.Model).ScoreBatch([]features.Vector{git, figma}, a.FeatureColumns)
	require.NoError(t, err)
	require.Len(t, scores, 2)
	assert.InDelta(t, 0.85, scores[0], 1e-9)
	assert.InDelta(t, 0.55, scores[1], 1e-9)

	reversed, err := NewAdapter(a.Model).ScoreBatch([]features.Vector{figma, git}, a.FeatureColumns)
	require.NoError(t, err)
	assert.Equal(t, []float64{scores[1], scores[0]}, reversed, "scores follow input order")
}

func TestAdapter_ScoreBatch_Empty(t *testing.T) {
	scores, err := NewAdapter(failingModel{}).ScoreBatch(nil, features.Columns)
	assert.NoError(t, err)
	assert.Empty(t, scores)
}

func TestAdapter_ScoreBatch_Errors(t *testing.T) {
	a := loadTestArtifact(t)
	b := features.NewBuilder(a.SkillEncoder, a.CareerEncoder, a.Catalog(), features.ConstantMarketDemand(0.8))
	v, ok := b.Build("Git", "Software Engineer", &models.UserProfile{})
	require.True(t, ok)

	_, err := NewAdapter(a.Model).ScoreBatch([]features.Vector{v}, []features.Column{"skill_index", "salary"})
	assert.ErrorIs(t, err, ErrUnknownColumn)

	_, err = NewAdapter(failingModel{}).ScoreBatch([]features.Vector{v}, features.Columns)
	assert.ErrorIs(t, err, ErrScoring)

	_, err = NewAdapter(shortModel{}).ScoreBatch([]features.Vector{v, v}, features.Columns)
	assert.ErrorIs(t, err, ErrScoring)
}

func TestEncoder(t *testing.T) {
	e := NewEncoder([]string{"b", "a", "b"})
	i, ok := e.Index("a")
	assert.True(t, ok)
	assert.Equal(t, 1, i)
	i, _ = e.Index("b")
	assert.Equal(t, 0, i, "first occurrence wins")
	assert.Equal(t, 3, e.Len())
	_, ok = e.Index("c")
	assert.False(t, ok)
}
