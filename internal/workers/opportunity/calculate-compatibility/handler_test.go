// internal/workers/opportunity/calculate-compatibility/handler_test.go

package calculatecompatibility

import (
	"context"
	"testing"

	"career-workers/internal/common/errors"
	"career-workers/internal/common/logger"
	"career-workers/internal/engine/compatibility"
	"career-workers/internal/engine/tables"
	"career-workers/internal/models"
	"career-workers/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// ==========================
// Test Helpers
// ==========================

type MockProfiles struct {
	mock.Mock
}

func (m *MockProfiles) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserProfile), args.Error(1)
}

func createTestProfile() *models.UserProfile {
	return &models.UserProfile{
		Age:                 28,
		ExperienceYears:     5,
		AcademicScore:       80,
		LearningCapacity:    0.8,
		EducationLevel:      "masters",
		CulturalContext:     "Progressive",
		EconomicBracket:     "middle",
		InfrastructureLevel: "developed",
		AreaType:            "urban",
		FamilyBackground:    "technical",
		Languages:           []string{"English"},
	}
}

func createTestOpportunity() models.Opportunity {
	return models.Opportunity{
		ID:        "opp-1",
		Title:     "Backend Engineer",
		Career:    "Software Engineer",
		Industry:  "technology",
		AreaType:  "suburban",
		Language:  "english",
		Seniority: "mid",
	}
}

func newTestHandler(t *testing.T, profiles *MockProfiles) *Handler {
	t.Helper()
	opts := HandlerOptions{
		CustomConfig: DefaultConfig(),
		Evaluator:    compatibility.New(tables.Default(), logger.NewTestLogger(t)),
		Logger:       logger.NewTestLogger(t),
	}
	if profiles != nil {
		opts.Profiles = profiles
	}
	h, err := NewHandler(opts)
	require.NoError(t, err)
	return h
}

// ==========================
// Core Functionality Tests
// ==========================

func TestHandler_Execute_WithProvidedProfile(t *testing.T) {
	h := newTestHandler(t, nil)

	out, err := h.Execute(context.Background(), &Input{
		UserProfile: createTestProfile(),
		Opportunity: createTestOpportunity(),
	})
	require.NoError(t, err)

	assert.Equal(t, "opp-1", out.OpportunityID)
	assert.InDelta(t, 0.8925, out.CompatibilityScore, 1e-9)
	assert.Len(t, out.Dimensions, 5)
	assert.Equal(t, tables.UserMidCareer, out.UserType)
	assert.Equal(t, MatchStrong, out.MatchLevel)
	assert.Greater(t, out.Readiness, 0.0)
	assert.LessOrEqual(t, out.Readiness, 1.0)
}

func TestHandler_Execute_UnknownLabelsAreNeutral(t *testing.T) {
	h := newTestHandler(t, nil)

	out, err := h.Execute(context.Background(), &Input{
		UserProfile: &models.UserProfile{Age: 40, ExperienceYears: 12, EconomicBracket: "galactic"},
		Opportunity: models.Opportunity{ID: "opp-2", Industry: "underwater basket weaving"},
	})
	require.NoError(t, err)

	assert.InDelta(t, 0.5, out.Dimensions[tables.DimensionEconomic], 1e-9)
	for dim, score := range out.Dimensions {
		assert.GreaterOrEqual(t, score, 0.0, dim)
		assert.LessOrEqual(t, score, 1.0, dim)
	}
}

func TestHandler_Execute_LoadsStoredProfile(t *testing.T) {
	profiles := new(MockProfiles)
	stored := createTestProfile()
	stored.UserID = "user-7"
	profiles.On("Get", mock.Anything, "user-7").Return(stored, nil)

	out, err := newTestHandler(t, profiles).Execute(context.Background(), &Input{
		UserID:      "user-7",
		Opportunity: createTestOpportunity(),
	})
	require.NoError(t, err)
	assert.Equal(t, "user-7", out.UserID)
	profiles.AssertExpectations(t)
}

func TestHandler_Execute_Errors(t *testing.T) {
	profiles := new(MockProfiles)
	profiles.On("Get", mock.Anything, "missing").Return(nil, repository.ErrProfileNotFound)
	h := newTestHandler(t, profiles)

	tests := []struct {
		name     string
		input    *Input
		wantCode errors.ErrorCode
	}{
		{
			name:     "missing opportunity id",
			input:    &Input{UserProfile: createTestProfile()},
			wantCode: errors.ErrCodeValidation,
		},
		{
			name:     "unknown user",
			input:    &Input{UserID: "missing", Opportunity: createTestOpportunity()},
			wantCode: errors.ErrCodeProfileNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(context.Background(), tt.input)
			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

func TestConfig_LevelOf(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		score float64
		want  MatchLevel
	}{
		{0.9, MatchStrong},
		{0.75, MatchStrong},
		{0.6, MatchModerate},
		{0.5, MatchModerate},
		{0.2, MatchWeak},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, cfg.levelOf(tt.score), "score %.2f", tt.score)
	}
}

func TestConfig_Validate(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())

	cfg.StrongMatch = 0.4
	assert.Error(t, cfg.Validate(), "strong band below weak band")

	cfg = DefaultConfig()
	cfg.StrongMatch = 1.2
	assert.Error(t, cfg.Validate())
}
