// internal/workers/jobs/jobs_test.go

package jobs

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"net"
	"testing"
	"time"

	"career-workers/internal/common/errors"
	"career-workers/internal/common/metrics"
	"career-workers/internal/common/validation"
	"career-workers/internal/engine/prioritizer"
	"career-workers/internal/models"
	"career-workers/internal/repository"

	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Helpers
// ==========================

func createMockJob(key int64, variables map[string]interface{}) entities.Job {
	variablesJSON, _ := json.Marshal(variables)
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               "jobs-test",
		ProcessInstanceKey: key * 10,
		Retries:            3,
		CustomHeaders:      "{}",
		Variables:          string(variablesJSON),
	}}
}

type stubProfiles struct {
	profile *models.UserProfile
	err     error
	calls   int
}

func (s *stubProfiles) Get(_ context.Context, _ string) (*models.UserProfile, error) {
	s.calls++
	return s.profile, s.err
}

type parsed struct {
	TargetCareer string              `json:"targetCareer"`
	TopK         int                 `json:"topK"`
	UserProfile  *models.UserProfile `json:"userProfile"`
}

func testSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"targetCareer"},
		Properties: map[string]validation.Property{
			"targetCareer": {Type: "string", MinLength: validation.Int(1)},
			"topK":         {Type: "integer", Minimum: validation.Float(1)},
			"userProfile":  ProfileProperty(),
		},
	}
}

// ==========================
// Parse
// ==========================

func TestParse(t *testing.T) {
	job := createMockJob(1, map[string]interface{}{
		"targetCareer": "Data Scientist",
		"topK":         3,
		"userProfile": map[string]interface{}{
			"currentSkills":    []string{"Python"},
			"learningCapacity": 0.8,
			"academicScore":    85,
		},
		"unrelatedProcessVariable": true,
	})

	var in parsed
	require.NoError(t, Parse(job, testSchema(), &in))
	assert.Equal(t, "Data Scientist", in.TargetCareer)
	assert.Equal(t, 3, in.TopK)
	require.NotNil(t, in.UserProfile)
	assert.Equal(t, []string{"Python"}, in.UserProfile.CurrentSkills)
	assert.Equal(t, 85.0, in.UserProfile.AcademicScore)
}

func TestParse_ValidationErrors(t *testing.T) {
	tests := []struct {
		name      string
		variables map[string]interface{}
		wantField string
	}{
		{
			name:      "missing required",
			variables: map[string]interface{}{"topK": 3},
			wantField: "targetCareer",
		},
		{
			name:      "wrong type",
			variables: map[string]interface{}{"targetCareer": "Data Scientist", "topK": "three"},
			wantField: "topK",
		},
		{
			name: "profile out of range",
			variables: map[string]interface{}{
				"targetCareer": "Data Scientist",
				"userProfile":  map[string]interface{}{"learningCapacity": 1.5},
			},
			wantField: "userProfile.learningCapacity",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in parsed
			err := Parse(createMockJob(2, tt.variables), testSchema(), &in)
			require.Error(t, err)

			stdErr, ok := errors.AsStandardError(err)
			require.True(t, ok)
			assert.Equal(t, errors.ErrCodeValidation, stdErr.Code)
			assert.Equal(t, tt.wantField, stdErr.Metadata["field"])
		})
	}
}

func TestParse_EmptyVariables(t *testing.T) {
	job := entities.Job{ActivatedJob: &pb.ActivatedJob{Key: 3, Variables: ""}}

	var in parsed
	err := Parse(job, testSchema(), &in)
	require.Error(t, err)
	stdErr, ok := errors.AsStandardError(err)
	require.True(t, ok)
	assert.Equal(t, "targetCareer", stdErr.Metadata["field"])
}

// ==========================
// ResolveProfile
// ==========================

func TestResolveProfile(t *testing.T) {
	stored := &models.UserProfile{UserID: "u-1", CurrentSkills: []string{"SQL"}}

	t.Run("inline wins", func(t *testing.T) {
		src := &stubProfiles{profile: stored}
		inline := &models.UserProfile{CurrentSkills: []string{"Python"}}

		got, err := ResolveProfile(context.Background(), src, inline, "u-1")
		require.NoError(t, err)
		assert.Equal(t, "u-1", got.UserID)
		assert.Equal(t, []string{"Python"}, got.CurrentSkills)
		assert.Empty(t, inline.UserID, "inline profile must not be modified")
		assert.Zero(t, src.calls)
	})

	t.Run("inline with id is returned as is", func(t *testing.T) {
		inline := &models.UserProfile{UserID: "u-9", CurrentSkills: []string{"Go"}}

		got, err := ResolveProfile(context.Background(), nil, inline, "u-1")
		require.NoError(t, err)
		assert.Same(t, inline, got)
		assert.Equal(t, "u-9", got.UserID)
	})

	t.Run("loaded by id", func(t *testing.T) {
		src := &stubProfiles{profile: stored}

		got, err := ResolveProfile(context.Background(), src, nil, "u-1")
		require.NoError(t, err)
		assert.Same(t, stored, got)
		assert.Equal(t, 1, src.calls)
	})

	t.Run("neither given", func(t *testing.T) {
		_, err := ResolveProfile(context.Background(), &stubProfiles{}, nil, "")
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeValidation, stdErr.Code)
	})

	t.Run("no store configured", func(t *testing.T) {
		_, err := ResolveProfile(context.Background(), nil, nil, "u-1")
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeValidation, stdErr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		src := &stubProfiles{err: repository.ErrProfileNotFound}
		_, err := ResolveProfile(context.Background(), src, nil, "u-404")
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeProfileNotFound, stdErr.Code)
		assert.False(t, stdErr.Retryable)
	})

	t.Run("lookup failure", func(t *testing.T) {
		src := &stubProfiles{err: stderrors.New("connection reset")}
		_, err := ResolveProfile(context.Background(), src, nil, "u-1")
		stdErr, ok := errors.AsStandardError(err)
		require.True(t, ok)
		assert.Equal(t, errors.ErrCodeProfileLookupFailed, stdErr.Code)
		assert.True(t, stdErr.Retryable)
	})
}

func TestLookupError(t *testing.T) {
	expired, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	tests := []struct {
		name     string
		ctx      context.Context
		err      error
		wantCode errors.ErrorCode
	}{
		{"not found", context.Background(), fmt.Errorf("%w: u-1", repository.ErrProfileNotFound), errors.ErrCodeProfileNotFound},
		{"deadline passed", expired, stderrors.New("canceling statement"), errors.ErrCodeQueryTimeout},
		{"bad connection", context.Background(), fmt.Errorf("query profile u-1: %w", driver.ErrBadConn), errors.ErrCodeDatabaseConnectionFailed},
		{"network error", context.Background(), &net.OpError{Op: "dial", Net: "tcp", Err: stderrors.New("connection refused")}, errors.ErrCodeDatabaseConnectionFailed},
		{"anything else", context.Background(), stderrors.New("scan failed"), errors.ErrCodeProfileLookupFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdErr, ok := errors.AsStandardError(LookupError(tt.ctx, "u-1", tt.err))
			require.True(t, ok)
			assert.Equal(t, tt.wantCode, stdErr.Code)
		})
	}
}

// ==========================
// Tracker
// ==========================

func TestTracker_Done(t *testing.T) {
	const okType = "jobs-test-success"
	const failType = "jobs-test-failure"

	_, tracker := Start(context.Background(), nil, okType, createMockJob(4, nil))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(okType)))
	tracker.Done(nil)

	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.WorkerJobsActive.WithLabelValues(okType)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(okType)))

	_, tracker = Start(context.Background(), nil, failType, createMockJob(5, nil))
	tracker.Done(errors.NewValidationError("targetCareer", "required"))
	_, tracker = Start(context.Background(), nil, failType, createMockJob(6, nil))
	tracker.Done(stderrors.New("boom"))

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(failType, string(errors.ErrCodeValidation))))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.WorkerJobsFailed.WithLabelValues(failType, string(errors.ErrCodeInternal))))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.WorkerJobsCompleted.WithLabelValues(failType)))
}

func TestRankingError(t *testing.T) {
	assert.NoError(t, RankingError(nil))

	stdErr, ok := errors.AsStandardError(RankingError(prioritizer.ErrTargetCareerRequired))
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeValidation, stdErr.Code)

	stdErr, ok = errors.AsStandardError(RankingError(stderrors.New("feature column mismatch")))
	require.True(t, ok)
	assert.Equal(t, errors.ErrCodeScoringFailed, stdErr.Code)

	notFound := errors.NewProfileNotFoundError("u-1")
	assert.Same(t, notFound, RankingError(notFound))
}
