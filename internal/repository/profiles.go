// internal/repository/profiles.go

// Package repository holds the stores the workers read profiles,
// opportunities, feedback and market signals from.
package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

var ErrProfileNotFound = errors.New("profile not found")

const profileCachePrefix = "user:profile:"

const profileQuery = `
	SELECT age, current_skills, experience_years, academic_score, learning_capacity,
	       cultural_context, economic_bracket, infrastructure_level, area_type,
	       education_level, family_background, languages
	FROM users WHERE id = $1`

const contactQuery = `SELECT email, phone, sms_opt_in FROM users WHERE id = $1`

// ProfileStore reads user profiles from Postgres through a Redis cache.
type ProfileStore struct {
	db     *sql.DB
	redis  *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

func NewProfileStore(db *sql.DB, rdb *redis.Client, ttl time.Duration, log logger.Logger) *ProfileStore {
	return &ProfileStore{
		db:     db,
		redis:  rdb,
		ttl:    ttl,
		logger: log.WithFields(map[string]interface{}{"store": "profiles"}),
	}
}

func profileCacheKey(userID string) string {
	return profileCachePrefix + userID
}

// Get returns the profile for userID. A cache failure falls through to the
// database; a missing row returns ErrProfileNotFound.
func (s *ProfileStore) Get(ctx context.Context, userID string) (*models.UserProfile, error) {
	if profile, ok := s.cached(ctx, userID); ok {
		return profile, nil
	}

	var (
		profile                           models.UserProfile
		skills, languages                 []byte
		cultural, economic, infra, area   sql.NullString
		education, family                 sql.NullString
		experience, academic, learningCap sql.NullFloat64
		age                               sql.NullInt64
	)
	err := s.db.QueryRowContext(ctx, profileQuery, userID).Scan(
		&age, &skills, &experience, &academic, &learningCap,
		&cultural, &economic, &infra, &area,
		&education, &family, &languages,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("query profile %s: %w", userID, err)
	}

	profile.UserID = userID
	profile.Age = int(age.Int64)
	profile.ExperienceYears = experience.Float64
	profile.AcademicScore = academic.Float64
	profile.LearningCapacity = learningCap.Float64
	profile.CulturalContext = cultural.String
	profile.EconomicBracket = economic.String
	profile.InfrastructureLevel = infra.String
	profile.AreaType = area.String
	profile.EducationLevel = education.String
	profile.FamilyBackground = family.String
	profile.CurrentSkills = decodeStrings(skills)
	profile.Languages = decodeStrings(languages)

	s.store(ctx, &profile)
	return &profile, nil
}

func (s *ProfileStore) cached(ctx context.Context, userID string) (*models.UserProfile, bool) {
	if s.redis == nil {
		return nil, false
	}
	val, err := s.redis.Get(ctx, profileCacheKey(userID)).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			s.logger.Warn("profile cache read failed", map[string]interface{}{
				"userId": userID,
				"error":  err.Error(),
			})
		}
		return nil, false
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(val), &profile); err != nil {
		s.logger.Warn("discarding corrupt cached profile", map[string]interface{}{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, false
	}
	return &profile, true
}

func (s *ProfileStore) store(ctx context.Context, profile *models.UserProfile) {
	if s.redis == nil {
		return
	}
	data, err := json.Marshal(profile)
	if err != nil {
		return
	}
	if err := s.redis.Set(ctx, profileCacheKey(profile.UserID), data, s.ttl).Err(); err != nil {
		s.logger.Warn("profile cache write failed", map[string]interface{}{
			"userId": profile.UserID,
			"error":  err.Error(),
		})
	}
}

// Invalidate drops the cached copy of a profile.
func (s *ProfileStore) Invalidate(ctx context.Context, userID string) error {
	if s.redis == nil {
		return nil
	}
	return s.redis.Del(ctx, profileCacheKey(userID)).Err()
}

// Contact returns the delivery details for userID.
func (s *ProfileStore) Contact(ctx context.Context, userID string) (*models.UserContact, error) {
	var email, phone sql.NullString
	var optIn sql.NullBool

	err := s.db.QueryRowContext(ctx, contactQuery, userID).Scan(&email, &phone, &optIn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, userID)
	}
	if err != nil {
		return nil, fmt.Errorf("query contact %s: %w", userID, err)
	}

	return &models.UserContact{
		UserID:     userID,
		Email:      email.String,
		Phone:      phone.String,
		SMSOptedIn: optIn.Bool,
	}, nil
}

func decodeStrings(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}
