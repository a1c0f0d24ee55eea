// internal/engine/prioritizer/prioritizer.go

// Package prioritizer ranks the skills a user is missing for a target career.
package prioritizer

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"time"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine/catalog"
	"career-workers/internal/engine/features"
	"career-workers/internal/engine/model"
	"career-workers/internal/models"
)

const (
	DefaultTopK        = 10
	DefaultAnalyzeTopK = 5
)

var (
	ErrTargetCareerRequired = errors.New("target career is required")
	ErrNoArtifact           = errors.New("ranking artifact is required")
)

type Options struct {
	// MarketDemand defaults to features.RandomMarketDemand.
	MarketDemand features.MarketDemandFunc
	Logger       logger.Logger
	// Catalog defaults to the catalog described by the artifact.
	Catalog *catalog.Catalog
	// Difficulty defaults to DefaultDifficulty.
	Difficulty map[string]models.LearningEffort
}

// Prioritizer is safe for concurrent use. It holds only read-only state.
type Prioritizer struct {
	artifact   *model.Artifact
	catalog    *catalog.Catalog
	builder    *features.Builder
	adapter    *model.Adapter
	difficulty map[string]models.LearningEffort
	logger     logger.Logger
}

func New(a *model.Artifact, opts Options) (*Prioritizer, error) {
	if a == nil || a.Model == nil || a.SkillEncoder == nil || a.CareerEncoder == nil {
		return nil, ErrNoArtifact
	}

	cat := opts.Catalog
	if cat == nil {
		cat = a.Catalog()
	}
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	difficulty := opts.Difficulty
	if difficulty == nil {
		difficulty = DefaultDifficulty
	}

	return &Prioritizer{
		artifact:   a,
		catalog:    cat,
		builder:    features.NewBuilder(a.SkillEncoder, a.CareerEncoder, cat, opts.MarketDemand),
		adapter:    model.NewAdapter(a.Model),
		difficulty: difficulty,
		logger:     log.WithFields(map[string]interface{}{"artifactVersion": a.Version}),
	}, nil
}

type candidate struct {
	skill string
	score float64
}

// Prioritize returns at most topK missing skills for career, best first.
// Equal scores keep catalog order. A topK of zero or less means DefaultTopK.
func (p *Prioritizer) Prioritize(ctx context.Context, profile *models.UserProfile, career string, topK int) ([]models.SkillPriority, error) {
	if career == "" {
		return nil, ErrTargetCareerRequired
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if topK <= 0 {
		topK = DefaultTopK
	}

	start := time.Now()
	known := p.artifact.KnowsCareer(career)
	defer func() {
		metrics.SkillPrioritizationDuration.WithLabelValues(strconv.FormatBool(known)).Observe(time.Since(start).Seconds())
	}()

	missing := p.missingSkills(profile)
	if len(missing) == 0 {
		return []models.SkillPriority{}, nil
	}

	skills := make([]string, 0, len(missing))
	vectors := make([]features.Vector, 0, len(missing))
	for _, skill := range missing {
		v, ok := p.builder.Build(skill, career, profile)
		if !ok {
			metrics.SkillCandidatesExcluded.Inc()
			p.logger.Debug("skill unknown to encoder, excluded", map[string]interface{}{"skill": skill})
			continue
		}
		skills = append(skills, skill)
		vectors = append(vectors, v)
	}
	if len(vectors) == 0 {
		return []models.SkillPriority{}, nil
	}

	scores, err := p.adapter.ScoreBatch(vectors, p.artifact.FeatureColumns)
	if err != nil {
		return nil, fmt.Errorf("score %d candidates for %q: %w", len(vectors), career, err)
	}

	ranked := make([]candidate, len(skills))
	for i, skill := range skills {
		ranked[i] = candidate{skill: skill, score: scores[i]}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > topK {
		ranked = ranked[:topK]
	}

	results := make([]models.SkillPriority, len(ranked))
	for i, c := range ranked {
		results[i] = models.SkillPriority{
			Skill:          c.skill,
			PriorityScore:  c.score,
			Category:       p.catalog.CategoryOf(c.skill),
			Importance:     features.Importance(career, c.skill),
			LearningEffort: p.EstimateEffort(c.skill, profile),
		}
	}

	p.logger.Debug("skills prioritized", map[string]interface{}{
		"career":      career,
		"knownCareer": known,
		"candidates":  len(vectors),
		"returned":    len(results),
	})
	return results, nil
}

func (p *Prioritizer) missingSkills(profile *models.UserProfile) []string {
	have := profile.SkillSet()
	var missing []string
	for _, skill := range p.catalog.AllSkills() {
		if _, ok := have[skill]; !ok {
			missing = append(missing, skill)
		}
	}
	return missing
}

// Analyze runs Prioritize for every career the artifact knows. Unknown
// careers are skipped and have no entry in the result.
func (p *Prioritizer) Analyze(ctx context.Context, profile *models.UserProfile, careers []string, topK int) (map[string][]models.SkillPriority, error) {
	if topK <= 0 {
		topK = DefaultAnalyzeTopK
	}

	out := make(map[string][]models.SkillPriority, len(careers))
	for _, career := range careers {
		if !p.artifact.KnowsCareer(career) {
			p.logger.Debug("career not in artifact, skipped", map[string]interface{}{"career": career})
			continue
		}
		results, err := p.Prioritize(ctx, profile, career, topK)
		if err != nil {
			return nil, err
		}
		out[career] = results
	}
	return out, nil
}

// AvailableSkills dumps the catalog and known careers.
func (p *Prioritizer) AvailableSkills() models.SkillCatalogDump {
	return models.SkillCatalogDump{
		SkillsByCategory: p.catalog.ByCategory(),
		AllSkills:        p.catalog.AllSkills(),
		Careers:          slices.Clone(p.artifact.Careers),
	}
}
