// internal/workers/skills/analyze-careers/service.go

package analyzecareers

import (
	"context"
	"strings"

	"career-workers/internal/models"
)

type Analyzer interface {
	Analyze(ctx context.Context, profile *models.UserProfile, careers []string, topK int) (map[string][]models.SkillPriority, error)
}

func reduce(analysis map[string][]models.SkillPriority) map[string][]CareerSkill {
	out := make(map[string][]CareerSkill, len(analysis))
	for career, skills := range analysis {
		entries := make([]CareerSkill, len(skills))
		for i, s := range skills {
			entries[i] = CareerSkill{Skill: s.Skill, PriorityScore: s.PriorityScore}
		}
		out[career] = entries
	}
	return out
}

// dedupe trims names and drops blanks and repeats, keeping first-seen order.
func dedupe(careers []string) []string {
	seen := make(map[string]struct{}, len(careers))
	out := make([]string, 0, len(careers))
	for _, c := range careers {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
