// internal/workers/skills/prioritize-skills/validation.go

package prioritizeskills

import (
	"career-workers/internal/common/validation"
	"career-workers/internal/workers/jobs"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"targetCareer"},
		Properties: map[string]validation.Property{
			"targetCareer": {
				Type:        "string",
				Description: "Career the skill gap is measured against",
				MinLength:   validation.Int(1),
				MaxLength:   validation.Int(200),
			},
			"topK": {
				Type:        "integer",
				Description: "Maximum number of skills returned",
				Minimum:     validation.Float(1),
				Maximum:     validation.Float(100),
			},
			"userId":      jobs.UserIDProperty(),
			"userProfile": jobs.ProfileProperty(),
		},
	}
}
