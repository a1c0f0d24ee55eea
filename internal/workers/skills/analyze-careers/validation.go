// internal/workers/skills/analyze-careers/validation.go

package analyzecareers

import (
	"career-workers/internal/common/validation"
	"career-workers/internal/workers/jobs"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"targetCareers"},
		Properties: map[string]validation.Property{
			"targetCareers": {
				Type:        "array",
				Description: "Careers to analyze; careers unknown to the model are skipped",
				MinItems:    validation.Int(1),
				Items:       &validation.Property{Type: "string", MinLength: validation.Int(1)},
			},
			"topK": {
				Type:        "integer",
				Description: "Maximum number of skills per career",
				Minimum:     validation.Float(1),
				Maximum:     validation.Float(50),
			},
			"userId":      jobs.UserIDProperty(),
			"userProfile": jobs.ProfileProperty(),
		},
	}
}
