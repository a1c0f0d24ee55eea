// internal/workers/communication/send-skill-plan/validation.go

package sendskillplan

import (
	"career-workers/internal/common/validation"
	"career-workers/internal/workers/jobs"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"userId"},
		Properties: map[string]validation.Property{
			"userId":       jobs.UserIDProperty(),
			"targetCareer": {Type: "string", MaxLength: validation.Int(200)},
			"requestId":    {Type: "string", MaxLength: validation.Int(64)},
			"prioritySkills": {
				Type:        "array",
				Description: "Output of prioritize-skills; recomputed when absent",
				Items: &validation.Property{
					Type:     "object",
					Required: []string{"skill"},
					Properties: map[string]validation.Property{
						"skill":          {Type: "string", MinLength: validation.Int(1)},
						"priorityScore":  {Type: "number"},
						"category":       {Type: "string"},
						"learningEffort": {Type: "string", Enum: []string{"Low", "Medium", "High"}},
					},
				},
			},
		},
	}
}
