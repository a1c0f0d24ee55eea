// internal/workers/opportunity/calculate-compatibility/validation.go

package calculatecompatibility

import (
	"career-workers/internal/common/validation"
	"career-workers/internal/workers/jobs"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type:     "object",
		Required: []string{"opportunity"},
		Properties: map[string]validation.Property{
			"opportunity": {
				Type:        "object",
				Description: "Opportunity to score against the user",
				Required:    []string{"id"},
				Properties: map[string]validation.Property{
					"id":        {Type: "string", MinLength: validation.Int(1)},
					"title":     {Type: "string"},
					"career":    {Type: "string"},
					"industry":  {Type: "string"},
					"areaType":  {Type: "string"},
					"language":  {Type: "string"},
					"seniority": {Type: "string"},
				},
			},
			"userId":      jobs.UserIDProperty(),
			"userProfile": jobs.ProfileProperty(),
		},
	}
}
