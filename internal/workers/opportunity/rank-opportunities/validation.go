// internal/workers/opportunity/rank-opportunities/validation.go

package rankopportunities

import (
	"career-workers/internal/common/validation"
	"career-workers/internal/workers/jobs"
)

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"keywords": {
				Type:        "string",
				Description: "Free text matched against title, career and industry",
				MaxLength:   validation.Int(500),
			},
			"career":   {Type: "string", MaxLength: validation.Int(200)},
			"industry": {Type: "string", MaxLength: validation.Int(200)},
			"areaType": {Type: "string", MaxLength: validation.Int(50)},
			"maxItems": {
				Type:        "integer",
				Description: "Maximum number of ranked opportunities returned",
				Minimum:     validation.Float(1),
				Maximum:     validation.Float(100),
			},
			"userId":      jobs.UserIDProperty(),
			"userProfile": jobs.ProfileProperty(),
		},
	}
}
