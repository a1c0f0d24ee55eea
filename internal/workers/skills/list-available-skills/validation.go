// internal/workers/skills/list-available-skills/validation.go

package listavailableskills

import "career-workers/internal/common/validation"

func GetInputSchema() validation.JSONSchema {
	return validation.JSONSchema{
		Type: "object",
		Properties: map[string]validation.Property{
			"category": {
				Type:        "string",
				Description: "Optional skill category filter",
				MaxLength:   validation.Int(100),
			},
		},
	}
}
