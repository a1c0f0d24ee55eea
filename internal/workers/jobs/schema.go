// internal/workers/jobs/schema.go

package jobs

import "career-workers/internal/common/validation"

// ProfileProperty describes an inline userProfile variable.
func ProfileProperty() validation.Property {
	return validation.Property{
		Type:        "object",
		Description: "Inline user profile; takes precedence over userId",
		Properties: map[string]validation.Property{
			"userId":              {Type: "string"},
			"age":                 {Type: "integer", Minimum: validation.Float(0), Maximum: validation.Float(120)},
			"currentSkills":       {Type: "array", Items: &validation.Property{Type: "string"}},
			"experienceYears":     {Type: "number", Minimum: validation.Float(0)},
			"academicScore":       {Type: "number", Minimum: validation.Float(0), Maximum: validation.Float(100)},
			"learningCapacity":    {Type: "number", Minimum: validation.Float(0), Maximum: validation.Float(1)},
			"culturalContext":     {Type: "string"},
			"economicBracket":     {Type: "string"},
			"areaType":            {Type: "string"},
			"educationLevel":      {Type: "string"},
			"familyBackground":    {Type: "string"},
			"languages":           {Type: "array", Items: &validation.Property{Type: "string"}},
			"infrastructureLevel": {Type: "string"},
		},
	}
}

// UserIDProperty describes the userId variable used to load a stored profile.
func UserIDProperty() validation.Property {
	return validation.Property{
		Type:        "string",
		Description: "User whose stored profile is loaded when userProfile is absent",
		MaxLength:   validation.Int(64),
	}
}
