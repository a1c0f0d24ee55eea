// internal/common/validation/schema_test.go

package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSchema() JSONSchema {
	return JSONSchema{
		Type:     "object",
		Required: []string{"targetCareer"},
		Properties: map[string]Property{
			"targetCareer": {Type: "string", MinLength: Int(1)},
			"topK":         {Type: "integer", Minimum: Float(1), Maximum: Float(100)},
			"userProfile": {
				Type: "object",
				Properties: map[string]Property{
					"currentSkills":    {Type: "array", Items: &Property{Type: "string"}},
					"learningCapacity": {Type: "number", Minimum: Float(0), Maximum: Float(1)},
				},
			},
		},
		AdditionalProperties: Bool(false),
	}
}

func TestValidateInput(t *testing.T) {
	tests := []struct {
		name      string
		input     map[string]interface{}
		wantValid bool
		wantField string
	}{
		{
			name:      "valid",
			input:     map[string]interface{}{"targetCareer": "Data Scientist", "topK": 5},
			wantValid: true,
		},
		{
			name:      "missing required",
			input:     map[string]interface{}{"topK": 5},
			wantField: "targetCareer",
		},
		{
			name:      "empty career",
			input:     map[string]interface{}{"targetCareer": ""},
			wantField: "targetCareer",
		},
		{
			name:      "topK out of range",
			input:     map[string]interface{}{"targetCareer": "x", "topK": 0},
			wantField: "topK",
		},
		{
			name:      "extra field",
			input:     map[string]interface{}{"targetCareer": "x", "other": true},
			wantField: "other",
		},
		{
			name: "nested type mismatch",
			input: map[string]interface{}{
				"targetCareer": "x",
				"userProfile":  map[string]interface{}{"currentSkills": []interface{}{"Go", 3}},
			},
			wantField: "userProfile.currentSkills.1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ValidateInput(tt.input, testSchema())
			assert.Equal(t, tt.wantValid, result.Valid, result.GetErrorMessages())
			if !tt.wantValid {
				assert.True(t, result.HasErrors(tt.wantField), result.GetErrorMessages())
			}
		})
	}
}

func TestValidateJSON(t *testing.T) {
	result := ValidateJSON(`{"targetCareer":"Data Scientist","userProfile":{"learningCapacity":0.5}}`, testSchema())
	assert.True(t, result.Valid)
	assert.Equal(t, "", result.FirstField())

	result = ValidateJSON(`{"userProfile":{"learningCapacity":1.5}}`, testSchema())
	assert.False(t, result.Valid)
	assert.Len(t, result.GetErrorsForField("userProfile"), 1)
	assert.True(t, result.HasErrors("targetCareer"))

	result = ValidateJSON(`not json`, testSchema())
	assert.False(t, result.Valid)
	assert.Equal(t, "INVALID_DOCUMENT", result.Errors[0].Code)
}
