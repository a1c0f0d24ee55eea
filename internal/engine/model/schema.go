// internal/engine/model/schema.go

package model

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

const artifactSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["version", "model", "skillEncoder", "careerEncoder", "featureColumns", "allSkills", "skillsByCategory", "careers"],
  "properties": {
    "version": {"type": "string", "minLength": 1},
    "model": {
      "type": "object",
      "required": ["type"],
      "properties": {
        "type": {"enum": ["linear", "gbdt"]},
        "intercept": {"type": "number"},
        "coefficients": {"type": "array", "items": {"type": "number"}},
        "baseScore": {"type": "number"},
        "trees": {
          "type": "array",
          "items": {
            "type": "object",
            "required": ["nodes"],
            "properties": {
              "nodes": {
                "type": "array",
                "minItems": 1,
                "items": {
                  "type": "object",
                  "properties": {
                    "feature": {"type": "integer", "minimum": 0},
                    "threshold": {"type": "number"},
                    "left": {"type": "integer", "minimum": 0},
                    "right": {"type": "integer", "minimum": 0},
                    "leaf": {"type": "number"}
                  }
                }
              }
            }
          }
        }
      },
      "allOf": [
        {"if": {"properties": {"type": {"const": "linear"}}}, "then": {"required": ["coefficients"]}},
        {"if": {"properties": {"type": {"const": "gbdt"}}}, "then": {"required": ["trees"]}}
      ]
    },
    "skillEncoder": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "careerEncoder": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "featureColumns": {"type": "array", "minItems": 1, "items": {"type": "string"}},
    "allSkills": {"type": "array", "items": {"type": "string"}},
    "skillsByCategory": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["category", "skills"],
        "properties": {
          "category": {"type": "string", "minLength": 1},
          "skills": {"type": "array", "items": {"type": "string"}}
        }
      }
    },
    "careers": {"type": "array", "items": {"type": "string"}}
  }
}`

var schemaLoader = gojsonschema.NewStringLoader(artifactSchema)

func validateDocument(doc []byte) error {
	result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("artifact does not match schema: %s", strings.Join(errs, "; "))
	}
	return nil
}
