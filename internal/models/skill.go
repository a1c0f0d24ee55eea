// internal/models/skill.go
package models

type LearningEffort string

const (
	EffortLow    LearningEffort = "Low"
	EffortMedium LearningEffort = "Medium"
	EffortHigh   LearningEffort = "High"
)

// SkillPriority is one entry of a ranked skill-gap list.
type SkillPriority struct {
	Skill          string         `json:"skill"`
	PriorityScore  float64        `json:"priorityScore"`
	Category       string         `json:"category"`
	Importance     float64        `json:"importance"`
	LearningEffort LearningEffort `json:"learningEffort"`
}

// SkillCatalogDump is the read-only catalog view returned to callers.
type SkillCatalogDump struct {
	SkillsByCategory map[string][]string `json:"skillsByCategory"`
	AllSkills        []string            `json:"allSkills"`
	Careers          []string            `json:"careers"`
}
