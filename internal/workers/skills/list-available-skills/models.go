// internal/workers/skills/list-available-skills/models.go

package listavailableskills

type Input struct {
	// Category narrows the dump to one skill category.
	Category string `json:"category,omitempty"`
}

type Output struct {
	SkillsByCategory map[string][]string `json:"skillsByCategory"`
	AllSkills        []string            `json:"allSkills"`
	Careers          []string            `json:"careers"`
	TotalSkills      int                 `json:"totalSkills"`
}
