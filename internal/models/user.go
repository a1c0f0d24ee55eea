// internal/models/user.go
package models

// UserProfile is the per-request view of a user that every scoring call reads.
// It is never mutated by the engine.
type UserProfile struct {
	UserID           string   `json:"userId,omitempty"`
	Age              int      `json:"age"`
	CurrentSkills    []string `json:"currentSkills"`
	ExperienceYears  float64  `json:"experienceYears"`
	AcademicScore    float64  `json:"academicScore"`
	LearningCapacity float64  `json:"learningCapacity"`

	CulturalContext     string   `json:"culturalContext,omitempty"`
	EconomicBracket     string   `json:"economicBracket,omitempty"`
	InfrastructureLevel string   `json:"infrastructureLevel,omitempty"`
	AreaType            string   `json:"areaType,omitempty"`
	EducationLevel      string   `json:"educationLevel,omitempty"`
	FamilyBackground    string   `json:"familyBackground,omitempty"`
	Languages           []string `json:"languages,omitempty"`
}

// SkillSet returns the user's current skills as a set.
func (p *UserProfile) SkillSet() map[string]struct{} {
	set := make(map[string]struct{}, len(p.CurrentSkills))
	for _, s := range p.CurrentSkills {
		set[s] = struct{}{}
	}
	return set
}

// UserContact holds the delivery details used by the skill plan notifications.
type UserContact struct {
	UserID     string `json:"userId"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	SMSOptedIn bool   `json:"smsOptedIn"`
}
