// internal/engine/features/vector.go

// Package features builds the numeric feature vectors scored by the ranking model.
package features

// Column names one position of a Vector.
type Column string

const (
	SkillIndex         Column = "skill_index"
	CareerIndex        Column = "career_index"
	SkillImportance    Column = "skill_importance"
	MarketDemand       Column = "market_demand"
	LearningDifficulty Column = "learning_difficulty"
	SynergyScore       Column = "synergy_score"
	ExperienceFactor   Column = "experience_factor"
	AcademicFactor     Column = "academic_factor"
	LearningCapacity   Column = "learning_capacity"
)

// Columns is the canonical column order of a Vector.
var Columns = []Column{
	SkillIndex,
	CareerIndex,
	SkillImportance,
	MarketDemand,
	LearningDifficulty,
	SynergyScore,
	ExperienceFactor,
	AcademicFactor,
	LearningCapacity,
}

// Vector is the feature tuple of one (skill, career, profile) candidate.
// It is passed by value and never modified once built.
type Vector struct {
	skillIndex         float64
	careerIndex        float64
	skillImportance    float64
	marketDemand       float64
	learningDifficulty float64
	synergyScore       float64
	experienceFactor   float64
	academicFactor     float64
	learningCapacity   float64
}

// Value returns the feature stored under column.
func (v Vector) Value(column Column) (float64, bool) {
	switch column {
	case SkillIndex:
		return v.skillIndex, true
	case CareerIndex:
		return v.careerIndex, true
	case SkillImportance:
		return v.skillImportance, true
	case MarketDemand:
		return v.marketDemand, true
	case LearningDifficulty:
		return v.learningDifficulty, true
	case SynergyScore:
		return v.synergyScore, true
	case ExperienceFactor:
		return v.experienceFactor, true
	case AcademicFactor:
		return v.academicFactor, true
	case LearningCapacity:
		return v.learningCapacity, true
	}
	return 0, false
}

// Values returns the features in Columns order.
func (v Vector) Values() []float64 {
	return []float64{
		v.skillIndex,
		v.careerIndex,
		v.skillImportance,
		v.marketDemand,
		v.learningDifficulty,
		v.synergyScore,
		v.experienceFactor,
		v.academicFactor,
		v.learningCapacity,
	}
}
