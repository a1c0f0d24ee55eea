// internal/engine/features/importance.go

package features

// DefaultImportance applies to any career or skill missing from the table.
const DefaultImportance = 0.5

var importance = map[string]map[string]float64{
	"Software Engineer": {
		"Python":        0.8,
		"Java":          0.8,
		"JavaScript":    0.75,
		"Go":            0.7,
		"SQL":           0.75,
		"Git":           0.9,
		"Docker":        0.75,
		"Kubernetes":    0.6,
		"CI/CD":         0.7,
		"Linux":         0.7,
		"AWS":           0.65,
		"Communication": 0.6,
	},
	"Data Scientist": {
		"Python":             0.95,
		"SQL":                0.85,
		"Machine Learning":   0.95,
		"Statistics":         0.9,
		"Pandas":             0.85,
		"Data Visualization": 0.75,
		"Git":                0.6,
		"Communication":      0.65,
	},
	"Data Analyst": {
		"SQL":                0.95,
		"Excel":              0.85,
		"Data Visualization": 0.9,
		"Statistics":         0.8,
		"Python":             0.7,
		"Communication":      0.75,
	},
	"Product Manager": {
		"Product Strategy":   0.95,
		"Communication":      0.9,
		"Agile":              0.85,
		"Project Management": 0.8,
		"User Research":      0.75,
		"SQL":                0.55,
	},
	"DevOps Engineer": {
		"Linux":      0.95,
		"Docker":     0.9,
		"Kubernetes": 0.9,
		"CI/CD":      0.9,
		"Terraform":  0.85,
		"AWS":        0.85,
		"Git":        0.85,
		"Python":     0.6,
		"Go":         0.6,
	},
	"UX Designer": {
		"Figma":         0.95,
		"UI Design":     0.9,
		"User Research": 0.9,
		"Prototyping":   0.85,
		"HTML":          0.5,
		"CSS":           0.55,
		"Communication": 0.8,
	},
}

// Importance looks up how much skill matters for career.
func Importance(career, skill string) float64 {
	skills, ok := importance[career]
	if !ok {
		return DefaultImportance
	}
	if v, ok := skills[skill]; ok {
		return v
	}
	return DefaultImportance
}
