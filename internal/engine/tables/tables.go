// internal/engine/tables/tables.go

// Package tables holds the static scoring tables that turn categorical user
// and opportunity attributes into comparable numeric scores.
//
// Every table is keyed by a typed, lower-case label. A Configuration is built
// once at start-up, validated, and shared read-only by all requests.
package tables

type Dimension string

const (
	DimensionPersonal   Dimension = "personal"
	DimensionCultural   Dimension = "cultural"
	DimensionEconomic   Dimension = "economic"
	DimensionGeographic Dimension = "geographic"
	DimensionSocial     Dimension = "social"
)

// Dimensions lists the compatibility dimensions in their fixed order.
var Dimensions = []Dimension{
	DimensionPersonal,
	DimensionCultural,
	DimensionEconomic,
	DimensionGeographic,
	DimensionSocial,
}

type CulturalContext string

const (
	CulturalCollectivist  CulturalContext = "collectivist"
	CulturalIndividualist CulturalContext = "individualist"
	CulturalTraditional   CulturalContext = "traditional"
	CulturalProgressive   CulturalContext = "progressive"
	CulturalMixed         CulturalContext = "mixed"
)

var CulturalContexts = []CulturalContext{
	CulturalCollectivist, CulturalIndividualist, CulturalTraditional, CulturalProgressive, CulturalMixed,
}

type EconomicBracket string

const (
	EconomicLowIncome   EconomicBracket = "low_income"
	EconomicLowerMiddle EconomicBracket = "lower_middle"
	EconomicMiddle      EconomicBracket = "middle"
	EconomicUpperMiddle EconomicBracket = "upper_middle"
	EconomicHighIncome  EconomicBracket = "high_income"
)

var EconomicBrackets = []EconomicBracket{
	EconomicLowIncome, EconomicLowerMiddle, EconomicMiddle, EconomicUpperMiddle, EconomicHighIncome,
}

type InfrastructureLevel string

const (
	InfrastructureBasic      InfrastructureLevel = "basic"
	InfrastructureDeveloping InfrastructureLevel = "developing"
	InfrastructureDeveloped  InfrastructureLevel = "developed"
	InfrastructureAdvanced   InfrastructureLevel = "advanced"
)

var InfrastructureLevels = []InfrastructureLevel{
	InfrastructureBasic, InfrastructureDeveloping, InfrastructureDeveloped, InfrastructureAdvanced,
}

type AreaType string

const (
	AreaUrban    AreaType = "urban"
	AreaSuburban AreaType = "suburban"
	AreaRural    AreaType = "rural"
)

var AreaTypes = []AreaType{AreaUrban, AreaSuburban, AreaRural}

type Language string

const (
	LanguageEnglish    Language = "english"
	LanguageSpanish    Language = "spanish"
	LanguageHindi      Language = "hindi"
	LanguageMandarin   Language = "mandarin"
	LanguageFrench     Language = "french"
	LanguageArabic     Language = "arabic"
	LanguagePortuguese Language = "portuguese"
	LanguageGerman     Language = "german"
)

var Languages = []Language{
	LanguageEnglish, LanguageSpanish, LanguageHindi, LanguageMandarin,
	LanguageFrench, LanguageArabic, LanguagePortuguese, LanguageGerman,
}

type Industry string

const (
	IndustryTechnology    Industry = "technology"
	IndustryFinance       Industry = "finance"
	IndustryHealthcare    Industry = "healthcare"
	IndustryEducation     Industry = "education"
	IndustryManufacturing Industry = "manufacturing"
	IndustryRetail        Industry = "retail"
	IndustryGovernment    Industry = "government"
	IndustryAgriculture   Industry = "agriculture"
	IndustryCreative      Industry = "creative"
)

var Industries = []Industry{
	IndustryTechnology, IndustryFinance, IndustryHealthcare, IndustryEducation, IndustryManufacturing,
	IndustryRetail, IndustryGovernment, IndustryAgriculture, IndustryCreative,
}

type EducationLevel string

const (
	EducationHighSchool EducationLevel = "high_school"
	EducationDiploma    EducationLevel = "diploma"
	EducationBachelors  EducationLevel = "bachelors"
	EducationMasters    EducationLevel = "masters"
	EducationDoctorate  EducationLevel = "doctorate"
)

var EducationLevels = []EducationLevel{
	EducationHighSchool, EducationDiploma, EducationBachelors, EducationMasters, EducationDoctorate,
}

type FamilyBackground string

const (
	FamilyBusiness        FamilyBackground = "business"
	FamilyAcademic        FamilyBackground = "academic"
	FamilyTechnical       FamilyBackground = "technical"
	FamilyAgricultural    FamilyBackground = "agricultural"
	FamilyService         FamilyBackground = "service"
	FamilyFirstGeneration FamilyBackground = "first_generation"
)

var FamilyBackgrounds = []FamilyBackground{
	FamilyBusiness, FamilyAcademic, FamilyTechnical, FamilyAgricultural, FamilyService, FamilyFirstGeneration,
}

type Seniority string

const (
	SeniorityEntry  Seniority = "entry"
	SeniorityJunior Seniority = "junior"
	SeniorityMid    Seniority = "mid"
	SenioritySenior Seniority = "senior"
	SeniorityLead   Seniority = "lead"
)

var SeniorityLevels = []Seniority{SeniorityEntry, SeniorityJunior, SeniorityMid, SenioritySenior, SeniorityLead}

type UserType string

const (
	UserStudent     UserType = "student"
	UserEarlyCareer UserType = "early_career"
	UserMidCareer   UserType = "mid_career"
	UserSenior      UserType = "senior"
)

var UserTypes = []UserType{UserStudent, UserEarlyCareer, UserMidCareer, UserSenior}

// ReadinessFeature names one input of the personal readiness score.
type ReadinessFeature string

const (
	FeatureExperience       ReadinessFeature = "experience"
	FeatureAcademic         ReadinessFeature = "academic"
	FeatureEducation        ReadinessFeature = "education"
	FeatureLearningCapacity ReadinessFeature = "learning_capacity"
)

var ReadinessFeatures = []ReadinessFeature{FeatureExperience, FeatureAcademic, FeatureEducation, FeatureLearningCapacity}

// Career keys the difficulty table. Careers are open-ended, so only the key
// format is checked.
type Career string

// TimeDecay configures the weight given to historical feedback.
type TimeDecay struct {
	Factor     float64
	MaxAgeDays int
}

// Configuration is the full set of scoring tables.
type Configuration struct {
	DimensionWeights     map[Dimension]float64
	CulturalContexts     map[CulturalContext]float64
	EconomicBrackets     map[EconomicBracket]float64
	InfrastructureLevels map[InfrastructureLevel]float64
	Languages            map[Language]float64
	EducationLevels      map[EducationLevel]float64
	SeniorityLevels      map[Seniority]float64
	CareerDifficulty     map[Career]float64

	UrbanRural          map[AreaType]map[AreaType]float64
	IndustryCulturalFit map[Industry]map[CulturalContext]float64
	FamilyAffinity      map[FamilyBackground]map[Industry]float64
	UserTypeWeights     map[UserType]map[ReadinessFeature]float64

	TimeDecay TimeDecay
}

// Overrides are the parts of the configuration an operator may change
// through the config file. Empty weights, a zero factor and a nil max age
// leave the defaults in place; a max age of 0 only counts same-day feedback.
type Overrides struct {
	DimensionWeights map[string]float64
	DecayFactor      float64
	MaxAgeDays       *int
}

// WithOverrides returns a validated copy of c with o applied.
func (c *Configuration) WithOverrides(o Overrides) (*Configuration, error) {
	out := *c
	if len(o.DimensionWeights) > 0 {
		out.DimensionWeights = make(map[Dimension]float64, len(o.DimensionWeights))
		for k, v := range o.DimensionWeights {
			out.DimensionWeights[Dimension(k)] = v
		}
	}
	if o.DecayFactor != 0 {
		out.TimeDecay.Factor = o.DecayFactor
	}
	if o.MaxAgeDays != nil {
		out.TimeDecay.MaxAgeDays = *o.MaxAgeDays
	}
	if err := out.Validate(); err != nil {
		return nil, err
	}
	return &out, nil
}
