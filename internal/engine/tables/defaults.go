// internal/engine/tables/defaults.go

package tables

// Default returns the built-in scoring tables.
func Default() *Configuration {
	return &Configuration{
		DimensionWeights: map[Dimension]float64{
			DimensionPersonal:   0.35,
			DimensionCultural:   0.20,
			DimensionEconomic:   0.20,
			DimensionGeographic: 0.15,
			DimensionSocial:     0.10,
		},
		CulturalContexts: map[CulturalContext]float64{
			CulturalCollectivist:  0.7,
			CulturalIndividualist: 0.8,
			CulturalTraditional:   0.6,
			CulturalProgressive:   0.9,
			CulturalMixed:         0.75,
		},
		EconomicBrackets: map[EconomicBracket]float64{
			EconomicLowIncome:   0.3,
			EconomicLowerMiddle: 0.5,
			EconomicMiddle:      0.7,
			EconomicUpperMiddle: 0.85,
			EconomicHighIncome:  1.0,
		},
		InfrastructureLevels: map[InfrastructureLevel]float64{
			InfrastructureBasic:      0.3,
			InfrastructureDeveloping: 0.55,
			InfrastructureDeveloped:  0.8,
			InfrastructureAdvanced:   1.0,
		},
		Languages: map[Language]float64{
			LanguageEnglish:    1.0,
			LanguageSpanish:    0.8,
			LanguageMandarin:   0.8,
			LanguageHindi:      0.7,
			LanguageFrench:     0.7,
			LanguageGerman:     0.7,
			LanguageArabic:     0.65,
			LanguagePortuguese: 0.65,
		},
		EducationLevels: map[EducationLevel]float64{
			EducationHighSchool: 0.3,
			EducationDiploma:    0.5,
			EducationBachelors:  0.7,
			EducationMasters:    0.85,
			EducationDoctorate:  1.0,
		},
		SeniorityLevels: map[Seniority]float64{
			SeniorityEntry:  0.2,
			SeniorityJunior: 0.4,
			SeniorityMid:    0.6,
			SenioritySenior: 0.8,
			SeniorityLead:   1.0,
		},
		CareerDifficulty: map[Career]float64{
			"software engineer": 0.7,
			"data scientist":    0.8,
			"data analyst":      0.55,
			"product manager":   0.65,
			"devops engineer":   0.75,
			"ux designer":       0.5,
			"digital marketer":  0.4,
		},
		UrbanRural: map[AreaType]map[AreaType]float64{
			AreaUrban: {
				AreaUrban:    1.0,
				AreaSuburban: 0.8,
				AreaRural:    0.4,
			},
			AreaSuburban: {
				AreaUrban:    0.8,
				AreaSuburban: 1.0,
				AreaRural:    0.6,
			},
			AreaRural: {
				AreaUrban:    0.5,
				AreaSuburban: 0.7,
				AreaRural:    1.0,
			},
		},
		IndustryCulturalFit: map[Industry]map[CulturalContext]float64{
			IndustryTechnology: {
				CulturalProgressive:   0.95,
				CulturalIndividualist: 0.85,
				CulturalMixed:         0.8,
				CulturalCollectivist:  0.7,
				CulturalTraditional:   0.5,
			},
			IndustryFinance: {
				CulturalIndividualist: 0.85,
				CulturalTraditional:   0.75,
				CulturalMixed:         0.75,
				CulturalProgressive:   0.7,
				CulturalCollectivist:  0.65,
			},
			IndustryHealthcare: {
				CulturalCollectivist:  0.9,
				CulturalMixed:         0.8,
				CulturalTraditional:   0.75,
				CulturalProgressive:   0.75,
				CulturalIndividualist: 0.7,
			},
			IndustryEducation: {
				CulturalCollectivist:  0.85,
				CulturalTraditional:   0.8,
				CulturalMixed:         0.8,
				CulturalProgressive:   0.8,
				CulturalIndividualist: 0.65,
			},
			IndustryManufacturing: {
				CulturalTraditional:   0.85,
				CulturalCollectivist:  0.8,
				CulturalMixed:         0.7,
				CulturalIndividualist: 0.6,
				CulturalProgressive:   0.6,
			},
			IndustryRetail: {
				CulturalMixed:         0.8,
				CulturalCollectivist:  0.75,
				CulturalIndividualist: 0.75,
				CulturalProgressive:   0.7,
				CulturalTraditional:   0.7,
			},
			IndustryGovernment: {
				CulturalTraditional:   0.9,
				CulturalCollectivist:  0.85,
				CulturalMixed:         0.75,
				CulturalProgressive:   0.6,
				CulturalIndividualist: 0.55,
			},
			IndustryAgriculture: {
				CulturalTraditional:   0.9,
				CulturalCollectivist:  0.85,
				CulturalMixed:         0.7,
				CulturalProgressive:   0.55,
				CulturalIndividualist: 0.5,
			},
			IndustryCreative: {
				CulturalProgressive:   0.95,
				CulturalIndividualist: 0.9,
				CulturalMixed:         0.8,
				CulturalCollectivist:  0.6,
				CulturalTraditional:   0.5,
			},
		},
		FamilyAffinity: map[FamilyBackground]map[Industry]float64{
			FamilyBusiness: {
				IndustryFinance:    0.9,
				IndustryRetail:     0.85,
				IndustryTechnology: 0.7,
				IndustryCreative:   0.6,
			},
			FamilyAcademic: {
				IndustryEducation:  0.95,
				IndustryHealthcare: 0.8,
				IndustryTechnology: 0.75,
				IndustryGovernment: 0.7,
			},
			FamilyTechnical: {
				IndustryTechnology:    0.95,
				IndustryManufacturing: 0.85,
				IndustryFinance:       0.6,
			},
			FamilyAgricultural: {
				IndustryAgriculture:   0.95,
				IndustryManufacturing: 0.7,
				IndustryGovernment:    0.6,
			},
			FamilyService: {
				IndustryHealthcare: 0.85,
				IndustryGovernment: 0.8,
				IndustryRetail:     0.75,
				IndustryEducation:  0.75,
			},
			FamilyFirstGeneration: {
				IndustryTechnology: 0.6,
				IndustryHealthcare: 0.6,
				IndustryEducation:  0.6,
			},
		},
		UserTypeWeights: map[UserType]map[ReadinessFeature]float64{
			UserStudent: {
				FeatureExperience:       0.1,
				FeatureAcademic:         0.4,
				FeatureEducation:        0.2,
				FeatureLearningCapacity: 0.3,
			},
			UserEarlyCareer: {
				FeatureExperience:       0.3,
				FeatureAcademic:         0.25,
				FeatureEducation:        0.2,
				FeatureLearningCapacity: 0.25,
			},
			UserMidCareer: {
				FeatureExperience:       0.5,
				FeatureAcademic:         0.1,
				FeatureEducation:        0.15,
				FeatureLearningCapacity: 0.25,
			},
			UserSenior: {
				FeatureExperience:       0.6,
				FeatureAcademic:         0.05,
				FeatureEducation:        0.15,
				FeatureLearningCapacity: 0.2,
			},
		},
		TimeDecay: TimeDecay{
			Factor:     0.95,
			MaxAgeDays: 90,
		},
	}
}
