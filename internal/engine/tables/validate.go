// internal/engine/tables/validate.go

package tables

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strings"
)

const weightTolerance = 1e-6

var ErrInvalidTable = errors.New("invalid scoring table")

// Validate checks every table for unknown labels, out-of-range scores and
// dimension weights that do not sum to one.
func (c *Configuration) Validate() error {
	var errs []error

	errs = append(errs, checkFlat("dimension_weights", c.DimensionWeights, Dimensions))
	if len(c.DimensionWeights) != len(Dimensions) {
		errs = append(errs, fmt.Errorf("%w: dimension_weights: expected %d dimensions, got %d",
			ErrInvalidTable, len(Dimensions), len(c.DimensionWeights)))
	}
	var sum float64
	for _, w := range c.DimensionWeights {
		sum += w
	}
	if math.Abs(sum-1.0) > weightTolerance {
		errs = append(errs, fmt.Errorf("%w: dimension_weights sum to %f, want 1.0", ErrInvalidTable, sum))
	}

	errs = append(errs,
		checkFlat("cultural_contexts", c.CulturalContexts, CulturalContexts),
		checkFlat("economic_brackets", c.EconomicBrackets, EconomicBrackets),
		checkFlat("infrastructure_levels", c.InfrastructureLevels, InfrastructureLevels),
		checkFlat("languages", c.Languages, Languages),
		checkFlat("education_levels", c.EducationLevels, EducationLevels),
		checkFlat("seniority_levels", c.SeniorityLevels, SeniorityLevels),
		checkFlat[Career]("career_difficulty", c.CareerDifficulty, nil),
		checkNested("urban_rural", c.UrbanRural, AreaTypes, AreaTypes),
		checkNested("industry_cultural_fit", c.IndustryCulturalFit, Industries, CulturalContexts),
		checkNested("family_affinity", c.FamilyAffinity, FamilyBackgrounds, Industries),
		checkNested("user_type_weights", c.UserTypeWeights, UserTypes, ReadinessFeatures),
	)

	for userType, weights := range c.UserTypeWeights {
		var total float64
		for _, w := range weights {
			total += w
		}
		if math.Abs(total-1.0) > weightTolerance {
			errs = append(errs, fmt.Errorf("%w: user_type_weights[%s] sum to %f, want 1.0", ErrInvalidTable, userType, total))
		}
	}

	if c.TimeDecay.Factor <= 0 || c.TimeDecay.Factor > 1 {
		errs = append(errs, fmt.Errorf("%w: time_decay.factor must be in (0,1], got %f", ErrInvalidTable, c.TimeDecay.Factor))
	}
	if c.TimeDecay.MaxAgeDays < 0 {
		errs = append(errs, fmt.Errorf("%w: time_decay.max_age_days must be >= 0, got %d", ErrInvalidTable, c.TimeDecay.MaxAgeDays))
	}

	return errors.Join(errs...)
}

// checkFlat validates a label table. A nil known set only enforces the
// canonical lower-case key format.
func checkFlat[K ~string](name string, table map[K]float64, known []K) error {
	var errs []error
	for key, score := range table {
		if err := checkKey(name, key, known); err != nil {
			errs = append(errs, err)
		}
		if score < 0 || score > 1 {
			errs = append(errs, fmt.Errorf("%w: %s[%s] = %f outside [0,1]", ErrInvalidTable, name, key, score))
		}
	}
	return errors.Join(errs...)
}

func checkNested[O, I ~string](name string, table map[O]map[I]float64, outer []O, inner []I) error {
	var errs []error
	for key, row := range table {
		if err := checkKey(name, key, outer); err != nil {
			errs = append(errs, err)
		}
		errs = append(errs, checkFlat(name+"."+string(key), row, inner))
	}
	return errors.Join(errs...)
}

func checkKey[K ~string](name string, key K, known []K) error {
	if string(key) != strings.ToLower(strings.TrimSpace(string(key))) {
		return fmt.Errorf("%w: %s key %q is not canonical lower-case", ErrInvalidTable, name, key)
	}
	if known != nil && !slices.Contains(known, key) {
		return fmt.Errorf("%w: %s has unknown label %q", ErrInvalidTable, name, key)
	}
	return nil
}
