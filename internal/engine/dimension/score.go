// internal/engine/dimension/score.go

// Package dimension turns categorical labels into normalized scores.
package dimension

import (
	"math"
	"strings"

	"career-workers/internal/common/logger"
	"career-workers/internal/common/metrics"
	"career-workers/internal/engine/tables"
)

// Neutral is returned for any label a table does not know.
const Neutral = 0.5

// Normalize returns the canonical form used for table keys.
func Normalize(label string) string {
	return strings.ToLower(strings.TrimSpace(label))
}

// Lookup reports the score of label in table and whether it was present.
func Lookup[K ~string](table map[K]float64, label string) (float64, bool) {
	score, ok := table[K(Normalize(label))]
	if !ok {
		return Neutral, false
	}
	return score, true
}

// Score returns the normalized score of label, or Neutral when unknown.
func Score[K ~string](table map[K]float64, label string) float64 {
	score, _ := Lookup(table, label)
	return score
}

// LookupNested is the two-level form of Lookup. A missing outer or inner
// key both resolve to Neutral.
func LookupNested[O, I ~string](table map[O]map[I]float64, outer, inner string) (float64, bool) {
	row, ok := table[O(Normalize(outer))]
	if !ok {
		return Neutral, false
	}
	return Lookup(row, inner)
}

func Nested[O, I ~string](table map[O]map[I]float64, outer, inner string) float64 {
	score, _ := LookupNested(table, outer, inner)
	return score
}

// Composite is the weighted sum of the dimension scores.
func Composite(scores, weights map[tables.Dimension]float64) float64 {
	var total float64
	for _, d := range tables.Dimensions {
		total += scores[d] * weights[d]
	}
	return total
}

// TimeWeight is decay.Factor^daysAgo inside the age window and exactly 0
// beyond it.
func TimeWeight(daysAgo int, decay tables.TimeDecay) float64 {
	if daysAgo > decay.MaxAgeDays {
		return 0.0
	}
	if daysAgo < 0 {
		daysAgo = 0
	}
	return math.Pow(decay.Factor, float64(daysAgo))
}

// Scorer resolves labels like Score and Nested but records unknown labels.
type Scorer struct {
	logger logger.Logger
}

func NewScorer(log logger.Logger) *Scorer {
	return &Scorer{logger: log}
}

// ScoreOf is Score with unknown labels recorded under the table name.
func ScoreOf[K ~string](s *Scorer, table string, scores map[K]float64, label string) float64 {
	score, ok := Lookup(scores, label)
	if !ok {
		s.unknown(table, label)
	}
	return score
}

// NestedOf is Nested with unknown labels recorded under the table name.
func NestedOf[O, I ~string](s *Scorer, table string, scores map[O]map[I]float64, outer, inner string) float64 {
	score, ok := LookupNested(scores, outer, inner)
	if !ok {
		s.unknown(table, outer+"/"+inner)
	}
	return score
}

func (s *Scorer) unknown(table, label string) {
	metrics.UnknownCategoricalLabels.WithLabelValues(table).Inc()
	if s == nil || s.logger == nil {
		return
	}
	s.logger.Debug("unknown categorical label, using neutral score", map[string]interface{}{
		"table": table,
		"label": label,
	})
}
