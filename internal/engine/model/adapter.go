// internal/engine/model/adapter.go

package model

import (
	"errors"
	"fmt"

	"career-workers/internal/engine/features"
)

var (
	ErrUnknownColumn = errors.New("unknown feature column")
	ErrScoring       = errors.New("scoring function failed")
)

// Adapter runs batches of feature vectors through the artifact's scoring
// function. Failures are returned as is; there are no retries.
type Adapter struct {
	fn ScoringFunction
}

func NewAdapter(fn ScoringFunction) *Adapter {
	return &Adapter{fn: fn}
}

// ScoreBatch returns one score per vector, in input order. Each vector is
// laid out in the given column order before scoring.
func (a *Adapter) ScoreBatch(vectors []features.Vector, columns []features.Column) ([]float64, error) {
	if len(vectors) == 0 {
		return nil, nil
	}

	rows := make([][]float64, len(vectors))
	for i, v := range vectors {
		row := make([]float64, len(columns))
		for j, col := range columns {
			value, ok := v.Value(col)
			if !ok {
				return nil, fmt.Errorf("%w: %s", ErrUnknownColumn, col)
			}
			row[j] = value
		}
		rows[i] = row
	}

	scores, err := a.fn.Predict(rows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrScoring, err)
	}
	if len(scores) != len(vectors) {
		return nil, fmt.Errorf("%w: got %d scores for %d vectors", ErrScoring, len(scores), len(vectors))
	}
	return scores, nil
}
