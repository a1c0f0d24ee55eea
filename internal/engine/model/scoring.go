// internal/engine/model/scoring.go

package model

import (
	"errors"
	"fmt"
)

const (
	TypeLinear = "linear"
	TypeGBDT   = "gbdt"
)

// ScoringFunction is the trained model. Predict returns one score per row
// and must be deterministic.
type ScoringFunction interface {
	Predict(rows [][]float64) ([]float64, error)
}

var errRowWidth = errors.New("row width does not match model")

type modelSpec struct {
	Type         string     `json:"type"`
	Intercept    float64    `json:"intercept"`
	Coefficients []float64  `json:"coefficients"`
	BaseScore    float64    `json:"baseScore"`
	Trees        []treeSpec `json:"trees"`
}

type treeSpec struct {
	Nodes []nodeSpec `json:"nodes"`
}

type nodeSpec struct {
	Feature   int      `json:"feature"`
	Threshold float64  `json:"threshold"`
	Left      int      `json:"left"`
	Right     int      `json:"right"`
	Leaf      *float64 `json:"leaf,omitempty"`
}

func compile(spec modelSpec, width int) (ScoringFunction, error) {
	switch spec.Type {
	case TypeLinear:
		if len(spec.Coefficients) != width {
			return nil, fmt.Errorf("linear model has %d coefficients for %d feature columns", len(spec.Coefficients), width)
		}
		return &Linear{Intercept: spec.Intercept, Coefficients: spec.Coefficients}, nil
	case TypeGBDT:
		if len(spec.Trees) == 0 {
			return nil, errors.New("gbdt model has no trees")
		}
		g := &GBDT{BaseScore: spec.BaseScore, Trees: make([]Tree, len(spec.Trees)), width: width}
		for i, t := range spec.Trees {
			tree, err := compileTree(t, width)
			if err != nil {
				return nil, fmt.Errorf("tree %d: %w", i, err)
			}
			g.Trees[i] = tree
		}
		return g, nil
	default:
		return nil, fmt.Errorf("unsupported model type %q", spec.Type)
	}
}

// Linear scores a row as intercept + coefficients . row.
type Linear struct {
	Intercept    float64
	Coefficients []float64
}

func (m *Linear) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != len(m.Coefficients) {
			return nil, fmt.Errorf("row %d: %w", i, errRowWidth)
		}
		score := m.Intercept
		for j, c := range m.Coefficients {
			score += c * row[j]
		}
		out[i] = score
	}
	return out, nil
}

// Node is one split or leaf of a regression tree. A split sends rows whose
// feature value is below Threshold to Left.
type Node struct {
	Feature   int
	Threshold float64
	Left      int
	Right     int
	IsLeaf    bool
	Value     float64
}

type Tree struct {
	Nodes []Node
}

func compileTree(spec treeSpec, width int) (Tree, error) {
	if len(spec.Nodes) == 0 {
		return Tree{}, errors.New("tree has no nodes")
	}
	t := Tree{Nodes: make([]Node, len(spec.Nodes))}
	for i, n := range spec.Nodes {
		if n.Leaf != nil {
			t.Nodes[i] = Node{IsLeaf: true, Value: *n.Leaf}
			continue
		}
		if n.Feature < 0 || n.Feature >= width {
			return Tree{}, fmt.Errorf("node %d: feature %d out of range", i, n.Feature)
		}
		// Children must come after their parent so evaluation always terminates.
		if n.Left <= i || n.Right <= i || n.Left >= len(spec.Nodes) || n.Right >= len(spec.Nodes) {
			return Tree{}, fmt.Errorf("node %d: invalid children %d/%d", i, n.Left, n.Right)
		}
		t.Nodes[i] = Node{Feature: n.Feature, Threshold: n.Threshold, Left: n.Left, Right: n.Right}
	}
	return t, nil
}

func (t Tree) eval(row []float64) float64 {
	i := 0
	for {
		n := t.Nodes[i]
		if n.IsLeaf {
			return n.Value
		}
		if row[n.Feature] < n.Threshold {
			i = n.Left
		} else {
			i = n.Right
		}
	}
}

// GBDT is a gradient boosted ensemble of regression trees.
type GBDT struct {
	BaseScore float64
	Trees     []Tree
	width     int
}

func (m *GBDT) Predict(rows [][]float64) ([]float64, error) {
	out := make([]float64, len(rows))
	for i, row := range rows {
		if len(row) != m.width {
			return nil, fmt.Errorf("row %d: %w", i, errRowWidth)
		}
		score := m.BaseScore
		for _, t := range m.Trees {
			score += t.eval(row)
		}
		out[i] = score
	}
	return out, nil
}
