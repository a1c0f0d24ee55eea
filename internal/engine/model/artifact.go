// internal/engine/model/artifact.go

// Package model loads the trained skill ranking artifact and scores
// feature vectors with it.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"career-workers/internal/engine/catalog"
	"career-workers/internal/engine/features"
)

var (
	ErrArtifactNotFound = fmt.Errorf("ranking artifact not found: %w", os.ErrNotExist)
	ErrArtifactInvalid  = errors.New("ranking artifact invalid")
)

// Artifact is the trained model bundle. It is shared read-only between
// requests; nothing may modify it after Load.
type Artifact struct {
	Version          string
	Model            ScoringFunction
	SkillEncoder     *Encoder
	CareerEncoder    *Encoder
	FeatureColumns   []features.Column
	AllSkills        []string
	SkillsByCategory []catalog.Category
	Careers          []string
}

type artifactFile struct {
	Version          string             `json:"version"`
	Model            modelSpec          `json:"model"`
	SkillEncoder     []string           `json:"skillEncoder"`
	CareerEncoder    []string           `json:"careerEncoder"`
	FeatureColumns   []string           `json:"featureColumns"`
	AllSkills        []string           `json:"allSkills"`
	SkillsByCategory []catalog.Category `json:"skillsByCategory"`
	Careers          []string           `json:"careers"`
}

// Load reads an artifact from path. Files ending in .cbor are decoded as
// CBOR, anything else as JSON.
func Load(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactNotFound, path)
		}
		return nil, fmt.Errorf("%w: read %s: %v", ErrArtifactInvalid, path, err)
	}

	if strings.EqualFold(filepath.Ext(path), ".cbor") {
		return ParseCBOR(data)
	}
	return Parse(data)
}

// ParseCBOR builds an artifact from its CBOR encoding.
func ParseCBOR(data []byte) (*Artifact, error) {
	doc, err := cborToJSON(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}
	return Parse(doc)
}

// Parse builds an artifact from its JSON encoding.
func Parse(data []byte) (*Artifact, error) {
	if err := validateDocument(data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}

	var f artifactFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}

	columns := make([]features.Column, len(f.FeatureColumns))
	for i, name := range f.FeatureColumns {
		col := features.Column(name)
		if !slices.Contains(features.Columns, col) {
			return nil, fmt.Errorf("%w: unknown feature column %q", ErrArtifactInvalid, name)
		}
		columns[i] = col
	}

	fn, err := compile(f.Model, len(columns))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArtifactInvalid, err)
	}

	return &Artifact{
		Version:          f.Version,
		Model:            fn,
		SkillEncoder:     NewEncoder(f.SkillEncoder),
		CareerEncoder:    NewEncoder(f.CareerEncoder),
		FeatureColumns:   columns,
		AllSkills:        f.AllSkills,
		SkillsByCategory: f.SkillsByCategory,
		Careers:          f.Careers,
	}, nil
}

// Catalog returns the skill catalog described by the artifact, extended
// with every skill the artifact or its skill encoder knows.
func (a *Artifact) Catalog() *catalog.Catalog {
	return catalog.New(a.SkillsByCategory).
		WithExtraSkills(a.AllSkills).
		WithExtraSkills(a.SkillEncoder.Classes())
}

// KnowsCareer reports whether career is one of the artifact's careers.
func (a *Artifact) KnowsCareer(career string) bool {
	return slices.Contains(a.Careers, career)
}
