// internal/engine/catalog/catalog.go

// Package catalog maps skills to the categories they belong to.
package catalog

import (
	"slices"
	"strings"
)

// Other is the category of any skill no declared category contains.
const Other = "other"

// Category is one named, ordered skill set.
type Category struct {
	Name   string   `json:"category"`
	Skills []string `json:"skills"`
}

// Catalog is immutable once built. Category order is the declaration order
// and decides which category wins for skills listed more than once.
type Catalog struct {
	categories []Category
	members    []map[string]struct{}
	index      map[string]int
	all        []string
}

func New(categories []Category) *Catalog {
	c := &Catalog{
		categories: make([]Category, 0, len(categories)),
		members:    make([]map[string]struct{}, 0, len(categories)),
		index:      make(map[string]int, len(categories)),
	}
	seen := make(map[string]struct{})
	for _, cat := range categories {
		if _, dup := c.index[cat.Name]; dup {
			continue
		}
		set := make(map[string]struct{}, len(cat.Skills))
		skills := make([]string, 0, len(cat.Skills))
		for _, s := range cat.Skills {
			if _, ok := set[s]; ok {
				continue
			}
			set[s] = struct{}{}
			skills = append(skills, s)
			if _, ok := seen[s]; !ok {
				seen[s] = struct{}{}
				c.all = append(c.all, s)
			}
		}
		c.index[cat.Name] = len(c.categories)
		c.categories = append(c.categories, Category{Name: cat.Name, Skills: skills})
		c.members = append(c.members, set)
	}
	return c
}

// WithExtraSkills returns a copy whose AllSkills also lists skills that
// belong to no category, appended in the given order.
func (c *Catalog) WithExtraSkills(skills []string) *Catalog {
	out := *c
	out.all = slices.Clone(c.all)
	known := make(map[string]struct{}, len(out.all))
	for _, s := range out.all {
		known[s] = struct{}{}
	}
	for _, s := range skills {
		if _, ok := known[s]; ok {
			continue
		}
		known[s] = struct{}{}
		out.all = append(out.all, s)
	}
	return &out
}

// CategoryOf returns the first declared category containing skill exactly,
// or Other.
func (c *Catalog) CategoryOf(skill string) string {
	for i, set := range c.members {
		if _, ok := set[skill]; ok {
			return c.categories[i].Name
		}
	}
	return Other
}

// CategoriesOf returns every category containing skill, in declared order.
func (c *Catalog) CategoriesOf(skill string) []string {
	var names []string
	for i, set := range c.members {
		if _, ok := set[skill]; ok {
			names = append(names, c.categories[i].Name)
		}
	}
	return names
}

func (c *Catalog) Contains(category, skill string) bool {
	i, ok := c.index[category]
	if !ok {
		return false
	}
	_, ok = c.members[i][skill]
	return ok
}

func (c *Catalog) Categories() []string {
	names := make([]string, len(c.categories))
	for i, cat := range c.categories {
		names[i] = cat.Name
	}
	return names
}

func (c *Catalog) SkillsIn(category string) []string {
	i, ok := c.index[category]
	if !ok {
		return nil
	}
	return slices.Clone(c.categories[i].Skills)
}

// AllSkills is the union of all category skills plus extra skills, in
// declaration order.
func (c *Catalog) AllSkills() []string {
	return slices.Clone(c.all)
}

// ByCategory returns a copy of the category to skills mapping.
func (c *Catalog) ByCategory() map[string][]string {
	out := make(map[string][]string, len(c.categories))
	for _, cat := range c.categories {
		out[cat.Name] = slices.Clone(cat.Skills)
	}
	return out
}

// CoverageTerms are the fixed defining terms of each category used by
// CategoryCoverage. They do not grow with the catalog.
var CoverageTerms = []Category{
	{Name: "programming", Skills: []string{"python", "java", "go", "c++", "rust", "sql"}},
	{Name: "web_development", Skills: []string{"javascript", "typescript", "react", "node", "html", "css"}},
	{Name: "data_science", Skills: []string{"machine learning", "statistics", "pandas", "data", "analytics"}},
	{Name: "cloud_devops", Skills: []string{"docker", "kubernetes", "aws", "ci/cd", "linux", "terraform"}},
	{Name: "design", Skills: []string{"figma", "ui", "ux", "prototyp", "research"}},
	{Name: "business", Skills: []string{"management", "communication", "agile", "strategy", "excel"}},
}

// CategoryCoverage scores, per category, how many of skills contain one of
// the category's defining terms (case-insensitive substring), relative to the
// size of the term list and capped at 1.0.
func CategoryCoverage(skills []string) map[string]float64 {
	lowered := make([]string, len(skills))
	for i, s := range skills {
		lowered[i] = strings.ToLower(s)
	}

	out := make(map[string]float64, len(CoverageTerms))
	for _, cat := range CoverageTerms {
		count := 0
		for _, skill := range lowered {
			for _, term := range cat.Skills {
				if strings.Contains(skill, term) {
					count++
					break
				}
			}
		}
		out[cat.Name] = min(1.0, float64(count)/float64(len(cat.Skills)))
	}
	return out
}
