// internal/engine/catalog/catalog_test.go

package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return New([]Category{
		{Name: "programming", Skills: []string{"Python", "Java", "SQL"}},
		{Name: "data_science", Skills: []string{"Python", "SQL", "Statistics"}},
		{Name: "cloud_devops", Skills: []string{"Docker", "Git", "Docker"}},
	})
}

func TestCategoryOf(t *testing.T) {
	c := testCatalog()

	tests := []struct {
		skill string
		want  string
	}{
		{"Java", "programming"},
		{"Python", "programming"},
		{"Statistics", "data_science"},
		{"Git", "cloud_devops"},
		{"python", Other},
		{"Rust", Other},
		{"", Other},
	}

	for _, tt := range tests {
		t.Run(tt.skill, func(t *testing.T) {
			assert.Equal(t, tt.want, c.CategoryOf(tt.skill))
			assert.Equal(t, tt.want, c.CategoryOf(tt.skill), "lookup must be stable")
		})
	}
}

func TestCategoriesOf(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"programming", "data_science"}, c.CategoriesOf("Python"))
	assert.Equal(t, []string{"cloud_devops"}, c.CategoriesOf("Docker"))
	assert.Empty(t, c.CategoriesOf("Rust"))
}

func TestAllSkills_DeclaredOrderWithoutDuplicates(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"Python", "Java", "SQL", "Statistics", "Docker", "Git"}, c.AllSkills())
	assert.Equal(t, []string{"Docker", "Git"}, c.SkillsIn("cloud_devops"))
	assert.Nil(t, c.SkillsIn("design"))
}

func TestWithExtraSkills(t *testing.T) {
	c := testCatalog()
	extended := c.WithExtraSkills([]string{"Git", "Rust", "Go", "Rust"})

	assert.Equal(t, []string{"Python", "Java", "SQL", "Statistics", "Docker", "Git", "Rust", "Go"}, extended.AllSkills())
	assert.Equal(t, Other, extended.CategoryOf("Rust"))
	assert.Len(t, c.AllSkills(), 6, "original catalog is unchanged")
}

func TestContainsAndCategories(t *testing.T) {
	c := testCatalog()
	assert.Equal(t, []string{"programming", "data_science", "cloud_devops"}, c.Categories())
	assert.True(t, c.Contains("data_science", "SQL"))
	assert.False(t, c.Contains("data_science", "Java"))
	assert.False(t, c.Contains("design", "Figma"))
}

func TestByCategory_ReturnsCopy(t *testing.T) {
	c := testCatalog()
	dump := c.ByCategory()
	require.Len(t, dump, 3)
	dump["programming"][0] = "mutated"
	assert.Equal(t, "Python", c.SkillsIn("programming")[0])
}

func TestCategoryCoverage(t *testing.T) {
	coverage := CategoryCoverage([]string{"Python", "PostgreSQL", "Docker", "Kubernetes"})

	// "postgresql" contains the "sql" term; substring matching is intended here.
	assert.InDelta(t, 2.0/6.0, coverage["programming"], 1e-9)
	assert.InDelta(t, 2.0/6.0, coverage["cloud_devops"], 1e-9)
	assert.Equal(t, 0.0, coverage["design"])
	assert.Len(t, coverage, len(CoverageTerms))
}

func TestCategoryCoverage_Capped(t *testing.T) {
	skills := []string{"UI Design", "UX Research", "Figma", "Prototyping", "User Research", "UI Kits", "UX Writing"}
	coverage := CategoryCoverage(skills)
	assert.Equal(t, 1.0, coverage["design"])
}

func TestCategoryCoverage_DiffersFromMembership(t *testing.T) {
	c := testCatalog()
	// Exact membership knows nothing about lowercase "python"; coverage does.
	assert.Equal(t, Other, c.CategoryOf("python"))
	assert.Greater(t, CategoryCoverage([]string{"python"})["programming"], 0.0)
}
