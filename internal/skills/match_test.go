package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/langhire/internal/types"
)

func TestMatch_PartialOverlap(t *testing.T) {
	candidate := types.CategorySkillMap{
		"programming_languages": {"python", "java"},
	}
	required := types.CategorySkillMap{
		"programming_languages": {"python", "javascript"},
	}

	result := Match(candidate, required)

	assert.Equal(t, []string{"python"}, result.ExactMatches["programming_languages"])
	assert.Equal(t, []string{"javascript"}, result.MissingSkills["programming_languages"])
	assert.InDelta(t, 50.0, result.CategoryScores["programming_languages"], 0.001)
	assert.Equal(t, 2, result.TotalRequired)
	assert.Equal(t, 1, result.TotalMatched)
	assert.InDelta(t, 50.0, result.OverallScore, 0.001)
}

func TestMatch_IdenticalSets(t *testing.T) {
	skills := types.CategorySkillMap{
		"programming_languages": {"go", "python"},
		"databases":             {"postgresql"},
	}

	result := Match(skills, skills)

	assert.InDelta(t, 100.0, result.OverallScore, 0.001)
	for category, score := range result.CategoryScores {
		assert.InDelta(t, 100.0, score, 0.001, "category %s", category)
		assert.Empty(t, result.MissingSkills[category])
	}
}

func TestMatch_CandidateOnlyCategorySkipped(t *testing.T) {
	candidate := types.CategorySkillMap{
		"programming_languages": {"python"},
		"soft_skills":           {"leadership"},
	}
	required := types.CategorySkillMap{
		"programming_languages": {"python"},
	}

	result := Match(candidate, required)

	assert.NotContains(t, result.CategoryScores, "soft_skills")
	assert.Equal(t, 1, result.TotalRequired)
	assert.InDelta(t, 100.0, result.OverallScore, 0.001)
}

func TestMatch_RequiredOnlyCategoryCountsAsMissing(t *testing.T) {
	candidate := types.CategorySkillMap{}
	required := types.CategorySkillMap{
		"cloud_platforms": {"aws", "kubernetes"},
	}

	result := Match(candidate, required)

	assert.Empty(t, result.ExactMatches["cloud_platforms"])
	assert.ElementsMatch(t, []string{"aws", "kubernetes"}, result.MissingSkills["cloud_platforms"])
	assert.InDelta(t, 0.0, result.CategoryScores["cloud_platforms"], 0.001)
	assert.InDelta(t, 0.0, result.OverallScore, 0.001)
}

func TestMatch_NoRequirementsYieldsZeroOverall(t *testing.T) {
	candidate := types.CategorySkillMap{
		"programming_languages": {"python"},
	}

	result := Match(candidate, types.CategorySkillMap{})

	assert.Zero(t, result.TotalRequired)
	assert.InDelta(t, 0.0, result.OverallScore, 0.001)
	assert.Empty(t, result.CategoryScores)
}

func TestMatch_DuplicatesCollapse(t *testing.T) {
	candidate := types.CategorySkillMap{
		"programming_languages": {"python", "python"},
	}
	required := types.CategorySkillMap{
		"programming_languages": {"python", "python", "go"},
	}

	result := Match(candidate, required)

	assert.Equal(t, 2, result.TotalRequired)
	assert.Equal(t, 1, result.TotalMatched)
	assert.InDelta(t, 50.0, result.OverallScore, 0.001)
}

func TestMatch_MoreMatchesNeverLowersScore(t *testing.T) {
	required := types.CategorySkillMap{
		"programming_languages": {"python", "go", "rust"},
	}

	previous := -1.0
	for _, candidate := range []types.CategorySkillMap{
		{},
		{"programming_languages": {"python"}},
		{"programming_languages": {"python", "go"}},
		{"programming_languages": {"python", "go", "rust"}},
	} {
		result := Match(candidate, required)
		require.GreaterOrEqual(t, result.OverallScore, previous)
		previous = result.OverallScore
	}
}
