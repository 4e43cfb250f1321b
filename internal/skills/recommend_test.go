package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendations_KnownCategories(t *testing.T) {
	missing := map[string][]string{
		"programming_languages": {"rust"},
		"cloud_platforms":       {"aws", "kubernetes"},
	}

	recs := Recommendations(missing)

	require.Contains(t, recs, "programming_languages")
	require.Contains(t, recs, "cloud_platforms")
	assert.Contains(t, recs["cloud_platforms"][0], "certifications")
}

func TestRecommendations_FallbackCategory(t *testing.T) {
	recs := Recommendations(map[string][]string{
		"soft_skills": {"leadership"},
	})

	require.Len(t, recs["soft_skills"], 1)
	assert.Contains(t, recs["soft_skills"][0], "soft_skills")
}

func TestRecommendations_EmptyGapsOmitted(t *testing.T) {
	recs := Recommendations(map[string][]string{
		"programming_languages": {},
		"databases":             nil,
	})

	assert.Empty(t, recs)
}
