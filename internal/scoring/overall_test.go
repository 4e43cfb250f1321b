package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/langhire/internal/types"
)

func TestScoreOverall_WeightedComposition(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	result := engine.ScoreOverall(
		types.SkillsBreakdown{TotalScore: 90},
		types.ExperienceBreakdown{TotalScore: 85},
		types.EducationBreakdown{TotalScore: 80},
		"Received an award for platform reliability",
	)

	// achievements: base 50 + "award" = 58
	// 0.35*90 + 0.30*85 + 0.15*80 + 0.10*58
	assert.InDelta(t, 74.8, result.OverallScore, 0.001)
	assert.InDelta(t, 90.0, result.ComponentScores.Skills, 0.001)
	assert.InDelta(t, 85.0, result.ComponentScores.Experience, 0.001)
	assert.InDelta(t, 80.0, result.ComponentScores.Education, 0.001)
	assert.InDelta(t, 58.0, result.ComponentScores.Achievements, 0.001)

	assert.Equal(t, "Hire", result.Recommendation.Decision)
	assert.Empty(t, result.RiskFactors)
	assert.ElementsMatch(t, []string{
		"Strong technical skills",
		"Extensive relevant experience",
		"Strong educational background",
	}, result.Strengths)
	assert.Equal(t, "Medium", result.DecisionConfidence)
	assert.Empty(t, result.Error)
}

func TestScoreOverall_ZeroInputs(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	result := engine.ScoreOverall(
		types.SkillsBreakdown{},
		types.ExperienceBreakdown{},
		types.EducationBreakdown{},
		"",
	)

	// only the neutral achievements base contributes: 0.10*50
	assert.InDelta(t, 5.0, result.OverallScore, 0.001)
	assert.Equal(t, "Don't Hire", result.Recommendation.Decision)
	assert.ElementsMatch(t, []string{
		"Significant technical skill gaps",
		"Limited relevant experience",
		"Educational background concerns",
	}, result.RiskFactors)
	assert.Empty(t, result.Strengths)
}

func TestAchievementsScore(t *testing.T) {
	assert.InDelta(t, 50.0, achievementsScore(""), 0.001)
	assert.InDelta(t, 66.0, achievementsScore("increased revenue and built a pipeline"), 0.001)
}

func TestAchievementsScore_CappedAtHundred(t *testing.T) {
	text := "award recognition published patent led team increased improved reduced"

	assert.InDelta(t, 100.0, achievementsScore(text), 0.001)
}

func TestScoreOverall_ThresholdsSeeUnroundedScore(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	// 0.35*100 + 0.30*100 + 0.15*99.98 + 0.10*50 = 84.997: the reported
	// overall rounds up to 85.00, but the unrounded sum sits below the
	// strong-hire cutoff and must classify as a plain Hire.
	result := engine.ScoreOverall(
		types.SkillsBreakdown{TotalScore: 100},
		types.ExperienceBreakdown{TotalScore: 100},
		types.EducationBreakdown{TotalScore: 99.98},
		"",
	)

	assert.InDelta(t, 85.0, result.OverallScore, 0.001)
	assert.Equal(t, "Hire", result.Recommendation.Decision)
	assert.InDelta(t, 84.997, result.Recommendation.Score, 0.001)
}

func TestScoreOverall_ComposedRecommendationBands(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	cases := []struct {
		name                        string
		skills, experience, education float64
		achievements                string
		decision                    string
	}{
		// 31.5 + 28.5 + 14.25 + 10 = 84.25
		{"just under strong hire", 90, 95, 95, "award recognition published patent led team increased improved", "Hire"},
		// 35 + 30 + 15 + 10 = 90
		{"strong hire", 100, 100, 100, "award recognition published patent led team increased improved", "Strong Hire"},
		// 24.5 + 21 + 10.5 + 5 = 61
		{"maybe band", 70, 70, 70, "", "Maybe"},
		// 0 + 0 + 0 + 5 = 5
		{"dont hire band", 0, 0, 0, "", "Don't Hire"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := engine.ScoreOverall(
				types.SkillsBreakdown{TotalScore: tc.skills},
				types.ExperienceBreakdown{TotalScore: tc.experience},
				types.EducationBreakdown{TotalScore: tc.education},
				tc.achievements,
			)
			assert.Equal(t, tc.decision, result.Recommendation.Decision)
		})
	}
}

func TestRecommendation_DefaultThresholdBoundaries(t *testing.T) {
	engine := NewEngine(DefaultThresholds())

	cases := []struct {
		overall    float64
		decision   string
		confidence string
	}{
		{85.0, "Strong Hire", "High"},
		{84.99, "Hire", "Medium-High"},
		{70.0, "Hire", "Medium-High"},
		{69.99, "Maybe", "Medium"},
		{50.0, "Maybe", "Medium"},
		{49.99, "Don't Hire", "High"},
	}

	for _, tc := range cases {
		rec := engine.recommendation(tc.overall)
		assert.Equal(t, tc.decision, rec.Decision, "overall %.2f", tc.overall)
		assert.Equal(t, tc.confidence, rec.Confidence, "overall %.2f", tc.overall)
		assert.InDelta(t, tc.overall, rec.Score, 0.001)
		assert.NotEmpty(t, rec.Reasoning)
	}
}

func TestRecommendation_CustomThresholds(t *testing.T) {
	engine := NewEngine(Thresholds{Hire: 60, StrongHire: 80})

	assert.Equal(t, "Strong Hire", engine.recommendation(80).Decision)
	assert.Equal(t, "Hire", engine.recommendation(60).Decision)
	assert.Equal(t, "Maybe", engine.recommendation(59.99).Decision)
}

func TestRiskFactors_BoundariesAreExclusive(t *testing.T) {
	none := riskFactors(
		types.SkillsBreakdown{TotalScore: 60},
		types.ExperienceBreakdown{TotalScore: 50},
		types.EducationBreakdown{TotalScore: 40},
	)
	assert.Empty(t, none)

	all := riskFactors(
		types.SkillsBreakdown{TotalScore: 59.99},
		types.ExperienceBreakdown{TotalScore: 49.99},
		types.EducationBreakdown{TotalScore: 39.99},
	)
	require.Len(t, all, 3)
}

func TestDecisionConfidence(t *testing.T) {
	cases := []struct {
		name                        string
		overall, skills, experience float64
		want                        string
	}{
		{"agree and decisive high", 85, 90, 80, "High"},
		{"agree and decisive low", 35, 30, 45, "High"},
		{"agree but middling", 74.8, 90, 85, "Medium"},
		{"moderate variance", 60, 70, 45, "Medium"},
		{"wide variance", 50, 90, 40, "Low"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, decisionConfidence(tc.overall, tc.skills, tc.experience))
		})
	}
}

func TestWeights_ActiveSumIsPointNine(t *testing.T) {
	active := skillsWeight + experienceWeight + educationWeight + achievementsWeight

	assert.InDelta(t, 0.90, active, 1e-9)
	assert.InDelta(t, 1.0, active+culturalFitWeight, 1e-9)
}
