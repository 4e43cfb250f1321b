package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/langhire/internal/types"
)

// achievementKeywords each add 8 points to the base achievements score.
var achievementKeywords = []string{
	"award", "recognition", "published", "patent", "led team",
	"increased", "improved", "reduced", "saved", "grew", "built",
}

// ScoreOverall combines the factor breakdowns and the candidate's
// achievements text into the final hiring signal: weighted overall score,
// recommendation, risk factors, strengths, and a decision confidence
// label. Failures come back as a zeroed result with the message in Error.
func (e *Engine) ScoreOverall(
	skills types.SkillsBreakdown,
	experience types.ExperienceBreakdown,
	education types.EducationBreakdown,
	achievements string,
) (result types.OverallResult) {
	defer func() {
		if r := recover(); r != nil {
			result = types.OverallResult{Error: fmt.Sprintf("overall scoring error: %v", r)}
		}
	}()

	achievementsScore := achievementsScore(strings.ToLower(achievements))

	// Thresholds, confidence, and the recommendation score all see the
	// unrounded sum; only the reported overall is rounded. Rounding
	// first would promote scores in the sliver just under a cutoff.
	overall := skills.TotalScore*skillsWeight +
		experience.TotalScore*experienceWeight +
		education.TotalScore*educationWeight +
		achievementsScore*achievementsWeight

	return types.OverallResult{
		OverallScore: round2(overall),
		ComponentScores: types.ComponentScores{
			Skills:       skills.TotalScore,
			Experience:   experience.TotalScore,
			Education:    education.TotalScore,
			Achievements: achievementsScore,
		},
		Recommendation:     e.recommendation(overall),
		RiskFactors:        riskFactors(skills, experience, education),
		Strengths:          strengths(skills, experience, education),
		DecisionConfidence: decisionConfidence(overall, skills.TotalScore, experience.TotalScore),
	}
}

func achievementsScore(achievements string) float64 {
	score := 50.0
	for _, keyword := range achievementKeywords {
		if strings.Contains(achievements, keyword) {
			score += 8
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}

func (e *Engine) recommendation(overall float64) types.Recommendation {
	var decision, confidence, reasoning string
	switch {
	case overall >= e.thresholds.StrongHire:
		decision = "Strong Hire"
		confidence = "High"
		reasoning = "Candidate demonstrates strong alignment with role requirements"
	case overall >= e.thresholds.Hire:
		decision = "Hire"
		confidence = "Medium-High"
		reasoning = "Candidate meets most requirements with some areas for development"
	case overall >= 50:
		decision = "Maybe"
		confidence = "Medium"
		reasoning = "Candidate shows potential but has significant gaps"
	default:
		decision = "Don't Hire"
		confidence = "High"
		reasoning = "Candidate does not meet minimum requirements"
	}

	return types.Recommendation{
		Decision:   decision,
		Confidence: confidence,
		Reasoning:  reasoning,
		Score:      overall,
	}
}

func riskFactors(skills types.SkillsBreakdown, experience types.ExperienceBreakdown, education types.EducationBreakdown) []string {
	risks := []string{}
	if skills.TotalScore < 60 {
		risks = append(risks, "Significant technical skill gaps")
	}
	if experience.TotalScore < 50 {
		risks = append(risks, "Limited relevant experience")
	}
	if education.TotalScore < 40 {
		risks = append(risks, "Educational background concerns")
	}
	return risks
}

func strengths(skills types.SkillsBreakdown, experience types.ExperienceBreakdown, education types.EducationBreakdown) []string {
	found := []string{}
	if skills.TotalScore >= 80 {
		found = append(found, "Strong technical skills")
	}
	if experience.TotalScore >= 80 {
		found = append(found, "Extensive relevant experience")
	}
	if education.TotalScore >= 80 {
		found = append(found, "Strong educational background")
	}
	return found
}

// decisionConfidence reflects how much the skills and experience factors
// agree: low variance with a decisive overall score means high
// confidence, wide variance means low.
func decisionConfidence(overall, skillsTotal, experienceTotal float64) string {
	variance := skillsTotal - experienceTotal
	if variance < 0 {
		variance = -variance
	}

	switch {
	case variance < 20 && (overall > 80 || overall < 40):
		return "High"
	case variance < 30:
		return "Medium"
	default:
		return "Low"
	}
}
