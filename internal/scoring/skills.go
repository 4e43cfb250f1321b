package scoring

import (
	"fmt"
	"math"

	"github.com/jonathan/langhire/internal/types"
)

// ScoreSkills scores a skill match result. Technical skills carry 40% of
// the total, depth and relevance 30% each. A failure inside the
// computation is never surfaced as an error; the breakdown comes back
// zeroed with the message in Error.
func (e *Engine) ScoreSkills(match types.SkillMatchResult) (breakdown types.SkillsBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = types.SkillsBreakdown{Error: fmt.Sprintf("skills scoring error: %v", r)}
		}
	}()

	exactCount := countAll(match.ExactMatches)
	missingCount := countAll(match.MissingSkills)

	technical := math.Min(match.OverallScore, 100)
	depth := skillDepthScore(exactCount)
	relevance := skillRelevanceScore(exactCount, missingCount)

	total := technical*0.4 + depth*0.3 + relevance*0.3

	return types.SkillsBreakdown{
		TechnicalSkills: technical,
		SkillDepth:      depth,
		SkillRelevance:  relevance,
		TotalScore:      round2(total),
		Details: types.SkillsDetails{
			ExactMatchesCount:      exactCount,
			MissingCriticalSkills:  missingCount,
			OverallMatchPercentage: match.OverallScore,
		},
	}
}

// skillDepthScore maps the total exact-match count onto a step function.
func skillDepthScore(exactCount int) float64 {
	switch {
	case exactCount >= 8:
		return 90
	case exactCount >= 5:
		return 75
	case exactCount >= 3:
		return 60
	default:
		return 40
	}
}

// skillRelevanceScore is the matched share of all required skills, or a
// neutral 50 when there were no required skills at all.
func skillRelevanceScore(exactCount, missingCount int) float64 {
	if exactCount+missingCount == 0 {
		return 50
	}
	relevance := float64(exactCount) / float64(exactCount+missingCount) * 100
	return math.Min(relevance, 100)
}
