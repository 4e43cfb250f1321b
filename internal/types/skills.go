// Package types contains the shared data structures passed between the
// extraction, matching, and scoring layers.
package types

// CategorySkillMap maps a taxonomy category (e.g. "programming_languages")
// to the canonical skills found in a text. Only categories with at least
// one hit are present, and every value is a canonical name owned by that
// category.
type CategorySkillMap map[string][]string

// SkillMatchResult holds the per-category and aggregate statistics from
// comparing a candidate's skills against a job's required skills.
type SkillMatchResult struct {
	// ExactMatches maps category -> required skills the candidate has.
	ExactMatches map[string][]string `json:"exact_matches"`
	// MissingSkills maps category -> required skills the candidate lacks.
	MissingSkills map[string][]string `json:"missing_skills"`
	// CategoryScores maps category -> percentage of required skills
	// matched (0-100). Categories with no required skills are omitted.
	CategoryScores map[string]float64 `json:"category_scores"`
	// OverallScore is total matched / total required * 100, or 0 when
	// nothing is required.
	OverallScore  float64 `json:"overall_score"`
	TotalRequired int     `json:"total_required"`
	TotalMatched  int     `json:"total_matched"`
}
