package types

// SkillsDetails carries supplementary counts alongside the skills breakdown.
type SkillsDetails struct {
	ExactMatchesCount      int     `json:"exact_matches_count"`
	MissingCriticalSkills  int     `json:"missing_critical_skills"`
	OverallMatchPercentage float64 `json:"overall_match_percentage"`
}

// SkillsBreakdown is the scored decomposition of a skill match result.
// Error is set only when scoring failed internally; in that case every
// sub-score is zero and the struct is still safe to render.
type SkillsBreakdown struct {
	TechnicalSkills float64       `json:"technical_skills"`
	SkillDepth      float64       `json:"skill_depth"`
	SkillRelevance  float64       `json:"skill_relevance"`
	TotalScore      float64       `json:"total_score"`
	Details         SkillsDetails `json:"details"`
	Error           string        `json:"error,omitempty"`
}

// ExperienceBreakdown is the scored decomposition of a work history.
type ExperienceBreakdown struct {
	YearsOfExperience float64 `json:"years_of_experience"`
	RoleRelevance     float64 `json:"role_relevance"`
	IndustryMatch     float64 `json:"industry_match"`
	CareerProgression float64 `json:"career_progression"`
	TotalScore        float64 `json:"total_score"`
	Error             string  `json:"error,omitempty"`
}

// EducationBreakdown is the scored decomposition of an education record
// against a job's educational requirements.
type EducationBreakdown struct {
	DegreeMatch    float64 `json:"degree_match"`
	FieldRelevance float64 `json:"field_relevance"`
	Certifications float64 `json:"certifications"`
	TotalScore     float64 `json:"total_score"`
	Error          string  `json:"error,omitempty"`
}

// Recommendation is the hire/no-hire decision derived from the overall score.
type Recommendation struct {
	Decision   string  `json:"decision"`
	Confidence string  `json:"confidence"`
	Reasoning  string  `json:"reasoning"`
	Score      float64 `json:"score"`
}

// ComponentScores lists the per-factor totals feeding the overall score.
type ComponentScores struct {
	Skills       float64 `json:"skills"`
	Experience   float64 `json:"experience"`
	Education    float64 `json:"education"`
	Achievements float64 `json:"achievements"`
}

// OverallResult is the final hiring signal for one (candidate, job) pair.
type OverallResult struct {
	OverallScore       float64         `json:"overall_score"`
	ComponentScores    ComponentScores `json:"component_scores"`
	Recommendation     Recommendation  `json:"recommendation"`
	RiskFactors        []string        `json:"risk_factors"`
	Strengths          []string        `json:"strengths"`
	DecisionConfidence string          `json:"decision_confidence"`
	// Error is set only when overall scoring failed internally.
	Error string `json:"error,omitempty"`
}
