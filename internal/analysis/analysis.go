// Package analysis orchestrates a full candidate-vs-job evaluation:
// skill extraction for both texts, matching, factor scoring, and the
// final report assembly. It holds no state and is safe for concurrent
// invocations.
package analysis

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/langhire/internal/scoring"
	"github.com/jonathan/langhire/internal/skills"
	"github.com/jonathan/langhire/internal/types"
)

// Request carries the inputs for one analysis. CandidateText and JobText
// are required. Profile and Posting are optional pre-structured fields
// from an upstream analysis layer; when nil, the raw texts stand in for
// every sub-field.
type Request struct {
	CandidateText string
	JobText       string
	Profile       *types.CandidateProfile
	Posting       *types.JobPosting
}

// Report is the complete analysis output for one (candidate, job) pair.
// Reports are assembled per request and never persisted.
type Report struct {
	AnalysisID      string                    `json:"analysis_id"`
	CreatedAt       time.Time                 `json:"created_at"`
	CandidateSkills types.CategorySkillMap    `json:"candidate_skills"`
	JobSkills       types.CategorySkillMap    `json:"job_skills"`
	Match           types.SkillMatchResult    `json:"match"`
	Skills          types.SkillsBreakdown     `json:"skills"`
	Experience      types.ExperienceBreakdown `json:"experience"`
	Education       types.EducationBreakdown  `json:"education"`
	Overall         types.OverallResult       `json:"overall"`
	Recommendations map[string][]string       `json:"skill_recommendations,omitempty"`
	SkillDepth      map[string]string         `json:"skill_depth,omitempty"`
}

// Run performs a full analysis. The candidate and job texts are scanned
// independently, so the two extractions run concurrently.
func Run(ctx context.Context, engine *scoring.Engine, req Request) (*Report, error) {
	if strings.TrimSpace(req.CandidateText) == "" {
		return nil, fmt.Errorf("candidate text is required")
	}
	if strings.TrimSpace(req.JobText) == "" {
		return nil, fmt.Errorf("job text is required")
	}

	profile := resolveProfile(req)
	posting := resolvePosting(req)

	var candidateSkills, jobSkills types.CategorySkillMap
	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error {
		candidateSkills = skills.Extract(req.CandidateText)
		return nil
	})
	g.Go(func() error {
		jobSkills = skills.Extract(req.JobText)
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	match := skills.Match(candidateSkills, jobSkills)

	skillsBreakdown := engine.ScoreSkills(match)
	experience := engine.ScoreExperience(profile)
	education := engine.ScoreEducation(profile, posting)
	overall := engine.ScoreOverall(skillsBreakdown, experience, education, profile.Achievements)

	return &Report{
		AnalysisID:      uuid.NewString(),
		CreatedAt:       time.Now().UTC(),
		CandidateSkills: candidateSkills,
		JobSkills:       jobSkills,
		Match:           match,
		Skills:          skillsBreakdown,
		Experience:      experience,
		Education:       education,
		Overall:         overall,
		Recommendations: skills.Recommendations(match.MissingSkills),
		SkillDepth:      skills.AnalyzeDepth(req.CandidateText, matchedSkills(match)),
	}, nil
}

// resolveProfile applies the documented defaults: without a structured
// profile, the raw resume text serves as work history, education, and
// achievements source.
func resolveProfile(req Request) types.CandidateProfile {
	if req.Profile != nil {
		return *req.Profile
	}
	return types.CandidateProfile{
		WorkHistory:  req.CandidateText,
		Education:    req.CandidateText,
		Achievements: req.CandidateText,
	}
}

func resolvePosting(req Request) types.JobPosting {
	if req.Posting != nil {
		return *req.Posting
	}
	return types.JobPosting{
		Description:             req.JobText,
		EducationalRequirements: req.JobText,
	}
}

func matchedSkills(match types.SkillMatchResult) []string {
	var names []string
	for _, categorySkills := range match.ExactMatches {
		names = append(names, categorySkills...)
	}
	sort.Strings(names)
	return names
}
