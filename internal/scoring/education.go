package scoring

import (
	"fmt"
	"strings"

	"github.com/jonathan/langhire/internal/types"
)

// degreeSearchOrder is scanned highest rank first, so the first degree
// word found in a text is the highest one it mentions.
var degreeSearchOrder = []string{"phd", "doctorate", "master", "bachelor", "associate"}

var degreeRank = map[string]int{
	"associate": 1,
	"bachelor":  2,
	"master":    3,
	"doctorate": 4,
	"phd":       4,
}

var technicalFields = []string{
	"computer science", "software", "engineering", "technology",
	"information systems", "data science", "mathematics", "statistics",
}

var certificationKeywords = []string{
	"certified", "certification", "aws", "azure", "google cloud",
	"pmp", "scrum master", "agile", "itil", "cissp",
}

// ScoreEducation scores a candidate's education against the job's
// educational requirements. Degree match and field relevance carry 40%
// each, certifications 20%. Failures come back as a zeroed breakdown
// with the message in Error.
func (e *Engine) ScoreEducation(profile types.CandidateProfile, job types.JobPosting) (breakdown types.EducationBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = types.EducationBreakdown{Error: fmt.Sprintf("education scoring error: %v", r)}
		}
	}()

	education := strings.ToLower(profile.Education)
	required := strings.ToLower(job.EducationalRequirements)

	degree := degreeMatchScore(education, required)
	field := fieldRelevanceScore(education, required)
	certs := certificationScore(strings.ToLower(profile.Achievements))

	total := degree*0.4 + field*0.4 + certs*0.2

	return types.EducationBreakdown{
		DegreeMatch:    degree,
		FieldRelevance: field,
		Certifications: certs,
		TotalScore:     round2(total),
	}
}

// degreeMatchScore compares the highest degree word in each text. Degrees
// are detected by plain containment, matching how loosely the source
// texts spell them ("Master's of Science", "bachelors degree").
func degreeMatchScore(education, required string) float64 {
	candidateDegree := highestDegree(education)
	requiredDegree := highestDegree(required)

	if requiredDegree == "" {
		return 80 // no specific requirement
	}
	if candidateDegree == "" {
		return 30 // no degree mentioned
	}

	candidateLevel := degreeRank[candidateDegree]
	requiredLevel := degreeRank[requiredDegree]

	switch {
	case candidateLevel >= requiredLevel:
		return 100
	case candidateLevel == requiredLevel-1:
		return 70
	default:
		return 40
	}
}

func highestDegree(text string) string {
	for _, degree := range degreeSearchOrder {
		if strings.Contains(text, degree) {
			return degree
		}
	}
	return ""
}

func fieldRelevanceScore(education, required string) float64 {
	requiresTechnical := containsAny(required, technicalFields)
	if !requiresTechnical {
		return 80 // no specific field requirement
	}
	if containsAny(education, technicalFields) {
		return 90
	}
	return 50
}

// certificationScore counts distinct certification keywords in the
// candidate's achievements text, 20 points apiece, capped at 100.
func certificationScore(achievements string) float64 {
	count := 0
	for _, keyword := range certificationKeywords {
		if strings.Contains(achievements, keyword) {
			count++
		}
	}
	score := float64(count * 20)
	if score > 100 {
		score = 100
	}
	return score
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
