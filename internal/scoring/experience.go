package scoring

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/langhire/internal/types"
)

// Placeholder sub-scores for factors that need structured experience data
// the text-only pipeline does not have. Preserved as fixed constants.
const (
	placeholderRoleRelevance = 75
	placeholderIndustryMatch = 70
)

var (
	singleYearsPattern = regexp.MustCompile(`(\d+)\+?\s*years?`)
	yearRangePattern   = regexp.MustCompile(`(\d{4})\s*-\s*(\d{4})`)
	openRangePattern   = regexp.MustCompile(`(\d{4})\s*-\s*present`)
)

// seniorityKeywords signal career progression; each distinct keyword found
// adds 10 points on top of the base progression score.
var seniorityKeywords = []string{
	"promoted", "senior", "lead", "manager", "director",
	"principal", "architect", "head of", "chief",
}

// ScoreExperience scores a candidate's work history text. Years of
// experience carry 30% of the total, role relevance 40%, industry match
// 20%, and career progression 10%. Failures come back as a zeroed
// breakdown with the message in Error.
func (e *Engine) ScoreExperience(profile types.CandidateProfile) (breakdown types.ExperienceBreakdown) {
	defer func() {
		if r := recover(); r != nil {
			breakdown = types.ExperienceBreakdown{Error: fmt.Sprintf("experience scoring error: %v", r)}
		}
	}()

	work := strings.ToLower(profile.WorkHistory)

	years := yearsScore(totalYears(work))
	role := float64(placeholderRoleRelevance)
	industry := float64(placeholderIndustryMatch)
	progression := careerProgressionScore(work)

	total := years*0.3 + role*0.4 + industry*0.2 + progression*0.1

	return types.ExperienceBreakdown{
		YearsOfExperience: years,
		RoleRelevance:     role,
		IndustryMatch:     industry,
		CareerProgression: progression,
		TotalScore:        round2(total),
	}
}

// totalYears extracts years of experience from lower-cased work history
// text: the largest "N+ years" mention plus the summed durations of
// "Y1-Y2" and "Y1-present" ranges, with "present" meaning the current
// year.
func totalYears(work string) int {
	years := 0
	for _, m := range singleYearsPattern.FindAllStringSubmatch(work, -1) {
		if n, err := strconv.Atoi(m[1]); err == nil && n > years {
			years = n
		}
	}

	currentYear := time.Now().Year()
	for _, m := range yearRangePattern.FindAllStringSubmatch(work, -1) {
		start, err1 := strconv.Atoi(m[1])
		end, err2 := strconv.Atoi(m[2])
		if err1 == nil && err2 == nil {
			years += end - start
		}
	}
	for _, m := range openRangePattern.FindAllStringSubmatch(work, -1) {
		if start, err := strconv.Atoi(m[1]); err == nil {
			years += currentYear - start
		}
	}

	return years
}

func yearsScore(years int) float64 {
	switch {
	case years >= 10:
		return 100
	case years >= 7:
		return 90
	case years >= 5:
		return 80
	case years >= 3:
		return 70
	case years >= 1:
		return 60
	default:
		return 30
	}
}

func careerProgressionScore(work string) float64 {
	score := 50.0
	for _, keyword := range seniorityKeywords {
		if strings.Contains(work, keyword) {
			score += 10
		}
	}
	if score > 100 {
		score = 100
	}
	return score
}
