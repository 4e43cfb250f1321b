package skills

import (
	"sort"

	"github.com/jonathan/langhire/internal/types"
)

// Match compares a candidate's extracted skills against a job's required
// skills. Categories with no required skills are skipped entirely; for
// the rest it records exact matches, missing skills, a per-category
// percentage, and the aggregate match percentage. Purely functional.
func Match(candidate, required types.CategorySkillMap) types.SkillMatchResult {
	result := types.SkillMatchResult{
		ExactMatches:   make(map[string][]string),
		MissingSkills:  make(map[string][]string),
		CategoryScores: make(map[string]float64),
	}

	for _, category := range unionCategories(candidate, required) {
		requiredSet := toSet(required[category])
		if len(requiredSet) == 0 {
			continue
		}
		candidateSet := toSet(candidate[category])

		exact := make([]string, 0, len(requiredSet))
		missing := make([]string, 0, len(requiredSet))
		for skill := range requiredSet {
			if candidateSet[skill] {
				exact = append(exact, skill)
			} else {
				missing = append(missing, skill)
			}
		}
		sort.Strings(exact)
		sort.Strings(missing)

		result.ExactMatches[category] = exact
		result.MissingSkills[category] = missing
		result.CategoryScores[category] = float64(len(exact)) / float64(len(requiredSet)) * 100

		result.TotalRequired += len(requiredSet)
		result.TotalMatched += len(exact)
	}

	if result.TotalRequired > 0 {
		result.OverallScore = float64(result.TotalMatched) / float64(result.TotalRequired) * 100
	}

	return result
}

func unionCategories(a, b types.CategorySkillMap) []string {
	seen := make(map[string]bool, len(a)+len(b))
	for category := range a {
		seen[category] = true
	}
	for category := range b {
		seen[category] = true
	}

	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}

func toSet(skills []string) map[string]bool {
	set := make(map[string]bool, len(skills))
	for _, skill := range skills {
		set[skill] = true
	}
	return set
}
