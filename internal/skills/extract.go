// Package skills finds taxonomy terms in free text and compares the
// resulting category skill sets between a candidate and a job.
package skills

import (
	"sort"
	"strings"

	"github.com/jonathan/langhire/internal/taxonomy"
	"github.com/jonathan/langhire/internal/types"
)

// Extract scans text for taxonomy and synonym terms and groups the hits
// by category using the default taxonomy.
func Extract(text string) types.CategorySkillMap {
	return ExtractWith(taxonomy.Default(), text)
}

// ExtractWith scans text against a specific taxonomy. A term counts as
// mentioned only when it appears bounded by word boundaries in the
// lower-cased text; synonym hits are recorded under their canonical name.
// Overlapping canonicals ("c" inside text that also mentions "c++") may
// both match; no disambiguation is attempted.
func ExtractWith(tax *taxonomy.Taxonomy, text string) types.CategorySkillMap {
	lowered := strings.ToLower(text)
	found := make(map[string]map[string]bool)

	record := func(category, canonical string) {
		if found[category] == nil {
			found[category] = make(map[string]bool)
		}
		found[category][canonical] = true
	}

	for _, category := range tax.Categories() {
		for _, canonical := range tax.Skills(category) {
			if tax.Mentioned(canonical, lowered) {
				record(category, canonical)
			}
		}
	}

	for _, canonical := range tax.SynonymCanonicals() {
		for _, alt := range tax.Alternates(canonical) {
			if tax.Mentioned(alt, lowered) {
				category, _ := tax.Owner(canonical)
				record(category, canonical)
				break
			}
		}
	}

	result := make(types.CategorySkillMap, len(found))
	for category, set := range found {
		skills := make([]string, 0, len(set))
		for skill := range set {
			skills = append(skills, skill)
		}
		sort.Strings(skills)
		result[category] = skills
	}

	return result
}
