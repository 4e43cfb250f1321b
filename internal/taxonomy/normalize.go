package taxonomy

import (
	"regexp"
	"strings"
)

var (
	leadingQualifier = regexp.MustCompile(`^(expert|advanced|proficient|experienced)\s+`)
	trailingNoun     = regexp.MustCompile(`\s+(experiences?|skills?)$`)
	parenthetical    = regexp.MustCompile(`\s*\([^)]*\)`)
	trailingVersion  = regexp.MustCompile(`\s+\d+(\.\d+)?\+?$`)
)

// Normalize canonicalizes a raw skill string for comparison: lower-cases
// and trims, strips a leading proficiency qualifier ("expert python"),
// a trailing "experience"/"skills" noun, parenthetical suffixes
// ("java (5+ years)"), and a trailing standalone version number
// ("python 3.9+"). Pure and deterministic.
func Normalize(raw string) string {
	skill := strings.TrimSpace(strings.ToLower(raw))

	skill = leadingQualifier.ReplaceAllString(skill, "")
	skill = trailingNoun.ReplaceAllString(skill, "")
	skill = parenthetical.ReplaceAllString(skill, "")
	skill = trailingVersion.ReplaceAllString(skill, "")

	return strings.TrimSpace(skill)
}
