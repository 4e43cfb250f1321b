package skills

import "strings"

// depthWindow is how many characters around a skill mention are scanned
// for proficiency indicators.
const depthWindow = 50

// depthLevels is checked in order; the first level with an indicator
// near the mention wins.
var depthLevels = []struct {
	level      string
	indicators []string
}{
	{"expert", []string{"expert", "lead", "senior", "architect", "advanced", "10+ years", "extensive"}},
	{"proficient", []string{"proficient", "experienced", "solid", "strong", "5+ years", "commercial"}},
	{"intermediate", []string{"intermediate", "working knowledge", "familiar", "some experience", "2+ years"}},
	{"beginner", []string{"basic", "beginner", "learning", "exposure", "introduction", "started"}},
}

// AnalyzeDepth estimates the depth of experience for each skill by looking
// for proficiency indicators within a small window around the skill's
// first mention. Skills found without nearby indicators are labeled
// "mentioned"; skills not found at all keep that default too.
func AnalyzeDepth(text string, skills []string) map[string]string {
	lowered := strings.ToLower(text)
	depth := make(map[string]string, len(skills))

	for _, skill := range skills {
		depth[skill] = "mentioned"

		pos := strings.Index(lowered, strings.ToLower(skill))
		if pos < 0 {
			continue
		}

		start := max(0, pos-depthWindow)
		end := min(len(lowered), pos+depthWindow)
		window := lowered[start:end]

		for _, candidate := range depthLevels {
			matched := false
			for _, indicator := range candidate.indicators {
				if strings.Contains(window, indicator) {
					depth[skill] = candidate.level
					matched = true
					break
				}
			}
			if matched {
				break
			}
		}
	}

	return depth
}
