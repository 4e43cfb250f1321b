// Package scoring turns skill-match statistics and free-text profile
// fields into factor scores, an overall score, and a hire recommendation.
// Every score is a pure function of its inputs composed through fixed
// weights; the engine holds no state beyond its immutable thresholds.
package scoring

import "math"

// Overall score weights. A cultural-fit factor was planned but never
// scored, so the active weights intentionally sum to 0.90 rather than
// being renormalized.
const (
	skillsWeight       = 0.35
	experienceWeight   = 0.30
	educationWeight    = 0.15
	achievementsWeight = 0.10
	culturalFitWeight  = 0.10
)

// Thresholds are the score cutoffs separating recommendation tiers.
type Thresholds struct {
	Hire       float64
	StrongHire float64
}

// DefaultThresholds returns the standard hire/strong-hire cutoffs.
func DefaultThresholds() Thresholds {
	return Thresholds{Hire: 70, StrongHire: 85}
}

// Engine scores candidates against jobs. Construct one per configuration;
// it is immutable and safe for concurrent use.
type Engine struct {
	thresholds Thresholds
}

// NewEngine creates an engine with the given recommendation thresholds.
func NewEngine(thresholds Thresholds) *Engine {
	return &Engine{thresholds: thresholds}
}

// Thresholds returns the engine's recommendation cutoffs.
func (e *Engine) Thresholds() Thresholds {
	return e.thresholds
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func countAll(byCategory map[string][]string) int {
	total := 0
	for _, skills := range byCategory {
		total += len(skills)
	}
	return total
}
