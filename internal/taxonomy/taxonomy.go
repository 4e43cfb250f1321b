// Package taxonomy defines the fixed skill taxonomy and synonym tables used
// for extraction, along with skill-name normalization. The taxonomy is
// built once at package init and never mutated, so it is safe to share
// across concurrent analyses.
package taxonomy

import (
	"fmt"
	"regexp"
	"sort"
)

// categoryTable maps each category to its canonical skill names.
var categoryTable = map[string][]string{
	"programming_languages": {
		"python", "java", "javascript", "typescript", "c++", "c#", "go",
		"rust", "swift", "kotlin", "scala", "ruby", "php", "r", "matlab",
	},
	"web_technologies": {
		"html", "css", "react", "angular", "vue", "node.js", "express",
		"django", "flask", "spring", "asp.net", "laravel", "rails",
	},
	"databases": {
		"mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"oracle", "sql server", "sqlite", "cassandra", "dynamodb",
	},
	"cloud_platforms": {
		"aws", "azure", "gcp", "google cloud", "docker", "kubernetes",
		"terraform", "ansible", "jenkins", "gitlab", "github actions",
	},
	"data_science": {
		"pandas", "numpy", "scikit-learn", "tensorflow", "pytorch",
		"spark", "hadoop", "tableau", "power bi", "jupyter",
		"machine learning", "deep learning", "natural language processing",
	},
	"soft_skills": {
		"leadership", "communication", "problem solving", "teamwork",
		"project management", "analytical thinking", "creativity",
	},
}

// synonymTable maps a canonical skill to its alternate surface forms.
// Every key must be a canonical name owned by exactly one category;
// construction fails otherwise.
var synonymTable = map[string][]string{
	"javascript":                  {"js", "node", "nodejs", "node.js"},
	"typescript":                  {"ts"},
	"python":                      {"py"},
	"postgresql":                  {"postgres", "psql"},
	"mongodb":                     {"mongo"},
	"kubernetes":                  {"k8s"},
	"aws":                         {"amazon web services"},
	"azure":                       {"microsoft azure"},
	"gcp":                         {"google cloud platform"},
	"machine learning":            {"ml", "artificial intelligence", "ai"},
	"deep learning":               {"dl", "neural networks"},
	"natural language processing": {"nlp"},
}

// Taxonomy is the immutable category/synonym lookup used by the extractor.
// Word-boundary patterns for every canonical and alternate term are
// compiled once at construction.
type Taxonomy struct {
	categories map[string][]string
	synonyms   map[string][]string
	owner      map[string]string
	patterns   map[string]*regexp.Regexp
}

var defaultTaxonomy = mustNew(categoryTable, synonymTable)

// Default returns the process-wide taxonomy.
func Default() *Taxonomy {
	return defaultTaxonomy
}

// New builds a taxonomy from category and synonym tables. It returns an
// error if a canonical appears in more than one category or a synonym
// entry refers to a canonical the taxonomy does not contain.
func New(categories map[string][]string, synonyms map[string][]string) (*Taxonomy, error) {
	t := &Taxonomy{
		categories: make(map[string][]string, len(categories)),
		synonyms:   make(map[string][]string, len(synonyms)),
		owner:      make(map[string]string),
		patterns:   make(map[string]*regexp.Regexp),
	}

	for category, skills := range categories {
		copied := make([]string, len(skills))
		copy(copied, skills)
		t.categories[category] = copied

		for _, skill := range skills {
			if existing, ok := t.owner[skill]; ok {
				return nil, fmt.Errorf("canonical skill %q belongs to both %q and %q", skill, existing, category)
			}
			t.owner[skill] = category
			t.patterns[skill] = boundaryPattern(skill)
		}
	}

	for canonical, alternates := range synonyms {
		if _, ok := t.owner[canonical]; !ok {
			return nil, fmt.Errorf("synonym entry %q has no owning category", canonical)
		}
		copied := make([]string, len(alternates))
		copy(copied, alternates)
		t.synonyms[canonical] = copied

		for _, alt := range alternates {
			if _, ok := t.patterns[alt]; !ok {
				t.patterns[alt] = boundaryPattern(alt)
			}
		}
	}

	return t, nil
}

func mustNew(categories map[string][]string, synonyms map[string][]string) *Taxonomy {
	t, err := New(categories, synonyms)
	if err != nil {
		panic(err)
	}
	return t
}

// boundaryPattern compiles a word-boundary pattern for a term. Terms with
// non-word trailing characters ("c++", "c#") keep the boundary assertion
// as-is; the resulting overlap behavior is a documented heuristic, not
// something the extractor disambiguates.
func boundaryPattern(term string) *regexp.Regexp {
	return regexp.MustCompile(`\b` + regexp.QuoteMeta(term) + `\b`)
}

// Categories returns the category names in sorted order.
func (t *Taxonomy) Categories() []string {
	names := make([]string, 0, len(t.categories))
	for name := range t.categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Skills returns the canonical skills for a category.
func (t *Taxonomy) Skills(category string) []string {
	skills := t.categories[category]
	copied := make([]string, len(skills))
	copy(copied, skills)
	return copied
}

// SynonymCanonicals returns, in sorted order, every canonical that has
// alternate surface forms.
func (t *Taxonomy) SynonymCanonicals() []string {
	names := make([]string, 0, len(t.synonyms))
	for name := range t.synonyms {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Alternates returns the alternate surface forms for a canonical skill.
func (t *Taxonomy) Alternates(canonical string) []string {
	alts := t.synonyms[canonical]
	copied := make([]string, len(alts))
	copy(copied, alts)
	return copied
}

// Owner returns the category owning a canonical skill.
func (t *Taxonomy) Owner(canonical string) (string, bool) {
	category, ok := t.owner[canonical]
	return category, ok
}

// Mentioned reports whether a term occurs in the lower-cased text bounded
// by word boundaries, so "java" does not match inside "javascript" and
// multi-word terms match as contiguous phrases.
func (t *Taxonomy) Mentioned(term, loweredText string) bool {
	pattern, ok := t.patterns[term]
	if !ok {
		return false
	}
	return pattern.MatchString(loweredText)
}
