// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/jonathan/langhire/internal/analysis"
	"github.com/jonathan/langhire/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs per-category match statistics.
func (p *Printer) PrintMatchResult(match types.SkillMatchResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall match: %.1f%%  (%d of %d required)\n",
		match.OverallScore, match.TotalMatched, match.TotalRequired))

	categories := make([]string, 0, len(match.CategoryScores))
	for category := range match.CategoryScores {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	count := min(len(categories), maxItemsToShow)
	for i := 0; i < count; i++ {
		category := categories[i]
		sb.WriteString(fmt.Sprintf("\n%s: %.1f%%\n", category, match.CategoryScores[category]))
		if matched := match.ExactMatches[category]; len(matched) > 0 {
			sb.WriteString(fmt.Sprintf("  matched: %s\n", joinTruncated(matched, 40)))
		}
		if missing := match.MissingSkills[category]; len(missing) > 0 {
			sb.WriteString(fmt.Sprintf("  missing: %s\n", joinTruncated(missing, 40)))
		}
	}
	if len(categories) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more categories", len(categories)-maxItemsToShow))
	}

	p.printBox("SKILL MATCH", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintScores outputs the factor breakdowns.
func (p *Printer) PrintScores(report *analysis.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Skills:      %6.2f", report.Skills.TotalScore))
	if report.Skills.Error != "" {
		sb.WriteString("  (error)")
	}
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("  technical %.1f / depth %.1f / relevance %.1f\n",
		report.Skills.TechnicalSkills, report.Skills.SkillDepth, report.Skills.SkillRelevance))

	sb.WriteString(fmt.Sprintf("Experience:  %6.2f\n", report.Experience.TotalScore))
	sb.WriteString(fmt.Sprintf("  years %.1f / progression %.1f\n",
		report.Experience.YearsOfExperience, report.Experience.CareerProgression))

	sb.WriteString(fmt.Sprintf("Education:   %6.2f\n", report.Education.TotalScore))
	sb.WriteString(fmt.Sprintf("  degree %.1f / field %.1f / certs %.1f",
		report.Education.DegreeMatch, report.Education.FieldRelevance, report.Education.Certifications))

	p.printBox("SCORE BREAKDOWN", sb.String())
}

// PrintOverall outputs the final score, recommendation, and the risk and
// strength lists.
func (p *Printer) PrintOverall(overall types.OverallResult) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall score: %.2f\n", overall.OverallScore))
	sb.WriteString(fmt.Sprintf("Decision:      %s (%s confidence)\n",
		overall.Recommendation.Decision, overall.Recommendation.Confidence))
	sb.WriteString(fmt.Sprintf("Reasoning:     %s\n", overall.Recommendation.Reasoning))
	sb.WriteString(fmt.Sprintf("Confidence:    %s\n", overall.DecisionConfidence))

	if len(overall.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		for _, strength := range overall.Strengths {
			sb.WriteString(fmt.Sprintf("  • %s\n", strength))
		}
	}
	if len(overall.RiskFactors) > 0 {
		sb.WriteString("\nRisk factors:\n")
		for _, risk := range overall.RiskFactors {
			sb.WriteString(fmt.Sprintf("  • %s\n", risk))
		}
	}

	p.printBox("RECOMMENDATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintExtractedSkills outputs a category skill map.
func (p *Printer) PrintExtractedSkills(title string, found types.CategorySkillMap) {
	if len(found) == 0 {
		p.printBox(title, "(no taxonomy skills found)")
		return
	}

	categories := make([]string, 0, len(found))
	for category := range found {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var sb strings.Builder
	for i, category := range categories {
		sb.WriteString(fmt.Sprintf("%s:\n", category))
		sb.WriteString(fmt.Sprintf("  %s\n", joinTruncated(found[category], 48)))
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

func joinTruncated(items []string, limit int) string {
	joined := strings.Join(items, ", ")
	if len(joined) > limit {
		joined = joined[:limit-3] + "..."
	}
	return joined
}
