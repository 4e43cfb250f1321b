package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/langhire/internal/analysis"
	"github.com/jonathan/langhire/internal/config"
	"github.com/jonathan/langhire/internal/observability"
	"github.com/jonathan/langhire/internal/profile"
	"github.com/jonathan/langhire/internal/scoring"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze a candidate against a job description",
	Long:  "Analyze a candidate's resume text against a job description text, producing skill match statistics, factor scores, and a hire recommendation.",
	RunE:  runAnalyze,
}

var (
	analyzeResumeFile  string
	analyzeJobFile     string
	analyzeProfileFile string
	analyzeConfigFile  string
	analyzeOutputFile  string
	analyzeHire        float64
	analyzeStrongHire  float64
	analyzeVerbose     bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumeFile, "resume", "r", "", "Path to resume text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobFile, "job", "j", "", "Path to job description text file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeProfileFile, "profile", "p", "", "Path to optional structured profile JSON")
	analyzeCmd.Flags().StringVarP(&analyzeConfigFile, "config", "c", "", "Path to config JSON file")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to write the report JSON (default: stdout)")
	analyzeCmd.Flags().Float64Var(&analyzeHire, "hire-threshold", 0, "Minimum score for a Hire recommendation (default 70)")
	analyzeCmd.Flags().Float64Var(&analyzeStrongHire, "strong-hire-threshold", 0, "Minimum score for a Strong Hire recommendation (default 85)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries instead of raw JSON")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	if analyzeResumeFile == "" || analyzeJobFile == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(analyzeResumeFile)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(analyzeJobFile)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	req := analysis.Request{
		CandidateText: string(resumeText),
		JobText:       string(jobText),
	}

	if analyzeProfileFile != "" {
		raw, err := os.ReadFile(analyzeProfileFile)
		if err != nil {
			return fmt.Errorf("failed to read profile file: %w", err)
		}
		doc, err := profile.Parse(raw)
		if err != nil {
			return fmt.Errorf("failed to parse profile file: %w", err)
		}
		req.Profile = doc.ResumeAnalysis
		req.Posting = doc.JDAnalysis
	}

	engine := scoring.NewEngine(scoring.Thresholds{
		Hire:       cfg.HireThreshold,
		StrongHire: cfg.StrongHireThreshold,
	})

	report, err := analysis.Run(context.Background(), engine, req)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}

	if analyzeVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintExtractedSkills("CANDIDATE SKILLS", report.CandidateSkills)
		printer.PrintExtractedSkills("REQUIRED SKILLS", report.JobSkills)
		printer.PrintMatchResult(report.Match)
		printer.PrintScores(report)
		printer.PrintOverall(report.Overall)
	}

	jsonBytes, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		return nil
	}

	if !analyzeVerbose && !cfg.Verbose {
		fmt.Fprintln(os.Stdout, string(jsonBytes))
	}
	return nil
}

// resolveConfig layers configuration: defaults, then config file, then
// environment, then explicit flags.
func resolveConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	if analyzeConfigFile != "" {
		fileCfg, err := config.Load(analyzeConfigFile)
		if err != nil {
			return cfg, err
		}
		cfg = *fileCfg
	}

	cfg, err := cfg.FromEnv()
	if err != nil {
		return cfg, err
	}

	if cmd.Flags().Changed("hire-threshold") {
		cfg.HireThreshold = analyzeHire
	}
	if cmd.Flags().Changed("strong-hire-threshold") {
		cfg.StrongHireThreshold = analyzeStrongHire
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
