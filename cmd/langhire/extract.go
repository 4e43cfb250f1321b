package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/langhire/internal/skills"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract taxonomy skills from a text file",
	Long:  "Extract scans a text file for taxonomy and synonym terms and prints the category skill map as JSON.",
	RunE:  runExtract,
}

var extractInputFile string

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to text file (required)")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	if extractInputFile == "" {
		return fmt.Errorf("--in is required")
	}

	text, err := os.ReadFile(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	found := skills.Extract(string(text))

	jsonBytes, err := json.MarshalIndent(found, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}

	fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}
