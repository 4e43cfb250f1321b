// Package main provides the entry point for the LangHire candidate analyzer.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "langhire",
	Short: "JD-aware resume analyzer",
	Long:  "LangHire evaluates how well a candidate's profile matches a job description, producing a category-level skill match, a multi-factor score, and a hire recommendation.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
