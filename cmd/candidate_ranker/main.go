// Package main provides the entry point for the candidate ranking CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "candidate_ranker",
	Short: "Candidate deduplication and ranking for recruitment pipelines",
	Long:  "Candidate Ranker scores a folder of resumes against job criteria, detects duplicate submissions across files, and produces a ranked shortlist with duplicate-aware contiguous ranks.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
