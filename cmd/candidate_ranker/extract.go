package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/identity"
	"github.com/jonathan/candidate-ranker/internal/ingestion"
	"github.com/jonathan/candidate-ranker/internal/observability"
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract identity signals from a single resume",
	Long:  "Reads one resume file and prints the extracted identifiers: names, emails, normalized phone numbers, GitHub/LinkedIn handles, and content hashes.",
	RunE:  runExtract,
}

var (
	extractInputFile  string
	extractOutputFile string
	extractAsJSON     bool
)

func init() {
	extractCmd.Flags().StringVarP(&extractInputFile, "in", "i", "", "Path to resume file (required)")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Optional path to write the identity record JSON")
	extractCmd.Flags().BoolVar(&extractAsJSON, "json", false, "Print the record as JSON instead of the formatted box")
	_ = extractCmd.MarkFlagRequired("in")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	text, err := ingestion.ReadResume(extractInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	record := identity.Extract(text, extractInputFile)

	if extractAsJSON {
		jsonBytes, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal identity record: %w", err)
		}
		_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	} else {
		observability.NewPrinter(os.Stdout).PrintIdentityRecord(record)
	}

	if extractOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(record, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal identity record: %w", err)
		}
		if err := os.WriteFile(extractOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write identity record: %w", err)
		}
	}

	return nil
}
