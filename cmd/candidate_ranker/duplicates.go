package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/identity"
	"github.com/jonathan/candidate-ranker/internal/ingestion"
	"github.com/jonathan/candidate-ranker/internal/observability"
	"github.com/jonathan/candidate-ranker/internal/registry"
)

var duplicatesCmd = &cobra.Command{
	Use:   "duplicates",
	Short: "Detect duplicate submissions in a resume folder",
	Long:  "Extracts identifiers from every resume in a folder and reports groups of files believed to represent the same person, without scoring or ranking.",
	RunE:  runDuplicates,
}

var (
	dupResumeDir  string
	dupOutputFile string
	dupVerbose    bool
)

func init() {
	duplicatesCmd.Flags().StringVarP(&dupResumeDir, "resumes", "r", "", "Folder containing resume files (required)")
	duplicatesCmd.Flags().StringVarP(&dupOutputFile, "out", "o", "", "Optional path to write the duplicate summary JSON")
	duplicatesCmd.Flags().BoolVarP(&dupVerbose, "verbose", "v", false, "Print extracted identifiers per resume")
	_ = duplicatesCmd.MarkFlagRequired("resumes")

	rootCmd.AddCommand(duplicatesCmd)
}

func runDuplicates(_ *cobra.Command, _ []string) error {
	paths, err := ingestion.EnumerateResumes(dupResumeDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no resume files found in %s", dupResumeDir)
	}

	printer := observability.NewPrinter(os.Stdout)
	repo := registry.NewRepository()

	for _, path := range paths {
		text, err := ingestion.ReadResume(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Skipping %s: %v\n", path, err)
			continue
		}

		record := identity.Extract(text, path)
		repo.Insert(record)

		if dupVerbose {
			printer.PrintIdentityRecord(record)
		}
	}

	summary := repo.Summary()
	printer.PrintDuplicateSummary(&summary)

	if dupOutputFile != "" {
		jsonBytes, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal duplicate summary: %w", err)
		}
		if err := os.WriteFile(dupOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write duplicate summary: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", dupOutputFile)
	}

	return nil
}
