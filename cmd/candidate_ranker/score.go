package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/criteria"
	"github.com/jonathan/candidate-ranker/internal/ingestion"
	"github.com/jonathan/candidate-ranker/internal/ranking"
	"github.com/jonathan/candidate-ranker/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a single resume against job criteria",
	Long:  "Scores one resume against a job-criteria JSON file and prints the full score breakdown: per-category sub-scores, the weighted composite, and the bonus-adjusted score.",
	RunE:  runScore,
}

var (
	scoreInputFile    string
	scoreCriteriaFile string
	scoreWithBonuses  bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreInputFile, "in", "i", "", "Path to resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreCriteriaFile, "criteria", "c", "", "Path to job-criteria JSON file (required)")
	scoreCmd.Flags().BoolVar(&scoreWithBonuses, "bonuses", true, "Apply ranking bonuses on top of the composite score")
	_ = scoreCmd.MarkFlagRequired("in")
	_ = scoreCmd.MarkFlagRequired("criteria")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	jobCriteria, err := criteria.Load(scoreCriteriaFile)
	if err != nil {
		return fmt.Errorf("failed to load criteria: %w", err)
	}

	text, err := ingestion.ReadResume(scoreInputFile)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	score := scoring.ScoreCandidate(scoreInputFile, text, jobCriteria)
	if scoreWithBonuses {
		ranking.ApplyBonuses(score, text, jobCriteria)
	}

	jsonBytes, err := json.MarshalIndent(score, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal score: %w", err)
	}
	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))

	return nil
}
