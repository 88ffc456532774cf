package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/candidate-ranker/internal/config"
	"github.com/jonathan/candidate-ranker/internal/pipeline"
)

var rankCommand = &cobra.Command{
	Use:   "rank",
	Short: "Run the full filtering pipeline on a resume folder",
	Long: `Scores every resume in a folder against job criteria, detects duplicate submissions, and writes the ranked shortlist, duplicate summary, text report, and processed-resume ledger to the output directory.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runRankCmd,
}

var (
	rankConfigPath   string
	rankResumeDir    string
	rankCriteriaFile string
	rankJobPosting   string
	rankJobTitle     string
	rankSkills       []string
	rankOutputDir    string
	rankLedgerFile   string
	rankIncremental  bool
	rankAPIKey       string
	rankVerbose      bool
	rankDatabaseURL  string
)

func init() {
	// Config file flag (processed first)
	rankCommand.Flags().StringVar(&rankConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rankCommand.Flags().StringVarP(&rankResumeDir, "resumes", "r", "", "Folder containing resume files for one job")
	rankCommand.Flags().StringVarP(&rankCriteriaFile, "criteria", "c", "", "Path to job-criteria JSON file (mutually exclusive with --job-posting)")
	rankCommand.Flags().StringVar(&rankJobPosting, "job-posting", "", "Path to raw job posting text; criteria are inferred (mutually exclusive with --criteria)")
	rankCommand.Flags().StringVarP(&rankJobTitle, "job-title", "j", "", "Job title used for default criteria and reporting")
	rankCommand.Flags().StringSliceVar(&rankSkills, "skills", nil, "Explicit required skills, merged into inferred or default criteria")
	rankCommand.Flags().StringVarP(&rankOutputDir, "out", "o", "", "Output directory for artifacts (default: output)")
	rankCommand.Flags().StringVar(&rankLedgerFile, "ledger", "", "Processed-resume ledger path (default: <out>/ledger.json)")
	rankCommand.Flags().BoolVar(&rankIncremental, "incremental", false, "Skip resumes already recorded in the ledger and merge into the prior result")
	rankCommand.Flags().BoolVarP(&rankVerbose, "verbose", "v", false, "Print detailed progress information")

	// API key can be passed as a flag, or read from env var GEMINI_API_KEY
	rankCommand.Flags().StringVar(&rankAPIKey, "api-key", "", "Gemini API Key for criteria inference (optional, defaults to GEMINI_API_KEY env var)")

	// Database URL for result persistence
	rankCommand.Flags().StringVar(&rankDatabaseURL, "db-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")

	rootCmd.AddCommand(rankCommand)
}

func runRankCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if rankConfigPath != "" {
		loadedCfg, err := config.LoadConfig(rankConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		cfg = *loadedCfg
		if rankVerbose {
			_, _ = fmt.Fprintf(os.Stdout, "Loaded config from: %s\n", rankConfigPath)
		}
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("resumes") {
		cfg.ResumeDir = rankResumeDir
	}
	if cmd.Flags().Changed("criteria") {
		cfg.CriteriaFile = rankCriteriaFile
	}
	if cmd.Flags().Changed("job-posting") {
		cfg.JobPosting = rankJobPosting
	}
	if cmd.Flags().Changed("job-title") {
		cfg.JobTitle = rankJobTitle
	}
	if cmd.Flags().Changed("out") {
		cfg.OutputDir = rankOutputDir
	}
	if cmd.Flags().Changed("ledger") {
		cfg.LedgerFile = rankLedgerFile
	}
	if cmd.Flags().Changed("incremental") {
		cfg.Incremental = rankIncremental
	}
	if cmd.Flags().Changed("api-key") {
		cfg.APIKey = rankAPIKey
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = rankVerbose
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = rankDatabaseURL
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.Config{
		OutputDir: "output",
	})

	// Step 4: Validate required fields
	if cfg.ResumeDir == "" {
		return fmt.Errorf("--resumes is required (via flag or config)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	// Step 5: API key and database URL fall back to the environment
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	result, err := pipeline.Run(ctx, pipeline.RunOptions{
		ResumeDir:      cfg.ResumeDir,
		CriteriaFile:   cfg.CriteriaFile,
		JobPosting:     cfg.JobPosting,
		JobTitle:       cfg.JobTitle,
		ExplicitSkills: rankSkills,
		OutputDir:      cfg.OutputDir,
		LedgerPath:     cfg.LedgerPath(),
		APIKey:         cfg.APIKey,
		Incremental:    cfg.Incremental,
		Verbose:        cfg.Verbose,
		DatabaseURL:    cfg.DatabaseURL,
	})
	if err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Ranked %d candidates (%d processed, %d skipped, %d failed)\n",
		len(result.Ranked.Candidates), result.Processed, len(result.Skipped), len(result.Failed))
	_, _ = fmt.Fprintf(os.Stdout, "Duplicate groups: %d\n", result.Summary.GroupCount)
	_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", cfg.OutputDir)

	return nil
}
