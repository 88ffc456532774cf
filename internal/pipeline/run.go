// Package pipeline provides the high-level orchestration for one candidate
// filtering run: criteria resolution, resume ingestion, duplicate detection,
// scoring, ranking, and artifact persistence.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/candidate-ranker/internal/criteria"
	"github.com/jonathan/candidate-ranker/internal/db"
	"github.com/jonathan/candidate-ranker/internal/identity"
	"github.com/jonathan/candidate-ranker/internal/ingestion"
	"github.com/jonathan/candidate-ranker/internal/ledger"
	"github.com/jonathan/candidate-ranker/internal/llm"
	"github.com/jonathan/candidate-ranker/internal/observability"
	"github.com/jonathan/candidate-ranker/internal/ranking"
	"github.com/jonathan/candidate-ranker/internal/registry"
	"github.com/jonathan/candidate-ranker/internal/report"
	"github.com/jonathan/candidate-ranker/internal/scoring"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// RunOptions holds configuration for a filtering run
type RunOptions struct {
	ResumeDir      string
	CriteriaFile   string // explicit criteria JSON (mutually exclusive with JobPosting)
	JobPosting     string // raw posting text file; criteria are inferred
	JobTitle       string
	ExplicitSkills []string
	OutputDir      string
	LedgerPath     string
	APIKey         string
	Incremental    bool
	Verbose        bool
	DatabaseURL    string
}

// RunResult reports what a filtering run produced.
type RunResult struct {
	Ranked   *types.RankedResult
	Summary  *types.DuplicateSummary
	Criteria *types.JobCriteria

	Processed int      // resumes scored this run
	Skipped   []string // resumes skipped via the ledger
	Failed    []string // resumes that could not be read or scored
}

// ingestedResume pairs a resume's cleaned text with its extracted identifiers.
type ingestedResume struct {
	Path   string
	Text   string
	Record *types.IdentityRecord
}

// Run executes the full filtering pipeline for one resume folder.
func Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	printer := observability.NewPrinter(os.Stdout)

	// Initialize database connection if configured
	var database *db.DB
	var runID uuid.UUID
	if opts.DatabaseURL != "" {
		var err error
		database, err = db.Connect(ctx, opts.DatabaseURL)
		if err != nil {
			fmt.Printf("Warning: Failed to connect to database: %v\n", err)
			fmt.Printf("Continuing without database persistence...\n")
			database = nil
		} else {
			defer database.Close()
			if err := database.EnsureSchema(ctx); err != nil {
				fmt.Printf("Warning: %v\n", err)
			}
			if opts.Verbose {
				fmt.Printf("[VERBOSE] Connected to database\n")
			}
		}
	}

	// =========================================================================
	// PARALLEL EXECUTION: Criteria Branch + Ingestion Branch
	// =========================================================================
	g, gCtx := errgroup.WithContext(ctx)

	var jobCriteria *types.JobCriteria
	var resumes, seeds []ingestedResume
	var skipped, failed []string
	led := ledger.Load(opts.LedgerPath)

	g.Go(func() error {
		var err error
		jobCriteria, err = resolveCriteria(gCtx, opts)
		if err != nil {
			return fmt.Errorf("criteria resolution failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		resumes, seeds, skipped, failed, err = ingestResumes(opts, led)
		if err != nil {
			return fmt.Errorf("resume ingestion failed: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if opts.Verbose {
		printer.PrintJobCriteria(jobCriteria)
	}

	if database != nil {
		var err error
		runID, err = database.CreateRun(ctx, jobCriteria.JobTitle, opts.ResumeDir)
		if err != nil {
			fmt.Printf("Warning: Failed to create database run: %v\n", err)
			runID = uuid.Nil
		} else {
			_ = database.SaveArtifact(ctx, runID, db.StepJobCriteria, jobCriteria)
		}
	}

	// Duplicate detection: inserts are order-dependent, so this stays
	// sequential even though ingestion ran concurrently with criteria.
	repo := registry.NewRepository()

	// Seed identities from ledger-skipped resumes first, keeping their
	// original precedence, so a fresh submission that duplicates an earlier
	// run's resume still hits the email/phone fast paths.
	for _, s := range seeds {
		repo.Insert(s.Record)
	}

	fresh := make([]types.CandidateScore, 0, len(resumes))
	for _, r := range resumes {
		insert := repo.Insert(r.Record)

		score := scoring.ScoreCandidate(r.Path, r.Text, jobCriteria)
		score.CandidateID = insert.CandidateID
		ranking.ApplyBonuses(score, r.Text, jobCriteria)
		fresh = append(fresh, *score)

		if fp, err := ledger.FingerprintFile(r.Path); err == nil {
			led.Record(fp, ledger.Entry{
				FilePath:    r.Path,
				CandidateID: insert.CandidateID,
				FinalScore:  score.FinalScore,
				ProcessedAt: time.Now().UTC(),
			})
		}

		if opts.Verbose {
			printer.PrintIdentityRecord(r.Record)
		}
	}

	groups := repo.BuildGroups()
	summary := repo.Summary()
	ranking.AttachDuplicateMetadata(fresh, groups)

	// Fold into the prior result when running incrementally; otherwise rank
	// the fresh set from scratch. Non-incremental runs never read the prior
	// artifact, they overwrite it.
	var result *types.RankedResult
	if opts.Incremental {
		prior, err := report.ReadRankedResult(filepath.Join(opts.OutputDir, report.RankedResultFile))
		if err != nil {
			fmt.Printf("Warning: %v. Starting from an empty result.\n", err)
			prior = nil
		}
		if prior != nil {
			result = ranking.Merge(prior, fresh, groups)
			// Merging zero new candidates leaves the prior result untouched so
			// re-runs stay byte-for-byte stable.
			if len(fresh) > 0 {
				result.GeneratedAt = time.Now().UTC()
			}
		}
	}
	if result == nil {
		ranking.SortByAdjustedScore(fresh)
		ranking.AssignRanks(fresh, groups)
		result = &types.RankedResult{
			JobTitle:    jobCriteria.JobTitle,
			GeneratedAt: time.Now().UTC(),
			Candidates:  fresh,
		}
	}
	if result.JobTitle == "" {
		result.JobTitle = jobCriteria.JobTitle
	}

	if opts.Verbose {
		printer.PrintDuplicateSummary(&summary)
		printer.PrintRankedCandidates(result)
	}

	// Persist artifacts
	writer := report.NewWriter(opts.OutputDir)
	if _, err := writer.WriteRankedResult(result); err != nil {
		return nil, err
	}
	if _, err := writer.WriteDuplicateSummary(&summary); err != nil {
		return nil, err
	}
	if _, err := writer.WriteReport(result, &summary, jobCriteria); err != nil {
		return nil, err
	}
	if err := led.Save(); err != nil {
		fmt.Printf("Warning: Failed to save ledger: %v\n", err)
	}

	if database != nil && runID != uuid.Nil {
		_ = database.SaveArtifact(ctx, runID, db.StepRankedResult, result)
		_ = database.SaveArtifact(ctx, runID, db.StepDuplicateSummary, summary)
		_ = database.SaveTextArtifact(ctx, runID, db.StepReport, report.BuildReport(result, &summary, jobCriteria))
		_ = database.SaveCandidateScores(ctx, runID, result.Candidates)
		_ = database.CompleteRun(ctx, runID, db.RunStatusCompleted, len(result.Candidates), summary.DuplicateCount)
	}

	return &RunResult{
		Ranked:    result,
		Summary:   &summary,
		Criteria:  jobCriteria,
		Processed: len(fresh),
		Skipped:   skipped,
		Failed:    failed,
	}, nil
}

// resolveCriteria produces the job criteria from, in order of preference: an
// explicit criteria file, an inferred analysis of a raw job posting, or
// defaults built from the job title.
func resolveCriteria(ctx context.Context, opts RunOptions) (*types.JobCriteria, error) {
	if opts.CriteriaFile != "" {
		return criteria.Load(opts.CriteriaFile)
	}

	if opts.JobPosting != "" {
		posting, err := os.ReadFile(opts.JobPosting)
		if err != nil {
			return nil, fmt.Errorf("failed to read job posting: %w", err)
		}

		var client llm.Client
		if opts.APIKey != "" {
			client, err = llm.NewClient(ctx, llm.DefaultConfig(), opts.APIKey)
			if err != nil {
				fmt.Printf("Warning: Failed to initialize LLM client: %v. Using default criteria.\n", err)
				client = nil
			}
		}

		analyzer := criteria.NewAnalyzer(client)
		inferred, err := analyzer.Analyze(ctx, opts.JobTitle, string(posting), opts.ExplicitSkills)
		if err != nil {
			// Analyze degrades to usable defaults alongside the error.
			fmt.Printf("Warning: Criteria inference failed: %v. Using default criteria.\n", err)
		}
		return inferred, nil
	}

	return criteria.Default(opts.JobTitle, opts.ExplicitSkills), nil
}

// ingestResumes enumerates the resume folder, reads and cleans each file, and
// extracts identity records. Resumes already recorded in the ledger are not
// re-scored, but their identities are still extracted and returned as seeds
// so duplicate detection covers earlier runs. Unreadable files are skipped
// with a warning so one bad resume never aborts the batch.
func ingestResumes(opts RunOptions, led *ledger.Ledger) (resumes, seeds []ingestedResume, skipped, failed []string, err error) {
	paths, err := ingestion.EnumerateResumes(opts.ResumeDir)
	if err != nil {
		return nil, nil, nil, nil, err
	}
	if len(paths) == 0 {
		return nil, nil, nil, nil, fmt.Errorf("no resume files found in %s", opts.ResumeDir)
	}

	for _, path := range paths {
		processed := false
		if opts.Incremental {
			if fp, ferr := ledger.FingerprintFile(path); ferr == nil && led.Has(fp) {
				processed = true
				skipped = append(skipped, path)
			}
		}

		text, rerr := ingestion.ReadResume(path)
		if rerr != nil {
			if processed {
				continue
			}
			fmt.Printf("Warning: Skipping %s: %v\n", path, rerr)
			failed = append(failed, path)
			continue
		}

		r := ingestedResume{
			Path:   path,
			Text:   text,
			Record: identity.Extract(text, path),
		}
		if processed {
			seeds = append(seeds, r)
			continue
		}
		resumes = append(resumes, r)
	}

	return resumes, seeds, skipped, failed, nil
}
