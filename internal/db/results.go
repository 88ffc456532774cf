package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/candidate-ranker/internal/types"
)

// SaveArtifact stores a JSON artifact for a filtering run
func (db *DB) SaveArtifact(ctx context.Context, runID uuid.UUID, step string, content any) error {
	jsonBytes, err := json.Marshal(content)
	if err != nil {
		return fmt.Errorf("failed to marshal artifact: %w", err)
	}

	_, err = db.pool.Exec(ctx,
		`INSERT INTO artifacts (run_id, step, content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE SET content = $3, created_at = NOW()`,
		runID, step, jsonBytes,
	)
	if err != nil {
		return fmt.Errorf("failed to save artifact %s: %w", step, err)
	}
	return nil
}

// SaveTextArtifact stores a text artifact (like the run report) for a filtering run
func (db *DB) SaveTextArtifact(ctx context.Context, runID uuid.UUID, step, text string) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO artifacts (run_id, step, text_content)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (run_id, step) DO UPDATE SET text_content = $3, created_at = NOW()`,
		runID, step, text,
	)
	if err != nil {
		return fmt.Errorf("failed to save text artifact %s: %w", step, err)
	}
	return nil
}

// GetArtifact retrieves a JSON artifact by run ID and step
func (db *DB) GetArtifact(ctx context.Context, runID uuid.UUID, step string) ([]byte, error) {
	var content []byte
	err := db.pool.QueryRow(ctx,
		`SELECT content FROM artifacts WHERE run_id = $1 AND step = $2`,
		runID, step,
	).Scan(&content)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get artifact %s: %w", step, err)
	}
	return content, nil
}

// SaveCandidateScores upserts per-candidate score rows for a filtering run.
// Keyed on (run_id, file_path) so re-runs with the same run ID update in place.
func (db *DB) SaveCandidateScores(ctx context.Context, runID uuid.UUID, candidates []types.CandidateScore) error {
	for _, c := range candidates {
		skills, err := json.Marshal(c.MatchedSkills)
		if err != nil {
			return fmt.Errorf("failed to marshal matched skills for %s: %w", c.FilePath, err)
		}

		_, err = db.pool.Exec(ctx,
			`INSERT INTO candidate_scores
			   (run_id, file_path, candidate_id, final_score, adjusted_score, final_rank,
			    skill_score, experience_score, location_score, certification_score,
			    education_score, prof_dev_score, matched_skills, duplicate_of)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
			 ON CONFLICT (run_id, file_path) DO UPDATE SET
			   candidate_id = $3, final_score = $4, adjusted_score = $5, final_rank = $6,
			   skill_score = $7, experience_score = $8, location_score = $9,
			   certification_score = $10, education_score = $11, prof_dev_score = $12,
			   matched_skills = $13, duplicate_of = $14`,
			runID, c.FilePath, c.CandidateID, c.FinalScore, c.AdjustedScore, c.FinalRank,
			c.SkillScore, c.ExperienceScore, c.LocationScore, c.CertificationScore,
			c.EducationScore, c.ProfDevScore, skills, c.DuplicateOf,
		)
		if err != nil {
			return fmt.Errorf("failed to save score for %s: %w", c.FilePath, err)
		}
	}
	return nil
}

// GetRankedResultByRunID loads the ranked result artifact for a run
func (db *DB) GetRankedResultByRunID(ctx context.Context, runID uuid.UUID) (*types.RankedResult, error) {
	content, err := db.GetArtifact(ctx, runID, StepRankedResult)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var result types.RankedResult
	if err := json.Unmarshal(content, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal ranked result: %w", err)
	}
	return &result, nil
}

// GetDuplicateSummaryByRunID loads the duplicate summary artifact for a run
func (db *DB) GetDuplicateSummaryByRunID(ctx context.Context, runID uuid.UUID) (*types.DuplicateSummary, error) {
	content, err := db.GetArtifact(ctx, runID, StepDuplicateSummary)
	if err != nil {
		return nil, err
	}
	if content == nil {
		return nil, nil
	}

	var summary types.DuplicateSummary
	if err := json.Unmarshal(content, &summary); err != nil {
		return nil, fmt.Errorf("failed to unmarshal duplicate summary: %w", err)
	}
	return &summary, nil
}

// TopCandidates returns the highest-ranked candidates for a run, best first
func (db *DB) TopCandidates(ctx context.Context, runID uuid.UUID, limit int) ([]types.CandidateScore, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := db.pool.Query(ctx,
		`SELECT file_path, candidate_id, final_score, adjusted_score, final_rank,
		        skill_score, experience_score, location_score, certification_score,
		        education_score, prof_dev_score, matched_skills, COALESCE(duplicate_of, '')
		 FROM candidate_scores
		 WHERE run_id = $1
		 ORDER BY final_rank ASC, adjusted_score DESC
		 LIMIT $2`,
		runID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query top candidates: %w", err)
	}
	defer rows.Close()

	var candidates []types.CandidateScore
	for rows.Next() {
		var c types.CandidateScore
		var skills []byte
		if err := rows.Scan(&c.FilePath, &c.CandidateID, &c.FinalScore, &c.AdjustedScore, &c.FinalRank,
			&c.SkillScore, &c.ExperienceScore, &c.LocationScore, &c.CertificationScore,
			&c.EducationScore, &c.ProfDevScore, &skills, &c.DuplicateOf); err != nil {
			return nil, fmt.Errorf("failed to scan candidate score: %w", err)
		}
		if len(skills) > 0 {
			if err := json.Unmarshal(skills, &c.MatchedSkills); err != nil {
				return nil, fmt.Errorf("failed to unmarshal matched skills: %w", err)
			}
		}
		candidates = append(candidates, c)
	}
	return candidates, nil
}
