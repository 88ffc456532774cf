// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	ResumeDir    string `json:"resume_dir,omitempty"`    // Folder containing resume files for one job
	CriteriaFile string `json:"criteria_file,omitempty"` // Path to job-criteria JSON file
	JobPosting   string `json:"job_posting,omitempty"`   // Path to raw job posting text (criteria inferred)
	OutputDir    string `json:"output_dir,omitempty"`    // Where ranked results, summaries and the ledger are written
	LedgerFile   string `json:"ledger_file,omitempty"`   // Processed-resume ledger path (default: <output_dir>/ledger.json)

	// Job metadata
	JobTitle string `json:"job_title,omitempty"`

	// Behavior
	APIKey      string `json:"api_key,omitempty"`      // Gemini API key for criteria inference
	Incremental bool   `json:"incremental,omitempty"`  // Skip resumes already recorded in the ledger
	Verbose     bool   `json:"verbose,omitempty"`      // Print detailed progress information
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL for the result store
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.CriteriaFile != "" && c.JobPosting != "" {
		return fmt.Errorf("config error: 'criteria_file' and 'job_posting' are mutually exclusive")
	}

	// Validate file paths exist (if specified)
	if c.ResumeDir != "" {
		if info, err := os.Stat(c.ResumeDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume folder not found: %s", c.ResumeDir)
		} else if err == nil && !info.IsDir() {
			return fmt.Errorf("config error: resume_dir is not a directory: %s", c.ResumeDir)
		}
	}

	if c.CriteriaFile != "" {
		if _, err := os.Stat(c.CriteriaFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: criteria file not found: %s", c.CriteriaFile)
		}
	}

	if c.JobPosting != "" {
		if _, err := os.Stat(c.JobPosting); os.IsNotExist(err) {
			return fmt.Errorf("config error: job posting file not found: %s", c.JobPosting)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.ResumeDir == "" {
		result.ResumeDir = defaults.ResumeDir
	}
	if result.CriteriaFile == "" {
		result.CriteriaFile = defaults.CriteriaFile
	}
	if result.JobPosting == "" {
		result.JobPosting = defaults.JobPosting
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.LedgerFile == "" {
		result.LedgerFile = defaults.LedgerFile
	}
	if result.JobTitle == "" {
		result.JobTitle = defaults.JobTitle
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// LedgerPath returns the effective ledger location.
func (c *Config) LedgerPath() string {
	if c.LedgerFile != "" {
		return c.LedgerFile
	}
	return filepath.Join(c.OutputDir, "ledger.json")
}
