// Package identity extracts structured identifiers from raw resume text.
package identity

import (
	"regexp"
	"sort"
	"strings"

	"github.com/jonathan/candidate-ranker/internal/types"
)

const (
	// nameScanLines is how many non-empty lines at the top of a resume are
	// scanned for candidate names.
	nameScanLines = 10

	// phoneMinDigits is the minimum digit count for a plausible phone number.
	phoneMinDigits = 10
)

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// Multiple phone patterns: grouped digits, international prefixes,
	// +91-prefixed, and bare 10-digit runs.
	phonePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\(?\d{3}\)?[-.\s]\d{3}[-.\s]\d{4}`),
		regexp.MustCompile(`\+\d{1,3}[-.\s]?\d{3,5}[-.\s]?\d{3,5}[-.\s]?\d{0,4}`),
		regexp.MustCompile(`\+91[-.\s]?\d{10}`),
		regexp.MustCompile(`\b\d{10}\b`),
	}

	githubURLPattern     = regexp.MustCompile(`github\.com/([A-Za-z0-9_\-]+)`)
	githubLabelPattern   = regexp.MustCompile(`(?i)github\s*:\s*([A-Za-z0-9_\-]+)`)
	linkedinURLPattern   = regexp.MustCompile(`linkedin\.com/in/([A-Za-z0-9_\-]+)`)
	linkedinLabelPattern = regexp.MustCompile(`(?i)linkedin\s*:\s*([A-Za-z0-9_\-]+)`)

	nameLabelPattern = regexp.MustCompile(`(?im)^\s*name\s*:\s*(.+)$`)
	capitalizedWord  = regexp.MustCompile(`^[A-Z][a-z]+\.?$`)
	nonDigit         = regexp.MustCompile(`\D`)
)

// placeholderDomains are never treated as a real candidate identity.
var placeholderDomains = map[string]bool{
	"example.com":    true,
	"example.org":    true,
	"example.net":    true,
	"email.com":      true,
	"domain.com":     true,
	"test.com":       true,
	"sample.com":     true,
	"mailinator.com": true,
	"tempmail.com":   true,
}

// boilerplateWords disqualify a capitalized line from being read as a person's name.
var boilerplateWords = []string{
	"resume", "curriculum", "vitae", "objective", "summary", "profile",
	"contact", "address", "experience", "education", "skills", "projects",
	"certifications", "references", "phone", "email",
	"engineer", "developer", "manager", "analyst", "architect", "consultant",
	"scientist", "administrator", "designer", "specialist",
}

// Extract builds an IdentityRecord from raw resume text. Missing identifiers
// degrade to empty collections; Extract never fails.
func Extract(text, filename string) *types.IdentityRecord {
	return &types.IdentityRecord{
		Filename:       filename,
		Emails:         extractEmails(text),
		Phones:         extractPhones(text),
		Names:          extractNames(text),
		GitHub:         extractHandle(text, githubURLPattern, githubLabelPattern),
		LinkedIn:       extractHandle(text, linkedinURLPattern, linkedinLabelPattern),
		ContentHash:    contentHash(text),
		EducationHash:  educationHash(text),
		ExperienceHash: experienceHash(text),
	}
}

// extractEmails returns lower-cased, deduplicated emails with placeholder
// domains filtered out.
func extractEmails(text string) []string {
	seen := make(map[string]bool)
	var emails []string
	for _, match := range emailPattern.FindAllString(text, -1) {
		email := strings.ToLower(match)
		at := strings.LastIndex(email, "@")
		if at < 0 || placeholderDomains[email[at+1:]] {
			continue
		}
		if !seen[email] {
			seen[email] = true
			emails = append(emails, email)
		}
	}
	sort.Strings(emails)
	return emails
}

// extractPhones returns phone numbers normalized to their last 10 digits.
// Sequences with fewer than 10 digits are discarded.
func extractPhones(text string) []string {
	seen := make(map[string]bool)
	var phones []string
	for _, pattern := range phonePatterns {
		for _, match := range pattern.FindAllString(text, -1) {
			digits := nonDigit.ReplaceAllString(match, "")
			if len(digits) < phoneMinDigits {
				continue
			}
			normalized := digits[len(digits)-phoneMinDigits:]
			if !seen[normalized] {
				seen[normalized] = true
				phones = append(phones, normalized)
			}
		}
	}
	sort.Strings(phones)
	return phones
}

// extractNames scans the first nameScanLines non-empty lines for runs of 2-4
// capitalized words, plus any explicit "Name:" label anywhere in the text.
func extractNames(text string) []string {
	seen := make(map[string]bool)
	var names []string

	add := func(name string) {
		name = strings.TrimSpace(name)
		if name == "" {
			return
		}
		key := strings.ToLower(name)
		if !seen[key] {
			seen[key] = true
			names = append(names, name)
		}
	}

	scanned := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		scanned++
		if scanned > nameScanLines {
			break
		}
		if containsBoilerplate(line) {
			continue
		}
		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 4 {
			continue
		}
		allCapitalized := true
		for _, w := range words {
			if !capitalizedWord.MatchString(w) {
				allCapitalized = false
				break
			}
		}
		if allCapitalized {
			add(line)
		}
	}

	for _, match := range nameLabelPattern.FindAllStringSubmatch(text, -1) {
		add(match[1])
	}

	return names
}

// containsBoilerplate reports whether a line carries resume-section wording
// rather than a person's name.
func containsBoilerplate(line string) bool {
	lower := strings.ToLower(line)
	for _, word := range boilerplateWords {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// extractHandle pulls a lower-cased profile handle using a URL pattern first,
// then an explicit label pattern.
func extractHandle(text string, urlPattern, labelPattern *regexp.Regexp) string {
	if m := urlPattern.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1])
	}
	if m := labelPattern.FindStringSubmatch(text); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}
