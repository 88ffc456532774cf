package identity

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"sort"
	"strings"
)

const (
	// headerSkipLines excludes the contact header from the content hash so the
	// hash stays stable across header formatting changes.
	headerSkipLines = 5

	// digestLength is the hex length of the fixed-size digests.
	digestLength = 16

	// maxEmployerTokens caps how many capitalized sequences feed the
	// experience hash.
	maxEmployerTokens = 5
)

var (
	yearPattern       = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	capitalizedRun    = regexp.MustCompile(`(?:[A-Z][A-Za-z&.]+\s+)+[A-Z][A-Za-z&.]+`)
)

// degreeKeywords is the fixed vocabulary of degree mentions feeding the
// education hash.
var degreeKeywords = []string{
	"bachelor", "bachelors", "b.tech", "b.e", "b.sc", "bsc", "bs", "ba",
	"master", "masters", "m.tech", "m.e", "m.sc", "msc", "ms", "ma", "mba",
	"doctorate", "phd", "ph.d", "md", "jd",
}

// techVocabulary is the fixed technology keyword set feeding the experience hash.
var techVocabulary = []string{
	"python", "java", "javascript", "typescript", "golang", "ruby", "c++", "c#",
	"sql", "nosql", "aws", "azure", "gcp", "docker", "kubernetes", "terraform",
	"react", "angular", "vue", "node", "django", "flask", "spring",
	"linux", "git", "jenkins", "kafka", "spark", "hadoop",
}

// sectionHeaders marks the section boundaries recognized when slicing resume text.
var sectionHeaders = []string{
	"education", "academic", "experience", "employment", "work history",
	"skills", "projects", "certifications", "summary", "objective", "references",
}

// digest returns a fixed-size hex digest of the given tokens. An empty token
// list yields an empty digest so missing sections never hash-match each other.
func digest(tokens []string) string {
	if len(tokens) == 0 {
		return ""
	}
	sorted := make([]string, len(tokens))
	copy(sorted, tokens)
	sort.Strings(sorted)
	sum := sha256.Sum256([]byte(strings.Join(sorted, "|")))
	return hex.EncodeToString(sum[:])[:digestLength]
}

// contentHash digests the resume body with the header lines dropped and
// emails/phones redacted, so it reacts to body edits but not header reformatting.
func contentHash(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > headerSkipLines {
		lines = lines[headerSkipLines:]
	}
	body := strings.Join(lines, "\n")
	body = emailPattern.ReplaceAllString(body, "")
	for _, pattern := range phonePatterns {
		body = pattern.ReplaceAllString(body, "")
	}
	body = strings.ToLower(body)
	body = whitespacePattern.ReplaceAllString(body, " ")
	body = strings.TrimSpace(body)
	if body == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(body))
	return hex.EncodeToString(sum[:])[:digestLength]
}

// educationHash digests degree keywords and 4-digit years found in the
// education section.
func educationHash(text string) string {
	section := extractSection(text, []string{"education", "academic"})
	if section == "" {
		return ""
	}
	lower := strings.ToLower(section)

	var tokens []string
	for _, keyword := range degreeKeywords {
		if containsWord(lower, keyword) {
			tokens = append(tokens, keyword)
		}
	}
	tokens = append(tokens, yearPattern.FindAllString(section, -1)...)
	return digest(tokens)
}

// experienceHash digests employer-name proxies (capitalized word runs), years,
// and technology keywords found in the experience section.
func experienceHash(text string) string {
	section := extractSection(text, []string{"experience", "employment", "work history"})
	if section == "" {
		return ""
	}
	lower := strings.ToLower(section)

	var tokens []string
	employers := capitalizedRun.FindAllString(section, -1)
	if len(employers) > maxEmployerTokens {
		employers = employers[:maxEmployerTokens]
	}
	for _, e := range employers {
		tokens = append(tokens, strings.ToLower(e))
	}
	tokens = append(tokens, yearPattern.FindAllString(section, -1)...)
	for _, keyword := range techVocabulary {
		if strings.Contains(lower, keyword) {
			tokens = append(tokens, keyword)
		}
	}
	return digest(tokens)
}

// extractSection returns the text between a header matching one of the given
// markers and the next recognized section header.
func extractSection(text string, markers []string) string {
	lines := strings.Split(text, "\n")
	start := -1
	for i, line := range lines {
		if isSectionHeader(line, markers) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return ""
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		if isSectionHeader(lines[i], sectionHeaders) && !isSectionHeader(lines[i], markers) {
			end = i
			break
		}
	}
	return strings.TrimSpace(strings.Join(lines[start:end], "\n"))
}

// isSectionHeader reports whether a line is a short heading containing one of
// the given markers.
func isSectionHeader(line string, markers []string) bool {
	trimmed := strings.ToLower(strings.TrimSpace(strings.TrimLeft(line, "#*- ")))
	if trimmed == "" || len(trimmed) > 40 {
		return false
	}
	for _, marker := range markers {
		if strings.HasPrefix(trimmed, marker) {
			return true
		}
	}
	return false
}

// containsWord reports whether text contains keyword bounded by non-letter
// characters, so "bs" never matches inside "jobs".
func containsWord(text, keyword string) bool {
	idx := 0
	for {
		pos := strings.Index(text[idx:], keyword)
		if pos < 0 {
			return false
		}
		pos += idx
		beforeOK := pos == 0 || !isLetter(text[pos-1])
		afterPos := pos + len(keyword)
		afterOK := afterPos >= len(text) || !isLetter(text[afterPos])
		if beforeOK && afterOK {
			return true
		}
		idx = pos + 1
	}
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
