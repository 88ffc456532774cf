package scoring

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Professional-development axis weights and the recency bonus multiplier.
const (
	pdCertWeight       = 0.35
	pdLearningWeight   = 0.25
	pdConferenceWeight = 0.20
	pdContentWeight    = 0.20
	pdRecencyBonus     = 0.10

	// recencyWindow is how far around a matched pattern to look for a year.
	recencyWindow = 60
)

type pdPattern struct {
	pattern string
	weight  float64
}

var pdCertificationPatterns = []pdPattern{
	{"certified", 0.4},
	{"certification", 0.4},
	{"certificate", 0.3},
	{"aws certified", 0.5},
	{"azure certified", 0.5},
	{"google cloud certified", 0.5},
	{"pmp", 0.4},
	{"cissp", 0.4},
	{"ckad", 0.4},
	{"cka", 0.4},
	{"scrum master", 0.3},
}

var pdLearningPatterns = []pdPattern{
	{"coursera", 0.4},
	{"udemy", 0.3},
	{"udacity", 0.4},
	{"edx", 0.4},
	{"pluralsight", 0.3},
	{"linkedin learning", 0.3},
	{"khan academy", 0.2},
	{"bootcamp", 0.4},
	{"nanodegree", 0.4},
	{"online course", 0.3},
	{"mooc", 0.3},
}

var pdConferencePatterns = []pdPattern{
	{"conference", 0.4},
	{"summit", 0.3},
	{"speaker", 0.5},
	{"keynote", 0.5},
	{"presented at", 0.5},
	{"attended", 0.2},
	{"workshop", 0.3},
	{"meetup", 0.3},
	{"hackathon", 0.4},
}

var pdContentPatterns = []pdPattern{
	{"blog", 0.4},
	{"published", 0.4},
	{"author", 0.4},
	{"youtube", 0.3},
	{"podcast", 0.3},
	{"open source", 0.5},
	{"open-source", 0.5},
	{"contributor", 0.4},
	{"maintainer", 0.5},
	{"technical writing", 0.4},
	{"community", 0.2},
	{"mentor", 0.3},
}

var fourDigitYearPattern = regexp.MustCompile(`\b(19\d{2}|20\d{2})\b`)

// ProfessionalDevelopmentScore blends four axes (certifications, online
// learning, conference participation, content creation) plus a recency bonus
// derived from years mentioned near certification/learning matches.
func ProfessionalDevelopmentScore(resumeText string) float64 {
	text := strings.ToLower(resumeText)

	certScore, certRecency := scoreAxisWithRecency(text, pdCertificationPatterns)
	learningScore, learningRecency := scoreAxisWithRecency(text, pdLearningPatterns)
	conferenceScore := scoreAxis(text, pdConferencePatterns)
	contentScore := scoreAxis(text, pdContentPatterns)

	recency := certRecency
	if learningRecency > recency {
		recency = learningRecency
	}

	score := pdCertWeight*certScore +
		pdLearningWeight*learningScore +
		pdConferenceWeight*conferenceScore +
		pdContentWeight*contentScore +
		recency*pdRecencyBonus
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// scoreAxis sums the weights of matched patterns, capped at 1.0.
func scoreAxis(text string, patterns []pdPattern) float64 {
	score := 0.0
	for _, p := range patterns {
		if strings.Contains(text, p.pattern) {
			score += p.weight
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	return score
}

// scoreAxisWithRecency also computes a recency score from the most recent
// year mentioned within a window around any matched pattern.
func scoreAxisWithRecency(text string, patterns []pdPattern) (float64, float64) {
	score := 0.0
	mostRecent := 0
	for _, p := range patterns {
		idx := strings.Index(text, p.pattern)
		if idx < 0 {
			continue
		}
		score += p.weight
		if year := nearestYear(text, idx, len(p.pattern)); year > mostRecent {
			mostRecent = year
		}
	}
	if score > 1.0 {
		score = 1.0
	}
	if mostRecent == 0 {
		return score, 0
	}
	return score, recencyDecay(time.Now().Year() - mostRecent)
}

// nearestYear finds the most recent plausible year within the window around
// a match.
func nearestYear(text string, matchIdx, matchLen int) int {
	start := matchIdx - recencyWindow
	if start < 0 {
		start = 0
	}
	end := matchIdx + matchLen + recencyWindow
	if end > len(text) {
		end = len(text)
	}

	currentYear := time.Now().Year()
	best := 0
	for _, m := range fourDigitYearPattern.FindAllString(text[start:end], -1) {
		if year, err := strconv.Atoi(m); err == nil && year <= currentYear && year > best {
			best = year
		}
	}
	return best
}

// recencyDecay maps years elapsed to a score: this year 1.0, then 0.9, 0.8,
// 0.6, 0.4 up to five years, 0.2 beyond.
func recencyDecay(yearsAgo int) float64 {
	switch {
	case yearsAgo <= 0:
		return 1.0
	case yearsAgo == 1:
		return 0.9
	case yearsAgo == 2:
		return 0.8
	case yearsAgo == 3:
		return 0.6
	case yearsAgo <= 5:
		return 0.4
	default:
		return 0.2
	}
}
