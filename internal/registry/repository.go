// Package registry maintains the candidate repository: identifier indexes for
// fast-path duplicate lookup, incremental classification on insert, and the
// final duplicate-group scan.
package registry

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"time"

	"github.com/jonathan/candidate-ranker/internal/similarity"
	"github.com/jonathan/candidate-ranker/internal/types"
)

// candidateIDLength is the hex length of generated candidate ids.
const candidateIDLength = 12

// Candidate is one stored identity record with its repository-assigned id.
type Candidate struct {
	ID     string
	Record *types.IdentityRecord
}

// DuplicateMatch records one duplicate flag raised while inserting a record.
type DuplicateMatch struct {
	Filename string              `json:"filename"` // the previously stored resume
	Decision similarity.Decision `json:"decision"`
	Signals  similarity.Signals  `json:"signals"`
}

// InsertResult reports the outcome of inserting one identity record.
type InsertResult struct {
	CandidateID string           `json:"candidate_id"`
	Duplicates  []DuplicateMatch `json:"duplicates,omitempty"`
}

// Repository indexes candidates by email and phone for O(1) duplicate
// fast-paths and keeps every stored record for fallback pairwise comparison.
// A Repository instance is owned by a single filtering run; inserts are
// order-dependent (the first record seen becomes a group's primary) and must
// not be issued concurrently.
type Repository struct {
	emailIndex map[string]string // email -> candidate id
	phoneIndex map[string]string // phone -> candidate id
	byID       map[string]*Candidate
	order      []string // candidate ids in insertion order

	now func() time.Time // injectable for deterministic tests
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{
		emailIndex: make(map[string]string),
		phoneIndex: make(map[string]string),
		byID:       make(map[string]*Candidate),
		now:        time.Now,
	}
}

// Insert stores a new identity record, classifying it against existing
// candidates via the email/phone fast paths first and a full pairwise scan
// otherwise. Identifier registration is conditional: a phone number that
// contributed to a duplicate flag is left unregistered so it cannot cascade
// into further merges.
func (r *Repository) Insert(record *types.IdentityRecord) InsertResult {
	var duplicates []DuplicateMatch
	checked := make(map[string]bool)

	flag := func(c *Candidate) {
		if checked[c.ID] {
			return
		}
		checked[c.ID] = true
		signals := similarity.Compare(record, c.Record)
		decision := similarity.Classify(signals)
		// A phone-flagged duplicate between records with different first
		// names and different emails is forced to distinct.
		if decision.IsDuplicate && signals.PhoneMatch == 1 && similarity.DifferentPeople(record, c.Record) {
			return
		}
		if decision.IsDuplicate {
			duplicates = append(duplicates, DuplicateMatch{
				Filename: c.Record.Filename,
				Decision: decision,
				Signals:  signals,
			})
		}
	}

	// Fast path 1: email index.
	for _, email := range record.Emails {
		if c, ok := r.LookupByEmail(email); ok {
			flag(c)
		}
	}

	// Fast path 2: phone index, unless the different-person guard applies.
	for _, phone := range record.Phones {
		if c, ok := r.LookupByPhone(phone); ok && !similarity.DifferentPeople(record, c.Record) {
			flag(c)
		}
	}

	// Fallback: pairwise comparison against everything stored so far.
	if len(duplicates) == 0 {
		for _, c := range r.All() {
			flag(c)
		}
	}

	id := r.newCandidateID(record.Filename)
	candidate := &Candidate{ID: id, Record: record}
	r.byID[id] = candidate
	r.order = append(r.order, id)

	r.registerIdentifiers(candidate, duplicates)

	return InsertResult{CandidateID: id, Duplicates: duplicates}
}

// registerIdentifiers adds the record's identifiers to the fast-path indexes.
// Emails always register; phones register only when they did not contribute
// to a duplicate flag.
func (r *Repository) registerIdentifiers(c *Candidate, duplicates []DuplicateMatch) {
	for _, email := range c.Record.Emails {
		if _, exists := r.emailIndex[email]; !exists {
			r.emailIndex[email] = c.ID
		}
	}

	for _, phone := range c.Record.Phones {
		if len(duplicates) > 0 && r.phoneContributed(phone, duplicates) {
			continue
		}
		if _, exists := r.phoneIndex[phone]; !exists {
			r.phoneIndex[phone] = c.ID
		}
	}
}

// phoneContributed reports whether the given phone is shared with any of the
// flagged duplicate partners.
func (r *Repository) phoneContributed(phone string, duplicates []DuplicateMatch) bool {
	for _, d := range duplicates {
		if partner := r.byFilename(d.Filename); partner != nil && partner.Record.HasPhone(phone) {
			return true
		}
	}
	return false
}

// LookupByEmail returns the candidate registered under an email, if any.
func (r *Repository) LookupByEmail(email string) (*Candidate, bool) {
	id, ok := r.emailIndex[email]
	if !ok {
		return nil, false
	}
	return r.byID[id], true
}

// LookupByPhone returns the candidate registered under a phone number, if any.
func (r *Repository) LookupByPhone(phone string) (*Candidate, bool) {
	id, ok := r.phoneIndex[phone]
	if !ok {
		return nil, false
	}
	return r.byID[id], true
}

// All returns every stored candidate in insertion order.
func (r *Repository) All() []*Candidate {
	candidates := make([]*Candidate, 0, len(r.order))
	for _, id := range r.order {
		candidates = append(candidates, r.byID[id])
	}
	return candidates
}

// Len returns the number of stored candidates.
func (r *Repository) Len() int {
	return len(r.order)
}

// byFilename finds a stored candidate by resume filename.
func (r *Repository) byFilename(filename string) *Candidate {
	for _, id := range r.order {
		if r.byID[id].Record.Filename == filename {
			return r.byID[id]
		}
	}
	return nil
}

// newCandidateID derives a time-salted id from the filename and insertion
// timestamp. Ids are unique, not reproducible across runs; downstream keys on
// file path, so reproducibility is not load-bearing.
func (r *Repository) newCandidateID(filename string) string {
	salt := strconv.FormatInt(r.now().UnixNano(), 10)
	sum := sha256.Sum256([]byte(filename + salt))
	return hex.EncodeToString(sum[:])[:candidateIDLength]
}
