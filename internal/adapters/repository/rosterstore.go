package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/crewdeck/rolecall/internal/domain/model"
	"github.com/crewdeck/rolecall/pkg/metrics"
)

// Default roster store configuration constants.
const (
	defaultCapacityHint = 64
)

// RosterStore implements Store with a mutex-guarded map plus an insertion
// order list. The mutex also makes Upsert-then-Snapshot safe against
// concurrent submissions, though runs themselves are serialized upstream.
type RosterStore struct {
	mu           sync.RWMutex
	records      map[string]*model.Record
	order        []string // e-mails in first-submission order
	capacityHint int
}

// NewRosterStore creates an empty roster store with configuration options.
func NewRosterStore(_ context.Context, opts ...Option) *RosterStore {
	s := &RosterStore{
		capacityHint: defaultCapacityHint,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	s.records = make(map[string]*model.Record, s.capacityHint)
	s.order = make([]string, 0, s.capacityHint)

	metrics.UpdateRosterSize(0)
	return s
}

// Upsert inserts or overwrites attributes in place. The first-seen
// timestamp and the position in submission order are kept across
// resubmissions so reruns stay deterministic.
func (s *RosterStore) Upsert(_ context.Context, a model.Applicant) (bool, error) {
	email := model.NormalizeEmail(a.Email)
	if email == "" {
		return false, fmt.Errorf("%w: empty e-mail", ErrInvalidApplicant)
	}
	a.Email = email

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.records[email]; ok {
		a.ReceivedAt = existing.ReceivedAt
		existing.Applicant = a
		return false, nil
	}

	if a.ReceivedAt.IsZero() {
		a.ReceivedAt = time.Now()
	}
	s.records[email] = &model.Record{Applicant: a}
	s.order = append(s.order, email)
	metrics.UpdateRosterSize(len(s.order))
	return true, nil
}

// Snapshot returns all applicants in first-submission order.
func (s *RosterStore) Snapshot(_ context.Context) []model.Applicant {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Applicant, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, s.records[email].Applicant)
	}
	return out
}

// WriteResults overwrites scores, assignment, and placement for the given
// records. Every run writes the whole roster, so partial writes indicate a
// pipeline bug and are surfaced as ErrNotFound.
func (s *RosterStore) WriteResults(_ context.Context, results []model.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, r := range results {
		existing, ok := s.records[model.NormalizeEmail(r.Email)]
		if !ok {
			return fmt.Errorf("%w: %q", ErrNotFound, r.Email)
		}
		existing.Scores = copyScores(r.Scores)
		existing.Total = r.Total
		existing.Assignment = r.Assignment
		existing.Placement = r.Placement
	}
	return nil
}

// Get returns a copy of one applicant's record.
func (s *RosterStore) Get(_ context.Context, email string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.records[model.NormalizeEmail(email)]
	if !ok {
		return model.Record{}, fmt.Errorf("%w: %q", ErrNotFound, email)
	}
	return copyRecord(r), nil
}

// List returns copies of all records in first-submission order.
func (s *RosterStore) List(_ context.Context) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]model.Record, 0, len(s.order))
	for _, email := range s.order {
		out = append(out, copyRecord(s.records[email]))
	}
	return out
}

// Count returns the number of applicants on the roster.
func (s *RosterStore) Count(_ context.Context) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.order)
}

// copyRecord deep-copies a record so callers cannot alias store state.
func copyRecord(r *model.Record) model.Record {
	out := *r
	out.Scores = copyScores(r.Scores)
	return out
}

func copyScores(in model.Scores) model.Scores {
	if in == nil {
		return nil
	}
	out := make(model.Scores, len(in))
	for role, v := range in {
		out[role] = v
	}
	return out
}
