// Package repository defines the roster store interface and errors.
package repository

import (
	"context"

	"github.com/crewdeck/rolecall/internal/domain/model"
)

// Store provides read/write access to the roster. The pipeline reads the
// full applicant set from it and writes every run's results back in full;
// it never patches individual rows incrementally.
type Store interface {
	// Upsert inserts a new applicant or overwrites the attributes of an
	// existing one in place, keyed by normalized e-mail. Returns true
	// when a new record was created.
	Upsert(ctx context.Context, a model.Applicant) (bool, error)

	// Snapshot returns every applicant in first-submission order. That
	// order is the tie-break order for equal totals during assignment.
	Snapshot(ctx context.Context) []model.Applicant

	// WriteResults overwrites the computed results for the given
	// records. Returns ErrNotFound if any record's e-mail is unknown.
	WriteResults(ctx context.Context, results []model.Record) error

	// Get returns the full record for one applicant.
	// Returns ErrNotFound if the e-mail is unknown.
	Get(ctx context.Context, email string) (model.Record, error)

	// List returns every record in first-submission order.
	List(ctx context.Context) []model.Record

	// Count returns the number of applicants on the roster.
	Count(ctx context.Context) int
}
