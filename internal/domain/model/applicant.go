// Package model contains domain models passed between layers.
package model

import (
	"strings"
	"time"
)

// RoleName identifies one of the crew roles, e.g. "finance", "space", "media".
type RoleName = string

// Applicant represents one intake submission. Identity is the e-mail
// address; attributes are only consumed by the scorer and are overwritten
// in place when the same address submits again.
type Applicant struct {
	Email      string    // unique id, lower-cased
	Trait      string    // single-choice self-description
	Preference string    // single-choice role preference tag
	Interests  string    // free-text tag list, comma separated
	Goal       string    // free-text aspiration
	ReceivedAt time.Time // first-seen timestamp, kept across resubmissions
}

// NormalizeEmail lower-cases and trims an identifier so that lookups and
// upserts agree on a single key per applicant.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Scores holds one non-negative affinity score per role for a single run.
// Recomputed from applicant attributes on every run, never carried over.
type Scores map[RoleName]float64

// Total sums all role scores; used only for ranking within one run.
func (s Scores) Total() float64 {
	var t float64
	for _, v := range s {
		t += v
	}
	return t
}

// Assignment captures the role decision for one applicant in one run.
// Primary is always set; Secondary may be empty when the primary was the
// last role in the applicant's preference order.
type Assignment struct {
	Primary   RoleName
	Secondary RoleName
	// Overflow is true when every role was at zero remaining capacity and
	// the primary was forced onto the applicant's top preference anyway.
	Overflow bool
}

// Placement captures the crew decision for one applicant in one run.
// Crew is empty for unplaced applicants; Floater is true only when the
// applicant holds the balance role and no crew slot was left for it.
type Placement struct {
	Crew    string
	Floater bool
}

// Record is the full per-applicant result written back to the roster store
// after a run: attributes plus scores, role assignment, and placement.
type Record struct {
	Applicant
	Scores     Scores
	Total      float64
	Assignment Assignment
	Placement  Placement
}
