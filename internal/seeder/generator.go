// Package seeder generates synthetic intake submissions for load and
// smoke testing against a running rolecall instance.
package seeder

import (
	"fmt"

	"github.com/google/uuid"
)

// Submission mirrors the POST /submissions request body.
type Submission struct {
	Email      string `json:"email"`
	Trait      string `json:"trait"`
	Preference string `json:"preference"`
	Interests  string `json:"interests"`
	Goal       string `json:"goal"`
}

// Attribute pools for synthetic applicants. Values line up with the
// default signal table so generated rosters score non-trivially.
var (
	traits      = []string{"analyst", "organizer", "creator", "generalist"}
	preferences = []string{"finance", "space", "media", ""}
	interests   = []string{
		"budget, spreadsheets",
		"logistics, venue booking",
		"design, video editing",
		"accounting, chess",
		"photography, video",
		"",
	}
	goals = []string{
		"become treasurer some day",
		"run operations for big events",
		"make content people actually watch",
		"meet people",
		"",
	}
)

// Generate creates n submissions with unique addresses under domain.
// Attributes cycle through the pools deterministically so repeated runs
// with the same n produce comparable rosters (addresses differ).
func Generate(n int, domain string) []Submission {
	subs := make([]Submission, n)
	for i := 0; i < n; i++ {
		subs[i] = Submission{
			Email:      fmt.Sprintf("seed-%s@%s", uuid.New().String()[:8], domain),
			Trait:      traits[i%len(traits)],
			Preference: preferences[i%len(preferences)],
			Interests:  interests[i%len(interests)],
			Goal:       goals[i%len(goals)],
		}
	}
	return subs
}
