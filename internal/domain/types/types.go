// Package types contains common types used across the application
package types

// RosterEntry represents one applicant row as returned by read endpoints.
type RosterEntry struct {
	Email     string             `json:"email"`
	Scores    map[string]float64 `json:"scores"`
	Total     float64            `json:"total"`
	Primary   string             `json:"primary"`
	Secondary string             `json:"secondary,omitempty"`
	Crew      string             `json:"crew,omitempty"`
	Floater   bool               `json:"floater"`
}
