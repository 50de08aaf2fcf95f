// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/crewdeck/rolecall/internal/domain/model"
	"github.com/crewdeck/rolecall/internal/domain/types"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	// Submit validates one submission and queues it for processing.
	Submit(ctx context.Context, a model.Applicant) error

	// Read operations expose roster data.
	Roster(ctx context.Context) ([]Entry, error)
	Lookup(ctx context.Context, email string) (Entry, error)
}

// Entry mirrors the read shape returned by roster queries.
type Entry = types.RosterEntry

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler      *HealthHandler
	statsHandler       *StatsHandler
	submissionsHandler *SubmissionsHandler
	rosterHandler      *RosterHandler
	assignmentHandler  *AssignmentHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:      NewHealthHandler(),
		statsHandler:       NewStatsHandler(statsProvider),
		submissionsHandler: NewSubmissionsHandler(deps),
		rosterHandler:      NewRosterHandler(deps),
		assignmentHandler:  NewAssignmentHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	// Specific paths first (most specific to least specific)
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))
	mux.HandleFunc("/submissions", MetricsMiddleware(s.submissionsHandler.HandlePostSubmission, "submissions"))
	mux.HandleFunc("/roster", MetricsMiddleware(s.rosterHandler.HandleGetRoster, "roster"))
	mux.HandleFunc("/assignments/", MetricsMiddleware(s.assignmentHandler.HandleGetAssignment, "assignments"))
}

// submissionRequest mirrors the intake form for POST /submissions.
type submissionRequest struct {
	Email      string `json:"email"`
	Trait      string `json:"trait"`
	Preference string `json:"preference"`
	Interests  string `json:"interests"`
	Goal       string `json:"goal"`
}

func (r submissionRequest) validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("missing email")
	}
	// Attribute fields may be empty; empty fields simply score zero.
	return nil
}

func (r submissionRequest) applicant() model.Applicant {
	return model.Applicant{
		Email:      r.Email,
		Trait:      r.Trait,
		Preference: r.Preference,
		Interests:  r.Interests,
		Goal:       r.Goal,
	}
}

type ackResponse struct {
	Status string `json:"status"`
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
