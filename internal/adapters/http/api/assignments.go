// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/crewdeck/rolecall/internal/adapters/repository"
)

// AssignmentDependencies defines the interface for per-applicant lookups.
type AssignmentDependencies interface {
	Lookup(ctx context.Context, email string) (Entry, error)
}

// AssignmentHandler handles single-assignment requests.
type AssignmentHandler struct {
	deps AssignmentDependencies
}

// NewAssignmentHandler creates a new assignment handler.
func NewAssignmentHandler(deps AssignmentDependencies) *AssignmentHandler {
	return &AssignmentHandler{deps: deps}
}

// HandleGetAssignment handles GET /assignments/{email} requests.
func (h *AssignmentHandler) HandleGetAssignment(w http.ResponseWriter, r *http.Request) {
	const op = "api.get_assignment"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	// Extract path parameter after /assignments/
	email := strings.TrimPrefix(r.URL.Path, "/assignments/")
	if email == "" || strings.Contains(email, "/") {
		writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
		return
	}
	entry, err := h.deps.Lookup(r.Context(), email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found", Wrap(op, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, entry)
}
