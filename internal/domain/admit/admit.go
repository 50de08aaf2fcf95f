// Package admit enforces the submission validation boundary.
//
// Malformed or disallowed identifiers are rejected here and never create
// or update a roster record; the pipeline downstream can assume every
// applicant it sees is valid.
package admit

import (
	"context"
	"fmt"
	"regexp"

	"github.com/crewdeck/rolecall/internal/domain/model"
)

// Gatekeeper decides whether a submission identifier may enter the roster.
type Gatekeeper interface {
	// Admit returns nil for an acceptable e-mail address, or a sentinel
	// error (ErrBadAddress, ErrNotAllowed) describing the rejection.
	Admit(ctx context.Context, email string) error
}

// EmailGatekeeper implements Gatekeeper with an organizational-domain
// pattern and an optional exact-match allowlist.
type EmailGatekeeper struct {
	pattern   *regexp.Regexp
	allowlist map[string]bool
}

// NewEmailGatekeeper compiles the domain pattern and applies options.
// Addresses are normalized (lower-cased, trimmed) before matching, so the
// pattern only needs to cover lower-case forms.
func NewEmailGatekeeper(pattern string, opts ...Option) (*EmailGatekeeper, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadPattern, err)
	}

	g := &EmailGatekeeper{pattern: re}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Admit checks the normalized address against the domain pattern and, when
// an allowlist is configured, against it.
func (g *EmailGatekeeper) Admit(_ context.Context, email string) error {
	normalized := model.NormalizeEmail(email)
	if normalized == "" || !g.pattern.MatchString(normalized) {
		return fmt.Errorf("%w: %q", ErrBadAddress, email)
	}
	if g.allowlist != nil && !g.allowlist[normalized] {
		return fmt.Errorf("%w: %q", ErrNotAllowed, email)
	}
	return nil
}
