package service

import (
	"github.com/crewdeck/rolecall/internal/domain/scoring"
	"github.com/crewdeck/rolecall/pkg/logger"
)

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(l logger.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithQueueSize sets the maximum size of the submission queue.
func WithQueueSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.queueSize = size
		}
	}
}

// WithRoles sets the role names in priority order and their capacities.
func WithRoles(roles []string, caps map[string]int) Option {
	return func(s *Service) {
		if len(roles) == 0 {
			return
		}
		s.roles = append([]string(nil), roles...)
		s.caps = make(map[string]int, len(caps))
		for role, c := range caps {
			s.caps[role] = c
		}
	}
}

// WithBalanceRole names the over-supplied role whose surplus holders
// become floaters.
func WithBalanceRole(role string) Option {
	return func(s *Service) {
		if role != "" {
			s.balanceRole = role
		}
	}
}

// WithCrews sets the crew names in deal order.
func WithCrews(crews []string) Option {
	return func(s *Service) {
		if len(crews) > 0 {
			s.crews = append([]string(nil), crews...)
		}
	}
}

// WithSignals sets the scoring signal table.
func WithSignals(table map[string][]scoring.Signal) Option {
	return func(s *Service) {
		s.signals = table
	}
}

// WithDomainPattern sets the organizational-domain pattern submissions
// must match.
func WithDomainPattern(pattern string) Option {
	return func(s *Service) {
		if pattern != "" {
			s.domainPattern = pattern
		}
	}
}

// WithAllowlist restricts submissions to the given addresses.
func WithAllowlist(addresses []string) Option {
	return func(s *Service) {
		s.allowlist = addresses
	}
}
