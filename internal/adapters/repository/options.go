// Package repository defines the roster store interface and errors.
package repository

// Option applies a configuration option to the RosterStore.
type Option func(*RosterStore)

// WithCapacityHint pre-sizes the roster for an expected applicant count.
func WithCapacityHint(n int) Option {
	return func(s *RosterStore) {
		if n > 0 {
			s.capacityHint = n
		}
	}
}
