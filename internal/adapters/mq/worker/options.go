package worker

import "github.com/crewdeck/rolecall/pkg/logger"

// Option applies a configuration option to the Runner.
type Option func(*Runner)

// WithName sets the runner's name used in log attribution.
func WithName(name string) Option {
	return func(r *Runner) {
		if name != "" {
			r.name = name
			r.logger = logger.Get().Named(name)
		}
	}
}

// WithLogger sets a custom logger for the runner.
func WithLogger(l logger.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}
