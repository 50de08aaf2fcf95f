// Package worker runs the serialized upsert-and-recompute loop.
//
// A single Runner goroutine consumes the submission queue, so no two
// recomputation runs ever overlap: the queue is the mutual-exclusion
// mechanism for the run-local capacity and slot state downstream.
package worker

import (
	"context"
	"fmt"

	"github.com/crewdeck/rolecall/internal/adapters/mq/queue"
	"github.com/crewdeck/rolecall/pkg/logger"
	"github.com/crewdeck/rolecall/pkg/metrics"
)

// Submission abstracts what the runner reads off the queue.
// Using the queue payload type for consistency.
type Submission = queue.Submission

// Upserter writes one submission into the roster before recomputation.
type Upserter interface {
	Upsert(ctx context.Context, a Submission) (bool, error)
}

// Recomputer performs one full scoring/assignment/placement run over the
// whole roster.
type Recomputer interface {
	Recompute(ctx context.Context) error
}

// Queue defines how the runner receives submissions.
type Queue interface {
	Dequeue(ctx context.Context) <-chan Submission
}

// Runner consumes submissions one at a time: upsert, then a full run.
type Runner struct {
	queue      Queue
	upserter   Upserter
	recomputer Recomputer
	name       string

	// Shutdown control
	shutdown chan struct{}
	done     chan struct{}

	// Logging
	logger logger.Logger
}

// NewRunner creates a runner with configuration options.
func NewRunner(q Queue, u Upserter, r Recomputer, opts ...Option) *Runner {
	runner := &Runner{
		queue:      q,
		upserter:   u,
		recomputer: r,
		name:       "runner",
		shutdown:   make(chan struct{}),
		done:       make(chan struct{}),
		logger:     logger.Get().Named("runner"),
	}

	// Apply all options
	for _, opt := range opts {
		opt(runner)
	}

	return runner
}

// Start launches the runner loop in its own goroutine.
func (r *Runner) Start(ctx context.Context) {
	go r.run(ctx)
}

// run is the single-writer loop.
func (r *Runner) run(ctx context.Context) {
	defer close(r.done)

	submissions := r.queue.Dequeue(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-r.shutdown:
			return
		case s, ok := <-submissions:
			if !ok {
				// Channel closed, runner should stop
				return
			}
			if err := r.process(ctx, s); err != nil {
				r.logger.Error(ctx, "submission processing failed",
					logger.String("email", s.Email),
					logger.Error(err),
				)
			}
		}
	}
}

// process upserts one submission and recomputes the whole roster.
func (r *Runner) process(ctx context.Context, s Submission) error {
	created, err := r.upserter.Upsert(ctx, s)
	if err != nil {
		metrics.RecordRunError()
		return fmt.Errorf("upsert %s: %w", s.Email, err)
	}
	if created {
		metrics.RecordSubmissionAccepted()
	} else {
		metrics.RecordResubmission()
	}

	if err := r.recomputer.Recompute(ctx); err != nil {
		metrics.RecordRunError()
		return fmt.Errorf("recompute after %s: %w", s.Email, err)
	}
	return nil
}

// Shutdown gracefully stops the runner.
func (r *Runner) Shutdown(ctx context.Context) error {
	close(r.shutdown)

	select {
	case <-r.done:
		return nil
	case <-ctx.Done():
		r.logger.Warn(ctx, "runner shutdown timed out")
		return fmt.Errorf("runner shutdown timed out: %w", ctx.Err())
	}
}
