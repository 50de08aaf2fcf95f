// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	intake "github.com/crewdeck/rolecall/internal/adapters/mq/queue"
	runner "github.com/crewdeck/rolecall/internal/adapters/mq/worker"
	repository "github.com/crewdeck/rolecall/internal/adapters/repository"
	"github.com/crewdeck/rolecall/internal/domain/admit"
	"github.com/crewdeck/rolecall/internal/domain/assign"
	"github.com/crewdeck/rolecall/internal/domain/grouping"
	"github.com/crewdeck/rolecall/internal/domain/model"
	"github.com/crewdeck/rolecall/internal/domain/scoring"
	"github.com/crewdeck/rolecall/internal/domain/types"
	"github.com/crewdeck/rolecall/pkg/logger"
	"github.com/crewdeck/rolecall/pkg/metrics"
)

// Service implements the API dependencies for the crew formation system.
type Service struct {
	mu sync.RWMutex

	// Core components
	roster   repository.Store
	gate     admit.Gatekeeper
	queue    intake.Queue
	scorer   scoring.Scorer
	assigner *assign.Assigner
	placer   *grouping.Placer
	runner   *runner.Runner

	// Configuration
	queueSize     int
	roles         []string
	caps          map[string]int
	balanceRole   string
	crews         []string
	signals       map[string][]scoring.Signal
	domainPattern string
	allowlist     []string

	// State
	started bool

	// Logging
	logger logger.Logger
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		queueSize:     10_000,
		roles:         []string{"finance", "space", "media"},
		caps:          map[string]int{"finance": 15, "space": 5, "media": 5},
		balanceRole:   "finance",
		crews:         []string{"Crew 1", "Crew 2", "Crew 3", "Crew 4", "Crew 5"},
		signals:       map[string][]scoring.Signal{},
		domainPattern: `^[a-z0-9._%+-]+@([a-z0-9-]+\.)*example\.edu$`,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes and starts the service components.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting crew formation service...")

	gate, err := admit.NewEmailGatekeeper(s.domainPattern, admit.WithAllowlist(s.allowlist))
	if err != nil {
		return fmt.Errorf("admission gate: %w", err)
	}
	s.gate = gate

	s.roster = repository.NewRosterStore(ctx)
	s.queue = intake.NewInMemoryQueue(
		intake.WithCapacity(s.queueSize),
	)
	s.scorer = scoring.NewRuleScorer(
		scoring.WithRoles(s.roles),
		scoring.WithSignals(s.signals),
	)
	s.assigner = assign.NewAssigner(
		assign.WithRolePriority(s.roles),
	)
	s.placer = grouping.NewPlacer(
		grouping.WithCrews(s.crews),
		grouping.WithRoles(s.roles),
		grouping.WithBalanceRole(s.balanceRole),
	)

	// A single runner serializes upserts and full recomputation runs.
	s.runner = runner.NewRunner(s.queue, s.roster, s)
	s.runner.Start(ctx)

	s.started = true
	s.logger.Info(ctx, "crew formation service started",
		logger.Int("roles", len(s.roles)),
		logger.Int("crews", len(s.crews)),
		logger.Int("queueSize", s.queueSize),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	ctx := context.Background()
	s.logger.Info(ctx, "stopping crew formation service...")

	if s.queue != nil {
		if q, ok := s.queue.(*intake.InMemoryQueue); ok {
			_ = q.Close()
		}
	}
	if s.runner != nil {
		_ = s.runner.Shutdown(ctx)
	}

	s.started = false
	s.logger.Info(ctx, "crew formation service stopped")
}

// Submit validates one submission and queues it for the serialized
// upsert-and-recompute loop. Admission failures return the admit package's
// sentinel errors; a full queue returns ErrBackpressure.
func (s *Service) Submit(ctx context.Context, a model.Applicant) error {
	if err := s.gate.Admit(ctx, a.Email); err != nil {
		metrics.RecordSubmissionRejected()
		s.logger.Debug(ctx, "submission rejected",
			logger.String("email", a.Email),
			logger.Error(err),
		)
		return err
	}

	a.Email = model.NormalizeEmail(a.Email)
	if !s.queue.Enqueue(ctx, a) {
		return ErrBackpressure
	}
	s.logger.Debug(ctx, "submission queued", logger.String("email", a.Email))
	return nil
}

// Recompute runs the full pipeline over the current roster: score every
// applicant, assign roles under the capacity caps, deal role holders into
// crews, and write the complete result set back. All capacity counters and
// crew slots are local to this call, so rerunning on an unchanged roster
// yields identical output.
func (s *Service) Recompute(ctx context.Context) error {
	runID := uuid.NewString()
	start := time.Now()

	snapshot := s.roster.Snapshot(ctx)

	scored := make([]assign.Scored, len(snapshot))
	for i, a := range snapshot {
		scored[i] = assign.Scored{
			Applicant: a,
			Scores:    s.scorer.Score(a),
		}
	}

	ranked := s.assigner.Assign(scored, s.capacities())

	members := make([]grouping.Member, len(ranked))
	for i, r := range ranked {
		members[i] = grouping.Member{
			Email:   r.Applicant.Email,
			Primary: r.Assignment.Primary,
		}
	}
	placements := s.placer.Place(members)

	records := make([]model.Record, len(ranked))
	floaters := 0
	primaries := make(map[string]int, len(s.roles))
	for i, r := range ranked {
		pl := placements[r.Applicant.Email]
		records[i] = model.Record{
			Applicant:  r.Applicant,
			Scores:     r.Scores,
			Total:      r.Total,
			Assignment: r.Assignment,
			Placement:  pl,
		}
		primaries[r.Assignment.Primary]++
		if pl.Floater {
			floaters++
		}
	}

	if err := s.roster.WriteResults(ctx, records); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	durationMs := float64(time.Since(start).Milliseconds())
	metrics.RecordRun()
	metrics.RecordRunDuration(durationMs)
	metrics.UpdateFloaterCount(floaters)
	for _, role := range s.roles {
		metrics.UpdatePrimaryCount(role, primaries[role])
	}

	s.logger.Info(ctx, "recomputation run complete",
		logger.String("runID", runID),
		logger.Int("applicants", len(records)),
		logger.Int("floaters", floaters),
		logger.Float64("durationMs", durationMs),
	)
	return nil
}

// Roster returns every applicant's current result in submission order.
func (s *Service) Roster(ctx context.Context) ([]types.RosterEntry, error) {
	records := s.roster.List(ctx)
	entries := make([]types.RosterEntry, len(records))
	for i, r := range records {
		entries[i] = toEntry(r)
	}
	return entries, nil
}

// Lookup returns one applicant's current result.
func (s *Service) Lookup(ctx context.Context, email string) (types.RosterEntry, error) {
	r, err := s.roster.Get(ctx, email)
	if err != nil {
		return types.RosterEntry{}, err
	}
	return toEntry(r), nil
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started":   s.started,
		"roles":     s.roles,
		"crews":     s.crews,
		"queueSize": s.queueSize,
	}

	if s.started {
		ctx := context.Background()
		stats["queueLength"] = s.queue.Len(ctx)
		stats["rosterSize"] = s.roster.Count(ctx)
	}

	return stats
}

// capacities returns a fresh copy; assignment consumes its counters.
func (s *Service) capacities() map[string]int {
	caps := make(map[string]int, len(s.caps))
	for role, c := range s.caps {
		caps[role] = c
	}
	return caps
}

func toEntry(r model.Record) types.RosterEntry {
	return types.RosterEntry{
		Email:     r.Email,
		Scores:    r.Scores,
		Total:     r.Total,
		Primary:   r.Assignment.Primary,
		Secondary: r.Assignment.Secondary,
		Crew:      r.Placement.Crew,
		Floater:   r.Placement.Floater,
	}
}
