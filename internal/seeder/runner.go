package seeder

import (
	"context"
	"fmt"
	"time"

	"github.com/crewdeck/rolecall/pkg/logger"
)

// Config controls one seeding run.
type Config struct {
	BaseURL string
	Domain  string
	Count   int
	Timeout time.Duration
	// SettleDelay gives the serialized runner time to drain the queue
	// before the final roster fetch.
	SettleDelay time.Duration
}

// Run generates Count submissions, posts them sequentially, then fetches
// and prints the resulting roster.
func Run(ctx context.Context, cfg Config) error {
	log := logger.Get().Named("seeder")
	client := NewClient(cfg.BaseURL, cfg.Timeout)

	subs := Generate(cfg.Count, cfg.Domain)
	log.Info(ctx, "posting submissions",
		logger.Int("count", len(subs)),
		logger.String("url", cfg.BaseURL),
	)

	posted := 0
	for _, s := range subs {
		if err := client.Post(ctx, s); err != nil {
			log.Warn(ctx, "submission failed",
				logger.String("email", s.Email),
				logger.Error(err),
			)
			continue
		}
		posted++
	}
	log.Info(ctx, "submissions posted", logger.Int("posted", posted))

	select {
	case <-ctx.Done():
		return fmt.Errorf("seeding interrupted: %w", ctx.Err())
	case <-time.After(cfg.SettleDelay):
	}

	roster, err := client.FetchRoster(ctx)
	if err != nil {
		return fmt.Errorf("fetch roster: %w", err)
	}
	fmt.Println(string(roster))
	return nil
}
