// Command seed posts synthetic intake submissions to a running rolecall
// instance and prints the resulting roster.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/crewdeck/rolecall/internal/seeder"
	"github.com/crewdeck/rolecall/pkg/logger"
)

func main() {
	url := flag.String("url", "http://localhost:9080", "base URL of the service")
	domain := flag.String("domain", "example.edu", "e-mail domain for generated applicants")
	count := flag.Int("count", 25, "number of submissions to generate")
	timeout := flag.Duration("timeout", 10*time.Second, "HTTP request timeout")
	settle := flag.Duration("settle", 2*time.Second, "wait before fetching the roster")
	flag.Parse()

	if err := logger.Init(); err != nil {
		os.Stderr.WriteString("failed to initialize logging: " + err.Error() + "\n")
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := seeder.Config{
		BaseURL:     *url,
		Domain:      *domain,
		Count:       *count,
		Timeout:     *timeout,
		SettleDelay: *settle,
	}
	if err := seeder.Run(ctx, cfg); err != nil {
		logger.Get().Error(ctx, "seeding failed", logger.Error(err))
		os.Exit(1)
	}
}
