package config

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if ROLECALL_CONFIG is set
//  3. env (prefix ROLECALL_)
func Load(ctx context.Context) (*Config, error) {
	// Start with defaults
	base := New()

	k := koanf.New(".")

	// Load from file if provided
	if path := os.Getenv("ROLECALL_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: ROLECALL_ADDR, ROLECALL_QUEUE_SIZE, ...
	// Map env keys like ROLECALL_QUEUE_SIZE -> queue_size (flat keys)
	// Preserve underscores to match koanf tags on the struct.
	envProvider := env.Provider("ROLECALL_", ".", func(s string) string {
		s = strings.ToLower(s)
		s = strings.TrimPrefix(s, "rolecall_")
		return s
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	// Unmarshal into a copy
	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// validate rejects configurations the pipeline cannot run with.
func (c *Config) validate() error {
	if c.Addr == "" {
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	}
	if len(c.Roles) == 0 {
		return fmt.Errorf("%w: at least one role is required", ErrInvalidConfig)
	}
	if len(c.Crews) == 0 {
		return fmt.Errorf("%w: at least one crew is required", ErrInvalidConfig)
	}
	seen := make(map[string]bool, len(c.Roles))
	for _, r := range c.Roles {
		if r.Name == "" {
			return fmt.Errorf("%w: role name must not be empty", ErrInvalidConfig)
		}
		if seen[r.Name] {
			return fmt.Errorf("%w: duplicate role %q", ErrInvalidConfig, r.Name)
		}
		if r.Capacity < 0 {
			return fmt.Errorf("%w: role %q has negative capacity", ErrInvalidConfig, r.Name)
		}
		seen[r.Name] = true
	}
	if !seen[c.BalanceRole] {
		return fmt.Errorf("%w: balance_role %q is not a configured role", ErrInvalidConfig, c.BalanceRole)
	}
	if _, err := regexp.Compile(c.DomainPattern); err != nil {
		return fmt.Errorf("%w: domain_pattern: %w", ErrInvalidConfig, err)
	}
	return nil
}
