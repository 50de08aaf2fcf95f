// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Keep fields unexported where possible and use functional options.
// - Provide New() initializer to build a Config with defaults.
// - External errors must be wrapped via this package's error helpers.
package config

// Role describes one crew role with its hard primary-assignment capacity.
// Order in the Roles slice is the fixed role-priority order used to break
// score ties when building an applicant's preference list.
type Role struct {
	Name     string `koanf:"name"`
	Capacity int    `koanf:"capacity"`
}

// Signal describes one weighted scoring rule: it tests a single applicant
// field against a value and contributes Weight to the role's score when it
// matches. Match is "equals" (exact, for single-choice fields) or
// "contains" (case-insensitive substring, for free text).
type Signal struct {
	Field  string  `koanf:"field"`
	Match  string  `koanf:"match"`
	Value  string  `koanf:"value"`
	Weight float64 `koanf:"weight"`
}

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// QueueSize bounds the in-memory submission queue.
	QueueSize int `koanf:"queue_size"`

	// Roles lists the crew roles in priority order with their capacities.
	Roles []Role `koanf:"roles"`

	// BalanceRole names the over-supplied role whose surplus holders
	// become floaters instead of filling a crew slot.
	BalanceRole string `koanf:"balance_role"`

	// Crews lists the crew names in deal order.
	Crews []string `koanf:"crews"`

	// DomainPattern is the regular expression a submission e-mail must
	// match before it reaches the roster.
	DomainPattern string `koanf:"domain_pattern"`

	// Allowlist optionally restricts submissions to these exact
	// addresses (case-insensitive). Empty means no allowlist.
	Allowlist []string `koanf:"allowlist"`

	// Signals maps each role name to its weighted scoring rules.
	Signals map[string][]Signal `koanf:"signals"`
}

// New creates a Config with the reference crew-formation defaults: three
// roles in priority order finance > space > media, finance over-supplied
// (the balance role), and five crews so the anchor capacities equal the
// crew count exactly.
func New() *Config {
	c := &Config{
		LogLevel:  "info",
		Addr:      ":9080",
		QueueSize: 10_000,
		Roles: []Role{
			{Name: "finance", Capacity: 15},
			{Name: "space", Capacity: 5},
			{Name: "media", Capacity: 5},
		},
		BalanceRole:   "finance",
		Crews:         []string{"Crew 1", "Crew 2", "Crew 3", "Crew 4", "Crew 5"},
		DomainPattern: `^[a-z0-9._%+-]+@([a-z0-9-]+\.)*example\.edu$`,
		Allowlist:     nil,
		Signals: map[string][]Signal{
			"finance": {
				{Field: "trait", Match: "equals", Value: "analyst", Weight: 1.0},
				{Field: "preference", Match: "equals", Value: "finance", Weight: 1.0},
				{Field: "interests", Match: "contains", Value: "budget", Weight: 0.5},
				{Field: "interests", Match: "contains", Value: "accounting", Weight: 0.5},
				{Field: "goal", Match: "contains", Value: "treasurer", Weight: 1.0},
			},
			"space": {
				{Field: "trait", Match: "equals", Value: "organizer", Weight: 1.0},
				{Field: "preference", Match: "equals", Value: "space", Weight: 1.0},
				{Field: "interests", Match: "contains", Value: "logistics", Weight: 0.5},
				{Field: "interests", Match: "contains", Value: "venue", Weight: 0.5},
				{Field: "goal", Match: "contains", Value: "operations", Weight: 1.0},
			},
			"media": {
				{Field: "trait", Match: "equals", Value: "creator", Weight: 1.0},
				{Field: "preference", Match: "equals", Value: "media", Weight: 1.0},
				{Field: "interests", Match: "contains", Value: "design", Weight: 0.5},
				{Field: "interests", Match: "contains", Value: "video", Weight: 0.5},
				{Field: "goal", Match: "contains", Value: "content", Weight: 1.0},
			},
		},
	}
	return c
}

// RoleNames returns the configured role names in priority order.
func (c *Config) RoleNames() []string {
	names := make([]string, len(c.Roles))
	for i, r := range c.Roles {
		names[i] = r.Name
	}
	return names
}

// Capacities returns role name -> capacity for the assigner.
func (c *Config) Capacities() map[string]int {
	caps := make(map[string]int, len(c.Roles))
	for _, r := range c.Roles {
		caps[r.Name] = r.Capacity
	}
	return caps
}
