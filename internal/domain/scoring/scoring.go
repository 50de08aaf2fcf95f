// Package scoring converts applicant attributes into per-role affinity scores.
package scoring

import (
	"strings"

	"github.com/crewdeck/rolecall/internal/domain/model"
)

// Signal field names recognized by the rule scorer.
const (
	FieldTrait      = "trait"
	FieldPreference = "preference"
	FieldInterests  = "interests"
	FieldGoal       = "goal"
)

// Match kinds recognized by the rule scorer.
const (
	MatchEquals   = "equals"
	MatchContains = "contains"
)

// Signal is one weighted scoring rule. Equals matches single-choice fields
// exactly; contains matches lower-cased free text as a substring. Weights
// are positive; scores only accumulate, they are never penalized.
type Signal struct {
	Field  string
	Match  string
	Value  string
	Weight float64
}

// Scorer computes affinity scores for every configured role. It is total:
// any applicant, including one with all fields empty, yields a score
// vector (possibly all zeros).
type Scorer interface {
	Score(a model.Applicant) model.Scores
}

// Option applies a configuration option to the RuleScorer.
type Option func(*RuleScorer)

// WithRoles sets the role names to score. Roles without signals score zero.
func WithRoles(roles []string) Option {
	return func(s *RuleScorer) {
		if len(roles) > 0 {
			s.roles = append([]string(nil), roles...)
		}
	}
}

// WithSignals sets the signal table from a configuration map. Signals with
// non-positive weight are dropped.
func WithSignals(table map[string][]Signal) Option {
	return func(s *RuleScorer) {
		s.signals = make(map[string][]Signal, len(table))
		for role, sigs := range table {
			kept := make([]Signal, 0, len(sigs))
			for _, sig := range sigs {
				if sig.Weight > 0 {
					kept = append(kept, sig)
				}
			}
			s.signals[role] = kept
		}
	}
}

// RuleScorer implements Scorer over a static signal table.
type RuleScorer struct {
	roles   []string
	signals map[string][]Signal
}

// NewRuleScorer creates a rule scorer with configuration options.
func NewRuleScorer(opts ...Option) *RuleScorer {
	s := &RuleScorer{
		signals: make(map[string][]Signal),
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Score sums the weights of all matching signals per role. Deterministic:
// the same attributes always produce the same vector.
func (s *RuleScorer) Score(a model.Applicant) model.Scores {
	scores := make(model.Scores, len(s.roles))
	for _, role := range s.roles {
		var total float64
		for _, sig := range s.signals[role] {
			if matches(a, sig) {
				total += sig.Weight
			}
		}
		scores[role] = total
	}
	return scores
}

// matches evaluates one signal against one applicant. Unknown fields and
// match kinds simply do not match, keeping Score total over any table.
func matches(a model.Applicant, sig Signal) bool {
	value := fieldValue(a, sig.Field)
	if value == "" || sig.Value == "" {
		return false
	}
	switch sig.Match {
	case MatchEquals:
		return value == sig.Value
	case MatchContains:
		return strings.Contains(strings.ToLower(value), strings.ToLower(sig.Value))
	default:
		return false
	}
}

func fieldValue(a model.Applicant, field string) string {
	switch field {
	case FieldTrait:
		return a.Trait
	case FieldPreference:
		return a.Preference
	case FieldInterests:
		return a.Interests
	case FieldGoal:
		return a.Goal
	default:
		return ""
	}
}
