// Package assign turns scored applicants into capacity-bounded role assignments.
package assign

import (
	"sort"

	"github.com/crewdeck/rolecall/internal/domain/model"
)

// Scored pairs an applicant with its score vector for one run.
type Scored struct {
	Applicant model.Applicant
	Scores    model.Scores
}

// Result is one applicant's outcome: its rank-ordered position is the
// slice position in the value returned by Assign.
type Result struct {
	Applicant  model.Applicant
	Scores     model.Scores
	Total      float64
	Assignment model.Assignment
}

// Option applies a configuration option to the Assigner.
type Option func(*Assigner)

// WithRolePriority sets the fixed role order used to break per-applicant
// score ties when building preference lists.
func WithRolePriority(roles []string) Option {
	return func(a *Assigner) {
		if len(roles) > 0 {
			a.priority = append([]string(nil), roles...)
		}
	}
}

// Assigner hands out primary and secondary roles in one greedy pass.
type Assigner struct {
	priority []string
}

// NewAssigner creates an assigner with configuration options.
func NewAssigner(opts ...Option) *Assigner {
	a := &Assigner{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assign ranks all applicants by total score (stable: equal totals keep
// input order) and walks each applicant's personal preference list. The
// first role with remaining capacity becomes primary and consumes one
// unit; the role after it in the walk becomes secondary, capacity
// ignored. When every role is exhausted the primary is forced onto the
// top preference: an intentional overflow, surfaced as data. Capacity
// counters are local to this call; nothing persists across runs.
func (a *Assigner) Assign(scored []Scored, caps map[string]int) []Result {
	results := make([]Result, len(scored))
	for i, s := range scored {
		results[i] = Result{
			Applicant: s.Applicant,
			Scores:    s.Scores,
			Total:     s.Scores.Total(),
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Total > results[j].Total
	})

	remaining := make(map[string]int, len(caps))
	for role, c := range caps {
		remaining[role] = c
	}

	for i := range results {
		prefs := a.preferenceOrder(results[i].Scores)
		if len(prefs) == 0 {
			continue
		}

		assignment := model.Assignment{}
		for j, role := range prefs {
			if remaining[role] > 0 {
				assignment.Primary = role
				remaining[role]--
				if j+1 < len(prefs) {
					assignment.Secondary = prefs[j+1]
				}
				break
			}
		}
		if assignment.Primary == "" {
			// Every role is at zero remaining capacity: force the top
			// preference rather than leaving the applicant unassigned.
			assignment.Primary = prefs[0]
			if len(prefs) > 1 {
				assignment.Secondary = prefs[1]
			}
			assignment.Overflow = true
		}
		results[i].Assignment = assignment
	}

	return results
}

// preferenceOrder sorts the configured roles by this applicant's own
// scores, descending. The stable sort keeps the fixed priority order for
// equal scores.
func (a *Assigner) preferenceOrder(scores model.Scores) []string {
	prefs := append([]string(nil), a.priority...)
	sort.SliceStable(prefs, func(i, j int) bool {
		return scores[prefs[i]] > scores[prefs[j]]
	})
	return prefs
}
