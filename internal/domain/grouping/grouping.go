// Package grouping deals role holders into crews, one holder per role per crew.
package grouping

import (
	"github.com/crewdeck/rolecall/internal/domain/model"
)

// Member is one role-assigned applicant in rank order.
type Member struct {
	Email   string
	Primary model.RoleName
}

// Option applies a configuration option to the Placer.
type Option func(*Placer)

// WithCrews sets the crew names in deal order.
func WithCrews(crews []string) Option {
	return func(p *Placer) {
		if len(crews) > 0 {
			p.crews = append([]string(nil), crews...)
		}
	}
}

// WithRoles sets the role order. Anchor roles are dealt before the balance
// role so that surplus balance-role holders are the only ones left over.
func WithRoles(roles []string) Option {
	return func(p *Placer) {
		if len(roles) > 0 {
			p.roles = append([]string(nil), roles...)
		}
	}
}

// WithBalanceRole names the over-supplied role whose unplaced holders are
// flagged as floaters.
func WithBalanceRole(role string) Option {
	return func(p *Placer) {
		p.balance = role
	}
}

// Placer distributes role holders across crews. All slot state lives in a
// single Place call; every run starts with every crew empty.
type Placer struct {
	crews   []string
	roles   []string
	balance string
}

// NewPlacer creates a placer with configuration options.
func NewPlacer(opts ...Option) *Placer {
	p := &Placer{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Place deals members into crews bucket by bucket: anchor roles first, the
// balance role last. Within a bucket a rotating cursor walks crew indices;
// each member takes the first crew (scanning at most len(crews) indices,
// wrapping) whose slot for its role is still empty, and the cursor moves
// one past the crew just filled. Members who find every slot taken stay
// unplaced; after all buckets those holding the balance role are flagged
// floaters. Each member lands in at most one crew.
func (p *Placer) Place(members []Member) map[string]model.Placement {
	buckets := make(map[model.RoleName][]Member, len(p.roles))
	for _, m := range members {
		buckets[m.Primary] = append(buckets[m.Primary], m)
	}

	placements := make(map[string]model.Placement, len(members))
	slots := make(map[model.RoleName][]string, len(p.roles))
	for _, role := range p.bucketOrder() {
		slots[role] = make([]string, len(p.crews))
		cursor := 0
		for _, m := range buckets[role] {
			placed := false
			for k := 0; k < len(p.crews); k++ {
				idx := (cursor + k) % len(p.crews)
				if slots[role][idx] == "" {
					slots[role][idx] = m.Email
					placements[m.Email] = model.Placement{Crew: p.crews[idx]}
					cursor = (idx + 1) % len(p.crews)
					placed = true
					break
				}
			}
			if !placed {
				placements[m.Email] = model.Placement{}
			}
		}
	}

	// Floater status is decided from final occupancy, not mid-deal.
	for _, m := range buckets[p.balance] {
		pl := placements[m.Email]
		if pl.Crew == "" {
			pl.Floater = true
			placements[m.Email] = pl
		}
	}

	// Members holding a role outside the configured set still get a
	// defined, empty placement.
	for _, m := range members {
		if _, ok := placements[m.Email]; !ok {
			placements[m.Email] = model.Placement{}
		}
	}

	return placements
}

// bucketOrder returns the configured roles with the balance role moved to
// the end; anchors keep their relative order.
func (p *Placer) bucketOrder() []model.RoleName {
	order := make([]model.RoleName, 0, len(p.roles))
	hasBalance := false
	for _, role := range p.roles {
		if role == p.balance {
			hasBalance = true
			continue
		}
		order = append(order, role)
	}
	if hasBalance {
		order = append(order, p.balance)
	}
	return order
}
