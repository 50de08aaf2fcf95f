package admit

import "github.com/crewdeck/rolecall/internal/domain/model"

// Option applies a configuration option to the EmailGatekeeper.
type Option func(*EmailGatekeeper)

// WithAllowlist restricts admission to the given addresses (compared after
// normalization). An empty or nil list leaves admission open to any
// address matching the domain pattern.
func WithAllowlist(addresses []string) Option {
	return func(g *EmailGatekeeper) {
		if len(addresses) == 0 {
			return
		}
		g.allowlist = make(map[string]bool, len(addresses))
		for _, a := range addresses {
			g.allowlist[model.NormalizeEmail(a)] = true
		}
	}
}
