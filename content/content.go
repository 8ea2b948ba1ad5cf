// Package content provides canned response text drawn from weighted
// distributions.
package content

import (
	"math/rand/v2"

	"gitlab.com/zephyrtronium/pick"
)

// Provider selects canned content for commands.
type Provider struct {
	dists map[string]*pick.Dist[string]
	rand  func() uint32
}

// New creates a content provider. Each entry in overrides replaces the
// built-in distribution for that kind; entries for unknown kinds add new
// ones. If rng is nil, the provider uses the global random source.
func New(overrides map[string]map[string]int, rng func() uint32) *Provider {
	p := &Provider{
		dists: make(map[string]*pick.Dist[string], len(builtin)),
		rand:  rng,
	}
	if p.rand == nil {
		p.rand = rand.Uint32
	}
	for kind, m := range builtin {
		p.dists[kind] = pick.New(pick.FromMap(m))
	}
	for kind, m := range overrides {
		p.dists[kind] = pick.New(pick.FromMap(m))
	}
	return p
}

// Pick selects one item of the given kind of content. It returns the
// empty string if the kind is unknown or empty.
func (p *Provider) Pick(kind string) string {
	d := p.dists[kind]
	if d == nil {
		return ""
	}
	return d.Pick(p.rand())
}
