// Package ratelimit provides a per-key token-bucket limiter used to slow
// down password guessing on the login path.
package ratelimit

import (
	"sync"

	"golang.org/x/time/rate"
)

// PerKey keeps an independent token bucket per key (typically a username).
// Buckets are created lazily and pruned once the map grows past maxEntries,
// so a scan over many usernames cannot grow memory without bound.
type PerKey struct {
	mu         sync.Mutex
	limiters   map[string]*rate.Limiter
	limit      rate.Limit
	burst      int
	maxEntries int
}

func NewPerKey(limit rate.Limit, burst int) *PerKey {
	return &PerKey{
		limiters:   make(map[string]*rate.Limiter),
		limit:      limit,
		burst:      burst,
		maxEntries: 10_000,
	}
}

// Allow reports whether an attempt for key may proceed now.
func (p *PerKey) Allow(key string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	l, ok := p.limiters[key]
	if !ok {
		if len(p.limiters) >= p.maxEntries {
			// Crude reset; full buckets are recreated on demand.
			p.limiters = make(map[string]*rate.Limiter)
		}
		l = rate.NewLimiter(p.limit, p.burst)
		p.limiters[key] = l
	}
	return l.Allow()
}
