package social

// In this file: the provider registry and availability aggregation.

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Registry owns the set of registered providers and resolves platform names
// to provider instances.  The provider set is fixed at construction: reads
// require no locking.
type Registry struct {
	providers map[string]Provider
	order     []string // registration order, for deterministic listings
	logger    *slog.Logger
}

// NewRegistry creates a registry holding the given providers, keyed by
// Provider.Name.  A later provider with a duplicate name replaces the
// earlier one.
func NewRegistry(lg *slog.Logger, providers ...Provider) *Registry {
	if lg == nil {
		lg = slog.Default()
	}
	r := &Registry{
		providers: make(map[string]Provider, len(providers)),
		logger:    lg,
	}
	for _, p := range providers {
		if _, dup := r.providers[p.Name()]; !dup {
			r.order = append(r.order, p.Name())
		}
		r.providers[p.Name()] = p
		lg.Debug("registered provider", "name", p.Name(), "platform", p.Platform())
	}
	return r
}

// Get returns the provider registered under name, or nil.
func (r *Registry) Get(name string) Provider {
	return r.providers[name]
}

// AllProviders returns every registered provider in registration order.
func (r *Registry) AllProviders() []Provider {
	pp := make([]Provider, 0, len(r.order))
	for _, name := range r.order {
		pp = append(pp, r.providers[name])
	}
	return pp
}

// ProviderForPlatform returns the provider whose platform tag matches
// platform, compared case-insensitively.  It returns nil, not an error, when
// no provider matches; callers are responsible for surfacing a "not found"
// response.
func (r *Registry) ProviderForPlatform(platform string) Provider {
	for _, name := range r.order {
		p := r.providers[name]
		if strings.EqualFold(p.Platform(), platform) {
			return p
		}
	}
	r.logger.Debug("no provider for platform", "platform", platform)
	return nil
}

// AvailableProviders probes every registered provider concurrently and
// returns, in registration order, those that reported available.  A probe
// that panics is treated as unavailable; partial failure of one provider
// never blocks reporting on the others.
func (r *Registry) AvailableProviders(ctx context.Context) []Provider {
	all := r.AllProviders()
	avail := make([]bool, len(all))

	var wg sync.WaitGroup
	for i, p := range all {
		wg.Add(1)
		go func() {
			defer wg.Done()
			avail[i] = r.probe(ctx, p)
		}()
	}
	wg.Wait()

	var out []Provider
	for i, p := range all {
		if avail[i] {
			out = append(out, p)
		}
	}
	return out
}

// probe runs a single availability check, converting a panic into
// unavailable.
func (r *Registry) probe(ctx context.Context, p Provider) (ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("availability probe panicked", "provider", p.Name(), "panic", rec)
			ok = false
		}
	}()
	ok = p.IsAvailable(ctx)
	r.logger.Debug("availability probe", "provider", p.Name(), "available", ok)
	return ok
}
