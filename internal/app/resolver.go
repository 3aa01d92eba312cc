package app

import (
	"context"

	"golang.org/x/sync/singleflight"

	"wedding_site/internal/domain"
	"wedding_site/internal/storage/geocache"
)

// Resolver turns a free-text address into a location: cache first, then
// the remote service, writing through to the cache on success only.
// Concurrent lookups of the same normalized address are collapsed into
// one remote call.
type Resolver struct {
	client domain.GeocodeClient
	cache  domain.LocationCache
	sf     singleflight.Group
}

func NewResolver(client domain.GeocodeClient, cache domain.LocationCache) *Resolver {
	return &Resolver{client: client, cache: cache}
}

func (r *Resolver) Configured() bool { return r.client.Configured() }

// Cached is the synchronous cache pre-pass lookup. Never touches the
// network.
func (r *Resolver) Cached(address string) (domain.Location, bool) {
	return r.cache.Get(address)
}

// Resolve returns the location for address, or nil when the service has
// no result. With no credential configured it fails fast without any
// network attempt. Failures are per-address and recoverable; Resolve
// never retries.
func (r *Resolver) Resolve(ctx context.Context, address string) (*domain.Location, error) {
	if loc, ok := r.cache.Get(address); ok {
		return &loc, nil
	}
	if !r.client.Configured() {
		return nil, nil
	}

	key := geocache.NormalizeAddress(address)
	v, err, _ := r.sf.Do(key, func() (any, error) {
		// Another flight may have populated the cache meanwhile.
		if loc, ok := r.cache.Get(address); ok {
			return &loc, nil
		}
		loc, err := r.client.Geocode(ctx, address)
		if err != nil {
			return nil, err
		}
		if loc != nil {
			r.cache.Put(ctx, address, *loc)
		}
		return loc, nil
	})
	if err != nil {
		return nil, err
	}
	loc, _ := v.(*domain.Location)
	return loc, nil
}
