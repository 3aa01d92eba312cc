package domain

import "context"

// LocationCache maps normalized address strings to resolved locations.
// Get is a pure read and never touches the network. Put persists the
// whole store after every insert, best-effort: a persistence failure is
// logged and swallowed, the in-memory entry stays usable.
type LocationCache interface {
	Get(address string) (Location, bool)
	Put(ctx context.Context, address string, loc Location)
	Clear(ctx context.Context) error
}

// GeocodeClient is the raw remote lookup. Geocode returns (nil, nil)
// when the service has no result for the address; errors are network,
// parse, or unexpected-status failures. Either way the caller treats it
// as a recoverable per-address miss.
type GeocodeClient interface {
	Configured() bool
	Geocode(ctx context.Context, address string) (*Location, error)
}

// AddressResolver is the cache-first resolution used by the pipeline.
type AddressResolver interface {
	Configured() bool
	Resolve(ctx context.Context, address string) (*Location, error)
	Cached(address string) (Location, bool)
}

// BlobStore persists the location cache's single serialized blob.
type BlobStore interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, b []byte) error
	Delete(ctx context.Context) error
}
